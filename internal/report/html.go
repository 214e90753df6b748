package report

import (
	"bytes"
	"html/template"
	"io"

	"go-job-compiler/internal/models"
)

var htmlTemplate = template.Must(template.New("jobs").Funcs(template.FuncMap{
	"upper": platformHeading,
	"inc":   func(i int) int { return i + 1 },
}).Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Compiled jobs {{.Date}}</title>
<style>
  body { font-family: sans-serif; margin: 24px; }
  table { width: 100%; border-collapse: collapse; margin-bottom: 32px; }
  tr { text-align: left; border: 1px solid black; }
  th, td { padding: 10px; }
  tr:nth-child(odd) { background: #CCC; }
  tr:nth-child(even) { background: #FFF; }
  .warning { color: #a00; }
  .apply-button { padding: 8px; }
</style>
</head>
<body>
<h1>Compiled freelance job results</h1>
<p>{{.Date}} &middot; {{.Unique}} unique jobs &middot; {{.Removed}} duplicates removed &middot; {{len .Sections}} platforms</p>
{{range .Sections}}
<h2>{{upper .Platform}} ({{len .Jobs}})</h2>
<table>
  <tr><th>#</th><th>Role</th><th>Company</th><th>Location</th><th>Skills</th><th>Posted</th><th>Apply</th></tr>
  {{range $i, $job := .Jobs}}
  <tr>
    <td>{{inc $i}}</td>
    <td>{{$job.Title}}</td>
    <td>{{$job.Company}}</td>
    <td>{{$job.Location}}</td>
    <td>{{$job.Skills}}</td>
    <td>{{$job.PostedDate}}</td>
    <td>{{if $job.Href}}<a class="apply-button" href="{{$job.Href}}">Apply</a>{{else}}<span class="warning">{{$job.DuplicateWarning}}</span>{{end}}</td>
  </tr>
  {{end}}
</table>
{{end}}
</body>
</html>
`))

type htmlSection struct {
	Platform string
	Jobs     []models.JobRecord
}

type htmlPage struct {
	Date     string
	Unique   int
	Removed  int
	Sections []htmlSection
}

// WriteHTML renders the jobs as one table per platform.
func WriteHTML(w io.Writer, d Data) error {
	page := htmlPage{
		Date:    d.GeneratedAt.Format(dateLayout),
		Unique:  d.Summary.Unique,
		Removed: d.Summary.DuplicatesRemoved,
	}
	for _, p := range d.Groups.Platforms {
		page.Sections = append(page.Sections, htmlSection{Platform: p, Jobs: d.Groups.Jobs[p]})
	}
	return htmlTemplate.Execute(w, page)
}

// RenderHTML returns the HTML report as bytes, for PDF rendering.
func RenderHTML(d Data) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteHTML(&buf, d); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
