package parser

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"go-job-compiler/internal/models"
)

// flexString accepts either a JSON string or an array of strings; arrays
// are joined with ", " the way the text dumps print them.
type flexString string

func (f *flexString) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*f = flexString(s)
		return nil
	}
	var list []string
	if err := json.Unmarshal(b, &list); err != nil {
		return fmt.Errorf("expected string or list of strings: %w", err)
	}
	*f = flexString(strings.Join(list, ", "))
	return nil
}

// rawJob is a job as the scrapers export it. Platform only serves to
// resolve relative links into ApplyURL; the record's platform comes from
// the link.
type rawJob struct {
	Platform     flexString `json:"platform"`
	Title        flexString `json:"title"`
	Company      flexString `json:"company"`
	Skills       flexString `json:"skills"`
	Location     flexString `json:"location"`
	Headquarters flexString `json:"headquarters"`
	Categories   flexString `json:"categories"`
	Descriptions flexString `json:"descriptions"`
	PostedDate   flexString `json:"posted_date"`
	Posted       flexString `json:"posted"`
	Link         flexString `json:"link"`
	URL          flexString `json:"url"`
}

// rawMetadata keeps only what the parser checks; the other metadata
// fields vary between scrapers.
type rawMetadata struct {
	TotalJobs int `json:"total_jobs"`
}

type rawResults struct {
	Metadata *rawMetadata       `json:"metadata"`
	Jobs     *[]json.RawMessage `json:"jobs"`
}

// ParseJSONFile reads and parses a metadata+jobs results file.
func ParseJSONFile(path string, dir Directory) FileResult {
	data, err := os.ReadFile(path)
	if err != nil {
		return FileResult{Path: path, Format: FormatJSON, Err: fmt.Errorf("read %s: %w", path, err)}
	}
	res := ParseJSON(data, dir)
	res.Path = path
	return res
}

// ParseJSON parses a metadata+jobs document. A document that is not an
// object with a jobs array is a file error; bad items are skipped.
func ParseJSON(data []byte, dir Directory) FileResult {
	res := FileResult{Format: FormatJSON}

	var doc rawResults
	if err := json.Unmarshal(data, &doc); err != nil {
		res.Err = fmt.Errorf("decode results: %w", err)
		return res
	}
	if doc.Jobs == nil {
		res.Err = fmt.Errorf("decode results: missing jobs array")
		return res
	}

	for i, raw := range *doc.Jobs {
		var rj rawJob
		if err := json.Unmarshal(raw, &rj); err != nil {
			res.Skipped = append(res.Skipped, Skip{Index: i + 1, Reason: SkipMalformedJSON, Detail: err.Error()})
			continue
		}
		job := rj.record(dir)
		if job.Title == "" && job.Link == "" {
			res.Skipped = append(res.Skipped, Skip{Index: i + 1, Reason: SkipEmptyRecord})
			continue
		}
		res.Records = append(res.Records, job)
	}

	if doc.Metadata != nil && doc.Metadata.TotalJobs > 0 && doc.Metadata.TotalJobs != len(res.Records) {
		res.Notices = append(res.Notices,
			fmt.Sprintf("metadata declares %d jobs, parsed %d", doc.Metadata.TotalJobs, len(res.Records)))
	}
	return res
}

func (r rawJob) record(dir Directory) models.JobRecord {
	job := models.JobRecord{
		Title:        CleanTitle(string(r.Title)),
		Company:      cleanText(string(r.Company)),
		Skills:       cleanText(string(r.Skills)),
		Location:     cleanText(string(r.Location)),
		Headquarters: cleanText(string(r.Headquarters)),
		Categories:   cleanText(string(firstNonEmpty(r.Categories, r.Descriptions))),
		PostedDate:   cleanText(string(firstNonEmpty(r.PostedDate, r.Posted))),
		Link:         strings.TrimSpace(string(firstNonEmpty(r.Link, r.URL))),
	}
	job.ApplyURL = dir.ApplyURL(string(r.Platform), job.Link)
	job.Platform = DerivePlatform(job.Link)
	return job
}

func firstNonEmpty(vals ...flexString) flexString {
	for _, v := range vals {
		if strings.TrimSpace(string(v)) != "" {
			return v
		}
	}
	return ""
}
