package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"go-job-compiler/internal/group"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Format is a report file type, also used as file extension.
type Format string

const (
	FormatText Format = "txt"
	FormatJSON Format = "json"
	FormatHTML Format = "html"
	FormatCSV  Format = "csv"
	FormatPDF  Format = "pdf"
)

// ParseFormat validates a configured format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatText, FormatJSON, FormatHTML, FormatCSV, FormatPDF:
		return f, nil
	case "text":
		return FormatText, nil
	default:
		return "", fmt.Errorf("unknown report format %q", s)
	}
}

// Data is everything a report renders.
type Data struct {
	RunID          string
	GeneratedAt    time.Time
	FilesProcessed int
	Groups         *group.Groups
	Summary        group.Summary
	// OutputPath is the text report's path, echoed in its closing block.
	OutputPath string
}

const dateLayout = "2006-01-02 15:04:05"

var upper = cases.Upper(language.Und)

func platformHeading(p string) string {
	return upper.String(p)
}

// writerFunc renders one format.
type writerFunc func(w io.Writer, d Data) error

var writers = map[Format]writerFunc{
	FormatText: WriteText,
	FormatJSON: WriteJSON,
	FormatHTML: WriteHTML,
	FormatCSV:  WriteCSV,
}

// Saved lists the files a Save call produced, text report first.
type Saved struct {
	Output *Output
	Paths  []string
}

// Save writes the text report plus any other requested formats into dir.
// PDF is not rendered here; the caller renders it from the HTML output.
// Files already written stay on disk when a later one fails.
func Save(dir string, d Data, formats []Format) (*Saved, error) {
	out, f, err := NewOutput(dir, d.GeneratedAt)
	if err != nil {
		return nil, err
	}
	d.OutputPath = out.Path(FormatText)
	saved := &Saved{Output: out}

	if err := writeAndClose(f, d, WriteText); err != nil {
		return saved, fmt.Errorf("write %s: %w", d.OutputPath, err)
	}
	saved.Paths = append(saved.Paths, d.OutputPath)

	for _, format := range formats {
		write, ok := writers[format]
		if !ok || format == FormatText {
			continue
		}
		f, err := out.Create(format)
		if err != nil {
			return saved, fmt.Errorf("create %s report: %w", format, err)
		}
		if err := writeAndClose(f, d, write); err != nil {
			return saved, fmt.Errorf("write %s: %w", out.Path(format), err)
		}
		saved.Paths = append(saved.Paths, out.Path(format))
	}
	return saved, nil
}

func writeAndClose(f io.WriteCloser, d Data, write writerFunc) error {
	if err := write(f, d); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
