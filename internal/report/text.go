package report

import (
	"fmt"
	"io"
	"strings"
)

var (
	rule70 = strings.Repeat("=", 70)
	rule50 = strings.Repeat("=", 50)
	dash30 = strings.Repeat("-", 30)
)

// WriteText renders the human-readable report: header, platform summary,
// per-platform listing, closing summary. Optional fields are only printed
// when present, always in the same order.
func WriteText(w io.Writer, d Data) error {
	var b strings.Builder
	s := d.Summary

	b.WriteString(rule70 + "\n")
	b.WriteString("COMPILED FREELANCE JOB RESULTS\n")
	b.WriteString(rule70 + "\n")
	fmt.Fprintf(&b, "Compilation Date: %s\n", d.GeneratedAt.Format(dateLayout))
	fmt.Fprintf(&b, "Total Unique Jobs: %d\n", s.Unique)
	fmt.Fprintf(&b, "Duplicates Removed: %d\n", s.DuplicatesRemoved)
	fmt.Fprintf(&b, "Platforms: %d\n", len(s.Platforms))
	b.WriteString(rule70 + "\n\n")

	b.WriteString("PLATFORM SUMMARY\n")
	b.WriteString(dash30 + "\n")
	for _, pc := range s.PerPlatform {
		fmt.Fprintf(&b, "%s: %d jobs\n", platformHeading(pc.Platform), pc.Jobs)
	}
	b.WriteString("\n")

	for _, p := range d.Groups.Platforms {
		jobs := d.Groups.Jobs[p]
		b.WriteString(rule50 + "\n")
		fmt.Fprintf(&b, "%s - %d JOBS\n", platformHeading(p), len(jobs))
		b.WriteString(rule50 + "\n\n")

		for i, job := range jobs {
			fmt.Fprintf(&b, "%d. %s\n", i+1, job.Title)
			optional(&b, "Company", job.Company)
			optional(&b, "Skills", job.Skills)
			optional(&b, "Location", job.Location)
			optional(&b, "Headquarters", job.Headquarters)
			optional(&b, "Categories", job.Categories)
			optional(&b, "Posted", job.PostedDate)
			optional(&b, "Link", job.Link)
			optional(&b, "Apply", job.ApplyURL)
			if job.DuplicateWarning != "" {
				fmt.Fprintf(&b, "   ⚠️  %s\n", job.DuplicateWarning)
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	b.WriteString(rule70 + "\n")
	b.WriteString("COMPILATION SUMMARY\n")
	b.WriteString(rule70 + "\n")
	fmt.Fprintf(&b, "Total Files Processed: %d\n", d.FilesProcessed)
	fmt.Fprintf(&b, "Unique Jobs After Deduplication: %d\n", s.Unique)
	fmt.Fprintf(&b, "Duplicates Removed: %d\n", s.DuplicatesRemoved)
	fmt.Fprintf(&b, "Platforms Represented: %s\n", strings.Join(s.Platforms, ", "))
	fmt.Fprintf(&b, "Results saved to: %s\n", d.OutputPath)

	_, err := io.WriteString(w, b.String())
	return err
}

func optional(b *strings.Builder, label, value string) {
	if value == "" {
		return
	}
	fmt.Fprintf(b, "   %s: %s\n", label, value)
}
