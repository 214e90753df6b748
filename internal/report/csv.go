package report

import (
	"encoding/csv"
	"io"
)

var csvHeader = []string{
	"platform",
	"title",
	"company",
	"skills",
	"location",
	"headquarters",
	"categories",
	"posted_date",
	"link",
	"duplicate_warning",
	"apply_url",
}

// WriteCSV renders one row per job, grouped by platform.
func WriteCSV(w io.Writer, d Data) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, job := range d.Groups.All() {
		row := []string{
			job.Platform,
			job.Title,
			job.Company,
			job.Skills,
			job.Location,
			job.Headquarters,
			job.Categories,
			job.PostedDate,
			job.Link,
			job.DuplicateWarning,
			job.ApplyURL,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
