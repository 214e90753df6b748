package report

import (
	"encoding/json"
	"io"
	"time"

	"go-job-compiler/internal/models"
)

// WriteJSON renders the metadata+jobs document the proposal generators read.
func WriteJSON(w io.Writer, d Data) error {
	doc := models.ResultsFile{
		Metadata: models.Metadata{
			SearchDate:        d.GeneratedAt.Format(dateLayout),
			TotalJobs:         d.Summary.Unique,
			Platforms:         d.Summary.Platforms,
			RunID:             d.RunID,
			DuplicatesRemoved: d.Summary.DuplicatesRemoved,
			GeneratedAt:       d.GeneratedAt.Format(time.RFC3339),
		},
		Jobs: d.Groups.All(),
	}
	if doc.Metadata.Platforms == nil {
		doc.Metadata.Platforms = []string{}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}
