package models

// Metadata is the header of a JSON results file. The scrapers write the
// search fields; the compiler adds the run fields.
type Metadata struct {
	SearchKeywords    []string `json:"search_keywords,omitempty"`
	Location          string   `json:"location,omitempty"`
	SearchDate        string   `json:"search_date,omitempty"`
	TotalJobs         int      `json:"total_jobs"`
	Platforms         []string `json:"platforms"`
	RunID             string   `json:"run_id,omitempty"`
	DuplicatesRemoved int      `json:"duplicates_removed,omitempty"`
	GeneratedAt       string   `json:"generated_at,omitempty"`
}

// ResultsFile is the metadata+jobs document exchanged with the proposal
// and cover letter generators.
type ResultsFile struct {
	Metadata Metadata    `json:"metadata"`
	Jobs     []JobRecord `json:"jobs"`
}
