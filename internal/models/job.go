package models

// UnknownPlatform is the platform of a record whose link yields no domain.
const UnknownPlatform = "unknown"

// NoLinkWarning marks records that cannot be deduplicated.
const NoLinkWarning = "No link available - potential duplicate"

// JobRecord is the canonical job parsed from any scraper dump.
// Empty string means the field was absent in the source.
type JobRecord struct {
	Platform         string `json:"platform"`
	Title            string `json:"title"`
	Company          string `json:"company,omitempty"`
	Skills           string `json:"skills,omitempty"`
	Location         string `json:"location,omitempty"`
	Headquarters     string `json:"headquarters,omitempty"`
	Categories       string `json:"categories,omitempty"`
	PostedDate       string `json:"posted_date,omitempty"`
	Link             string `json:"link,omitempty"`
	DuplicateWarning string `json:"duplicate_warning,omitempty"`
	// ApplyURL is the absolute form of a relative Link, for display only.
	// It never takes part in deduplication.
	ApplyURL string `json:"apply_url,omitempty"`
}

// Href is the URL a reader should follow: ApplyURL when set, else Link.
func (j JobRecord) Href() string {
	if j.ApplyURL != "" {
		return j.ApplyURL
	}
	return j.Link
}

// HasLink reports whether the record can take part in deduplication.
func (j JobRecord) HasLink() bool {
	return j.Link != ""
}
