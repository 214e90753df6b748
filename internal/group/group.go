package group

import "go-job-compiler/internal/models"

// Groups partitions records by platform. Platforms keeps the order in which
// each platform first appeared; every bucket keeps its insertion order.
type Groups struct {
	Platforms []string
	Jobs      map[string][]models.JobRecord
}

// ByPlatform buckets records by their platform. Nothing is dropped: a record
// with no platform goes to models.UnknownPlatform.
func ByPlatform(jobs []models.JobRecord) *Groups {
	g := &Groups{Jobs: make(map[string][]models.JobRecord)}
	for _, job := range jobs {
		p := job.Platform
		if p == "" {
			p = models.UnknownPlatform
		}
		if _, ok := g.Jobs[p]; !ok {
			g.Platforms = append(g.Platforms, p)
		}
		g.Jobs[p] = append(g.Jobs[p], job)
	}
	return g
}

// Total is the number of records across all buckets.
func (g *Groups) Total() int {
	n := 0
	for _, jobs := range g.Jobs {
		n += len(jobs)
	}
	return n
}

// All returns every record, platform by platform.
func (g *Groups) All() []models.JobRecord {
	out := make([]models.JobRecord, 0, g.Total())
	for _, p := range g.Platforms {
		out = append(out, g.Jobs[p]...)
	}
	return out
}

// PlatformCount is one line of the platform summary.
type PlatformCount struct {
	Platform string `json:"platform"`
	Jobs     int    `json:"jobs"`
}

// Summary holds the aggregate counts of a compilation.
type Summary struct {
	Unique            int             `json:"unique"`
	DuplicatesRemoved int             `json:"duplicates_removed"`
	PerPlatform       []PlatformCount `json:"per_platform"`
	Platforms         []string        `json:"platforms"`
}

// Summarize computes the counts reported for grouped records.
func Summarize(g *Groups, duplicatesRemoved int) Summary {
	s := Summary{
		Unique:            g.Total(),
		DuplicatesRemoved: duplicatesRemoved,
		Platforms:         append([]string(nil), g.Platforms...),
	}
	for _, p := range g.Platforms {
		s.PerPlatform = append(s.PerPlatform, PlatformCount{Platform: p, Jobs: len(g.Jobs[p])})
	}
	return s
}
