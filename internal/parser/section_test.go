package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyLine(t *testing.T) {
	tests := []struct {
		name  string
		line  string
		kind  LineKind
		pname string
		count int
	}{
		{name: "header with count", line: "--- FREELANCER (12 jobs found) ---", kind: LineSectionHeader, pname: "FREELANCER", count: 12},
		{name: "header with one job", line: "--- WE WORK REMOTELY (1 job found) ---", kind: LineSectionHeader, pname: "WE WORK REMOTELY", count: 1},
		{name: "empty header inline", line: "--- INDEED --- No jobs found", kind: LineEmptySection, pname: "INDEED"},
		{name: "bare empty header", line: "--- GLASSDOOR ---", kind: LineEmptySection, pname: "GLASSDOOR"},
		{name: "job title", line: "1. Build a website", kind: LineContent},
		{name: "rule", line: "------------------------------", kind: LineContent},
		{name: "banner", line: "============================================================", kind: LineContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := ClassifyLine(tt.line)
			assert.Equal(t, tt.kind, l.Kind)
			assert.Equal(t, tt.pname, l.Name)
			assert.Equal(t, tt.count, l.Count)
		})
	}
}

func TestClassifyLine_MarkerFollows(t *testing.T) {
	assert.True(t, ClassifyLine("--- GLASSDOOR ---").MarkerFollows)
	assert.False(t, ClassifyLine("--- GLASSDOOR --- No jobs found").MarkerFollows)
}

const sampleResults = `============================================================
FREELANCE JOB SEARCH RESULTS
============================================================
Search Keywords: python
Location: Global
Search Date: 2025-03-01 10:00:00
============================================================

--- FREELANCER (2 jobs found) ---

1. Python scraper
   Company: Acme
   Link: https://www.freelancer.com/projects/1

2. Python scraper (repost)
   Link: https://www.freelancer.com/projects/1


--- INDEED ---
No jobs found

--- REMOTEOK (1 jobs found) ---

1. Data pipeline engineer
   Skills: python, airflow
   Location: Remote

============================================================
SEARCH SUMMARY
============================================================
Total Jobs Found: 3
Platforms Searched: 3
Results saved to: job_results/jobs_python_global_20250301_100000.txt
`

func TestSplitSections(t *testing.T) {
	sections := SplitSections(sampleResults)
	require.Len(t, sections, 3)

	assert.Equal(t, "FREELANCER", sections[0].Name)
	assert.Equal(t, 2, sections[0].Declared)
	assert.False(t, sections[0].Empty)
	assert.Len(t, SplitBlocks(sections[0].Body), 2)

	assert.Equal(t, "INDEED", sections[1].Name)
	assert.True(t, sections[1].Empty)
	assert.Empty(t, sections[1].Body)

	assert.Equal(t, "REMOTEOK", sections[2].Name)
	// job block plus the trailing summary banner
	assert.Len(t, SplitBlocks(sections[2].Body), 2)
}

func TestSplitSections_NoHeaders(t *testing.T) {
	assert.Empty(t, SplitSections("just some text\n\nLink: https://x.com"))
}

func TestSplitSections_EmptyChunk(t *testing.T) {
	sections := SplitSections("--- FIVERR (0 jobs found) ---\n\n--- UPWORK --- No jobs found\n")
	require.Len(t, sections, 2)
	assert.Empty(t, sections[0].Body)
	assert.Empty(t, SplitBlocks(sections[0].Body))
	assert.True(t, sections[1].Empty)
}

func TestSplitSections_BareHeaderWithoutMarker(t *testing.T) {
	content := "--- FREELANCER (1 jobs found) ---\n\n1. Job\n   Link: https://www.freelancer.com/p/1\n\n--- NOTES ---\nnot a marker\n"
	sections := SplitSections(content)
	require.Len(t, sections, 1)
	assert.Contains(t, sections[0].Body, "--- NOTES ---")
}

func TestSplitBlocks(t *testing.T) {
	body := "a\nb\n\n\n  \nc\r\n\r\nd\n"
	assert.Equal(t, []string{"a\nb", "c", "d"}, SplitBlocks(body))
}
