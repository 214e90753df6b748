package parser

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseText(t *testing.T) {
	res := ParseText(sampleResults, NewDirectory(DefaultPlatforms))
	require.NoError(t, res.Err)

	require.Len(t, res.Records, 2)
	assert.Equal(t, "Python scraper", res.Records[0].Title)
	assert.Equal(t, "Acme", res.Records[0].Company)
	assert.Equal(t, "Python scraper (repost)", res.Records[1].Title)
	for _, r := range res.Records {
		assert.Equal(t, "freelancer", r.Platform)
	}

	// REMOTEOK job without a Link: line and the summary banner
	require.Len(t, res.Skipped, 2)
	assert.Equal(t, SkipNoLink, res.Skipped[0].Reason)
	assert.Equal(t, "REMOTEOK", res.Skipped[0].Section)
	assert.Equal(t, 0, res.Skips())

	require.Len(t, res.Notices, 1)
	assert.Contains(t, res.Notices[0], "REMOTEOK")
}

func TestParseTextFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "jobs_python_global.txt")
	require.NoError(t, os.WriteFile(path, []byte(sampleResults), 0644))

	res := ParseFile(path, NewDirectory(nil))
	require.NoError(t, res.Err)
	assert.Equal(t, path, res.Path)
	assert.Equal(t, FormatText, res.Format)
	assert.Len(t, res.Records, 2)
	assert.True(t, res.Counted())
}

func TestParseFile_Missing(t *testing.T) {
	res := ParseFile(filepath.Join(t.TempDir(), "nope.txt"), Directory{})
	assert.Error(t, res.Err)
	assert.False(t, res.Counted())
	assert.Empty(t, res.Records)
}

func TestFirstLine(t *testing.T) {
	tests := []struct {
		name  string
		block string
		want  string
	}{
		{name: "short", block: "Scraper\nLink: x", want: `"Scraper"`},
		{name: "ascii cut", block: strings.Repeat("a", 70), want: fmt.Sprintf("%q", strings.Repeat("a", 60)+"...")},
		{
			name:  "multi-byte cut on rune boundary",
			block: strings.Repeat("ệ", 70),
			want:  fmt.Sprintf("%q", strings.Repeat("ệ", 60)+"..."),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := firstLine(tt.block)
			assert.Equal(t, tt.want, got)
			assert.True(t, utf8.ValidString(got))
		})
	}
}

func TestParseJSON(t *testing.T) {
	doc := `{
	  "metadata": {"search_keywords": ["go"], "location": "Global", "total_jobs": 4, "platforms": ["indeed"]},
	  "jobs": [
	    {"platform": "ignored", "title": "2. Go developer", "company": "Beta", "skills": ["go", "grpc"], "link": "http://indeed.com/job/1"},
	    {"title": "Writer", "categories": "Content", "posted": "today"},
	    "not an object",
	    {},
	    {"title": "Relative", "platform": "freelancer", "url": "/projects/5"}
	  ]
	}`

	res := ParseJSON([]byte(doc), NewDirectory(DefaultPlatforms))
	require.NoError(t, res.Err)
	require.Len(t, res.Records, 3)

	first := res.Records[0]
	assert.Equal(t, "Go developer", first.Title)
	assert.Equal(t, "go, grpc", first.Skills)
	assert.Equal(t, "indeed", first.Platform)

	second := res.Records[1]
	assert.Equal(t, "Content", second.Categories)
	assert.Equal(t, "today", second.PostedDate)
	assert.Empty(t, second.Link)
	assert.Equal(t, "unknown", second.Platform)

	third := res.Records[2]
	assert.Equal(t, "/projects/5", third.Link)
	assert.Equal(t, "https://www.freelancer.com/projects/5", third.ApplyURL)
	assert.Equal(t, "unknown", third.Platform)

	require.Len(t, res.Skipped, 2)
	assert.Equal(t, SkipMalformedJSON, res.Skipped[0].Reason)
	assert.Equal(t, 3, res.Skipped[0].Index)
	assert.Equal(t, SkipEmptyRecord, res.Skipped[1].Reason)
	assert.Equal(t, 2, res.Skips())

	require.Len(t, res.Notices, 1)
}

func TestParseJSON_FileErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{name: "not json", doc: "--- FREELANCER ---"},
		{name: "array document", doc: `[{"title": "x"}]`},
		{name: "missing jobs", doc: `{"metadata": {"total_jobs": 0}}`},
		{name: "jobs not array", doc: `{"jobs": {"title": "x"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := ParseJSON([]byte(tt.doc), Directory{})
			assert.Error(t, res.Err)
			assert.Empty(t, res.Records)
		})
	}
}

func TestParseJSONFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jobs.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"jobs": [{"title": "A", "link": "https://www.upwork.com/j/1"}]}`), 0644))

	res := ParseFile(path, Directory{})
	require.NoError(t, res.Err)
	assert.Equal(t, FormatJSON, res.Format)
	require.Len(t, res.Records, 1)
	assert.Equal(t, "upwork", res.Records[0].Platform)
}
