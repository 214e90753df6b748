package dedup

import (
	"fmt"
	"testing"

	"go-job-compiler/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func job(title, link string) models.JobRecord {
	return models.JobRecord{Title: title, Link: link, Platform: "p"}
}

func TestDeduplicate(t *testing.T) {
	tests := []struct {
		name        string
		in          []models.JobRecord
		wantTitles  []string
		wantRemoved int
	}{
		{
			name: "empty input",
		},
		{
			name:       "all unique",
			in:         []models.JobRecord{job("a", "l1"), job("b", "l2")},
			wantTitles: []string{"a", "b"},
		},
		{
			name:        "first occurrence wins",
			in:          []models.JobRecord{job("a", "l1"), job("b", "l2"), job("a again", "l1"), job("c", "l3"), job("b again", "l2")},
			wantTitles:  []string{"a", "b", "c"},
			wantRemoved: 2,
		},
		{
			name:       "link-less records all kept",
			in:         []models.JobRecord{job("x", ""), job("x", ""), job("y", "l1")},
			wantTitles: []string{"x", "x", "y"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, removed := Deduplicate(tt.in)

			var titles []string
			for _, j := range out {
				titles = append(titles, j.Title)
			}
			assert.Equal(t, tt.wantTitles, titles)
			assert.Equal(t, tt.wantRemoved, removed)
			assert.Equal(t, len(tt.in), len(out)+removed)
		})
	}
}

func TestDeduplicate_MarksLinkless(t *testing.T) {
	out, _ := Deduplicate([]models.JobRecord{job("x", ""), job("y", "l1")})
	require.Len(t, out, 2)
	assert.Equal(t, models.NoLinkWarning, out[0].DuplicateWarning)
	assert.Empty(t, out[1].DuplicateWarning)
}

func TestDeduplicate_DoesNotMutateInput(t *testing.T) {
	in := []models.JobRecord{job("x", "")}
	Deduplicate(in)
	assert.Empty(t, in[0].DuplicateWarning)
}

func TestDeduplicate_CountIdentity(t *testing.T) {
	var in []models.JobRecord
	for i := 0; i < 200; i++ {
		link := fmt.Sprintf("https://www.freelancer.com/p/%d", i%37)
		if i%11 == 0 {
			link = ""
		}
		in = append(in, job(fmt.Sprint(i), link))
	}

	out, removed := Deduplicate(in)
	assert.Equal(t, len(in), len(out)+removed)

	links := map[string]bool{}
	for _, j := range out {
		if j.Link == "" {
			continue
		}
		assert.False(t, links[j.Link], "duplicate link %s survived", j.Link)
		links[j.Link] = true
	}
}
