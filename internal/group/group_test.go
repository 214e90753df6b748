package group

import (
	"testing"

	"go-job-compiler/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestByPlatform(t *testing.T) {
	jobs := []models.JobRecord{
		{Platform: "indeed", Title: "a"},
		{Platform: "freelancer", Title: "b"},
		{Platform: "indeed", Title: "c"},
		{Platform: "", Title: "d"},
		{Platform: models.UnknownPlatform, Title: "e"},
	}

	g := ByPlatform(jobs)
	assert.Equal(t, []string{"indeed", "freelancer", models.UnknownPlatform}, g.Platforms)
	require.Len(t, g.Jobs["indeed"], 2)
	assert.Equal(t, "a", g.Jobs["indeed"][0].Title)
	assert.Equal(t, "c", g.Jobs["indeed"][1].Title)
	assert.Len(t, g.Jobs[models.UnknownPlatform], 2)

	assert.Equal(t, len(jobs), g.Total())
	assert.Len(t, g.All(), len(jobs))
}

func TestByPlatform_EveryRecordInOneGroup(t *testing.T) {
	jobs := []models.JobRecord{
		{Platform: "a", Link: "1"}, {Platform: "b", Link: "2"}, {Platform: "a", Link: "3"},
	}
	g := ByPlatform(jobs)

	count := map[string]int{}
	for _, p := range g.Platforms {
		for _, j := range g.Jobs[p] {
			assert.Equal(t, p, j.Platform)
			count[j.Link]++
		}
	}
	for _, j := range jobs {
		assert.Equal(t, 1, count[j.Link])
	}
}

func TestSummarize(t *testing.T) {
	g := ByPlatform([]models.JobRecord{
		{Platform: "freelancer"}, {Platform: "freelancer"}, {Platform: "remoteok"},
	})
	s := Summarize(g, 4)

	assert.Equal(t, 3, s.Unique)
	assert.Equal(t, 4, s.DuplicatesRemoved)
	assert.Equal(t, []string{"freelancer", "remoteok"}, s.Platforms)
	assert.Equal(t, []PlatformCount{{"freelancer", 2}, {"remoteok", 1}}, s.PerPlatform)
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(ByPlatform(nil), 0)
	assert.Equal(t, 0, s.Unique)
	assert.Empty(t, s.Platforms)
	assert.Empty(t, s.PerPlatform)
}
