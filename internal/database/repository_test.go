package database

import (
	"context"
	"os"
	"testing"
	"time"

	"go-job-compiler/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNullable(t *testing.T) {
	assert.Nil(t, nullable(""))
	require.NotNil(t, nullable("x"))
	assert.Equal(t, "x", *nullable("x"))
}

// integration test: needs a reachable DATABASE_URL
func TestArchiveRun(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		t.Skip("DATABASE_URL not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	repo, err := ConnectDB(ctx, dbURL)
	require.NoError(t, err)
	defer repo.Close()
	require.NoError(t, repo.EnsureSchema(ctx))

	runID := uuid.NewString()
	jobs := []models.JobRecord{
		{Platform: "freelancer", Title: "Dev", Link: "https://freelancer.com/1"},
		{Platform: models.UnknownPlatform, Title: "No link", DuplicateWarning: models.NoLinkWarning},
	}

	n, err := repo.ArchiveRun(ctx, runID, jobs)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	// archiving the same run twice appends nothing
	n, err = repo.ArchiveRun(ctx, runID, jobs)
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)

	count, err := repo.CountRun(ctx, runID)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}
