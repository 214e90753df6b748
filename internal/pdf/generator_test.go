package pdf

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "report.pdf")

	require.NoError(t, SaveToFile([]byte("%PDF-1.4"), path))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4", string(data))

	// an existing report is never replaced
	assert.Error(t, SaveToFile([]byte("other"), path))
}

func TestGenerate_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewGenerator().Generate(ctx, []byte("<html></html>"))
	assert.ErrorIs(t, err, context.Canceled)
}

// integration test: needs playwright browsers installed
func TestGenerate_Real(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	if os.Getenv("PLAYWRIGHT_TESTS") == "" {
		t.Skip("PLAYWRIGHT_TESTS not set")
	}

	out, err := NewGenerator().Generate(context.Background(), []byte("<html><body><h1>Jobs</h1></body></html>"))
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}
