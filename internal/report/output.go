package report

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

const maxNameAttempts = 100

// Output is the set of files one compilation writes. All formats share
// Base; the text report reserves it.
type Output struct {
	Dir  string
	Base string
}

// NewOutput creates dir if needed and reserves compiled_jobs_<timestamp>
// by creating its .txt file exclusively. When a file of that name already
// exists a numeric suffix is added, so earlier runs are never overwritten.
// The caller must close the returned file.
func NewOutput(dir string, now time.Time) (*Output, *os.File, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, nil, fmt.Errorf("create output directory: %w", err)
	}

	stamp := "compiled_jobs_" + now.Format("20060102_150405")
	for i := 1; i <= maxNameAttempts; i++ {
		base := stamp
		if i > 1 {
			base = fmt.Sprintf("%s_%d", stamp, i)
		}
		o := &Output{Dir: dir, Base: base}
		f, err := o.Create(FormatText)
		if err == nil {
			return o, f, nil
		}
		if !errors.Is(err, os.ErrExist) {
			return nil, nil, err
		}
	}
	return nil, nil, fmt.Errorf("no free report name for %s in %s", stamp, dir)
}

// Path returns the file path used for a format.
func (o *Output) Path(f Format) string {
	return filepath.Join(o.Dir, o.Base+"."+string(f))
}

// Create opens the file for a format, failing if it already exists.
func (o *Output) Create(f Format) (*os.File, error) {
	return os.OpenFile(o.Path(f), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
}
