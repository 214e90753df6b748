package compile

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sort"
	"time"

	"go-job-compiler/internal/config"
	"go-job-compiler/internal/dedup"
	"go-job-compiler/internal/group"
	"go-job-compiler/internal/models"
	"go-job-compiler/internal/parser"
	"go-job-compiler/internal/report"

	"github.com/google/uuid"
)

var (
	// ErrNoInput means no input file matched the configured patterns.
	ErrNoInput = errors.New("no job result files found")
	// ErrWriteReport wraps a failure to save the compiled report.
	ErrWriteReport = errors.New("error saving compiled results")
)

// Result describes one compilation run.
type Result struct {
	RunID          string
	Inputs         []string
	Files          []parser.FileResult
	FilesProcessed int
	FilesSkipped   int
	TotalExtracted int
	Groups         *group.Groups
	Summary        group.Summary
	Saved          *report.Saved
	HistoryEnabled bool
	NewSinceLast   int
	// Warnings collects failures of optional outputs.
	Warnings       []string
}

// ReportPath is the text report's path, empty when nothing was saved.
func (r *Result) ReportPath() string {
	if r.Saved == nil || len(r.Saved.Paths) == 0 {
		return ""
	}
	return r.Saved.Paths[0]
}

type Compiler struct {
	cfg      *config.Config
	logger   *log.Logger
	dir      parser.Directory
	formats  []report.Format
	now      func() time.Time
	newRunID func() string
	extras   []extra
}

// New creates a compiler for cfg. A nil logger discards output.
func New(cfg *config.Config, logger *log.Logger) *Compiler {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	platforms := cfg.Platforms
	if len(platforms) == 0 {
		platforms = parser.DefaultPlatforms
	}

	var formats []report.Format
	for _, name := range cfg.Formats {
		f, err := report.ParseFormat(name)
		if err != nil {
			logger.Printf("⚠️ Ignoring report format: %v", err)
			continue
		}
		formats = append(formats, f)
	}

	c := &Compiler{
		cfg:      cfg,
		logger:   logger,
		dir:      parser.NewDirectory(platforms),
		formats:  formats,
		now:      time.Now,
		newRunID: uuid.NewString,
	}
	c.extras = defaultExtras(cfg)
	return c
}

// Run compiles every input file into a new set of reports.
func (c *Compiler) Run(ctx context.Context) (*Result, error) {
	c.logger.Println("=== Job Results Compiler ===")

	inputs, err := c.discover()
	if err != nil {
		return nil, err
	}
	if len(inputs) == 0 {
		return nil, fmt.Errorf("%w in '%s' directory", ErrNoInput, c.cfg.InputDir)
	}

	res := &Result{RunID: c.newRunID(), Inputs: inputs}

	c.logger.Printf("Found %d job result files to process", len(inputs))
	var all []models.JobRecord
	for _, path := range inputs {
		fr := parser.ParseFile(path, c.dir)
		res.Files = append(res.Files, fr)
		name := filepath.Base(path)

		if !fr.Counted() {
			res.FilesSkipped++
			c.logger.Printf("⚠️ Error processing file %s: %v", name, fr.Err)
			continue
		}
		res.FilesProcessed++
		for _, n := range fr.Notices {
			c.logger.Printf("ℹ️ %s: %s", name, n)
		}
		for _, s := range fr.Skipped {
			if s.Reason != parser.SkipNoLink {
				c.logger.Printf("⚠️ %s: skipped %s", name, s)
			}
		}
		c.logger.Printf("📄 %s: extracted %d jobs", name, len(fr.Records))
		all = append(all, fr.Records...)
	}
	res.TotalExtracted = len(all)

	unique, removed := dedup.Deduplicate(all)
	res.Groups = group.ByPlatform(unique)
	res.Summary = group.Summarize(res.Groups, removed)
	c.logger.Printf("🗑️ Duplicates removed: %d, unique jobs: %d", removed, res.Summary.Unique)
	for _, pc := range res.Summary.PerPlatform {
		c.logger.Printf("  %s: %d jobs", pc.Platform, pc.Jobs)
	}

	data := report.Data{
		RunID:          res.RunID,
		GeneratedAt:    c.now(),
		FilesProcessed: res.FilesProcessed,
		Groups:         res.Groups,
		Summary:        res.Summary,
	}
	saved, err := report.Save(c.cfg.OutputDir, data, c.formats)
	res.Saved = saved
	if err != nil {
		return res, fmt.Errorf("%w: %w", ErrWriteReport, err)
	}
	data.OutputPath = saved.Paths[0]
	c.logger.Printf("✅ Compiled results saved to: %s", data.OutputPath)

	for _, x := range c.extras {
		if err := ctx.Err(); err != nil {
			res.Warnings = append(res.Warnings, fmt.Sprintf("%s: %v", x.name, err))
			break
		}
		if err := x.run(ctx, c, data, res); err != nil {
			c.logger.Printf("⚠️ %s failed: %v", x.name, err)
			res.Warnings = append(res.Warnings, fmt.Sprintf("%s: %v", x.name, err))
		}
	}

	return res, nil
}

// discover lists regular files matching the input patterns, sorted and
// without repeats.
func (c *Compiler) discover() ([]string, error) {
	seen := make(map[string]bool)
	var files []string
	for _, pattern := range c.cfg.InputPatterns {
		matches, err := filepath.Glob(filepath.Join(c.cfg.InputDir, pattern))
		if err != nil {
			return nil, fmt.Errorf("bad input pattern %q: %w", pattern, err)
		}
		for _, m := range matches {
			if seen[m] {
				continue
			}
			info, err := os.Stat(m)
			if err != nil || !info.Mode().IsRegular() {
				continue
			}
			seen[m] = true
			files = append(files, m)
		}
	}
	sort.Strings(files)
	return files, nil
}
