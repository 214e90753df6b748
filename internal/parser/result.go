package parser

import (
	"fmt"

	"go-job-compiler/internal/models"
)

// SkipReason says why a block or JSON item did not become a record.
type SkipReason string

const (
	SkipNoLink        SkipReason = "no_link_line"
	SkipNoTitle       SkipReason = "no_title_line"
	SkipEmptyBlock    SkipReason = "empty_block"
	SkipMalformedJSON SkipReason = "malformed_json_item"
	SkipEmptyRecord   SkipReason = "empty_record"
)

// BlockResult is the outcome of parsing one block: either Record is set,
// or Skip explains why not.
type BlockResult struct {
	Record *models.JobRecord
	Skip   SkipReason
}

// OK reports whether the block produced a record.
func (r BlockResult) OK() bool {
	return r.Record != nil
}

// Skip records one skipped item inside a file.
type Skip struct {
	Section string
	Index   int
	Reason  SkipReason
	Detail  string
}

func (s Skip) String() string {
	if s.Section == "" {
		return fmt.Sprintf("item %d: %s %s", s.Index, s.Reason, s.Detail)
	}
	return fmt.Sprintf("%s #%d: %s %s", s.Section, s.Index, s.Reason, s.Detail)
}

// Format of an input file.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// FileResult is the outcome of parsing one input file. A non-nil Err
// means the whole file is excluded from the compilation.
type FileResult struct {
	Path    string
	Format  Format
	Records []models.JobRecord
	Skipped []Skip
	Notices []string
	Err     error
}

// Counted reports whether the file's records take part in the compilation.
func (f FileResult) Counted() bool {
	return f.Err == nil
}

// Skips counts skipped items that were not plain non-job fragments.
// Blocks without a Link: line are expected (headers, summaries).
func (f FileResult) Skips() int {
	n := 0
	for _, s := range f.Skipped {
		if s.Reason != SkipNoLink {
			n++
		}
	}
	return n
}
