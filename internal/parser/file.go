package parser

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ParseFile parses one scraper output file; .json files use the
// metadata+jobs contract, everything else the sectioned text format.
func ParseFile(path string, dir Directory) FileResult {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return ParseJSONFile(path, dir)
	}
	return ParseTextFile(path, dir)
}

// ParseTextFile reads and parses a sectioned text results file.
func ParseTextFile(path string, dir Directory) FileResult {
	data, err := os.ReadFile(path)
	if err != nil {
		return FileResult{Path: path, Format: FormatText, Err: fmt.Errorf("read %s: %w", path, err)}
	}
	res := ParseText(string(data), dir)
	res.Path = path
	return res
}

// ParseText parses the content of a sectioned text results file.
func ParseText(content string, dir Directory) FileResult {
	res := FileResult{Format: FormatText}

	for _, sec := range SplitSections(content) {
		if sec.Empty {
			continue
		}
		parsed := 0
		for i, block := range SplitBlocks(sec.Body) {
			br := ParseBlock(block, dir, sec.Name)
			if !br.OK() {
				res.Skipped = append(res.Skipped, Skip{
					Section: sec.Name,
					Index:   i + 1,
					Reason:  br.Skip,
					Detail:  firstLine(block),
				})
				continue
			}
			res.Records = append(res.Records, *br.Record)
			parsed++
		}
		if parsed != sec.Declared {
			res.Notices = append(res.Notices,
				fmt.Sprintf("%s: header declares %d jobs, parsed %d", sec.Name, sec.Declared, parsed))
		}
	}
	return res
}

const maxDetailRunes = 60

func firstLine(block string) string {
	line, _, _ := strings.Cut(block, "\n")
	line = strings.TrimSpace(line)
	if r := []rune(line); len(r) > maxDetailRunes {
		line = string(r[:maxDetailRunes]) + "..."
	}
	return fmt.Sprintf("%q", line)
}
