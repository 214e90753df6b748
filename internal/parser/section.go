package parser

import (
	"regexp"
	"strconv"
	"strings"
)

// LineKind classifies one line of a raw results file.
type LineKind int

const (
	LineContent LineKind = iota
	// LineSectionHeader is "--- NAME (N jobs found) ---".
	LineSectionHeader
	// LineEmptySection is "--- NAME --- No jobs found", or a bare
	// "--- NAME ---" whose marker follows on the next line.
	LineEmptySection
)

// Line is a classified line. Name and Count are only set for headers.
type Line struct {
	Kind  LineKind
	Name  string
	Count int
	Text  string
	// MarkerFollows is set on a bare "--- NAME ---" empty header: it only
	// counts as a header when the next non-blank line is "No jobs found".
	MarkerFollows bool
}

const noJobsMarker = "No jobs found"

var (
	countHeaderRegex = regexp.MustCompile(`^---\s+(.+?)\s+\((\d+)\s+jobs?\s+found\)\s+---$`)
	emptyHeaderRegex = regexp.MustCompile(`^---\s+(.+?)\s+---(\s+No jobs found)?$`)
)

// ClassifyLine tells a section header apart from ordinary content.
func ClassifyLine(line string) Line {
	trimmed := strings.TrimSpace(line)
	if m := countHeaderRegex.FindStringSubmatch(trimmed); m != nil {
		n, _ := strconv.Atoi(m[2])
		return Line{Kind: LineSectionHeader, Name: m[1], Count: n, Text: line}
	}
	if m := emptyHeaderRegex.FindStringSubmatch(trimmed); m != nil {
		return Line{Kind: LineEmptySection, Name: m[1], Text: line, MarkerFollows: m[2] == ""}
	}
	return Line{Kind: LineContent, Text: line}
}

// Section is the text a single platform contributed to a results file.
type Section struct {
	Name string
	// Declared is the job count stated in the header.
	Declared int
	// Empty is true for "No jobs found" sections, which carry no body.
	Empty bool
	Body  string
}

// SplitSections cuts a results file at its platform headers. Text before
// the first header is the file banner and is dropped.
func SplitSections(content string) []Section {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	lines := strings.Split(content, "\n")

	var (
		sections []Section
		current  *Section
		body     []string
	)
	flush := func() {
		if current == nil {
			return
		}
		if !current.Empty {
			current.Body = strings.TrimSpace(strings.Join(body, "\n"))
		}
		sections = append(sections, *current)
		current, body = nil, nil
	}

	for i := 0; i < len(lines); i++ {
		l := ClassifyLine(lines[i])
		switch l.Kind {
		case LineSectionHeader:
			flush()
			current = &Section{Name: l.Name, Declared: l.Count}
		case LineEmptySection:
			if l.MarkerFollows {
				j := nextNonBlank(lines, i+1)
				if j < 0 || strings.TrimSpace(lines[j]) != noJobsMarker {
					if current != nil && !current.Empty {
						body = append(body, l.Text)
					}
					continue
				}
				i = j
			}
			flush()
			current = &Section{Name: l.Name, Empty: true}
		default:
			if current != nil && !current.Empty {
				body = append(body, l.Text)
			}
		}
	}
	flush()
	return sections
}

// SplitBlocks splits a section body on blank lines. Blocks are trimmed and
// empty ones dropped.
func SplitBlocks(body string) []string {
	var (
		blocks []string
		cur    []string
	)
	flush := func() {
		if b := strings.TrimSpace(strings.Join(cur, "\n")); b != "" {
			blocks = append(blocks, b)
		}
		cur = nil
	}
	for _, line := range strings.Split(strings.ReplaceAll(body, "\r\n", "\n"), "\n") {
		if strings.TrimSpace(line) == "" {
			flush()
			continue
		}
		cur = append(cur, line)
	}
	flush()
	return blocks
}

func nextNonBlank(lines []string, from int) int {
	for i := from; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) != "" {
			return i
		}
	}
	return -1
}
