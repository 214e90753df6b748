package parser

import (
	"regexp"
	"strings"

	"go-job-compiler/internal/models"
)

const linkPrefix = "Link:"

var ordinalRegex = regexp.MustCompile(`^\d+\.`)

// fieldSetters maps a recognised line prefix to the record field it fills.
var fieldSetters = []struct {
	prefix string
	set    func(j *models.JobRecord, v string)
}{
	{"Company:", func(j *models.JobRecord, v string) { j.Company = v }},
	{"Skills:", func(j *models.JobRecord, v string) { j.Skills = v }},
	{"Location:", func(j *models.JobRecord, v string) { j.Location = v }},
	{"Posted:", func(j *models.JobRecord, v string) { j.PostedDate = v }},
	{linkPrefix, func(j *models.JobRecord, v string) { j.Link = v }},
	{"Headquarters:", func(j *models.JobRecord, v string) { j.Headquarters = v }},
	{"Categories:", func(j *models.JobRecord, v string) { j.Categories = v }},
}

// IsJobBlock reports whether a block holds a Link: line, which is what
// separates job entries from headers and summaries.
func IsJobBlock(block string) bool {
	for _, line := range strings.Split(block, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), linkPrefix) {
			return true
		}
	}
	return false
}

// CleanTitle strips a leading "12." style ordinal and surrounding space.
func CleanTitle(title string) string {
	title = strings.TrimSpace(title)
	title = ordinalRegex.ReplaceAllString(title, "")
	return cleanText(title)
}

// ParseBlock turns one blank-line-delimited block into a record. The first
// line is the title; recognised "Field:" lines fill the rest and anything
// else is ignored. section names the platform section the block came from
// and is only used to resolve relative links into ApplyURL. Link keeps the
// trimmed text after "Link:" unchanged, since it is the dedup key.
func ParseBlock(block string, dir Directory, section string) BlockResult {
	block = strings.TrimSpace(block)
	if block == "" {
		return BlockResult{Skip: SkipEmptyBlock}
	}
	if !IsJobBlock(block) {
		return BlockResult{Skip: SkipNoLink}
	}

	lines := strings.Split(block, "\n")
	titleLine := strings.TrimSpace(lines[0])
	if isFieldLine(titleLine) {
		return BlockResult{Skip: SkipNoTitle}
	}

	job := &models.JobRecord{Title: CleanTitle(titleLine)}
	for _, line := range lines[1:] {
		line = strings.TrimSpace(line)
		for _, f := range fieldSetters {
			if strings.HasPrefix(line, f.prefix) {
				v := strings.TrimSpace(strings.TrimPrefix(line, f.prefix))
				if f.prefix != linkPrefix {
					v = cleanText(v)
				}
				f.set(job, v)
				break
			}
		}
	}

	job.ApplyURL = dir.ApplyURL(section, job.Link)
	job.Platform = DerivePlatform(job.Link)
	return BlockResult{Record: job}
}

func isFieldLine(line string) bool {
	for _, f := range fieldSetters {
		if strings.HasPrefix(line, f.prefix) {
			return true
		}
	}
	return false
}
