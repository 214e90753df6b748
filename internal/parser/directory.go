package parser

import "strings"

// DefaultPlatforms mirrors the marketplaces the scrapers write sections for.
var DefaultPlatforms = map[string]string{
	"freelancer":     "https://www.freelancer.com",
	"glassdoor":      "https://www.glassdoor.com",
	"upwork":         "https://www.upwork.com",
	"fiverr":         "https://www.fiverr.com",
	"indeed":         "https://www.indeed.com",
	"angellist":      "https://wellfound.com",
	"remoteok":       "https://remoteok.io",
	"timesjobs":      "https://www.timesjobs.com",
	"remote":         "https://remote.co",
	"weworkremotely": "https://weworkremotely.com",
}

// Directory is a read-only lookup from section/platform name to base URL.
// It is used to absolutize relative links found under a section.
type Directory struct {
	baseURLs map[string]string
}

// NewDirectory copies the given table, so later changes to it are not seen.
func NewDirectory(platforms map[string]string) Directory {
	m := make(map[string]string, len(platforms))
	for name, base := range platforms {
		key := normalizeSectionName(name)
		if key == "" || strings.TrimSpace(base) == "" {
			continue
		}
		m[key] = strings.TrimRight(strings.TrimSpace(base), "/")
	}
	return Directory{baseURLs: m}
}

// BaseURL returns the base URL registered for a section name.
func (d Directory) BaseURL(section string) (string, bool) {
	base, ok := d.baseURLs[normalizeSectionName(section)]
	return base, ok
}

// Len returns the number of known platforms.
func (d Directory) Len() int {
	return len(d.baseURLs)
}

// Resolve turns a relative link into an absolute one using the section's
// base URL. Absolute links and links from unknown sections are returned as is.
func (d Directory) Resolve(section, link string) string {
	if link == "" || isAbsoluteLink(link) {
		return link
	}
	base, ok := d.BaseURL(section)
	if !ok {
		return link
	}
	if strings.HasPrefix(link, "/") {
		return base + link
	}
	return base + "/" + link
}

// ApplyURL returns the absolute form of a relative link, or "" when the
// link is empty, already absolute, or its section is unknown.
func (d Directory) ApplyURL(section, link string) string {
	if link == "" || isAbsoluteLink(link) {
		return ""
	}
	if abs := d.Resolve(section, link); abs != link {
		return abs
	}
	return ""
}

func normalizeSectionName(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), ""))
}
