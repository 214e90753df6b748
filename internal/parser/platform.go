package parser

import (
	"strings"

	"go-job-compiler/internal/models"
)

var schemePrefixes = []string{"https://", "http://"}

// DerivePlatform maps a job link to its marketplace name: protocol and
// "www." are stripped and the part before the first dot is kept.
//
//	https://www.freelancer.com/projects/123 -> freelancer
//	http://indeed.com/job/1                 -> indeed
func DerivePlatform(link string) string {
	s := strings.TrimSpace(link)
	for _, p := range schemePrefixes {
		if len(s) >= len(p) && strings.EqualFold(s[:len(p)], p) {
			s = s[len(p):]
			break
		}
	}
	if len(s) >= 4 && strings.EqualFold(s[:4], "www.") {
		s = s[4:]
	}

	// host only
	if i := strings.IndexAny(s, "/?#:"); i >= 0 {
		s = s[:i]
	}
	if i := strings.IndexByte(s, '.'); i >= 0 {
		s = s[:i]
	}

	if s == "" {
		return models.UnknownPlatform
	}
	return s
}

func isAbsoluteLink(link string) bool {
	return strings.HasPrefix(strings.ToLower(link), "http")
}
