package parser

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// cleanText normalizes scraped field values: NFC form, no NBSPs,
// single spaces.
func cleanText(s string) string {
	s = norm.NFC.String(s)
	s = strings.ReplaceAll(s, "\u00a0", " ")
	return strings.Join(strings.Fields(s), " ")
}
