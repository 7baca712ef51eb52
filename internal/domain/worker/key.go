package worker

import (
	"regexp"
	"strings"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var nonAlnumRun = regexp.MustCompile(`[^a-z0-9]+`)

// combining diacritical marks block, U+0300..U+036F
var stripMarks = runes.Remove(runes.Predicate(func(r rune) bool {
	return r >= 0x0300 && r <= 0x036f
}))

// NormalizeKey derives the unique worker key from a display name:
// diacritics stripped, lowercased, non-alphanumeric runs collapsed to "_",
// no leading or trailing "_". "Juan Pérez" becomes "juan_perez".
func NormalizeKey(name string) string {
	stripped, _, err := transform.String(transform.Chain(norm.NFD, stripMarks), name)
	if err != nil {
		stripped = name
	}

	key := strings.ToLower(strings.TrimSpace(stripped))
	key = nonAlnumRun.ReplaceAllString(key, "_")
	return strings.Trim(key, "_")
}
