package textutil

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// artistCharRe keeps alphanumerics, spaces, ampersands, and hyphens. The
// ampersand and hyphen preserve collaboration notations ("Excision & Wooli").
var artistCharRe = regexp.MustCompile(`[^\w &-]`)

// CleanArtist strips noise characters from a discovered artist token and
// collapses interior whitespace. Returns "" when nothing usable remains.
func CleanArtist(value string) string {
	value = artistCharRe.ReplaceAllString(value, "")
	value = spaceRunRe.ReplaceAllString(value, " ")
	return strings.TrimSpace(value)
}

// NormalizeKey lowercases and trims a token for identity comparison. Two
// performances whose artist, stage, and minute agree under this form are the
// same real-world event.
func NormalizeKey(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}

var titleCaser = cases.Title(language.Und)

// DisplayTitle renders a stored token in title case for human-facing output.
func DisplayTitle(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return value
	}
	return titleCaser.String(value)
}
