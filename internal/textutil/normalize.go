package textutil

import (
	"regexp"
	"strings"
)

var (
	// A lowercase l, a digit-glyph I, or a stray semicolon between a digit and
	// two digits is a misrecognized colon ("10l30" -> "10:30").
	brokenColonRe = regexp.MustCompile(`(\d)[lI;](\d{2})\b`)

	timeTokenRe = regexp.MustCompile(`(?i)\b\d{1,2}[:.]\d{2}\s*(?:AM|PM)?\b`)

	// Preceding words are required to look like name words (capitalized, two or
	// more characters) so a meridiem marker or stray glyph never gets pulled
	// into the stage line.
	stagePhraseRe = regexp.MustCompile(
		`((?:[A-Z][a-z'&-]+[ \t]+){0,2}(?i:Stage|Field|Grounds|Meadow|Garden|Valley|Tent|Arena)\b)`)

	// Status-bar and app-header artifacts that screenshots drag along.
	chromeRe = regexp.MustCompile(
		`(?i)\d{1,3}\s?%|\b(?:LTE|5G|4G|Wi-?Fi|VoLTE)\b|\b(?:Google Lens|Screenshot|Select all|Listen|Translate|Share)\b`)

	nonWhitelistRe = regexp.MustCompile(`[^\w\s:.\-]`)
	spaceRunRe     = regexp.MustCompile(`[ \t]+`)
)

// dashReplacer folds long-dash variants into a plain hyphen before the
// whitelist pass so time ranges like "7:00 – 9:00" keep their separator.
var dashReplacer = strings.NewReplacer("–", "-", "—", "-", "−", "-", "~", "-")

// NormalizeRecognized cleans raw OCR output into line-oriented text suitable
// for the extraction strategies. Time separators are repaired, UI chrome is
// stripped, a line break is inserted before every time token and stage-name
// token so each semantic unit lands on its own line, characters outside a
// small whitelist are dropped, and empty or single-character lines are
// removed. Always returns a (possibly empty) string.
func NormalizeRecognized(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}

	s := dashReplacer.Replace(raw)
	s = brokenColonRe.ReplaceAllString(s, "$1:$2")
	s = stripStatusBarClocks(s)
	s = chromeRe.ReplaceAllString(s, " ")
	s = timeTokenRe.ReplaceAllString(s, "\n${0}")
	s = stagePhraseRe.ReplaceAllString(s, "\n$1")
	s = nonWhitelistRe.ReplaceAllString(s, " ")

	lines := strings.Split(s, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(spaceRunRe.ReplaceAllString(line, " "))
		if len(line) <= 1 {
			continue
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}

// stripStatusBarClocks removes clock tokens from lines that also carry status
// bar or app header chrome; a "9:41" next to a battery readout is the phone's
// clock, not a set time.
func stripStatusBarClocks(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if chromeRe.MatchString(line) {
			lines[i] = timeTokenRe.ReplaceAllString(line, " ")
		}
	}
	return strings.Join(lines, "\n")
}

// IsTimeLine reports whether the line contains a recognizable clock token.
func IsTimeLine(line string) bool {
	return timeTokenRe.MatchString(line)
}

// HasVenueSuffix reports whether the line ends in one of the generic
// venue-type words that mark a stage name ("Cyberian Stage", "Circuit Grounds").
func HasVenueSuffix(line string) bool {
	return venueSuffixRe.MatchString(line)
}

var venueSuffixRe = regexp.MustCompile(
	`(?i)\b(?:Stage|Field|Grounds|Meadow|Garden|Valley|Tent|Arena)\s*$`)
