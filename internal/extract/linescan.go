package extract

import (
	"strings"
	"time"

	"encore/internal/schedule"
	"encore/internal/textutil"
)

// contextWindow is how many lines around a time anchor are searched for the
// artist and stage belonging to it.
const contextWindow = 3

// lineScan recognizes layouts where every semantic unit sits on its own line:
// a time anchor with the artist and stage on neighboring lines. The most
// recently seen stage line is carried forward as context for anchors that lack
// a stage of their own.
type lineScan struct{}

func (lineScan) Name() string { return "line_scan" }

func (lineScan) Extract(lines []string, day time.Time) []schedule.Performance {
	var out []schedule.Performance
	lastStage := ""

	for i, line := range lines {
		if stage, ok := stageToken(line); ok {
			lastStage = stage
			continue
		}

		c, ok := parseSoleClock(line)
		if !ok {
			continue
		}

		stage := ""
		artist := ""
		for j := i + 1; j <= i+contextWindow && j < len(lines); j++ {
			if textutil.IsTimeLine(lines[j]) {
				// The next time token starts another entry.
				break
			}
			if s, ok := stageToken(lines[j]); ok {
				if stage == "" {
					stage = s
				}
				continue
			}
			if artist == "" {
				artist = textutil.CleanArtist(lines[j])
			}
		}
		if artist == "" {
			for j := i - 1; j >= i-contextWindow && j >= 0; j-- {
				if textutil.IsTimeLine(lines[j]) {
					break
				}
				if _, ok := stageToken(lines[j]); ok {
					continue
				}
				if artist = textutil.CleanArtist(lines[j]); artist != "" {
					break
				}
			}
		}

		if stage == "" {
			stage = lastStage
		}
		if artist == "" {
			// No artist near this time occurrence; not an anchor worth keeping.
			continue
		}

		out = append(out, schedule.Performance{
			Artist: artist,
			Stage:  stage,
			Start:  resolveSingle(day, c),
		})
	}
	return out
}

// stageToken reports whether the line is a stage name and returns its cleaned
// form. The heuristic is a generic venue-type suffix on a reasonably short
// line.
func stageToken(line string) (string, bool) {
	line = strings.TrimSpace(line)
	if len(line) > 40 || !textutil.HasVenueSuffix(line) {
		return "", false
	}
	return line, true
}
