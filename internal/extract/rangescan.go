package extract

import (
	"strings"
	"time"

	"encore/internal/schedule"
	"encore/internal/textutil"
)

// rangeScan recognizes layouts built around explicit "7:45PM - 9:00PM" range
// lines. The artist is resolved by a ladder of fallbacks around the match and
// the stage by scanning a window centered on the match line.
type rangeScan struct{}

func (rangeScan) Name() string { return "range_scan" }

func (rangeScan) Extract(lines []string, day time.Time) []schedule.Performance {
	var out []schedule.Performance

	for i, line := range lines {
		loc := rangeRe.FindStringSubmatchIndex(line)
		if loc == nil {
			continue
		}
		s, ok := newClock(group(line, loc, 1), group(line, loc, 2), group(line, loc, 3))
		if !ok {
			continue
		}
		e, ok := newClock(group(line, loc, 4), group(line, loc, 5), group(line, loc, 6))
		if !ok {
			continue
		}

		artist := resolveArtist(lines, i, line[:loc[0]])
		if artist == "" {
			continue
		}
		start, end := resolveRange(day, s, e)

		out = append(out, schedule.Performance{
			Artist: artist,
			Stage:  resolveStage(lines, i),
			Start:  start,
			End:    end,
		})
	}
	return out
}

func group(line string, loc []int, n int) string {
	if loc[2*n] < 0 {
		return ""
	}
	return line[loc[2*n]:loc[2*n+1]]
}

// resolveArtist walks the fallback ladder: the line immediately above (unless
// it is itself a time line), the text preceding the match on the same line,
// any non-time line up to three above, and finally the nearest non-time line
// by distance from the match.
func resolveArtist(lines []string, i int, prefix string) string {
	if i > 0 && !textutil.IsTimeLine(lines[i-1]) {
		if artist := textutil.CleanArtist(lines[i-1]); artist != "" {
			return artist
		}
	}
	if artist := textutil.CleanArtist(prefix); artist != "" {
		return artist
	}
	for j := i - 1; j >= i-contextWindow && j >= 0; j-- {
		if textutil.IsTimeLine(lines[j]) {
			continue
		}
		if artist := textutil.CleanArtist(lines[j]); artist != "" {
			return artist
		}
	}
	for d := 1; d < len(lines); d++ {
		for _, j := range []int{i - d, i + d} {
			if j < 0 || j >= len(lines) || textutil.IsTimeLine(lines[j]) {
				continue
			}
			if artist := textutil.CleanArtist(lines[j]); artist != "" {
				return artist
			}
		}
	}
	return ""
}

// resolveStage scans a seven-line window centered on the match for a
// venue-suffix line, falling back to any short non-time token run when no
// suffix matches.
func resolveStage(lines []string, i int) string {
	lo, hi := i-contextWindow, i+contextWindow
	for j := lo; j <= hi; j++ {
		if j < 0 || j >= len(lines) {
			continue
		}
		if stage, ok := stageToken(lines[j]); ok {
			return stage
		}
	}
	// Token-run fallback. Lines after the match are preferred; the line above
	// it is usually the artist.
	order := make([]int, 0, 2*contextWindow)
	for j := i + 1; j <= hi; j++ {
		order = append(order, j)
	}
	for j := lo; j < i; j++ {
		order = append(order, j)
	}
	for _, j := range order {
		if j < 0 || j >= len(lines) || textutil.IsTimeLine(lines[j]) {
			continue
		}
		candidate := strings.TrimSpace(lines[j])
		if len(candidate) >= 4 && len(candidate) <= 25 {
			return candidate
		}
	}
	return ""
}
