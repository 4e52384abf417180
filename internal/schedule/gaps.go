package schedule

import "time"

// Gap is a contiguous free interval within one owner's schedule, bounded by
// the festival-day window and/or adjacent performances. End strictly exceeds
// Start; zero-length gaps are never emitted.
type Gap struct {
	Start           time.Time
	End             time.Time
	PrecedingArtist string
	FollowingArtist string
	FollowingStage  string
}

// Duration returns the length of the gap.
func (g Gap) Duration() time.Duration {
	return g.End.Sub(g.Start)
}

// Window bounds a festival day. Start is typically noon and End 06:00 the
// following morning.
type Window struct {
	Start time.Time
	End   time.Time
}

// DayWindow builds the festival-day window for the given nominal date. An end
// hour at or before the start hour is interpreted as the following morning.
func DayWindow(day time.Time, startHour, endHour int) Window {
	base := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	win := Window{Start: base.Add(time.Duration(startHour) * time.Hour)}
	if endHour <= startHour {
		base = base.AddDate(0, 0, 1)
	}
	win.End = base.Add(time.Duration(endHour) * time.Hour)
	return win
}

// FindGaps computes the ordered free intervals in one owner's schedule within
// the given day window. Each performance occupies its interval under the
// assumed duration; gaps are emitted before the first interval, wherever the
// next interval starts past the occupied frontier, and after the last one.
// The frontier is the furthest interval end seen so far, so a long set with a
// known end time masks shorter sets nested inside it. Invalid records are
// filtered out first; input order does not matter.
func FindGaps(perfs []Performance, win Window, assumed time.Duration) []Gap {
	sorted := make([]Performance, 0, len(perfs))
	for _, p := range perfs {
		if p.Valid() {
			sorted = append(sorted, p)
		}
	}
	if len(sorted) == 0 {
		return nil
	}
	SortByStart(sorted)

	gaps := make([]Gap, 0, len(sorted)+1)

	firstStart, frontier := sorted[0].IntervalAssuming(assumed)
	frontierArtist := sorted[0].Artist
	if firstStart.After(win.Start) {
		gaps = append(gaps, Gap{
			Start:           win.Start,
			End:             firstStart,
			FollowingArtist: sorted[0].Artist,
			FollowingStage:  sorted[0].Stage,
		})
	}

	for i := 1; i < len(sorted); i++ {
		nextStart, nextEnd := sorted[i].IntervalAssuming(assumed)
		if nextStart.After(frontier) {
			gaps = append(gaps, Gap{
				Start:           frontier,
				End:             nextStart,
				PrecedingArtist: frontierArtist,
				FollowingArtist: sorted[i].Artist,
				FollowingStage:  sorted[i].Stage,
			})
		}
		if nextEnd.After(frontier) {
			frontier = nextEnd
			frontierArtist = sorted[i].Artist
		}
	}

	if win.End.After(frontier) {
		gaps = append(gaps, Gap{
			Start:           frontier,
			End:             win.End,
			PrecedingArtist: frontierArtist,
		})
	}

	return gaps
}
