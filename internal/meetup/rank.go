package meetup

import (
	"sort"
	"time"
)

// festivalClockKey maps an instant onto a minute-of-day scale that starts at
// the pivot hour, so late-night windows sort after the prior evening instead
// of wrapping to the front of the calendar day.
func festivalClockKey(t time.Time, pivotHour int) int {
	h := t.Hour()
	if h < pivotHour {
		h += 24 - pivotHour
	} else {
		h -= pivotHour
	}
	return h*60 + t.Minute()
}

// rank orders candidates in place: recommended before non-recommended, then by
// festival clock. The sort is stable so ties keep insertion order.
func rank(candidates []Candidate, pivotHour int) {
	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].Recommended != candidates[j].Recommended {
			return candidates[i].Recommended
		}
		return festivalClockKey(candidates[i].Start, pivotHour) <
			festivalClockKey(candidates[j].Start, pivotHour)
	})
}
