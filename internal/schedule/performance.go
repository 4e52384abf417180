package schedule

import (
	"sort"
	"strings"
	"time"

	"encore/internal/textutil"
)

// AssumedSetLength is the duration assigned to a performance whose true end
// time was not recognized. True end times rarely survive OCR, so interval math
// leans on this simplification throughout.
const AssumedSetLength = time.Hour

// Performance is a scheduled artist appearance. Start is authoritative; a zero
// End means the end time is unknown and the assumed set length applies.
type Performance struct {
	Artist string
	Stage  string
	Start  time.Time
	End    time.Time
}

// Valid reports whether the record carries the required fields. Records
// failing this check are silently dropped during merging and gap computation.
func (p Performance) Valid() bool {
	return strings.TrimSpace(p.Artist) != "" && !p.Start.IsZero()
}

// Identity returns the deduplication key: lowercased+trimmed artist and stage
// plus the start time truncated to the minute.
func (p Performance) Identity() string {
	return textutil.NormalizeKey(p.Artist) + "\x00" +
		textutil.NormalizeKey(p.Stage) + "\x00" +
		p.Start.Truncate(time.Minute).UTC().Format("2006-01-02T15:04")
}

// IntervalAssuming returns the occupied interval for this performance, using
// the supplied duration when the end time is unknown or precedes the start.
// The result never has negative length.
func (p Performance) IntervalAssuming(assumed time.Duration) (time.Time, time.Time) {
	if !p.End.IsZero() && p.End.After(p.Start) {
		return p.Start, p.End
	}
	return p.Start, p.Start.Add(assumed)
}

// Interval is IntervalAssuming with the package default set length.
func (p Performance) Interval() (time.Time, time.Time) {
	return p.IntervalAssuming(AssumedSetLength)
}

// Schedule is one contributor's deduplicated, chronological performance list.
type Schedule struct {
	Owner        string
	Performances []Performance
}

// SortByStart orders performances chronologically in place. The sort is stable
// so records sharing a start minute keep their insertion order.
func SortByStart(perfs []Performance) {
	sort.SliceStable(perfs, func(i, j int) bool {
		return perfs[i].Start.Before(perfs[j].Start)
	})
}
