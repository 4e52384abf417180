package extract

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// clock is a wall-clock reading as it appeared in text. mer is "", "am", or
// "pm"; empty means the text carried no meridiem marker.
type clock struct {
	hour int
	min  int
	mer  string
}

var (
	soleClockRe = regexp.MustCompile(`(?i)^(\d{1,2})[:.](\d{2})\s*(AM|PM)?$`)
	rangeRe     = regexp.MustCompile(`(?i)(\d{1,2})[:.](\d{2})\s*(AM|PM)?\s*-\s*(\d{1,2})[:.](\d{2})\s*(AM|PM)?`)
)

func newClock(hour, min, mer string) (clock, bool) {
	h, err := strconv.Atoi(hour)
	if err != nil || h > 23 {
		return clock{}, false
	}
	m, err := strconv.Atoi(min)
	if err != nil || m > 59 {
		return clock{}, false
	}
	return clock{hour: h, min: m, mer: strings.ToLower(mer)}, true
}

// parseSoleClock matches a line that is exactly one clock token.
func parseSoleClock(line string) (clock, bool) {
	m := soleClockRe.FindStringSubmatch(strings.TrimSpace(line))
	if m == nil {
		return clock{}, false
	}
	return newClock(m[1], m[2], m[3])
}

// resolveMeridiems fills in missing meridiem markers for a start-end pair.
// With no markers at all the event is assumed to run in the evening (both PM);
// a single marker propagates to the other side, except that a start hour of 12
// or more, or a start hour textually above an end hour below 6, marks the
// ambiguous side as morning (a set running past midnight).
func resolveMeridiems(s, e clock) (clock, clock) {
	overnight := s.hour > e.hour && e.hour < 6
	switch {
	case s.mer == "" && e.mer == "":
		s.mer = "pm"
		e.mer = "pm"
		if overnight {
			e.mer = "am"
		}
	case s.mer == "":
		s.mer = e.mer
		if s.hour >= 12 || overnight {
			s.mer = "am"
		}
	case e.mer == "":
		e.mer = s.mer
		if s.hour >= 12 || overnight {
			e.mer = "am"
		}
	}
	return s, e
}

// instant anchors a resolved clock on the nominal festival date. Hours of 13
// and up are already unambiguous 24-hour readings and ignore the meridiem.
func (c clock) instant(day time.Time) time.Time {
	hour := c.hour
	switch {
	case hour >= 13:
	case c.mer == "pm" && hour < 12:
		hour += 12
	case c.mer == "am" && hour == 12:
		hour = 0
	}
	base := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	return base.Add(time.Duration(hour)*time.Hour + time.Duration(c.min)*time.Minute)
}

// resolveRange turns a start-end clock pair into concrete instants on the
// nominal day. An end instant at or before the start instant is advanced by
// 24 hours (a set spanning midnight).
func resolveRange(day time.Time, s, e clock) (time.Time, time.Time) {
	s, e = resolveMeridiems(s, e)
	start := s.instant(day)
	end := e.instant(day)
	if !end.After(start) {
		end = end.AddDate(0, 0, 1)
	}
	return start, end
}

// resolveSingle anchors a lone clock token on the nominal day, defaulting to
// the evening when no meridiem was given.
func resolveSingle(day time.Time, c clock) time.Time {
	if c.mer == "" {
		c.mer = "pm"
	}
	return c.instant(day)
}
