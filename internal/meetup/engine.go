package meetup

import (
	"time"

	"encore/internal/schedule"
	"encore/internal/textutil"
)

// Candidate is a proposed meeting window. Recommended marks a window derived
// from a shared performance; non-recommended windows come from overlapping
// free time. Participants always has at least two entries.
type Candidate struct {
	Start        time.Time
	End          time.Time
	Participants []string
	Recommended  bool
	AnchorArtist string
	AnchorStage  string
}

// Params tunes the discovery engine. Zero values are not usable; start from
// DefaultParams.
type Params struct {
	Window        schedule.Window // festival-day bounds for gap computation
	ArriveEarly   time.Duration   // meet-before-the-set convention
	MinOverlap    time.Duration   // minimum usable general overlap
	MaxWindow     time.Duration   // cap on a general overlap window
	AssumedSet    time.Duration   // assumed performance duration
	MaxCandidates int             // ranked list bound
	DayPivotHour  int             // festival-clock day start
}

// DefaultParams returns the conventional engine settings for a festival day.
func DefaultParams(win schedule.Window) Params {
	return Params{
		Window:        win,
		ArriveEarly:   15 * time.Minute,
		MinOverlap:    15 * time.Minute,
		MaxWindow:     time.Hour,
		AssumedSet:    schedule.AssumedSetLength,
		MaxCandidates: 8,
		DayPivotHour:  8,
	}
}

// Engine computes ranked meetup candidates for a set of schedules.
type Engine struct {
	params Params
}

// NewEngine constructs an Engine with the given parameters.
func NewEngine(params Params) *Engine {
	return &Engine{params: params}
}

// commonPerformance is one identity shared by two or more owners. The
// representative record is the first one seen; owners keep insertion order.
type commonPerformance struct {
	perf   schedule.Performance
	owners []string
}

// Discover builds the ranked candidate list for the given schedules. The
// result holds at most MaxCandidates entries, recommended candidates first.
func (e *Engine) Discover(schedules []schedule.Schedule) []Candidate {
	common := indexCommon(schedules)

	candidates := e.recommended(schedules, common)
	if len(candidates) < 2 {
		candidates = append(candidates, e.generalOverlaps(schedules, common)...)
	}

	rank(candidates, e.params.DayPivotHour)
	if len(candidates) > e.params.MaxCandidates {
		candidates = candidates[:e.params.MaxCandidates]
	}
	return candidates
}

// indexCommon builds the identity index across all schedules and returns the
// performances attended by at least two owners, in first-seen order.
func indexCommon(schedules []schedule.Schedule) []*commonPerformance {
	var order []string
	byID := make(map[string]*commonPerformance)
	for _, s := range schedules {
		for _, p := range s.Performances {
			if !p.Valid() {
				continue
			}
			id := p.Identity()
			cp, ok := byID[id]
			if !ok {
				cp = &commonPerformance{perf: p}
				byID[id] = cp
				order = append(order, id)
			}
			if !containsOwner(cp.owners, s.Owner) {
				cp.owners = append(cp.owners, s.Owner)
			}
		}
	}

	var common []*commonPerformance
	for _, id := range order {
		if len(byID[id].owners) >= 2 {
			common = append(common, byID[id])
		}
	}
	return common
}

// recommended proposes an arrive-early window before every common performance.
// Owners holding the performance attend; other owners join when none of their
// own sets overlaps the window. Windows reported by multiple contributors
// collapse to one candidate.
func (e *Engine) recommended(schedules []schedule.Schedule, common []*commonPerformance) []Candidate {
	seen := make(map[string]struct{}, len(common))
	var out []Candidate

	for _, cp := range common {
		winStart := cp.perf.Start.Add(-e.params.ArriveEarly)
		winEnd := cp.perf.Start

		key := winStart.UTC().Format(time.RFC3339) + "\x00" +
			cp.perf.Start.UTC().Format(time.RFC3339) + "\x00" +
			textutil.NormalizeKey(cp.perf.Stage)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}

		participants := append([]string(nil), cp.owners...)
		for _, s := range schedules {
			if containsOwner(cp.owners, s.Owner) {
				continue
			}
			if ownerFree(s.Performances, winStart, winEnd, e.params.AssumedSet) {
				participants = append(participants, s.Owner)
			}
		}
		if len(participants) < 2 {
			continue
		}

		out = append(out, Candidate{
			Start:        winStart,
			End:          winEnd,
			Participants: participants,
			Recommended:  true,
			AnchorArtist: cp.perf.Artist,
			AnchorStage:  cp.perf.Stage,
		})
	}
	return out
}

// generalOverlaps intersects free-time gaps pairwise across owners. Only
// owners with at least two performances take part; a lone performance
// produces no internal gap worth comparing. Overlaps shorter than MinOverlap
// are dropped and longer ones keep their trailing MaxWindow, since meeting
// right before the next commitment is preferred.
func (e *Engine) generalOverlaps(schedules []schedule.Schedule, common []*commonPerformance) []Candidate {
	type ownerGaps struct {
		owner string
		gaps  []schedule.Gap
	}

	var owners []ownerGaps
	for _, s := range schedules {
		if countValid(s.Performances) < 2 {
			continue
		}
		owners = append(owners, ownerGaps{
			owner: s.Owner,
			gaps:  schedule.FindGaps(s.Performances, e.params.Window, e.params.AssumedSet),
		})
	}

	var out []Candidate
	for i := 0; i < len(owners); i++ {
		for j := i + 1; j < len(owners); j++ {
			for _, ga := range owners[i].gaps {
				for _, gb := range owners[j].gaps {
					start := laterOf(ga.Start, gb.Start)
					end := earlierOf(ga.End, gb.End)
					if end.Sub(start) < e.params.MinOverlap {
						continue
					}
					if end.Sub(start) > e.params.MaxWindow {
						start = end.Add(-e.params.MaxWindow)
					}

					cand := Candidate{
						Start:        start,
						End:          end,
						Participants: []string{owners[i].owner, owners[j].owner},
					}
					if anchor := nextCommonAfter(common, end); anchor != nil {
						cand.AnchorArtist = anchor.perf.Artist
						cand.AnchorStage = anchor.perf.Stage
					}
					out = append(out, cand)
				}
			}
		}
	}
	return out
}

// nextCommonAfter finds the common performance starting soonest at or after
// the given instant. Returns nil when none follows.
func nextCommonAfter(common []*commonPerformance, after time.Time) *commonPerformance {
	var best *commonPerformance
	for _, cp := range common {
		if cp.perf.Start.Before(after) {
			continue
		}
		if best == nil || cp.perf.Start.Before(best.perf.Start) {
			best = cp
		}
	}
	return best
}

// ownerFree reports whether none of the owner's performances overlaps the
// window under the assumed set duration.
func ownerFree(perfs []schedule.Performance, winStart, winEnd time.Time, assumed time.Duration) bool {
	for _, p := range perfs {
		if !p.Valid() {
			continue
		}
		s, e := p.IntervalAssuming(assumed)
		if s.Before(winEnd) && e.After(winStart) {
			return false
		}
	}
	return true
}

func countValid(perfs []schedule.Performance) int {
	n := 0
	for _, p := range perfs {
		if p.Valid() {
			n++
		}
	}
	return n
}

func containsOwner(owners []string, owner string) bool {
	for _, o := range owners {
		if o == owner {
			return true
		}
	}
	return false
}

func laterOf(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}
	return b
}

func earlierOf(a, b time.Time) time.Time {
	if a.Before(b) {
		return a
	}
	return b
}
