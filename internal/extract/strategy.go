package extract

import (
	"strings"
	"time"

	"encore/internal/schedule"
)

// Strategy is one extraction heuristic. Implementations receive the normalized
// text split into lines plus the nominal festival date, and return every
// performance they could recognize; an empty slice is the well-defined "no
// match" result that hands control to the next strategy.
type Strategy interface {
	Name() string
	Extract(lines []string, day time.Time) []schedule.Performance
}

// Extractor runs strategies in fixed priority order and keeps the first
// non-empty result.
type Extractor struct {
	strategies []Strategy
}

// New constructs an Extractor with the default strategy order: line scan
// first, range scan as fallback.
func New() *Extractor {
	return &Extractor{strategies: []Strategy{lineScan{}, rangeScan{}}}
}

// WithStrategies overrides the strategy order (primarily for tests).
func WithStrategies(strategies ...Strategy) *Extractor {
	return &Extractor{strategies: strategies}
}

// Extract parses normalized text into performance records. Unparseable input
// yields an empty slice, never an error.
func (e *Extractor) Extract(normalized string, day time.Time) []schedule.Performance {
	normalized = strings.TrimSpace(normalized)
	if normalized == "" {
		return nil
	}
	lines := strings.Split(normalized, "\n")
	for _, s := range e.strategies {
		if perfs := s.Extract(lines, day); len(perfs) > 0 {
			return perfs
		}
	}
	return nil
}
