package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate checks configuration invariants after normalization.
func (c *Config) Validate() error {
	var problems []string

	if c.Paths.DataDir == "" {
		problems = append(problems, "paths.data_dir must be set")
	}
	if c.OCR.Binary == "" {
		problems = append(problems, "ocr.binary must be set")
	}
	if c.OCR.TimeoutSeconds <= 0 {
		problems = append(problems, "ocr.timeout_seconds must be positive")
	}
	if c.Festival.DayStartHour < 0 || c.Festival.DayStartHour > 23 {
		problems = append(problems, "festival.day_start_hour must be within 0-23")
	}
	if c.Festival.DayEndHour < 0 || c.Festival.DayEndHour > 23 {
		problems = append(problems, "festival.day_end_hour must be within 0-23")
	}
	if c.Festival.DayPivotHour < 0 || c.Festival.DayPivotHour > 23 {
		problems = append(problems, "festival.day_pivot_hour must be within 0-23")
	}
	if c.Festival.SetMinutes <= 0 {
		problems = append(problems, "festival.set_minutes must be positive")
	}
	if c.Festival.ArriveEarlyMinutes <= 0 {
		problems = append(problems, "festival.arrive_early_minutes must be positive")
	}
	if c.Festival.MinOverlapMinutes <= 0 {
		problems = append(problems, "festival.min_overlap_minutes must be positive")
	}
	if c.Festival.MaxWindowMinutes < c.Festival.MinOverlapMinutes {
		problems = append(problems, "festival.max_window_minutes must not be below min_overlap_minutes")
	}
	if c.Festival.MaxCandidates <= 0 {
		problems = append(problems, "festival.max_candidates must be positive")
	}
	switch c.Logging.Format {
	case "", "console", "json":
	default:
		problems = append(problems, fmt.Sprintf("logging.format: unsupported value %q", c.Logging.Format))
	}

	if len(problems) > 0 {
		return errors.New("invalid configuration: " + strings.Join(problems, "; "))
	}
	return nil
}
