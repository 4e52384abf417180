package main

import (
	"fmt"
	"strings"
	"time"
)

const dayLayout = "2006-01-02"

// parseDayFlag interprets the --day value, defaulting to today. Schedule
// times are naive festival-local values carried in UTC.
func parseDayFlag(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		now := time.Now().UTC()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	day, err := time.Parse(dayLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse day %q (want YYYY-MM-DD): %w", value, err)
	}
	return day, nil
}

// parseClockFlag interprets a start or end value as either a full timestamp
// or an HH:MM clock on the given day.
func parseClockFlag(value string, day time.Time) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse("2006-01-02T15:04", value); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse("15:04", value)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse time %q (want HH:MM or YYYY-MM-DDTHH:MM): %w", value, err)
	}
	return time.Date(day.Year(), day.Month(), day.Day(), t.Hour(), t.Minute(), 0, 0, time.UTC), nil
}

func formatClock(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("15:04")
}

func formatSpan(start, end time.Time) string {
	if end.IsZero() {
		return formatClock(start)
	}
	return formatClock(start) + " - " + formatClock(end)
}

func formatDuration(d time.Duration) string {
	d = d.Round(time.Minute)
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	switch {
	case h > 0 && m > 0:
		return fmt.Sprintf("%dh%02dm", h, m)
	case h > 0:
		return fmt.Sprintf("%dh", h)
	default:
		return fmt.Sprintf("%dm", m)
	}
}
