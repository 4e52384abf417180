package testsupport

import (
	"context"
	"testing"
	"time"

	"encore/internal/config"
	"encore/internal/schedule"
	"encore/internal/store"
)

// MustOpenStore opens a store.Store for tests and registers cleanup.
func MustOpenStore(t testing.TB, cfg *config.Config) *store.Store {
	t.Helper()

	st, err := store.Open(cfg)
	if err != nil {
		t.Fatalf("store.Open: %v", err)
	}
	t.Cleanup(func() {
		_ = st.Close()
	})
	return st
}

// SaveSchedule persists a schedule for tests using the provided store.
func SaveSchedule(t testing.TB, st *store.Store, owner string, perfs ...schedule.Performance) *store.ScheduleRecord {
	t.Helper()

	rec, err := st.SaveSchedule(context.Background(), owner, perfs)
	if err != nil {
		t.Fatalf("store.SaveSchedule: %v", err)
	}
	return rec
}

// Performance builds a minimal valid performance starting at the given hour
// and minute on the reference festival day.
func Performance(artist, stage string, hour, min int) schedule.Performance {
	day := time.Date(2026, time.May, 16, 0, 0, 0, 0, time.UTC)
	start := day.Add(time.Duration(hour)*time.Hour + time.Duration(min)*time.Minute)
	return schedule.Performance{Artist: artist, Stage: stage, Start: start}
}
