package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"encore/internal/config"
	"encore/internal/schedule"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	dir := t.TempDir()
	cfg := config.Default()
	cfg.Paths.DataDir = filepath.Join(dir, "data")
	cfg.Paths.LogDir = filepath.Join(dir, "logs")
	s, err := Open(&cfg)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() {
		_ = s.Close()
	})
	return s
}

func perf(artist, stage string, hour, min int) schedule.Performance {
	return schedule.Performance{
		Artist: artist,
		Stage:  stage,
		Start:  time.Date(2026, time.May, 16, hour, min, 0, 0, time.UTC),
	}
}

func TestSaveAndGetSchedule(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	rec, err := s.SaveSchedule(ctx, "alice", []schedule.Performance{
		perf("Nobodies King", "Cyberian Stage", 14, 0),
		perf("Excision", "The Quarry", 23, 30),
	})
	if err != nil {
		t.Fatalf("SaveSchedule: %v", err)
	}
	if rec.Owner != "alice" {
		t.Errorf("owner = %q, want alice", rec.Owner)
	}
	if rec.Count != 2 {
		t.Errorf("count = %d, want 2", rec.Count)
	}
	if rec.ID == "" {
		t.Error("expected generated schedule id")
	}

	got, err := s.GetSchedule(ctx, "alice")
	if err != nil {
		t.Fatalf("GetSchedule: %v", err)
	}
	if len(got.Performances) != 2 {
		t.Fatalf("performances = %d, want 2", len(got.Performances))
	}
	if got.Performances[0].Artist != "Nobodies King" {
		t.Errorf("first artist = %q, want chronological order", got.Performances[0].Artist)
	}
}

func TestSaveScheduleReplacesPerformances(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if _, err := s.SaveSchedule(ctx, "alice", []schedule.Performance{
		perf("Old Act", "Main Stage", 13, 0),
	}); err != nil {
		t.Fatalf("first save: %v", err)
	}
	rec, err := s.SaveSchedule(ctx, "alice", []schedule.Performance{
		perf("New Act", "Main Stage", 15, 0),
	})
	if err != nil {
		t.Fatalf("second save: %v", err)
	}
	if rec.Count != 1 {
		t.Errorf("count = %d, want 1", rec.Count)
	}

	got, err := s.GetSchedule(ctx, "alice")
	if err != nil {
		t.Fatalf("GetSchedule: %v", err)
	}
	if len(got.Performances) != 1 || got.Performances[0].Artist != "New Act" {
		t.Errorf("performances = %+v, want only New Act", got.Performances)
	}
}

func TestSaveScheduleKeepsIDStable(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	first, err := s.SaveSchedule(ctx, "alice", []schedule.Performance{perf("A", "Main Stage", 13, 0)})
	if err != nil {
		t.Fatalf("first save: %v", err)
	}
	second, err := s.SaveSchedule(ctx, "alice", []schedule.Performance{perf("B", "Main Stage", 14, 0)})
	if err != nil {
		t.Fatalf("second save: %v", err)
	}
	if first.ID != second.ID {
		t.Errorf("schedule id changed across saves: %q vs %q", first.ID, second.ID)
	}
}

func TestSaveScheduleSkipsInvalidPerformances(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	rec, err := s.SaveSchedule(ctx, "alice", []schedule.Performance{
		perf("Real Act", "Main Stage", 13, 0),
		{Artist: "", Stage: "Main Stage", Start: time.Date(2026, time.May, 16, 14, 0, 0, 0, time.UTC)},
		{Artist: "No Start", Stage: "Main Stage"},
	})
	if err != nil {
		t.Fatalf("SaveSchedule: %v", err)
	}
	if rec.Count != 1 {
		t.Errorf("count = %d, want invalid entries skipped", rec.Count)
	}
}

func TestGetScheduleNotFound(t *testing.T) {
	s := newTestStore(t)
	_, err := s.GetSchedule(context.Background(), "nobody")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestListSchedules(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if _, err := s.SaveSchedule(ctx, "bob", []schedule.Performance{perf("B", "Main Stage", 13, 0)}); err != nil {
		t.Fatalf("save bob: %v", err)
	}
	if _, err := s.SaveSchedule(ctx, "alice", []schedule.Performance{perf("A", "Main Stage", 14, 0)}); err != nil {
		t.Fatalf("save alice: %v", err)
	}

	schedules, err := s.ListSchedules(ctx)
	if err != nil {
		t.Fatalf("ListSchedules: %v", err)
	}
	if len(schedules) != 2 {
		t.Fatalf("schedules = %d, want 2", len(schedules))
	}
	if schedules[0].Owner != "alice" || schedules[1].Owner != "bob" {
		t.Errorf("owners = %q, %q, want sorted by name", schedules[0].Owner, schedules[1].Owner)
	}
}

func TestDeleteSchedule(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if _, err := s.SaveSchedule(ctx, "alice", []schedule.Performance{perf("A", "Main Stage", 13, 0)}); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := s.DeleteSchedule(ctx, "alice"); err != nil {
		t.Fatalf("DeleteSchedule: %v", err)
	}
	if _, err := s.GetSchedule(ctx, "alice"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err after delete = %v, want ErrNotFound", err)
	}
	if err := s.DeleteSchedule(ctx, "alice"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("second delete = %v, want ErrNotFound", err)
	}
}

func TestSchemaMismatchDetected(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Default()
	cfg.Paths.DataDir = filepath.Join(dir, "data")
	cfg.Paths.LogDir = filepath.Join(dir, "logs")

	s, err := Open(&cfg)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if _, err := s.db.Exec("UPDATE schema_version SET version = 99"); err != nil {
		t.Fatalf("bump version: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	if _, err := Open(&cfg); !errors.Is(err, ErrSchemaMismatch) {
		t.Fatalf("reopen err = %v, want ErrSchemaMismatch", err)
	}
}
