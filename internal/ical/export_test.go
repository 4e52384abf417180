package ical

import (
	"bytes"
	"strings"
	"testing"
	"time"

	ics "github.com/arran4/golang-ical"

	"encore/internal/meetup"
	"encore/internal/schedule"
)

func TestWriteSchedules(t *testing.T) {
	start := time.Date(2026, time.May, 16, 14, 0, 0, 0, time.UTC)
	schedules := []schedule.Schedule{
		{
			Owner: "alice",
			Performances: []schedule.Performance{
				{Artist: "Nobodies King", Stage: "Cyberian Stage", Start: start},
			},
		},
	}

	var buf bytes.Buffer
	if err := WriteSchedules(&buf, schedules, time.Hour); err != nil {
		t.Fatalf("WriteSchedules: %v", err)
	}

	cal, err := ics.ParseCalendar(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("ParseCalendar: %v", err)
	}
	events := cal.Events()
	if len(events) != 1 {
		t.Fatalf("events = %d, want 1", len(events))
	}

	ev := events[0]
	if p := ev.GetProperty(ics.ComponentPropertySummary); p == nil || p.Value != "Nobodies King" {
		t.Errorf("summary = %v, want artist name", p)
	}
	if p := ev.GetProperty(ics.ComponentPropertyLocation); p == nil || p.Value != "Cyberian Stage" {
		t.Errorf("location = %v, want stage", p)
	}
	gotStart, err := ev.GetStartAt()
	if err != nil {
		t.Fatalf("GetStartAt: %v", err)
	}
	if !gotStart.Equal(start) {
		t.Errorf("start = %v, want %v", gotStart, start)
	}
	gotEnd, err := ev.GetEndAt()
	if err != nil {
		t.Fatalf("GetEndAt: %v", err)
	}
	if !gotEnd.Equal(start.Add(time.Hour)) {
		t.Errorf("end = %v, want assumed set length applied", gotEnd)
	}
}

func TestWriteSchedulesStableUIDs(t *testing.T) {
	schedules := []schedule.Schedule{
		{
			Owner: "alice",
			Performances: []schedule.Performance{
				{Artist: "Excision", Stage: "Quarry Stage", Start: time.Date(2026, time.May, 16, 23, 30, 0, 0, time.UTC)},
			},
		},
	}

	var first, second bytes.Buffer
	if err := WriteSchedules(&first, schedules, time.Hour); err != nil {
		t.Fatalf("first write: %v", err)
	}
	if err := WriteSchedules(&second, schedules, time.Hour); err != nil {
		t.Fatalf("second write: %v", err)
	}

	uid := func(buf *bytes.Buffer) string {
		for _, line := range strings.Split(buf.String(), "\r\n") {
			if strings.HasPrefix(line, "UID:") {
				return line
			}
		}
		return ""
	}
	if u1, u2 := uid(&first), uid(&second); u1 == "" || u1 != u2 {
		t.Errorf("uids %q vs %q, want identical across exports", u1, u2)
	}
}

func TestWriteSchedulesSkipsInvalid(t *testing.T) {
	schedules := []schedule.Schedule{
		{
			Owner: "alice",
			Performances: []schedule.Performance{
				{Artist: "", Stage: "Main Stage", Start: time.Date(2026, time.May, 16, 14, 0, 0, 0, time.UTC)},
			},
		},
	}

	var buf bytes.Buffer
	if err := WriteSchedules(&buf, schedules, time.Hour); err != nil {
		t.Fatalf("WriteSchedules: %v", err)
	}
	cal, err := ics.ParseCalendar(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("ParseCalendar: %v", err)
	}
	if got := len(cal.Events()); got != 0 {
		t.Errorf("events = %d, want invalid performances skipped", got)
	}
}

func TestWriteMeetups(t *testing.T) {
	start := time.Date(2026, time.May, 16, 17, 45, 0, 0, time.UTC)
	candidates := []meetup.Candidate{
		{
			Start:        start,
			End:          start.Add(15 * time.Minute),
			Participants: []string{"alice", "bob"},
			Recommended:  true,
			AnchorArtist: "Excision",
			AnchorStage:  "Quarry Stage",
		},
	}

	var buf bytes.Buffer
	if err := WriteMeetups(&buf, candidates); err != nil {
		t.Fatalf("WriteMeetups: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "Meetup before Excision") {
		t.Errorf("output missing anchor summary:\n%s", out)
	}
	if !strings.Contains(out, "alice") || !strings.Contains(out, "bob") {
		t.Errorf("output missing participants:\n%s", out)
	}
}
