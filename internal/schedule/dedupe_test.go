package schedule

import (
	"testing"
	"time"
)

func at(t *testing.T, hour, min int) time.Time {
	t.Helper()
	return time.Date(2026, 5, 16, hour, min, 0, 0, time.UTC)
}

func TestMergeLastWriteWins(t *testing.T) {
	accumulated := []Performance{
		{Artist: "Wooli", Stage: "Cyberian Stage", Start: at(t, 20, 0)},
	}
	incoming := []Performance{
		{Artist: "  wooli ", Stage: "CYBERIAN STAGE", Start: at(t, 20, 0).Add(30 * time.Second)},
	}

	got := Merge(accumulated, incoming)
	if len(got) != 1 {
		t.Fatalf("expected 1 merged record, got %d", len(got))
	}
	if got[0].Artist != "  wooli " {
		t.Errorf("later entry should win, got artist %q", got[0].Artist)
	}
}

func TestMergeDistinctIdentities(t *testing.T) {
	a := []Performance{{Artist: "Wooli", Stage: "Cyberian Stage", Start: at(t, 20, 0)}}
	b := []Performance{
		{Artist: "Wooli", Stage: "Neon Garden", Start: at(t, 20, 0)},
		{Artist: "Wooli", Stage: "Cyberian Stage", Start: at(t, 22, 0)},
	}

	got := Merge(a, b)
	if len(got) != 3 {
		t.Fatalf("expected 3 records, got %d", len(got))
	}
}

func TestMergeSkipsMalformed(t *testing.T) {
	a := []Performance{{Artist: "Wooli", Stage: "Cyberian Stage", Start: at(t, 20, 0)}}
	b := []Performance{
		{Artist: "", Stage: "Cyberian Stage", Start: at(t, 21, 0)},
		{Artist: "Excision", Stage: "Cyberian Stage"},
	}

	got := Merge(a, b)
	if len(got) != 1 {
		t.Fatalf("malformed records should be dropped, got %d records", len(got))
	}
}

func TestMergeEmptyShortCircuit(t *testing.T) {
	a := []Performance{{Artist: "Wooli", Stage: "Cyberian Stage", Start: at(t, 20, 0)}}

	if got := Merge(a, nil); len(got) != 1 || got[0].Artist != "Wooli" {
		t.Errorf("Merge(a, nil) should return a unchanged, got %v", got)
	}
	if got := Merge(nil, a); len(got) != 1 || got[0].Artist != "Wooli" {
		t.Errorf("Merge(nil, a) should return a unchanged, got %v", got)
	}
	if got := Merge(nil, nil); got != nil {
		t.Errorf("Merge(nil, nil) = %v, want nil", got)
	}
}

func TestMergeIdempotent(t *testing.T) {
	a := []Performance{
		{Artist: "Wooli", Stage: "Cyberian Stage", Start: at(t, 20, 0)},
		{Artist: "Excision", Stage: "Circuit Grounds", Start: at(t, 21, 0)},
	}
	b := []Performance{
		{Artist: "wooli", Stage: "cyberian stage", Start: at(t, 20, 0)},
	}

	once := Merge(a, b)
	twice := Merge(once, nil)
	if len(once) != len(twice) {
		t.Fatalf("dedup not idempotent: %d vs %d", len(once), len(twice))
	}
	for i := range once {
		if once[i] != twice[i] {
			t.Errorf("record %d changed on re-merge: %v vs %v", i, once[i], twice[i])
		}
	}
}

func TestIdentityNormalization(t *testing.T) {
	a := Performance{Artist: " Wooli ", Stage: "Cyberian Stage", Start: at(t, 20, 0)}
	b := Performance{Artist: "wooli", Stage: " cyberian stage ", Start: at(t, 20, 0).Add(45 * time.Second)}
	if a.Identity() != b.Identity() {
		t.Errorf("identities differ: %q vs %q", a.Identity(), b.Identity())
	}

	c := Performance{Artist: "Wooli", Stage: "Cyberian Stage", Start: at(t, 20, 1)}
	if a.Identity() == c.Identity() {
		t.Error("different minutes should produce different identities")
	}
}

func TestIntervalAssuming(t *testing.T) {
	p := Performance{Artist: "Wooli", Stage: "Cyberian Stage", Start: at(t, 20, 0)}

	start, end := p.IntervalAssuming(time.Hour)
	if !start.Equal(at(t, 20, 0)) || !end.Equal(at(t, 21, 0)) {
		t.Errorf("assumed interval = [%v, %v]", start, end)
	}

	p.End = at(t, 19, 0) // end before start: fall back to assumed duration
	if _, end := p.IntervalAssuming(time.Hour); !end.Equal(at(t, 21, 0)) {
		t.Errorf("negative duration should fall back to assumed end, got %v", end)
	}

	p.End = at(t, 22, 30)
	if _, end := p.IntervalAssuming(time.Hour); !end.Equal(at(t, 22, 30)) {
		t.Errorf("explicit end should be honored, got %v", end)
	}
}
