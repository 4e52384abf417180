package textutil

import (
	"strings"
	"testing"
)

func TestNormalizeRecognizedRepairsTimeSeparators(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"lowercase l", "10l30", "10:30"},
		{"digit glyph I", "10I30", "10:30"},
		{"semicolon", "10;30", "10:30"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeRecognized(tt.in)
			if !strings.Contains(got, tt.want) {
				t.Errorf("NormalizeRecognized(%q) = %q, want containing %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizeRecognizedSplitsSemanticUnits(t *testing.T) {
	got := NormalizeRecognized("Nobodies King 2:00 PM Cyberian Stage")
	lines := strings.Split(got, "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d: %q", len(lines), got)
	}
	if lines[0] != "Nobodies King" {
		t.Errorf("line 0 = %q, want %q", lines[0], "Nobodies King")
	}
	if lines[1] != "2:00 PM" {
		t.Errorf("line 1 = %q, want %q", lines[1], "2:00 PM")
	}
	if lines[2] != "Cyberian Stage" {
		t.Errorf("line 2 = %q, want %q", lines[2], "Cyberian Stage")
	}
}

func TestNormalizeRecognizedStripsChrome(t *testing.T) {
	got := NormalizeRecognized("100% LTE Google Lens")
	if got != "" {
		t.Errorf("chrome-only input should normalize to empty, got %q", got)
	}
}

func TestNormalizeRecognizedStripsStatusBarClock(t *testing.T) {
	got := NormalizeRecognized("9:41 100% LTE\nNobodies King\n2:00 PM\nCyberian Stage")
	if strings.Contains(got, "9:41") {
		t.Errorf("status-bar clock survived normalization: %q", got)
	}
	if !strings.Contains(got, "2:00 PM") {
		t.Errorf("real set time lost: %q", got)
	}
	if !strings.Contains(got, "Nobodies King") {
		t.Errorf("artist line lost: %q", got)
	}
}

func TestNormalizeRecognizedKeepsClockWithoutChrome(t *testing.T) {
	got := NormalizeRecognized("9:41\nWooli\nCyberian Stage")
	if !strings.Contains(got, "9:41") {
		t.Errorf("clock on a chrome-free line should survive: %q", got)
	}
}

func TestNormalizeRecognizedDropsShortLines(t *testing.T) {
	got := NormalizeRecognized("a\n*\nWooli\n")
	if got != "Wooli" {
		t.Errorf("NormalizeRecognized = %q, want %q", got, "Wooli")
	}
}

func TestNormalizeRecognizedWhitelist(t *testing.T) {
	got := NormalizeRecognized("Wooli* [live] @Cyberia")
	if strings.ContainsAny(got, "*[]@") {
		t.Errorf("non-whitelisted characters survived: %q", got)
	}
}

func TestNormalizeRecognizedEmpty(t *testing.T) {
	if got := NormalizeRecognized("   \n\t "); got != "" {
		t.Errorf("NormalizeRecognized(blank) = %q, want empty", got)
	}
}

func TestIsTimeLine(t *testing.T) {
	tests := []struct {
		line string
		want bool
	}{
		{"2:00 PM", true},
		{"10.30", true},
		{"7:45PM - 9:00PM", true},
		{"Cyberian Stage", false},
		{"Wooli", false},
	}
	for _, tt := range tests {
		if got := IsTimeLine(tt.line); got != tt.want {
			t.Errorf("IsTimeLine(%q) = %v, want %v", tt.line, got, tt.want)
		}
	}
}

func TestHasVenueSuffix(t *testing.T) {
	tests := []struct {
		line string
		want bool
	}{
		{"Cyberian Stage", true},
		{"Circuit Grounds", true},
		{"Stage 2 times", false},
		{"Wooli", false},
	}
	for _, tt := range tests {
		if got := HasVenueSuffix(tt.line); got != tt.want {
			t.Errorf("HasVenueSuffix(%q) = %v, want %v", tt.line, got, tt.want)
		}
	}
}

func TestCleanArtist(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Excision & Wooli", "Excision & Wooli"},
		{"  Seven  Lions!  ", "Seven Lions"},
		{"Sub*Focus: b2b", "SubFocus b2b"},
		{"***", ""},
	}
	for _, tt := range tests {
		if got := CleanArtist(tt.in); got != tt.want {
			t.Errorf("CleanArtist(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeKey(t *testing.T) {
	if NormalizeKey("  Wooli ") != NormalizeKey("wooli") {
		t.Error("case and whitespace variants should share a key")
	}
}
