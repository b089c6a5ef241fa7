package textwidth

import (
	"strings"
	"testing"
)

func TestWidth(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"", 0},
		{"abc", 3},
		{"año", 3},
		{"🚀 go", 5},
		{"中文", 4},
		{"é", 1}, // combining acute accent
	}
	for _, tt := range tests {
		if got := Width(tt.in); got != tt.want {
			t.Errorf("Width(%q): expected %d, got %d", tt.in, tt.want, got)
		}
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("abcdef", 3); got != "abc" {
		t.Errorf("expected %q, got %q", "abc", got)
	}
	// A wide rune that would straddle the limit is dropped.
	if got := Truncate("a🚀b", 2); got != "a" {
		t.Errorf("expected %q, got %q", "a", got)
	}
	if got := Truncate("abc", 0); got != "" {
		t.Errorf("expected empty, got %q", got)
	}
}

func TestPad(t *testing.T) {
	tests := []struct {
		in    string
		w     int
		align Align
		want  string
	}{
		{"ab", 5, Left, "ab   "},
		{"ab", 5, Right, "   ab"},
		{"ab", 5, Center, " ab  "},
		{"abcdefgh", 5, Left, "abcd…"},
		{"🚀", 4, Left, "🚀  "},
		{"abc", 1, Left, "a"},
		{"abc", 0, Left, ""},
	}
	for _, tt := range tests {
		got := Pad(tt.in, tt.w, tt.align)
		if got != tt.want {
			t.Errorf("Pad(%q, %d, %d): expected %q, got %q", tt.in, tt.w, tt.align, tt.want, got)
		}
		if tt.w > 0 && Width(got) != tt.w {
			t.Errorf("Pad(%q, %d): result is %d cells wide", tt.in, tt.w, Width(got))
		}
	}
}

func TestWrap(t *testing.T) {
	text := "Estandarización de datos, eliminación de duplicados e integridad referencial"
	lines := Wrap(text, 20)
	if len(lines) < 4 {
		t.Fatalf("expected several lines, got %v", lines)
	}
	for _, l := range lines {
		if Width(l) > 20 {
			t.Errorf("line %q exceeds 20 cells", l)
		}
	}
	if strings.Join(lines, " ") != text {
		t.Errorf("wrapping lost words: %q", strings.Join(lines, " "))
	}
}

func TestWrap_LongWordAndEmpty(t *testing.T) {
	lines := Wrap("tiny supercalifragilistic end", 6)
	want := []string{"tiny", "supercalifragilistic", "end"}
	if strings.Join(lines, "|") != strings.Join(want, "|") {
		t.Errorf("expected %v, got %v", want, lines)
	}
	if got := Wrap("   ", 10); len(got) != 1 || got[0] != "" {
		t.Errorf("expected a single empty line, got %q", got)
	}
}

func TestSplit(t *testing.T) {
	got := Split("abcdefg", 3)
	if strings.Join(got, "|") != "abc|def|g" {
		t.Errorf("unexpected split %q", got)
	}
	got = Split("a🚀🚀", 3)
	if strings.Join(got, "|") != "a🚀|🚀" {
		t.Errorf("unexpected wide split %q", got)
	}
	if got := Split("", 3); len(got) != 1 || got[0] != "" {
		t.Errorf("expected one empty piece, got %q", got)
	}
}
