package ui

import "testing"

func TestTruncate(t *testing.T) {
	tests := []struct {
		in   string
		max  int
		want string
	}{
		{"hello", 10, "hello"},
		{"hello", 5, "hello"},
		{"hello", 4, "hel…"},
		{"hello", 1, "…"},
		{"hello", 0, ""},
		{"ünïcodé", 4, "ünï…"},
	}
	for _, tt := range tests {
		if got := truncate(tt.in, tt.max); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
		}
	}
}

func TestFormatQty(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{1, "1"},
		{0, "0"},
		{0.5, "0.5"},
		{2.25, "2.25"},
		{3.10, "3.1"},
	}
	for _, tt := range tests {
		if got := formatQty(tt.in); got != tt.want {
			t.Errorf("formatQty(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestTwoCol(t *testing.T) {
	got := twoCol("left", "right", 12)
	if got != "left   right" {
		t.Fatalf("twoCol = %q, want %q", got, "left   right")
	}

	// Overflowing content still gets one separating space.
	got = twoCol("averylongleft", "right", 10)
	if got != "averylongleft right" {
		t.Fatalf("twoCol = %q, want %q", got, "averylongleft right")
	}
}

func TestCenter(t *testing.T) {
	if got := center("ab", 6); got != "  ab  " {
		t.Fatalf("center = %q, want %q", got, "  ab  ")
	}
	if got := center("ab", 5); got != " ab  " {
		t.Fatalf("center = %q, want %q", got, " ab  ")
	}
	if got := center("abcdef", 4); got != "abcdef" {
		t.Fatalf("center = %q, want %q", got, "abcdef")
	}
}
