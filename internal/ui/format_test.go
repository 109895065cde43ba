package ui

import "testing"

func TestFormatTime(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   float64
		want string
	}{
		{0, "0:00"},
		{12.5, "0:12"},
		{59.9, "0:59"},
		{60, "1:00"},
		{200, "3:20"},
		{3725, "62:05"},
		{-3, "0:00"},
	}
	for _, tc := range cases {
		if got := formatTime(tc.in); got != tc.want {
			t.Fatalf("formatTime(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestProgressRatio(t *testing.T) {
	t.Parallel()

	cases := []struct {
		pos, dur float64
		want     float64
	}{
		{12.5, 200, 0.0625},
		{0, 200, 0},
		{200, 200, 1},
		{300, 200, 1},
		{-5, 200, 0},
		{10, 0, 0},
		{10, -1, 0},
	}
	for _, tc := range cases {
		if got := progressRatio(tc.pos, tc.dur); got != tc.want {
			t.Fatalf("progressRatio(%v, %v) = %v, want %v", tc.pos, tc.dur, got, tc.want)
		}
	}
}

func TestTrackIdentity_Distinguishes(t *testing.T) {
	t.Parallel()

	if trackIdentity("a", "bc") == trackIdentity("ab", "c") {
		t.Fatalf("identities collide across name/artist boundary")
	}
	if trackIdentity("x", "y") != trackIdentity("x", "y") {
		t.Fatalf("identity not stable")
	}
}

func TestTruncate(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		max  int
		want string
	}{
		{"short", 10, "short"},
		{"exactly", 7, "exactly"},
		{"toolongvalue", 6, "toolo…"},
		{"héllo wörld", 5, "héll…"},
		{"ab", 1, "a"},
		{"ab", 0, ""},
		{"ab", -3, ""},
	}
	for _, tc := range cases {
		if got := truncate(tc.in, tc.max); got != tc.want {
			t.Fatalf("truncate(%q, %d) = %q, want %q", tc.in, tc.max, got, tc.want)
		}
	}
}

func TestClamp(t *testing.T) {
	t.Parallel()

	if got := clamp(150, 0, 100); got != 100 {
		t.Fatalf("clamp(150) = %d, want 100", got)
	}
	if got := clamp(-3, 0, 100); got != 0 {
		t.Fatalf("clamp(-3) = %d, want 0", got)
	}
	if got := clamp(42, 0, 100); got != 42 {
		t.Fatalf("clamp(42) = %d, want 42", got)
	}
}
