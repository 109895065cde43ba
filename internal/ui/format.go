package ui

import "fmt"

// formatTime renders seconds as m:ss. Negative values read as 0:00.
func formatTime(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}
	s := int64(seconds)
	return fmt.Sprintf("%d:%02d", s/60, s%60)
}

// progressRatio returns position/duration clamped to [0, 1]; a zero or
// negative duration reads as 0.
func progressRatio(position, duration float64) float64 {
	if duration <= 0 {
		return 0
	}
	ratio := position / duration
	if ratio < 0 {
		return 0
	}
	if ratio > 1 {
		return 1
	}
	return ratio
}

// trackIdentity is the artwork cache key: a track is "the same" when
// name and artist both match.
func trackIdentity(track, artist string) string {
	return track + "\x00" + artist
}

// truncate shortens s to at most max runes, ellipsized. A zero or
// negative budget yields the empty string.
func truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max == 1 {
		return string(runes[:1])
	}
	return string(runes[:max-1]) + "…"
}

// clamp bounds v to [lo, hi].
func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
