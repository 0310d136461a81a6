package insight

import (
	"fmt"
	"strconv"
	"strings"
)

// Business-hour bounds for the optimal hour.
const (
	EarliestHour = 9
	LatestHour   = 18
	FallbackHour = 14

	defaultBaseHour = 10
	windowHours     = 2
)

// AdjustHour applies the personal and daily offsets to base. A result
// outside [EarliestHour, LatestHour] becomes FallbackHour.
func AdjustHour(base, lifePath, dayScore, lunarInfluence int) int {
	hour := base + lifePath%9 - 4
	if dayScore <= 75 {
		hour++
	}
	if lunarInfluence > 80 {
		hour--
	}
	if hour < EarliestHour || hour > LatestHour {
		return FallbackHour
	}
	return hour
}

// baseHour reads the leading hour of a peak-hours string such as
// "10:00–12:00".
func baseHour(peakHours string) int {
	s := strings.TrimSpace(peakHours)
	if i := strings.IndexByte(s, ':'); i > 0 {
		s = s[:i]
	}
	h, err := strconv.Atoi(s)
	if err != nil || h < 0 || h > 23 {
		return defaultBaseHour
	}
	return h
}

// formatWindow renders a two-hour window starting at hour, minute always :00.
func formatWindow(hour int) string {
	start := ((hour % 24) + 24) % 24
	end := (start + windowHours) % 24
	return fmt.Sprintf("%02d:00–%02d:00", start, end)
}
