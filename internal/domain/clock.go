package domain

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// RoundToMinute rounds a fractional-hour value to the nearest minute.
// All staggered times are rounded exactly once, at generation.
func RoundToMinute(hours float64) float64 {
	return math.Round(hours*60) / 60
}

// FormatClock renders fractional hours as a zero-padded HH:MM string.
// Internal values stay fractional; this runs only at external boundaries.
func FormatClock(hours float64) string {
	total := int(math.Round(hours * 60))
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}

// ParseClock parses a zero-padded 24-hour HH:MM string into fractional hours.
func ParseClock(s string) (float64, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid clock value %q", s)
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, fmt.Errorf("invalid hour in clock value %q", s)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("invalid minute in clock value %q", s)
	}

	return float64(hour) + float64(minute)/60, nil
}
