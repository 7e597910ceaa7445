// Package timefmt converts between seconds and the "M:SS" textual form used
// for run durations and paces.
package timefmt

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParseDuration parses a "minutes:seconds" string into total seconds.
// It returns ok=false when the input does not have exactly two colon-separated
// parts, either part is not a finite number, either part is negative, or the
// seconds part is 60 or above.
func ParseDuration(text string) (float64, bool) {
	parts := strings.Split(strings.TrimSpace(text), ":")
	if len(parts) != 2 {
		return 0, false
	}

	m, err := strconv.ParseFloat(parts[0], 64)
	if err != nil || math.IsInf(m, 0) || math.IsNaN(m) {
		return 0, false
	}
	s, err := strconv.ParseFloat(parts[1], 64)
	if err != nil || math.IsInf(s, 0) || math.IsNaN(s) {
		return 0, false
	}

	if m < 0 || s < 0 || s >= 60 {
		return 0, false
	}
	return m*60 + s, true
}

// FormatDuration renders seconds as "M:SS". Negative input is clamped to 0
// and fractional seconds are truncated. Minutes are unpadded and unbounded;
// there is no hour rollover.
func FormatDuration(seconds float64) string {
	total := int(math.Floor(math.Max(0, seconds)))
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}

// FormatPace renders a pace (seconds per distance unit) as "M:SS".
func FormatPace(secondsPerUnit float64) string {
	return FormatDuration(secondsPerUnit)
}
