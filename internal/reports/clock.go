package reports

import (
	"math"
	"strconv"
	"strings"
)

// ParseClock converts an "H:MM"/"HH:MM" clock string into minutes of day.
// It fails softly: empty input, a missing separator, or non-numeric parts
// return ok=false and never an error. Values are local-clock minutes; no
// range validation is applied beyond the arithmetic.
func ParseClock(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" || !strings.Contains(s, ":") {
		return 0, false
	}

	parts := strings.SplitN(s, ":", 2)
	hours, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, false
	}
	minutes, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, false
	}

	return hours*60 + minutes, true
}

// ParseBlockHours converts a cumulative "H:MM" block time (e.g. "93:30") into
// decimal hours rounded to two places. Malformed input yields 0.0 so that one
// bad cell never aborts ingestion of the remaining rows.
func ParseBlockHours(s string) float64 {
	s = strings.TrimSpace(s)
	if !strings.Contains(s, ":") {
		return 0.0
	}

	parts := strings.SplitN(s, ":", 2)
	hours, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0.0
	}
	minutes, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0.0
	}

	return round2(float64(hours) + float64(minutes)/60)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
