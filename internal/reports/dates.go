package reports

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// canonicalDateLayout is the single join key format used across the flight,
// utilization, rolling-hours, and schedule datasets.
const canonicalDateLayout = "02/01/06"

// operatingDayCutoverMinutes marks the 04:00 boundary. A departure before it
// belongs to the previous operating day.
const operatingDayCutoverMinutes = 4 * 60

var (
	isoDatePattern    = regexp.MustCompile(`^(\d{4})-(\d{1,2})-(\d{1,2})$`)
	headerDatePattern = regexp.MustCompile(`(?i)(\d{1,2})\s+(Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*\s+(\d{2,4})`)
)

var monthNumbers = map[string]int{
	"jan": 1, "feb": 2, "mar": 3, "apr": 4, "may": 5, "jun": 6,
	"jul": 7, "aug": 8, "sep": 9, "oct": 10, "nov": 11, "dec": 12,
}

// DateNormalizer coerces the varied date shapes found in exported reports
// (DD/MM, DD/MM/YY, DD.MM, ISO YYYY-MM-DD, free-text headers like
// "Report Date: 15 Jan 2026") to the canonical DD/MM/YY key. Input that
// matches no known shape falls back to the raw trimmed string, which may then
// simply fail to join with the other datasets.
type DateNormalizer struct {
	// DefaultYear fills in dates exported without a year component.
	DefaultYear int
}

func NewDateNormalizer(defaultYear int) *DateNormalizer {
	return &DateNormalizer{DefaultYear: defaultYear}
}

// Normalize returns the canonical key for raw, or raw itself (trimmed) when
// no date pattern can be recognized.
func (n *DateNormalizer) Normalize(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return s
	}

	if m := isoDatePattern.FindStringSubmatch(s); m != nil {
		year, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		day, _ := strconv.Atoi(m[3])
		return renderCanonical(day, month, year)
	}

	if day, month, year, ok := n.splitNumericDate(s); ok {
		return renderCanonical(day, month, year)
	}

	if m := headerDatePattern.FindStringSubmatch(s); m != nil {
		day, _ := strconv.Atoi(m[1])
		month := monthNumbers[strings.ToLower(m[2])]
		year, _ := strconv.Atoi(m[3])
		return renderCanonical(day, month, year)
	}

	return s
}

// splitNumericDate handles slash- and dot-delimited dates with an optional
// 2- or 4-digit year.
func (n *DateNormalizer) splitNumericDate(s string) (day, month, year int, ok bool) {
	sep := "/"
	if !strings.Contains(s, "/") {
		if !strings.Contains(s, ".") {
			return 0, 0, 0, false
		}
		sep = "."
	}

	parts := strings.Split(s, sep)
	if len(parts) != 2 && len(parts) != 3 {
		return 0, 0, 0, false
	}

	var err error
	if day, err = strconv.Atoi(strings.TrimSpace(parts[0])); err != nil {
		return 0, 0, 0, false
	}
	if month, err = strconv.Atoi(strings.TrimSpace(parts[1])); err != nil {
		return 0, 0, 0, false
	}

	year = n.DefaultYear
	if len(parts) == 3 {
		if year, err = strconv.Atoi(strings.TrimSpace(parts[2])); err != nil {
			return 0, 0, 0, false
		}
	}
	return day, month, year, true
}

// OperatingDay maps a calendar date plus departure minutes to the governing
// operating day. The operating day runs 04:00 through 03:59 the next calendar
// day, so a departure before the cutover is attributed to the previous
// calendar date. When the departure time was unparseable (depOK=false) the
// calendar date is kept unchanged.
func (n *DateNormalizer) OperatingDay(calendarDate string, depMinutes int, depOK bool) string {
	key := n.Normalize(calendarDate)
	if !depOK || depMinutes >= operatingDayCutoverMinutes {
		return key
	}

	t, err := time.Parse(canonicalDateLayout, key)
	if err != nil {
		// Unjoinable date text; nothing to roll back from.
		return key
	}
	return t.AddDate(0, 0, -1).Format(canonicalDateLayout)
}

// NormalizeHeader is Normalize restricted to full date shapes: ISO, a
// three-component numeric date, or a month-name header line. Fragments like
// "1.5" or "15/01" canonicalize under Normalize because the default year
// fills in, which is right for leg rows but too loose when scanning title
// rows for a report date.
func (n *DateNormalizer) NormalizeHeader(raw string) (string, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", false
	}

	if m := isoDatePattern.FindStringSubmatch(s); m != nil {
		year, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		day, _ := strconv.Atoi(m[3])
		return canonicalIfValid(day, month, year)
	}

	if strings.Count(s, "/") == 2 || strings.Count(s, ".") == 2 {
		if day, month, year, ok := n.splitNumericDate(s); ok {
			return canonicalIfValid(day, month, year)
		}
	}

	if m := headerDatePattern.FindStringSubmatch(s); m != nil {
		day, _ := strconv.Atoi(m[1])
		month := monthNumbers[strings.ToLower(m[2])]
		year, _ := strconv.Atoi(m[3])
		return canonicalIfValid(day, month, year)
	}

	return "", false
}

func canonicalIfValid(day, month, year int) (string, bool) {
	key := renderCanonical(day, month, year)
	if _, err := time.Parse(canonicalDateLayout, key); err != nil {
		return "", false
	}
	return key, true
}

func renderCanonical(day, month, year int) string {
	if year >= 100 {
		year %= 100
	}
	return fmt.Sprintf("%02d/%02d/%02d", day, month, year)
}
