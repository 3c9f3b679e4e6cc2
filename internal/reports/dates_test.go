package reports

import "testing"

func TestNormalizeEquivalentShapes(t *testing.T) {
	norm := NewDateNormalizer(2026)

	// Every shape the source reports use for the same physical day must land
	// on one canonical key.
	inputs := []string{
		"15/01/26",
		"15/01/2026",
		"2026-01-15",
		"15.01",
		"15/01",
		"Report Date: 15 Jan 2026",
		"15 January 2026",
	}

	for _, in := range inputs {
		if got := norm.Normalize(in); got != "15/01/26" {
			t.Errorf("Normalize(%q) = %q, want 15/01/26", in, got)
		}
	}
}

func TestNormalizePadsDayAndMonth(t *testing.T) {
	norm := NewDateNormalizer(2026)

	if got := norm.Normalize("5/3/26"); got != "05/03/26" {
		t.Errorf("Normalize(5/3/26) = %q, want 05/03/26", got)
	}
	if got := norm.Normalize("2026-03-05"); got != "05/03/26" {
		t.Errorf("Normalize(2026-03-05) = %q, want 05/03/26", got)
	}
}

func TestNormalizeFallsBackToRaw(t *testing.T) {
	norm := NewDateNormalizer(2026)

	if got := norm.Normalize("not a date"); got != "not a date" {
		t.Errorf("Normalize fallback = %q, want raw input", got)
	}
	if got := norm.Normalize("  TOTAL  "); got != "TOTAL" {
		t.Errorf("Normalize fallback = %q, want trimmed raw input", got)
	}
}

func TestNormalizeHeaderAcceptsFullDatesOnly(t *testing.T) {
	norm := NewDateNormalizer(2026)

	accepted := map[string]string{
		"15/01/26":                 "15/01/26",
		"15.01.26":                 "15/01/26",
		"2026-01-15":               "15/01/26",
		"Report Date: 15 Jan 2026": "15/01/26",
	}
	for in, want := range accepted {
		got, ok := norm.NormalizeHeader(in)
		if !ok || got != want {
			t.Errorf("NormalizeHeader(%q) = %q, %v; want %q, true", in, got, ok, want)
		}
	}

	// Fragments Normalize would complete with the default year are not
	// report dates when found loose in a title row.
	rejected := []string{"1.5", "15/01", "15.01", "99/99/99", "TOTAL", ""}
	for _, in := range rejected {
		if got, ok := norm.NormalizeHeader(in); ok {
			t.Errorf("NormalizeHeader(%q) = %q, true; want rejection", in, got)
		}
	}
}

func TestOperatingDayCutover(t *testing.T) {
	norm := NewDateNormalizer(2026)

	tests := []struct {
		date string
		dep  string
		want string
	}{
		{"15/01/26", "03:59", "14/01/26"},
		{"15/01/26", "04:00", "15/01/26"},
		{"15/01/26", "00:00", "14/01/26"},
		{"15/01/26", "12:30", "15/01/26"},
		// Month boundary, non-leap year.
		{"01/03/26", "00:00", "28/02/26"},
		// Leap year keeps the 29th.
		{"01/03/24", "01:15", "29/02/24"},
		// Year boundary.
		{"01/01/26", "02:00", "31/12/25"},
	}

	for _, tt := range tests {
		dep, ok := ParseClock(tt.dep)
		got := norm.OperatingDay(tt.date, dep, ok)
		if got != tt.want {
			t.Errorf("OperatingDay(%s, %s) = %q, want %q", tt.date, tt.dep, got, tt.want)
		}
	}
}

func TestOperatingDayUnparseableDeparture(t *testing.T) {
	norm := NewDateNormalizer(2026)

	// No rollback without a departure time; calendar date stands.
	dep, ok := ParseClock("")
	if got := norm.OperatingDay("15/01/26", dep, ok); got != "15/01/26" {
		t.Errorf("OperatingDay with bad departure = %q, want 15/01/26", got)
	}
}
