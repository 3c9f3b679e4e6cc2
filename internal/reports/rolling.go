package reports

import "sort"

// Regulatory rolling duty-hour ceilings, in decimal hours.
const (
	Ceiling28Day   = 100.0
	Ceiling12Month = 1000.0
)

// Column offsets in the rolling crew totals export.
const (
	rolcrtotIDCol        = 0
	rolcrtotNameCol      = 1
	rolcrtotSeniorityCol = 2
	rolcrtot28DayCol     = 3
	rolcrtot12MonthCol   = 4
	rolcrtotMinColumns   = 5
)

// ComplianceStatus is the duty-hour classification of one rolling window.
type ComplianceStatus string

const (
	StatusNormal   ComplianceStatus = "normal"
	StatusWarning  ComplianceStatus = "warning"
	StatusCritical ComplianceStatus = "critical"
)

// Classify grades cumulative hours against a window ceiling. The boundaries
// are inclusive: exactly 95% of the ceiling is already critical and exactly
// 85% is already a warning.
func Classify(hours, ceiling float64) ComplianceStatus {
	switch {
	case hours >= 0.95*ceiling:
		return StatusCritical
	case hours >= 0.85*ceiling:
		return StatusWarning
	default:
		return StatusNormal
	}
}

// RollingHourRecord carries one crew member's 28-day and 12-month cumulative
// block times. The two windows are classified independently; a crew member
// critical on one may be normal on the other.
type RollingHourRecord struct {
	CrewID        string           `json:"id"`
	Name          string           `json:"name"`
	Seniority     string           `json:"seniority"`
	Block28Day    string           `json:"block_28day"`
	Block12Month  string           `json:"block_12month"`
	Hours28Day    float64          `json:"hours_28day"`
	Hours12Month  float64          `json:"hours_12month"`
	Percent28Day  float64          `json:"percentage"`
	Status28Day   ComplianceStatus `json:"status"`
	Status12Month ComplianceStatus `json:"status_12m"`
}

// RollingTable holds the current rolling-hours batch, sorted by descending
// 28-day hours. Each ingestion replaces the previous batch wholesale; there
// is no incremental merge. Batches tagged with a report date additionally
// land in a per-date partition for filtered reads.
type RollingTable struct {
	norm    *DateNormalizer
	records []RollingHourRecord
	byDate  map[string][]RollingHourRecord
}

func NewRollingTable(norm *DateNormalizer) *RollingTable {
	return &RollingTable{norm: norm, byDate: make(map[string][]RollingHourRecord)}
}

// Ingest consumes raw rolling-totals rows. reportDate may be empty when the
// export carries no usable date header.
func (t *RollingTable) Ingest(rows [][]string, reportDate string) IngestResult {
	var result IngestResult
	records := make([]RollingHourRecord, 0, len(rows))

	for i, row := range rows {
		line := i + 1
		if len(row) < rolcrtotMinColumns {
			result.skip(line, "row narrower than rolling totals layout")
			continue
		}
		crewID := trimCell(row, rolcrtotIDCol)
		if !isDigits(crewID) {
			result.skip(line, "crew id is not a digit sequence")
			continue
		}

		block28 := trimCell(row, rolcrtot28DayCol)
		block12 := trimCell(row, rolcrtot12MonthCol)
		hours28 := ParseBlockHours(block28)
		hours12 := ParseBlockHours(block12)

		records = append(records, RollingHourRecord{
			CrewID:        crewID,
			Name:          trimCell(row, rolcrtotNameCol),
			Seniority:     trimCell(row, rolcrtotSeniorityCol),
			Block28Day:    block28,
			Block12Month:  block12,
			Hours28Day:    hours28,
			Hours12Month:  hours12,
			Percent28Day:  round1(hours28 / Ceiling28Day * 100),
			Status28Day:   Classify(hours28, Ceiling28Day),
			Status12Month: Classify(hours12, Ceiling12Month),
		})
		result.Accepted++
	}

	// Stable sort keeps re-ingestion of the same report byte-identical in
	// its top-N ordering.
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Hours28Day > records[j].Hours28Day
	})

	t.records = records
	if key := t.norm.Normalize(reportDate); key != "" {
		t.byDate[key] = records
	}
	return result
}

// View returns the batch for the filter's date partition when one exists,
// otherwise the current global batch. Rolling reports arrive on their own
// cadence, so the fallback is intentional.
func (t *RollingTable) View(filter string) []RollingHourRecord {
	if filter != "" {
		if records, ok := t.byDate[filter]; ok {
			return records
		}
	}
	return t.records
}
