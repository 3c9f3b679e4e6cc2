package reports

import "strings"

// Column offsets in the crew schedule export. The four flag columns are
// mutually exclusive in priority order SL, CSL, SBY, OSBY: a crew member
// flagged in several is counted only under the highest-priority one.
const (
	schedIndexCol     = 0
	schedIDCol        = 1
	schedNameCol      = 2
	schedBaseACPosCol = 3
	schedTotalsCol    = 4
	schedSLCol        = 5
	schedCSLCol       = 6
	schedSBYCol       = 7
	schedOSBYCol      = 8
	schedMinColumns   = 9
)

// ScheduleStatus is one of the four standby/sick buckets.
type ScheduleStatus string

const (
	StatusSickLeave     ScheduleStatus = "Sick Leave"
	StatusCallSickLeave ScheduleStatus = "Call-Sick Leave"
	StatusStandby       ScheduleStatus = "Standby"
	StatusOfficeStandby ScheduleStatus = "Office Standby"
)

// scheduleFlags maps priority-ordered flag columns to status and summary key.
var scheduleFlags = []struct {
	col    int
	status ScheduleStatus
	key    string
}{
	{schedSLCol, StatusSickLeave, "SL"},
	{schedCSLCol, StatusCallSickLeave, "CSL"},
	{schedSBYCol, StatusStandby, "SBY"},
	{schedOSBYCol, StatusOfficeStandby, "OSBY"},
}

// ScheduleStatusRecord is one crew member's schedule status for one date.
type ScheduleStatusRecord struct {
	CrewID   string         `json:"id"`
	Name     string         `json:"name"`
	Base     string         `json:"base"`
	Aircraft string         `json:"aircraft"`
	Position string         `json:"position"`
	Status   ScheduleStatus `json:"status"`
	Date     string         `json:"date"`
}

// ScheduleSummary is the bucketed view handed to snapshots.
type ScheduleSummary struct {
	Standby       []ScheduleStatusRecord `json:"standby"`
	SickLeave     []ScheduleStatusRecord `json:"sick_leave"`
	CallSickLeave []ScheduleStatusRecord `json:"call_sick_leave"`
	OfficeStandby []ScheduleStatusRecord `json:"office_standby"`
	Counts        map[string]int         `json:"summary"`
}

// ScheduleTable ingests standby/sick/fatigue flag rows partitioned by report
// date. Ingesting a date again replaces that date's partition.
type ScheduleTable struct {
	norm   *DateNormalizer
	byDate map[string][]ScheduleStatusRecord
}

func NewScheduleTable(norm *DateNormalizer) *ScheduleTable {
	return &ScheduleTable{norm: norm, byDate: make(map[string][]ScheduleStatusRecord)}
}

// Ingest consumes raw schedule rows under the given report date. An empty or
// unrecognizable report date lands in the unkeyed partition, reachable only
// through the global view.
func (t *ScheduleTable) Ingest(rows [][]string, reportDate string) IngestResult {
	var result IngestResult
	key := t.norm.Normalize(reportDate)
	records := make([]ScheduleStatusRecord, 0, len(rows))

	for i, row := range rows {
		line := i + 1
		if len(row) < schedMinColumns {
			result.skip(line, "row narrower than schedule layout")
			continue
		}
		if !isDigits(trimCell(row, schedIndexCol)) {
			result.skip(line, "index column is not numeric")
			continue
		}

		rec := ScheduleStatusRecord{
			CrewID: trimCell(row, schedIDCol),
			Name:   trimCell(row, schedNameCol),
			Date:   key,
		}

		// Base cell packs "base aircraft position", space separated.
		baseInfo := strings.Fields(trimCell(row, schedBaseACPosCol))
		if len(baseInfo) > 0 {
			rec.Base = baseInfo[0]
		}
		if len(baseInfo) > 1 {
			rec.Aircraft = baseInfo[1]
		}
		if len(baseInfo) > 2 {
			rec.Position = baseInfo[2]
		}

		matched := false
		for _, flag := range scheduleFlags {
			if trimCell(row, flag.col) == "1" {
				rec.Status = flag.status
				matched = true
				break
			}
		}
		if !matched {
			result.skip(line, "no status flag set")
			continue
		}

		records = append(records, rec)
		result.Accepted++
	}

	t.byDate[key] = records
	return result
}

// View buckets the records for the filter's date partition, falling back to
// all partitions when the key is unknown (schedule reports have their own
// cadence; the fallback mirrors the other non-flight tables).
func (t *ScheduleTable) View(filter string) ScheduleSummary {
	summary := ScheduleSummary{
		Counts: map[string]int{"SL": 0, "CSL": 0, "SBY": 0, "OSBY": 0},
	}

	var selected [][]ScheduleStatusRecord
	if filter != "" {
		if records, ok := t.byDate[filter]; ok {
			selected = [][]ScheduleStatusRecord{records}
		}
	}
	if selected == nil {
		for _, records := range t.byDate {
			selected = append(selected, records)
		}
	}

	for _, records := range selected {
		for _, rec := range records {
			switch rec.Status {
			case StatusSickLeave:
				summary.SickLeave = append(summary.SickLeave, rec)
				summary.Counts["SL"]++
			case StatusCallSickLeave:
				summary.CallSickLeave = append(summary.CallSickLeave, rec)
				summary.Counts["CSL"]++
			case StatusStandby:
				summary.Standby = append(summary.Standby, rec)
				summary.Counts["SBY"]++
			case StatusOfficeStandby:
				summary.OfficeStandby = append(summary.OfficeStandby, rec)
				summary.Counts["OSBY"]++
			}
		}
	}
	return summary
}
