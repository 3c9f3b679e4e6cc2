package reports

import "sort"

// Column offsets in the aircraft utilization summary export.
const (
	sacutilDateCol        = 0
	sacutilTypeCol        = 1
	sacutilDomBlockCol    = 2
	sacutilIntBlockCol    = 3
	sacutilTotalBlockCol  = 4
	sacutilDomCyclesCol   = 5
	sacutilIntCyclesCol   = 6
	sacutilTotalCyclesCol = 7
	sacutilAvgUtilCol     = 11
	sacutilMinColumns     = 12
)

// knownAircraftTypes lets data rows be recognized even when the export drops
// the date cell from a continuation line.
var knownAircraftTypes = map[string]struct{}{
	"A320": {}, "A321": {}, "A330": {}, "B737": {}, "E190": {},
}

// UtilizationRecord is one per-aircraft-type summary row. Block times and
// cycle counts stay in their source text form; this table is display data,
// not arithmetic input.
type UtilizationRecord struct {
	Date                string `json:"date"`
	AircraftType        string `json:"ac_type"`
	DomesticBlock       string `json:"dom_block"`
	InternationalBlock  string `json:"int_block"`
	TotalBlock          string `json:"total_block"`
	DomesticCycles      string `json:"dom_cycles"`
	InternationalCycles string `json:"int_cycles"`
	TotalCycles         string `json:"total_cycles"`
	AverageUtilization  string `json:"avg_util"`
}

// UtilizationTable ingests per-aircraft-type block-hour/cycle rows keyed by
// (date, type); a later row for the same key overwrites the earlier one.
type UtilizationTable struct {
	norm   *DateNormalizer
	byDate map[string]map[string]UtilizationRecord
}

func NewUtilizationTable(norm *DateNormalizer) *UtilizationTable {
	return &UtilizationTable{norm: norm, byDate: make(map[string]map[string]UtilizationRecord)}
}

// Ingest consumes raw utilization rows, replacing the per-date partitions the
// batch covers.
func (t *UtilizationTable) Ingest(rows [][]string) IngestResult {
	var result IngestResult

	type stagedRec struct {
		date string
		rec  UtilizationRecord
	}
	staged := make([]stagedRec, 0, len(rows))
	touched := make(map[string]struct{})

	for i, row := range rows {
		line := i + 1
		if len(row) < sacutilMinColumns {
			result.skip(line, "row narrower than utilization layout")
			continue
		}

		first := trimCell(row, sacutilDateCol)
		acType := trimCell(row, sacutilTypeCol)
		_, typeKnown := knownAircraftTypes[acType]
		if !looksLikeDate(first) && !typeKnown {
			result.skip(line, "no date pattern and unrecognized aircraft type")
			continue
		}
		if acType == "" || acType == "ACTYPE" || acType == "Aircraft" {
			result.skip(line, "header row")
			continue
		}

		date := t.norm.Normalize(first)
		staged = append(staged, stagedRec{date: date, rec: UtilizationRecord{
			Date:                date,
			AircraftType:        acType,
			DomesticBlock:       trimCell(row, sacutilDomBlockCol),
			InternationalBlock:  trimCell(row, sacutilIntBlockCol),
			TotalBlock:          trimCell(row, sacutilTotalBlockCol),
			DomesticCycles:      trimCell(row, sacutilDomCyclesCol),
			InternationalCycles: trimCell(row, sacutilIntCyclesCol),
			TotalCycles:         trimCell(row, sacutilTotalCyclesCol),
			AverageUtilization:  trimCell(row, sacutilAvgUtilCol),
		}})
		touched[date] = struct{}{}
		result.Accepted++
	}

	for date := range touched {
		t.byDate[date] = make(map[string]UtilizationRecord)
	}
	for _, s := range staged {
		t.byDate[s.date][s.rec.AircraftType] = s.rec
	}

	return result
}

// View returns the utilization rows for the filter's date partition, falling
// back to every known row when that date has no partition. This fallback is
// deliberate and differs from the flight-side filter semantics; utilization
// reports arrive on their own cadence.
func (t *UtilizationTable) View(filter string) []UtilizationRecord {
	var dates []string
	if filter != "" {
		if _, ok := t.byDate[filter]; ok {
			dates = []string{filter}
		}
	}
	if dates == nil {
		for date := range t.byDate {
			dates = append(dates, date)
		}
		sort.Strings(dates)
	}

	var records []UtilizationRecord
	for _, date := range dates {
		part := t.byDate[date]
		types := make([]string, 0, len(part))
		for acType := range part {
			types = append(types, acType)
		}
		sort.Strings(types)
		for _, acType := range types {
			records = append(records, part[acType])
		}
	}
	return records
}
