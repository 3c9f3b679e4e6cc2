package reports

import (
	"sort"
	"strings"
	"time"
)

// Top-N sizes for the snapshot detail lists.
const (
	topRotationGroups = 20
	topRollingRecords = 20
)

// Summary holds the headline KPIs of one snapshot.
type Summary struct {
	TotalAircraft  int     `json:"total_aircraft"`
	TotalFlights   int     `json:"total_flights"`
	TotalCrew      int     `json:"total_crew"`
	RotationCount  int     `json:"rotation_count"`
	AvgFlightHours float64 `json:"avg_flight_hours"`
}

// AircraftDetail is one registration's accumulated block time.
type AircraftDetail struct {
	Registration string  `json:"reg"`
	TotalHours   float64 `json:"total_hours"`
	Flights      int     `json:"flights"`
	AvgPerFlight float64 `json:"avg_per_flight"`
}

// RotationGroup reports one crew group recorded on two or more distinct
// aircraft registrations within the snapshot's view.
type RotationGroup struct {
	CrewIDs       []string `json:"crew_ids"`
	Roles         []string `json:"roles"`
	Registrations []string `json:"regs"`
	Rotations     int      `json:"rotations"`
	CrewCount     int      `json:"crew_count"`
}

// Snapshot is one immutable, fully derived view of every ingested dataset.
// Snapshots are built fresh per request and never mutated afterwards, so a
// reader can hold one while the next ingestion replaces the engine state.
type Snapshot struct {
	FilterKey     string              `json:"filter_key,omitempty"`
	Summary       Summary             `json:"summary"`
	CrewRoles     map[string]int      `json:"crew_roles"`
	Aircraft      []AircraftDetail    `json:"aircraft"`
	Rotations     []RotationGroup     `json:"rotations"`
	Utilization   []UtilizationRecord `json:"utilization"`
	RollingHours  []RollingHourRecord `json:"rolling_hours"`
	RollingStats  map[string]int      `json:"rolling_stats"`
	CrewSchedule  ScheduleSummary     `json:"crew_schedule"`
	OperatingDays []string            `json:"operating_days"`
	GeneratedAt   time.Time           `json:"generated_at"`
}

// Aggregator owns the four report tables and composes them into snapshots.
// It is the only mutable state in the engine; callers serialize ingestion of
// a given report type and read through snapshots, never through the tables.
type Aggregator struct {
	norm     *DateNormalizer
	flights  *FlightLedger
	util     *UtilizationTable
	rolling  *RollingTable
	schedule *ScheduleTable
}

func NewAggregator(defaultYear int) *Aggregator {
	norm := NewDateNormalizer(defaultYear)
	return &Aggregator{
		norm:     norm,
		flights:  NewFlightLedger(norm),
		util:     NewUtilizationTable(norm),
		rolling:  NewRollingTable(norm),
		schedule: NewScheduleTable(norm),
	}
}

// Normalizer exposes the shared date normalizer so ingestion glue can derive
// report dates from file headers with the same rules the engine uses.
func (a *Aggregator) Normalizer() *DateNormalizer { return a.norm }

func (a *Aggregator) IngestFlights(rows [][]string) IngestResult {
	return a.flights.Ingest(rows)
}

func (a *Aggregator) IngestUtilization(rows [][]string) IngestResult {
	return a.util.Ingest(rows)
}

func (a *Aggregator) IngestRollingHours(rows [][]string, reportDate string) IngestResult {
	return a.rolling.Ingest(rows, reportDate)
}

func (a *Aggregator) IngestSchedule(rows [][]string, reportDate string) IngestResult {
	return a.schedule.Ingest(rows, reportDate)
}

// Snapshot composes one consistent view. filterKey may be empty (global) or
// any date shape the normalizer accepts. Flight, crew, and rotation figures
// come exclusively from the named operating-day partition; the utilization,
// rolling-hours, and schedule tables filter by their own date partitions and
// fall back to their global aggregates when the key has no partition. The
// asymmetry is sourced from the reports' differing cadences and is kept, not
// unified.
func (a *Aggregator) Snapshot(filterKey string) *Snapshot {
	filter := ""
	if filterKey != "" {
		filter = a.norm.Normalize(filterKey)
	}

	view := a.flights.view(filter)

	aircraft := make([]AircraftDetail, 0, len(view.regMinutes))
	regs := make([]string, 0, len(view.regMinutes))
	for reg := range view.regMinutes {
		regs = append(regs, reg)
	}
	sort.Strings(regs)

	totalHours := 0.0
	for _, reg := range regs {
		hours := float64(view.regMinutes[reg]) / 60
		count := view.regFlights[reg]
		totalHours += hours
		detail := AircraftDetail{
			Registration: reg,
			TotalHours:   round1(hours),
			Flights:      count,
		}
		if count > 0 {
			detail.AvgPerFlight = round1(hours / float64(count))
		}
		aircraft = append(aircraft, detail)
	}

	avgFlightHours := 0.0
	if len(regs) > 0 {
		avgFlightHours = round1(totalHours / float64(len(regs)))
	}

	roleCounts := make(map[string]int)
	for _, role := range view.roles {
		roleCounts[role]++
	}

	rotations := rotationGroups(view)

	rollingRecords := a.rolling.View(filter)
	rollingStats := map[string]int{"normal": 0, "warning": 0, "critical": 0}
	for _, rec := range rollingRecords {
		rollingStats[string(rec.Status28Day)]++
	}
	topRolling := rollingRecords
	if len(topRolling) > topRollingRecords {
		topRolling = topRolling[:topRollingRecords]
	}

	return &Snapshot{
		FilterKey: filter,
		Summary: Summary{
			TotalAircraft:  len(view.regs),
			TotalFlights:   len(view.legs),
			TotalCrew:      len(view.roles),
			RotationCount:  len(rotations),
			AvgFlightHours: avgFlightHours,
		},
		CrewRoles:     roleCounts,
		Aircraft:      aircraft,
		Rotations:     topN(rotations, topRotationGroups),
		Utilization:   a.util.View(filter),
		RollingHours:  topRolling,
		RollingStats:  rollingStats,
		CrewSchedule:  a.schedule.View(filter),
		OperatingDays: a.flights.OperatingDays(),
		GeneratedAt:   time.Now(),
	}
}

// rotationGroups finds every crew group whose registration history holds two
// or more distinct registrations. A single group's magnitude is the distinct
// registration count minus one.
func rotationGroups(view *flightView) []RotationGroup {
	var groups []RotationGroup
	for key, history := range view.groups {
		distinct := make(map[string]struct{}, len(history))
		for _, reg := range history {
			distinct[reg] = struct{}{}
		}
		if len(distinct) < 2 {
			continue
		}

		regs := make([]string, 0, len(distinct))
		for reg := range distinct {
			regs = append(regs, reg)
		}
		sort.Strings(regs)

		ids := SplitGroupKey(key)
		roles := make([]string, len(ids))
		for i, id := range ids {
			if role, ok := view.roles[id]; ok {
				roles[i] = role
			} else {
				roles[i] = "UNK"
			}
		}

		groups = append(groups, RotationGroup{
			CrewIDs:       ids,
			Roles:         roles,
			Registrations: regs,
			Rotations:     len(regs) - 1,
			CrewCount:     len(ids),
		})
	}

	// Rotations descending, then crew count descending; key order breaks the
	// remaining ties deterministically.
	sort.SliceStable(groups, func(i, j int) bool {
		if groups[i].Rotations != groups[j].Rotations {
			return groups[i].Rotations > groups[j].Rotations
		}
		if groups[i].CrewCount != groups[j].CrewCount {
			return groups[i].CrewCount > groups[j].CrewCount
		}
		return strings.Join(groups[i].CrewIDs, "+") < strings.Join(groups[j].CrewIDs, "+")
	})
	return groups
}

func topN(groups []RotationGroup, n int) []RotationGroup {
	if len(groups) > n {
		return groups[:n]
	}
	return groups
}
