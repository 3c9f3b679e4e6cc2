package reports

import "sort"

// Column offsets in the daily flight report export. Positions are part of the
// report contract; a row narrower than dayrepMinColumns cannot be a leg.
const (
	dayrepDateCol    = 0
	dayrepRegCol     = 1
	dayrepFlightCol  = 2
	dayrepDepCol     = 3
	dayrepArrCol     = 4
	dayrepSTDCol     = 5
	dayrepSTACol     = 6
	dayrepCrewCol    = 14
	dayrepMinColumns = 15
)

// FlightLeg is one accepted row of the daily flight report. Immutable once
// ingested. OperatingDate is always derivable: when the scheduled departure
// cannot be parsed the calendar date stands in unchanged.
type FlightLeg struct {
	Date          string `json:"date"`
	OperatingDate string `json:"operating_date"`
	Registration  string `json:"reg"`
	FlightNumber  string `json:"flt"`
	Departure     string `json:"dep"`
	Arrival       string `json:"arr"`
	STD           string `json:"std"`
	STA           string `json:"sta"`
	CrewText      string `json:"-"`
	BlockMinutes  int    `json:"block_minutes"`
	HasBlock      bool   `json:"has_block"`
}

// dayPartition accumulates one operating day's worth of flight state.
type dayPartition struct {
	legs       []FlightLeg
	regs       map[string]struct{}
	regMinutes map[string]int
	regFlights map[string]int
	groups     map[string][]string // group key -> registrations in leg order
	roles      map[string]string   // crew id -> last-seen role
}

func newDayPartition() *dayPartition {
	return &dayPartition{
		regs:       make(map[string]struct{}),
		regMinutes: make(map[string]int),
		regFlights: make(map[string]int),
		groups:     make(map[string][]string),
		roles:      make(map[string]string),
	}
}

// FlightLedger ingests flight-leg rows and maintains per-operating-day
// partitions of leg, aircraft, and crew-group state. Re-ingesting a report
// replaces the legs of the calendar dates the batch reports on; dates the
// batch never mentions survive, so report instances for different dates
// stack. An operating day reached only through the 04:00 rollback is merged
// into, never replaced: a next-day report's early departures must not erase
// the previous day's own legs.
type FlightLedger struct {
	norm *DateNormalizer
	days map[string]*dayPartition
}

func NewFlightLedger(norm *DateNormalizer) *FlightLedger {
	return &FlightLedger{norm: norm, days: make(map[string]*dayPartition)}
}

// Ingest consumes raw report rows. A leg with no aircraft registration is
// rejected outright; a leg with unparseable scheduled times is still stored
// for crew and rotation purposes but excluded from duration totals.
func (l *FlightLedger) Ingest(rows [][]string) IngestResult {
	var result IngestResult

	staged := make(map[string][]FlightLeg)
	covered := make(map[string]struct{})

	for i, row := range rows {
		line := i + 1
		if len(row) < dayrepMinColumns {
			result.skip(line, "row narrower than flight report layout")
			continue
		}
		if row[dayrepDateCol] == "" {
			result.skip(line, "missing calendar date")
			continue
		}
		if row[dayrepRegCol] == "" {
			result.skip(line, "missing aircraft registration")
			continue
		}

		std, stdOK := ParseClock(row[dayrepSTDCol])
		sta, staOK := ParseClock(row[dayrepSTACol])

		leg := FlightLeg{
			Date:         row[dayrepDateCol],
			Registration: row[dayrepRegCol],
			FlightNumber: row[dayrepFlightCol],
			Departure:    row[dayrepDepCol],
			Arrival:      row[dayrepArrCol],
			STD:          row[dayrepSTDCol],
			STA:          row[dayrepSTACol],
			CrewText:     row[dayrepCrewCol],
		}
		leg.OperatingDate = l.norm.OperatingDay(leg.Date, std, stdOK)

		if stdOK && staOK {
			// Midnight rollover on the leg itself; unrelated to the
			// operating-day cutover, which is a reporting convention.
			duration := sta - std
			if duration < 0 {
				duration += 24 * 60
			}
			leg.BlockMinutes = duration
			leg.HasBlock = true
		} else {
			result.partial(line, "unparseable scheduled times, leg kept without duration")
		}

		result.Accepted++
		staged[leg.OperatingDate] = append(staged[leg.OperatingDate], leg)
		covered[l.norm.Normalize(leg.Date)] = struct{}{}
	}

	// Replacement is keyed on calendar dates, not operating days: drop every
	// stored leg whose calendar date the batch re-states, wherever the
	// cutover filed it, then fold the batch in. Legs an operating day holds
	// from other calendar dates survive, so a next-day report's early
	// departures stack onto the previous day instead of erasing it.
	for day, part := range l.days {
		var kept []FlightLeg
		for _, leg := range part.legs {
			if _, replaced := covered[l.norm.Normalize(leg.Date)]; !replaced {
				kept = append(kept, leg)
			}
		}
		if len(kept) == len(part.legs) {
			continue
		}
		if len(kept) == 0 {
			delete(l.days, day)
			continue
		}
		l.days[day] = buildPartition(kept)
	}

	for day, legs := range staged {
		if part, ok := l.days[day]; ok {
			legs = append(append([]FlightLeg(nil), part.legs...), legs...)
		}
		l.days[day] = buildPartition(legs)
	}

	return result
}

func buildPartition(legs []FlightLeg) *dayPartition {
	part := newDayPartition()
	for _, leg := range legs {
		part.legs = append(part.legs, leg)
		part.regs[leg.Registration] = struct{}{}

		if leg.HasBlock {
			part.regMinutes[leg.Registration] += leg.BlockMinutes
			part.regFlights[leg.Registration]++
		}

		assignments := ExtractCrew(leg.CrewText)
		if len(assignments) == 0 {
			continue
		}
		for _, a := range assignments {
			part.roles[a.ID] = a.Role
		}
		key := GroupKey(assignments)
		part.groups[key] = append(part.groups[key], leg.Registration)
	}
	return part
}

// OperatingDays lists the known operating-day keys, sorted.
func (l *FlightLedger) OperatingDays() []string {
	days := make([]string, 0, len(l.days))
	for day := range l.days {
		days = append(days, day)
	}
	sort.Strings(days)
	return days
}

// flightView is the flight-side state for one snapshot: either a single
// operating-day partition or the merge of all of them.
type flightView struct {
	legs       []FlightLeg
	regs       map[string]struct{}
	regMinutes map[string]int
	regFlights map[string]int
	groups     map[string][]string
	roles      map[string]string
}

// view selects the partitions a snapshot is computed from. An unknown filter
// key yields an empty view: filtered flight figures never fall back to the
// global aggregate.
func (l *FlightLedger) view(filter string) *flightView {
	v := &flightView{
		regs:       make(map[string]struct{}),
		regMinutes: make(map[string]int),
		regFlights: make(map[string]int),
		groups:     make(map[string][]string),
		roles:      make(map[string]string),
	}

	merge := func(part *dayPartition) {
		v.legs = append(v.legs, part.legs...)
		for reg := range part.regs {
			v.regs[reg] = struct{}{}
		}
		for reg, mins := range part.regMinutes {
			v.regMinutes[reg] += mins
		}
		for reg, n := range part.regFlights {
			v.regFlights[reg] += n
		}
		for key, regs := range part.groups {
			v.groups[key] = append(v.groups[key], regs...)
		}
		for id, role := range part.roles {
			v.roles[id] = role
		}
	}

	if filter != "" {
		if part, ok := l.days[filter]; ok {
			merge(part)
		}
		return v
	}

	for _, day := range l.OperatingDays() {
		merge(l.days[day])
	}
	return v
}
