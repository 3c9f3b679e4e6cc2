package reports

import "testing"

func TestSnapshotRotationDetection(t *testing.T) {
	agg := NewAggregator(2026)

	crew := "-A(CP) 1001 -B(FO) 1002"
	agg.IngestFlights([][]string{
		legRow("15/01/26", "VN-A001", "VN1", "HAN", "SGN", "08:00", "10:00", crew),
		legRow("15/01/26", "VN-A001", "VN2", "SGN", "HAN", "11:00", "13:00", crew),
		legRow("15/01/26", "VN-A002", "VN3", "HAN", "DAD", "14:00", "15:20", crew),
		// A second group that never changes aircraft.
		legRow("15/01/26", "VN-A003", "VN4", "DAD", "HAN", "08:00", "09:20", "-C(CP) 2001"),
		legRow("15/01/26", "VN-A003", "VN5", "HAN", "DAD", "10:00", "11:20", "-C(CP) 2001"),
	})

	snap := agg.Snapshot("")
	if snap.Summary.RotationCount != 1 {
		t.Fatalf("rotation count = %d, want 1", snap.Summary.RotationCount)
	}

	group := snap.Rotations[0]
	if group.Rotations != 1 {
		t.Errorf("rotation magnitude = %d, want 1 (2 distinct regs - 1)", group.Rotations)
	}
	if group.CrewCount != 2 {
		t.Errorf("crew count = %d, want 2", group.CrewCount)
	}
	if len(group.Registrations) != 2 {
		t.Errorf("distinct registrations = %v, want 2", group.Registrations)
	}
}

func TestSnapshotFilteringIsolation(t *testing.T) {
	agg := NewAggregator(2026)

	agg.IngestFlights([][]string{
		legRow("15/01/26", "VN-A001", "VN1", "HAN", "SGN", "08:00", "10:00", "-A(CP) 1001"),
		legRow("16/01/26", "VN-A002", "VN2", "SGN", "HAN", "09:00", "11:00", "-B(CP) 2001"),
		legRow("16/01/26", "VN-A003", "VN3", "HAN", "DAD", "12:00", "13:00", "-B(CP) 2001"),
	})

	jan15 := agg.Snapshot("15/01/26")
	if jan15.Summary.TotalFlights != 1 {
		t.Errorf("15/01 flights = %d, want 1", jan15.Summary.TotalFlights)
	}
	if jan15.Summary.TotalCrew != 1 {
		t.Errorf("15/01 crew = %d, want 1", jan15.Summary.TotalCrew)
	}
	if jan15.Summary.RotationCount != 0 {
		t.Errorf("15/01 rotations = %d, want 0", jan15.Summary.RotationCount)
	}

	jan16 := agg.Snapshot("16/01/26")
	if jan16.Summary.TotalFlights != 2 {
		t.Errorf("16/01 flights = %d, want 2", jan16.Summary.TotalFlights)
	}
	if jan16.Summary.RotationCount != 1 {
		t.Errorf("16/01 rotations = %d, want 1", jan16.Summary.RotationCount)
	}
}

func TestSnapshotFilterAcceptsAnyDateShape(t *testing.T) {
	agg := NewAggregator(2026)
	agg.IngestFlights([][]string{
		legRow("15/01/26", "VN-A001", "VN1", "HAN", "SGN", "08:00", "10:00", ""),
	})

	for _, filter := range []string{"15/01/26", "2026-01-15", "Report Date: 15 Jan 2026"} {
		snap := agg.Snapshot(filter)
		if snap.Summary.TotalFlights != 1 {
			t.Errorf("filter %q: flights = %d, want 1", filter, snap.Summary.TotalFlights)
		}
	}
}

func TestSnapshotAverageFlightHours(t *testing.T) {
	agg := NewAggregator(2026)
	agg.IngestFlights([][]string{
		legRow("15/01/26", "VN-A001", "VN1", "HAN", "SGN", "08:00", "10:00", ""), // 2h
		legRow("15/01/26", "VN-A002", "VN2", "SGN", "HAN", "08:00", "12:00", ""), // 4h
	})

	snap := agg.Snapshot("")
	if snap.Summary.AvgFlightHours != 3.0 {
		t.Errorf("avg flight hours = %v, want 3.0", snap.Summary.AvgFlightHours)
	}
	if len(snap.Aircraft) != 2 {
		t.Fatalf("aircraft details = %d, want 2", len(snap.Aircraft))
	}
	if snap.Aircraft[0].Registration != "VN-A001" || snap.Aircraft[0].TotalHours != 2.0 {
		t.Errorf("aircraft[0] = %+v", snap.Aircraft[0])
	}
}

func TestSnapshotNonFlightTablesFallBackToGlobal(t *testing.T) {
	agg := NewAggregator(2026)

	agg.IngestFlights([][]string{
		legRow("16/01/26", "VN-A001", "VN1", "HAN", "SGN", "08:00", "10:00", ""),
	})
	agg.IngestRollingHours([][]string{
		{"1001", "PILOT A", "1", "96:00", "500:00"},
	}, "15/01/26")
	agg.IngestUtilization([][]string{
		utilRow("15.01", "A321", "50:30", "12:00", "62:30", "10:25"),
	})

	// 16/01 has a flight partition, but no rolling or utilization partition:
	// flight figures are partition-exclusive while the other tables fall back
	// to their global aggregates.
	snap := agg.Snapshot("16/01/26")
	if snap.Summary.TotalFlights != 1 {
		t.Errorf("flights = %d, want 1", snap.Summary.TotalFlights)
	}
	if len(snap.RollingHours) != 1 {
		t.Errorf("rolling fallback records = %d, want 1", len(snap.RollingHours))
	}
	if snap.RollingStats["critical"] != 1 {
		t.Errorf("rolling stats = %v, want 1 critical", snap.RollingStats)
	}
	if len(snap.Utilization) != 1 {
		t.Errorf("utilization fallback records = %d, want 1", len(snap.Utilization))
	}
}

func TestSnapshotEmptyEngine(t *testing.T) {
	agg := NewAggregator(2026)
	snap := agg.Snapshot("")

	if snap.Summary.TotalFlights != 0 || snap.Summary.TotalAircraft != 0 {
		t.Errorf("empty engine summary = %+v", snap.Summary)
	}
	if len(snap.OperatingDays) != 0 {
		t.Errorf("operating days = %v, want none", snap.OperatingDays)
	}
}
