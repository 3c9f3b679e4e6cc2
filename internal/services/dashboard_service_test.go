package services

import (
	"testing"
	"time"

	"skyops/crewboard/internal/common"
	"skyops/crewboard/internal/constants"
)

func testDashboard() *DashboardService {
	cache := common.NewCacheService(60, 120)
	return NewDashboardService(2026, cache, nil, time.Minute)
}

func dayrepRow(date, reg, std, sta, crew string) []string {
	row := make([]string, 15)
	row[0] = date
	row[1] = reg
	row[2] = "PK301"
	row[3] = "KHI"
	row[4] = "LHE"
	row[5] = std
	row[6] = sta
	row[14] = crew
	return row
}

func TestDashboardService_IngestAndSnapshot(t *testing.T) {
	svc := testDashboard()

	result, err := svc.Ingest(constants.ReportTypeDayrep, [][]string{
		dayrepRow("15/01/26", "AP-BMG", "08:00", "09:40", "(CP) 1234 (FO) 5678"),
		dayrepRow("15/01/26", "AP-BMH", "11:00", "12:30", "(CP) 1234 (FO) 5678"),
	}, "")
	if err != nil {
		t.Fatalf("Ingest returned error: %v", err)
	}
	if result.Accepted != 2 {
		t.Fatalf("expected 2 accepted rows, got %d", result.Accepted)
	}

	snap := svc.Snapshot("")
	if snap.Summary.TotalFlights != 2 {
		t.Errorf("expected 2 flights, got %d", snap.Summary.TotalFlights)
	}
	if snap.Summary.TotalAircraft != 2 {
		t.Errorf("expected 2 aircraft, got %d", snap.Summary.TotalAircraft)
	}
	if snap.Summary.RotationCount != 1 {
		t.Errorf("expected 1 rotation group, got %d", snap.Summary.RotationCount)
	}
}

func TestDashboardService_UnknownReportType(t *testing.T) {
	svc := testDashboard()

	if _, err := svc.Ingest(constants.ReportType("bogus"), nil, ""); err == nil {
		t.Error("expected error for unknown report type")
	}
}

func TestDashboardService_SnapshotCacheInvalidatedByIngest(t *testing.T) {
	svc := testDashboard()

	if _, err := svc.Ingest(constants.ReportTypeDayrep, [][]string{
		dayrepRow("15/01/26", "AP-BMG", "08:00", "09:40", "(CP) 1234"),
	}, ""); err != nil {
		t.Fatalf("Ingest returned error: %v", err)
	}

	first := svc.Snapshot("")
	if first.Summary.TotalFlights != 1 {
		t.Fatalf("expected 1 flight before second batch, got %d", first.Summary.TotalFlights)
	}

	// A second batch for another day must retire the cached snapshot.
	if _, err := svc.Ingest(constants.ReportTypeDayrep, [][]string{
		dayrepRow("16/01/26", "AP-BMH", "09:00", "10:10", "(CP) 9999"),
	}, ""); err != nil {
		t.Fatalf("Ingest returned error: %v", err)
	}

	second := svc.Snapshot("")
	if second.Summary.TotalFlights != 2 {
		t.Errorf("expected 2 flights after second batch, got %d", second.Summary.TotalFlights)
	}
}

func TestDashboardService_SnapshotServedFromCache(t *testing.T) {
	svc := testDashboard()

	if _, err := svc.Ingest(constants.ReportTypeDayrep, [][]string{
		dayrepRow("15/01/26", "AP-BMG", "08:00", "09:40", "(CP) 1234"),
	}, ""); err != nil {
		t.Fatalf("Ingest returned error: %v", err)
	}

	first := svc.Snapshot("")
	second := svc.Snapshot("")
	if first != second {
		t.Error("expected the cached snapshot pointer on repeat reads")
	}
}

func TestDashboardService_FilteredSnapshot(t *testing.T) {
	svc := testDashboard()

	if _, err := svc.Ingest(constants.ReportTypeDayrep, [][]string{
		dayrepRow("15/01/26", "AP-BMG", "08:00", "09:40", "(CP) 1234"),
		dayrepRow("16/01/26", "AP-BMH", "09:00", "10:10", "(CP) 9999"),
	}, ""); err != nil {
		t.Fatalf("Ingest returned error: %v", err)
	}

	snap := svc.Snapshot("2026-01-15")
	if snap.Summary.TotalFlights != 1 {
		t.Errorf("expected 1 flight on 15/01/26, got %d", snap.Summary.TotalFlights)
	}
	if snap.FilterKey != "15/01/26" {
		t.Errorf("expected normalized filter key 15/01/26, got %q", snap.FilterKey)
	}
}
