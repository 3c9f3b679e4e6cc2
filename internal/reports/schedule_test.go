package reports

import "testing"

func schedRow(index, id, name, baseACPos, sl, csl, sby, osby string) []string {
	return []string{index, id, name, baseACPos, "totals", sl, csl, sby, osby}
}

func TestScheduleTablePriorityOrder(t *testing.T) {
	table := NewScheduleTable(NewDateNormalizer(2026))

	table.Ingest([][]string{
		schedRow("1", "1001", "A", "HAN A321 CP", "1", "", "", ""),
		schedRow("2", "1002", "B", "SGN A320 FO", "", "1", "", ""),
		schedRow("3", "1003", "C", "HAN", "", "", "1", ""),
		schedRow("4", "1004", "D", "", "", "", "", "1"),
		// Flagged in two columns: only the higher-priority SL counts.
		schedRow("5", "1005", "E", "", "1", "", "1", ""),
	}, "15/01/26")

	summary := table.View("15/01/26")
	if summary.Counts["SL"] != 2 {
		t.Errorf("SL = %d, want 2", summary.Counts["SL"])
	}
	if summary.Counts["CSL"] != 1 || summary.Counts["SBY"] != 1 || summary.Counts["OSBY"] != 1 {
		t.Errorf("counts = %v, want CSL/SBY/OSBY all 1", summary.Counts)
	}
}

func TestScheduleTableBaseCellSplit(t *testing.T) {
	table := NewScheduleTable(NewDateNormalizer(2026))
	table.Ingest([][]string{
		schedRow("1", "1001", "A", "HAN A321 CP", "1", "", "", ""),
	}, "15/01/26")

	rec := table.View("15/01/26").SickLeave[0]
	if rec.Base != "HAN" || rec.Aircraft != "A321" || rec.Position != "CP" {
		t.Errorf("base cell split = %+v", rec)
	}
}

func TestScheduleTableSkipsHeaderAndUnflaggedRows(t *testing.T) {
	table := NewScheduleTable(NewDateNormalizer(2026))

	result := table.Ingest([][]string{
		{"No", "ID", "Name", "Base", "Totals", "SL", "CSL", "SBY", "OSBY"},
		schedRow("1", "1001", "A", "", "", "", "", ""),
	}, "15/01/26")

	if result.Accepted != 0 {
		t.Errorf("accepted = %d, want 0", result.Accepted)
	}
	if result.Skipped() != 2 {
		t.Errorf("skipped = %d, want 2", result.Skipped())
	}
}

func TestScheduleTablePerDateReplaceAndFallback(t *testing.T) {
	table := NewScheduleTable(NewDateNormalizer(2026))

	table.Ingest([][]string{
		schedRow("1", "1001", "A", "", "1", "", "", ""),
	}, "15/01/26")
	table.Ingest([][]string{
		schedRow("1", "2001", "B", "", "", "", "1", ""),
		schedRow("2", "2002", "C", "", "", "", "1", ""),
	}, "16/01/26")

	if got := table.View("16/01/26").Counts["SBY"]; got != 2 {
		t.Errorf("16/01/26 SBY = %d, want 2", got)
	}
	if got := table.View("15/01/26").Counts["SBY"]; got != 0 {
		t.Errorf("15/01/26 SBY = %d, want 0", got)
	}

	// Unknown date falls back to all partitions.
	all := table.View("20/01/26")
	if all.Counts["SL"] != 1 || all.Counts["SBY"] != 2 {
		t.Errorf("fallback counts = %v", all.Counts)
	}

	// Re-ingesting a date replaces that partition only.
	table.Ingest([][]string{
		schedRow("1", "2001", "B", "", "", "", "1", ""),
	}, "16/01/26")
	if got := table.View("16/01/26").Counts["SBY"]; got != 1 {
		t.Errorf("replaced 16/01/26 SBY = %d, want 1", got)
	}
}
