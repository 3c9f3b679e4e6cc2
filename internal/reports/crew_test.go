package reports

import "testing"

func TestExtractCrew(t *testing.T) {
	text := "-NGUYEN V A(CP) 7531 -TRAN B(FO) 7440 -LE C(PU) 8102"
	crew := ExtractCrew(text)

	if len(crew) != 3 {
		t.Fatalf("expected 3 assignments, got %d", len(crew))
	}
	if crew[0].Role != "CP" || crew[0].ID != "7531" {
		t.Errorf("crew[0] = %+v, want (CP, 7531)", crew[0])
	}
	if crew[1].Role != "FO" || crew[1].ID != "7440" {
		t.Errorf("crew[1] = %+v, want (FO, 7440)", crew[1])
	}
	if crew[2].Role != "PU" || crew[2].ID != "8102" {
		t.Errorf("crew[2] = %+v, want (PU, 8102)", crew[2])
	}
}

func TestExtractCrewNoMatch(t *testing.T) {
	for _, text := range []string{"", "DEADHEAD", "(cp) 1234", "(CPX) 99"} {
		if crew := ExtractCrew(text); crew != nil {
			t.Errorf("ExtractCrew(%q) = %v, want nil", text, crew)
		}
	}
}

func TestGroupKeyOrderIndependent(t *testing.T) {
	a := []CrewAssignment{{Role: "CP", ID: "1002"}, {Role: "FO", ID: "1001"}}
	b := []CrewAssignment{{Role: "FO", ID: "1001"}, {Role: "CP", ID: "1002"}}

	if GroupKey(a) != GroupKey(b) {
		t.Errorf("group key depends on order: %q vs %q", GroupKey(a), GroupKey(b))
	}
	if GroupKey(a) != "1001+1002" {
		t.Errorf("GroupKey = %q, want 1001+1002", GroupKey(a))
	}
}

func TestGroupKeyDistinctIDs(t *testing.T) {
	dup := []CrewAssignment{{Role: "CP", ID: "1001"}, {Role: "FO", ID: "1001"}}
	if GroupKey(dup) != "1001" {
		t.Errorf("GroupKey with duplicate id = %q, want 1001", GroupKey(dup))
	}
	if GroupKey(nil) != "" {
		t.Errorf("GroupKey(nil) = %q, want empty", GroupKey(nil))
	}
}
