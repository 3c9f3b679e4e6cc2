package reports

import (
	"regexp"
	"sort"
	"strings"
)

// crewAssignmentPattern is the documented contract for crew-assignment text:
// a two-letter uppercase role code in parentheses immediately followed by a
// numeric crew id, e.g. "-NGUYEN V A(CP) 7531". Text that never matches
// yields no assignments, not an error.
var crewAssignmentPattern = regexp.MustCompile(`\(([A-Z]{2})\)\s*(\d+)`)

// CrewAssignment is one (role, crew id) pair parsed from a leg's crew field.
type CrewAssignment struct {
	Role string
	ID   string
}

// ExtractCrew parses the free-text crew-assignment field of a flight leg.
func ExtractCrew(text string) []CrewAssignment {
	matches := crewAssignmentPattern.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return nil
	}

	assignments := make([]CrewAssignment, 0, len(matches))
	for _, m := range matches {
		assignments = append(assignments, CrewAssignment{Role: m[1], ID: m[2]})
	}
	return assignments
}

// GroupKey derives the rotation-detection key for a leg: the sorted tuple of
// distinct crew ids flying together. Two legs belong to the same crew group
// only when their id sets are identical, not merely overlapping. An empty key
// means the leg carried no parseable crew.
func GroupKey(assignments []CrewAssignment) string {
	if len(assignments) == 0 {
		return ""
	}

	seen := make(map[string]struct{}, len(assignments))
	ids := make([]string, 0, len(assignments))
	for _, a := range assignments {
		if _, ok := seen[a.ID]; ok {
			continue
		}
		seen[a.ID] = struct{}{}
		ids = append(ids, a.ID)
	}
	sort.Strings(ids)
	return strings.Join(ids, "+")
}

// SplitGroupKey recovers the crew ids encoded in a group key.
func SplitGroupKey(key string) []string {
	if key == "" {
		return nil
	}
	return strings.Split(key, "+")
}
