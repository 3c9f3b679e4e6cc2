package reports

// RowStatus classifies what the engine did with one raw report row.
type RowStatus string

const (
	// RowAccepted means the row produced a fully derived record.
	RowAccepted RowStatus = "accepted"
	// RowPartial means the row was retained but some derived computation was
	// skipped (e.g. a leg stored without a block duration).
	RowPartial RowStatus = "partial"
	// RowSkipped means the row contributed nothing to the batch.
	RowSkipped RowStatus = "skipped"
)

// RowOutcome records the fate of a single row so callers can audit data
// quality without the engine ever raising. Accepted rows are counted but not
// itemized; only partial and skipped rows carry outcomes.
type RowOutcome struct {
	Line   int       `json:"line"`
	Status RowStatus `json:"status"`
	Reason string    `json:"reason"`
}

// IngestResult summarizes one ingestion batch. A zero-value result (count 0,
// no outcomes) is how whole-file absence surfaces: no data rather than an
// error.
type IngestResult struct {
	Accepted int          `json:"accepted"`
	Outcomes []RowOutcome `json:"outcomes,omitempty"`
}

// Skipped counts the rows that contributed nothing.
func (r IngestResult) Skipped() int {
	n := 0
	for _, o := range r.Outcomes {
		if o.Status == RowSkipped {
			n++
		}
	}
	return n
}

func (r *IngestResult) skip(line int, reason string) {
	r.Outcomes = append(r.Outcomes, RowOutcome{Line: line, Status: RowSkipped, Reason: reason})
}

func (r *IngestResult) partial(line int, reason string) {
	r.Outcomes = append(r.Outcomes, RowOutcome{Line: line, Status: RowPartial, Reason: reason})
}
