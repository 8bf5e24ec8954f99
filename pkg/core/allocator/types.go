package allocator

// Candidate is a single row of the candidate table
type Candidate struct {
	// ID is the opaque label from the identifier column. It is never used in arithmetic
	ID string

	// Values maps criterion name to the candidate's value for that criterion.
	// Every value used in scoring must be strictly positive
	Values map[string]float64
}

// CandidateTable is the typed dataset consumed by the scorer
type CandidateTable struct {
	// IDColumn is the name of the identifier column the IDs were read from
	IDColumn string

	// Candidates in input order
	Candidates []Candidate
}

// Len returns the number of candidates in the table
func (t CandidateTable) Len() int {
	return len(t.Candidates)
}

// ScoredCandidate is a candidate together with its Weighted Product Model scores
type ScoredCandidate struct {
	ID string

	// Position is the candidate's zero-based index in the input table
	Position int

	// Rank is the 1-based position in descending raw score order
	Rank int

	// RawScore is the product of transformed criterion values raised to their normalized weights
	RawScore float64

	// NormalizedScore is RawScore divided by the sum of all raw scores in the table
	NormalizedScore float64
}

// ScoredTable is the ranked output of Score.
// Rows are ordered by descending raw score with ties kept in input order
type ScoredTable struct {
	IDColumn string
	Rows     []ScoredCandidate

	// NormalizedWeights are the weights used as exponents, keyed by criterion name
	NormalizedWeights map[string]float64
}

// Len returns the number of scored rows, 0 for a nil table
func (t *ScoredTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Rows)
}

// Allocation is a single funded row of an allocation table
type Allocation struct {
	ID       string
	Rank     int
	RawScore float64

	// NormalizedScore is renormalized within the funded subset, not the full table
	NormalizedScore float64

	// Amount is the integer number of currency units awarded
	Amount int64
}

// AllocationTable is the funded top-N subset of a ScoredTable, in rank order
type AllocationTable struct {
	IDColumn string
	Rows     []Allocation

	// Budget is the total budget requested for distribution
	Budget float64

	// Distributed is the sum of all allocated amounts
	Distributed int64

	// RoundingDelta is Distributed minus Budget. Each row is rounded independently,
	// so the magnitude is bounded by the number of recipients
	RoundingDelta float64
}

// Len returns the number of recipients in the table
func (t *AllocationTable) Len() int {
	return len(t.Rows)
}
