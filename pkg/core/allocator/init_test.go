package allocator

// Shared fixtures for the allocator tests

const scoreTolerance = 1e-9

// scenarioTable is the three candidate example used across the tests:
// criteria Score (weight 3, Benefit) and Cost (weight 2, Cost)
func scenarioTable() CandidateTable {
	return CandidateTable{
		IDColumn: "Name",
		Candidates: []Candidate{
			{ID: "A", Values: map[string]float64{"Score": 80, "Cost": 10}},
			{ID: "B", Values: map[string]float64{"Score": 60, "Cost": 5}},
			{ID: "C", Values: map[string]float64{"Score": 90, "Cost": 20}},
		},
	}
}

func scenarioCriteria() []Criterion {
	return []Criterion{
		{Name: "Score", Weight: 3, Kind: KindBenefit},
		{Name: "Cost", Weight: 2, Kind: KindCost},
	}
}

// scoredFromNormalized builds a ranked table directly from normalized scores.
// Raw scores are set equal to the normalized scores
func scoredFromNormalized(normalized ...float64) *ScoredTable {
	table := &ScoredTable{IDColumn: "ID"}
	for i, score := range normalized {
		table.Rows = append(table.Rows, ScoredCandidate{
			ID:              string(rune('A' + i)),
			Position:        i,
			Rank:            i + 1,
			RawScore:        score,
			NormalizedScore: score,
		})
	}
	return table
}

func ids(rows []ScoredCandidate) []string {
	result := make([]string, len(rows))
	for i, row := range rows {
		result[i] = row.ID
	}
	return result
}
