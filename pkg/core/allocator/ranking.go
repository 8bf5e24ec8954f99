package allocator

import "sort"

// Rank returns a copy of the scored table sorted by raw score in descending order
// (higher scores are funded first) with Rank set from 1. The sort is stable, so
// candidates with equal scores keep their input order.
//
// Normalized scores are a positive rescaling of raw scores and give the same order.
func Rank(table *ScoredTable) *ScoredTable {
	ranked := &ScoredTable{
		IDColumn:          table.IDColumn,
		Rows:              make([]ScoredCandidate, len(table.Rows)),
		NormalizedWeights: table.NormalizedWeights,
	}
	copy(ranked.Rows, table.Rows)

	sort.SliceStable(ranked.Rows, func(i, j int) bool {
		return ranked.Rows[i].RawScore > ranked.Rows[j].RawScore
	})

	for i := range ranked.Rows {
		ranked.Rows[i].Rank = i + 1
	}

	return ranked
}
