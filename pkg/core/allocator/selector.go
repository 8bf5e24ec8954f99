package allocator

import (
	"gonum.org/v1/gonum/floats"
)

const (
	// OptimalMassThreshold is the share of total normalized score the optimal
	// recipients must cover
	OptimalMassThreshold = 0.8

	// massTolerance absorbs floating point error in the cumulative sum so that a
	// cumulative mass of exactly the threshold is counted
	massTolerance = 1e-9
)

// OptimalCount returns how many top-ranked candidates are needed for their cumulative
// normalized score to reach OptimalMassThreshold.
//
// It counts the leading rows whose cumulative normalized score is at most the threshold,
// clamped to at least 1 so there is always a recipient. The result is in [1, rows] for a
// non-empty table and 0 for an empty one.
func OptimalCount(ranked *ScoredTable) int {
	return OptimalCountWithThreshold(ranked, OptimalMassThreshold)
}

// OptimalCountWithThreshold is OptimalCount with a caller-chosen mass threshold
func OptimalCountWithThreshold(ranked *ScoredTable, threshold float64) int {
	if ranked == nil || len(ranked.Rows) == 0 {
		return 0
	}

	scores := make([]float64, len(ranked.Rows))
	for i, row := range ranked.Rows {
		scores[i] = row.NormalizedScore
	}

	cumulative := floats.CumSum(make([]float64, len(scores)), scores)

	count := 0
	for _, mass := range cumulative {
		if mass > threshold+massTolerance {
			break
		}
		count++
	}

	return max(count, 1)
}
