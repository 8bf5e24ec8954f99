package allocator

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Score runs the Weighted Product Model over the candidate table.
//
// Weights are normalized to sum to 1, Cost criteria are inverted (v -> 1/v) and each
// candidate's raw score is the product of its transformed values raised to the
// normalized weights. The normalized score is the raw score divided by the sum of all
// raw scores. Every input row is returned, ranked by Rank.
//
// The input table is not modified.
func Score(table CandidateTable, criteria []Criterion) (*ScoredTable, error) {
	if err := ValidateCriteria(criteria); err != nil {
		return nil, err
	}
	if err := ValidateCandidates(table, criteria); err != nil {
		return nil, err
	}

	values := transformedMatrix(table, criteria)
	exponents := normalizedWeightVector(criteria)

	rows, _ := values.Dims()
	raw := make([]float64, rows)
	for rowIdx := range rows {
		raw[rowIdx] = weightedProduct(mat.Row(nil, rowIdx, values), exponents)
	}

	normalized, err := normalizeScores(raw)
	if err != nil {
		return nil, err
	}

	scored := &ScoredTable{
		IDColumn:          table.IDColumn,
		Rows:              make([]ScoredCandidate, rows),
		NormalizedWeights: NormalizeWeights(criteria),
	}
	for i, candidate := range table.Candidates {
		scored.Rows[i] = ScoredCandidate{
			ID:              candidate.ID,
			Position:        i,
			RawScore:        raw[i],
			NormalizedScore: normalized[i],
		}
	}

	return Rank(scored), nil
}

// ScoreWithMaps is Score with the criterion configuration given as separate weight and
// kind mappings keyed by criterion name
func ScoreWithMaps(table CandidateTable, weights map[string]int, kinds map[string]Kind) (*ScoredTable, error) {
	criteria, err := CriteriaFromMaps(weights, kinds)
	if err != nil {
		return nil, err
	}
	return Score(table, criteria)
}

// ValidateCandidates checks that every candidate has a finite, strictly positive value
// for every criterion. Inversion and fractional powers are undefined otherwise
func ValidateCandidates(table CandidateTable, criteria []Criterion) error {
	if len(table.Candidates) == 0 {
		return fmt.Errorf("%w: candidate table is empty", ErrInvalidData)
	}

	for i, candidate := range table.Candidates {
		for _, c := range criteria {
			v, ok := candidate.Values[c.Name]
			if !ok {
				return fmt.Errorf("%w: candidate %q (row %d) has no value for criterion %q",
					ErrInvalidData, candidate.ID, i+1, c.Name)
			}
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return fmt.Errorf("%w: candidate %q (row %d) has a non-finite value for criterion %q",
					ErrInvalidData, candidate.ID, i+1, c.Name)
			}
			if v <= 0 {
				return fmt.Errorf("%w: candidate %q (row %d) has non-positive value %v for criterion %q",
					ErrInvalidData, candidate.ID, i+1, v, c.Name)
			}
		}
	}

	return nil
}

// transformedMatrix builds a candidates x criteria matrix with Cost columns inverted
func transformedMatrix(table CandidateTable, criteria []Criterion) *mat.Dense {
	values := mat.NewDense(len(table.Candidates), len(criteria), nil)

	for rowIdx, candidate := range table.Candidates {
		for colIdx, c := range criteria {
			v := candidate.Values[c.Name]
			if c.Kind == KindCost {
				v = 1 / v
			}
			values.Set(rowIdx, colIdx, v)
		}
	}

	return values
}

// weightedProduct returns prod(values[i] ^ exponents[i])
func weightedProduct(values, exponents []float64) float64 {
	product := 1.0
	for i, v := range values {
		product *= math.Pow(v, exponents[i])
	}
	return product
}

// normalizeScores divides raw scores by their sum. Scores are first scaled by their
// maximum so the sum cannot overflow for values near the float64 limit
func normalizeScores(raw []float64) ([]float64, error) {
	peak := floats.Max(raw)
	if math.IsNaN(peak) || math.IsInf(peak, 0) || peak <= 0 {
		return nil, fmt.Errorf("%w: raw scores must be finite and positive, got maximum %v", ErrInvalidData, peak)
	}

	normalized := make([]float64, len(raw))
	copy(normalized, raw)
	floats.Scale(1.0/peak, normalized)
	floats.Scale(1.0/floats.Sum(normalized), normalized)

	for _, v := range normalized {
		if math.IsNaN(v) {
			return nil, fmt.Errorf("%w: raw scores must be finite and positive", ErrInvalidData)
		}
	}
	return normalized, nil
}
