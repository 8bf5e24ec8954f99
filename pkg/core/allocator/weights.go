package allocator

import (
	"gonum.org/v1/gonum/floats"
)

// Criterion weight scale
const (
	// MinWeight is the lowest weight a user can assign to a criterion
	MinWeight = 1

	// MaxWeight is the highest weight a user can assign to a criterion
	MaxWeight = 5

	// DefaultWeight is the weight a newly selected criterion starts with
	DefaultWeight = 3
)

// weightLabels describes each point of the weight scale
var weightLabels = map[int]string{
	1: "Not very important",
	2: "Less important",
	3: "Fairly important",
	4: "Important",
	5: "Very important",
}

// WeightLabel returns the description of a weight on the 1-5 scale,
// or an empty string for weights outside it
func WeightLabel(weight int) string {
	return weightLabels[weight]
}

// NormalizeWeights divides every weight by the total weight so the results sum to 1.
// The returned map is keyed by criterion name
func NormalizeWeights(criteria []Criterion) map[string]float64 {
	vector := normalizedWeightVector(criteria)

	normalized := make(map[string]float64, len(criteria))
	for i, c := range criteria {
		normalized[c.Name] = vector[i]
	}
	return normalized
}

// normalizedWeightVector returns the normalized weights in criteria order
func normalizedWeightVector(criteria []Criterion) []float64 {
	vector := make([]float64, len(criteria))
	for i, c := range criteria {
		vector[i] = float64(c.Weight)
	}

	sum := floats.Sum(vector)
	if sum > 0 {
		floats.Scale(1.0/sum, vector)
	}
	return vector
}

func weightSum(criteria []Criterion) int {
	total := 0
	for _, c := range criteria {
		total += c.Weight
	}
	return total
}
