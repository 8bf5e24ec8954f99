package allocator

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
)

// Kind says whether larger or smaller values of a criterion are preferable
type Kind string

const (
	// KindBenefit criteria prefer larger values
	KindBenefit Kind = "Benefit"

	// KindCost criteria prefer smaller values. Values are inverted before scoring
	KindCost Kind = "Cost"
)

// IsValid reports whether k is one of the known kinds
func (k Kind) IsValid() bool {
	return k == KindBenefit || k == KindCost
}

// ParseKind parses a kind case-insensitively
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "benefit":
		return KindBenefit, nil
	case "cost":
		return KindCost, nil
	default:
		return "", fmt.Errorf("%w: unknown criterion kind %q (expected Benefit or Cost)", ErrInvalidConfiguration, s)
	}
}

// Criterion configures how one column contributes to the score
type Criterion struct {
	// Name of the column in the candidate table
	Name string

	// Weight is the raw importance of the criterion, expected in MinWeight..MaxWeight.
	// The range is not enforced here, only that the weights sum to a positive number
	Weight int

	// Kind is Benefit or Cost
	Kind Kind
}

// CriteriaFromMaps zips weight and kind mappings into a criterion list.
// The key sets must be identical and non-empty. Criteria are returned sorted by name
// so that scoring is deterministic regardless of map iteration order
func CriteriaFromMaps(weights map[string]int, kinds map[string]Kind) ([]Criterion, error) {
	if len(weights) == 0 {
		return nil, fmt.Errorf("%w: no criteria selected", ErrInvalidConfiguration)
	}
	if len(weights) != len(kinds) {
		return nil, fmt.Errorf("%w: %d weights but %d kinds", ErrInvalidConfiguration, len(weights), len(kinds))
	}

	criteria := make([]Criterion, 0, len(weights))
	for name, weight := range weights {
		kind, ok := kinds[name]
		if !ok {
			return nil, fmt.Errorf("%w: criterion %q has a weight but no kind", ErrInvalidConfiguration, name)
		}
		criteria = append(criteria, Criterion{Name: name, Weight: weight, Kind: kind})
	}

	slices.SortFunc(criteria, func(a, b Criterion) int {
		return cmp.Compare(a.Name, b.Name)
	})
	return criteria, nil
}

// ValidateCriteria checks the criterion selection is usable for scoring
func ValidateCriteria(criteria []Criterion) error {
	if len(criteria) == 0 {
		return fmt.Errorf("%w: no criteria selected", ErrInvalidConfiguration)
	}

	seen := make(map[string]bool, len(criteria))
	for _, c := range criteria {
		if c.Name == "" {
			return fmt.Errorf("%w: criterion with empty name", ErrInvalidConfiguration)
		}
		if seen[c.Name] {
			return fmt.Errorf("%w: criterion %q selected more than once", ErrInvalidConfiguration, c.Name)
		}
		seen[c.Name] = true

		if !c.Kind.IsValid() {
			return fmt.Errorf("%w: criterion %q has unknown kind %q", ErrInvalidConfiguration, c.Name, c.Kind)
		}
	}

	if weightSum(criteria) <= 0 {
		return fmt.Errorf("%w: criterion weights must sum to a positive number", ErrInvalidConfiguration)
	}

	return nil
}
