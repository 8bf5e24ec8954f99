package allocator

import (
	"fmt"
	"math"
)

// Mode selects how many of the ranked candidates receive funds
type Mode string

const (
	// ModeAll funds every candidate in the table
	ModeAll Mode = "all"

	// ModeOptimal funds the OptimalCount top candidates
	ModeOptimal Mode = "optimal"

	// ModeCustom funds a caller-chosen number of top candidates
	ModeCustom Mode = "custom"
)

// IsValid reports whether m is a known mode
func (m Mode) IsValid() bool {
	return m == ModeAll || m == ModeOptimal || m == ModeCustom
}

// MaxBudget is the largest budget Allocate accepts. Every whole amount up to it is
// exactly representable as a float64
const MaxBudget = 1 << 53

// ResolveRecipientCount returns the number of recipients for the given mode.
// custom is only used in ModeCustom and is range-checked by Allocate
func ResolveRecipientCount(mode Mode, ranked *ScoredTable, custom int) (int, error) {
	switch mode {
	case ModeAll:
		return ranked.Len(), nil
	case ModeOptimal:
		return OptimalCount(ranked), nil
	case ModeCustom:
		return custom, nil
	default:
		return 0, fmt.Errorf("%w: unknown allocation mode %q", ErrInvalidConfiguration, mode)
	}
}

// Allocate distributes totalBudget among the top recipientCount rows of a ranked table.
//
// Scores are renormalized within the funded subset and each amount is the share of the
// budget rounded half to even to a whole currency unit. Rows are rounded independently,
// so the distributed total may differ from the budget by less than one unit per recipient.
func Allocate(ranked *ScoredTable, totalBudget float64, recipientCount int) (*AllocationTable, error) {
	if math.IsNaN(totalBudget) || math.IsInf(totalBudget, 0) || totalBudget < 0 {
		return nil, fmt.Errorf("%w: budget must be a non-negative number, got %v", ErrInvalidArgument, totalBudget)
	}
	if totalBudget > MaxBudget {
		return nil, fmt.Errorf("%w: budget must not exceed %d, got %v", ErrInvalidArgument, int64(MaxBudget), totalBudget)
	}
	if recipientCount < 1 || recipientCount > ranked.Len() {
		return nil, fmt.Errorf("%w: recipient count must be between 1 and %d, got %d",
			ErrInvalidArgument, ranked.Len(), recipientCount)
	}

	selected := ranked.Rows[:recipientCount]

	raw := make([]float64, len(selected))
	for i, row := range selected {
		raw[i] = row.RawScore
	}
	shares, err := normalizeScores(raw)
	if err != nil {
		return nil, err
	}

	table := &AllocationTable{
		IDColumn: ranked.IDColumn,
		Rows:     make([]Allocation, len(selected)),
		Budget:   totalBudget,
	}
	for i, row := range selected {
		amount := int64(math.RoundToEven(shares[i] * totalBudget))
		table.Rows[i] = Allocation{
			ID:              row.ID,
			Rank:            row.Rank,
			RawScore:        row.RawScore,
			NormalizedScore: shares[i],
			Amount:          amount,
		}
		table.Distributed += amount
	}
	table.RoundingDelta = float64(table.Distributed) - totalBudget

	return table, nil
}
