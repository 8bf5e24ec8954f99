package allocator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRank_SortsDescendingByRawScore(t *testing.T) {
	table := &ScoredTable{
		IDColumn: "ID",
		Rows: []ScoredCandidate{
			{ID: "low", Position: 0, RawScore: 1.5},
			{ID: "high", Position: 1, RawScore: 9.0},
			{ID: "mid", Position: 2, RawScore: 4.2},
		},
	}

	ranked := Rank(table)

	assert.Equal(t, []string{"high", "mid", "low"}, ids(ranked.Rows))
	for i, row := range ranked.Rows {
		assert.Equal(t, i+1, row.Rank)
	}
}

func TestRank_TiesKeepInputOrder(t *testing.T) {
	table := &ScoredTable{
		Rows: []ScoredCandidate{
			{ID: "first", Position: 0, RawScore: 2},
			{ID: "top", Position: 1, RawScore: 3},
			{ID: "second", Position: 2, RawScore: 2},
			{ID: "third", Position: 3, RawScore: 2},
		},
	}

	ranked := Rank(table)

	assert.Equal(t, []string{"top", "first", "second", "third"}, ids(ranked.Rows))
}

func TestRank_ReturnsCopy(t *testing.T) {
	table := &ScoredTable{
		Rows: []ScoredCandidate{
			{ID: "a", RawScore: 1},
			{ID: "b", RawScore: 2},
		},
	}

	ranked := Rank(table)

	assert.Equal(t, []string{"b", "a"}, ids(ranked.Rows))
	assert.Equal(t, []string{"a", "b"}, ids(table.Rows), "input rows should keep their order")
	assert.Zero(t, table.Rows[0].Rank)
}

func TestRank_Empty(t *testing.T) {
	ranked := Rank(&ScoredTable{})
	assert.Equal(t, 0, ranked.Len())
}
