package dataset

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jakechorley/scholarship-allocator/pkg/core/allocator"
)

func sampleTable(t *testing.T) *Table {
	t.Helper()
	table, err := NewTable(
		[]string{"Name", " GPA ", "Income", "Dependents"},
		[][]string{
			{"Ani", "3.6", "1500000", "3"},
			{"", "", "", ""},
			{"Budi", "3.1", "900000", "5"},
			{"Citra", "3.9", "4200000"},
		},
	)
	require.NoError(t, err)
	return table
}

func TestNewTable_TrimsAndPads(t *testing.T) {
	table := sampleTable(t)

	assert.Equal(t, []string{"Name", "GPA", "Income", "Dependents"}, table.Headers)
	require.Equal(t, 3, table.Len(), "blank rows should be dropped")
	assert.Equal(t, []string{"Citra", "3.9", "4200000", ""}, table.Rows[2])
}

func TestNewTable_InvalidHeaders(t *testing.T) {
	_, err := NewTable(nil, nil)
	assert.Error(t, err)

	_, err = NewTable([]string{"Name", ""}, nil)
	assert.ErrorContains(t, err, "empty header")

	_, err = NewTable([]string{"Name", "GPA", "Name "}, nil)
	assert.ErrorContains(t, err, "duplicate column header")
}

func TestColumnTypes(t *testing.T) {
	table := sampleTable(t)

	types := table.ColumnTypes()
	assert.Equal(t, ColumnText, types["Name"])
	assert.Equal(t, ColumnNumeric, types["GPA"])
	assert.Equal(t, ColumnNumeric, types["Income"])
	assert.Equal(t, ColumnNumeric, types["Dependents"])

	assert.Equal(t, []string{"Name"}, table.TextColumns())
	assert.Equal(t, []string{"GPA", "Income", "Dependents"}, table.NumericColumns("Name"))
	assert.Equal(t, []string{"Income", "Dependents"}, table.NumericColumns("GPA"))
}

func TestTextColumns_AllNumeric(t *testing.T) {
	table, err := NewTable([]string{"No", "Score"}, [][]string{{"1", "80"}, {"2", "75"}})
	require.NoError(t, err)

	assert.Equal(t, []string{"No", "Score"}, table.TextColumns())
}

func TestCandidates(t *testing.T) {
	table := sampleTable(t)

	candidates, err := table.Candidates("Name", []string{"GPA", "Income"})
	require.NoError(t, err)

	assert.Equal(t, "Name", candidates.IDColumn)
	require.Equal(t, 3, candidates.Len())
	assert.Equal(t, "Ani", candidates.Candidates[0].ID)
	assert.Equal(t, map[string]float64{"GPA": 3.6, "Income": 1500000}, candidates.Candidates[0].Values)
	assert.Equal(t, "Citra", candidates.Candidates[2].ID)
}

func TestCandidates_SchemaErrors(t *testing.T) {
	table := sampleTable(t)

	tests := []struct {
		name     string
		id       string
		criteria []string
		contains string
	}{
		{name: "unknown id column", id: "Student", criteria: []string{"GPA"}, contains: `identifier column "Student" not found`},
		{name: "unknown criterion", id: "Name", criteria: []string{"Age"}, contains: `criterion column "Age" not found`},
		{name: "id used as criterion", id: "GPA", criteria: []string{"GPA"}, contains: "both identifier and criterion"},
		// Citra has no Dependents value; the dropped blank row means she is on line 5
		{name: "missing value", id: "Name", criteria: []string{"Dependents"}, contains: "row 5: missing value for Dependents"},
		{name: "text criterion", id: "GPA", criteria: []string{"Name"}, contains: `row 2: Name value "Ani" is not a number`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := table.Candidates(tt.id, tt.criteria)
			require.Error(t, err)
			assert.True(t, errors.Is(err, allocator.ErrInvalidData))
			assert.Contains(t, err.Error(), tt.contains)
		})
	}
}

func TestCandidates_NonPositiveAndBlankID(t *testing.T) {
	table, err := NewTable(
		[]string{"Name", "Score"},
		[][]string{{"Ani", "80"}, {"Budi", "0"}},
	)
	require.NoError(t, err)

	_, err = table.Candidates("Name", []string{"Score"})
	assert.ErrorIs(t, err, allocator.ErrInvalidData)
	assert.ErrorContains(t, err, "row 3: Score value 0 must be greater than zero")

	table, err = NewTable(
		[]string{"Name", "Score"},
		[][]string{{"", "80"}},
	)
	require.NoError(t, err)

	_, err = table.Candidates("Name", []string{"Score"})
	assert.ErrorContains(t, err, "row 2: missing Name")
}

func TestCandidates_NoRows(t *testing.T) {
	table, err := NewTable([]string{"Name", "Score"}, nil)
	require.NoError(t, err)

	_, err = table.Candidates("Name", []string{"Score"})
	assert.ErrorIs(t, err, allocator.ErrInvalidData)
}

func TestParseNumber_RejectsNonFinite(t *testing.T) {
	for _, s := range []string{"NaN", "Inf", "-Inf", "1e400", "abc"} {
		_, err := parseNumber(s)
		assert.Error(t, err, s)
	}

	value, err := parseNumber("1.5e3")
	require.NoError(t, err)
	assert.Equal(t, 1500.0, value)
}
