package export

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/jakechorley/scholarship-allocator/pkg/core/allocator"
)

func sampleRun(t *testing.T) ([]allocator.Criterion, *allocator.ScoredTable, *allocator.AllocationTable) {
	t.Helper()

	candidates := allocator.CandidateTable{
		IDColumn: "Student",
		Candidates: []allocator.Candidate{
			{ID: "A", Values: map[string]float64{"Score": 80, "Cost": 10}},
			{ID: "B", Values: map[string]float64{"Score": 60, "Cost": 5}},
			{ID: "C", Values: map[string]float64{"Score": 90, "Cost": 20}},
		},
	}
	criteria := []allocator.Criterion{
		{Name: "Score", Weight: 3, Kind: allocator.KindBenefit},
		{Name: "Cost", Weight: 2, Kind: allocator.KindCost},
	}

	scored, err := allocator.Score(candidates, criteria)
	require.NoError(t, err)
	table, err := allocator.Allocate(scored, 1_000_000, 2)
	require.NoError(t, err)

	return criteria, scored, table
}

func TestWriteCSV(t *testing.T) {
	_, _, table := sampleRun(t)

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, table))

	expected := "Student,Allocation\n" +
		"B,526139\n" +
		"A,473861\n"
	assert.Equal(t, expected, buf.String())
}

func TestWriteXLSX(t *testing.T) {
	_, _, table := sampleRun(t)

	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, table))

	workbook, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer workbook.Close()

	assert.Equal(t, []string{SheetName}, workbook.GetSheetList())

	rows, err := workbook.GetRows(SheetName)
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"Student", "Allocation"},
		{"B", "526139"},
		{"A", "473861"},
	}, rows)
}

func TestWriteSummaryJSON(t *testing.T) {
	criteria, scored, table := sampleRun(t)
	generatedAt := time.Date(2025, 3, 1, 9, 30, 0, 0, time.UTC)

	summary := NewSummary("run-1", generatedAt, allocator.ModeCustom, criteria, scored, table)

	var buf bytes.Buffer
	require.NoError(t, WriteSummaryJSON(&buf, summary))

	var decoded Summary
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))

	assert.Equal(t, "run-1", decoded.RunID)
	assert.Equal(t, "2025-03-01T09:30:00Z", decoded.GeneratedAt)
	assert.Equal(t, "custom", decoded.Mode)
	assert.Equal(t, 3, decoded.Candidates)
	assert.Equal(t, 2, decoded.Recipients)
	assert.Equal(t, int64(1_000_000), decoded.Distributed)

	require.Len(t, decoded.Weights, 2)
	assert.Equal(t, "Score", decoded.Weights[0].Criterion)
	assert.Equal(t, "Benefit", decoded.Weights[0].Kind)
	assert.InDelta(t, 0.6, decoded.Weights[0].NormalizedWeight, 1e-9)

	require.Len(t, decoded.Awards, 2)
	assert.Equal(t, "B", decoded.Awards[0].ID)
	assert.Equal(t, int64(526139), decoded.Awards[0].Amount)

	require.Len(t, decoded.Ranking, 3)
	assert.Equal(t, "C", decoded.Ranking[2].ID)
	assert.Equal(t, 3, decoded.Ranking[2].Rank)
}

func TestSaveFile(t *testing.T) {
	criteria, scored, table := sampleRun(t)
	summary := NewSummary("run-1", time.Now(), allocator.ModeCustom, criteria, scored, table)
	dir := t.TempDir()

	for _, name := range []string{"out.xlsx", "out.csv", "out.json"} {
		path := filepath.Join(dir, name)
		require.NoError(t, SaveFile(path, summary, table), name)

		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Greater(t, info.Size(), int64(0), name)
	}

	err := SaveFile(filepath.Join(dir, "out.pdf"), summary, table)
	assert.ErrorContains(t, err, "unsupported export format")
	_, statErr := os.Stat(filepath.Join(dir, "out.pdf"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestFormatRupiah(t *testing.T) {
	tests := []struct {
		amount   int64
		expected string
	}{
		{0, "Rp0"},
		{999, "Rp999"},
		{1000, "Rp1,000"},
		{526139, "Rp526,139"},
		{1_000_000_000, "Rp1,000,000,000"},
		{-2500, "-Rp2,500"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, FormatRupiah(tt.amount))
	}
}
