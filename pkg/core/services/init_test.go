package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jakechorley/scholarship-allocator/pkg/core/allocator"
	"github.com/jakechorley/scholarship-allocator/pkg/dataset"
)

func scenarioTable(t *testing.T) *dataset.Table {
	t.Helper()
	table, err := dataset.NewTable(
		[]string{"Name", "Score", "Cost"},
		[][]string{
			{"A", "80", "10"},
			{"B", "60", "5"},
			{"C", "90", "20"},
		},
	)
	require.NoError(t, err)
	return table
}

func scenarioRequest() AllocationRequest {
	return AllocationRequest{
		IDColumn: "Name",
		Criteria: []allocator.Criterion{
			{Name: "Score", Weight: 3, Kind: allocator.KindBenefit},
			{Name: "Cost", Weight: 2, Kind: allocator.KindCost},
		},
		Budget: 1_000_000,
		Mode:   allocator.ModeOptimal,
	}
}

// mockSheetsReader serves a fixed table or error
type mockSheetsReader struct {
	table *dataset.Table
	err   error

	spreadsheetID string
	sheetRange    string
}

func (m *mockSheetsReader) LoadTable(ctx context.Context, spreadsheetID, sheetRange string) (*dataset.Table, error) {
	m.spreadsheetID = spreadsheetID
	m.sheetRange = sheetRange
	return m.table, m.err
}

// mockPublisher records the calls made while publishing
type mockPublisher struct {
	createErr error
	appendErr error

	createdSpreadsheet string
	createdTitle       string
	appendedRange      string
	appended           [][]interface{}
}

func (m *mockPublisher) CreateSheet(ctx context.Context, spreadsheetID, sheetTitle string) (int64, error) {
	if m.createErr != nil {
		return 0, m.createErr
	}
	m.createdSpreadsheet = spreadsheetID
	m.createdTitle = sheetTitle
	return 7, nil
}

func (m *mockPublisher) AppendRows(ctx context.Context, spreadsheetID, sheetRange string, values [][]interface{}) error {
	if m.appendErr != nil {
		return m.appendErr
	}
	m.appendedRange = sheetRange
	m.appended = values
	return nil
}

var errUnavailable = errors.New("service unavailable")
