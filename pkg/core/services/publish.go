package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/jakechorley/scholarship-allocator/internal/config"
)

// SheetPublisher writes rows to a spreadsheet
type SheetPublisher interface {
	CreateSheet(ctx context.Context, spreadsheetID, sheetTitle string) (int64, error)
	AppendRows(ctx context.Context, spreadsheetID, sheetRange string, values [][]interface{}) error
}

// PublishResult describes where an allocation was published
type PublishResult struct {
	SpreadsheetID string
	SheetTitle    string
	SheetID       int64
	Rows          int
}

// PublishAllocation writes the allocation to a new tab named after the run
func PublishAllocation(ctx context.Context, publisher SheetPublisher, cfg *config.Config, logger *zap.Logger, result *AllocationResult) (*PublishResult, error) {
	if cfg.Sheet == nil {
		return nil, fmt.Errorf("no sheet configured for publishing")
	}
	if result == nil || result.Allocation == nil {
		return nil, fmt.Errorf("no allocation to publish")
	}

	spreadsheetID := cfg.Sheet.ResultsSpreadsheet()
	title := SheetTitle(result)

	logger.Debug("Creating results tab", zap.String("spreadsheet_id", spreadsheetID), zap.String("title", title))
	sheetID, err := publisher.CreateSheet(ctx, spreadsheetID, title)
	if err != nil {
		return nil, fmt.Errorf("failed to create results tab: %w", err)
	}

	rows := allocationRows(result)
	if err := publisher.AppendRows(ctx, spreadsheetID, fmt.Sprintf("'%s'!A1", title), rows); err != nil {
		return nil, fmt.Errorf("failed to write results: %w", err)
	}

	logger.Info("Allocation published",
		zap.String("run_id", result.RunID),
		zap.String("spreadsheet_id", spreadsheetID),
		zap.String("title", title),
		zap.Int("rows", len(rows)-1))

	return &PublishResult{
		SpreadsheetID: spreadsheetID,
		SheetTitle:    title,
		SheetID:       sheetID,
		Rows:          len(rows) - 1,
	}, nil
}

// SheetTitle names the results tab, e.g. "Allocation 2025-03-01 09:30 1a2b3c4d"
func SheetTitle(result *AllocationResult) string {
	runID := result.RunID
	if len(runID) > 8 {
		runID = runID[:8]
	}
	return fmt.Sprintf("Allocation %s %s", result.GeneratedAt.Format("2006-01-02 15:04"), runID)
}

// allocationRows returns the header and one row per funded candidate
func allocationRows(result *AllocationResult) [][]interface{} {
	idHeader := result.Allocation.IDColumn
	if idHeader == "" {
		idHeader = "ID"
	}

	rows := make([][]interface{}, 0, result.Allocation.Len()+1)
	rows = append(rows, []interface{}{idHeader, "Rank", "Normalized score", "Allocation"})
	for _, row := range result.Allocation.Rows {
		rows = append(rows, []interface{}{row.ID, row.Rank, row.NormalizedScore, row.Amount})
	}
	return rows
}
