package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jakechorley/scholarship-allocator/internal/config"
)

func computedResult(t *testing.T) *AllocationResult {
	t.Helper()
	result, err := ComputeAllocation(context.Background(), TableSource{Table: scenarioTable(t)}, zap.NewNop(), scenarioRequest())
	require.NoError(t, err)
	result.RunID = "1a2b3c4d-0000-4000-8000-000000000000"
	result.GeneratedAt = time.Date(2025, 3, 1, 9, 30, 0, 0, time.UTC)
	return result
}

func TestPublishAllocation(t *testing.T) {
	publisher := &mockPublisher{}
	cfg := &config.Config{Sheet: &config.SheetConfig{SpreadsheetID: "source", Range: "A1:C", ResultsSpreadsheetID: "results"}}

	published, err := PublishAllocation(context.Background(), publisher, cfg, zap.NewNop(), computedResult(t))
	require.NoError(t, err)

	assert.Equal(t, "results", published.SpreadsheetID)
	assert.Equal(t, "Allocation 2025-03-01 09:30 1a2b3c4d", published.SheetTitle)
	assert.Equal(t, int64(7), published.SheetID)
	assert.Equal(t, 2, published.Rows)

	assert.Equal(t, "results", publisher.createdSpreadsheet)
	assert.Equal(t, "'Allocation 2025-03-01 09:30 1a2b3c4d'!A1", publisher.appendedRange)

	require.Len(t, publisher.appended, 3)
	assert.Equal(t, []interface{}{"Name", "Rank", "Normalized score", "Allocation"}, publisher.appended[0])
	assert.Equal(t, "B", publisher.appended[1][0])
	assert.Equal(t, 1, publisher.appended[1][1])
	assert.Equal(t, int64(526139), publisher.appended[1][3])
	assert.Equal(t, "A", publisher.appended[2][0])
}

func TestPublishAllocation_DefaultsToSourceSpreadsheet(t *testing.T) {
	publisher := &mockPublisher{}
	cfg := &config.Config{Sheet: &config.SheetConfig{SpreadsheetID: "source", Range: "A1:C"}}

	published, err := PublishAllocation(context.Background(), publisher, cfg, zap.NewNop(), computedResult(t))
	require.NoError(t, err)
	assert.Equal(t, "source", published.SpreadsheetID)
}

func TestPublishAllocation_Errors(t *testing.T) {
	ctx := context.Background()
	cfg := &config.Config{Sheet: &config.SheetConfig{SpreadsheetID: "source", Range: "A1:C"}}

	_, err := PublishAllocation(ctx, &mockPublisher{}, &config.Config{}, zap.NewNop(), computedResult(t))
	assert.ErrorContains(t, err, "no sheet configured")

	_, err = PublishAllocation(ctx, &mockPublisher{}, cfg, zap.NewNop(), nil)
	assert.ErrorContains(t, err, "no allocation to publish")

	_, err = PublishAllocation(ctx, &mockPublisher{createErr: errUnavailable}, cfg, zap.NewNop(), computedResult(t))
	assert.ErrorIs(t, err, errUnavailable)
	assert.ErrorContains(t, err, "failed to create results tab")

	_, err = PublishAllocation(ctx, &mockPublisher{appendErr: errUnavailable}, cfg, zap.NewNop(), computedResult(t))
	assert.ErrorIs(t, err, errUnavailable)
	assert.ErrorContains(t, err, "failed to write results")
}

func TestSheetTitle_ShortRunID(t *testing.T) {
	result := &AllocationResult{RunID: "abc", GeneratedAt: time.Date(2025, 1, 2, 3, 4, 0, 0, time.UTC)}
	assert.True(t, strings.HasSuffix(SheetTitle(result), " abc"))
}
