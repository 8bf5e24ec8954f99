package sheetsclient

import (
	"context"
	"fmt"

	"github.com/jakechorley/scholarship-allocator/pkg/dataset"
)

// LoadTable reads a candidate table from a sheet range whose first row is the header row
func (c *Client) LoadTable(ctx context.Context, spreadsheetID, sheetRange string) (*dataset.Table, error) {
	values, err := c.GetValues(ctx, spreadsheetID, sheetRange)
	if err != nil {
		return nil, err
	}

	table, err := dataset.FromValues(values)
	if err != nil {
		return nil, fmt.Errorf("failed to parse candidates from %s: %w", sheetRange, err)
	}

	return table, nil
}
