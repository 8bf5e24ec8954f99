package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/jakechorley/scholarship-allocator/pkg/core/allocator"
)

const (
	// SheetName is the worksheet written by WriteXLSX
	SheetName = "Allocation"

	// AmountHeader is the header of the allocation amount column
	AmountHeader = "Allocation"
)

// WriteXLSX writes the identifier and integer allocation of every row as a workbook
func WriteXLSX(w io.Writer, table *allocator.AllocationTable) error {
	workbook := excelize.NewFile()
	defer workbook.Close()

	if err := workbook.SetSheetName("Sheet1", SheetName); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	if err := workbook.SetSheetRow(SheetName, "A1", &[]interface{}{idHeader(table), AmountHeader}); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for i, row := range table.Rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("failed to resolve cell for row %d: %w", i+1, err)
		}
		if err := workbook.SetSheetRow(SheetName, cell, &[]interface{}{row.ID, row.Amount}); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+1, err)
		}
	}

	if _, err := workbook.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

// WriteCSV writes the identifier and integer allocation of every row as CSV
func WriteCSV(w io.Writer, table *allocator.AllocationTable) error {
	writer := csv.NewWriter(w)

	if err := writer.Write([]string{idHeader(table), AmountHeader}); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, row := range table.Rows {
		if err := writer.Write([]string{row.ID, strconv.FormatInt(row.Amount, 10)}); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush csv: %w", err)
	}
	return nil
}

// SaveFile writes the allocation to path, choosing the format from the extension:
// .xlsx and .csv hold the allocation table, .json holds the full run summary
func SaveFile(path string, summary Summary, table *allocator.AllocationTable) error {
	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".xlsx" && ext != ".csv" && ext != ".json" {
		return fmt.Errorf("unsupported export format %q (expected .xlsx, .csv or .json)", filepath.Ext(path))
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("unable to create %s: %w", path, err)
	}
	defer file.Close()

	switch ext {
	case ".xlsx":
		err = WriteXLSX(file, table)
	case ".csv":
		err = WriteCSV(file, table)
	case ".json":
		err = WriteSummaryJSON(file, summary)
	}
	if err != nil {
		return err
	}

	return file.Close()
}

func idHeader(table *allocator.AllocationTable) string {
	if table.IDColumn == "" {
		return "ID"
	}
	return table.IDColumn
}
