package services

import (
	"context"
	"fmt"

	"github.com/jakechorley/scholarship-allocator/pkg/dataset"
)

// CandidateSource supplies the raw candidate table for a run
type CandidateSource interface {
	LoadTable(ctx context.Context) (*dataset.Table, error)
}

// FileSource reads candidates from a local .csv or .xlsx file
type FileSource struct {
	Path string
	// Sheet selects the worksheet of an .xlsx file; the first sheet when empty
	Sheet string
}

// LoadTable implements CandidateSource
func (s FileSource) LoadTable(ctx context.Context) (*dataset.Table, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return dataset.LoadFile(s.Path, s.Sheet)
}

func (s FileSource) String() string {
	return s.Path
}

// SheetsReader reads a table from a Google Sheets range
type SheetsReader interface {
	LoadTable(ctx context.Context, spreadsheetID, sheetRange string) (*dataset.Table, error)
}

// SheetSource reads candidates from a Google Sheets range
type SheetSource struct {
	Reader        SheetsReader
	SpreadsheetID string
	Range         string
}

// LoadTable implements CandidateSource
func (s SheetSource) LoadTable(ctx context.Context) (*dataset.Table, error) {
	return s.Reader.LoadTable(ctx, s.SpreadsheetID, s.Range)
}

func (s SheetSource) String() string {
	return fmt.Sprintf("sheet %s (%s)", s.SpreadsheetID, s.Range)
}

// TableSource serves a table that is already in memory
type TableSource struct {
	Table *dataset.Table
}

// LoadTable implements CandidateSource
func (s TableSource) LoadTable(ctx context.Context) (*dataset.Table, error) {
	if s.Table == nil {
		return nil, fmt.Errorf("no table loaded")
	}
	return s.Table, nil
}
