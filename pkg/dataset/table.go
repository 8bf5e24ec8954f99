package dataset

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/jakechorley/scholarship-allocator/pkg/core/allocator"
)

// ColumnType is the detected type of a column
type ColumnType string

const (
	ColumnNumeric ColumnType = "numeric"
	ColumnText    ColumnType = "text"
)

// Table is raw tabular data as read from a spreadsheet or CSV file.
// Cells are kept as trimmed strings until Candidates applies the schema check
type Table struct {
	Headers []string
	Rows    [][]string

	// lines holds the source line of each row when blank rows were dropped
	lines []int
}

// NewTable builds a table from a header row and data rows.
// Headers are trimmed and must be non-empty and unique. Rows are padded or truncated to
// the header width and fully blank rows are dropped
func NewTable(headers []string, rows [][]string) (*Table, error) {
	if len(headers) == 0 {
		return nil, fmt.Errorf("no header row found")
	}

	table := &Table{Headers: make([]string, len(headers))}
	seen := make(map[string]bool, len(headers))
	for i, header := range headers {
		name := strings.TrimSpace(header)
		if name == "" {
			return nil, fmt.Errorf("column %d has an empty header", i+1)
		}
		if seen[name] {
			return nil, fmt.Errorf("duplicate column header %q", name)
		}
		seen[name] = true
		table.Headers[i] = name
	}

	for rowIdx, raw := range rows {
		row := make([]string, len(headers))
		blank := true
		for i := range row {
			if i < len(raw) {
				row[i] = strings.TrimSpace(raw[i])
			}
			if row[i] != "" {
				blank = false
			}
		}
		if blank {
			continue
		}
		table.Rows = append(table.Rows, row)
		table.lines = append(table.lines, rowIdx+2)
	}

	return table, nil
}

// Len returns the number of data rows
func (t *Table) Len() int {
	return len(t.Rows)
}

// ColumnIndex returns the position of the named column, or -1 when it does not exist
func (t *Table) ColumnIndex(name string) int {
	for i, header := range t.Headers {
		if header == name {
			return i
		}
	}
	return -1
}

// ColumnTypes detects the type of every column. A column is numeric when every
// non-empty cell parses as a number, text otherwise. Empty columns count as numeric
func (t *Table) ColumnTypes() map[string]ColumnType {
	types := make(map[string]ColumnType, len(t.Headers))
	for colIdx, header := range t.Headers {
		types[header] = ColumnNumeric
		for _, row := range t.Rows {
			if row[colIdx] == "" {
				continue
			}
			if _, err := parseNumber(row[colIdx]); err != nil {
				types[header] = ColumnText
				break
			}
		}
	}
	return types
}

// TextColumns returns the text columns in header order. These are the candidates for
// the identifier column; when there are none every column is returned
func (t *Table) TextColumns() []string {
	types := t.ColumnTypes()

	var columns []string
	for _, header := range t.Headers {
		if types[header] == ColumnText {
			columns = append(columns, header)
		}
	}

	if len(columns) == 0 {
		return append([]string(nil), t.Headers...)
	}
	return columns
}

// NumericColumns returns the numeric columns in header order, excluding exclude
func (t *Table) NumericColumns(exclude string) []string {
	types := t.ColumnTypes()

	var columns []string
	for _, header := range t.Headers {
		if header != exclude && types[header] == ColumnNumeric {
			columns = append(columns, header)
		}
	}
	return columns
}

// Candidates applies the schema check and returns the typed candidate table.
//
// The identifier column must exist and be non-blank for every row. Every criterion
// column must exist, differ from the identifier column and hold a strictly positive
// number in every row. Errors wrap allocator.ErrInvalidData and name the offending
// spreadsheet row (the header is row 1)
func (t *Table) Candidates(idColumn string, criteria []string) (allocator.CandidateTable, error) {
	idIdx := t.ColumnIndex(idColumn)
	if idIdx < 0 {
		return allocator.CandidateTable{}, fmt.Errorf("%w: identifier column %q not found", allocator.ErrInvalidData, idColumn)
	}

	criterionIdx := make(map[string]int, len(criteria))
	for _, name := range criteria {
		if name == idColumn {
			return allocator.CandidateTable{}, fmt.Errorf("%w: column %q cannot be both identifier and criterion",
				allocator.ErrInvalidData, name)
		}
		idx := t.ColumnIndex(name)
		if idx < 0 {
			return allocator.CandidateTable{}, fmt.Errorf("%w: criterion column %q not found", allocator.ErrInvalidData, name)
		}
		criterionIdx[name] = idx
	}

	if len(t.Rows) == 0 {
		return allocator.CandidateTable{}, fmt.Errorf("%w: table has no data rows", allocator.ErrInvalidData)
	}

	table := allocator.CandidateTable{
		IDColumn:   idColumn,
		Candidates: make([]allocator.Candidate, 0, len(t.Rows)),
	}

	for rowIdx, row := range t.Rows {
		line := t.line(rowIdx)

		id := row[idIdx]
		if id == "" {
			return allocator.CandidateTable{}, fmt.Errorf("%w: row %d: missing %s", allocator.ErrInvalidData, line, idColumn)
		}

		values := make(map[string]float64, len(criteria))
		for _, name := range criteria {
			cell := row[criterionIdx[name]]
			if cell == "" {
				return allocator.CandidateTable{}, fmt.Errorf("%w: row %d: missing value for %s",
					allocator.ErrInvalidData, line, name)
			}
			value, err := parseNumber(cell)
			if err != nil {
				return allocator.CandidateTable{}, fmt.Errorf("%w: row %d: %s value %q is not a number",
					allocator.ErrInvalidData, line, name, cell)
			}
			if value <= 0 {
				return allocator.CandidateTable{}, fmt.Errorf("%w: row %d: %s value %v must be greater than zero",
					allocator.ErrInvalidData, line, name, value)
			}
			values[name] = value
		}

		table.Candidates = append(table.Candidates, allocator.Candidate{ID: id, Values: values})
	}

	return table, nil
}

// line returns the spreadsheet line of a data row, counting the header as line 1
func (t *Table) line(rowIdx int) int {
	if rowIdx < len(t.lines) {
		return t.lines[rowIdx]
	}
	return rowIdx + 2
}

// parseNumber parses a finite float, rejecting NaN and infinities
func parseNumber(s string) (float64, error) {
	value, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, fmt.Errorf("non-finite number %q", s)
	}
	return value, nil
}
