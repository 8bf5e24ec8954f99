package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// LoadFile reads a candidate table from a .csv or .xlsx file.
// sheet selects the worksheet of an .xlsx file; the first sheet is used when empty
func LoadFile(path, sheet string) (*Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("unable to open %s: %w", path, err)
	}
	defer file.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return ReadCSV(file)
	case ".xlsx":
		return ReadXLSX(file, sheet)
	default:
		return nil, fmt.Errorf("unsupported file type %q (expected .csv or .xlsx)", filepath.Ext(path))
	}
}

// ReadCSV reads a table whose first record is the header row
func ReadCSV(r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("no header row found")
	}
	if err != nil {
		return nil, fmt.Errorf("unable to read header: %w", err)
	}

	var rows [][]string
	line := 1
	for {
		line++
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		rows = append(rows, record)
	}

	return NewTable(trimBOM(header), rows)
}

// ReadXLSX reads a worksheet whose first row is the header row. Raw cell values are
// used so number formats such as thousands separators do not affect parsing
func ReadXLSX(r io.Reader, sheet string) (*Table, error) {
	workbook, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("unable to open workbook: %w", err)
	}
	defer workbook.Close()

	if sheet == "" {
		sheets := workbook.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("workbook has no sheets")
		}
		sheet = sheets[0]
	}

	records, err := workbook.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("unable to read sheet %q: %w", sheet, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("sheet %q is empty", sheet)
	}

	return NewTable(records[0], records[1:])
}

// FromValues builds a table from a values range as returned by the Google Sheets API,
// where the first row is the header row
func FromValues(values [][]interface{}) (*Table, error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("no header row found")
	}

	records := make([][]string, len(values))
	for i, row := range values {
		records[i] = make([]string, len(row))
		for j, cell := range row {
			if cell != nil {
				records[i][j] = fmt.Sprint(cell)
			}
		}
	}

	return NewTable(records[0], records[1:])
}

// trimBOM strips a UTF-8 byte order mark from the first header, as written by spreadsheet exports
func trimBOM(header []string) []string {
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}
	return header
}
