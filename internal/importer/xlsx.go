package importer

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ParseXLSX reads the first sheet of a workbook. Its first three header
// cells must be Name, Price and Stock in that order, compared case
// insensitively.
func ParseXLSX(r io.Reader) (*Result, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrEmptyFile
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, ErrEmptyFile
	}

	for i, expected := range expectedHeaders {
		actual := strings.TrimSpace(cell(rows[0], i))
		if !strings.EqualFold(actual, expected) {
			return nil, fmt.Errorf("%w '%s', expected '%s'", ErrInvalidHeader, actual, expected)
		}
	}

	result := &Result{}
	for _, row := range rows[1:] {
		result.add(cell(row, 0), cell(row, 1), cell(row, 2))
	}

	return result, nil
}
