package importer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ParseCSV reads a CSV whose header row contains Name, Price and Stock in
// any order. Extra columns are ignored.
func ParseCSV(r io.Reader) (*Result, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyFile
		}
		return nil, fmt.Errorf("failed to read csv header: %w", err)
	}

	columns := make(map[string]int, len(header))
	for i, h := range header {
		h = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
		if _, ok := columns[h]; !ok {
			columns[h] = i
		}
	}
	for _, h := range expectedHeaders {
		if _, ok := columns[h]; !ok {
			return nil, fmt.Errorf("%w: '%s' is missing in CSV", ErrInvalidHeader, h)
		}
	}

	result := &Result{}
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read csv row: %w", err)
		}
		result.add(
			cell(record, columns[HeaderName]),
			cell(record, columns[HeaderPrice]),
			cell(record, columns[HeaderStock]),
		)
	}

	return result, nil
}
