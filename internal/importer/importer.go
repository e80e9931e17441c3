// Package importer reads product rows from uploaded CSV and XLSX files.
package importer

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	HeaderName  = "Name"
	HeaderPrice = "Price"
	HeaderStock = "Stock"
)

var expectedHeaders = []string{HeaderName, HeaderPrice, HeaderStock}

var (
	ErrUnsupportedFormat = errors.New("unsupported file format, upload a CSV or Excel (.xlsx) file")
	ErrInvalidHeader     = errors.New("invalid header")
	ErrEmptyFile         = errors.New("file has no header row")
)

// Row is one parsed product line.
type Row struct {
	Name  string
	Price decimal.Decimal
	Stock int
}

// Result holds the rows that parsed and the number of rows skipped.
type Result struct {
	Rows    []Row
	Skipped int
}

// Parse dispatches on the file extension (".csv" or ".xlsx", any case).
func Parse(ext string, r io.Reader) (*Result, error) {
	switch strings.ToLower(ext) {
	case ".csv":
		return ParseCSV(r)
	case ".xlsx":
		return ParseXLSX(r)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

// parseRow returns false for rows with a blank name, an unparsable price or
// stock, a non-positive price, or a negative stock.
func parseRow(name, price, stock string) (Row, bool) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Row{}, false
	}

	p, err := decimal.NewFromString(strings.TrimSpace(price))
	if err != nil || !p.IsPositive() {
		return Row{}, false
	}

	s, err := strconv.Atoi(strings.TrimSpace(stock))
	if err != nil || s < 0 {
		return Row{}, false
	}

	return Row{Name: name, Price: p, Stock: s}, true
}

func (res *Result) add(name, price, stock string) {
	row, ok := parseRow(name, price, stock)
	if !ok {
		res.Skipped++
		return
	}
	res.Rows = append(res.Rows, row)
}

func cell(record []string, i int) string {
	if i < 0 || i >= len(record) {
		return ""
	}
	return record[i]
}
