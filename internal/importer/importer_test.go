package importer

import (
	"bytes"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestParseCSV(t *testing.T) {
	input := "Stock,Name,Price\n" +
		"5, Soap ,2.50\n" +
		"x,Broken,1.00\n" +
		"3,,4.00\n" +
		"2,Free,0\n" +
		"7,Towel,12\n"

	result, err := ParseCSV(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, result.Rows, 2)
	assert.Equal(t, 3, result.Skipped)

	assert.Equal(t, "Soap", result.Rows[0].Name)
	assert.True(t, decimal.RequireFromString("2.50").Equal(result.Rows[0].Price))
	assert.Equal(t, 5, result.Rows[0].Stock)
	assert.Equal(t, "Towel", result.Rows[1].Name)
}

func TestParseCSVMissingHeader(t *testing.T) {
	_, err := ParseCSV(strings.NewReader("Name,Price\nSoap,1\n"))
	assert.ErrorIs(t, err, ErrInvalidHeader)
	assert.Contains(t, err.Error(), "Stock")
}

func TestParseCSVEmpty(t *testing.T) {
	_, err := ParseCSV(strings.NewReader(""))
	assert.ErrorIs(t, err, ErrEmptyFile)
}

func workbook(t *testing.T, rows [][]interface{}) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for i, row := range rows {
		addr, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, addr, &row))
	}

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf
}

func TestParseXLSX(t *testing.T) {
	buf := workbook(t, [][]interface{}{
		{"name", "PRICE", "Stock"},
		{"Rice", "3.75", "20"},
		{"Beans", "abc", "1"},
		{"Oil", "8", "0"},
	})

	result, err := ParseXLSX(buf)
	require.NoError(t, err)
	require.Len(t, result.Rows, 2)
	assert.Equal(t, 1, result.Skipped)
	assert.Equal(t, "Rice", result.Rows[0].Name)
	assert.Equal(t, 20, result.Rows[0].Stock)
	assert.Equal(t, "Oil", result.Rows[1].Name)
	assert.Equal(t, 0, result.Rows[1].Stock)
}

func TestParseXLSXWrongHeaderOrder(t *testing.T) {
	buf := workbook(t, [][]interface{}{
		{"Price", "Name", "Stock"},
		{"1", "Rice", "2"},
	})

	_, err := ParseXLSX(buf)
	assert.ErrorIs(t, err, ErrInvalidHeader)
}

func TestParseRejectsUnknownExtension(t *testing.T) {
	_, err := Parse(".txt", strings.NewReader("Name,Price,Stock\n"))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	result, err := Parse(".CSV", strings.NewReader("Name,Price,Stock\nTea,1,1\n"))
	require.NoError(t, err)
	assert.Len(t, result.Rows, 1)
}
