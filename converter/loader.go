package converter

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ErrUnsupportedFormat is returned for files that are neither CSV nor an
// Excel workbook.
var ErrUnsupportedFormat = errors.New("unsupported file extension, please provide CSV or XLSX")

// LoadFile reads a Shopify export from path, dispatching on the file
// extension. The file must exist; unreadable or unsupported inputs fail
// with a descriptive error.
func LoadFile(path string) (*Table, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("input file not found: %s", path)
		}
		return nil, fmt.Errorf("failed to stat input file: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open CSV file: %w", err)
		}
		defer f.Close()
		return LoadCSV(f)
	case ".xlsx", ".xls":
		return LoadXLSX(path)
	default:
		return nil, ErrUnsupportedFormat
	}
}

// LoadCSV parses a delimited-text export. Shopify exports and Excel
// re-saves carry UTF-8 or UTF-16 byte-order markers, so the stream is
// decoded with a BOM override; quoting is lax because Shopify CSVs are
// occasionally malformed.
func LoadCSV(r io.Reader) (*Table, error) {
	decoder := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	reader := csv.NewReader(transform.NewReader(r, decoder))
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse CSV: %w", err)
	}
	return tableFromRecords(records)
}

// LoadXLSX parses the first sheet of an Excel workbook, first row as
// header.
func LoadXLSX(path string) (*Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		return nil, fmt.Errorf("no sheets found in Excel file")
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to get rows: %w", err)
	}
	return tableFromRecords(rows)
}

// tableFromRecords builds a table from raw records, first record as
// header.
func tableFromRecords(records [][]string) (*Table, error) {
	if len(records) == 0 {
		return nil, errors.New("input file is empty")
	}
	t := NewTable(records[0])
	for _, rec := range records[1:] {
		t.AppendRow(rec)
	}
	return t, nil
}
