package converter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// OutputSheetName is the sheet the converted table is written to.
const OutputSheetName = "ikas_products"

// utf8BOM is prepended to CSV output so spreadsheet tools detect the
// encoding (the ikas importer accepts both forms).
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// WriteCSV serializes the table as UTF-8 delimited text with a byte-order
// marker.
func WriteCSV(w io.Writer, t *Table) error {
	if _, err := w.Write(utf8BOM); err != nil {
		return fmt.Errorf("failed to write BOM: %w", err)
	}

	writer := csv.NewWriter(w)
	if err := writer.Write(t.Headers()); err != nil {
		return fmt.Errorf("failed to write headers: %w", err)
	}
	for i := 0; i < t.RowCount(); i++ {
		if err := writer.Write(t.Row(i)); err != nil {
			return fmt.Errorf("failed to write record: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// WriteXLSX builds an Excel workbook holding the table on a single styled
// sheet. The caller owns the returned file and must Close it.
func WriteXLSX(t *Table) (*excelize.File, error) {
	f := excelize.NewFile()

	if _, err := f.NewSheet(OutputSheetName); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	for i, header := range t.Headers() {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(OutputSheetName, cell, header)
		f.SetCellStyle(OutputSheetName, cell, cell, headerStyle)
	}

	for rowIdx := 0; rowIdx < t.RowCount(); rowIdx++ {
		for colIdx, value := range t.Row(rowIdx) {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			f.SetCellValue(OutputSheetName, cell, value)
		}
	}

	for i := range t.Headers() {
		col, _ := excelize.ColumnNumberToName(i + 1)
		f.SetColWidth(OutputSheetName, col, col, 18)
	}

	f.DeleteSheet("Sheet1")
	if index, err := f.GetSheetIndex(OutputSheetName); err == nil {
		f.SetActiveSheet(index)
	}

	return f, nil
}

// WriteXLSXBuffer serializes the table to Excel workbook bytes.
func WriteXLSXBuffer(t *Table) ([]byte, error) {
	f, err := WriteXLSX(t)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var buf *bytes.Buffer
	buf, err = f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to save Excel file: %w", err)
	}
	return buf.Bytes(), nil
}
