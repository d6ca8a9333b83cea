package converter

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestWriteCSV(t *testing.T) {
	table := buildTable([]string{"Handle", "Title"},
		[]string{"mug", "Kupa, büyük"},
	)

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, table))

	// BOM first, so Excel detects UTF-8
	data := buf.Bytes()
	require.True(t, bytes.HasPrefix(data, []byte{0xEF, 0xBB, 0xBF}))

	records, err := csv.NewReader(bytes.NewReader(data[3:])).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, []string{"Handle", "Title"}, records[0])
	assert.Equal(t, []string{"mug", "Kupa, büyük"}, records[1])
}

func TestWriteXLSXBuffer(t *testing.T) {
	table := buildTable(append([]string(nil), IkasColumns...))
	r := make([]string, len(IkasColumns))
	r[2] = "Tişört" // İsim
	table.AppendRow(r)

	data, err := WriteXLSXBuffer(table)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, OutputSheetName, f.GetSheetName(0))

	rows, err := f.GetRows(OutputSheetName)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, IkasColumns, rows[0])
	assert.Equal(t, "Tişört", rows[1][2])
}
