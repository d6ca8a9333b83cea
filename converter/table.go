package converter

// Table is an in-memory tabular dataset: an ordered header row plus string
// cells addressable by column name. Missing columns read as blank, which
// lets the converter treat optional Shopify columns uniformly.
type Table struct {
	headers []string
	index   map[string]int
	rows    [][]string
}

// NewTable creates an empty table with the given header row.
func NewTable(headers []string) *Table {
	index := make(map[string]int, len(headers))
	for i, h := range headers {
		// first occurrence wins for duplicated headers
		if _, ok := index[h]; !ok {
			index[h] = i
		}
	}
	return &Table{
		headers: headers,
		index:   index,
	}
}

// Headers returns the header row in column order.
func (t *Table) Headers() []string {
	return t.headers
}

// HasColumn reports whether a column with the exact name exists.
func (t *Table) HasColumn(name string) bool {
	_, ok := t.index[name]
	return ok
}

// RowCount returns the number of data rows.
func (t *Table) RowCount() int {
	return len(t.rows)
}

// AppendRow adds a data row, padding short records so every row spans the
// full header width (Excel and lazy CSV writers drop trailing empty cells).
func (t *Table) AppendRow(cells []string) {
	if len(cells) < len(t.headers) {
		padded := make([]string, len(t.headers))
		copy(padded, cells)
		cells = padded
	} else if len(cells) > len(t.headers) {
		cells = cells[:len(t.headers)]
	}
	t.rows = append(t.rows, cells)
}

// Row returns the cells of row i in column order.
func (t *Table) Row(i int) []string {
	return t.rows[i]
}

// Cell returns the value at row i in the named column, or "" when the
// column does not exist.
func (t *Table) Cell(i int, column string) string {
	idx, ok := t.index[column]
	if !ok {
		return ""
	}
	return t.rows[i][idx]
}

// SetCell overwrites the value at row i in the named column. Unknown
// columns are ignored.
func (t *Table) SetCell(i int, column, value string) {
	idx, ok := t.index[column]
	if !ok {
		return
	}
	t.rows[i][idx] = value
}
