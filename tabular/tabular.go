// Package tabular holds the small row/column model shared by the CSV
// and XLSX import/export surfaces. Column names are matched exactly
// (case-sensitive); a missing column reads as the empty string.
package tabular

// Table is an in-memory spreadsheet: one header row plus data rows.
type Table struct {
	Headers []string
	Rows    [][]string

	headerIndex map[string]int
}

// NewTable creates an empty table with the given column set.
func NewTable(headers []string) *Table {
	t := &Table{Headers: headers}
	t.buildIndex()
	return t
}

func (t *Table) buildIndex() {
	t.headerIndex = make(map[string]int, len(t.Headers))
	for i, h := range t.Headers {
		// first occurrence wins on duplicate headers
		if _, exists := t.headerIndex[h]; !exists {
			t.headerIndex[h] = i
		}
	}
}

// Append adds one data row. Short rows are fine; Get pads them.
func (t *Table) Append(row []string) {
	t.Rows = append(t.Rows, row)
}

// Get returns the value at (rowIdx, column), or "" when the column is
// absent from the header or the row is too short.
func (t *Table) Get(rowIdx int, column string) string {
	if t.headerIndex == nil {
		t.buildIndex()
	}
	col, ok := t.headerIndex[column]
	if !ok || rowIdx < 0 || rowIdx >= len(t.Rows) {
		return ""
	}
	row := t.Rows[rowIdx]
	if col >= len(row) {
		return ""
	}
	return row[col]
}

// HasColumn reports whether the header contains the named column.
func (t *Table) HasColumn(column string) bool {
	if t.headerIndex == nil {
		t.buildIndex()
	}
	_, ok := t.headerIndex[column]
	return ok
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	return len(t.Rows)
}
