// Package tabular loads loosely structured delimited stores into uniform string tables
// and owns the value-level parsing rules (identifiers, numeric text).
package tabular

import "strings"

// Table is an immutable-by-convention snapshot of one delimited store.
// Every row has exactly len(Columns) cells.
type Table struct {
	Name     string
	Columns  []string
	Rows     [][]string
	Missing  bool   // store did not exist
	Encoding string // encoding the content was decoded with
}

func Empty(name string) *Table {
	return &Table{Name: name}
}

func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Rows)
}

func (t *Table) IsEmpty() bool {
	return t == nil || (len(t.Columns) == 0 && len(t.Rows) == 0)
}

// Index returns the position of an exact column name or -1.
func (t *Table) Index(column string) int {
	if t == nil {
		return -1
	}
	for i, c := range t.Columns {
		if c == column {
			return i
		}
	}
	return -1
}

// Value returns the cell of a row; ok is false when the column is absent.
func (t *Table) Value(row int, column string) (string, bool) {
	i := t.Index(column)
	if i < 0 || row < 0 || row >= t.Len() {
		return "", false
	}
	return t.Rows[row][i], true
}

// Column returns a copy of all cells of a column, nil when the column is absent.
func (t *Table) Column(column string) []string {
	i := t.Index(column)
	if i < 0 {
		return nil
	}
	out := make([]string, len(t.Rows))
	for r, row := range t.Rows {
		out[r] = row[i]
	}
	return out
}

// Record returns a row keyed by column name.
func (t *Table) Record(row int) map[string]string {
	rec := make(map[string]string, len(t.Columns))
	for i, c := range t.Columns {
		rec[c] = t.Rows[row][i]
	}
	return rec
}

func (t *Table) Clone() *Table {
	if t == nil {
		return nil
	}
	out := *t
	out.Columns = append([]string(nil), t.Columns...)
	out.Rows = make([][]string, len(t.Rows))
	for i, row := range t.Rows {
		out.Rows[i] = append([]string(nil), row...)
	}
	return &out
}

func trimColumns(columns []string) []string {
	out := make([]string, len(columns))
	for i, c := range columns {
		out[i] = strings.TrimSpace(c)
	}
	return out
}
