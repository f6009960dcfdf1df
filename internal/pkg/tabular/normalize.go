package tabular

import "strings"

// FieldAliases maps one canonical column to the names it may appear under.
type FieldAliases struct {
	Canonical string
	Aliases   []string
}

// Schema is an ordered alias table for one entity.
type Schema []FieldAliases

// Canonical lists the canonical column names in schema order.
func (s Schema) Canonical() []string {
	out := make([]string, len(s))
	for i, f := range s {
		out[i] = f.Canonical
	}
	return out
}

// NormalizeColumns renames, for each canonical field, the first matching column to the canonical name.
// A column already named like the canonical field wins over aliases; a column is renamed at most once.
// Fields without a matching column stay absent.
func NormalizeColumns(t *Table, schema Schema) *Table {
	out := t.Clone()
	if out == nil || len(out.Columns) == 0 {
		return out
	}

	claimed := make([]bool, len(out.Columns))
	for _, field := range schema {
		idx := matchColumn(out.Columns, claimed, []string{field.Canonical})
		if idx < 0 {
			idx = matchColumn(out.Columns, claimed, field.Aliases)
		}
		if idx < 0 {
			continue
		}
		out.Columns[idx] = field.Canonical
		claimed[idx] = true
	}

	return out
}

func matchColumn(columns []string, claimed []bool, candidates []string) int {
	for i, col := range columns {
		if claimed[i] {
			continue
		}
		name := strings.ToLower(strings.TrimSpace(col))
		for _, cand := range candidates {
			if name == strings.ToLower(strings.TrimSpace(cand)) {
				return i
			}
		}
	}
	return -1
}
