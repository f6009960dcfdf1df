package tabular

import (
	"math"
	"strconv"
	"strings"
)

// ParseIdentifier reads a nullable integer. Integral floats ("3.0") are accepted,
// anything else is reported as absent, never as zero.
func ParseIdentifier(raw string) (int64, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, false
	}

	if v, err := strconv.ParseInt(s, 10, 64); err == nil {
		return v, true
	}

	f, err := strconv.ParseFloat(strings.Replace(s, ",", ".", 1), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, false
	}
	if f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, false
	}
	return int64(f), true
}

// CoerceIdentifier rewrites a column into canonical integer text, unparseable cells become empty.
// A missing column leaves the table unchanged.
func CoerceIdentifier(t *Table, column string) *Table {
	out := t.Clone()
	i := out.Index(column)
	if i < 0 {
		return out
	}

	for _, row := range out.Rows {
		if v, ok := ParseIdentifier(row[i]); ok {
			row[i] = strconv.FormatInt(v, 10)
		} else {
			row[i] = ""
		}
	}
	return out
}
