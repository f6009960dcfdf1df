package tabular

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestParseIdentifier(t *testing.T) {
	tests := []struct {
		in   string
		want int64
		ok   bool
	}{
		{in: "3", want: 3, ok: true},
		{in: " 12 ", want: 12, ok: true},
		{in: "3.0", want: 3, ok: true},
		{in: "-4", want: -4, ok: true},
		{in: "3.5"},
		{in: "abc"},
		{in: ""},
		{in: "NaN"},
	}

	for _, tt := range tests {
		got, ok := ParseIdentifier(tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestCoerceIdentifier(t *testing.T) {
	in := &Table{
		Columns: []string{"sample_id", "product_id"},
		Rows: [][]string{
			{"1", "2.0"},
			{"x", "3"},
			{" 5 ", ""},
		},
	}

	got := CoerceIdentifier(in, "product_id")
	want := [][]string{
		{"1", "2"},
		{"x", "3"},
		{" 5 ", ""},
	}
	if diff := cmp.Diff(want, got.Rows); diff != "" {
		t.Errorf("CoerceIdentifier() mismatch (-want +got):\n%s", diff)
	}

	// input is not mutated
	assert.Equal(t, "2.0", in.Rows[0][1])

	again := CoerceIdentifier(got, "product_id")
	assert.Empty(t, cmp.Diff(got.Rows, again.Rows))

	missing := CoerceIdentifier(in, "nope")
	assert.Empty(t, cmp.Diff(in.Rows, missing.Rows))
}
