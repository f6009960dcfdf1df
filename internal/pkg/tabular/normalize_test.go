package tabular

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

var sampleSchema = Schema{
	{Canonical: "sample_id", Aliases: []string{"sample_id", "id"}},
	{Canonical: "product_id", Aliases: []string{"product_id", "product"}},
	{Canonical: "date_received", Aliases: []string{"date_received", "date"}},
}

func TestNormalizeColumns(t *testing.T) {
	tests := []struct {
		name    string
		columns []string
		want    []string
	}{
		{
			name:    "alias and casing",
			columns: []string{"ID", "Product", "Date"},
			want:    []string{"sample_id", "product_id", "date_received"},
		},
		{
			name:    "canonical preferred over alias",
			columns: []string{"id", "Sample_ID", "product"},
			want:    []string{"id", "sample_id", "product_id"},
		},
		{
			name:    "unmatched stays",
			columns: []string{"notes", "product"},
			want:    []string{"notes", "product_id"},
		},
		{
			name:    "first match wins",
			columns: []string{"date", "DATE"},
			want:    []string{"date_received", "DATE"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := &Table{Columns: tt.columns}
			got := NormalizeColumns(in, sampleSchema)
			if diff := cmp.Diff(tt.want, got.Columns); diff != "" {
				t.Errorf("NormalizeColumns() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestNormalizeColumnsEmpty(t *testing.T) {
	got := NormalizeColumns(Empty("x"), sampleSchema)
	assert.True(t, got.IsEmpty())
	assert.Nil(t, NormalizeColumns(nil, sampleSchema))
}
