package tabular

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseNumeric(t *testing.T) {
	tests := []struct {
		name string
		in   interface{}
		want float64
		ok   bool
	}{
		{name: "decimal comma", in: "1,5", want: 1.5, ok: true},
		{name: "thousands space", in: "12 300", want: 12300, ok: true},
		{name: "nbsp thousands", in: "12 300", want: 12300, ok: true},
		{name: "power of ten", in: "1.2×10^6", want: 1.2e6, ok: true},
		{name: "latin x power", in: "3x10^-2", want: 0.03, ok: true},
		{name: "superscript exponent", in: "2,5×10⁵", want: 2.5e5, ok: true},
		{name: "times ten", in: "2×10", want: 20, ok: true},
		{name: "plus minus", in: "5.0±0.2", want: 5, ok: true},
		{name: "with unit", in: "3.2 %", want: 3.2, ok: true},
		{name: "negative", in: "-1,25", want: -1.25, ok: true},
		{name: "unit suffix", in: "12 ед", want: 12, ok: true},
		{name: "int", in: 42, want: 42, ok: true},
		{name: "int64", in: int64(7), want: 7, ok: true},
		{name: "float", in: 0.5, want: 0.5, ok: true},
		{name: "text", in: "abc", ok: false},
		{name: "blank", in: "   ", ok: false},
		{name: "empty", in: "", ok: false},
		{name: "nil", in: nil, ok: false},
		{name: "not detected ru", in: "Не обнаружено", ok: false},
		{name: "not detected en", in: "not detected in 25 g", ok: false},
		{name: "nan", in: math.NaN(), ok: false},
		{name: "inf", in: math.Inf(1), ok: false},
		{name: "inf text", in: "1e999", ok: false},
		{name: "dangling exponent", in: "12e", ok: false},
		{name: "double exponent", in: "1e5e3", ok: false},
		{name: "word after number", in: "3 eggs", ok: false},
		{name: "trailing sign", in: "3-", ok: false},
		{name: "exponent with unit", in: "1.5e3 КОЕ/г", want: 1500, ok: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseNumeric(tt.in)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.InDelta(t, tt.want, got, 1e-9)
			}
		})
	}
}

func TestParseDate(t *testing.T) {
	for _, in := range []string{"2024-03-01", "01.03.2024", "2024-03-01T10:00:00Z", "2024-03-01 10:00:00"} {
		got, ok := ParseDate(in)
		assert.True(t, ok, in)
		assert.Equal(t, 2024, got.Year(), in)
		assert.Equal(t, 1, got.Day(), in)
	}

	_, ok := ParseDate("вчера")
	assert.False(t, ok)
}
