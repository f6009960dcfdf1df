package tabular

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"
)

// notDetectedMarkers are matched case-insensitively anywhere in the value.
var notDetectedMarkers = []string{"не обнаруж", "not detected"}

var superscripts = strings.NewReplacer(
	"⁰", "0", "¹", "1", "²", "2", "³", "3", "⁴", "4",
	"⁵", "5", "⁶", "6", "⁷", "7", "⁸", "8", "⁹", "9",
	"⁻", "-", "⁺", "+",
)

// multiplication idioms in the order they are rewritten
var powerIdioms = []string{"×10^", "x10^", "·10^"}
var tenIdioms = []string{"×10", "x10", "·10"}

// ParseNumeric converts a measurement value into a finite float.
// ok is false for empty and non-detect values and for anything that is not a number.
func ParseNumeric(raw interface{}) (float64, bool) {
	switch v := raw.(type) {
	case nil:
		return 0, false
	case float64:
		return finite(v)
	case float32:
		return finite(float64(v))
	case int:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint8:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	case *float64:
		if v == nil {
			return 0, false
		}
		return finite(*v)
	case string:
		return ParseNumericString(v)
	case fmt.Stringer:
		return ParseNumericString(v.String())
	default:
		return ParseNumericString(fmt.Sprint(v))
	}
}

// ParseNumericString is ParseNumeric for text: "1,5", "12 300", "1.2×10^6", "5.0±0.2".
func ParseNumericString(raw string) (float64, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, false
	}
	lower := strings.ToLower(s)
	for _, marker := range notDetectedMarkers {
		if strings.Contains(lower, marker) {
			return 0, false
		}
	}

	s = strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
	s = strings.ReplaceAll(s, ",", ".")
	s = superscripts.Replace(s)
	s = rewriteExponent(s)

	if i := strings.Index(s, "±"); i >= 0 {
		s = s[:i]
	}

	f, err := strconv.ParseFloat(leadingLiteral(s), 64)
	if err != nil {
		// "12e", "1e5e3", "3-" и переполнение
		return 0, false
	}
	return finite(f)
}

// rewriteExponent turns "a×10^b" and "a×10b" into "aeb"; a bare "×10" means "e1", a bare "×" is dropped.
func rewriteExponent(s string) string {
	for _, idiom := range powerIdioms {
		s = strings.ReplaceAll(s, idiom, "e")
	}

	for _, idiom := range tenIdioms {
		var b strings.Builder
		for {
			i := strings.Index(s, idiom)
			if i < 0 {
				b.WriteString(s)
				break
			}
			b.WriteString(s[:i])
			s = s[i+len(idiom):]
			if s != "" && (isDigit(s[0]) || s[0] == '-' || s[0] == '+') {
				b.WriteString("e")
			} else {
				b.WriteString("e1")
			}
		}
		s = b.String()
	}

	s = strings.ReplaceAll(s, "×", "")
	return strings.ReplaceAll(s, "·", "")
}

// leadingLiteral keeps the leading run of characters that can belong to a float literal.
// The run is parsed as is, a malformed run is not shortened.
func leadingLiteral(s string) string {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isDigit(c) || c == '.' || c == '-' || c == '+' || c == 'e' || c == 'E' {
			continue
		}
		return s[:i]
	}
	return s
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func finite(f float64) (float64, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}
