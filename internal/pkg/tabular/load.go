package tabular

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

const (
	EncodingUTF8   = "utf-8"
	EncodingLatin1 = "latin1"
)

// IngestionError means a store exists but could not be read under any supported encoding.
type IngestionError struct {
	Resource string
	Err      error
}

func (e *IngestionError) Error() string {
	return fmt.Sprintf("ingestion of %s failed: %v", e.Resource, e.Err)
}

func (e *IngestionError) Unwrap() error {
	return e.Err
}

var errInvalidUTF8 = errors.New("content is not valid utf-8")

// Loader reads delimited stores, decoding UTF-8 (BOM tolerated) first and the fallback encoding second.
type Loader struct {
	FallbackName string
	Fallback     encoding.Encoding
}

// NewLoader resolves a fallback encoding by name: latin1 (default), cp1251 or cp866.
func NewLoader(fallback string) *Loader {
	switch strings.ToLower(strings.TrimSpace(fallback)) {
	case "cp1251", "windows-1251":
		return &Loader{FallbackName: "cp1251", Fallback: charmap.Windows1251}
	case "cp866", "ibm866":
		return &Loader{FallbackName: "cp866", Fallback: charmap.CodePage866}
	default:
		return &Loader{FallbackName: EncodingLatin1, Fallback: charmap.ISO8859_1}
	}
}

// Load reads the store at path. A missing store yields an empty table with Missing set.
func (l *Loader) Load(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			t := Empty(path)
			t.Missing = true
			return t, nil
		}
		return nil, &IngestionError{Resource: path, Err: err}
	}

	return l.Parse(path, data)
}

// Parse decodes and splits raw store content.
func (l *Loader) Parse(name string, data []byte) (*Table, error) {
	t, err := parseUTF8(name, data)
	if err == nil {
		return t, nil
	}

	fallback := l.Fallback
	if fallback == nil {
		fallback = charmap.ISO8859_1
	}
	decoded, decodeErr := fallback.NewDecoder().Bytes(data)
	if decodeErr != nil {
		return nil, &IngestionError{Resource: name, Err: errors.Join(err, decodeErr)}
	}

	t, fallbackErr := parse(name, decoded)
	if fallbackErr != nil {
		return nil, &IngestionError{Resource: name, Err: fallbackErr}
	}
	t.Encoding = l.FallbackName
	return t, nil
}

func parseUTF8(name string, data []byte) (*Table, error) {
	if !utf8.Valid(data) {
		return nil, errInvalidUTF8
	}

	decoded, err := unicode.UTF8BOM.NewDecoder().Bytes(data)
	if err != nil {
		return nil, err
	}

	t, err := parse(name, decoded)
	if err != nil {
		return nil, err
	}
	t.Encoding = EncodingUTF8
	return t, nil
}

func parse(name string, data []byte) (*Table, error) {
	t := Empty(name)
	if len(bytes.TrimSpace(data)) == 0 {
		return t, nil
	}

	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("csv.ReadAll: %w", err)
	}
	if len(records) == 0 {
		return t, nil
	}

	t.Columns = trimColumns(records[0])
	width := len(t.Columns)
	t.Rows = make([][]string, 0, len(records)-1)
	for i, rec := range records[1:] {
		row, err := fitRow(rec, width)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+2, err)
		}
		t.Rows = append(t.Rows, row)
	}

	return t, nil
}

// fitRow pads short rows with empty cells. Extra cells are allowed only when empty.
func fitRow(rec []string, width int) ([]string, error) {
	if len(rec) > width {
		for _, extra := range rec[width:] {
			if strings.TrimSpace(extra) != "" {
				return nil, fmt.Errorf("expected %d fields, saw %d", width, len(rec))
			}
		}
		rec = rec[:width]
	}

	row := make([]string, width)
	copy(row, rec)
	return row, nil
}
