package tabular

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// OpenFunc opens a store file for appending.
type OpenFunc func(path string) (*os.File, error)

// AppendRows appends records to a CSV file in column order. A new or empty file gets a BOM and the header.
// Rows are encoded first and written with a single append. A nil open means OpenAppend.
func AppendRows(path string, columns []string, rows []map[string]string, open OpenFunc) error {
	if len(rows) == 0 {
		return nil
	}
	if open == nil {
		open = OpenAppend
	}

	data, err := EncodeRows(columns, rows, needsHeader(path))
	if err != nil {
		return err
	}

	f, err := open(path)
	if err != nil {
		return err
	}
	if _, err = f.Write(data); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// needsHeader reports whether path is missing or empty.
func needsHeader(path string) bool {
	st, err := os.Stat(path)
	return err != nil || st.Size() == 0
}

// OpenAppend opens path for appending, creating it and its directory.
func OpenAppend(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	return os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
}

// EncodeRows renders records in column order, with a BOM and the header when withHeader is set.
func EncodeRows(columns []string, rows []map[string]string, withHeader bool) ([]byte, error) {
	var buf bytes.Buffer
	if withHeader {
		buf.Write(utf8BOM)
	}
	w := csv.NewWriter(&buf)
	if withHeader {
		if err := w.Write(columns); err != nil {
			return nil, fmt.Errorf("csv.Write: %w", err)
		}
	}

	record := make([]string, len(columns))
	for _, row := range rows {
		for i, col := range columns {
			record[i] = row[col]
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("csv.Write: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("csv.Flush: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteFileAtomic writes into a temp file next to path and renames it over.
func WriteFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name()) // после rename ничего не удалит

	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
