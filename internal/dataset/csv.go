package dataset

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	"moviedata/internal/models"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Dialect describes the delimited text layout.
type Dialect struct {
	Delimiter rune
	// Comment starts a comment line when non-zero.
	Comment rune
}

// DefaultDialect is plain comma separated values.
var DefaultDialect = Dialect{Delimiter: ','}

// Table is a delimited file read in full.
type Table struct {
	Header []string
	Rows   []Row
	// SurplusCells counts cells beyond the header width that were dropped.
	SurplusCells int
}

// Records converts every row into a raw record with string values.
func (t *Table) Records() []models.RawRecord {
	records := make([]models.RawRecord, 0, len(t.Rows))
	for _, row := range t.Rows {
		records = append(records, row.Record())
	}

	return records
}

// Row is one data line keyed by header name. Keys keep header order; a
// duplicated header name keeps its first position and the last value.
type Row struct {
	keys   []string
	values map[string]*string
}

// Keys returns the field names in header order.
func (r Row) Keys() []string {
	return r.keys
}

// Get returns the cell for key. ok is false for cells missing from a short line.
func (r Row) Get(key string) (string, bool) {
	v := r.values[key]
	if v == nil {
		return "", false
	}

	return *v, true
}

// Record converts the row into a raw record. Missing cells become null.
func (r Row) Record() models.RawRecord {
	rec := make(models.RawRecord, len(r.keys))

	for _, k := range r.keys {
		if v := r.values[k]; v != nil {
			rec[k] = *v
		} else {
			rec[k] = nil
		}
	}

	return rec
}

// MarshalJSON writes the row as an object in header order.
func (r Row) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteByte('{')

	for i, k := range r.keys {
		if i > 0 {
			buf.WriteByte(',')
		}

		if err := writeJSONValue(&buf, k); err != nil {
			return nil, err
		}

		buf.WriteByte(':')

		var v any
		if p := r.values[k]; p != nil {
			v = *p
		}

		if err := writeJSONValue(&buf, v); err != nil {
			return nil, err
		}
	}

	buf.WriteByte('}')

	return buf.Bytes(), nil
}

// ReadCSV reads a delimited file whose first line names the fields.
func ReadCSV(r io.Reader, d Dialect) (*Table, error) {
	br := bufio.NewReader(r)
	if prefix, err := br.Peek(len(utf8BOM)); err == nil && bytes.Equal(prefix, utf8BOM) {
		_, _ = br.Discard(len(utf8BOM))
	}

	reader := csv.NewReader(br)
	reader.Comma = d.Delimiter
	reader.Comment = d.Comment
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	if reader.Comma == 0 {
		reader.Comma = ','
	}

	table := &Table{}

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return table, nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	table.Header = header
	keys := uniqueKeys(header)

	for {
		cells, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("failed to read row %d: %w", len(table.Rows)+1, err)
		}

		row := Row{keys: keys, values: make(map[string]*string, len(keys))}

		for i, cell := range cells {
			if i >= len(header) {
				table.SurplusCells += len(cells) - len(header)
				break
			}

			row.values[header[i]] = &cell
		}

		table.Rows = append(table.Rows, row)
	}

	return table, nil
}

func uniqueKeys(header []string) []string {
	seen := make(map[string]bool, len(header))
	keys := make([]string, 0, len(header))

	for _, h := range header {
		if seen[h] {
			continue
		}

		seen[h] = true
		keys = append(keys, h)
	}

	return keys
}
