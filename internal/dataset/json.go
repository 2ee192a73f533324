// Package dataset reads movie records from exports and writes JSON documents.
package dataset

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"moviedata/internal/fsx"
	"moviedata/internal/models"
)

// Structural input errors.
var (
	ErrNotRecordArray = errors.New("input is not a JSON array of objects")
	ErrTrailingData   = errors.New("unexpected data after JSON array")
)

// ReadJSON reads a single JSON array of objects. Numbers are kept as json.Number.
func ReadJSON(r io.Reader) ([]models.RawRecord, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var records []models.RawRecord
	if err := dec.Decode(&records); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return nil, fmt.Errorf("%w: %w", ErrNotRecordArray, err)
		}

		return nil, fmt.Errorf("failed to decode JSON: %w", err)
	}

	if records == nil {
		return nil, fmt.Errorf("%w: got null", ErrNotRecordArray)
	}

	for i, rec := range records {
		if rec == nil {
			return nil, fmt.Errorf("%w: element %d is null", ErrNotRecordArray, i)
		}
	}

	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, ErrTrailingData
	}

	return records, nil
}

// LoadRecords reads the file at path. Files ending in .csv or .tsv are read as
// delimited text, everything else as a JSON array.
func LoadRecords(path string, d Dialect) ([]models.RawRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input: %w", err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".tsv":
		if d.Delimiter == 0 || d.Delimiter == ',' {
			d.Delimiter = '\t'
		}

		fallthrough
	case ".csv":
		table, err := ReadCSV(f, d)
		if err != nil {
			return nil, err
		}

		return table.Records(), nil
	default:
		return ReadJSON(f)
	}
}

// EncodeJSON renders v with the given indent width. HTML characters and
// non-ASCII text are written as is. An indent of 0 gives compact output.
func EncodeJSON(v any, indent int) ([]byte, error) {
	var buf bytes.Buffer

	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)

	if indent > 0 {
		enc.SetIndent("", strings.Repeat(" ", indent))
	}

	if err := enc.Encode(v); err != nil {
		return nil, fmt.Errorf("failed to encode JSON: %w", err)
	}

	return buf.Bytes(), nil
}

// WriteJSON encodes v and atomically replaces the file at path with it.
// Missing parent directories are created.
func WriteJSON(path string, v any, indent int) error {
	data, err := EncodeJSON(v, indent)
	if err != nil {
		return err
	}

	return fsx.WriteFileAtomic(filepath.Dir(path), filepath.Base(path), data)
}

func writeJSONValue(buf *bytes.Buffer, v any) error {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)

	if err := enc.Encode(v); err != nil {
		return err
	}

	// Encode terminates every value with a newline.
	buf.Truncate(buf.Len() - 1)

	return nil
}
