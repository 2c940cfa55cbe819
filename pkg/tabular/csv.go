package tabular

import (
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/geneflow/taxmerge/pkg/errors"
)

// Delimiter selects the cell separator for reading and writing.
type Delimiter rune

// Supported delimiters.
const (
	Comma Delimiter = ','
	Tab   Delimiter = '\t'
)

// DetectDelimiter picks a delimiter from the file extension: tab for
// .tsv/.tab, comma otherwise.
func DetectDelimiter(path string) Delimiter {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".tsv", ".tab":
		return Tab
	default:
		return Comma
	}
}

// ReadFile loads a delimited file into a table, using the first record as
// the header. The delimiter is chosen from the extension. A missing file
// is an input error that wraps ErrNotFound.
func ReadFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &errors.IOError{Op: "open", Path: path, Err: errors.ErrNotFound}
		}
		return nil, errors.NewIOError("open", path, err)
	}
	defer f.Close()

	t, err := Read(f, DetectDelimiter(path))
	if err != nil {
		return nil, &errors.ParseError{File: path, Err: err}
	}
	return t, nil
}

// Read loads delimited data from r using the first record as the header.
// Ragged rows are tolerated: short rows pad with empty cells, long rows
// are truncated to the header width.
func Read(r io.Reader, delim Delimiter) (*Table, error) {
	cr := csv.NewReader(r)
	cr.Comma = rune(delim)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err == io.EOF {
		return nil, errors.New("empty input")
	}
	if err != nil {
		return nil, err
	}

	t := New(header...)
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		t.Append(record)
	}
	return t, nil
}

// WriteFile writes the table to path, delimiter chosen from the
// extension. The file is created only after the table is fully built, so
// an aborted run never leaves partial output.
func WriteFile(t *Table, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.NewIOError("create", path, err)
	}
	if err := Write(t, f, DetectDelimiter(path)); err != nil {
		f.Close()
		return errors.NewIOError("write", path, err)
	}
	return f.Close()
}

// Write writes the header then every row to w.
func Write(t *Table, w io.Writer, delim Delimiter) error {
	cw := csv.NewWriter(w)
	cw.Comma = rune(delim)

	if err := cw.Write(t.columns); err != nil {
		return err
	}
	for i := range t.rows {
		if err := cw.Write(t.rows[i]); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
