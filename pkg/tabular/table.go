// Package tabular provides the in-memory table the reconciliation driver
// joins and emits: ordered string columns, row-per-specimen, read from and
// written to delimited files. Cells are kept verbatim; interpreting
// missing values is the taxonomy layer's job.
package tabular

import (
	"github.com/geneflow/taxmerge/pkg/errors"
)

// Table is a rectangular block of string cells with named, ordered
// columns. The zero value is not usable; construct with New or ReadFile.
type Table struct {
	columns []string
	index   map[string]int
	rows    [][]string
}

// New creates an empty table with the given column order.
func New(columns ...string) *Table {
	t := &Table{
		columns: append([]string(nil), columns...),
		index:   make(map[string]int, len(columns)),
	}
	for i, c := range t.columns {
		t.index[c] = i
	}
	return t
}

// Columns returns the column names in output order. Callers must treat
// the slice as read-only.
func (t *Table) Columns() []string {
	return t.columns
}

// HasColumn reports whether the table offers the named column.
func (t *Table) HasColumn(name string) bool {
	_, ok := t.index[name]
	return ok
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.rows)
}

// Append adds a row. Short rows are padded with empty cells and long rows
// truncated so the table stays rectangular.
func (t *Table) Append(row []string) {
	cells := make([]string, len(t.columns))
	copy(cells, row)
	t.rows = append(t.rows, cells)
}

// AppendMap adds a row from a column-name-to-value map. Columns with no
// entry stay empty; keys without a matching column are ignored.
func (t *Table) AppendMap(values map[string]string) {
	cells := make([]string, len(t.columns))
	for name, v := range values {
		if i, ok := t.index[name]; ok {
			cells[i] = v
		}
	}
	t.rows = append(t.rows, cells)
}

// Cell returns the value at row i, column name, or "" when the column
// does not exist.
func (t *Table) Cell(i int, name string) string {
	col, ok := t.index[name]
	if !ok {
		return ""
	}
	return t.rows[i][col]
}

// Row returns row i as a map from column name to value.
func (t *Table) Row(i int) map[string]string {
	out := make(map[string]string, len(t.columns))
	for j, c := range t.columns {
		out[c] = t.rows[i][j]
	}
	return out
}

// RenameColumn renames a column in place, keeping its position. It fails
// when the old name is absent or the new name already exists.
func (t *Table) RenameColumn(from, to string) error {
	i, ok := t.index[from]
	if !ok {
		return errors.NewMissingColumnError("", from)
	}
	if _, exists := t.index[to]; exists && from != to {
		return errors.New("column already exists: " + to)
	}
	delete(t.index, from)
	t.columns[i] = to
	t.index[to] = i
	return nil
}

// Require returns a MissingColumnError naming file for the first of the
// given columns the table does not offer.
func (t *Table) Require(file string, columns ...string) error {
	for _, c := range columns {
		if !t.HasColumn(c) {
			return errors.NewMissingColumnError(file, c)
		}
	}
	return nil
}
