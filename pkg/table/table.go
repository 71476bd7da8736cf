// Package table provides in-memory relational operations on batches of CSV
// rows. This is a pure package - it does not read or write files.
//
// Cells are strings. An empty cell is treated as null, the same way an
// empty field in a CSV file means a missing value. Only the empty cell is
// null: tokens such as "NA", "NaN", "null" or "None" are ordinary values,
// so a common name "NA" is kept and an id "NA" matches another "NA".
package table

import (
	"slices"
)

// Table is a batch of rows sharing one header.
type Table struct {
	// Header contains column names in file order.
	Header []string
	// Rows contain cells in Header order.
	Rows [][]string

	idx map[string]int
}

// Transform converts one batch of rows into another. Transforms are applied
// independently to every batch of a streamed file, so they must not depend
// on rows from other batches.
type Transform func(*Table) (*Table, error)

// New creates a Table. Rows are used as is, without copying.
func New(header []string, rows [][]string) *Table {
	res := &Table{
		Header: header,
		Rows:   rows,
		idx:    make(map[string]int, len(header)),
	}
	for i, v := range header {
		if _, ok := res.idx[v]; !ok {
			res.idx[v] = i
		}
	}
	return res
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.Rows)
}

// Index returns the position of a column in the header.
func (t *Table) Index(col string) (int, bool) {
	if t.idx == nil {
		*t = *New(t.Header, t.Rows)
	}
	i, ok := t.idx[col]
	return i, ok
}

// Require returns SchemaError if any of the columns is absent.
func (t *Table) Require(cols ...string) error {
	var missing []string
	for _, v := range cols {
		if _, ok := t.Index(v); !ok {
			missing = append(missing, v)
		}
	}
	if len(missing) > 0 {
		return SchemaError(missing, t.Header)
	}
	return nil
}

// Row gives access to cells of a row by column name.
type Row struct {
	t     *Table
	cells []string
}

// Get returns the value of a column, or an empty string if the column
// does not exist.
func (r Row) Get(col string) string {
	i, ok := r.t.Index(col)
	if !ok || i >= len(r.cells) {
		return ""
	}
	return r.cells[i]
}

// IsNull is true when a column is absent or its cell is empty.
func (r Row) IsNull(col string) bool {
	return r.Get(col) == ""
}

// Each calls fn for every row in order.
func (t *Table) Each(fn func(Row)) {
	for _, v := range t.Rows {
		fn(Row{t: t, cells: v})
	}
}

// Filter returns rows for which keep returns true, preserving their order.
// The returned Table shares row slices with t.
func (t *Table) Filter(keep func(Row) bool) *Table {
	var rows [][]string
	for _, v := range t.Rows {
		if keep(Row{t: t, cells: v}) {
			rows = append(rows, v)
		}
	}
	return New(t.Header, rows)
}

// Select projects the table to given columns in the given order.
func (t *Table) Select(cols ...string) (*Table, error) {
	if err := t.Require(cols...); err != nil {
		return nil, err
	}

	pos := make([]int, len(cols))
	for i, v := range cols {
		pos[i], _ = t.Index(v)
	}

	rows := make([][]string, len(t.Rows))
	for i, v := range t.Rows {
		row := make([]string, len(cols))
		for j, p := range pos {
			if p < len(v) {
				row[j] = v[p]
			}
		}
		rows[i] = row
	}
	return New(slices.Clone(cols), rows), nil
}

// NotNull keeps rows where all given columns have non-empty cells.
func (t *Table) NotNull(cols ...string) *Table {
	return t.Filter(func(r Row) bool {
		for _, v := range cols {
			if r.IsNull(v) {
				return false
			}
		}
		return true
	})
}
