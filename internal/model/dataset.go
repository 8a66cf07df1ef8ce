package model

// Kind is the semantic type declared for a column. Values are stored as
// `any`; a Kind tells writers how to encode the column, it does not make
// access panic on mismatch; malformed cells are coerced by stages, not here.
type Kind int

const (
	Text Kind = iota
	Float
	Int
	IntList
)

// Column describes one named, kinded column.
type Column struct {
	Name string
	Kind Kind
}

// Record is one row, positionally aligned with the dataset's columns.
// A nil cell is a null.
type Record []any

// Dataset is the in-memory table handed between cleaning stages: an ordered
// column schema plus rows. Each stage owns the dataset it receives and may
// mutate it; the engine never hands the same dataset to two stages.
type Dataset struct {
	cols  []Column
	index map[string]int
	rows  []Record
}

// New creates an empty Dataset with the given column schema.
func New(cols []Column) *Dataset {
	d := &Dataset{
		cols:  append([]Column(nil), cols...),
		index: make(map[string]int, len(cols)),
	}
	for i, c := range d.cols {
		d.index[c.Name] = i
	}
	return d
}

// Columns returns a copy of the column schema in declaration order.
func (d *Dataset) Columns() []Column {
	return append([]Column(nil), d.cols...)
}

// ColumnNames returns the column names in declaration order.
func (d *Dataset) ColumnNames() []string {
	names := make([]string, len(d.cols))
	for i, c := range d.cols {
		names[i] = c.Name
	}
	return names
}

// HasColumn reports whether a column exists. Stages use this capability
// check before operating on optional columns.
func (d *Dataset) HasColumn(name string) bool {
	_, ok := d.index[name]
	return ok
}

// NumRows returns the row count.
func (d *Dataset) NumRows() int {
	return len(d.rows)
}

// Append adds a row. Short rows are padded with nulls, long rows truncated,
// so a malformed source line degrades to nulls instead of misaligning.
func (d *Dataset) Append(row Record) {
	switch {
	case len(row) < len(d.cols):
		padded := make(Record, len(d.cols))
		copy(padded, row)
		row = padded
	case len(row) > len(d.cols):
		row = row[:len(d.cols)]
	}
	d.rows = append(d.rows, row)
}

// AppendMap adds a row given as a name→value map. Missing keys become null;
// unknown keys are ignored.
func (d *Dataset) AppendMap(m map[string]any) {
	row := make(Record, len(d.cols))
	for name, v := range m {
		if i, ok := d.index[name]; ok {
			row[i] = v
		}
	}
	d.rows = append(d.rows, row)
}

// Row returns row i. The caller must not grow it.
func (d *Dataset) Row(i int) Record {
	return d.rows[i]
}

// Value returns the cell at row i, column name. Absent columns read as null.
func (d *Dataset) Value(i int, name string) any {
	ci, ok := d.index[name]
	if !ok {
		return nil
	}
	return d.rows[i][ci]
}

// RowMap returns row i as a name→value map.
func (d *Dataset) RowMap(i int) map[string]any {
	m := make(map[string]any, len(d.cols))
	for ci, c := range d.cols {
		m[c.Name] = d.rows[i][ci]
	}
	return m
}

// DropColumns removes the named columns. Names not present are ignored.
func (d *Dataset) DropColumns(names ...string) {
	drop := make(map[string]bool, len(names))
	for _, n := range names {
		drop[n] = true
	}

	keep := make([]int, 0, len(d.cols))
	for i, c := range d.cols {
		if !drop[c.Name] {
			keep = append(keep, i)
		}
	}
	if len(keep) == len(d.cols) {
		return
	}

	cols := make([]Column, len(keep))
	for i, ci := range keep {
		cols[i] = d.cols[ci]
	}
	for ri, row := range d.rows {
		next := make(Record, len(keep))
		for i, ci := range keep {
			next[i] = row[ci]
		}
		d.rows[ri] = next
	}
	d.cols = cols
	d.index = make(map[string]int, len(cols))
	for i, c := range cols {
		d.index[c.Name] = i
	}
}

// Filter keeps rows for which keep returns true, preserving relative order.
// Returns the number of rows dropped.
func (d *Dataset) Filter(keep func(row Record) bool) int {
	kept := d.rows[:0]
	for _, row := range d.rows {
		if keep(row) {
			kept = append(kept, row)
		}
	}
	dropped := len(d.rows) - len(kept)
	d.rows = kept
	return dropped
}

// MapColumn applies fn to every cell of the named column. A no-op when the
// column is absent. fn must be total: it receives nulls and may return them.
func (d *Dataset) MapColumn(name string, fn func(v any) any) {
	ci, ok := d.index[name]
	if !ok {
		return
	}
	for _, row := range d.rows {
		row[ci] = fn(row[ci])
	}
}

// ColumnIndex returns the position of a column, or -1 when absent.
func (d *Dataset) ColumnIndex(name string) int {
	if i, ok := d.index[name]; ok {
		return i
	}
	return -1
}

// AddColumn appends a new column with the given values. Values beyond the
// row count are ignored; missing values are null. Replaces any existing
// column of the same name in place.
func (d *Dataset) AddColumn(col Column, values []any) {
	if ci, ok := d.index[col.Name]; ok {
		d.cols[ci] = col
		for ri := range d.rows {
			if ri < len(values) {
				d.rows[ri][ci] = values[ri]
			} else {
				d.rows[ri][ci] = nil
			}
		}
		return
	}
	d.cols = append(d.cols, col)
	d.index[col.Name] = len(d.cols) - 1
	for ri := range d.rows {
		var v any
		if ri < len(values) {
			v = values[ri]
		}
		d.rows[ri] = append(d.rows[ri], v)
	}
}

// SetKind re-declares the kind of an existing column, typically after a
// coercion stage has changed the column's representation.
func (d *Dataset) SetKind(name string, k Kind) {
	if ci, ok := d.index[name]; ok {
		d.cols[ci].Kind = k
	}
}

// Clone returns a deep copy of the schema and rows. Cell values are shared
// except int-list cells, which are copied so the clone cannot alias them.
func (d *Dataset) Clone() *Dataset {
	c := New(d.cols)
	c.rows = make([]Record, len(d.rows))
	for ri, row := range d.rows {
		next := make(Record, len(row))
		for i, v := range row {
			if codes, ok := v.([]int64); ok {
				v = append([]int64(nil), codes...)
			}
			next[i] = v
		}
		c.rows[ri] = next
	}
	return c
}
