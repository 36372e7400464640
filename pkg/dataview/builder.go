package dataview

import (
	"cmp"
	"slices"
)

// cell is one column/value pair staged on a Row.
type cell struct {
	column string
	value  string
}

// Row stages an ordered list of column/value cells for a single row
// identifier, for bulk insertion into a Builder with AddRow.
//
// A Row has no validity constraints of its own; an empty Row is legal and
// adding it to a Builder is a no-op.
type Row struct {
	name  string
	cells []cell
}

// NewRow creates a Row with the given identifier and no cells. Any name is
// allowed, including the empty string.
func NewRow(name string) *Row {
	return &Row{name: name}
}

// AddCell appends a column/value pair to the row and returns the row for
// chaining. Cells are not deduplicated: adding the same column twice keeps
// both entries, and the later value wins when the row is applied to a
// Builder.
func (r *Row) AddCell(column, value string) *Row {
	r.cells = append(r.cells, cell{column: column, value: value})
	return r
}

// Builder accumulates dataview state and freezes it into a Dataview.
//
// Every mutating method returns the receiver so calls can be chained.
// Non-string values (counts, percentages, timestamps) are converted by the
// caller with strconv or fmt before insertion. A Builder is spent once
// Build is called, whether or not the build succeeds.
type Builder struct {
	rowHeader     string
	hasRowHeader  bool
	headlines     map[string]string
	values        map[cellKey]string
	headlineOrder orderedSet
	columnOrder   orderedSet
	rowOrder      orderedSet
}

// NewBuilder creates an empty Builder: no row header, no headlines,
// no values. The zero value is also ready to use.
func NewBuilder() *Builder {
	return &Builder{}
}

// SetRowHeader sets the mandatory row header label. Calling it again
// overwrites the previous label; the last write wins.
func (b *Builder) SetRowHeader(label string) *Builder {
	b.rowHeader = label
	b.hasRowHeader = true
	return b
}

// AddHeadline adds or replaces a headline value. A headline's position is
// fixed by its first insertion; replacing the value does not move it.
func (b *Builder) AddHeadline(name, value string) *Builder {
	if b.headlines == nil {
		b.headlines = make(map[string]string)
	}
	b.headlineOrder.add(name)
	b.headlines[name] = value
	return b
}

// AddValue adds or replaces the cell value at row/column. New rows and
// columns are appended to their respective display orders; existing ones
// keep their first-seen position. This is the primitive every other
// insertion operation is defined in terms of.
func (b *Builder) AddValue(row, column, value string) *Builder {
	if b.values == nil {
		b.values = make(map[cellKey]string)
	}
	b.columnOrder.add(column)
	b.rowOrder.add(row)
	b.values[cellKey{row: row, column: column}] = value
	return b
}

// AddRow applies every cell of the given Row via AddValue, in the row's own
// cell order. A Row with no cells registers nothing, not even the row name.
func (b *Builder) AddRow(row *Row) *Builder {
	for _, c := range row.cells {
		b.AddValue(row.name, c.column, c.value)
	}
	return b
}

// SortRows sorts the row display order ascending by row name. Sorting is
// opt-in; the default is insertion order. Columns and values are untouched.
func (b *Builder) SortRows() *Builder {
	slices.Sort(b.rowOrder.names)
	return b
}

// SortRowsBy sorts the row display order ascending by a derived integer key
// (for example, name length). The sort is stable: rows with equal keys keep
// their insertion order.
func (b *Builder) SortRowsBy(key func(name string) int) *Builder {
	slices.SortStableFunc(b.rowOrder.names, func(a, c string) int {
		return cmp.Compare(key(a), key(c))
	})
	return b
}

// SortRowsWith sorts the row display order with a custom comparator, which
// must return a negative number when a sorts before b, zero when they are
// equal, and a positive number otherwise. The sort is stable.
func (b *Builder) SortRowsWith(compare func(a, b string) int) *Builder {
	slices.SortStableFunc(b.rowOrder.names, compare)
	return b
}

// Build validates the accumulated state and freezes it into a Dataview.
//
// It returns ErrMissingRowHeader if SetRowHeader was never called, and
// ErrMissingValue if no cell value was ever added (headlines alone are not
// enough). The builder is consumed either way: its state transfers to the
// Dataview and the builder resets to empty, so it must not be reused.
func (b *Builder) Build() (*Dataview, error) {
	built := *b
	*b = Builder{}

	if !built.hasRowHeader {
		return nil, ErrMissingRowHeader
	}
	if len(built.values) == 0 {
		return nil, ErrMissingValue
	}

	return &Dataview{
		rowHeader:     built.rowHeader,
		headlines:     built.headlines,
		headlineOrder: built.headlineOrder.names,
		values:        built.values,
		columnOrder:   built.columnOrder.names,
		rowOrder:      built.rowOrder.names,
	}, nil
}
