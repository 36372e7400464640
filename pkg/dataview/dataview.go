package dataview

import (
	"errors"
	"slices"
)

// Version is the current version of the dataview package
const Version = "1.0.0"

// Build validation errors. Validation happens only in Builder.Build;
// every other Builder operation is infallible.
var (
	// ErrMissingRowHeader is returned by Build when no row header was ever set.
	ErrMissingRowHeader = errors.New("dataview must have a row header")
	// ErrMissingValue is returned by Build when the dataview has no cell
	// values. Headlines alone do not satisfy this requirement.
	ErrMissingValue = errors.New("dataview must have at least one value")
)

// cellKey addresses one cell in the sparse row×column grid.
type cellKey struct {
	row    string
	column string
}

// Dataview is a finalized tabular report: a row header, ordered headline
// name/value pairs, and a sparse row×column grid of cell values.
//
// A Dataview is immutable. It is produced by Builder.Build and can be
// rendered to the Geneos text format any number of times with String.
type Dataview struct {
	rowHeader     string
	headlines     map[string]string
	headlineOrder []string
	values        map[cellKey]string
	columnOrder   []string
	rowOrder      []string
}

// RowHeader returns the label of the identifying (leftmost) column.
func (d *Dataview) RowHeader() string {
	return d.rowHeader
}

// Headline looks up a headline value by name. The second return value
// reports whether the headline exists.
func (d *Dataview) Headline(name string) (string, bool) {
	value, ok := d.headlines[name]
	return value, ok
}

// Value looks up the cell value at row/column. The second return value
// reports whether the cell exists; absent cells are not an error.
func (d *Dataview) Value(row, column string) (string, bool) {
	value, ok := d.values[cellKey{row: row, column: column}]
	return value, ok
}

// HeadlineOrder returns the headline names in display order.
func (d *Dataview) HeadlineOrder() []string {
	return slices.Clone(d.headlineOrder)
}

// ColumnOrder returns the column names in display order.
func (d *Dataview) ColumnOrder() []string {
	return slices.Clone(d.columnOrder)
}

// RowOrder returns the row names in display order.
func (d *Dataview) RowOrder() []string {
	return slices.Clone(d.rowOrder)
}
