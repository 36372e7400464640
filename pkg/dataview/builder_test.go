package dataview

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFirstSeenOrderPreservation(t *testing.T) {
	// Cell insertion order is deliberately scrambled across rows; the
	// display orders must still follow the first occurrence of each name.
	view, err := NewBuilder().
		SetRowHeader("id").
		AddValue("r1", "c1", "a").
		AddValue("r1", "c2", "b").
		AddValue("r2", "c3", "c").
		AddValue("r2", "c1", "d").
		AddValue("r1", "c3", "e").
		Build()
	require.NoError(t, err)

	assert.Equal(t, []string{"c1", "c2", "c3"}, view.ColumnOrder())
	assert.Equal(t, []string{"r1", "r2"}, view.RowOrder())
}

func TestOverwriteKeepsPosition(t *testing.T) {
	view, err := NewBuilder().
		SetRowHeader("id").
		AddValue("r1", "c1", "v1").
		AddValue("r1", "c2", "other").
		AddValue("r1", "c1", "v2").
		Build()
	require.NoError(t, err)

	value, ok := view.Value("r1", "c1")
	assert.True(t, ok)
	assert.Equal(t, "v2", value)
	assert.Equal(t, []string{"c1", "c2"}, view.ColumnOrder())
}

func TestRowHeaderLastWriteWins(t *testing.T) {
	view, err := NewBuilder().
		SetRowHeader("first").
		SetRowHeader("second").
		AddValue("r", "c", "v").
		Build()
	require.NoError(t, err)

	assert.Equal(t, "second", view.RowHeader())
}

func TestHeadlineOrderAndOverwrite(t *testing.T) {
	view, err := NewBuilder().
		SetRowHeader("id").
		AddHeadline("Baz", "Foo").
		AddHeadline("AlertDetails", "this is red alert").
		AddHeadline("Baz", "updated").
		AddValue("r", "c", "v").
		Build()
	require.NoError(t, err)

	assert.Equal(t, []string{"Baz", "AlertDetails"}, view.HeadlineOrder())
	value, ok := view.Headline("Baz")
	assert.True(t, ok)
	assert.Equal(t, "updated", value)
}

func TestAddRow(t *testing.T) {
	row1 := NewRow("process1").
		AddCell("Status", "Running").
		AddCell("CPU", "2.5%")

	row2 := NewRow("process2").
		AddCell("Status", "Stopped").
		AddCell("CPU", "0.0%")

	view, err := NewBuilder().
		SetRowHeader("Process").
		AddRow(row1).
		AddRow(row2).
		Build()
	require.NoError(t, err)

	output := view.String()
	assert.Contains(t, output, "Process,Status,CPU")
	assert.Contains(t, output, "process1,Running,2.5%")
	assert.Contains(t, output, "process2,Stopped,0.0%")
}

func TestAddRowEmptyRowIsInvisible(t *testing.T) {
	view, err := NewBuilder().
		SetRowHeader("id").
		AddRow(NewRow("ghost")).
		AddValue("real", "col", "1").
		Build()
	require.NoError(t, err)

	assert.Equal(t, []string{"real"}, view.RowOrder())
	_, ok := view.Value("ghost", "col")
	assert.False(t, ok)
}

func TestAddRowDuplicateColumnLastWins(t *testing.T) {
	row := NewRow("r").
		AddCell("c", "first").
		AddCell("other", "x").
		AddCell("c", "second")

	view, err := NewBuilder().
		SetRowHeader("id").
		AddRow(row).
		Build()
	require.NoError(t, err)

	value, ok := view.Value("r", "c")
	assert.True(t, ok)
	assert.Equal(t, "second", value)
	assert.Equal(t, []string{"c", "other"}, view.ColumnOrder())
}

// addNamedRows inserts one single-cell row per name, in order.
func addNamedRows(b *Builder, names ...string) *Builder {
	for _, name := range names {
		b.AddValue(name, "col", "1")
	}
	return b
}

func TestRowSorting(t *testing.T) {
	t.Run("default is insertion order", func(t *testing.T) {
		view, err := addNamedRows(NewBuilder().SetRowHeader("id"), "b", "a", "c").Build()
		require.NoError(t, err)
		assert.Equal(t, []string{"b", "a", "c"}, view.RowOrder())
	})

	t.Run("SortRows is ascending by name", func(t *testing.T) {
		view, err := addNamedRows(NewBuilder().SetRowHeader("id"), "b", "a", "c").
			SortRows().
			Build()
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b", "c"}, view.RowOrder())
	})

	t.Run("SortRowsBy derived key", func(t *testing.T) {
		view, err := addNamedRows(NewBuilder().SetRowHeader("id"), "long", "mid", "s").
			SortRowsBy(func(name string) int { return len(name) }).
			Build()
		require.NoError(t, err)
		assert.Equal(t, []string{"s", "mid", "long"}, view.RowOrder())
	})

	t.Run("SortRowsBy ties keep insertion order", func(t *testing.T) {
		view, err := addNamedRows(NewBuilder().SetRowHeader("id"), "bb", "aa", "cc", "z").
			SortRowsBy(func(name string) int { return len(name) }).
			Build()
		require.NoError(t, err)
		assert.Equal(t, []string{"z", "bb", "aa", "cc"}, view.RowOrder())
	})

	t.Run("SortRowsWith reverse comparator", func(t *testing.T) {
		view, err := addNamedRows(NewBuilder().SetRowHeader("id"), "alpha", "beta", "gamma").
			SortRowsWith(func(a, b string) int { return strings.Compare(b, a) }).
			Build()
		require.NoError(t, err)
		assert.Equal(t, []string{"gamma", "beta", "alpha"}, view.RowOrder())
	})

	t.Run("sorting leaves columns and values alone", func(t *testing.T) {
		view, err := NewBuilder().
			SetRowHeader("id").
			AddValue("b", "c2", "x").
			AddValue("a", "c1", "y").
			SortRows().
			Build()
		require.NoError(t, err)
		assert.Equal(t, []string{"c2", "c1"}, view.ColumnOrder())
		value, ok := view.Value("b", "c2")
		assert.True(t, ok)
		assert.Equal(t, "x", value)
	})
}
