/*
Package dataview builds Geneos dataviews: structured tabular reports made of
a row header, ordered headline name/value pairs, and a sparse row×column grid
of cell values, rendered into the comma-delimited Geneos text format.

A dataview is assembled incrementally with a Builder and frozen by Build into
an immutable Dataview. Rows, columns, and headlines keep the order in which
they were first added; re-adding an existing key replaces its value without
moving it. Rendering is a pure function of the finalized value.

Rendered format:

	row_header,column1,column2
	<!>headline1,value1
	<!>headline2,value2
	row1,value1,value2
	row2,value1,value2

Basic usage:

	import "github.com/agentstation/dataview/pkg/dataview"

	view, err := dataview.NewBuilder().
		SetRowHeader("Process").
		AddHeadline("TotalProcesses", "50").
		AddValue("process1", "Status", "Running").
		AddValue("process1", "CPU", "2.5%").
		Build()
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(view)

Whole rows can be staged with the Row helper:

	row := dataview.NewRow("process1").
		AddCell("Status", "Running").
		AddCell("CPU", "2.5%")

	view, err := dataview.NewBuilder().
		SetRowHeader("Process").
		AddRow(row).
		Build()

Features:
  - First-seen ordering of headlines, columns, and rows, tracked
    independently of one another
  - Sparse grids: missing cells render as empty fields (runs of commas)
  - Literal commas in any field are escaped as \, on output; no other
    character is special
  - Opt-in row sorting: lexicographic, by derived key, or with a custom
    comparator (the default is insertion order)
  - Build-time validation: a dataview must have a row header and at least
    one cell value (headlines alone are not enough)

The finalized Dataview is immutable and safe to share across goroutines.
A Builder is not; each concurrent producer needs its own Builder.
*/
package dataview
