package dataview

import "strings"

// headlinePrefix marks a headline line in the rendered output.
const headlinePrefix = "<!>"

// escapeCommas escapes literal commas as the two-character sequence \, .
// Commas are the only special character in the wire format; everything
// else, including newlines and quotes, passes through unchanged.
func escapeCommas(s string) string {
	return strings.ReplaceAll(s, ",", "\\,")
}

// String renders the dataview in the Geneos text format: the header row,
// then one <!> line per headline, then one line per data row. Absent cells
// render as empty fields, so sparse rows contain runs of consecutive
// commas. Lines are newline-terminated except the last data row.
//
// Rendering is a pure function of the dataview and can be called any
// number of times.
func (d *Dataview) String() string {
	var sb strings.Builder
	writeHeaderRow(&sb, d.rowHeader, d.columnOrder)
	writeHeadlines(&sb, d.headlineOrder, d.headlines)
	writeDataRows(&sb, d.rowOrder, d.columnOrder, d.values)
	return sb.String()
}

// writeHeaderRow writes the row header label followed by every column name.
func writeHeaderRow(sb *strings.Builder, rowHeader string, columns []string) {
	sb.WriteString(escapeCommas(rowHeader))
	for _, col := range columns {
		sb.WriteByte(',')
		sb.WriteString(escapeCommas(col))
	}
	sb.WriteByte('\n')
}

// writeHeadlines writes one <!>name,value line per headline, in display
// order. Names missing from the map are skipped.
func writeHeadlines(sb *strings.Builder, order []string, headlines map[string]string) {
	for _, name := range order {
		value, ok := headlines[name]
		if !ok {
			continue
		}
		sb.WriteString(headlinePrefix)
		sb.WriteString(escapeCommas(name))
		sb.WriteByte(',')
		sb.WriteString(escapeCommas(value))
		sb.WriteByte('\n')
	}
}

// writeDataRows writes one line per row with a field for every column.
// No newline follows the last row.
func writeDataRows(sb *strings.Builder, rows, columns []string, values map[cellKey]string) {
	for i, row := range rows {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(escapeCommas(row))
		for _, col := range columns {
			sb.WriteByte(',')
			if value, ok := values[cellKey{row: row, column: col}]; ok {
				sb.WriteString(escapeCommas(value))
			}
		}
	}
}
