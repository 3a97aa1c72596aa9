// Package report prints the forecast table views to the console.
package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/eunmann/sortcast/pkg/forecast"
)

// Section header lines preceding each table view.
const (
	SecondsHeader = "== Quadratic sorts — seconds =="
	ClockHeader   = "== Quadratic sorts — HH:MM:SS =="
)

// WriteSeconds prints the raw predicted-seconds view: the size column plus
// one column per algorithm, one row per target size, no row index.
func WriteSeconds(w io.Writer, rows []forecast.Row) {
	fmt.Fprintf(w, "\n%s\n", SecondsHeader)

	table := newTable(w)
	for _, row := range rows {
		cells := []string{strconv.Itoa(row.Size)}
		for _, alg := range forecast.Algorithms {
			cells = append(cells, strconv.FormatFloat(row.Seconds[alg], 'g', -1, 64))
		}
		table.Append(cells)
	}
	table.Render()
}

// WriteClock prints the formatted HH:MM:SS view of the same rows.
func WriteClock(w io.Writer, rows []forecast.Row) {
	fmt.Fprintf(w, "\n%s\n", ClockHeader)

	table := newTable(w)
	for _, row := range rows {
		cells := []string{strconv.Itoa(row.Size)}
		for _, alg := range forecast.Algorithms {
			cells = append(cells, row.Clock[alg])
		}
		table.Append(cells)
	}
	table.Render()
}

// newTable configures a borderless right-aligned table with the fixed
// column set: N plus the algorithms in declared order.
func newTable(w io.Writer) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetHeader(append([]string{"N"}, forecast.Algorithms...))
	table.SetAutoFormatHeaders(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_RIGHT)
	table.SetAlignment(tablewriter.ALIGN_RIGHT)
	table.SetBorder(false)
	table.SetHeaderLine(false)
	table.SetColumnSeparator("")
	table.SetTablePadding("  ")
	table.SetNoWhiteSpace(true)
	return table
}
