package output

import (
	"io"

	"github.com/olekukonko/tablewriter"
)

// TableRenderer is implemented by types that can render themselves as a table.
type TableRenderer interface {
	Headers() []string
	Rows() [][]string
}

// PrintTable writes data as a borderless, left aligned table.
func PrintTable(w io.Writer, data TableRenderer) error {
	table := tablewriter.NewWriter(w)
	table.SetHeader(data.Headers())

	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("  ")
	table.SetNoWhiteSpace(true)

	table.AppendBulk(data.Rows())
	table.Render()
	return nil
}

// Details is an ordered list of field/value pairs rendered as a two column
// table. whoami and platform use it for their table view.
type Details struct {
	rows [][]string
}

// Add appends a field. Empty values are shown as "-".
func (d *Details) Add(field, value string) *Details {
	if value == "" {
		value = "-"
	}
	d.rows = append(d.rows, []string{field, value})
	return d
}

// Headers implements TableRenderer.
func (d *Details) Headers() []string {
	return []string{"Field", "Value"}
}

// Rows implements TableRenderer.
func (d *Details) Rows() [][]string {
	return d.rows
}
