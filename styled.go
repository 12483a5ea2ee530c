package table2md

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorHeader = lipgloss.Color("36")  // teal
	colorBorder = lipgloss.Color("240") // dim gray

	styleHeader = lipgloss.NewStyle().Bold(true).Foreground(colorHeader)
	styleBorder = lipgloss.NewStyle().Foreground(colorBorder)
)

// StyledRenderer is a [BoxRenderer] with ANSI colors: a bold teal header
// and dimmed borders. lipgloss degrades the styling automatically on sinks
// that don't support color, so it is safe as a general terminal renderer.
type StyledRenderer struct {
	Border BorderStyle
}

// Render writes rows as a colored bordered table. Rows are assumed to be
// aligned; see [Table.Validate]. Styles are applied to already-padded
// cells, so escape codes never skew the column widths.
func (r StyledRenderer) Render(w io.Writer, rows [][]string) error {
	header := func(s string) string { return styleHeader.Render(s) }
	border := func(s string) string { return styleBorder.Render(s) }
	return renderBox(w, rows, r.Border, header, border)
}
