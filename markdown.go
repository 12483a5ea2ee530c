package table2md

import (
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

// MarkdownRenderer renders a table as a GitHub-flavored Markdown pipe table.
// It is the renderer [Table.String] and [Table.Print] use by default.
type MarkdownRenderer struct{}

// String serializes the table as markdown text, newline-terminated. The
// first row is rendered as the header, followed by a dash separator and the
// data rows. Every cell is centered to its column's maximum display width.
//
// String does not validate; see [Table.Validate].
func (t *Table) String() string {
	var sb strings.Builder
	// strings.Builder never returns a write error.
	_ = MarkdownRenderer{}.Render(&sb, t.rows)
	return sb.String()
}

// Render writes rows as a markdown table. Rows are assumed to be aligned;
// see [Table.Validate].
func (MarkdownRenderer) Render(w io.Writer, rows [][]string) error {
	if len(rows) == 0 {
		return nil
	}
	widths := columnWidths(rows)

	if err := writePipeRow(w, rows[0], widths); err != nil {
		return err
	}

	var sb strings.Builder
	sb.WriteString("|")
	for _, width := range widths {
		sb.WriteString(strings.Repeat("-", width+2))
		sb.WriteString("|")
	}
	sb.WriteString("\n")
	if _, err := io.WriteString(w, sb.String()); err != nil {
		return err
	}

	for _, row := range rows[1:] {
		if err := writePipeRow(w, row, widths); err != nil {
			return err
		}
	}
	return nil
}

func writePipeRow(w io.Writer, cells []string, widths []int) error {
	var sb strings.Builder
	sb.WriteString("|")
	for i, cell := range cells {
		width := 0
		if i < len(widths) {
			width = widths[i]
		}
		sb.WriteString(centerCell(cell, width+2))
		sb.WriteString("|")
	}
	sb.WriteString("\n")
	_, err := io.WriteString(w, sb.String())
	return err
}

// columnWidths returns the maximum display width of each column, header
// included. Columns are counted from the header row; cells beyond the
// header's length do not widen anything.
func columnWidths(rows [][]string) []int {
	if len(rows) == 0 {
		return nil
	}
	widths := make([]int, len(rows[0]))
	for _, row := range rows {
		for i, cell := range row {
			if i >= len(widths) {
				break
			}
			if w := runewidth.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}
	return widths
}

// centerCell pads s with spaces to the given display width. An odd pad
// leaves the extra space on the right.
func centerCell(s string, width int) string {
	pad := width - runewidth.StringWidth(s)
	if pad <= 0 {
		return s
	}
	left := pad / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
}
