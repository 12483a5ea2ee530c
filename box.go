package table2md

import (
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

// BorderStyle controls the border characters of a [BoxRenderer].
type BorderStyle int

const (
	BorderRounded BorderStyle = iota // ╭─╮╰╯│┬┴├┤┼
	BorderASCII                      // +-+|
	BorderHeavy                      // ┏━┓┗┛┃┳┻┣┫╋
	BorderDouble                     // ╔═╗╚╝║╦╩╠╣╬
)

type borderChars struct {
	topLeft, topRight, bottomLeft, bottomRight string
	horizontal, vertical                       string
	topTee, bottomTee, leftTee, rightTee       string
	cross                                      string
}

var borderSets = map[BorderStyle]borderChars{
	BorderRounded: {
		topLeft: "╭", topRight: "╮", bottomLeft: "╰", bottomRight: "╯",
		horizontal: "─", vertical: "│",
		topTee: "┬", bottomTee: "┴", leftTee: "├", rightTee: "┤",
		cross: "┼",
	},
	BorderASCII: {
		topLeft: "+", topRight: "+", bottomLeft: "+", bottomRight: "+",
		horizontal: "-", vertical: "|",
		topTee: "+", bottomTee: "+", leftTee: "+", rightTee: "+",
		cross: "+",
	},
	BorderHeavy: {
		topLeft: "┏", topRight: "┓", bottomLeft: "┗", bottomRight: "┛",
		horizontal: "━", vertical: "┃",
		topTee: "┳", bottomTee: "┻", leftTee: "┣", rightTee: "┫",
		cross: "╋",
	},
	BorderDouble: {
		topLeft: "╔", topRight: "╗", bottomLeft: "╚", bottomRight: "╝",
		horizontal: "═", vertical: "║",
		topTee: "╦", bottomTee: "╩", leftTee: "╠", rightTee: "╣",
		cross: "╬",
	},
}

// BoxRenderer renders a table with box-drawing borders for terminal
// display: the header row centered, data rows left-aligned, rows separated
// from the header by a rule. Plug it into [Table.Print] with
// [WithRenderer].
type BoxRenderer struct {
	Border BorderStyle
}

// Render writes rows as a bordered table. Rows are assumed to be aligned;
// see [Table.Validate].
func (r BoxRenderer) Render(w io.Writer, rows [][]string) error {
	return renderBox(w, rows, r.Border, nil, nil)
}

// renderBox draws the bordered table. cellStyle and borderStyle, when
// non-nil, wrap the already-padded header cells and the border strings, so
// ANSI codes never affect width math.
func renderBox(w io.Writer, rows [][]string, style BorderStyle, cellStyle, borderStyle func(string) string) error {
	if len(rows) == 0 {
		return nil
	}
	bc := borderSets[style]
	widths := columnWidths(rows)

	if err := drawBoxLine(w, widths, bc.topLeft, bc.horizontal, bc.topTee, bc.topRight, borderStyle); err != nil {
		return err
	}
	if err := drawBoxRow(w, rows[0], widths, bc.vertical, true, cellStyle, borderStyle); err != nil {
		return err
	}
	if len(rows) > 1 {
		if err := drawBoxLine(w, widths, bc.leftTee, bc.horizontal, bc.cross, bc.rightTee, borderStyle); err != nil {
			return err
		}
	}
	for _, row := range rows[1:] {
		if err := drawBoxRow(w, row, widths, bc.vertical, false, nil, borderStyle); err != nil {
			return err
		}
	}
	return drawBoxLine(w, widths, bc.bottomLeft, bc.horizontal, bc.bottomTee, bc.bottomRight, borderStyle)
}

func drawBoxLine(w io.Writer, widths []int, left, fill, mid, right string, style func(string) string) error {
	var sb strings.Builder
	sb.WriteString(left)
	for i, width := range widths {
		sb.WriteString(strings.Repeat(fill, width+2))
		if i < len(widths)-1 {
			sb.WriteString(mid)
		}
	}
	sb.WriteString(right)
	line := sb.String()
	if style != nil {
		line = style(line)
	}
	_, err := io.WriteString(w, line+"\n")
	return err
}

func drawBoxRow(w io.Writer, cells []string, widths []int, vert string, center bool, cellStyle, borderStyle func(string) string) error {
	if borderStyle != nil {
		vert = borderStyle(vert)
	}
	var sb strings.Builder
	sb.WriteString(vert)
	for i, width := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		var padded string
		if center {
			padded = centerCell(cell, width+2)
		} else {
			padded = " " + leftCell(cell, width) + " "
		}
		if cellStyle != nil {
			padded = cellStyle(padded)
		}
		sb.WriteString(padded)
		sb.WriteString(vert)
	}
	_, err := io.WriteString(w, sb.String()+"\n")
	return err
}

func leftCell(s string, width int) string {
	pad := width - runewidth.StringWidth(s)
	if pad <= 0 {
		return s
	}
	return s + strings.Repeat(" ", pad)
}
