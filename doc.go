// Package table2md renders tabular data as GitHub-flavored Markdown tables.
//
// A [Table] is an ordered list of rows, each an ordered list of cell strings.
// The first row is the header. Tables are built from one of several input
// shapes, validated, and serialized with cells padded so columns line up
// visually:
//
//	| constant | value |
//	|----------|-------|
//	|    e     | 2.71  |
//	|    pi    | 3.14  |
//	|  sqrt2   | 1.41  |
//
// # Construction
//
// [New] wraps an existing [][]string without copying; the caller keeps
// mutation rights (and risk). Every other constructor copies its input:
//
//   - [FromRows] — row-major cells of any type, converted to strings
//   - [FromMaps] — ordered key-value items implementing [Mappable]
//   - [FromRecords] — field-labeled values implementing [Record]
//   - [FromSerializers] — records that format their own cells ([Serializer])
//   - [FromYAML] — a YAML sequence of mappings
//   - [FromCSV] — CSV text
//
// Cell values are converted with their [fmt.Stringer] implementation when
// present, and fmt's %v verb otherwise. [FromSerializers] skips conversion
// entirely and uses each record's Serialize output verbatim.
//
// # Validation
//
// Construction does not cross-check row lengths. [Table.Validate] reports a
// [*NoDataError] for a table with no rows and a [*MisalignedRowsError] for
// the first row whose cell count differs from the header's. [Table.String]
// does not validate; call Validate first (or use [Table.Print], which does)
// if the input shape is not trusted.
//
// # Rendering
//
// [Table.String] produces the markdown text: every cell is centered to its
// column's maximum display width, with the spare space of an odd pad placed
// on the right. Widths are measured with go-runewidth, so full-width
// characters count as two columns.
//
// Alternative renderers implement [Renderer] and plug into [Table.Print]
// via [WithRenderer]:
//
//   - [MarkdownRenderer] — the default
//   - [BoxRenderer] — bordered terminal table ([BorderRounded],
//     [BorderASCII], [BorderHeavy], [BorderDouble])
//   - [StyledRenderer] — BoxRenderer with ANSI colors via lipgloss
//
// # Printing
//
// [Table.Print] validates, renders, and writes:
//
//	t.Print()                                  // markdown to stdout
//	t.Print(table2md.WithOutput(f),
//	        table2md.WithEnd("\n"),
//	        table2md.WithFlush(true))
//
// WithFlush flushes the sink afterward if it implements [Flusher].
//
// # Errors
//
// All validation and construction failures unwrap to [ErrInvalidData]:
//
//	if errors.Is(err, table2md.ErrInvalidData) { ... }
//
// The concrete types [NoDataError], [MisalignedRowsError], and
// [KeyLookupError] carry diagnostics for errors.As.
package table2md
