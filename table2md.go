package table2md

import "fmt"

// Table holds tabular data: an ordered list of rows, each an ordered list of
// cell strings. The first row is the header. Construct one with [New] or one
// of the From* constructors, then render with [Table.String] or
// [Table.Print].
//
// A Table is not safe for concurrent mutation; callers that share the
// underlying row storage must synchronize externally.
type Table struct {
	rows [][]string
}

// KeyValue is a single ordered key-value pair. An item's pair order stands
// in for mapping insertion order, which Go's built-in maps do not keep.
type KeyValue struct {
	Key   string
	Value any
}

// Mappable provides ordered key-value pairs. Required by [FromMaps].
type Mappable interface {
	Pairs() []KeyValue
}

// Fielded provides an ordered list of field names.
type Fielded interface {
	Fields() []string
}

// Record is a field-labeled value: field names plus a value per field, in
// the same order. Required by [FromRecords].
type Record interface {
	Fielded
	Values() []any
}

// Serializer is a field-labeled value that formats its own cells. Required
// by [FromSerializers]. Serialize output is used verbatim, with no further
// conversion.
type Serializer interface {
	Fielded
	Serialize() []string
}

// New wraps rows in a Table without copying. The first row is the header.
// The Table aliases the caller's storage: later mutations through the
// original slices are visible in the rendered output. Use [FromRows] to
// copy instead.
func New(rows [][]string) *Table {
	return &Table{rows: rows}
}

// Rows returns the underlying row storage without copying. Mutating the
// returned slices mutates the Table.
func (t *Table) Rows() [][]string {
	return t.rows
}

// FromRows builds a Table from row-major cells of any type. The first row
// is the header. Rows are copied and every cell is converted to its display
// string: the [fmt.Stringer] result when implemented, fmt's %v rendering
// otherwise.
func FromRows[T any](rows ...[]T) *Table {
	out := make([][]string, len(rows))
	for i, row := range rows {
		cells := make([]string, len(row))
		for j, cell := range row {
			cells[j] = stringify(cell)
		}
		out[i] = cells
	}
	return &Table{rows: out}
}

// FromMaps builds a Table from ordered key-value items. The header is the
// first item's key order. For every item only the header keys are read:
// a missing key fails with a [*KeyLookupError], extra keys are ignored.
// Values are converted like in [FromRows].
func FromMaps[T Mappable](items ...T) (*Table, error) {
	pairRows := make([][]KeyValue, len(items))
	for i, item := range items {
		pairRows[i] = item.Pairs()
	}
	return fromPairs(pairRows)
}

func fromPairs(items [][]KeyValue) (*Table, error) {
	var rows [][]string
	var header []string
	for i, pairs := range items {
		if rows == nil {
			header = make([]string, len(pairs))
			for j, kv := range pairs {
				header[j] = kv.Key
			}
			rows = append(rows, header)
		}
		byKey := make(map[string]any, len(pairs))
		for _, kv := range pairs {
			byKey[kv.Key] = kv.Value
		}
		row := make([]string, len(header))
		for j, key := range header {
			v, ok := byKey[key]
			if !ok {
				return nil, &KeyLookupError{Key: key, Index: i}
			}
			row[j] = stringify(v)
		}
		rows = append(rows, row)
	}
	return &Table{rows: rows}, nil
}

// FromRecords builds a Table from field-labeled values. The header is the
// first record's field names; each row is the record's values converted
// like in [FromRows]. Records are not cross-checked: if a later record has
// a different value count, the mismatch only surfaces from
// [Table.Validate].
func FromRecords[T Record](items ...T) *Table {
	var rows [][]string
	for _, item := range items {
		if rows == nil {
			fields := item.Fields()
			header := make([]string, len(fields))
			copy(header, fields)
			rows = append(rows, header)
		}
		values := item.Values()
		row := make([]string, len(values))
		for j, v := range values {
			row[j] = stringify(v)
		}
		rows = append(rows, row)
	}
	return &Table{rows: rows}
}

// FromSerializers builds a Table from self-serializing records. The header
// is the first record's field names; each row is the record's Serialize
// output, verbatim. Like [FromRecords], cell counts are not cross-checked
// until [Table.Validate].
func FromSerializers[T Serializer](items ...T) *Table {
	var rows [][]string
	for _, item := range items {
		if rows == nil {
			fields := item.Fields()
			header := make([]string, len(fields))
			copy(header, fields)
			rows = append(rows, header)
		}
		cells := item.Serialize()
		row := make([]string, len(cells))
		copy(row, cells)
		rows = append(rows, row)
	}
	return &Table{rows: rows}
}

// Validate checks that the table is good to render: it has a header row and
// every data row has as many cells as the header. Returns a [*NoDataError]
// or [*MisalignedRowsError] (both unwrap to [ErrInvalidData]), or nil.
//
// [Table.String] does not call Validate; rendering a misaligned table
// produces misaligned output rather than an error.
func (t *Table) Validate() error {
	if len(t.rows) == 0 {
		return &NoDataError{}
	}
	headerLen := len(t.rows[0])
	for i, row := range t.rows[1:] {
		if len(row) != headerLen {
			return &MisalignedRowsError{HeaderLen: headerLen, RowIndex: i + 1, RowLen: len(row)}
		}
	}
	return nil
}

func stringify(v any) string {
	if s, ok := v.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%v", v)
}
