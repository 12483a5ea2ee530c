package table2md

import (
	"encoding/csv"
	"io"
)

// FromCSV builds a Table from CSV text. The first record is the header.
// Records are allowed to have differing field counts so that, like the
// other constructors, misalignment surfaces from [Table.Validate] rather
// than here.
func FromCSV(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	return &Table{rows: rows}, nil
}
