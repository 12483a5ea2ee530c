package table2md

import (
	"errors"
	"fmt"
)

// ErrInvalidData is the base error for all table construction and validation
// failures. Use errors.Is(err, ErrInvalidData) to match any of them.
var ErrInvalidData = errors.New("invalid table data")

// NoDataError reports a table with no rows at all, not even a header.
type NoDataError struct{}

func (e *NoDataError) Error() string { return "table has no rows" }

func (e *NoDataError) Unwrap() error { return ErrInvalidData }

// MisalignedRowsError reports the first data row whose cell count differs
// from the header's.
type MisalignedRowsError struct {
	HeaderLen int // cell count of the header row
	RowIndex  int // index of the offending row, header is row 0
	RowLen    int // cell count of the offending row
}

func (e *MisalignedRowsError) Error() string {
	return fmt.Sprintf("row %d has %d cells, expected %d", e.RowIndex, e.RowLen, e.HeaderLen)
}

func (e *MisalignedRowsError) Unwrap() error { return ErrInvalidData }

// KeyLookupError reports a mapping item that lacks a key present in the
// first item's header.
type KeyLookupError struct {
	Key   string // the missing header key
	Index int    // index of the offending item in the input sequence
}

func (e *KeyLookupError) Error() string {
	return fmt.Sprintf("item %d is missing key %q", e.Index, e.Key)
}

func (e *KeyLookupError) Unwrap() error { return ErrInvalidData }
