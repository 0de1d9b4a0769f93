package parser

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMalformedValue indicates a cell that could not be read as an amount.
var ErrMalformedValue = errors.New("malformed value")

// ErrColumnNotFound indicates a required column could not be located.
var ErrColumnNotFound = errors.New("column not found")

// ColumnError reports which roles failed to resolve and the labels that
// were available.
type ColumnError struct {
	Missing []string // "symbol", "value"
	Columns []string
}

func (e *ColumnError) Error() string {
	return fmt.Sprintf("could not find %s column; available columns: [%s]",
		strings.Join(e.Missing, " or "), strings.Join(e.Columns, ", "))
}

func (e *ColumnError) Unwrap() error {
	return ErrColumnNotFound
}
