// Package models defines data structures for holdings ingestion and reporting.
package models

import "strings"

// RawRow is an ordered sequence of raw field strings with no type information.
type RawRow []string

// Table is a parsed source file: column labels plus data rows.
// Every row has exactly len(Columns) fields.
type Table struct {
	// Columns holds the header labels in file order.
	Columns []string `json:"columns"`
	// Rows holds the data rows (header excluded).
	Rows []RawRow `json:"rows,omitempty"`
	// Truncated counts rows that carried more fields than the header.
	Truncated int `json:"truncated,omitempty"`
}

// NewTable builds a Table from a header and data records. Short records are
// padded with empty fields and long records are cut to the header width.
func NewTable(header []string, records [][]string) Table {
	width := len(header)
	t := Table{
		Columns: append([]string(nil), header...),
		Rows:    make([]RawRow, 0, len(records)),
	}
	for _, rec := range records {
		row := make(RawRow, width)
		if len(rec) > width {
			t.Truncated++
		}
		copy(row, rec)
		t.Rows = append(t.Rows, row)
	}
	return t
}

// Len returns the number of data rows.
func (t Table) Len() int {
	return len(t.Rows)
}

// Labels returns the non-empty column labels in file order. The blank label
// left by a trailing delimiter is not reported.
func (t Table) Labels() []string {
	var out []string
	for _, c := range t.Columns {
		if strings.TrimSpace(c) != "" {
			out = append(out, c)
		}
	}
	return out
}
