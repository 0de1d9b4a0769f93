package parser

import (
	"strings"

	"github.com/ukaji3/portfolio-tracker-go/pkg/tracker/models"
)

// DefaultSymbolMatch lists the label substrings that identify the symbol
// column. Columns are scanned left to right and the first label containing
// any candidate wins.
var DefaultSymbolMatch = []string{"symbol", "ticker"}

// DefaultValueMatch lists the label substrings that identify the value column.
var DefaultValueMatch = []string{"value", "amount", "total"}

// ResolveColumns locates the symbol and value columns of t according to the
// descriptor's layout. Only the column labels (heuristic) or the column count
// (fixed) are consulted.
func ResolveColumns(t models.Table, d models.SourceDescriptor) (models.Resolution, error) {
	if d.Layout == models.LayoutFixed {
		if len(t.Columns) < 2 {
			return models.Resolution{}, &ColumnError{
				Missing: missingFixed(len(t.Columns)),
				Columns: t.Labels(),
			}
		}
		return models.Resolution{Symbol: 0, Value: 1}, nil
	}

	symbolMatch := d.SymbolMatch
	if len(symbolMatch) == 0 {
		symbolMatch = DefaultSymbolMatch
	}
	valueMatch := d.ValueMatch
	if len(valueMatch) == 0 {
		valueMatch = DefaultValueMatch
	}

	sym := matchColumn(t.Columns, symbolMatch)
	val := matchColumn(t.Columns, valueMatch)

	var missing []string
	if sym < 0 {
		missing = append(missing, "symbol")
	}
	if val < 0 {
		missing = append(missing, "value")
	}
	if len(missing) > 0 {
		return models.Resolution{}, &ColumnError{Missing: missing, Columns: t.Labels()}
	}
	return models.Resolution{Symbol: sym, Value: val}, nil
}

// matchColumn returns the index of the first column whose lower-cased label
// contains one of candidates, or -1.
func matchColumn(columns []string, candidates []string) int {
	for i, col := range columns {
		label := strings.ToLower(col)
		for _, c := range candidates {
			if strings.Contains(label, strings.ToLower(c)) {
				return i
			}
		}
	}
	return -1
}

func missingFixed(n int) []string {
	if n == 0 {
		return []string{"symbol", "value"}
	}
	return []string{"value"}
}
