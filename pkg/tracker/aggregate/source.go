package aggregate

import (
	"errors"

	"github.com/ukaji3/portfolio-tracker-go/pkg/tracker/models"
	"github.com/ukaji3/portfolio-tracker-go/pkg/tracker/parser"
)

// SourceStats summarizes one aggregation pass.
type SourceStats struct {
	// Rows is the number of data rows read.
	Rows int `json:"rows"`
	// Symbols is the number of distinct symbols.
	Symbols int `json:"symbols"`
	// Malformed counts value cells that could not be parsed and counted as 0.
	Malformed int `json:"malformed"`
}

// Source sums the value column per symbol. Repeated symbols (multiple lots)
// add up; a malformed value contributes 0 and the row is still counted.
func Source(t models.Table, r models.Resolution) (models.SymbolTotals, SourceStats) {
	totals := make(models.SymbolTotals)
	stats := SourceStats{Rows: t.Len()}

	for _, row := range t.Rows {
		symbol := cell(row, r.Symbol)
		v, err := parser.ParseValue(cell(row, r.Value))
		if errors.Is(err, parser.ErrMalformedValue) {
			stats.Malformed++
		}
		totals[symbol] += v
	}

	stats.Symbols = len(totals)
	return totals, stats
}

func cell(row models.RawRow, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}
