package aggregate

import (
	"math"
	"sort"

	"github.com/ukaji3/portfolio-tracker-go/pkg/tracker/models"
)

// Categorize assigns every holding to its category and sums the values.
// Symbols missing from table land in models.OtherCategory and NaN values
// count as 0.
func Categorize(holdings models.SymbolTotals, table models.CategoryTable) models.CategoryTotals {
	out := make(models.CategoryTotals)
	for sym, v := range holdings {
		if math.IsNaN(v) {
			v = 0
		}
		out[table.Lookup(sym)] += v
	}
	return out
}

// Shares returns one row per category sorted by name, with each total's
// fraction of the portfolio. With models.BasisExcludeFirst the first row is
// left out of the denominator. A zero denominator yields zero percentages.
func Shares(totals models.CategoryTotals, basis models.PercentBasis) []models.CategoryShare {
	names := make([]string, 0, len(totals))
	for name := range totals {
		names = append(names, name)
	}
	sort.Strings(names)

	shares := make([]models.CategoryShare, len(names))
	var denom float64
	for i, name := range names {
		shares[i] = models.CategoryShare{Category: name, Total: totals[name]}
		if i == 0 && basis == models.BasisExcludeFirst {
			continue
		}
		denom += totals[name]
	}

	if denom == 0 {
		return shares
	}
	for i := range shares {
		shares[i].Percent = shares[i].Total / denom
	}
	return shares
}
