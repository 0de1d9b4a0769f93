package aggregate

import "github.com/ukaji3/portfolio-tracker-go/pkg/tracker/models"

// Merge combines per-source totals into one mapping. A symbol held in
// several sources gets the sum of its values; order does not matter.
func Merge(sources ...models.SymbolTotals) models.SymbolTotals {
	out := make(models.SymbolTotals)
	for _, src := range sources {
		for sym, v := range src {
			out[sym] += v
		}
	}
	return out
}
