package models

import (
	"fmt"
	"sort"
)

// OtherCategory is the catch-all category for unlisted symbols.
const OtherCategory = "Other"

// SymbolTotals maps a symbol (case-sensitive, unnormalized) to its total value.
type SymbolTotals map[string]float64

// Symbols returns the keys in sorted order.
func (s SymbolTotals) Symbols() []string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Clone returns an independent copy.
func (s SymbolTotals) Clone() SymbolTotals {
	out := make(SymbolTotals, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// CategoryTotals maps a category name to its total value.
type CategoryTotals map[string]float64

// Sum returns the grand total over all categories.
func (c CategoryTotals) Sum() float64 {
	var total float64
	for _, v := range c {
		total += v
	}
	return total
}

// CategoryShare is one category row of the final report.
type CategoryShare struct {
	// Category is the category name.
	Category string `json:"category"`
	// Total is the summed value of the category's holdings.
	Total float64 `json:"total"`
	// Percent is the share of the portfolio as a fraction (1 == 100%).
	Percent float64 `json:"percent"`
}

// PercentBasis selects the denominator used for category shares.
type PercentBasis string

const (
	// BasisTotal divides by the sum of all category totals.
	BasisTotal PercentBasis = "total"
	// BasisExcludeFirst divides by the sum of all totals except the first row,
	// matching the legacy spreadsheet output.
	BasisExcludeFirst PercentBasis = "exclude-first"
)

// CategoryTable maps symbols to user-defined categories.
// The zero value classifies everything as OtherCategory.
type CategoryTable struct {
	bySymbol map[string]string
	names    []string
}

// NewCategoryTable builds a lookup from category name to symbols.
// A symbol listed under two categories is an error.
func NewCategoryTable(categories map[string][]string) (CategoryTable, error) {
	t := CategoryTable{bySymbol: make(map[string]string)}
	names := make([]string, 0, len(categories))
	for name := range categories {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		for _, sym := range categories[name] {
			if prev, ok := t.bySymbol[sym]; ok && prev != name {
				return CategoryTable{}, fmt.Errorf("symbol %q listed in both %q and %q", sym, prev, name)
			}
			t.bySymbol[sym] = name
		}
	}
	t.names = names
	return t, nil
}

// Lookup returns the category of symbol, or OtherCategory.
func (t CategoryTable) Lookup(symbol string) string {
	if name, ok := t.bySymbol[symbol]; ok {
		return name
	}
	return OtherCategory
}

// Names returns the configured category names in sorted order.
func (t CategoryTable) Names() []string {
	return append([]string(nil), t.names...)
}

// Len returns the number of classified symbols.
func (t CategoryTable) Len() int {
	return len(t.bySymbol)
}
