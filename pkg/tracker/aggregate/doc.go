// Package aggregate turns resolved tables into per-symbol and per-category
// totals. Every function returns a fresh map and leaves its inputs untouched.
package aggregate
