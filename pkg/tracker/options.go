// Package tracker ingests brokerage exports, aggregates holdings per symbol
// across sources and groups them into categories for reporting.
package tracker

import (
	"github.com/rs/zerolog"
	"github.com/ukaji3/portfolio-tracker-go/pkg/tracker/models"
)

// Options configures a run.
type Options struct {
	// Sources lists the exports to read, in order.
	Sources []models.SourceDescriptor
	// Categories maps symbols to category names. Unlisted symbols go to "Other".
	Categories models.CategoryTable
	// Basis selects the percentage denominator. Empty means BasisTotal.
	Basis models.PercentBasis
	// Logger receives per-source progress and diagnostics.
	// The zero value discards everything.
	Logger zerolog.Logger
}

// DefaultOptions returns options with no sources, an empty category table
// and a disabled logger.
func DefaultOptions() Options {
	return Options{
		Basis:  models.BasisTotal,
		Logger: zerolog.Nop(),
	}
}

// basis returns the configured basis, defaulting to BasisTotal.
func (o Options) basis() models.PercentBasis {
	if o.Basis == "" {
		return models.BasisTotal
	}
	return o.Basis
}
