package tracker

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/ukaji3/portfolio-tracker-go/pkg/tracker/aggregate"
	"github.com/ukaji3/portfolio-tracker-go/pkg/tracker/models"
	"github.com/ukaji3/portfolio-tracker-go/pkg/tracker/parser"
)

// SourceResult is the outcome of reading one source.
type SourceResult struct {
	// Name is the source name.
	Name string `json:"name"`
	// Totals holds the per-symbol sums of this source alone.
	Totals models.SymbolTotals `json:"totals"`
	// Stats summarizes the aggregation pass.
	Stats aggregate.SourceStats `json:"stats"`
	// Truncated counts rows that had more fields than the header.
	Truncated int `json:"truncated,omitempty"`
	// Skipped is set when the source contributed nothing because its
	// columns could not be resolved.
	Skipped bool `json:"skipped,omitempty"`
}

// Result is the outcome of a run.
type Result struct {
	Sources     []SourceResult         `json:"sources"`
	Holdings    models.SymbolTotals    `json:"holdings"`
	Categories  models.CategoryTotals  `json:"categories"`
	Shares      []models.CategoryShare `json:"shares"`
	Diagnostics []models.Diagnostic    `json:"diagnostics,omitempty"`
	Total       float64                `json:"total"`
}

// Run reads every source in order, merges the holdings and categorizes them.
// A source that cannot be read aborts the run with a *SourceError. A source
// whose columns cannot be resolved is skipped with a Diagnostic.
func Run(ctx context.Context, opts Options) (*Result, error) {
	if len(opts.Sources) == 0 {
		return nil, ErrNoSources
	}
	log := opts.Logger

	res := &Result{
		Sources: make([]SourceResult, 0, len(opts.Sources)),
	}
	perSource := make([]models.SymbolTotals, 0, len(opts.Sources))

	for _, d := range opts.Sources {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		sr, diag, err := readSource(d)
		if err != nil {
			return nil, err
		}
		if diag != nil {
			log.Warn().
				Str("source", d.Name).
				Strs("columns", diag.Columns).
				Msg(diag.Message)
			res.Diagnostics = append(res.Diagnostics, *diag)
		} else {
			if sr.Stats.Malformed > 0 {
				log.Debug().
					Str("source", d.Name).
					Int("malformed", sr.Stats.Malformed).
					Msg("Unparseable values counted as 0")
			}
			log.Info().
				Str("source", d.Name).
				Int("rows", sr.Stats.Rows).
				Int("symbols", sr.Stats.Symbols).
				Int("truncated", sr.Truncated).
				Msg("Read source")
		}

		res.Sources = append(res.Sources, sr)
		perSource = append(perSource, sr.Totals)
	}

	res.Holdings = aggregate.Merge(perSource...)
	res.Categories = aggregate.Categorize(res.Holdings, opts.Categories)
	res.Shares = aggregate.Shares(res.Categories, opts.basis())
	res.Total = res.Categories.Sum()

	log.Info().
		Int("symbols", len(res.Holdings)).
		Int("categories", len(res.Categories)).
		Float64("total", res.Total).
		Msg("Categorized holdings")

	return res, nil
}

// readSource loads and aggregates one source. A non-nil Diagnostic means the
// source was skipped; a non-nil error aborts the run.
func readSource(d models.SourceDescriptor) (SourceResult, *models.Diagnostic, error) {
	sr := SourceResult{Name: d.Name, Totals: models.SymbolTotals{}}

	if _, err := os.Stat(d.Path); errors.Is(err, os.ErrNotExist) {
		return sr, nil, NewSourceError(d.Name, StageLoad, fmt.Errorf("%w: %s", ErrFileNotFound, d.Path))
	}

	table, err := parser.LoadTable(d)
	if err != nil {
		return sr, nil, NewSourceError(d.Name, StageLoad, err)
	}
	sr.Truncated = table.Truncated

	// No lines at all: nothing to resolve.
	if len(table.Columns) == 0 {
		return sr, nil, nil
	}

	resolution, err := parser.ResolveColumns(table, d)
	if err != nil {
		sr.Skipped = true
		return sr, &models.Diagnostic{
			Source:  d.Name,
			Message: err.Error(),
			Columns: table.Labels(),
		}, nil
	}

	sr.Totals, sr.Stats = aggregate.Source(table, resolution)
	return sr, nil, nil
}
