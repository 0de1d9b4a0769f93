package aggregate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/ukaji3/portfolio-tracker-go/pkg/tracker/models"
)

func TestSourceSumsLots(t *testing.T) {
	table := models.NewTable([]string{"Symbol", "Value"}, [][]string{
		{"AAPL", "$100"},
		{"AAPL", "$50"},
		{"MSFT", "bad"},
	})

	totals, stats := Source(table, models.Resolution{Symbol: 0, Value: 1})

	assert.Equal(t, models.SymbolTotals{"AAPL": 150.0, "MSFT": 0.0}, totals)
	assert.Equal(t, SourceStats{Rows: 3, Symbols: 2, Malformed: 1}, stats)
}

func TestSourceSymbolsAreCaseSensitive(t *testing.T) {
	table := models.NewTable([]string{"Value", "Ticker"}, [][]string{
		{"1,000", "brk.b"},
		{"2,000", "BRK.B"},
		{"5", " BRK.B"},
	})

	totals, _ := Source(table, models.Resolution{Symbol: 1, Value: 0})

	assert.Equal(t, models.SymbolTotals{"brk.b": 1000, "BRK.B": 2000, " BRK.B": 5}, totals)
}

func TestSourceEmptyTable(t *testing.T) {
	totals, stats := Source(models.Table{}, models.Resolution{Symbol: 0, Value: 1})

	assert.Empty(t, totals)
	assert.NotNil(t, totals)
	assert.Equal(t, SourceStats{}, stats)
}

func TestSourceRowWithMissingValueCell(t *testing.T) {
	table := models.Table{
		Columns: []string{"Symbol", "Value"},
		Rows:    []models.RawRow{{"AAPL"}},
	}

	totals, stats := Source(table, models.Resolution{Symbol: 0, Value: 1})

	assert.Equal(t, models.SymbolTotals{"AAPL": 0}, totals)
	assert.Equal(t, 1, stats.Malformed)
}
