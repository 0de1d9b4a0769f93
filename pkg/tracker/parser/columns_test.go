package parser

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/ukaji3/portfolio-tracker-go/pkg/tracker/models"
)

func TestResolveColumnsHeuristic(t *testing.T) {
	tests := []struct {
		name    string
		columns []string
		symbol  int
		value   int
		missing []string
	}{
		{"fidelity", []string{"Account Number", "Account Name", "Symbol", "Description", "Quantity", "Last Price", "Current Value", "Cost Basis Total", ""}, 2, 6, nil},
		{"ticker and amount", []string{"Ticker", "Amount"}, 0, 1, nil},
		{"case insensitive", []string{"SYMBOL", "MARKET VALUE"}, 0, 1, nil},
		{"first match wins", []string{"Total Gain", "Symbol", "Current Value"}, 1, 0, nil},
		{"symbol before ticker by column order", []string{"Ticker", "Symbol", "Value"}, 0, 2, nil},
		{"no value column", []string{"Ticker", "Price"}, 0, 0, []string{"value"}},
		{"no symbol column", []string{"Name", "Value"}, 0, 0, []string{"symbol"}},
		{"nothing matches", []string{"a", "b"}, 0, 0, []string{"symbol", "value"}},
		{"no columns", nil, 0, 0, []string{"symbol", "value"}},
	}

	for _, tt := range tests {
		table := models.Table{Columns: tt.columns}
		res, err := ResolveColumns(table, models.SourceDescriptor{Layout: models.LayoutHeuristic})
		if tt.missing != nil {
			var colErr *ColumnError
			if !errors.As(err, &colErr) {
				t.Errorf("%s: expected ColumnError, got %v", tt.name, err)
				continue
			}
			if !errors.Is(err, ErrColumnNotFound) {
				t.Errorf("%s: expected ErrColumnNotFound", tt.name)
			}
			if !reflect.DeepEqual(colErr.Missing, tt.missing) {
				t.Errorf("%s: missing = %v, expected %v", tt.name, colErr.Missing, tt.missing)
			}
			if !reflect.DeepEqual(colErr.Columns, tt.columns) {
				t.Errorf("%s: columns = %v, expected %v", tt.name, colErr.Columns, tt.columns)
			}
			continue
		}
		if err != nil {
			t.Errorf("%s: unexpected error: %v", tt.name, err)
			continue
		}
		if res.Symbol != tt.symbol || res.Value != tt.value {
			t.Errorf("%s: got (%d, %d), expected (%d, %d)", tt.name, res.Symbol, res.Value, tt.symbol, tt.value)
		}
	}
}

func TestResolveColumnsIgnoresRows(t *testing.T) {
	table := models.Table{
		Columns: []string{"Ticker", "Price"},
		Rows:    []models.RawRow{{"symbol", "value"}},
	}
	if _, err := ResolveColumns(table, models.SourceDescriptor{Layout: models.LayoutHeuristic}); !errors.Is(err, ErrColumnNotFound) {
		t.Errorf("expected ErrColumnNotFound, got %v", err)
	}
}

func TestResolveColumnsCustomMatch(t *testing.T) {
	table := models.Table{Columns: []string{"Instrument", "Marktwert"}}
	d := models.SourceDescriptor{
		Layout:      models.LayoutHeuristic,
		SymbolMatch: []string{"instrument"},
		ValueMatch:  []string{"WERT"},
	}
	res, err := ResolveColumns(table, d)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Symbol != 0 || res.Value != 1 {
		t.Errorf("got %+v", res)
	}
}

func TestResolveColumnsFixed(t *testing.T) {
	tests := []struct {
		columns []string
		ok      bool
	}{
		{[]string{"Financial Instrument", "Position Value", "Extra", ""}, true},
		{[]string{"x", "y"}, true},
		{[]string{"only"}, false},
		{nil, false},
	}

	for _, tt := range tests {
		res, err := ResolveColumns(models.Table{Columns: tt.columns}, models.SourceDescriptor{Layout: models.LayoutFixed})
		if tt.ok {
			if err != nil || res.Symbol != 0 || res.Value != 1 {
				t.Errorf("columns %v: got %+v, %v", tt.columns, res, err)
			}
		} else if !errors.Is(err, ErrColumnNotFound) {
			t.Errorf("columns %v: expected ErrColumnNotFound, got %v", tt.columns, err)
		}
	}
}

func TestColumnErrorMessage(t *testing.T) {
	err := &ColumnError{Missing: []string{"value"}, Columns: []string{"Ticker", "Price"}}
	expected := "could not find value column; available columns: [Ticker, Price]"
	if err.Error() != expected {
		t.Errorf("got %q, expected %q", err.Error(), expected)
	}
}

func TestResolveColumnsReportsRepairedHeaderLabels(t *testing.T) {
	table, err := ReadCSV(strings.NewReader("Ticker,Price\nAAPL,10\n"), ',', "")
	if err != nil {
		t.Fatalf("ReadCSV failed: %v", err)
	}

	_, err = ResolveColumns(table, models.SourceDescriptor{Layout: models.LayoutHeuristic})
	var colErr *ColumnError
	if !errors.As(err, &colErr) {
		t.Fatalf("expected ColumnError, got %v", err)
	}
	if expected := []string{"Ticker", "Price"}; !reflect.DeepEqual(colErr.Columns, expected) {
		t.Errorf("columns = %q, expected %q", colErr.Columns, expected)
	}
	if msg := err.Error(); !strings.HasSuffix(msg, "available columns: [Ticker, Price]") {
		t.Errorf("unexpected message %q", msg)
	}
}
