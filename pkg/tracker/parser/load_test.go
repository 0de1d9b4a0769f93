package parser

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/ukaji3/portfolio-tracker-go/pkg/tracker/models"
	"golang.org/x/text/encoding/charmap"
)

func TestReadCSVRepairsHeader(t *testing.T) {
	input := "Symbol,Current Value\nAAPL,\"$1,000.00\",\nAAPL,$500,\n"
	table, err := ReadCSV(strings.NewReader(input), ',', "")
	if err != nil {
		t.Fatalf("ReadCSV failed: %v", err)
	}
	expectedCols := []string{"Symbol", "Current Value", ""}
	if !reflect.DeepEqual(table.Columns, expectedCols) {
		t.Errorf("columns = %q, expected %q", table.Columns, expectedCols)
	}
	expectedRows := []models.RawRow{{"AAPL", "$1,000.00", ""}, {"AAPL", "$500", ""}}
	if !reflect.DeepEqual(table.Rows, expectedRows) {
		t.Errorf("rows = %q, expected %q", table.Rows, expectedRows)
	}
}

func TestReadCSVPadsShortRows(t *testing.T) {
	table, err := ReadCSV(strings.NewReader("Symbol,Value\r\nMSFT,2000\r\n"), ',', "utf-8")
	if err != nil {
		t.Fatalf("ReadCSV failed: %v", err)
	}
	if len(table.Columns) != 3 {
		t.Fatalf("expected 3 columns after repair, got %q", table.Columns)
	}
	if !reflect.DeepEqual(table.Rows, []models.RawRow{{"MSFT", "2000", ""}}) {
		t.Errorf("rows = %q", table.Rows)
	}
}

func TestReadCSVLineEndings(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"lf", "Symbol,Value\nAAPL,100,\nMSFT,50,\n"},
		{"crlf", "Symbol,Value\r\nAAPL,100,\r\nMSFT,50,\r\n"},
		{"cr only", "Symbol,Value\rAAPL,100,\rMSFT,50,\r"},
		{"cr only without final terminator", "Symbol,Value\rAAPL,100,\rMSFT,50,"},
	}

	expectedCols := []string{"Symbol", "Value", ""}
	expectedRows := []models.RawRow{{"AAPL", "100", ""}, {"MSFT", "50", ""}}
	for _, tt := range tests {
		table, err := ReadCSV(strings.NewReader(tt.input), ',', "")
		if err != nil {
			t.Errorf("%s: ReadCSV failed: %v", tt.name, err)
			continue
		}
		if !reflect.DeepEqual(table.Columns, expectedCols) {
			t.Errorf("%s: columns = %q, expected %q", tt.name, table.Columns, expectedCols)
		}
		if !reflect.DeepEqual(table.Rows, expectedRows) {
			t.Errorf("%s: rows = %q, expected %q", tt.name, table.Rows, expectedRows)
		}
	}
}

func TestReadCSVEmpty(t *testing.T) {
	for _, input := range []string{"", "\n", "   \n\n"} {
		table, err := ReadCSV(strings.NewReader(input), ',', "")
		if err != nil {
			t.Errorf("ReadCSV(%q) failed: %v", input, err)
		}
		if len(table.Columns) != 0 || table.Len() != 0 {
			t.Errorf("ReadCSV(%q) = %+v, expected empty table", input, table)
		}
	}
}

func TestReadCSVHeaderOnly(t *testing.T) {
	table, err := ReadCSV(strings.NewReader("Symbol,Value\n"), ',', "")
	if err != nil {
		t.Fatalf("ReadCSV failed: %v", err)
	}
	if table.Len() != 0 || len(table.Columns) != 3 {
		t.Errorf("got %+v", table)
	}
}

func TestReadCSVDelimiterAndEncoding(t *testing.T) {
	encoded, err := charmap.Windows1252.NewEncoder().String("Symbol;Valeur (€)\nNESN;1200\n")
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	table, err := ReadCSV(strings.NewReader(encoded), ';', "windows-1252")
	if err != nil {
		t.Fatalf("ReadCSV failed: %v", err)
	}
	if table.Columns[1] != "Valeur (€)" {
		t.Errorf("expected decoded label, got %q", table.Columns[1])
	}
	if table.Rows[0][0] != "NESN" || table.Rows[0][1] != "1200" {
		t.Errorf("unexpected row %q", table.Rows[0])
	}
}

func TestReadCSVStripsBOM(t *testing.T) {
	table, err := ReadCSV(strings.NewReader("\ufeffSymbol,Value,\nA,1,\n"), ',', "utf-8-sig")
	if err != nil {
		t.Fatalf("ReadCSV failed: %v", err)
	}
	if table.Columns[0] != "Symbol" {
		t.Errorf("BOM not stripped: %q", table.Columns[0])
	}
}

func TestLookupEncoding(t *testing.T) {
	for _, label := range []string{"", "UTF-8", "utf-8-sig", "latin1", "windows-1252", "shift_jis"} {
		if _, err := LookupEncoding(label); err != nil {
			t.Errorf("LookupEncoding(%q) failed: %v", label, err)
		}
	}
	if _, err := LookupEncoding("klingon"); err == nil {
		t.Error("expected error for unknown encoding")
	}
}

func TestLoadTable(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ib.csv")
	if err := os.WriteFile(path, []byte("Symbol,Position Value\nMSFT,2000\n"), 0644); err != nil {
		t.Fatal(err)
	}

	table, err := LoadTable(models.SourceDescriptor{Path: path})
	if err != nil {
		t.Fatalf("LoadTable failed: %v", err)
	}
	if table.Len() != 1 {
		t.Errorf("expected 1 row, got %d", table.Len())
	}

	_, err = LoadTable(models.SourceDescriptor{Path: filepath.Join(dir, "missing.csv")})
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected os.ErrNotExist, got %v", err)
	}

	_, err = LoadTable(models.SourceDescriptor{Path: path, Format: "pdf"})
	if err == nil {
		t.Error("expected error for unsupported format")
	}
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path     string
		expected models.Format
	}{
		{"positions.csv", models.FormatCSV},
		{"positions.CSV", models.FormatCSV},
		{"positions.txt", models.FormatCSV},
		{"positions.xlsx", models.FormatXLSX},
		{"Positions.XLSX", models.FormatXLSX},
	}
	for _, tt := range tests {
		if got := FormatFromPath(tt.path); got != tt.expected {
			t.Errorf("FormatFromPath(%q) = %q, expected %q", tt.path, got, tt.expected)
		}
	}
}
