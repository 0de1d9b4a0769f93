package models

// Layout selects how the symbol and value columns of a source are located.
type Layout string

const (
	// LayoutHeuristic matches column labels against candidate substrings.
	LayoutHeuristic Layout = "heuristic"
	// LayoutFixed takes the symbol from column 0 and the value from column 1.
	LayoutFixed Layout = "fixed"
)

// Format is the container format of a source file.
type Format string

const (
	// FormatCSV is delimited text.
	FormatCSV Format = "csv"
	// FormatXLSX is an Office Open XML workbook.
	FormatXLSX Format = "xlsx"
)

// SourceDescriptor identifies one brokerage export and how to read it.
type SourceDescriptor struct {
	// Name is the display name used in logs and diagnostics.
	Name string `json:"name"`
	// Path is the input file path.
	Path string `json:"path"`
	// Format is the file format (csv or xlsx).
	Format Format `json:"format"`
	// Layout is the column resolution rule.
	Layout Layout `json:"layout"`
	// Delimiter is the CSV field delimiter.
	Delimiter rune `json:"delimiter,omitempty"`
	// Encoding is the text encoding label of a CSV file (e.g. "utf-8", "windows-1252").
	Encoding string `json:"encoding,omitempty"`
	// Sheet is the worksheet to read for xlsx sources (empty means the first sheet).
	Sheet string `json:"sheet,omitempty"`
	// SymbolMatch overrides the heuristic symbol label candidates.
	SymbolMatch []string `json:"symbol_match,omitempty"`
	// ValueMatch overrides the heuristic value label candidates.
	ValueMatch []string `json:"value_match,omitempty"`
}

// Resolution is the outcome of column resolution for one table.
type Resolution struct {
	// Symbol is the index of the symbol column.
	Symbol int `json:"symbol"`
	// Value is the index of the value column.
	Value int `json:"value"`
}
