package models

// Diagnostic is a non-fatal problem reported for one source.
type Diagnostic struct {
	// Source is the source name.
	Source string `json:"source"`
	// Message describes the problem.
	Message string `json:"message"`
	// Columns lists the column labels available in the source, when relevant.
	Columns []string `json:"columns,omitempty"`
}

// ChartLayout describes the pie chart placed next to the category table.
type ChartLayout struct {
	// Title is written into TitleCell rather than onto the chart itself.
	Title string `json:"title"`
	// TitleCell is the cell holding the title (e.g. "E2").
	TitleCell string `json:"title_cell"`
	// Anchor is the top-left cell of the chart (e.g. "E4").
	Anchor string `json:"anchor"`
	// WidthCM is the chart width in centimetres.
	WidthCM float64 `json:"width_cm"`
	// HeightCM is the chart height in centimetres.
	HeightCM float64 `json:"height_cm"`
}

// Report is the categorized result handed to a report sink.
type Report struct {
	// Sheet is the worksheet name.
	Sheet string `json:"sheet"`
	// Currency is the ISO 4217 code used to format amounts.
	Currency string `json:"currency"`
	// Shares holds one row per category, sorted by name.
	Shares []CategoryShare `json:"shares"`
	// Total is the grand total over all categories.
	Total float64 `json:"total"`
	// Chart is the pie chart layout.
	Chart ChartLayout `json:"chart"`
}
