package report

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"github.com/ukaji3/portfolio-tracker-go/pkg/tracker/models"
	"github.com/xuri/excelize/v2"
)

// Default report layout.
const (
	DefaultSheet       = "Portfolio"
	DefaultChartTitle  = "Portfolio Distribution"
	DefaultTitleCell   = "E2"
	DefaultChartAnchor = "E4"
	DefaultChartWidth  = 20.0 // cm
	DefaultChartHeight = 15.0 // cm
)

// Header labels of the category table.
var tableHeader = []interface{}{"Category", "Value", "Percentage"}

// DefaultChartLayout returns the standard pie chart placement.
func DefaultChartLayout() models.ChartLayout {
	return models.ChartLayout{
		Title:     DefaultChartTitle,
		TitleCell: DefaultTitleCell,
		Anchor:    DefaultChartAnchor,
		WidthCM:   DefaultChartWidth,
		HeightCM:  DefaultChartHeight,
	}
}

// Workbook writes reports to an xlsx file.
type Workbook struct {
	Path string
}

// NewWorkbook returns a sink writing to path.
func NewWorkbook(path string) *Workbook {
	return &Workbook{Path: path}
}

// WriteReport renders rep and saves it to w.Path, replacing any existing file.
func (w *Workbook) WriteReport(rep models.Report) error {
	f, err := Build(rep)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.SaveAs(w.Path); err != nil {
		return fmt.Errorf("save %s: %w", w.Path, err)
	}
	return nil
}

// Build renders rep into a new in-memory workbook with a single sheet:
// the category table in columns A-C and a pie chart of the percentage
// column. The caller owns the returned file.
func Build(rep models.Report) (*excelize.File, error) {
	sheet := rep.Sheet
	if sheet == "" {
		sheet = DefaultSheet
	}
	layout := withDefaults(rep.Chart)

	f := excelize.NewFile()
	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		f.Close()
		return nil, err
	}
	if err := writeTable(f, sheet, rep); err != nil {
		f.Close()
		return nil, fmt.Errorf("write table: %w", err)
	}
	if err := writeTitle(f, sheet, layout); err != nil {
		f.Close()
		return nil, fmt.Errorf("write title: %w", err)
	}
	if len(rep.Shares) > 0 {
		if err := f.AddChart(sheet, layout.Anchor, pieChart(sheet, len(rep.Shares), layout)); err != nil {
			f.Close()
			return nil, fmt.Errorf("add chart: %w", err)
		}
		suppressAutoTitle(f)
	}
	return f, nil
}

func withDefaults(l models.ChartLayout) models.ChartLayout {
	d := DefaultChartLayout()
	if l.Title == "" {
		l.Title = d.Title
	}
	if l.TitleCell == "" {
		l.TitleCell = d.TitleCell
	}
	if l.Anchor == "" {
		l.Anchor = d.Anchor
	}
	if l.WidthCM <= 0 {
		l.WidthCM = d.WidthCM
	}
	if l.HeightCM <= 0 {
		l.HeightCM = d.HeightCM
	}
	return l
}

// writeTable writes the header and one row per category starting at row 2.
func writeTable(f *excelize.File, sheet string, rep models.Report) error {
	if err := f.SetSheetRow(sheet, "A1", &tableHeader); err != nil {
		return err
	}
	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", "C1", headerStyle); err != nil {
		return err
	}

	for i, s := range rep.Shares {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []interface{}{s.Category, s.Total, s.Percent}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}

	if err := f.SetColWidth(sheet, "A", "A", 22); err != nil {
		return err
	}
	if err := f.SetColWidth(sheet, "B", "C", 16); err != nil {
		return err
	}
	if len(rep.Shares) == 0 {
		return nil
	}

	last := len(rep.Shares) + 1
	numFmt := CurrencyNumFmt(rep.Currency)
	valueStyle, err := f.NewStyle(&excelize.Style{CustomNumFmt: &numFmt})
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "B2", fmt.Sprintf("B%d", last), valueStyle); err != nil {
		return err
	}
	pctStyle, err := f.NewStyle(&excelize.Style{NumFmt: PercentNumFmt})
	if err != nil {
		return err
	}
	return f.SetCellStyle(sheet, "C2", fmt.Sprintf("C%d", last), pctStyle)
}

// writeTitle puts the chart title in its own cell above the chart.
func writeTitle(f *excelize.File, sheet string, l models.ChartLayout) error {
	if err := f.SetCellValue(sheet, l.TitleCell, l.Title); err != nil {
		return err
	}
	style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 16}})
	if err != nil {
		return err
	}
	return f.SetCellStyle(sheet, l.TitleCell, l.TitleCell, style)
}

// pieChart builds a pie over the percentage column with value-only data
// labels. The title lives in l.TitleCell instead.
func pieChart(sheet string, rows int, l models.ChartLayout) *excelize.Chart {
	ref := quoteSheet(sheet)
	last := rows + 1
	return &excelize.Chart{
		Type: excelize.Pie,
		Series: []excelize.ChartSeries{
			{
				Name:              fmt.Sprintf("%s!$C$1", ref),
				Categories:        fmt.Sprintf("%s!$A$2:$A$%d", ref, last),
				Values:            fmt.Sprintf("%s!$C$2:$C$%d", ref, last),
				DataLabelPosition: excelize.ChartDataLabelsPositionBestFit,
			},
		},
		Dimension: excelize.ChartDimension{
			Width:  CMToPixels(l.WidthCM),
			Height: CMToPixels(l.HeightCM),
		},
		Legend: excelize.ChartLegend{Position: "right"},
		PlotArea: excelize.ChartPlotArea{
			ShowVal:         true,
			ShowCatName:     false,
			ShowPercent:     false,
			ShowSerName:     false,
			ShowLeaderLines: false,
		},
	}
}

// chartOpen matches the opening chart element of a chart part, with or
// without a namespace prefix.
var chartOpen = regexp.MustCompile(`<((?:\w+:)?)chart>`)

// suppressAutoTitle adds autoTitleDeleted to every chart part. excelize does
// not expose the element, and without it Excel titles a single-series pie
// with the series name.
func suppressAutoTitle(f *excelize.File) {
	f.Pkg.Range(func(key, value any) bool {
		name, ok := key.(string)
		if !ok || !strings.HasPrefix(name, "xl/charts/chart") {
			return true
		}
		data, ok := value.([]byte)
		if !ok || bytes.Contains(data, []byte("autoTitleDeleted")) {
			return true
		}
		loc := chartOpen.FindSubmatchIndex(data)
		if loc == nil {
			return true
		}
		prefix := string(data[loc[2]:loc[3]])
		patched := make([]byte, 0, len(data)+64)
		patched = append(patched, data[:loc[1]]...)
		patched = append(patched, fmt.Sprintf(`<%sautoTitleDeleted val="1"></%sautoTitleDeleted>`, prefix, prefix)...)
		patched = append(patched, data[loc[1]:]...)
		f.Pkg.Store(name, patched)
		return true
	})
}

// quoteSheet returns the sheet name quoted for use in a cell reference.
func quoteSheet(name string) string {
	return "'" + strings.ReplaceAll(name, "'", "''") + "'"
}
