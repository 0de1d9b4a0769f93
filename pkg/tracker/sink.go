package tracker

import (
	"fmt"

	"github.com/ukaji3/portfolio-tracker-go/pkg/tracker/models"
)

// ReportSink receives the categorized report.
type ReportSink interface {
	WriteReport(rep models.Report) error
}

// Report builds the report handed to sinks. Empty sheet or currency are left
// for the sink to default.
func (r *Result) Report(sheet, currency string, chart models.ChartLayout) models.Report {
	return models.Report{
		Sheet:    sheet,
		Currency: currency,
		Shares:   append([]models.CategoryShare(nil), r.Shares...),
		Total:    r.Total,
		Chart:    chart,
	}
}

// Emit writes rep to every sink in order and stops at the first failure.
func Emit(rep models.Report, sinks ...ReportSink) error {
	for i, s := range sinks {
		if err := s.WriteReport(rep); err != nil {
			return fmt.Errorf("report sink %d (%T): %w", i+1, s, err)
		}
	}
	return nil
}
