package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/ukaji3/portfolio-tracker-go/pkg/tracker/models"
)

// Console writes a plain-text category breakdown.
type Console struct {
	W io.Writer
}

// NewConsole returns a sink writing to w.
func NewConsole(w io.Writer) *Console {
	return &Console{W: w}
}

// WriteReport prints one line per category in name order followed by the
// grand total.
func (c *Console) WriteReport(rep models.Report) error {
	var b strings.Builder
	b.WriteString("PORTFOLIO BY CATEGORY\n")
	b.WriteString(strings.Repeat("=", 50) + "\n")
	for _, s := range rep.Shares {
		fmt.Fprintf(&b, "%-20s %18s %9.2f%%\n", s.Category, FormatAmount(s.Total, rep.Currency), s.Percent*100)
	}
	b.WriteString(strings.Repeat("-", 50) + "\n")
	fmt.Fprintf(&b, "%-20s %18s\n", "Total Portfolio", FormatAmount(rep.Total, rep.Currency))

	_, err := io.WriteString(c.W, b.String())
	return err
}
