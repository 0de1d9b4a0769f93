package report

import (
	"math"
	"strings"

	"github.com/Rhymond/go-money"
)

// DefaultCurrency is used when a report does not name a known currency.
const DefaultCurrency = money.USD

// PercentNumFmt is the built-in Excel number format "0.00%".
const PercentNumFmt = 10

func currency(code string) *money.Currency {
	if c := money.GetCurrency(code); c != nil {
		return c
	}
	return money.GetCurrency(DefaultCurrency)
}

// FormatAmount renders v in the currency's display format, e.g. "$1,500.00".
func FormatAmount(v float64, code string) string {
	c := currency(code)
	minor := math.Round(v * math.Pow10(c.Fraction))
	return money.New(int64(minor), c.Code).Display()
}

// CurrencyNumFmt builds an Excel custom number format for the currency,
// e.g. `"$"#,##0.00` for USD.
func CurrencyNumFmt(code string) string {
	c := currency(code)
	digits := "#,##0"
	if c.Fraction > 0 {
		digits += "." + strings.Repeat("0", c.Fraction)
	}
	s := strings.Replace(c.Template, "1", digits, 1)
	return strings.Replace(s, "$", `"`+c.Grapheme+`"`, 1)
}
