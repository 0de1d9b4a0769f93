package parser

import (
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

var valueCleaner = strings.NewReplacer("$", "", ",", "")

// ParseValue converts a raw cell into an amount. Text has "$" and ","
// removed and surrounding whitespace trimmed before conversion; numeric
// inputs are returned as is. Text or decimals too large for a float64 are
// malformed. On failure it returns 0 and an error wrapping
// ErrMalformedValue.
func ParseValue(v any) (float64, error) {
	switch x := v.(type) {
	case string:
		s := strings.TrimSpace(valueCleaner.Replace(x))
		d, err := decimal.NewFromString(s)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrMalformedValue, x)
		}
		return finite(d, x)
	case float64:
		return x, nil
	case float32:
		return float64(x), nil
	case int:
		return float64(x), nil
	case int64:
		return float64(x), nil
	case int32:
		return float64(x), nil
	case decimal.Decimal:
		return finite(x, x.String())
	default:
		return 0, fmt.Errorf("%w: unsupported cell type %T", ErrMalformedValue, v)
	}
}

// finite converts d, rejecting amounts that do not fit in a float64.
func finite(d decimal.Decimal, raw string) (float64, error) {
	f := d.InexactFloat64()
	if math.IsInf(f, 0) {
		return 0, fmt.Errorf("%w: %q out of range", ErrMalformedValue, raw)
	}
	return f, nil
}

// ValueOrZero is ParseValue with the error dropped.
func ValueOrZero(v any) float64 {
	f, _ := ParseValue(v)
	return f
}
