package view

import (
	"github.com/shopspring/decimal"
)

// FormatSum renders an aggregate sum, defaulting NULL (the server summed zero
// rows) to a displayed zero.
func FormatSum(d *decimal.Decimal) string {
	if d == nil {
		return "0"
	}

	return d.String()
}

// orDash substitutes a dash for empty cell values so the table stays legible.
func orDash(s string) string {
	if s == "" {
		return "-"
	}

	return s
}

// labelOrAll renders a filter's active value, "All" when unset.
func labelOrAll(values []string) string {
	if len(values) == 0 {
		return "All"
	}

	return values[0]
}

func stringOrAll(s string) string {
	if s == "" {
		return "All"
	}

	return s
}
