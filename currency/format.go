/*
Package currency formats decimal amounts for display.

PURPOSE:
  The dashboards render all money the same way: "Rs" symbol, no decimal
  places, comma thousands grouping. The formatter is locale-fixed on
  purpose - statements and invoices must render identically everywhere,
  so golden-output tests can pin exact strings.

EXAMPLES:
  1500      -> "Rs 1,500"
  -500      -> "-Rs 500"
  1234567.6 -> "Rs 1,234,568"   (rounded half away from zero)
*/
package currency

import (
	"strings"

	"github.com/shopspring/decimal"
)

// DefaultSymbol is the currency symbol used across the system.
const DefaultSymbol = "Rs"

// Formatter renders decimal amounts as display strings.
type Formatter struct {
	Symbol string
}

// NewFormatter returns a formatter with the default symbol.
func NewFormatter() *Formatter {
	return &Formatter{Symbol: DefaultSymbol}
}

// Format renders the amount with zero decimal places and comma grouping.
// Negative amounts carry the sign ahead of the symbol: "-Rs 500".
func (f *Formatter) Format(amount decimal.Decimal) string {
	rounded := amount.Round(0)

	sign := ""
	if rounded.IsNegative() {
		sign = "-"
		rounded = rounded.Neg()
	}

	return sign + f.Symbol + " " + groupThousands(rounded.String())
}

// groupThousands inserts commas into a non-negative integer string.
func groupThousands(digits string) string {
	n := len(digits)
	if n <= 3 {
		return digits
	}

	var b strings.Builder
	head := n % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < n; i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
