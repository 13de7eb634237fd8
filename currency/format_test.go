package currency_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/meridian/rental-engine/currency"
)

// Golden outputs: these exact strings appear on statements and invoices.
func TestFormatter_Format(t *testing.T) {
	f := currency.NewFormatter()

	cases := []struct {
		amount string
		want   string
	}{
		{"0", "Rs 0"},
		{"5", "Rs 5"},
		{"500", "Rs 500"},
		{"1500", "Rs 1,500"},
		{"-500", "-Rs 500"},
		{"-1500", "-Rs 1,500"},
		{"100000", "Rs 100,000"},
		{"1234567", "Rs 1,234,567"},
		{"1234567.6", "Rs 1,234,568"},
		{"999.4", "Rs 999"},
		{"999.5", "Rs 1,000"},
		{"-0.4", "Rs 0"},
	}

	for _, tc := range cases {
		t.Run(tc.want, func(t *testing.T) {
			assert.Equal(t, tc.want, f.Format(decimal.RequireFromString(tc.amount)))
		})
	}
}

func TestFormatter_CustomSymbol(t *testing.T) {
	f := &currency.Formatter{Symbol: "NPR"}
	assert.Equal(t, "NPR 2,500", f.Format(decimal.RequireFromString("2500")))
}
