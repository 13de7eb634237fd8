package ratecard_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meridian/rental-engine/calendar"
	"github.com/meridian/rental-engine/ratecard"
)

func rng(start, end int) calendar.DateRange {
	return calendar.NewRange(
		calendar.NewDate(2024, time.June, start),
		calendar.NewDate(2024, time.June, end),
	)
}

func amt(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// =============================================================================
// PARSING
// =============================================================================

func TestFactory_Parse(t *testing.T) {
	card, err := ratecard.NewFactory().Parse(`{
		"name": "Standard camera kit",
		"daily_rate": "1500",
		"deposit": "5000",
		"late_fee_per_day": "500"
	}`)
	require.NoError(t, err)

	assert.Equal(t, "Standard camera kit", card.Name)
	assert.True(t, card.DailyRate.Equal(amt("1500")))
	assert.True(t, card.Deposit.Equal(amt("5000")))
	assert.True(t, card.LateFeePerDay.Equal(amt("500")))
}

func TestFactory_Parse_NumbersAndStringsBothDecode(t *testing.T) {
	card, err := ratecard.NewFactory().Parse(`{"daily_rate": 1500, "deposit": "5000"}`)
	require.NoError(t, err)

	assert.True(t, card.DailyRate.Equal(amt("1500")))
	assert.True(t, card.Deposit.Equal(amt("5000")))
	assert.True(t, card.LateFeePerDay.IsZero(), "omitted fields default to zero")
}

func TestFactory_Parse_Invalid(t *testing.T) {
	f := ratecard.NewFactory()

	_, err := f.Parse(`not json`)
	assert.ErrorIs(t, err, ratecard.ErrInvalidRateCard)

	_, err = f.Parse(`{"daily_rate": "-100"}`)
	assert.ErrorIs(t, err, ratecard.ErrInvalidRateCard)
}

// =============================================================================
// CHARGES
// =============================================================================

func TestRateCard_Charges(t *testing.T) {
	card := ratecard.RateCard{
		DailyRate:     amt("1500"),
		Deposit:       amt("5000"),
		LateFeePerDay: amt("500"),
	}

	// Six inclusive days: the 10th through the 15th.
	charges := card.Charges(rng(10, 15), 0)

	assert.Equal(t, 6, charges.Days)
	assert.True(t, charges.Rental.Equal(amt("9000")))
	assert.True(t, charges.Deposit.Equal(amt("5000")))
	assert.True(t, charges.LateFee.IsZero())
	assert.True(t, charges.Total.Equal(amt("9000")),
		"deposit is refundable, never part of the total")
}

func TestRateCard_Charges_LateFee(t *testing.T) {
	card := ratecard.RateCard{
		DailyRate:     amt("1500"),
		LateFeePerDay: amt("500"),
	}

	charges := card.Charges(rng(10, 15), 3)

	assert.True(t, charges.LateFee.Equal(amt("1500")))
	assert.True(t, charges.Total.Equal(amt("10500")))
}

func TestRateCard_Charges_SingleDay(t *testing.T) {
	card := ratecard.RateCard{DailyRate: amt("1500")}

	charges := card.Charges(rng(10, 10), 0)
	assert.Equal(t, 1, charges.Days)
	assert.True(t, charges.Rental.Equal(amt("1500")))
}
