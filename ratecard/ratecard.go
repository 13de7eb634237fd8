/*
Package ratecard provides JSON to Go rate card conversion.

PURPOSE:
  Converts JSON pricing definitions into RateCard values. This enables
  pricing configuration without code changes - shop staff define rates
  in JSON, stored per product, and the factory creates the proper Go
  structs at read time.

JSON SCHEMA:
  {
    "name": "Standard camera kit",
    "daily_rate": "1500",
    "deposit": "5000",
    "late_fee_per_day": "500"
  }

  Amounts may be JSON numbers or strings; both decode to exact decimals.

USAGE:
  factory := ratecard.NewFactory()
  card, err := factory.Parse(product.RateCardJSON)
  charges := card.Charges(bookingPeriod, overdueDays)

SEE ALSO:
  - booking/types.go: Product.RateCardJSON
  - jobs/overdue.go: Late-fee posting
*/
package ratecard

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/meridian/rental-engine/calendar"
)

// ErrInvalidRateCard is returned for malformed or out-of-range definitions.
var ErrInvalidRateCard = errors.New("invalid rate card")

// =============================================================================
// RATE CARD
// =============================================================================

// RateCard is the parsed pricing definition for a product.
type RateCard struct {
	Name          string
	DailyRate     decimal.Decimal
	Deposit       decimal.Decimal
	LateFeePerDay decimal.Decimal
}

// rateCardJSON is the wire representation. decimal.Decimal accepts both
// JSON numbers and quoted strings.
type rateCardJSON struct {
	Name          string          `json:"name"`
	DailyRate     decimal.Decimal `json:"daily_rate"`
	Deposit       decimal.Decimal `json:"deposit"`
	LateFeePerDay decimal.Decimal `json:"late_fee_per_day"`
}

// =============================================================================
// FACTORY
// =============================================================================

// Factory parses and validates rate card JSON.
type Factory struct{}

func NewFactory() *Factory {
	return &Factory{}
}

// Parse converts a JSON definition into a RateCard.
func (f *Factory) Parse(jsonStr string) (RateCard, error) {
	var raw rateCardJSON
	if err := json.Unmarshal([]byte(jsonStr), &raw); err != nil {
		return RateCard{}, fmt.Errorf("%w: %v", ErrInvalidRateCard, err)
	}

	card := RateCard{
		Name:          raw.Name,
		DailyRate:     raw.DailyRate,
		Deposit:       raw.Deposit,
		LateFeePerDay: raw.LateFeePerDay,
	}

	if card.DailyRate.IsNegative() || card.Deposit.IsNegative() || card.LateFeePerDay.IsNegative() {
		return RateCard{}, fmt.Errorf("%w: rates must not be negative", ErrInvalidRateCard)
	}

	return card, nil
}

// =============================================================================
// CHARGES
// =============================================================================

// Charges is the money owed for one rental.
type Charges struct {
	Days    int             // Inclusive rental days charged
	Rental  decimal.Decimal // DailyRate * Days
	Deposit decimal.Decimal
	LateFee decimal.Decimal // LateFeePerDay * overdue days
	Total   decimal.Decimal // Rental + LateFee (deposit is refundable, not income)
}

// Charges computes what a rental over the period owes. overdueDays is the
// number of days past the return date (0 for an on-time return).
func (rc RateCard) Charges(period calendar.DateRange, overdueDays int) Charges {
	days := period.Length()
	rental := rc.DailyRate.Mul(decimal.NewFromInt(int64(days)))

	lateFee := decimal.Zero
	if overdueDays > 0 {
		lateFee = rc.LateFeePerDay.Mul(decimal.NewFromInt(int64(overdueDays)))
	}

	return Charges{
		Days:    days,
		Rental:  rental,
		Deposit: rc.Deposit,
		LateFee: lateFee,
		Total:   rental.Add(lateFee),
	}
}
