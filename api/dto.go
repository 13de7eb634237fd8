/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  Defines the JSON structures for API communication. These types decouple
  the internal domain model from the external API contract, allowing:
  - Field renaming without breaking clients
  - API-specific validation
  - Version evolution

NAMING CONVENTION:
  - *DTO: Response types returned to clients
  - *Request: Request body types from clients

DATES:
  All calendar dates cross the wire as "YYYY-MM-DD" strings. Timestamps
  use RFC3339.

MONEY:
  Amounts are serialized as exact decimal strings ("1500"), with a
  parallel *_display field ("Rs 1,500") rendered by the currency
  formatter so every client shows money identically.

VALIDATION:
  Request types carry validate struct tags (go-playground/validator);
  handlers run them before touching domain logic.

SEE ALSO:
  - handlers.go: Uses these types
  - currency/format.go: Display rendering
*/
package api

import (
	"time"

	"github.com/meridian/rental-engine/booking"
	"github.com/meridian/rental-engine/currency"
	"github.com/meridian/rental-engine/ledger"
)

// =============================================================================
// PRODUCT TYPES
// =============================================================================

// ProductDTO represents a rentable product in API responses.
type ProductDTO struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	RateCard  string `json:"rate_card,omitempty"`
	CreatedAt string `json:"created_at,omitempty"`
}

// CreateProductRequest is the request to create a product.
type CreateProductRequest struct {
	ID       string `json:"id"`
	Name     string `json:"name" validate:"required"`
	RateCard string `json:"rate_card,omitempty"`
}

// =============================================================================
// BOOKING TYPES
// =============================================================================

// BookingDTO represents a booking in API responses.
type BookingDTO struct {
	ID         string `json:"id"`
	ProductID  string `json:"product_id"`
	CustomerID string `json:"customer_id,omitempty"`
	PickupDate string `json:"pickup_date"`
	ReturnDate string `json:"return_date"`
	Status     string `json:"status"`
	Overdue    bool   `json:"overdue,omitempty"`
	Notes      string `json:"notes,omitempty"`
	CreatedAt  string `json:"created_at,omitempty"`
	UpdatedAt  string `json:"updated_at,omitempty"`
}

// CreateBookingRequest is the request to reserve a product.
type CreateBookingRequest struct {
	ProductID  string `json:"product_id" validate:"required"`
	CustomerID string `json:"customer_id"`
	PickupDate string `json:"pickup_date" validate:"required"`
	ReturnDate string `json:"return_date" validate:"required"`
	Notes      string `json:"notes"`
}

// RescheduleBookingRequest is the request to move a booking's dates.
type RescheduleBookingRequest struct {
	PickupDate string `json:"pickup_date" validate:"required"`
	ReturnDate string `json:"return_date" validate:"required"`
}

// ReturnBookingRequest closes out a rental. When AccountID is set and the
// product carries a rate card, the rental charge (and late fee, if the
// booking ran overdue) is posted to that account's ledger.
type ReturnBookingRequest struct {
	AccountID string `json:"account_id,omitempty"`
}

// AvailabilityDTO is the pre-submit conflict hint for a candidate range.
type AvailabilityDTO struct {
	ProductID    string `json:"product_id"`
	PickupDate   string `json:"pickup_date"`
	ReturnDate   string `json:"return_date"`
	Available    bool   `json:"available"`
	ConflictWith string `json:"conflict_with,omitempty"`
}

// ChargesDTO is the computed money owed for one rental.
type ChargesDTO struct {
	Days           int    `json:"days"`
	Rental         string `json:"rental"`
	RentalDisplay  string `json:"rental_display"`
	Deposit        string `json:"deposit"`
	DepositDisplay string `json:"deposit_display"`
	LateFee        string `json:"late_fee"`
	LateFeeDisplay string `json:"late_fee_display"`
	Total          string `json:"total"`
	TotalDisplay   string `json:"total_display"`
}

// =============================================================================
// LEDGER TYPES
// =============================================================================

// AccountDTO represents a ledger account.
type AccountDTO struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Kind           string `json:"kind"`
	OpeningBalance string `json:"opening_balance"`
	CreatedAt      string `json:"created_at,omitempty"`
}

// CreateAccountRequest is the request to create an account.
type CreateAccountRequest struct {
	ID             string `json:"id"`
	Name           string `json:"name" validate:"required"`
	Kind           string `json:"kind" validate:"omitempty,oneof=customer supplier cash"`
	OpeningBalance string `json:"opening_balance" validate:"omitempty,numeric"`
}

// RecordTransactionRequest is the request to append a ledger entry.
type RecordTransactionRequest struct {
	Date           string `json:"date" validate:"required"`
	Type           string `json:"type" validate:"required,oneof=credit debit"`
	Amount         string `json:"amount" validate:"required"`
	Description    string `json:"description"`
	ReferenceType  string `json:"reference_type"`
	ReferenceID    string `json:"reference_id"`
	IdempotencyKey string `json:"idempotency_key"`
}

// TransactionDTO represents a ledger transaction.
type TransactionDTO struct {
	ID             string `json:"id"`
	AccountID      string `json:"account_id"`
	Date           string `json:"date"`
	Type           string `json:"type"`
	Amount         string `json:"amount"`
	AmountDisplay  string `json:"amount_display"`
	Description    string `json:"description,omitempty"`
	ReferenceType  string `json:"reference_type,omitempty"`
	ReferenceID    string `json:"reference_id,omitempty"`
	IdempotencyKey string `json:"idempotency_key,omitempty"`
	CreatedAt      string `json:"created_at,omitempty"`
}

// StatementLineDTO is one transaction with its running balance.
type StatementLineDTO struct {
	TransactionDTO
	Balance        string `json:"balance"`
	BalanceDisplay string `json:"balance_display"`
}

// StatementDTO is the ledger view of an account over a period.
type StatementDTO struct {
	AccountID             string             `json:"account_id"`
	From                  string             `json:"from"`
	To                    string             `json:"to"`
	OpeningBalance        string             `json:"opening_balance"`
	OpeningBalanceDisplay string             `json:"opening_balance_display"`
	Lines                 []StatementLineDTO `json:"lines"`
	ClosingBalance        string             `json:"closing_balance"`
	ClosingBalanceDisplay string             `json:"closing_balance_display"`
	TotalCredits          string             `json:"total_credits"`
	TotalCreditsDisplay   string             `json:"total_credits_display"`
	TotalDebits           string             `json:"total_debits"`
	TotalDebitsDisplay    string             `json:"total_debits_display"`
}

// BalanceDTO is an account's balance as of a day.
type BalanceDTO struct {
	AccountID      string `json:"account_id"`
	AsOf           string `json:"as_of"`
	Balance        string `json:"balance"`
	BalanceDisplay string `json:"balance_display"`
}

// ErrorResponse is the standard error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details any    `json:"details,omitempty"`
}

// =============================================================================
// CONVERSION HELPERS
// =============================================================================

func toProductDTO(p booking.Product) ProductDTO {
	return ProductDTO{
		ID:        string(p.ID),
		Name:      p.Name,
		RateCard:  p.RateCardJSON,
		CreatedAt: p.CreatedAt.Format(time.RFC3339),
	}
}

func toBookingDTO(b booking.Booking) BookingDTO {
	return BookingDTO{
		ID:         string(b.ID),
		ProductID:  string(b.ProductID),
		CustomerID: string(b.CustomerID),
		PickupDate: b.Period.Start.String(),
		ReturnDate: b.Period.End.String(),
		Status:     string(b.Status),
		Overdue:    b.Overdue,
		Notes:      b.Notes,
		CreatedAt:  b.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  b.UpdatedAt.Format(time.RFC3339),
	}
}

func toBookingDTOs(bookings []booking.Booking) []BookingDTO {
	dtos := make([]BookingDTO, len(bookings))
	for i, b := range bookings {
		dtos[i] = toBookingDTO(b)
	}
	return dtos
}

func toAccountDTO(a ledger.Account) AccountDTO {
	return AccountDTO{
		ID:             string(a.ID),
		Name:           a.Name,
		Kind:           string(a.Kind),
		OpeningBalance: a.OpeningBalance.String(),
		CreatedAt:      a.CreatedAt.Format(time.RFC3339),
	}
}

func toTransactionDTO(tx ledger.Transaction, f *currency.Formatter) TransactionDTO {
	return TransactionDTO{
		ID:             string(tx.ID),
		AccountID:      string(tx.AccountID),
		Date:           tx.Date.String(),
		Type:           string(tx.Type),
		Amount:         tx.Amount.String(),
		AmountDisplay:  f.Format(tx.Amount),
		Description:    tx.Description,
		ReferenceType:  tx.ReferenceType,
		ReferenceID:    tx.ReferenceID,
		IdempotencyKey: tx.IdempotencyKey,
		CreatedAt:      tx.CreatedAt.Format(time.RFC3339),
	}
}
