/*
Package ledger computes account balances by replaying transactions.

PURPOSE:
  Every account (customer, supplier, cash drawer) has a transaction
  history. There is no stored "balance" column that can drift out of
  sync: a balance is always derived by folding the signed effects of
  transactions over an opening balance.

KEY CONCEPTS IN THIS FILE (types.go):
  - Transaction: A dated credit or debit against an account
  - Account: The ledger subject, carrying its base opening balance
  - Effect: The signed impact of a transaction (+amount for credit,
    -amount for debit)

DESIGN PRINCIPLES:
  1. Precision: All money arithmetic uses decimal.Decimal. Running
     balances are legally meaningful totals; binary floats drift.
  2. Sign discipline: Amount is always >= 0. The direction of the effect
     comes from Type, never from the sign of Amount.
  3. Purity: Balance computation works over caller-owned snapshots and
     returns fresh immutable results.

SEE ALSO:
  - ledger.go: ComputeLedger, the running-balance fold
  - service.go: Statement assembly (opening balance + period replay)
*/
package ledger

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/meridian/rental-engine/calendar"
)

// =============================================================================
// IDENTIFIERS
// =============================================================================

type TransactionID string
type AccountID string

// =============================================================================
// TRANSACTION - A dated credit or debit
// =============================================================================

type TxType string

const (
	TxCredit TxType = "credit" // Increases the balance
	TxDebit  TxType = "debit"  // Decreases the balance
)

// Transaction is a single ledger entry.
// INVARIANT: Amount >= 0. The sign of the effect on the balance is
// determined by Type, not by the sign of Amount.
type Transaction struct {
	ID          TransactionID
	AccountID   AccountID
	Date        calendar.Date
	Type        TxType
	Amount      decimal.Decimal
	Description string

	// Optional link to the originating record (e.g. a booking).
	ReferenceType string
	ReferenceID   string

	// IdempotencyKey, when set, must be unique across the ledger. Retried
	// writes with the same key are rejected with ErrDuplicateIdempotencyKey.
	IdempotencyKey string

	CreatedAt time.Time
}

// Effect returns the signed impact on the balance: +Amount for a credit,
// -Amount for a debit.
func (t Transaction) Effect() decimal.Decimal {
	if t.Type == TxDebit {
		return t.Amount.Neg()
	}
	return t.Amount
}

// =============================================================================
// ACCOUNT
// =============================================================================

type AccountKind string

const (
	AccountCustomer AccountKind = "customer"
	AccountSupplier AccountKind = "supplier"
	AccountCash     AccountKind = "cash"
)

// Account is a ledger subject. OpeningBalance is the balance carried in
// when the account was created, before any recorded transaction.
type Account struct {
	ID             AccountID
	Name           string
	Kind           AccountKind
	OpeningBalance decimal.Decimal
	CreatedAt      time.Time
}

// =============================================================================
// ERRORS
// =============================================================================

var (
	// ErrAccountNotFound is returned when a referenced account doesn't exist.
	ErrAccountNotFound = errors.New("account not found")

	// ErrNegativeAmount is returned when a transaction carries a negative
	// amount. Direction comes from Type; amounts are never signed.
	ErrNegativeAmount = errors.New("transaction amount must not be negative")

	// ErrInvalidTxType is returned for a type other than credit/debit.
	ErrInvalidTxType = errors.New("invalid transaction type")

	// ErrDuplicateIdempotencyKey is returned when a transaction with the
	// same idempotency key already exists. Expected behavior for retries.
	ErrDuplicateIdempotencyKey = errors.New("duplicate idempotency key")
)

// IsClientError returns true if the error is due to invalid client input.
func IsClientError(err error) bool {
	return errors.Is(err, ErrNegativeAmount) ||
		errors.Is(err, ErrInvalidTxType) ||
		errors.Is(err, ErrDuplicateIdempotencyKey) ||
		errors.Is(err, calendar.ErrInvalidRange)
}
