/*
store.go - Persistence interface for accounts and transactions

PURPOSE:
  The boundary between the ledger domain and the database. Two reads
  matter for statements:
  1. ListByAccount: the period's transactions, sorted ascending by
     (date, created_at, id) - the order ComputeLedger's precondition
     relies on.
  2. SumBefore: the net effect of all transactions STRICTLY before a
     date, used to derive a period's opening balance without loading
     the whole history into the statement.

IMPLEMENTATIONS:
  - store/sqlite: Production store
  - store/memory: In-memory store for tests/dev
*/
package ledger

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/meridian/rental-engine/calendar"
)

// Store persists ledger accounts and transactions. The transaction log is
// append-only; corrections are recorded as opposing entries, never edits.
type Store interface {
	// Append persists a transaction. Fails with ErrDuplicateIdempotencyKey
	// if the key is set and already exists.
	Append(ctx context.Context, tx Transaction) error

	// ListByAccount returns the account's transactions within the inclusive
	// period, sorted ascending by (date, created_at, id).
	ListByAccount(ctx context.Context, accountID AccountID, period calendar.DateRange) ([]Transaction, error)

	// SumBefore returns the net effect (credits minus debits) of all
	// transactions strictly before the given date.
	SumBefore(ctx context.Context, accountID AccountID, before calendar.Date) (decimal.Decimal, error)

	SaveAccount(ctx context.Context, a Account) error
	GetAccount(ctx context.Context, id AccountID) (Account, error)
	ListAccounts(ctx context.Context) ([]Account, error)
}
