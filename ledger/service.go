/*
service.go - Transaction recording and statement assembly

PURPOSE:
  Record validates and appends transactions. BuildStatement assembles a period
  view: it derives the period's opening balance (account base opening
  balance + net effect of everything strictly before the period), loads
  the period's transactions in ledger order, and hands both to
  ComputeLedger.

OPENING BALANCE:
  opening(period) = account.OpeningBalance + SumBefore(period.Start)

  This keeps statements correct for any window without replaying the
  full history inside the statement itself.

SEE ALSO:
  - ledger.go: ComputeLedger
  - store.go: SumBefore / ListByAccount ordering contracts
*/
package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/meridian/rental-engine/calendar"
)

// Service records transactions and assembles statements against a Store.
type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

// Record validates and appends a transaction. A zero ID is filled in;
// CreatedAt is stamped if unset.
func (s *Service) Record(ctx context.Context, tx Transaction) (Transaction, error) {
	if tx.Type != TxCredit && tx.Type != TxDebit {
		return Transaction{}, fmt.Errorf("%w: %q", ErrInvalidTxType, tx.Type)
	}
	if tx.Amount.IsNegative() {
		return Transaction{}, ErrNegativeAmount
	}
	if _, err := s.store.GetAccount(ctx, tx.AccountID); err != nil {
		return Transaction{}, err
	}

	if tx.ID == "" {
		tx.ID = TransactionID(uuid.NewString())
	}
	if tx.CreatedAt.IsZero() {
		tx.CreatedAt = time.Now().UTC()
	}

	if err := s.store.Append(ctx, tx); err != nil {
		return Transaction{}, err
	}
	return tx, nil
}

// Statement is a period view of an account: the transactions in the
// window plus the computed running balances over them.
type Statement struct {
	Account      Account
	Period       calendar.DateRange
	Transactions []Transaction
	Result
}

// BuildStatement computes the ledger view for an account over a period.
func (s *Service) BuildStatement(ctx context.Context, accountID AccountID, period calendar.DateRange) (Statement, error) {
	if err := period.Validate(); err != nil {
		return Statement{}, err
	}

	account, err := s.store.GetAccount(ctx, accountID)
	if err != nil {
		return Statement{}, err
	}

	prior, err := s.store.SumBefore(ctx, accountID, period.Start)
	if err != nil {
		return Statement{}, fmt.Errorf("failed to derive opening balance: %w", err)
	}
	opening := account.OpeningBalance.Add(prior)

	txs, err := s.store.ListByAccount(ctx, accountID, period)
	if err != nil {
		return Statement{}, fmt.Errorf("failed to load transactions: %w", err)
	}

	return Statement{
		Account:      account,
		Period:       period,
		Transactions: txs,
		Result:       ComputeLedger(opening, txs),
	}, nil
}

// Balance returns the account balance as of the end of the given day.
func (s *Service) Balance(ctx context.Context, accountID AccountID, asOf calendar.Date) (decimal.Decimal, error) {
	account, err := s.store.GetAccount(ctx, accountID)
	if err != nil {
		return decimal.Zero, err
	}

	// Strictly-before the day after asOf includes asOf itself.
	net, err := s.store.SumBefore(ctx, accountID, asOf.AddDays(1))
	if err != nil {
		return decimal.Zero, err
	}
	return account.OpeningBalance.Add(net), nil
}

// CreateAccount validates and saves an account.
func (s *Service) CreateAccount(ctx context.Context, a Account) (Account, error) {
	if a.ID == "" {
		a.ID = AccountID(uuid.NewString())
	}
	if a.Kind == "" {
		a.Kind = AccountCustomer
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now().UTC()
	}
	if err := s.store.SaveAccount(ctx, a); err != nil {
		return Account{}, err
	}
	return a, nil
}

// GetAccount returns an account by id.
func (s *Service) GetAccount(ctx context.Context, id AccountID) (Account, error) {
	return s.store.GetAccount(ctx, id)
}

// ListAccounts returns all accounts.
func (s *Service) ListAccounts(ctx context.Context) ([]Account, error) {
	return s.store.ListAccounts(ctx)
}
