/*
ledger.go - Running-balance computation

PURPOSE:
  The core fold: given an opening balance and a chronologically ordered
  list of transactions, produce the balance after each transaction, the
  closing balance, and the credit/debit totals. This is what a statement
  view renders.

PRECONDITION (explicit contract):
  The input list must be sorted ascending by date, ties broken by
  insertion order. The store's queries guarantee this (ORDER BY). The
  fold does NOT re-sort; passing an unsorted list produces a running
  sequence in the caller's order, which is a contract violation, not a
  detected error.

TOTALS:
  TotalCredits and TotalDebits are independent filtered sums, not values
  derived from the closing balance, so they stay correct even if the
  running sequence is truncated for display. The identity
  TotalCredits - TotalDebits == ClosingBalance - OpeningBalance
  always holds.

SEE ALSO:
  - service.go: Derives the opening balance and loads sorted transactions
*/
package ledger

import "github.com/shopspring/decimal"

// =============================================================================
// RESULT - Computed statement for a transaction list
// =============================================================================

// RunningBalance is the balance immediately after one transaction.
type RunningBalance struct {
	TransactionID TransactionID
	BalanceAfter  decimal.Decimal
}

// Result is the computed ledger view. Produced fresh per computation;
// never persisted.
type Result struct {
	OpeningBalance  decimal.Decimal
	RunningBalances []RunningBalance
	ClosingBalance  decimal.Decimal
	TotalCredits    decimal.Decimal
	TotalDebits     decimal.Decimal
}

// Net returns TotalCredits - TotalDebits.
func (r Result) Net() decimal.Decimal {
	return r.TotalCredits.Sub(r.TotalDebits)
}

// =============================================================================
// COMPUTE - The running-balance fold
// =============================================================================

// ComputeLedger replays transactions over the opening balance in input
// order. See the package header for the sort-order precondition.
//
// An empty list yields ClosingBalance == opening and zero totals. A
// negative closing balance is valid (accounts can be overdrawn) and is
// never clamped.
func ComputeLedger(opening decimal.Decimal, txs []Transaction) Result {
	balance := opening
	credits := decimal.Zero
	debits := decimal.Zero

	running := make([]RunningBalance, 0, len(txs))
	for _, tx := range txs {
		switch tx.Type {
		case TxCredit:
			credits = credits.Add(tx.Amount)
		case TxDebit:
			debits = debits.Add(tx.Amount)
		}
		balance = balance.Add(tx.Effect())
		running = append(running, RunningBalance{
			TransactionID: tx.ID,
			BalanceAfter:  balance,
		})
	}

	return Result{
		OpeningBalance:  opening,
		RunningBalances: running,
		ClosingBalance:  balance,
		TotalCredits:    credits,
		TotalDebits:     debits,
	}
}
