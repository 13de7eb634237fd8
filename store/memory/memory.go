// Package memory provides an in-memory store implementation (for testing/dev).
//
// Implements booking.Store, booking.ProductStore and ledger.Store with a
// single RWMutex. The no-overlap invariant is enforced by re-checking under
// the write lock, which gives the same atomicity the sqlite store gets from
// its occupancy index.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/meridian/rental-engine/booking"
	"github.com/meridian/rental-engine/calendar"
	"github.com/meridian/rental-engine/ledger"
)

type Store struct {
	mu           sync.RWMutex
	bookings     map[booking.BookingID]booking.Booking
	products     map[booking.ProductID]booking.Product
	accounts     map[ledger.AccountID]ledger.Account
	transactions map[ledger.AccountID][]ledger.Transaction
	idempotency  map[string]bool
}

func New() *Store {
	return &Store{
		bookings:     make(map[booking.BookingID]booking.Booking),
		products:     make(map[booking.ProductID]booking.Product),
		accounts:     make(map[ledger.AccountID]ledger.Account),
		transactions: make(map[ledger.AccountID][]ledger.Transaction),
		idempotency:  make(map[string]bool),
	}
}

// =============================================================================
// BOOKING STORE (booking.Store interface)
// =============================================================================

func (m *Store) Insert(_ context.Context, b booking.Booking) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if blocker, conflict := m.findOverlapLocked(b.ProductID, b.Period, b.ID); conflict {
		return &booking.ConflictError{
			ProductID:     b.ProductID,
			Period:        b.Period,
			WithBookingID: blocker,
		}
	}

	m.bookings[b.ID] = b
	return nil
}

func (m *Store) Reschedule(_ context.Context, id booking.BookingID, period calendar.DateRange, at time.Time) (booking.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	b, ok := m.bookings[id]
	if !ok {
		return booking.Booking{}, booking.ErrBookingNotFound
	}

	if blocker, conflict := m.findOverlapLocked(b.ProductID, period, id); conflict {
		return booking.Booking{}, &booking.ConflictError{
			ProductID:     b.ProductID,
			Period:        period,
			WithBookingID: blocker,
		}
	}

	b.Period = period
	b.UpdatedAt = at
	m.bookings[id] = b
	return b, nil
}

func (m *Store) Get(_ context.Context, id booking.BookingID) (booking.Booking, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	b, ok := m.bookings[id]
	if !ok {
		return booking.Booking{}, booking.ErrBookingNotFound
	}
	return b, nil
}

func (m *Store) ActiveByProduct(_ context.Context, productID booking.ProductID) ([]booking.Booking, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var result []booking.Booking
	for _, b := range m.bookings {
		if b.ProductID == productID && b.Status.Active() {
			result = append(result, b)
		}
	}
	return result, nil
}

func (m *Store) ListByProduct(_ context.Context, productID booking.ProductID) ([]booking.Booking, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var result []booking.Booking
	for _, b := range m.bookings {
		if b.ProductID == productID {
			result = append(result, b)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

func (m *Store) SetStatus(_ context.Context, id booking.BookingID, status booking.Status, at time.Time) (booking.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	b, ok := m.bookings[id]
	if !ok {
		return booking.Booking{}, booking.ErrBookingNotFound
	}

	b.Status = status
	b.UpdatedAt = at
	m.bookings[id] = b
	return b, nil
}

func (m *Store) MarkOverdue(_ context.Context, id booking.BookingID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	b, ok := m.bookings[id]
	if !ok {
		return booking.ErrBookingNotFound
	}
	b.Overdue = true
	m.bookings[id] = b
	return nil
}

func (m *Store) ListOverdueCandidates(_ context.Context, asOf calendar.Date) ([]booking.Booking, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var result []booking.Booking
	for _, b := range m.bookings {
		if b.Status == booking.StatusOut && !b.Overdue && b.Period.End.Before(asOf) {
			result = append(result, b)
		}
	}
	return result, nil
}

// findOverlapLocked re-checks the no-overlap invariant under the write lock.
func (m *Store) findOverlapLocked(productID booking.ProductID, period calendar.DateRange, exclude booking.BookingID) (booking.BookingID, bool) {
	for _, b := range m.bookings {
		if b.ID == exclude || b.ProductID != productID || !b.Status.Active() {
			continue
		}
		if period.Overlaps(b.Period) {
			return b.ID, true
		}
	}
	return "", false
}

// =============================================================================
// PRODUCT STORE (booking.ProductStore interface)
// =============================================================================

func (m *Store) SaveProduct(_ context.Context, p booking.Product) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.products[p.ID] = p
	return nil
}

func (m *Store) GetProduct(_ context.Context, id booking.ProductID) (booking.Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	p, ok := m.products[id]
	if !ok {
		return booking.Product{}, booking.ErrProductNotFound
	}
	return p, nil
}

func (m *Store) ListProducts(_ context.Context) ([]booking.Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]booking.Product, 0, len(m.products))
	for _, p := range m.products {
		result = append(result, p)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

// =============================================================================
// LEDGER STORE (ledger.Store interface)
// =============================================================================

func (m *Store) Append(_ context.Context, tx ledger.Transaction) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if tx.IdempotencyKey != "" && m.idempotency[tx.IdempotencyKey] {
		return ledger.ErrDuplicateIdempotencyKey
	}

	txs := append(m.transactions[tx.AccountID], tx)
	// Keep ledger order: ascending by date, insertion order for ties.
	sort.SliceStable(txs, func(i, j int) bool {
		return txs[i].Date.Before(txs[j].Date)
	})
	m.transactions[tx.AccountID] = txs

	if tx.IdempotencyKey != "" {
		m.idempotency[tx.IdempotencyKey] = true
	}
	return nil
}

func (m *Store) ListByAccount(_ context.Context, accountID ledger.AccountID, period calendar.DateRange) ([]ledger.Transaction, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var result []ledger.Transaction
	for _, tx := range m.transactions[accountID] {
		if period.Contains(tx.Date) {
			result = append(result, tx)
		}
	}
	return result, nil
}

func (m *Store) SumBefore(_ context.Context, accountID ledger.AccountID, before calendar.Date) (decimal.Decimal, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	net := decimal.Zero
	for _, tx := range m.transactions[accountID] {
		if tx.Date.Before(before) {
			net = net.Add(tx.Effect())
		}
	}
	return net, nil
}

func (m *Store) SaveAccount(_ context.Context, a ledger.Account) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.accounts[a.ID] = a
	return nil
}

func (m *Store) GetAccount(_ context.Context, id ledger.AccountID) (ledger.Account, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	a, ok := m.accounts[id]
	if !ok {
		return ledger.Account{}, ledger.ErrAccountNotFound
	}
	return a, nil
}

func (m *Store) ListAccounts(_ context.Context) ([]ledger.Account, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]ledger.Account, 0, len(m.accounts))
	for _, a := range m.accounts {
		result = append(result, a)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}
