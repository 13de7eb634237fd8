/*
Package sqlite provides a SQLite-backed implementation of the storage interfaces.

PURPOSE:
  Implements booking.Store, booking.ProductStore and ledger.Store using
  SQLite. In production, the same patterns apply to PostgreSQL - only
  minor SQL dialect differences (Postgres could use a native range
  exclusion constraint instead of the occupancy table).

NO-OVERLAP ENFORCEMENT:
  A client-side conflict check followed by a separate insert is a
  check-then-act race: two sessions can both see "free" and both insert.
  The store closes that race with a booking_days occupancy table:

  - Inserting a booking writes one row per day of its range, in the
    same SQL transaction as the booking row.
  - A UNIQUE index on (product_id, day) makes overlapping active
    bookings impossible to commit, regardless of what any prior
    check observed.
  - Returning or cancelling a booking deletes its occupancy rows,
    freeing the days.

  A violation maps to booking.ConflictError carrying the blocking
  booking id, so callers see the same result shape as the fast-path
  check.

LEDGER ORDERING:
  ListByAccount orders by (tx_date, created_at, id) ascending - the
  order running-balance replay relies on. Amounts are stored as exact
  decimal strings, never floats.

WAL MODE:
  SQLite is opened with WAL (Write-Ahead Logging) for better concurrency:
  - Multiple readers don't block
  - Single writer at a time
  - Better crash recovery

USAGE:
  store, err := sqlite.New("./data/rental.db")
  if err != nil {
      log.Fatal(err)
  }
  defer store.Close()

MIGRATION:
  Schema is auto-migrated on New(). For production, use a proper
  migration tool (golang-migrate, goose) with versioned migrations.

SEE ALSO:
  - booking/store.go, ledger/store.go: Interface definitions
  - store/memory: In-memory implementation for testing
*/
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/shopspring/decimal"

	"github.com/meridian/rental-engine/booking"
	"github.com/meridian/rental-engine/calendar"
	"github.com/meridian/rental-engine/ledger"
)

const timeFormat = time.RFC3339

// Store implements all storage interfaces using SQLite.
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

// New creates a new SQLite store with the given database path.
// Use ":memory:" for an in-memory database.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return store, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// migrate creates the database schema.
func (s *Store) migrate() error {
	schema := `
	-- Products (rentable items; pricing stored as rate card JSON)
	CREATE TABLE IF NOT EXISTS products (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		rate_card_json TEXT,
		created_at TEXT NOT NULL
	);

	-- Bookings
	CREATE TABLE IF NOT EXISTS bookings (
		id TEXT PRIMARY KEY,
		product_id TEXT NOT NULL,
		customer_id TEXT,
		pickup_date TEXT NOT NULL,
		return_date TEXT NOT NULL,
		status TEXT NOT NULL,
		overdue INTEGER NOT NULL DEFAULT 0,
		notes TEXT,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_bookings_product
		ON bookings(product_id);
	CREATE INDEX IF NOT EXISTS idx_bookings_status
		ON bookings(status);
	CREATE INDEX IF NOT EXISTS idx_bookings_return_date
		ON bookings(return_date) WHERE status = 'out';

	-- CRITICAL: day occupancy for active bookings. One row per
	-- (booking, day). The unique index on (product_id, day) is what
	-- makes overlapping active bookings impossible to commit,
	-- independent of any client-side conflict check.
	CREATE TABLE IF NOT EXISTS booking_days (
		booking_id TEXT NOT NULL,
		product_id TEXT NOT NULL,
		day TEXT NOT NULL
	);

	CREATE UNIQUE INDEX IF NOT EXISTS idx_booking_days_occupancy
		ON booking_days(product_id, day);
	CREATE INDEX IF NOT EXISTS idx_booking_days_booking
		ON booking_days(booking_id);

	-- Accounts
	CREATE TABLE IF NOT EXISTS accounts (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		kind TEXT NOT NULL,
		opening_balance TEXT NOT NULL,
		created_at TEXT NOT NULL
	);

	-- Transactions (append-only ledger)
	CREATE TABLE IF NOT EXISTS transactions (
		id TEXT PRIMARY KEY,
		account_id TEXT NOT NULL,
		tx_date TEXT NOT NULL,
		tx_type TEXT NOT NULL,
		amount TEXT NOT NULL,
		description TEXT,
		reference_type TEXT,
		reference_id TEXT,
		idempotency_key TEXT UNIQUE,
		created_at TEXT NOT NULL
	);

	-- Statement queries (hot path): account + date window, ledger order
	CREATE INDEX IF NOT EXISTS idx_transactions_account_date
		ON transactions(account_id, tx_date, created_at);
	CREATE INDEX IF NOT EXISTS idx_transactions_reference
		ON transactions(reference_type, reference_id) WHERE reference_id IS NOT NULL;
	`

	_, err := s.db.Exec(schema)
	return err
}

// =============================================================================
// BOOKING STORE (booking.Store interface)
// =============================================================================

// Insert persists a booking and its day occupancy atomically.
func (s *Store) Insert(ctx context.Context, b booking.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.insertBookingTx(ctx, b)
	if err != nil && isUniqueConstraintError(err) {
		blocker := s.findBlocker(ctx, b.ProductID, b.Period, b.ID)
		return &booking.ConflictError{
			ProductID:     b.ProductID,
			Period:        b.Period,
			WithBookingID: blocker,
		}
	}
	return err
}

func (s *Store) insertBookingTx(ctx context.Context, b booking.Booking) error {
	sqlTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer sqlTx.Rollback()

	_, err = sqlTx.ExecContext(ctx, `
		INSERT INTO bookings
		(id, product_id, customer_id, pickup_date, return_date, status, overdue, notes, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		b.ID, b.ProductID, b.CustomerID,
		b.Period.Start.String(), b.Period.End.String(),
		b.Status, boolToInt(b.Overdue), b.Notes,
		b.CreatedAt.UTC().Format(timeFormat), b.UpdatedAt.UTC().Format(timeFormat),
	)
	if err != nil {
		return err
	}

	if err := insertOccupancy(ctx, sqlTx, b.ID, b.ProductID, b.Period); err != nil {
		return err
	}

	return sqlTx.Commit()
}

// Reschedule atomically moves a booking's occupancy to the new range.
func (s *Store) Reschedule(ctx context.Context, id booking.BookingID, period calendar.DateRange, at time.Time) (booking.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.getBooking(ctx, id)
	if err != nil {
		return booking.Booking{}, err
	}

	if err := s.rescheduleTx(ctx, current, period, at); err != nil {
		if isUniqueConstraintError(err) {
			blocker := s.findBlocker(ctx, current.ProductID, period, id)
			return booking.Booking{}, &booking.ConflictError{
				ProductID:     current.ProductID,
				Period:        period,
				WithBookingID: blocker,
			}
		}
		return booking.Booking{}, err
	}

	return s.getBooking(ctx, id)
}

func (s *Store) rescheduleTx(ctx context.Context, b booking.Booking, period calendar.DateRange, at time.Time) error {
	sqlTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer sqlTx.Rollback()

	if _, err := sqlTx.ExecContext(ctx,
		`DELETE FROM booking_days WHERE booking_id = ?`, b.ID); err != nil {
		return err
	}

	if _, err := sqlTx.ExecContext(ctx, `
		UPDATE bookings SET pickup_date = ?, return_date = ?, updated_at = ? WHERE id = ?`,
		period.Start.String(), period.End.String(), at.UTC().Format(timeFormat), b.ID,
	); err != nil {
		return err
	}

	// Only active bookings occupy days.
	if b.Status.Active() {
		if err := insertOccupancy(ctx, sqlTx, b.ID, b.ProductID, period); err != nil {
			return err
		}
	}

	return sqlTx.Commit()
}

func insertOccupancy(ctx context.Context, sqlTx *sql.Tx, id booking.BookingID, productID booking.ProductID, period calendar.DateRange) error {
	for _, day := range period.Days() {
		if _, err := sqlTx.ExecContext(ctx,
			`INSERT INTO booking_days (booking_id, product_id, day) VALUES (?, ?, ?)`,
			id, productID, day.String(),
		); err != nil {
			return err
		}
	}
	return nil
}

// findBlocker looks up which booking holds a day in the contested range.
// Best effort: it runs after the failed transaction rolled back, so an
// empty result just means the blocker resolved in the meantime.
func (s *Store) findBlocker(ctx context.Context, productID booking.ProductID, period calendar.DateRange, exclude booking.BookingID) booking.BookingID {
	days := period.Days()
	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(days)), ",")

	args := make([]any, 0, len(days)+2)
	args = append(args, productID)
	for _, d := range days {
		args = append(args, d.String())
	}
	args = append(args, exclude)

	var blocker booking.BookingID
	query := fmt.Sprintf(`
		SELECT booking_id FROM booking_days
		WHERE product_id = ? AND day IN (%s) AND booking_id != ?
		LIMIT 1`, placeholders)
	s.db.QueryRowContext(ctx, query, args...).Scan(&blocker)
	return blocker
}

// Get returns a booking by id.
func (s *Store) Get(ctx context.Context, id booking.BookingID) (booking.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.getBooking(ctx, id)
}

func (s *Store) getBooking(ctx context.Context, id booking.BookingID) (booking.Booking, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, product_id, customer_id, pickup_date, return_date, status, overdue, notes, created_at, updated_at
		FROM bookings WHERE id = ?`, id)

	b, err := scanBooking(row)
	if err == sql.ErrNoRows {
		return booking.Booking{}, booking.ErrBookingNotFound
	}
	return b, err
}

// ActiveByProduct returns the product's reserved and out bookings.
func (s *Store) ActiveByProduct(ctx context.Context, productID booking.ProductID) ([]booking.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.queryBookings(ctx, `
		SELECT id, product_id, customer_id, pickup_date, return_date, status, overdue, notes, created_at, updated_at
		FROM bookings
		WHERE product_id = ? AND status IN ('reserved', 'out')
		ORDER BY pickup_date ASC`, productID)
}

// ListByProduct returns all bookings for a product, newest first.
func (s *Store) ListByProduct(ctx context.Context, productID booking.ProductID) ([]booking.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.queryBookings(ctx, `
		SELECT id, product_id, customer_id, pickup_date, return_date, status, overdue, notes, created_at, updated_at
		FROM bookings
		WHERE product_id = ?
		ORDER BY created_at DESC`, productID)
}

// SetStatus updates a booking's status. Occupancy rows are released in the
// same transaction when the booking leaves the active set.
func (s *Store) SetStatus(ctx context.Context, id booking.BookingID, status booking.Status, at time.Time) (booking.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sqlTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return booking.Booking{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer sqlTx.Rollback()

	res, err := sqlTx.ExecContext(ctx,
		`UPDATE bookings SET status = ?, updated_at = ? WHERE id = ?`,
		status, at.UTC().Format(timeFormat), id)
	if err != nil {
		return booking.Booking{}, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return booking.Booking{}, booking.ErrBookingNotFound
	}

	if !status.Active() {
		if _, err := sqlTx.ExecContext(ctx,
			`DELETE FROM booking_days WHERE booking_id = ?`, id); err != nil {
			return booking.Booking{}, err
		}
	}

	if err := sqlTx.Commit(); err != nil {
		return booking.Booking{}, err
	}

	return s.getBooking(ctx, id)
}

// MarkOverdue flags a booking as overdue.
func (s *Store) MarkOverdue(ctx context.Context, id booking.BookingID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.ExecContext(ctx,
		`UPDATE bookings SET overdue = 1 WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return booking.ErrBookingNotFound
	}
	return nil
}

// ListOverdueCandidates returns out, not-yet-flagged bookings whose return
// date is strictly before asOf.
func (s *Store) ListOverdueCandidates(ctx context.Context, asOf calendar.Date) ([]booking.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.queryBookings(ctx, `
		SELECT id, product_id, customer_id, pickup_date, return_date, status, overdue, notes, created_at, updated_at
		FROM bookings
		WHERE status = 'out' AND overdue = 0 AND return_date < ?
		ORDER BY return_date ASC`, asOf.String())
}

func (s *Store) queryBookings(ctx context.Context, query string, args ...any) ([]booking.Booking, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query bookings: %w", err)
	}
	defer rows.Close()

	var bookings []booking.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBooking(row rowScanner) (booking.Booking, error) {
	var (
		b          booking.Booking
		pickup     string
		ret        string
		overdue    int
		customerID sql.NullString
		notes      sql.NullString
		createdAt  string
		updatedAt  string
	)

	err := row.Scan(&b.ID, &b.ProductID, &customerID, &pickup, &ret,
		&b.Status, &overdue, &notes, &createdAt, &updatedAt)
	if err != nil {
		return b, err
	}

	start, err := calendar.ParseDate(pickup)
	if err != nil {
		return b, fmt.Errorf("corrupt pickup date %q: %w", pickup, err)
	}
	end, err := calendar.ParseDate(ret)
	if err != nil {
		return b, fmt.Errorf("corrupt return date %q: %w", ret, err)
	}

	b.CustomerID = booking.CustomerID(customerID.String)
	b.Period = calendar.NewRange(start, end)
	b.Overdue = overdue != 0
	b.Notes = notes.String
	b.CreatedAt, _ = time.Parse(timeFormat, createdAt)
	b.UpdatedAt, _ = time.Parse(timeFormat, updatedAt)
	return b, nil
}

// =============================================================================
// PRODUCT STORE (booking.ProductStore interface)
// =============================================================================

// SaveProduct inserts or updates a product.
func (s *Store) SaveProduct(ctx context.Context, p booking.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO products (id, name, rate_card_json, created_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			rate_card_json = excluded.rate_card_json`,
		p.ID, p.Name, p.RateCardJSON, p.CreatedAt.UTC().Format(timeFormat))
	return err
}

// GetProduct returns a product by id.
func (s *Store) GetProduct(ctx context.Context, id booking.ProductID) (booking.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var (
		p         booking.Product
		rateCard  sql.NullString
		createdAt string
	)
	err := s.db.QueryRowContext(ctx,
		`SELECT id, name, rate_card_json, created_at FROM products WHERE id = ?`, id,
	).Scan(&p.ID, &p.Name, &rateCard, &createdAt)
	if err == sql.ErrNoRows {
		return booking.Product{}, booking.ErrProductNotFound
	}
	if err != nil {
		return booking.Product{}, err
	}

	p.RateCardJSON = rateCard.String
	p.CreatedAt, _ = time.Parse(timeFormat, createdAt)
	return p, nil
}

// ListProducts returns all products.
func (s *Store) ListProducts(ctx context.Context) ([]booking.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, rate_card_json, created_at FROM products ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []booking.Product
	for rows.Next() {
		var (
			p         booking.Product
			rateCard  sql.NullString
			createdAt string
		)
		if err := rows.Scan(&p.ID, &p.Name, &rateCard, &createdAt); err != nil {
			return nil, err
		}
		p.RateCardJSON = rateCard.String
		p.CreatedAt, _ = time.Parse(timeFormat, createdAt)
		products = append(products, p)
	}
	return products, rows.Err()
}

// =============================================================================
// LEDGER STORE (ledger.Store interface)
// =============================================================================

// Append adds a transaction to the ledger.
func (s *Store) Append(ctx context.Context, tx ledger.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO transactions
		(id, account_id, tx_date, tx_type, amount, description, reference_type, reference_id, idempotency_key, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		tx.ID, tx.AccountID, tx.Date.String(), tx.Type,
		tx.Amount.String(), tx.Description,
		nullString(tx.ReferenceType), nullString(tx.ReferenceID),
		nullString(tx.IdempotencyKey),
		tx.CreatedAt.UTC().Format(timeFormat))

	if err != nil {
		if isUniqueConstraintError(err) {
			return ledger.ErrDuplicateIdempotencyKey
		}
		return fmt.Errorf("failed to append transaction: %w", err)
	}
	return nil
}

// ListByAccount returns the period's transactions in ledger order.
func (s *Store) ListByAccount(ctx context.Context, accountID ledger.AccountID, period calendar.DateRange) ([]ledger.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, account_id, tx_date, tx_type, amount, description, reference_type, reference_id, idempotency_key, created_at
		FROM transactions
		WHERE account_id = ? AND tx_date >= ? AND tx_date <= ?
		ORDER BY tx_date ASC, created_at ASC, id ASC`,
		accountID, period.Start.String(), period.End.String())
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	var txs []ledger.Transaction
	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		txs = append(txs, tx)
	}
	return txs, rows.Err()
}

// SumBefore returns the net effect of all transactions strictly before the
// given date. Amounts are summed in Go so the TEXT column keeps them exact.
func (s *Store) SumBefore(ctx context.Context, accountID ledger.AccountID, before calendar.Date) (decimal.Decimal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx,
		`SELECT tx_type, amount FROM transactions WHERE account_id = ? AND tx_date < ?`,
		accountID, before.String())
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to query prior transactions: %w", err)
	}
	defer rows.Close()

	net := decimal.Zero
	for rows.Next() {
		var txType, amount string
		if err := rows.Scan(&txType, &amount); err != nil {
			return decimal.Zero, err
		}
		d, err := decimal.NewFromString(amount)
		if err != nil {
			return decimal.Zero, fmt.Errorf("corrupt amount %q: %w", amount, err)
		}
		if ledger.TxType(txType) == ledger.TxDebit {
			net = net.Sub(d)
		} else {
			net = net.Add(d)
		}
	}
	return net, rows.Err()
}

// SaveAccount inserts or updates an account. The opening balance is fixed
// at creation; corrections go through the ledger, not the account row.
func (s *Store) SaveAccount(ctx context.Context, a ledger.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO accounts (id, name, kind, opening_balance, created_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			kind = excluded.kind`,
		a.ID, a.Name, a.Kind, a.OpeningBalance.String(),
		a.CreatedAt.UTC().Format(timeFormat))
	return err
}

// GetAccount returns an account by id.
func (s *Store) GetAccount(ctx context.Context, id ledger.AccountID) (ledger.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var (
		a         ledger.Account
		opening   string
		createdAt string
	)
	err := s.db.QueryRowContext(ctx,
		`SELECT id, name, kind, opening_balance, created_at FROM accounts WHERE id = ?`, id,
	).Scan(&a.ID, &a.Name, &a.Kind, &opening, &createdAt)
	if err == sql.ErrNoRows {
		return ledger.Account{}, ledger.ErrAccountNotFound
	}
	if err != nil {
		return ledger.Account{}, err
	}

	a.OpeningBalance, err = decimal.NewFromString(opening)
	if err != nil {
		return ledger.Account{}, fmt.Errorf("corrupt opening balance %q: %w", opening, err)
	}
	a.CreatedAt, _ = time.Parse(timeFormat, createdAt)
	return a, nil
}

// ListAccounts returns all accounts.
func (s *Store) ListAccounts(ctx context.Context) ([]ledger.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, kind, opening_balance, created_at FROM accounts ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var accounts []ledger.Account
	for rows.Next() {
		var (
			a         ledger.Account
			opening   string
			createdAt string
		)
		if err := rows.Scan(&a.ID, &a.Name, &a.Kind, &opening, &createdAt); err != nil {
			return nil, err
		}
		a.OpeningBalance, err = decimal.NewFromString(opening)
		if err != nil {
			return nil, fmt.Errorf("corrupt opening balance %q: %w", opening, err)
		}
		a.CreatedAt, _ = time.Parse(timeFormat, createdAt)
		accounts = append(accounts, a)
	}
	return accounts, rows.Err()
}

func scanTransaction(rows *sql.Rows) (ledger.Transaction, error) {
	var (
		tx             ledger.Transaction
		txDate         string
		amount         string
		description    sql.NullString
		referenceType  sql.NullString
		referenceID    sql.NullString
		idempotencyKey sql.NullString
		createdAt      string
	)

	err := rows.Scan(&tx.ID, &tx.AccountID, &txDate, &tx.Type, &amount,
		&description, &referenceType, &referenceID, &idempotencyKey, &createdAt)
	if err != nil {
		return tx, fmt.Errorf("failed to scan transaction: %w", err)
	}

	tx.Date, err = calendar.ParseDate(txDate)
	if err != nil {
		return tx, fmt.Errorf("corrupt transaction date %q: %w", txDate, err)
	}
	tx.Amount, err = decimal.NewFromString(amount)
	if err != nil {
		return tx, fmt.Errorf("corrupt amount %q: %w", amount, err)
	}
	tx.Description = description.String
	tx.ReferenceType = referenceType.String
	tx.ReferenceID = referenceID.String
	tx.IdempotencyKey = idempotencyKey.String
	tx.CreatedAt, _ = time.Parse(timeFormat, createdAt)
	return tx, nil
}

// =============================================================================
// HELPERS
// =============================================================================

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func isUniqueConstraintError(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
