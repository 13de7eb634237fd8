/*
store.go - Persistence interfaces for bookings and products

PURPOSE:
  Defines the boundary between the booking domain and the database.
  The critical contract is atomic no-overlap enforcement: Insert and
  Reschedule must reject a booking that would overlap an active booking
  for the same product, atomically, independent of any prior
  CheckConflict call. The client-side check is a UX fast path only.

IMPLEMENTATIONS:
  - store/sqlite: Production store. Enforces the invariant with a unique
    (product_id, day) occupancy index written in the same SQL transaction
    as the booking row.
  - store/memory: In-memory store for tests/dev. Re-checks under its lock.

SEE ALSO:
  - service.go: The only consumer of this interface
*/
package booking

import (
	"context"
	"time"

	"github.com/meridian/rental-engine/calendar"
)

// Store persists bookings.
//
// INVARIANT (enforced by implementations, not callers): at no point may two
// active bookings for the same product share a calendar day. Insert and
// Reschedule fail with an error unwrapping to ErrBookingConflict when the
// invariant would be violated.
type Store interface {
	// Insert persists a new booking, atomically rejecting overlaps.
	Insert(ctx context.Context, b Booking) error

	// Reschedule atomically moves a booking to a new date range, ignoring
	// the booking's own current occupancy (edit mode).
	Reschedule(ctx context.Context, id BookingID, period calendar.DateRange, at time.Time) (Booking, error)

	// Get returns a booking by id (ErrBookingNotFound if missing).
	Get(ctx context.Context, id BookingID) (Booking, error)

	// ActiveByProduct returns the product's active (reserved/out) bookings.
	// Ordering is unspecified.
	ActiveByProduct(ctx context.Context, productID ProductID) ([]Booking, error)

	// ListByProduct returns all bookings for a product, newest first.
	ListByProduct(ctx context.Context, productID ProductID) ([]Booking, error)

	// SetStatus updates a booking's status. Transitioning to returned or
	// cancelled releases the booking's calendar occupancy.
	SetStatus(ctx context.Context, id BookingID, status Status, at time.Time) (Booking, error)

	// MarkOverdue flags an out booking whose return date has passed.
	MarkOverdue(ctx context.Context, id BookingID) error

	// ListOverdueCandidates returns out bookings not yet flagged overdue
	// whose return date is strictly before asOf.
	ListOverdueCandidates(ctx context.Context, asOf calendar.Date) ([]Booking, error)
}

// ProductStore persists the product catalog.
type ProductStore interface {
	SaveProduct(ctx context.Context, p Product) error
	GetProduct(ctx context.Context, id ProductID) (Product, error)
	ListProducts(ctx context.Context) ([]Product, error)
}
