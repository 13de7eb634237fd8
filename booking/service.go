/*
service.go - Booking lifecycle orchestration

PURPOSE:
  Drives a booking through its lifecycle against the Store:

    Create ──▶ reserved ──▶ out ──▶ returned
                   │          │
                   └──────────┴──▶ cancelled

  Create and Reschedule run CheckConflict first as a fast path (cheap,
  friendly error before touching the write path), then rely on the store's
  atomic insert to enforce the no-overlap invariant for real. Both paths
  share the same conflict function; neither re-derives the overlap logic.

SEE ALSO:
  - conflict.go: CheckConflict
  - store.go: The atomicity contract this service leans on
*/
package booking

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/meridian/rental-engine/calendar"
)

// Service orchestrates booking operations against a Store.
type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

// Create reserves a product for the given period.
//
// Runs the client-visible conflict check first, then inserts; the store
// re-enforces the invariant atomically, so a race between two concurrent
// Creates still yields exactly one winner.
func (s *Service) Create(
	ctx context.Context,
	productID ProductID,
	customerID CustomerID,
	period calendar.DateRange,
	notes string,
) (Booking, error) {
	if err := period.Validate(); err != nil {
		return Booking{}, err
	}

	// Fast path: check against the current snapshot for a friendly error.
	active, err := s.store.ActiveByProduct(ctx, productID)
	if err != nil {
		return Booking{}, fmt.Errorf("failed to load active bookings: %w", err)
	}
	if res := CheckConflict(period, productID, active, ""); res.Conflict {
		return Booking{}, &ConflictError{
			ProductID:     productID,
			Period:        period,
			WithBookingID: res.WithBookingID,
		}
	}

	now := time.Now().UTC()
	b := Booking{
		ID:         BookingID(uuid.NewString()),
		ProductID:  productID,
		CustomerID: customerID,
		Period:     period,
		Status:     StatusReserved,
		Notes:      notes,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.store.Insert(ctx, b); err != nil {
		return Booking{}, err
	}
	return b, nil
}

// Reschedule moves an active booking to a new period, ignoring the
// booking's own occupancy (edit mode).
func (s *Service) Reschedule(ctx context.Context, id BookingID, period calendar.DateRange) (Booking, error) {
	if err := period.Validate(); err != nil {
		return Booking{}, err
	}

	current, err := s.store.Get(ctx, id)
	if err != nil {
		return Booking{}, err
	}
	if !current.Status.Active() {
		return Booking{}, &TransitionError{BookingID: id, From: current.Status, To: current.Status}
	}

	active, err := s.store.ActiveByProduct(ctx, current.ProductID)
	if err != nil {
		return Booking{}, fmt.Errorf("failed to load active bookings: %w", err)
	}
	if res := CheckConflict(period, current.ProductID, active, id); res.Conflict {
		return Booking{}, &ConflictError{
			ProductID:     current.ProductID,
			Period:        period,
			WithBookingID: res.WithBookingID,
		}
	}

	return s.store.Reschedule(ctx, id, period, time.Now().UTC())
}

// Availability reports whether the period is free for the product. This is
// the pre-submit hint: a Free result can still lose the race to a
// concurrent Create, which the store will reject.
func (s *Service) Availability(ctx context.Context, productID ProductID, period calendar.DateRange) (ConflictResult, error) {
	if err := period.Validate(); err != nil {
		return ConflictResult{}, err
	}
	active, err := s.store.ActiveByProduct(ctx, productID)
	if err != nil {
		return ConflictResult{}, fmt.Errorf("failed to load active bookings: %w", err)
	}
	return CheckConflict(period, productID, active, ""), nil
}

// PickUp marks a reserved booking as out.
func (s *Service) PickUp(ctx context.Context, id BookingID) (Booking, error) {
	return s.transition(ctx, id, StatusOut)
}

// Return marks an out booking as returned, releasing its occupancy.
func (s *Service) Return(ctx context.Context, id BookingID) (Booking, error) {
	return s.transition(ctx, id, StatusReturned)
}

// Cancel cancels a reserved or out booking, releasing its occupancy.
func (s *Service) Cancel(ctx context.Context, id BookingID) (Booking, error) {
	return s.transition(ctx, id, StatusCancelled)
}

// Get returns a booking by id.
func (s *Service) Get(ctx context.Context, id BookingID) (Booking, error) {
	return s.store.Get(ctx, id)
}

// ListByProduct returns all bookings for a product, newest first.
func (s *Service) ListByProduct(ctx context.Context, productID ProductID) ([]Booking, error) {
	return s.store.ListByProduct(ctx, productID)
}

func (s *Service) transition(ctx context.Context, id BookingID, to Status) (Booking, error) {
	current, err := s.store.Get(ctx, id)
	if err != nil {
		return Booking{}, err
	}
	if !current.Status.CanTransitionTo(to) {
		return Booking{}, &TransitionError{BookingID: id, From: current.Status, To: to}
	}
	return s.store.SetStatus(ctx, id, to, time.Now().UTC())
}
