/*
Package booking manages rental bookings and conflict detection.

PURPOSE:
  A booking reserves a product for an inclusive range of calendar days.
  The central rule: a product can only be in one place at a time, so two
  ACTIVE bookings for the same product must never share a day.

KEY CONCEPTS IN THIS FILE (types.go):
  - Booking: A reservation of a product over a date range, with a status
  - Status: reserved -> out -> returned (happy path), plus cancelled
  - ConflictResult: The outcome of a conflict check (a value, not an error)
  - Product: The rentable item, carrying an optional rate card

ACTIVE BOOKINGS:
  Only reserved and out bookings occupy the product's calendar. Returned
  and cancelled bookings never block new ones.

SEE ALSO:
  - conflict.go: The pure conflict-detection function
  - service.go: Booking lifecycle orchestration
  - store/sqlite: Atomic no-overlap enforcement at the persistence layer
*/
package booking

import (
	"time"

	"github.com/meridian/rental-engine/calendar"
)

// =============================================================================
// IDENTIFIERS
// =============================================================================

type BookingID string
type ProductID string
type CustomerID string

// =============================================================================
// STATUS - Booking lifecycle state
// =============================================================================

type Status string

const (
	StatusReserved  Status = "reserved"
	StatusOut       Status = "out"
	StatusReturned  Status = "returned"
	StatusCancelled Status = "cancelled"
)

// Active reports whether a booking in this status occupies the product's
// calendar. Only active bookings participate in conflict checks.
func (s Status) Active() bool {
	return s == StatusReserved || s == StatusOut
}

// CanTransitionTo reports whether the status transition is allowed:
// reserved -> out -> returned, reserved -> cancelled, out -> cancelled.
func (s Status) CanTransitionTo(next Status) bool {
	switch s {
	case StatusReserved:
		return next == StatusOut || next == StatusCancelled
	case StatusOut:
		return next == StatusReturned || next == StatusCancelled
	default:
		return false
	}
}

// =============================================================================
// BOOKING
// =============================================================================

// Booking reserves a product for a customer over an inclusive date range.
// Period.Start is the pickup date, Period.End the return date.
type Booking struct {
	ID         BookingID
	ProductID  ProductID
	CustomerID CustomerID
	Period     calendar.DateRange
	Status     Status
	Overdue    bool
	Notes      string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// =============================================================================
// CONFLICT RESULT - Outcome of a conflict check
// =============================================================================

// ConflictResult is the outcome of a conflict check. A conflict is a normal
// result value, not an error: callers decide how to surface it.
type ConflictResult struct {
	Conflict      bool
	WithBookingID BookingID
}

// Free is the result when the candidate range is available.
func Free() ConflictResult { return ConflictResult{} }

// ConflictWith is the result when an active booking blocks the candidate.
func ConflictWith(id BookingID) ConflictResult {
	return ConflictResult{Conflict: true, WithBookingID: id}
}

// =============================================================================
// PRODUCT - The rentable item
// =============================================================================

// Product is a rentable item. RateCardJSON optionally carries the pricing
// definition parsed by the ratecard package; empty means no automatic
// charges are posted for this product.
type Product struct {
	ID           ProductID
	Name         string
	RateCardJSON string
	CreatedAt    time.Time
}
