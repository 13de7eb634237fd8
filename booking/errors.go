/*
errors.go - Centralized error types for the booking domain

PURPOSE:
  All booking error types in one place. Sentinel errors for errors.Is
  checks, structured errors for callers that need details.

ERROR CATEGORIES:
  1. Conflict errors - Overlapping active bookings
  2. Validation errors - Bad date ranges, bad status transitions
  3. Not-found errors - Missing bookings/products

SEE ALSO:
  - service.go: Wraps store errors with these types
  - store/sqlite: Maps occupancy-index violations to ConflictError
*/
package booking

import (
	"errors"
	"fmt"

	"github.com/meridian/rental-engine/calendar"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrBookingConflict is returned when a booking would overlap an active
	// booking for the same product. The store enforces this atomically at
	// insert time, independent of any prior client-side check.
	ErrBookingConflict = errors.New("booking conflict")

	// ErrBookingNotFound is returned when a referenced booking doesn't exist.
	ErrBookingNotFound = errors.New("booking not found")

	// ErrProductNotFound is returned when a referenced product doesn't exist.
	ErrProductNotFound = errors.New("product not found")

	// ErrInvalidTransition is returned for disallowed status transitions
	// (e.g. returning a cancelled booking).
	ErrInvalidTransition = errors.New("invalid status transition")
)

// =============================================================================
// STRUCTURED ERRORS - Carry additional context
// =============================================================================

// ConflictError reports which active booking blocks the candidate range.
type ConflictError struct {
	ProductID     ProductID
	Period        calendar.DateRange
	WithBookingID BookingID
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("product %s is not available for %s (blocked by booking %s)",
		e.ProductID, e.Period, e.WithBookingID)
}

func (e *ConflictError) Unwrap() error { return ErrBookingConflict }

// TransitionError reports a disallowed lifecycle transition.
type TransitionError struct {
	BookingID BookingID
	From      Status
	To        Status
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("booking %s: cannot transition from %s to %s", e.BookingID, e.From, e.To)
}

func (e *TransitionError) Unwrap() error { return ErrInvalidTransition }

// =============================================================================
// ERROR HELPERS
// =============================================================================

// IsClientError returns true if the error is due to invalid client input
// rather than a system failure.
func IsClientError(err error) bool {
	return errors.Is(err, ErrBookingConflict) ||
		errors.Is(err, ErrInvalidTransition) ||
		errors.Is(err, calendar.ErrInvalidRange)
}

// IsNotFound returns true if the error indicates a missing resource.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrBookingNotFound) ||
		errors.Is(err, ErrProductNotFound)
}
