package booking_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/meridian/rental-engine/booking"
	"github.com/meridian/rental-engine/calendar"
)

func day(d int) calendar.Date {
	return calendar.NewDate(2024, time.June, d)
}

func rng(start, end int) calendar.DateRange {
	return calendar.NewRange(day(start), day(end))
}

func mkBooking(id string, product string, start, end int, status booking.Status) booking.Booking {
	return booking.Booking{
		ID:        booking.BookingID(id),
		ProductID: booking.ProductID(product),
		Period:    rng(start, end),
		Status:    status,
	}
}

// =============================================================================
// CONFLICT DETECTION
// =============================================================================

func TestCheckConflict_OverlappingActiveBooking(t *testing.T) {
	existing := []booking.Booking{
		mkBooking("b1", "camera", 10, 15, booking.StatusReserved),
	}

	res := booking.CheckConflict(rng(12, 20), "camera", existing, "")
	assert.True(t, res.Conflict)
	assert.Equal(t, booking.BookingID("b1"), res.WithBookingID)
}

func TestCheckConflict_AdjacentRangesConflict(t *testing.T) {
	// Return day and pickup day are both occupied: a rental ending on the
	// 15th blocks one starting on the 15th.
	existing := []booking.Booking{
		mkBooking("b1", "camera", 10, 15, booking.StatusOut),
	}

	res := booking.CheckConflict(rng(15, 20), "camera", existing, "")
	assert.True(t, res.Conflict)
	assert.Equal(t, booking.BookingID("b1"), res.WithBookingID)
}

func TestCheckConflict_DisjointRangesAreFree(t *testing.T) {
	existing := []booking.Booking{
		mkBooking("b1", "camera", 10, 15, booking.StatusReserved),
	}

	res := booking.CheckConflict(rng(16, 20), "camera", existing, "")
	assert.False(t, res.Conflict)
	assert.Empty(t, res.WithBookingID)
}

func TestCheckConflict_InactiveBookingsNeverBlock(t *testing.T) {
	existing := []booking.Booking{
		mkBooking("b1", "camera", 10, 15, booking.StatusReturned),
		mkBooking("b2", "camera", 10, 15, booking.StatusCancelled),
	}

	res := booking.CheckConflict(rng(10, 15), "camera", existing, "")
	assert.False(t, res.Conflict, "returned and cancelled bookings release their days")
}

func TestCheckConflict_OtherProductsIgnored(t *testing.T) {
	existing := []booking.Booking{
		mkBooking("b1", "drone", 10, 15, booking.StatusReserved),
	}

	res := booking.CheckConflict(rng(10, 15), "camera", existing, "")
	assert.False(t, res.Conflict)
}

func TestCheckConflict_ExcludeSelfForEdits(t *testing.T) {
	existing := []booking.Booking{
		mkBooking("b1", "camera", 10, 15, booking.StatusReserved),
	}

	// Moving b1 within (or around) its own window must not collide with
	// its own occupancy.
	res := booking.CheckConflict(rng(12, 18), "camera", existing, "b1")
	assert.False(t, res.Conflict)

	// But another booking in the way still blocks the edit.
	existing = append(existing, mkBooking("b2", "camera", 17, 20, booking.StatusReserved))
	res = booking.CheckConflict(rng(12, 18), "camera", existing, "b1")
	assert.True(t, res.Conflict)
	assert.Equal(t, booking.BookingID("b2"), res.WithBookingID)
}

func TestCheckConflict_FirstMatchReported(t *testing.T) {
	existing := []booking.Booking{
		mkBooking("b1", "camera", 10, 12, booking.StatusReserved),
		mkBooking("b2", "camera", 14, 16, booking.StatusReserved),
	}

	res := booking.CheckConflict(rng(10, 20), "camera", existing, "")
	assert.True(t, res.Conflict)
	assert.Equal(t, booking.BookingID("b1"), res.WithBookingID,
		"the first overlapping booking in the list is reported")
}

func TestCheckConflict_SingleDayRental(t *testing.T) {
	existing := []booking.Booking{
		mkBooking("b1", "camera", 10, 10, booking.StatusReserved),
	}

	assert.True(t, booking.CheckConflict(rng(10, 10), "camera", existing, "").Conflict)
	assert.False(t, booking.CheckConflict(rng(11, 11), "camera", existing, "").Conflict)
}

// =============================================================================
// STATUS TRANSITIONS
// =============================================================================

func TestStatus_Active(t *testing.T) {
	assert.True(t, booking.StatusReserved.Active())
	assert.True(t, booking.StatusOut.Active())
	assert.False(t, booking.StatusReturned.Active())
	assert.False(t, booking.StatusCancelled.Active())
}

func TestStatus_CanTransitionTo(t *testing.T) {
	assert.True(t, booking.StatusReserved.CanTransitionTo(booking.StatusOut))
	assert.True(t, booking.StatusReserved.CanTransitionTo(booking.StatusCancelled))
	assert.True(t, booking.StatusOut.CanTransitionTo(booking.StatusReturned))
	assert.True(t, booking.StatusOut.CanTransitionTo(booking.StatusCancelled))

	assert.False(t, booking.StatusReserved.CanTransitionTo(booking.StatusReturned),
		"cannot return without picking up")
	assert.False(t, booking.StatusReturned.CanTransitionTo(booking.StatusOut),
		"terminal states have no transitions")
	assert.False(t, booking.StatusCancelled.CanTransitionTo(booking.StatusReserved))
}
