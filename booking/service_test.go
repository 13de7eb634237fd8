package booking_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meridian/rental-engine/booking"
	"github.com/meridian/rental-engine/store/memory"
)

func newService(t *testing.T) *booking.Service {
	t.Helper()
	return booking.NewService(memory.New())
}

// =============================================================================
// CREATE
// =============================================================================

func TestService_Create(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	b, err := svc.Create(ctx, "camera", "cust-1", rng(10, 15), "weekend shoot")
	require.NoError(t, err)

	assert.NotEmpty(t, b.ID)
	assert.Equal(t, booking.StatusReserved, b.Status)
	assert.Equal(t, booking.ProductID("camera"), b.ProductID)
	assert.Equal(t, "weekend shoot", b.Notes)

	got, err := svc.Get(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, b.ID, got.ID)
}

func TestService_Create_RejectsOverlap(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	first, err := svc.Create(ctx, "camera", "cust-1", rng(10, 15), "")
	require.NoError(t, err)

	_, err = svc.Create(ctx, "camera", "cust-2", rng(14, 20), "")
	require.Error(t, err)
	assert.ErrorIs(t, err, booking.ErrBookingConflict)

	var conflict *booking.ConflictError
	require.True(t, errors.As(err, &conflict))
	assert.Equal(t, first.ID, conflict.WithBookingID)
}

func TestService_Create_RejectsInvalidRange(t *testing.T) {
	svc := newService(t)

	_, err := svc.Create(context.Background(), "camera", "cust-1", rng(15, 10), "")
	assert.Error(t, err)
}

func TestService_Create_OtherProductUnaffected(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, "camera", "cust-1", rng(10, 15), "")
	require.NoError(t, err)

	_, err = svc.Create(ctx, "drone", "cust-2", rng(10, 15), "")
	assert.NoError(t, err, "different products never conflict")
}

// =============================================================================
// RESCHEDULE
// =============================================================================

func TestService_Reschedule_ExcludesOwnOccupancy(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	b, err := svc.Create(ctx, "camera", "cust-1", rng(10, 15), "")
	require.NoError(t, err)

	// Shifting within the original window collides only with itself,
	// which edit mode ignores.
	moved, err := svc.Reschedule(ctx, b.ID, rng(12, 18))
	require.NoError(t, err)
	assert.Equal(t, "2024-06-12", moved.Period.Start.String())
	assert.Equal(t, "2024-06-18", moved.Period.End.String())
}

func TestService_Reschedule_BlockedByOtherBooking(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	b, err := svc.Create(ctx, "camera", "cust-1", rng(10, 15), "")
	require.NoError(t, err)
	other, err := svc.Create(ctx, "camera", "cust-2", rng(20, 25), "")
	require.NoError(t, err)

	_, err = svc.Reschedule(ctx, b.ID, rng(18, 22))
	require.ErrorIs(t, err, booking.ErrBookingConflict)

	var conflict *booking.ConflictError
	require.True(t, errors.As(err, &conflict))
	assert.Equal(t, other.ID, conflict.WithBookingID)
}

func TestService_Reschedule_InactiveBookingRejected(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	b, err := svc.Create(ctx, "camera", "cust-1", rng(10, 15), "")
	require.NoError(t, err)
	_, err = svc.Cancel(ctx, b.ID)
	require.NoError(t, err)

	_, err = svc.Reschedule(ctx, b.ID, rng(20, 25))
	assert.ErrorIs(t, err, booking.ErrInvalidTransition)
}

// =============================================================================
// LIFECYCLE
// =============================================================================

func TestService_Lifecycle_HappyPath(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	b, err := svc.Create(ctx, "camera", "cust-1", rng(10, 15), "")
	require.NoError(t, err)

	out, err := svc.PickUp(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, booking.StatusOut, out.Status)

	returned, err := svc.Return(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, booking.StatusReturned, returned.Status)
}

func TestService_Lifecycle_InvalidTransitions(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	b, err := svc.Create(ctx, "camera", "cust-1", rng(10, 15), "")
	require.NoError(t, err)

	// reserved -> returned skips pickup
	_, err = svc.Return(ctx, b.ID)
	assert.ErrorIs(t, err, booking.ErrInvalidTransition)

	_, err = svc.Cancel(ctx, b.ID)
	require.NoError(t, err)

	// cancelled is terminal
	_, err = svc.PickUp(ctx, b.ID)
	assert.ErrorIs(t, err, booking.ErrInvalidTransition)
}

func TestService_ReturnReleasesDays(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	b, err := svc.Create(ctx, "camera", "cust-1", rng(10, 15), "")
	require.NoError(t, err)
	_, err = svc.PickUp(ctx, b.ID)
	require.NoError(t, err)
	_, err = svc.Return(ctx, b.ID)
	require.NoError(t, err)

	_, err = svc.Create(ctx, "camera", "cust-2", rng(10, 15), "")
	assert.NoError(t, err, "returned booking frees the range")
}

func TestService_CancelReleasesDays(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	b, err := svc.Create(ctx, "camera", "cust-1", rng(10, 15), "")
	require.NoError(t, err)
	_, err = svc.Cancel(ctx, b.ID)
	require.NoError(t, err)

	_, err = svc.Create(ctx, "camera", "cust-2", rng(12, 14), "")
	assert.NoError(t, err, "cancelled booking frees the range")
}

// =============================================================================
// AVAILABILITY
// =============================================================================

func TestService_Availability(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	b, err := svc.Create(ctx, "camera", "cust-1", rng(10, 15), "")
	require.NoError(t, err)

	res, err := svc.Availability(ctx, "camera", rng(14, 20))
	require.NoError(t, err)
	assert.True(t, res.Conflict)
	assert.Equal(t, b.ID, res.WithBookingID)

	res, err = svc.Availability(ctx, "camera", rng(16, 20))
	require.NoError(t, err)
	assert.False(t, res.Conflict)
}

func TestService_Get_NotFound(t *testing.T) {
	svc := newService(t)

	_, err := svc.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, booking.ErrBookingNotFound)
}
