package calendar_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meridian/rental-engine/calendar"
)

func day(d int) calendar.Date {
	return calendar.NewDate(2024, time.January, d)
}

func rng(start, end int) calendar.DateRange {
	return calendar.NewRange(day(start), day(end))
}

// =============================================================================
// OVERLAP PREDICATE
// =============================================================================

func TestDateRange_Overlaps_Symmetric(t *testing.T) {
	cases := []struct {
		name string
		a, b calendar.DateRange
	}{
		{"partial overlap", rng(1, 5), rng(3, 9)},
		{"contained", rng(1, 10), rng(4, 6)},
		{"adjacent", rng(1, 5), rng(5, 9)},
		{"disjoint", rng(1, 5), rng(6, 9)},
		{"identical", rng(2, 4), rng(2, 4)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.a.Overlaps(tc.b), tc.b.Overlaps(tc.a),
				"overlaps must be symmetric")
		})
	}
}

func TestDateRange_Overlaps_Self(t *testing.T) {
	r := rng(3, 7)
	assert.True(t, r.Overlaps(r), "any range overlaps itself")

	single := rng(3, 3)
	assert.True(t, single.Overlaps(single), "single-day range overlaps itself")
}

func TestDateRange_Overlaps_AdjacencyIsOverlap(t *testing.T) {
	// Both endpoints are inclusive: a booking ending on day 5 blocks
	// another starting on day 5 (no same-day handover).
	assert.True(t, rng(1, 5).Overlaps(rng(5, 9)))
	assert.True(t, rng(5, 9).Overlaps(rng(1, 5)))
}

func TestDateRange_Overlaps_Disjoint(t *testing.T) {
	assert.False(t, rng(1, 5).Overlaps(rng(6, 9)))
	assert.False(t, rng(6, 9).Overlaps(rng(1, 5)))
}

func TestDateRange_Overlaps_AcrossMonths(t *testing.T) {
	a := calendar.NewRange(
		calendar.NewDate(2024, time.January, 28),
		calendar.NewDate(2024, time.February, 3),
	)
	b := calendar.NewRange(
		calendar.NewDate(2024, time.February, 1),
		calendar.NewDate(2024, time.February, 10),
	)
	assert.True(t, a.Overlaps(b))
}

// =============================================================================
// RANGE BASICS
// =============================================================================

func TestDateRange_Validate(t *testing.T) {
	assert.NoError(t, rng(1, 5).Validate())
	assert.NoError(t, rng(3, 3).Validate(), "single-day range is valid")
	assert.ErrorIs(t, rng(5, 1).Validate(), calendar.ErrInvalidRange)
}

func TestDateRange_Contains(t *testing.T) {
	r := rng(2, 6)
	assert.True(t, r.Contains(day(2)), "start is included")
	assert.True(t, r.Contains(day(6)), "end is included")
	assert.True(t, r.Contains(day(4)))
	assert.False(t, r.Contains(day(1)))
	assert.False(t, r.Contains(day(7)))
}

func TestDateRange_Days(t *testing.T) {
	days := rng(3, 6).Days()
	require.Len(t, days, 4)
	assert.Equal(t, "2024-01-03", days[0].String())
	assert.Equal(t, "2024-01-06", days[3].String())
}

func TestDateRange_Length(t *testing.T) {
	assert.Equal(t, 1, rng(3, 3).Length())
	assert.Equal(t, 5, rng(1, 5).Length())
}

// =============================================================================
// DATE BASICS
// =============================================================================

func TestDate_Comparisons_IgnoreTimeOfDay(t *testing.T) {
	morning := calendar.FromTime(time.Date(2024, time.March, 10, 8, 30, 0, 0, time.UTC))
	evening := calendar.FromTime(time.Date(2024, time.March, 10, 22, 0, 0, 0, time.UTC))

	assert.True(t, morning.Equal(evening), "same day regardless of time")
	assert.False(t, morning.Before(evening))
}

func TestParseDate(t *testing.T) {
	d, err := calendar.ParseDate("2024-06-15")
	require.NoError(t, err)
	assert.Equal(t, "2024-06-15", d.String())

	_, err = calendar.ParseDate("15/06/2024")
	assert.Error(t, err)
}

func TestDaysBetween(t *testing.T) {
	assert.Equal(t, 0, calendar.DaysBetween(day(5), day(5)))
	assert.Equal(t, 4, calendar.DaysBetween(day(1), day(5)))
	assert.Equal(t, -4, calendar.DaysBetween(day(5), day(1)))
}
