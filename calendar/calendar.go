/*
Package calendar provides day-precision dates and inclusive date ranges.

PURPOSE:
  Rentals occupy whole calendar days: a booking picked up on the 10th and
  returned on the 15th holds the product for every day from the 10th through
  the 15th, inclusive. This package provides the Date and DateRange value
  types that the rest of the system builds on.

KEY CONCEPTS:
  - Date: A specific calendar day (time-of-day is ignored, always UTC)
  - DateRange: An inclusive [Start, End] span of days
  - Overlap: Two ranges overlap iff they share at least one calendar day

INCLUSIVE BOUNDARIES:
  Overlaps() treats BOTH endpoints as occupied. A booking ending on day N
  and another starting on day N conflict: same-day handover is not allowed.
  Changing this to exclusive-end semantics would silently change which
  bookings are accepted, so don't.

SEE ALSO:
  - booking/conflict.go: Conflict detection over active bookings
  - ledger/ledger.go: Period-scoped statement computation
*/
package calendar

import (
	"errors"
	"fmt"
	"time"
)

// =============================================================================
// DATE - Day-precision point in time
// =============================================================================

// Date is a calendar day. The time-of-day component is ignored in all
// comparisons; dates are normalized to midnight UTC.
type Date struct {
	Time time.Time
}

// NewDate constructs a Date for the given calendar day.
func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses an ISO date ("2006-01-02").
func ParseDate(s string) (Date, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q (use YYYY-MM-DD): %w", s, err)
	}
	return Date{Time: t}, nil
}

// FromTime converts an arbitrary timestamp to its calendar day.
func FromTime(t time.Time) Date {
	return NewDate(t.Year(), t.Month(), t.Day())
}

// Today returns the current calendar day.
func Today() Date {
	return FromTime(time.Now().UTC())
}

func (d Date) normalize() time.Time {
	return time.Date(d.Time.Year(), d.Time.Month(), d.Time.Day(), 0, 0, 0, 0, time.UTC)
}

// Comparison
func (d Date) Before(other Date) bool        { return d.normalize().Before(other.normalize()) }
func (d Date) After(other Date) bool         { return d.normalize().After(other.normalize()) }
func (d Date) Equal(other Date) bool         { return d.normalize().Equal(other.normalize()) }
func (d Date) BeforeOrEqual(other Date) bool { return d.Before(other) || d.Equal(other) }
func (d Date) AfterOrEqual(other Date) bool  { return d.After(other) || d.Equal(other) }

// Arithmetic
func (d Date) AddDays(n int) Date { return Date{Time: d.Time.AddDate(0, 0, n)} }

// Properties
func (d Date) Year() int         { return d.Time.Year() }
func (d Date) Month() time.Month { return d.Time.Month() }
func (d Date) Day() int          { return d.Time.Day() }
func (d Date) IsZero() bool      { return d.Time.IsZero() }

func (d Date) String() string { return d.normalize().Format("2006-01-02") }

// DaysBetween returns the number of whole days from 'from' to 'to'.
// Same day = 0; negative if 'to' is before 'from'.
func DaysBetween(from, to Date) int {
	return int(to.normalize().Sub(from.normalize()).Hours() / 24)
}

// =============================================================================
// DATE RANGE - Inclusive [Start, End] span of days
// =============================================================================

// ErrInvalidRange is returned when a range ends before it starts.
var ErrInvalidRange = errors.New("invalid date range: end before start")

// DateRange is an inclusive span of calendar days.
// INVARIANT: Start <= End. Constructors at the edge of the system call
// Validate(); the overlap predicate assumes the invariant holds.
type DateRange struct {
	Start Date
	End   Date
}

// NewRange constructs a range without validating it. Callers that accept
// external input should call Validate.
func NewRange(start, end Date) DateRange {
	return DateRange{Start: start, End: end}
}

// Validate checks the Start <= End invariant.
func (r DateRange) Validate() error {
	if r.End.Before(r.Start) {
		return ErrInvalidRange
	}
	return nil
}

// Overlaps returns true if the two ranges share at least one calendar day.
// Both endpoints are inclusive: [1,5] and [5,9] overlap on day 5.
func (r DateRange) Overlaps(other DateRange) bool {
	return r.Start.BeforeOrEqual(other.End) && r.End.AfterOrEqual(other.Start)
}

// Contains returns true if the day falls within [Start, End].
func (r DateRange) Contains(d Date) bool {
	return d.AfterOrEqual(r.Start) && d.BeforeOrEqual(r.End)
}

// Days returns every day in the range, in order.
func (r DateRange) Days() []Date {
	var days []Date
	current := r.Start
	for current.BeforeOrEqual(r.End) {
		days = append(days, current)
		current = current.AddDays(1)
	}
	return days
}

// Length returns the number of days in the range, inclusive.
// A single-day range has length 1.
func (r DateRange) Length() int {
	return DaysBetween(r.Start, r.End) + 1
}

func (r DateRange) String() string {
	return "[" + r.Start.String() + ", " + r.End.String() + "]"
}
