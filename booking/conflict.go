/*
conflict.go - Pure conflict detection over a snapshot of bookings

PURPOSE:
  Decides whether a candidate date range is free for a product given the
  active bookings the caller has loaded. This is the single source of
  overlap logic: the pre-submit availability hint and the commit-time
  validation both call it, rather than re-deriving the comparison.

PURITY:
  CheckConflict never touches storage and never fails on valid input.
  It works over a caller-owned snapshot, so two concurrent callers can
  both see "free" and race to insert. That race is closed at the store
  (unique day-occupancy index), not here. Treat this function as a fast
  path, not a guarantee.

SEE ALSO:
  - calendar/calendar.go: The inclusive-both-ends overlap predicate
  - store/sqlite: The atomic enforcement of the same invariant
*/
package booking

import "github.com/meridian/rental-engine/calendar"

// CheckConflict decides whether the candidate range is free for the product.
//
// The caller is expected to pass bookings already scoped to the product, but
// the check re-filters by product and active status to avoid cross-product
// false positives. excludeID skips the booking being edited (pass "" when
// creating). The first overlapping booking wins; any conflict blocks, so no
// particular tie-break is needed.
func CheckConflict(
	candidate calendar.DateRange,
	productID ProductID,
	bookings []Booking,
	excludeID BookingID,
) ConflictResult {
	for _, b := range bookings {
		if !b.Status.Active() {
			continue
		}
		if b.ProductID != productID {
			continue
		}
		if excludeID != "" && b.ID == excludeID {
			continue
		}
		if candidate.Overlaps(b.Period) {
			return ConflictWith(b.ID)
		}
	}
	return Free()
}
