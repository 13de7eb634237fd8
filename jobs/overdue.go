/*
Package jobs runs scheduled background work.

PURPOSE:
  The overdue sweeper periodically flags out bookings whose return date
  has passed. The dashboard surfaces the flag; the late fee itself is
  assessed once, at return settlement, priced off the rate card - the
  sweeper never touches the ledger, so there is nothing to double-post.

DESIGN:
  - cron (robfig/cron) in UTC with a configurable schedule (default hourly)
  - Each run re-derives candidates from the store: out, not yet flagged,
    return date strictly before today
  - A flagged booking is never a candidate again, so runs are idempotent

USAGE:
  sweeper := jobs.NewOverdueSweeper(store)
  sweeper.Start()
  // ... later
  sweeper.Stop()

SEE ALSO:
  - booking/store.go: ListOverdueCandidates / MarkOverdue
  - api/handlers.go: Late-fee posting at return time
*/
package jobs

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/meridian/rental-engine/booking"
	"github.com/meridian/rental-engine/calendar"
)

// DefaultSchedule runs the sweep at the top of every hour.
const DefaultSchedule = "@hourly"

// OverdueSweeper flags out bookings that are past their return date.
type OverdueSweeper struct {
	Store    booking.Store
	Schedule string

	cron *cron.Cron
}

// NewOverdueSweeper creates a sweeper with the default schedule.
func NewOverdueSweeper(store booking.Store) *OverdueSweeper {
	return &OverdueSweeper{
		Store:    store,
		Schedule: DefaultSchedule,
	}
}

// Start registers the cron entry and begins sweeping. The first sweep runs
// immediately so a restarted server doesn't wait out the schedule.
func (s *OverdueSweeper) Start() error {
	s.cron = cron.New(cron.WithLocation(time.UTC))
	if _, err := s.cron.AddFunc(s.Schedule, func() {
		s.sweep()
	}); err != nil {
		return err
	}
	s.cron.Start()

	go s.sweep()

	log.Printf("[Sweeper] Started with schedule %q", s.Schedule)
	return nil
}

// Stop halts the scheduler and waits for a running sweep to finish.
func (s *OverdueSweeper) Stop() {
	if s.cron != nil {
		<-s.cron.Stop().Done()
		log.Println("[Sweeper] Stopped")
	}
}

func (s *OverdueSweeper) sweep() {
	flagged, err := s.RunOnce(context.Background(), calendar.Today())
	if err != nil {
		log.Printf("[Sweeper] Sweep failed: %v", err)
		return
	}
	if flagged > 0 {
		log.Printf("[Sweeper] Flagged %d overdue booking(s)", flagged)
	}
}

// RunOnce flags every candidate overdue booking as of the given day and
// returns how many were flagged. Safe to call repeatedly: flagged bookings
// are excluded from the candidate set.
func (s *OverdueSweeper) RunOnce(ctx context.Context, asOf calendar.Date) (int, error) {
	candidates, err := s.Store.ListOverdueCandidates(ctx, asOf)
	if err != nil {
		return 0, err
	}

	flagged := 0
	for _, b := range candidates {
		if err := s.Store.MarkOverdue(ctx, b.ID); err != nil {
			log.Printf("[Sweeper] Failed to flag booking %s: %v", b.ID, err)
			continue
		}
		flagged++
	}
	return flagged, nil
}
