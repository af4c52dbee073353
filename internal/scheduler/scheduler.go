// Package scheduler fires the scheduled delivery three times a day at fixed
// UTC wall-clock times. It is a single repeating timer, not a job system:
// each tick calls the delivery service directly, and only one instance
// should run per deployment (a deployment concern, not enforced here).
package scheduler

import (
	"context"
	"log"
	"time"

	"github.com/iliyamo/health-tip-agent/internal/model"
	"github.com/iliyamo/health-tip-agent/internal/service"
)

// firings maps the daily UTC firing hours to their time slots, in day order.
var firings = []struct {
	Hour int
	Slot string
}{
	{9, model.SlotMorning},
	{15, model.SlotAfternoon},
	{20, model.SlotEvening},
}

// Scheduler triggers scheduled tip deliveries. Now is swappable for tests
// and defaults to time.Now.
type Scheduler struct {
	svc *service.Delivery
	now func() time.Time
}

func New(svc *service.Delivery) *Scheduler {
	return &Scheduler{svc: svc, now: time.Now}
}

// Start runs the firing loop until ctx is cancelled. Call with 'go'. Each
// firing is fire-and-forget: a failed delivery is logged and the timer is
// re-armed for the next slot regardless.
func (s *Scheduler) Start(ctx context.Context) {
	for {
		next, slot := NextFiring(s.now().UTC())
		wait := time.Until(next)
		log.Printf("scheduler: next firing at %s (slot=%s)", next.Format(time.RFC3339), slot)

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			log.Printf("scheduler: stopped")
			return
		case <-timer.C:
		}

		runCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
		if _, err := s.svc.RunScheduled(runCtx, slot); err != nil {
			log.Printf("scheduler: delivery failed (slot=%s): %v", slot, err)
		} else {
			log.Printf("scheduler: delivery sent (slot=%s)", slot)
		}
		cancel()
	}
}

// NextFiring returns the next firing instant strictly after now, with its
// slot. After the last slot of the day it rolls over to tomorrow's first.
func NextFiring(now time.Time) (time.Time, string) {
	now = now.UTC()
	for _, f := range firings {
		at := time.Date(now.Year(), now.Month(), now.Day(), f.Hour, 0, 0, 0, time.UTC)
		if now.Before(at) {
			return at, f.Slot
		}
	}
	tomorrow := now.AddDate(0, 0, 1)
	first := firings[0]
	return time.Date(tomorrow.Year(), tomorrow.Month(), tomorrow.Day(), first.Hour, 0, 0, 0, time.UTC), first.Slot
}
