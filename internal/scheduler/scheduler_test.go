package scheduler

import (
	"testing"
	"time"

	"github.com/iliyamo/health-tip-agent/internal/model"
)

func at(hour, min int) time.Time {
	return time.Date(2025, 6, 10, hour, min, 0, 0, time.UTC)
}

func TestNextFiring(t *testing.T) {
	cases := []struct {
		now      time.Time
		wantHour int
		wantDay  int
		wantSlot string
	}{
		{at(8, 0), 9, 10, model.SlotMorning},
		{at(10, 30), 15, 10, model.SlotAfternoon},
		{at(16, 45), 20, 10, model.SlotEvening},
		{at(21, 0), 9, 11, model.SlotMorning},   // rolls over to tomorrow
		{at(9, 0), 15, 10, model.SlotAfternoon}, // firing instants are strictly in the future
		{at(20, 0), 9, 11, model.SlotMorning},
	}
	for _, c := range cases {
		next, slot := NextFiring(c.now)
		if next.Hour() != c.wantHour || next.Day() != c.wantDay {
			t.Errorf("NextFiring(%v) = %v, want day %d hour %d", c.now, next, c.wantDay, c.wantHour)
		}
		if slot != c.wantSlot {
			t.Errorf("NextFiring(%v) slot = %q, want %q", c.now, slot, c.wantSlot)
		}
		if !next.After(c.now) {
			t.Errorf("NextFiring(%v) = %v is not in the future", c.now, next)
		}
		if next.Minute() != 0 || next.Second() != 0 {
			t.Errorf("NextFiring(%v) = %v not aligned to the hour", c.now, next)
		}
	}
}

func TestNextFiringNonUTCInput(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)
	// 22:00 UTC+3 is 19:00 UTC, so the evening slot is still ahead.
	now := time.Date(2025, 6, 10, 22, 0, 0, 0, loc)
	next, slot := NextFiring(now)
	if slot != model.SlotEvening {
		t.Fatalf("slot = %q, want evening", slot)
	}
	if next.Hour() != 20 || next.Day() != 10 {
		t.Fatalf("next = %v, want 20:00 UTC same day", next)
	}
}
