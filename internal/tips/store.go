// Package tips holds the in-memory tip store. The store is built once at
// startup, never mutated afterwards, and handed to the handlers and the
// scheduler explicitly. Concurrent reads are safe because nothing writes.
package tips

import (
	"errors"
	"math/rand"

	"github.com/iliyamo/health-tip-agent/internal/model"
)

// ErrEmptyStore is returned when a pick is attempted against a store with no
// tips at all. This is a deployment misconfiguration, not a normal runtime
// condition; handlers translate it into an internal error.
var ErrEmptyStore = errors.New("tip store is empty")

// Store is a read-only collection of tips with a per-slot index built at
// construction time.
type Store struct {
	all          []model.Tip
	bySlot       map[string][]model.Tip
	slotFallback bool
}

// NewStore builds a Store from the given tips. When slotFallback is true a
// slot-filtered pick falls back to the full list if no tip carries that
// slot; when false the pick fails with ErrEmptyStore instead. The fallback
// behaviour is policy, so it is a constructor argument rather than a
// hard-coded rule.
func NewStore(list []model.Tip, slotFallback bool) *Store {
	s := &Store{
		all:          make([]model.Tip, len(list)),
		bySlot:       make(map[string][]model.Tip),
		slotFallback: slotFallback,
	}
	copy(s.all, list)
	for _, t := range s.all {
		if t.TimeSlot != "" {
			s.bySlot[t.TimeSlot] = append(s.bySlot[t.TimeSlot], t)
		}
	}
	return s
}

// Default returns a Store seeded with the built-in tip list and fallback
// enabled.
func Default() *Store { return NewStore(SeedTips(), true) }

// PickRandom returns a uniformly random tip. If slot is non-empty the pick
// is restricted to tips tagged with that slot; an empty subset either falls
// back to the full store or fails, depending on the fallback policy. An
// empty slot string picks from the full store.
func (s *Store) PickRandom(slot string) (model.Tip, error) {
	if len(s.all) == 0 {
		return model.Tip{}, ErrEmptyStore
	}
	pool := s.all
	if slot != "" {
		if sub := s.bySlot[slot]; len(sub) > 0 {
			pool = sub
		} else if !s.slotFallback {
			return model.Tip{}, ErrEmptyStore
		}
	}
	return pool[rand.Intn(len(pool))], nil
}

// All returns a copy of the full tip list.
func (s *Store) All() []model.Tip {
	out := make([]model.Tip, len(s.all))
	copy(out, s.all)
	return out
}

// Len returns the number of tips in the store.
func (s *Store) Len() int { return len(s.all) }
