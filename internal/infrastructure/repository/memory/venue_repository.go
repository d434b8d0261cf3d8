package memory

import (
	"context"
	"sync"

	"github.com/ackerman1984/d-sports-sub002/internal/domain/venue"
)

type FieldRepository struct {
	mu    sync.RWMutex
	items []venue.Field
}

func NewFieldRepository(fields []venue.Field) *FieldRepository {
	return &FieldRepository{items: append([]venue.Field(nil), fields...)}
}

func (r *FieldRepository) ListActiveByLeague(_ context.Context, leagueID string) ([]venue.Field, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]venue.Field, 0, len(r.items))
	for _, f := range r.items {
		if f.LeagueID == leagueID && f.Active {
			out = append(out, f)
		}
	}

	return out, nil
}

type TimeSlotRepository struct {
	mu       sync.RWMutex
	items    []venue.TimeSlot
	bySeason map[string][]venue.TimeSlot
}

func NewTimeSlotRepository(slots []venue.TimeSlot) *TimeSlotRepository {
	return &TimeSlotRepository{
		items:    append([]venue.TimeSlot(nil), slots...),
		bySeason: make(map[string][]venue.TimeSlot),
	}
}

// SetSeasonSlots pins an explicit slot selection for one season,
// overriding the default-active set.
func (r *TimeSlotRepository) SetSeasonSlots(seasonID string, slots []venue.TimeSlot) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.bySeason[seasonID] = append([]venue.TimeSlot(nil), slots...)
}

func (r *TimeSlotRepository) ListEnabledForSeason(_ context.Context, seasonID string) ([]venue.TimeSlot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if slots, ok := r.bySeason[seasonID]; ok {
		return append([]venue.TimeSlot(nil), slots...), nil
	}

	out := make([]venue.TimeSlot, 0, len(r.items))
	for _, s := range r.items {
		if s.DefaultActive {
			out = append(out, s)
		}
	}

	return out, nil
}
