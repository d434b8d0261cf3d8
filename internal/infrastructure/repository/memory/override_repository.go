package memory

import (
	"context"
	"sync"
	"time"

	"github.com/ackerman1984/d-sports-sub002/internal/domain/calendar"
)

type OverrideRepository struct {
	mu    sync.RWMutex
	items []calendar.SaturdayOverride
}

func NewOverrideRepository(overrides []calendar.SaturdayOverride) *OverrideRepository {
	return &OverrideRepository{items: append([]calendar.SaturdayOverride(nil), overrides...)}
}

func (r *OverrideRepository) ListByLeagueWindow(_ context.Context, leagueID string, from, to time.Time) ([]calendar.SaturdayOverride, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]calendar.SaturdayOverride, 0, len(r.items))
	for _, ov := range r.items {
		if ov.LeagueID != leagueID {
			continue
		}
		if ov.Date.Before(from) || ov.Date.After(to) {
			continue
		}
		out = append(out, ov)
	}

	return out, nil
}

func (r *OverrideRepository) Put(ov calendar.SaturdayOverride) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items = append(r.items, ov)
}
