package memory

import (
	"context"
	"sync"

	"github.com/ackerman1984/d-sports-sub002/internal/domain/team"
)

type TeamRepository struct {
	mu    sync.RWMutex
	items []team.Team
}

func NewTeamRepository(teams []team.Team) *TeamRepository {
	return &TeamRepository{items: append([]team.Team(nil), teams...)}
}

func (r *TeamRepository) ListActiveByLeague(_ context.Context, leagueID string) ([]team.Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]team.Team, 0, len(r.items))
	for _, t := range r.items {
		if t.LeagueID == leagueID && t.Active {
			out = append(out, t)
		}
	}

	return out, nil
}
