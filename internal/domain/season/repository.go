package season

import "context"

// Repository exposes season read operations. Status transitions happen
// inside the schedule replacement transaction, not here.
type Repository interface {
	GetByID(ctx context.Context, id string) (Season, bool, error)
	ListGeneratableByLeague(ctx context.Context, leagueID string) ([]Season, error)
}
