package venue

import "context"

// FieldRepository exposes field read operations, ordered by priority.
type FieldRepository interface {
	ListActiveByLeague(ctx context.Context, leagueID string) ([]Field, error)
}

// TimeSlotRepository exposes time-slot read operations, ordered by
// position. ListEnabledForSeason resolves the season's enable/disable
// overrides against the league defaults.
type TimeSlotRepository interface {
	ListEnabledForSeason(ctx context.Context, seasonID string) ([]TimeSlot, error)
}
