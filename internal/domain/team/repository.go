package team

import "context"

// Repository exposes team read operations.
type Repository interface {
	ListActiveByLeague(ctx context.Context, leagueID string) ([]Team, error)
}
