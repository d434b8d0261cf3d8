package calendar

import (
	"context"
	"time"
)

// Repository exposes Saturday-override read operations.
type Repository interface {
	ListByLeagueWindow(ctx context.Context, leagueID string, from, to time.Time) ([]SaturdayOverride, error)
}
