package schedule

import "context"

// ReplaceInput carries everything one successful generation run commits
// in a single transaction.
type ReplaceInput struct {
	SeasonID     string
	SeasonStatus string
	Matchdays    []Matchday
	Matches      []Match
	RestCounters []RestCounter
	Run          GenerationRun
}

// ReplaceResult reports what the transaction found alongside its writes.
type ReplaceResult struct {
	PlayedKept int
}

// Repository owns matchday and match rows for generated schedules.
type Repository interface {
	ListMatchdays(ctx context.Context, seasonID string) ([]Matchday, error)
	ListMatches(ctx context.Context, seasonID string) ([]Match, error)
	// ReplaceSeasonSchedule voids the previous unplayed schedule and
	// commits the new one atomically under the season's advisory lock.
	// Returns ErrLocked when another run holds the lock.
	ReplaceSeasonSchedule(ctx context.Context, input ReplaceInput) (ReplaceResult, error)
}

// RestCounterRepository exposes bye counters per season.
type RestCounterRepository interface {
	ListBySeason(ctx context.Context, seasonID string) ([]RestCounter, error)
}

// GenerationRunRepository records generation attempts. Insert is used
// directly for failed runs; successful runs are written inside the
// replacement transaction.
type GenerationRunRepository interface {
	Insert(ctx context.Context, run GenerationRun) error
	ListBySeason(ctx context.Context, seasonID string) ([]GenerationRun, error)
}
