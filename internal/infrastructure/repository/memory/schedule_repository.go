package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/ackerman1984/d-sports-sub002/internal/domain/schedule"
)

// ScheduleStore keeps a season's matchdays, matches, rest counters, and
// generation runs together, mirroring the transactional replace the SQL
// implementation performs. RestCounters() and Runs() expose the narrower
// repository views over the same state.
type ScheduleStore struct {
	mu        sync.RWMutex
	matchdays map[string][]schedule.Matchday
	matches   map[string][]schedule.Match
	counters  map[string][]schedule.RestCounter
	runs      map[string][]schedule.GenerationRun
	statuses  map[string]string
	locked    map[string]bool
}

func NewScheduleStore() *ScheduleStore {
	return &ScheduleStore{
		matchdays: make(map[string][]schedule.Matchday),
		matches:   make(map[string][]schedule.Match),
		counters:  make(map[string][]schedule.RestCounter),
		runs:      make(map[string][]schedule.GenerationRun),
		statuses:  make(map[string]string),
		locked:    make(map[string]bool),
	}
}

func (s *ScheduleStore) ListMatchdays(_ context.Context, seasonID string) ([]schedule.Matchday, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]schedule.Matchday(nil), s.matchdays[seasonID]...), nil
}

func (s *ScheduleStore) ListMatches(_ context.Context, seasonID string) ([]schedule.Match, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]schedule.Match(nil), s.matches[seasonID]...), nil
}

func (s *ScheduleStore) ReplaceSeasonSchedule(_ context.Context, input schedule.ReplaceInput) (schedule.ReplaceResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.locked[input.SeasonID] {
		return schedule.ReplaceResult{}, schedule.ErrLocked
	}

	kept := make([]schedule.Match, 0)
	for _, m := range s.matches[input.SeasonID] {
		if m.Status == schedule.StatusInProgress || m.Status == schedule.StatusFinished {
			kept = append(kept, m)
		}
	}

	run := input.Run
	if len(kept) > 0 {
		run.Warnings = append(append([]string(nil), run.Warnings...),
			fmt.Sprintf("kept %d matches already in progress or finished", len(kept)))
	}

	s.matchdays[input.SeasonID] = append([]schedule.Matchday(nil), input.Matchdays...)
	s.matches[input.SeasonID] = append(kept, input.Matches...)
	s.counters[input.SeasonID] = append([]schedule.RestCounter(nil), input.RestCounters...)
	s.runs[input.SeasonID] = append(s.runs[input.SeasonID], run)
	s.statuses[input.SeasonID] = input.SeasonStatus

	return schedule.ReplaceResult{PlayedKept: len(kept)}, nil
}

// SetLocked simulates another generation holding the season's advisory
// lock.
func (s *ScheduleStore) SetLocked(seasonID string, locked bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.locked[seasonID] = locked
}

// SeasonStatus returns the status the last replace recorded, or "".
func (s *ScheduleStore) SeasonStatus(seasonID string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.statuses[seasonID]
}

// SeedMatches pre-loads match rows, bypassing the replace path.
func (s *ScheduleStore) SeedMatches(seasonID string, matches []schedule.Match) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.matches[seasonID] = append(s.matches[seasonID], matches...)
}

// SeedCounters pre-loads rest counter rows.
func (s *ScheduleStore) SeedCounters(seasonID string, counters []schedule.RestCounter) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.counters[seasonID] = append([]schedule.RestCounter(nil), counters...)
}

func (s *ScheduleStore) RestCounters() *RestCounterRepository {
	return &RestCounterRepository{store: s}
}

func (s *ScheduleStore) Runs() *GenerationRunRepository {
	return &GenerationRunRepository{store: s}
}

type RestCounterRepository struct {
	store *ScheduleStore
}

func (r *RestCounterRepository) ListBySeason(_ context.Context, seasonID string) ([]schedule.RestCounter, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	return append([]schedule.RestCounter(nil), r.store.counters[seasonID]...), nil
}

type GenerationRunRepository struct {
	store *ScheduleStore
}

func (r *GenerationRunRepository) Insert(_ context.Context, run schedule.GenerationRun) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.runs[run.SeasonID] = append(r.store.runs[run.SeasonID], run)
	return nil
}

func (r *GenerationRunRepository) ListBySeason(_ context.Context, seasonID string) ([]schedule.GenerationRun, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	return append([]schedule.GenerationRun(nil), r.store.runs[seasonID]...), nil
}
