package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/ackerman1984/d-sports-sub002/internal/domain/schedule"
	"github.com/ackerman1984/d-sports-sub002/internal/domain/season"
)

// ScheduleService serves read access to a season's generated calendar.
type ScheduleService struct {
	seasonRepo   season.Repository
	scheduleRepo schedule.Repository
	restRepo     schedule.RestCounterRepository
	runRepo      schedule.GenerationRunRepository
}

func NewScheduleService(
	seasonRepo season.Repository,
	scheduleRepo schedule.Repository,
	restRepo schedule.RestCounterRepository,
	runRepo schedule.GenerationRunRepository,
) *ScheduleService {
	return &ScheduleService{
		seasonRepo:   seasonRepo,
		scheduleRepo: scheduleRepo,
		restRepo:     restRepo,
		runRepo:      runRepo,
	}
}

func (s *ScheduleService) ListMatchdays(ctx context.Context, seasonID string) ([]schedule.Matchday, error) {
	seasonID, err := s.requireSeason(ctx, seasonID)
	if err != nil {
		return nil, err
	}
	matchdays, err := s.scheduleRepo.ListMatchdays(ctx, seasonID)
	if err != nil {
		return nil, fmt.Errorf("list matchdays: %w", err)
	}
	return matchdays, nil
}

func (s *ScheduleService) ListMatches(ctx context.Context, seasonID string) ([]schedule.Match, error) {
	seasonID, err := s.requireSeason(ctx, seasonID)
	if err != nil {
		return nil, err
	}
	matches, err := s.scheduleRepo.ListMatches(ctx, seasonID)
	if err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}
	return matches, nil
}

func (s *ScheduleService) ListRestCounters(ctx context.Context, seasonID string) ([]schedule.RestCounter, error) {
	seasonID, err := s.requireSeason(ctx, seasonID)
	if err != nil {
		return nil, err
	}
	counters, err := s.restRepo.ListBySeason(ctx, seasonID)
	if err != nil {
		return nil, fmt.Errorf("list rest counters: %w", err)
	}
	return counters, nil
}

func (s *ScheduleService) ListGenerationRuns(ctx context.Context, seasonID string) ([]schedule.GenerationRun, error) {
	seasonID, err := s.requireSeason(ctx, seasonID)
	if err != nil {
		return nil, err
	}
	runs, err := s.runRepo.ListBySeason(ctx, seasonID)
	if err != nil {
		return nil, fmt.Errorf("list generation runs: %w", err)
	}
	return runs, nil
}

func (s *ScheduleService) requireSeason(ctx context.Context, seasonID string) (string, error) {
	seasonID = strings.TrimSpace(seasonID)
	if seasonID == "" {
		return "", fmt.Errorf("%w: season id is required", ErrInvalidInput)
	}
	_, exists, err := s.seasonRepo.GetByID(ctx, seasonID)
	if err != nil {
		return "", fmt.Errorf("get season: %w", err)
	}
	if !exists {
		return "", fmt.Errorf("%w: season=%s", ErrNotFound, seasonID)
	}
	return seasonID, nil
}
