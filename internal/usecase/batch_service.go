package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/panjf2000/ants/v2"

	"github.com/ackerman1984/d-sports-sub002/internal/domain/season"
)

const defaultBatchWorkers = 4

// CalendarGenerator is the slice of GenerationService the batch job
// needs; it keeps the job testable without a full service graph.
type CalendarGenerator interface {
	Generate(ctx context.Context, input GenerateInput) (*GenerateResult, error)
}

type BatchGenerateInput struct {
	LeagueID   string
	MaxWorkers int
	DryRun     bool
}

type BatchGenerateResult struct {
	LeagueID     string              `json:"league_id"`
	SeasonCount  int                 `json:"season_count"`
	SuccessCount int                 `json:"success_count"`
	FailedCount  int                 `json:"failed_count"`
	WorkerCount  int                 `json:"worker_count"`
	Items        []BatchGenerateItem `json:"items"`
}

type BatchGenerateItem struct {
	SeasonID      string `json:"season_id"`
	Status        string `json:"status"`
	MatchdayCount int    `json:"matchday_count"`
	MatchCount    int    `json:"match_count"`
	DurationMs    int64  `json:"duration_ms"`
	Message       string `json:"message,omitempty"`
}

const (
	batchStatusSuccess = "success"
	batchStatusFailed  = "failed"
)

// BatchGenerationService regenerates every draft or generated season of
// a league in one sweep, fanned out over a worker pool. Each season is
// its own transaction; one failure never blocks the others.
type BatchGenerationService struct {
	seasonRepo season.Repository
	generator  CalendarGenerator
}

func NewBatchGenerationService(seasonRepo season.Repository, generator CalendarGenerator) *BatchGenerationService {
	return &BatchGenerationService{seasonRepo: seasonRepo, generator: generator}
}

func (s *BatchGenerationService) GeneratePending(ctx context.Context, input BatchGenerateInput) (*BatchGenerateResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.BatchGenerationService.GeneratePending")
	defer span.End()

	leagueID := strings.TrimSpace(input.LeagueID)
	if leagueID == "" {
		return nil, fmt.Errorf("%w: league id is required", ErrInvalidInput)
	}

	seasons, err := s.seasonRepo.ListGeneratableByLeague(ctx, leagueID)
	if err != nil {
		return nil, errors.Wrap(err, "list generatable seasons")
	}

	workerCount := input.MaxWorkers
	if workerCount <= 0 {
		workerCount = defaultBatchWorkers
	}
	if workerCount > len(seasons) && len(seasons) > 0 {
		workerCount = len(seasons)
	}

	result := &BatchGenerateResult{
		LeagueID:    leagueID,
		SeasonCount: len(seasons),
		WorkerCount: workerCount,
		Items:       make([]BatchGenerateItem, 0, len(seasons)),
	}
	if len(seasons) == 0 {
		return result, nil
	}

	items := make(chan BatchGenerateItem, len(seasons))

	var successCount atomic.Int32
	var failedCount atomic.Int32

	pool, err := ants.NewPool(workerCount)
	if err != nil {
		return nil, errors.Wrap(err, "create worker pool")
	}
	defer pool.Release()

	var workers sync.WaitGroup
	for _, sn := range seasons {
		sn := sn
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()

			start := time.Now()
			item := BatchGenerateItem{SeasonID: sn.ID}

			res, genErr := s.generator.Generate(ctx, GenerateInput{SeasonID: sn.ID, DryRun: input.DryRun})
			item.DurationMs = time.Since(start).Milliseconds()
			if genErr != nil {
				item.Status = batchStatusFailed
				item.Message = genErr.Error()
				failedCount.Add(1)
			} else {
				item.Status = batchStatusSuccess
				item.MatchdayCount = res.MatchdayCount
				item.MatchCount = res.MatchCount
				successCount.Add(1)
			}

			items <- item
		}); err != nil {
			workers.Done()
			return nil, errors.Wrap(err, "submit season to worker pool")
		}
	}

	workers.Wait()
	close(items)

	for item := range items {
		result.Items = append(result.Items, item)
	}
	sort.SliceStable(result.Items, func(i, j int) bool {
		return result.Items[i].SeasonID < result.Items[j].SeasonID
	})

	result.SuccessCount = int(successCount.Load())
	result.FailedCount = int(failedCount.Load())

	return result, nil
}
