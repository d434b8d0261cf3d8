package usecase

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ackerman1984/d-sports-sub002/internal/domain/season"
	"github.com/ackerman1984/d-sports-sub002/internal/infrastructure/repository/memory"
)

type stubGenerator struct {
	failSeasons map[string]bool
}

func (g *stubGenerator) Generate(_ context.Context, input GenerateInput) (*GenerateResult, error) {
	if g.failSeasons[input.SeasonID] {
		return nil, fmt.Errorf("%w: no active fields configured", ErrConfiguration)
	}
	return &GenerateResult{SeasonID: input.SeasonID, MatchdayCount: 5, MatchCount: 15}, nil
}

func seedBatchSeasons() *memory.SeasonRepository {
	repo := memory.NewSeasonRepository(memory.SeedSeasons())
	repo.Put(season.Season{
		ID:                    "season-clausura-2026",
		LeagueID:              memory.LeagueIDSabatina,
		StartsOn:              time.Date(2026, time.August, 3, 0, 0, 0, 0, time.UTC),
		EndsOn:                time.Date(2026, time.October, 31, 0, 0, 0, 0, time.UTC),
		PlannedRounds:         5,
		MaxMatchesPerSaturday: 2,
		Status:                season.StatusDraft,
	})
	repo.Put(season.Season{
		ID:       "season-published",
		LeagueID: memory.LeagueIDSabatina,
		Status:   season.StatusPublished,
	})
	return repo
}

func TestBatchGenerationService_GeneratePending(t *testing.T) {
	svc := NewBatchGenerationService(seedBatchSeasons(), &stubGenerator{})

	res, err := svc.GeneratePending(t.Context(), BatchGenerateInput{LeagueID: memory.LeagueIDSabatina})
	require.NoError(t, err)

	// Published seasons never regenerate.
	require.Equal(t, 2, res.SeasonCount)
	require.Equal(t, 2, res.SuccessCount)
	require.Zero(t, res.FailedCount)
	require.Len(t, res.Items, 2)
	require.Equal(t, "season-apertura-2026", res.Items[0].SeasonID)
	require.Equal(t, "season-clausura-2026", res.Items[1].SeasonID)
	require.Equal(t, 15, res.Items[0].MatchCount)
}

func TestBatchGenerationService_OneFailureDoesNotBlockOthers(t *testing.T) {
	svc := NewBatchGenerationService(seedBatchSeasons(), &stubGenerator{
		failSeasons: map[string]bool{"season-clausura-2026": true},
	})

	res, err := svc.GeneratePending(t.Context(), BatchGenerateInput{LeagueID: memory.LeagueIDSabatina, MaxWorkers: 1})
	require.NoError(t, err)
	require.Equal(t, 1, res.SuccessCount)
	require.Equal(t, 1, res.FailedCount)
	require.Equal(t, batchStatusFailed, res.Items[1].Status)
	require.Contains(t, res.Items[1].Message, "no active fields")
}

func TestBatchGenerationService_RequiresLeague(t *testing.T) {
	svc := NewBatchGenerationService(seedBatchSeasons(), &stubGenerator{})

	_, err := svc.GeneratePending(t.Context(), BatchGenerateInput{})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestBatchGenerationService_EmptyLeague(t *testing.T) {
	svc := NewBatchGenerationService(seedBatchSeasons(), &stubGenerator{})

	res, err := svc.GeneratePending(t.Context(), BatchGenerateInput{LeagueID: memory.LeagueIDVeteranos})
	require.NoError(t, err)
	require.Zero(t, res.SeasonCount)
	require.Empty(t, res.Items)
}
