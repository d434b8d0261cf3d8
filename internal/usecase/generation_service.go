package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/ackerman1984/d-sports-sub002/internal/domain/calendar"
	"github.com/ackerman1984/d-sports-sub002/internal/domain/schedule"
	"github.com/ackerman1984/d-sports-sub002/internal/domain/season"
	"github.com/ackerman1984/d-sports-sub002/internal/domain/team"
	"github.com/ackerman1984/d-sports-sub002/internal/domain/venue"
	"github.com/ackerman1984/d-sports-sub002/internal/platform/id"
)

type GenerateInput struct {
	SeasonID string
	// DryRun computes the full calendar and summary without touching
	// storage.
	DryRun bool
}

type GenerateResult struct {
	SeasonID      string               `json:"season_id"`
	RunID         string               `json:"run_id,omitempty"`
	DryRun        bool                 `json:"dry_run"`
	Outcome       string               `json:"outcome"`
	MatchdayCount int                  `json:"matchday_count"`
	MatchCount    int                  `json:"match_count"`
	ByeCount      int                  `json:"bye_count"`
	Reassignments int                  `json:"bye_reassignments"`
	Warnings      []string             `json:"warnings,omitempty"`
	RestCounters  []GeneratedRestCount `json:"rest_counters"`
}

type GeneratedRestCount struct {
	TeamID          string `json:"team_id"`
	CarriedOverByes int    `json:"carried_over_byes"`
	ScheduledByes   int    `json:"scheduled_byes"`
}

// GenerationService builds a season's full Saturday calendar: round-robin
// pairings, bye fairness, and slot placement, persisted in one
// transaction together with the audit run.
type GenerationService struct {
	seasonRepo   season.Repository
	teamRepo     team.Repository
	fieldRepo    venue.FieldRepository
	timeSlotRepo venue.TimeSlotRepository
	overrideRepo calendar.Repository
	scheduleRepo schedule.Repository
	restRepo     schedule.RestCounterRepository
	runRepo      schedule.GenerationRunRepository
	idGen        id.Generator
	now          func() time.Time
}

func NewGenerationService(
	seasonRepo season.Repository,
	teamRepo team.Repository,
	fieldRepo venue.FieldRepository,
	timeSlotRepo venue.TimeSlotRepository,
	overrideRepo calendar.Repository,
	scheduleRepo schedule.Repository,
	restRepo schedule.RestCounterRepository,
	runRepo schedule.GenerationRunRepository,
	idGen id.Generator,
) *GenerationService {
	return &GenerationService{
		seasonRepo:   seasonRepo,
		teamRepo:     teamRepo,
		fieldRepo:    fieldRepo,
		timeSlotRepo: timeSlotRepo,
		overrideRepo: overrideRepo,
		scheduleRepo: scheduleRepo,
		restRepo:     restRepo,
		runRepo:      runRepo,
		idGen:        idGen,
		now:          time.Now,
	}
}

func (s *GenerationService) Generate(ctx context.Context, input GenerateInput) (*GenerateResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.GenerationService.Generate")
	defer span.End()

	startedAt := s.now().UTC()

	seasonID := strings.TrimSpace(input.SeasonID)
	if seasonID == "" {
		return nil, fmt.Errorf("%w: season id is required", ErrInvalidInput)
	}

	sn, exists, err := s.seasonRepo.GetByID(ctx, seasonID)
	if err != nil {
		return nil, fmt.Errorf("get season: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: season=%s", ErrNotFound, seasonID)
	}
	if !sn.Generatable() {
		cause := fmt.Errorf("%w: season %s is %s; only draft or generated seasons can be (re)generated", ErrInvalidInput, seasonID, sn.Status)
		return nil, s.recordRejection(ctx, seasonID, startedAt, input.DryRun, cause)
	}

	teams, err := s.teamRepo.ListActiveByLeague(ctx, sn.LeagueID)
	if err != nil {
		return nil, fmt.Errorf("list active teams: %w", err)
	}
	fields, err := s.fieldRepo.ListActiveByLeague(ctx, sn.LeagueID)
	if err != nil {
		return nil, fmt.Errorf("list active fields: %w", err)
	}
	slots, err := s.timeSlotRepo.ListEnabledForSeason(ctx, seasonID)
	if err != nil {
		return nil, fmt.Errorf("list enabled time slots: %w", err)
	}
	overrides, err := s.overrideRepo.ListByLeagueWindow(ctx, sn.LeagueID, sn.StartsOn, sn.EndsOn)
	if err != nil {
		return nil, fmt.Errorf("list saturday overrides: %w", err)
	}
	counters, err := s.restRepo.ListBySeason(ctx, seasonID)
	if err != nil {
		return nil, fmt.Errorf("list rest counters: %w", err)
	}

	if err := validateSeasonSetup(sn, teams, fields, slots); err != nil {
		return nil, s.recordRejection(ctx, seasonID, startedAt, input.DryRun, err)
	}

	cfg := schedule.AllocatorConfig{
		StartsOn:         sn.StartsOn,
		EndsOn:           sn.EndsOn,
		Weekday:          time.Saturday,
		MaxMatchesPerDay: sn.MaxMatchesPerSaturday,
		FieldIDs:         fieldIDsByPriority(fields),
		TimeSlotIDs:      timeSlotIDsByPosition(slots),
		Overrides:        overrides,
	}
	if len(schedule.EligibleDates(cfg)) == 0 {
		cause := fmt.Errorf("%w: no eligible Saturday between %s and %s", ErrConfiguration,
			sn.StartsOn.Format("2006-01-02"), sn.EndsOn.Format("2006-01-02"))
		return nil, s.recordRejection(ctx, seasonID, startedAt, input.DryRun, cause)
	}

	carried := make(map[string]int, len(counters))
	for _, c := range counters {
		carried[c.TeamID] = c.CarriedOverByes
	}

	plan, err := schedule.BuildPairingPlan(teamOrderForPairing(teams, carried), sn.PlannedRounds)
	if err != nil {
		return nil, s.recordRejection(ctx, seasonID, startedAt, input.DryRun, fmt.Errorf("%w: %s", ErrConfiguration, err))
	}
	fairness := schedule.BalanceByes(plan, carried)
	alloc, conflict := schedule.AllocateSlots(plan, cfg)

	warnings := make([]string, 0, len(plan.Warnings)+len(fairness.Warnings)+len(alloc.Warnings))
	warnings = append(warnings, plan.Warnings...)
	warnings = append(warnings, fairness.Warnings...)
	warnings = append(warnings, alloc.Warnings...)

	if conflict != nil {
		if !input.DryRun {
			run := schedule.GenerationRun{
				SeasonID:         seasonID,
				Outcome:          schedule.RunFailure,
				MatchdaysCreated: 0,
				MatchesCreated:   0,
				Warnings:         warnings,
				Conflict:         conflict,
				StartedAt:        startedAt,
				FinishedAt:       s.now().UTC(),
			}
			if run.ID, err = s.idGen.NewID(); err != nil {
				return nil, fmt.Errorf("generate run id: %w", err)
			}
			if err := s.runRepo.Insert(ctx, run); err != nil {
				return nil, fmt.Errorf("record failed generation run: %w", err)
			}
		}
		return nil, &ConflictError{Conflict: *conflict}
	}

	for i := range alloc.Matchdays {
		alloc.Matchdays[i].SeasonID = seasonID
		if alloc.Matchdays[i].ID, err = s.idGen.NewID(); err != nil {
			return nil, fmt.Errorf("generate matchday id: %w", err)
		}
	}
	matchdayBySeq := make(map[int]string, len(alloc.Matchdays))
	for _, md := range alloc.Matchdays {
		matchdayBySeq[md.Seq] = md.ID
	}
	byeCount := 0
	for i := range alloc.Matches {
		alloc.Matches[i].SeasonID = seasonID
		alloc.Matches[i].MatchdayID = matchdayBySeq[alloc.Matches[i].MatchdaySeq]
		if alloc.Matches[i].ID, err = s.idGen.NewID(); err != nil {
			return nil, fmt.Errorf("generate match id: %w", err)
		}
		if alloc.Matches[i].Away.IsBye() {
			byeCount++
		}
	}

	restCounters := make([]schedule.RestCounter, 0, len(teams))
	resultCounters := make([]GeneratedRestCount, 0, len(teams))
	for _, t := range teams {
		restCounters = append(restCounters, schedule.RestCounter{
			SeasonID:        seasonID,
			TeamID:          t.ID,
			CarriedOverByes: carried[t.ID],
			ScheduledByes:   fairness.ByeCounts[t.ID],
		})
		resultCounters = append(resultCounters, GeneratedRestCount{
			TeamID:          t.ID,
			CarriedOverByes: carried[t.ID],
			ScheduledByes:   fairness.ByeCounts[t.ID],
		})
	}

	run := schedule.GenerationRun{
		SeasonID:         seasonID,
		Outcome:          schedule.RunSuccess,
		MatchdaysCreated: len(alloc.Matchdays),
		MatchesCreated:   len(alloc.Matches),
		Warnings:         warnings,
		StartedAt:        startedAt,
		FinishedAt:       s.now().UTC(),
	}
	if run.ID, err = s.idGen.NewID(); err != nil {
		return nil, fmt.Errorf("generate run id: %w", err)
	}

	result := &GenerateResult{
		SeasonID:      seasonID,
		RunID:         run.ID,
		DryRun:        input.DryRun,
		Outcome:       schedule.RunSuccess,
		MatchdayCount: len(alloc.Matchdays),
		MatchCount:    len(alloc.Matches),
		ByeCount:      byeCount,
		Reassignments: fairness.Reassignments,
		Warnings:      warnings,
		RestCounters:  resultCounters,
	}
	if input.DryRun {
		result.RunID = ""
		return result, nil
	}

	replaced, err := s.scheduleRepo.ReplaceSeasonSchedule(ctx, schedule.ReplaceInput{
		SeasonID:     seasonID,
		SeasonStatus: season.StatusGenerated,
		Matchdays:    alloc.Matchdays,
		Matches:      alloc.Matches,
		RestCounters: restCounters,
		Run:          run,
	})
	if err != nil {
		if errors.Is(err, schedule.ErrLocked) {
			return nil, fmt.Errorf("%w: season=%s", ErrGenerationRunning, seasonID)
		}
		return nil, fmt.Errorf("replace season schedule: %w", err)
	}
	if replaced.PlayedKept > 0 {
		result.Warnings = append(result.Warnings, fmt.Sprintf("kept %d matches already in progress or finished", replaced.PlayedKept))
	}

	return result, nil
}

// recordRejection writes the failure audit run for an attempt turned
// away before the engine produced a schedule, so rejected attempts show
// up next to conflicts in the run history. Dry runs stay unrecorded.
// Returns cause so rejection sites stay one-liners.
func (s *GenerationService) recordRejection(ctx context.Context, seasonID string, startedAt time.Time, dryRun bool, cause error) error {
	if dryRun {
		return cause
	}

	run := schedule.GenerationRun{
		SeasonID:   seasonID,
		Outcome:    schedule.RunFailure,
		Warnings:   []string{cause.Error()},
		StartedAt:  startedAt,
		FinishedAt: s.now().UTC(),
	}
	var err error
	if run.ID, err = s.idGen.NewID(); err != nil {
		return fmt.Errorf("generate run id: %w", err)
	}
	if err := s.runRepo.Insert(ctx, run); err != nil {
		return fmt.Errorf("record rejected generation run: %w", err)
	}

	return cause
}

func validateSeasonSetup(sn season.Season, teams []team.Team, fields []venue.Field, slots []venue.TimeSlot) error {
	var problems []string
	if !sn.StartsOn.Before(sn.EndsOn) {
		problems = append(problems, "season start date must precede the end date")
	}
	if sn.PlannedRounds <= 0 {
		problems = append(problems, "planned rounds must be positive")
	}
	if sn.MaxMatchesPerSaturday <= 0 {
		problems = append(problems, "max matches per Saturday must be positive")
	}
	if len(teams) < 2 {
		problems = append(problems, fmt.Sprintf("at least 2 active teams required, found %d", len(teams)))
	}
	if len(fields) == 0 {
		problems = append(problems, "no active fields configured")
	}
	if len(slots) == 0 {
		problems = append(problems, "no time slots enabled for the season")
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrConfiguration, strings.Join(problems, "; "))
	}
	return nil
}

// teamOrderForPairing seeds the rotation so teams that rested most in
// prior segments sit where early byes land least, before the fairness
// pass runs. Ties break on id to keep regeneration deterministic.
func teamOrderForPairing(teams []team.Team, carried map[string]int) []string {
	ids := make([]string, 0, len(teams))
	for _, t := range teams {
		ids = append(ids, t.ID)
	}
	sort.SliceStable(ids, func(i, j int) bool {
		if carried[ids[i]] != carried[ids[j]] {
			return carried[ids[i]] > carried[ids[j]]
		}
		return ids[i] < ids[j]
	})
	return ids
}

func fieldIDsByPriority(fields []venue.Field) []string {
	sorted := append([]venue.Field(nil), fields...)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Priority != sorted[j].Priority {
			return sorted[i].Priority < sorted[j].Priority
		}
		return sorted[i].Name < sorted[j].Name
	})
	ids := make([]string, 0, len(sorted))
	for _, f := range sorted {
		ids = append(ids, f.ID)
	}
	return ids
}

func timeSlotIDsByPosition(slots []venue.TimeSlot) []string {
	sorted := append([]venue.TimeSlot(nil), slots...)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Position != sorted[j].Position {
			return sorted[i].Position < sorted[j].Position
		}
		return sorted[i].StartsAt < sorted[j].StartsAt
	})
	ids := make([]string, 0, len(sorted))
	for _, s := range sorted {
		ids = append(ids, s.ID)
	}
	return ids
}
