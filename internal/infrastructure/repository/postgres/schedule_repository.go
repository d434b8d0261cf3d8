package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/ackerman1984/d-sports-sub002/internal/domain/schedule"
	qb "github.com/ackerman1984/d-sports-sub002/internal/platform/querybuilder"
)

type ScheduleRepository struct {
	db *sqlx.DB
}

func NewScheduleRepository(db *sqlx.DB) *ScheduleRepository {
	return &ScheduleRepository{db: db}
}

func (r *ScheduleRepository) ListMatchdays(ctx context.Context, seasonID string) ([]schedule.Matchday, error) {
	query, args, err := qb.Select("*").From("matchdays").
		Where(
			qb.Eq("season_public_id", seasonID),
			qb.IsNull("deleted_at"),
		).
		OrderBy("seq", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select matchdays query: %w", err)
	}

	var rows []matchdayTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select matchdays: %w", err)
	}

	out := make([]schedule.Matchday, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}

	return out, nil
}

func (r *ScheduleRepository) ListMatches(ctx context.Context, seasonID string) ([]schedule.Match, error) {
	query, args, err := qb.Select("*").From("matches").
		Where(
			qb.Eq("season_public_id", seasonID),
			qb.IsNull("deleted_at"),
		).
		OrderBy("round", "seq", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select matches query: %w", err)
	}

	var rows []matchTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select matches: %w", err)
	}

	out := make([]schedule.Match, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}

	return out, nil
}

// ReplaceSeasonSchedule swaps a season's schedule in one transaction.
// A per-season advisory lock turns concurrent attempts into
// schedule.ErrLocked instead of interleaved writes. Matches already in
// progress or finished survive the replace; everything else is
// soft-deleted before the new rows go in, and the audit run commits
// atomically with them.
func (r *ScheduleRepository) ReplaceSeasonSchedule(ctx context.Context, input schedule.ReplaceInput) (schedule.ReplaceResult, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return schedule.ReplaceResult{}, fmt.Errorf("begin tx replace season schedule: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	var locked bool
	if err := tx.GetContext(ctx, &locked, "SELECT pg_try_advisory_xact_lock($1)", seasonLockKey(input.SeasonID)); err != nil {
		return schedule.ReplaceResult{}, fmt.Errorf("acquire season lock: %w", err)
	}
	if !locked {
		return schedule.ReplaceResult{}, schedule.ErrLocked
	}

	var playedKept int
	countQuery := `SELECT COUNT(*) FROM matches
WHERE season_public_id = $1 AND deleted_at IS NULL AND status IN ($2, $3)`
	if err := tx.GetContext(ctx, &playedKept, countQuery, input.SeasonID, schedule.StatusInProgress, schedule.StatusFinished); err != nil {
		return schedule.ReplaceResult{}, fmt.Errorf("count played matches: %w", err)
	}

	deleteMatches, deleteMatchesArgs, err := qb.Update("matches").
		SetExpr("deleted_at", "NOW()").
		Where(
			qb.Eq("season_public_id", input.SeasonID),
			qb.IsNull("deleted_at"),
			qb.Expr("status NOT IN (?, ?)", schedule.StatusInProgress, schedule.StatusFinished),
		).
		ToSQL()
	if err != nil {
		return schedule.ReplaceResult{}, fmt.Errorf("build delete matches query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, deleteMatches, deleteMatchesArgs...); err != nil {
		return schedule.ReplaceResult{}, fmt.Errorf("delete unplayed matches: %w", err)
	}

	deleteMatchdays, deleteMatchdaysArgs, err := qb.Update("matchdays").
		SetExpr("deleted_at", "NOW()").
		Where(
			qb.Eq("season_public_id", input.SeasonID),
			qb.IsNull("deleted_at"),
			qb.Expr("public_id NOT IN (SELECT matchday_public_id FROM matches WHERE season_public_id = ? AND deleted_at IS NULL)", input.SeasonID),
		).
		ToSQL()
	if err != nil {
		return schedule.ReplaceResult{}, fmt.Errorf("build delete matchdays query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, deleteMatchdays, deleteMatchdaysArgs...); err != nil {
		return schedule.ReplaceResult{}, fmt.Errorf("delete emptied matchdays: %w", err)
	}

	if len(input.Matchdays) > 0 {
		builder := qb.InsertInto("matchdays").
			Columns("public_id", "season_public_id", "seq", "match_date", "is_playoff")
		for _, md := range input.Matchdays {
			builder.Values(md.ID, md.SeasonID, md.Seq, md.Date, md.Playoff)
		}
		query, args, err := builder.ToSQL()
		if err != nil {
			return schedule.ReplaceResult{}, fmt.Errorf("build insert matchdays query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return schedule.ReplaceResult{}, fmt.Errorf("insert matchdays: %w", err)
		}
	}

	if len(input.Matches) > 0 {
		builder := qb.InsertInto("matches").
			Columns("public_id", "season_public_id", "matchday_public_id", "round", "seq",
				"home_team_public_id", "away_team_public_id", "is_bye",
				"field_public_id", "time_slot_public_id", "status")
		for _, m := range input.Matches {
			builder.Values(m.ID, m.SeasonID, m.MatchdayID, m.Round, m.Seq,
				m.HomeTeamID, nullString(m.Away.TeamID()), m.Away.IsBye(),
				nullString(m.FieldID), nullString(m.TimeSlotID), m.Status)
		}
		query, args, err := builder.ToSQL()
		if err != nil {
			return schedule.ReplaceResult{}, fmt.Errorf("build insert matches query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return schedule.ReplaceResult{}, fmt.Errorf("insert matches: %w", err)
		}
	}

	if len(input.RestCounters) > 0 {
		builder := qb.InsertInto("rest_counters").
			Columns("season_public_id", "team_public_id", "carried_over_byes", "scheduled_byes").
			Suffix(`ON CONFLICT (season_public_id, team_public_id)
DO UPDATE SET
    carried_over_byes = EXCLUDED.carried_over_byes,
    scheduled_byes = EXCLUDED.scheduled_byes,
    updated_at = NOW()`)
		for _, rc := range input.RestCounters {
			builder.Values(rc.SeasonID, rc.TeamID, rc.CarriedOverByes, rc.ScheduledByes)
		}
		query, args, err := builder.ToSQL()
		if err != nil {
			return schedule.ReplaceResult{}, fmt.Errorf("build upsert rest counters query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return schedule.ReplaceResult{}, fmt.Errorf("upsert rest counters: %w", err)
		}
	}

	statusQuery, statusArgs, err := qb.Update("seasons").
		Set("status", input.SeasonStatus).
		SetExpr("updated_at", "NOW()").
		Where(
			qb.Eq("public_id", input.SeasonID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return schedule.ReplaceResult{}, fmt.Errorf("build update season status query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, statusQuery, statusArgs...); err != nil {
		return schedule.ReplaceResult{}, fmt.Errorf("update season status: %w", err)
	}

	run := input.Run
	if playedKept > 0 {
		run.Warnings = append(append([]string(nil), run.Warnings...),
			fmt.Sprintf("kept %d matches already in progress or finished", playedKept))
	}
	if err := insertGenerationRun(ctx, tx, run); err != nil {
		return schedule.ReplaceResult{}, err
	}

	if err := tx.Commit(); err != nil {
		return schedule.ReplaceResult{}, fmt.Errorf("commit replace season schedule tx: %w", err)
	}

	return schedule.ReplaceResult{PlayedKept: playedKept}, nil
}

type sqlExecer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func insertGenerationRun(ctx context.Context, ex sqlExecer, run schedule.GenerationRun) error {
	query, args, err := qb.InsertInto("generation_runs").
		Columns("public_id", "season_public_id", "outcome", "matchdays_created",
			"matches_created", "warnings", "conflict_detail", "started_at", "finished_at").
		Values(run.ID, run.SeasonID, run.Outcome, run.MatchdaysCreated,
			run.MatchesCreated, encodeJSONStrings(run.Warnings), encodeConflict(run.Conflict),
			run.StartedAt, run.FinishedAt).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build insert generation run query: %w", err)
	}
	if _, err := ex.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert generation run: %w", err)
	}
	return nil
}
