package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/ackerman1984/d-sports-sub002/internal/domain/venue"
	qb "github.com/ackerman1984/d-sports-sub002/internal/platform/querybuilder"
)

type FieldRepository struct {
	db *sqlx.DB
}

func NewFieldRepository(db *sqlx.DB) *FieldRepository {
	return &FieldRepository{db: db}
}

func (r *FieldRepository) ListActiveByLeague(ctx context.Context, leagueID string) ([]venue.Field, error) {
	query, args, err := qb.Select("*").From("fields").
		Where(
			qb.Eq("league_public_id", leagueID),
			qb.Eq("is_active", true),
			qb.IsNull("deleted_at"),
		).
		OrderBy("priority", "name", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select active fields query: %w", err)
	}

	var rows []fieldTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select active fields: %w", err)
	}

	out := make([]venue.Field, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}

	return out, nil
}

type TimeSlotRepository struct {
	db *sqlx.DB
}

func NewTimeSlotRepository(db *sqlx.DB) *TimeSlotRepository {
	return &TimeSlotRepository{db: db}
}

// ListEnabledForSeason resolves the season's slot selection: an explicit
// season_time_slots row wins, otherwise the slot's default flag decides.
func (r *TimeSlotRepository) ListEnabledForSeason(ctx context.Context, seasonID string) ([]venue.TimeSlot, error) {
	slotQuery, slotArgs, err := qb.Select("*").From("time_slots").
		Where(
			qb.Expr("league_public_id = (SELECT league_public_id FROM seasons WHERE public_id = ? AND deleted_at IS NULL)", seasonID),
			qb.IsNull("deleted_at"),
		).
		OrderBy("position", "starts_at", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select time slots query: %w", err)
	}

	var slotRows []timeSlotTableModel
	if err := r.db.SelectContext(ctx, &slotRows, slotQuery, slotArgs...); err != nil {
		return nil, fmt.Errorf("select time slots: %w", err)
	}

	selQuery, selArgs, err := qb.Select("season_public_id", "time_slot_public_id", "is_enabled").
		From("season_time_slots").
		Where(qb.Eq("season_public_id", seasonID)).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select season time slots query: %w", err)
	}

	var selRows []seasonTimeSlotTableModel
	if err := r.db.SelectContext(ctx, &selRows, selQuery, selArgs...); err != nil {
		return nil, fmt.Errorf("select season time slots: %w", err)
	}

	enabled := make(map[string]bool, len(selRows))
	for _, row := range selRows {
		enabled[row.TimeSlotID] = row.IsEnabled
	}

	out := make([]venue.TimeSlot, 0, len(slotRows))
	for _, row := range slotRows {
		use := row.IsDefaultActive
		if explicit, ok := enabled[row.PublicID]; ok {
			use = explicit
		}
		if use {
			out = append(out, row.toDomain())
		}
	}

	return out, nil
}
