package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/ackerman1984/d-sports-sub002/internal/domain/calendar"
	qb "github.com/ackerman1984/d-sports-sub002/internal/platform/querybuilder"
)

type SaturdayOverrideRepository struct {
	db *sqlx.DB
}

func NewSaturdayOverrideRepository(db *sqlx.DB) *SaturdayOverrideRepository {
	return &SaturdayOverrideRepository{db: db}
}

func (r *SaturdayOverrideRepository) ListByLeagueWindow(ctx context.Context, leagueID string, from, to time.Time) ([]calendar.SaturdayOverride, error) {
	query, args, err := qb.Select("*").From("saturday_overrides").
		Where(
			qb.Eq("league_public_id", leagueID),
			qb.Expr("override_date BETWEEN ? AND ?", from, to),
			qb.IsNull("deleted_at"),
		).
		OrderBy("override_date", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select saturday overrides query: %w", err)
	}

	var rows []saturdayOverrideTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select saturday overrides: %w", err)
	}

	out := make([]calendar.SaturdayOverride, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}

	return out, nil
}
