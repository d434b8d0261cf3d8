package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/ackerman1984/d-sports-sub002/internal/domain/season"
	qb "github.com/ackerman1984/d-sports-sub002/internal/platform/querybuilder"
)

type SeasonRepository struct {
	db *sqlx.DB
}

func NewSeasonRepository(db *sqlx.DB) *SeasonRepository {
	return &SeasonRepository{db: db}
}

func (r *SeasonRepository) GetByID(ctx context.Context, seasonID string) (season.Season, bool, error) {
	query, args, err := qb.Select("*").From("seasons").
		Where(
			qb.Eq("public_id", seasonID),
			qb.IsNull("deleted_at"),
		).
		Limit(1).
		ToSQL()
	if err != nil {
		return season.Season{}, false, fmt.Errorf("build select season query: %w", err)
	}

	var row seasonTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return season.Season{}, false, nil
		}
		return season.Season{}, false, fmt.Errorf("select season: %w", err)
	}

	return row.toDomain(), true, nil
}

func (r *SeasonRepository) ListGeneratableByLeague(ctx context.Context, leagueID string) ([]season.Season, error) {
	query, args, err := qb.Select("*").From("seasons").
		Where(
			qb.Eq("league_public_id", leagueID),
			qb.In("status", []any{season.StatusDraft, season.StatusGenerated}),
			qb.IsNull("deleted_at"),
		).
		OrderBy("starts_on", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select generatable seasons query: %w", err)
	}

	var rows []seasonTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select generatable seasons: %w", err)
	}

	out := make([]season.Season, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}

	return out, nil
}
