package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/ackerman1984/d-sports-sub002/internal/domain/schedule"
	qb "github.com/ackerman1984/d-sports-sub002/internal/platform/querybuilder"
)

type GenerationRunRepository struct {
	db *sqlx.DB
}

func NewGenerationRunRepository(db *sqlx.DB) *GenerationRunRepository {
	return &GenerationRunRepository{db: db}
}

func (r *GenerationRunRepository) Insert(ctx context.Context, run schedule.GenerationRun) error {
	return insertGenerationRun(ctx, r.db, run)
}

func (r *GenerationRunRepository) ListBySeason(ctx context.Context, seasonID string) ([]schedule.GenerationRun, error) {
	query, args, err := qb.Select("*").From("generation_runs").
		Where(qb.Eq("season_public_id", seasonID)).
		OrderBy("started_at DESC", "id DESC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select generation runs query: %w", err)
	}

	var rows []generationRunTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select generation runs: %w", err)
	}

	out := make([]schedule.GenerationRun, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}

	return out, nil
}
