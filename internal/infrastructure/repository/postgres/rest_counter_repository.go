package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/ackerman1984/d-sports-sub002/internal/domain/schedule"
	qb "github.com/ackerman1984/d-sports-sub002/internal/platform/querybuilder"
)

type RestCounterRepository struct {
	db *sqlx.DB
}

func NewRestCounterRepository(db *sqlx.DB) *RestCounterRepository {
	return &RestCounterRepository{db: db}
}

func (r *RestCounterRepository) ListBySeason(ctx context.Context, seasonID string) ([]schedule.RestCounter, error) {
	query, args, err := qb.Select("season_public_id", "team_public_id", "carried_over_byes", "scheduled_byes").
		From("rest_counters").
		Where(qb.Eq("season_public_id", seasonID)).
		OrderBy("team_public_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select rest counters query: %w", err)
	}

	var rows []restCounterTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select rest counters: %w", err)
	}

	out := make([]schedule.RestCounter, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}

	return out, nil
}
