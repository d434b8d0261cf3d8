package postgres

import (
	"time"

	"github.com/ackerman1984/d-sports-sub002/internal/domain/season"
)

type seasonTableModel struct {
	ID                    int64      `db:"id"`
	PublicID              string     `db:"public_id"`
	LeagueID              string     `db:"league_public_id"`
	Name                  string     `db:"name"`
	StartsOn              time.Time  `db:"starts_on"`
	EndsOn                time.Time  `db:"ends_on"`
	PlannedRounds         int        `db:"planned_rounds"`
	MaxMatchesPerSaturday int        `db:"max_matches_per_saturday"`
	Status                string     `db:"status"`
	CreatedAt             time.Time  `db:"created_at"`
	UpdatedAt             time.Time  `db:"updated_at"`
	DeletedAt             *time.Time `db:"deleted_at"`
}

func (m seasonTableModel) toDomain() season.Season {
	return season.Season{
		ID:                    m.PublicID,
		LeagueID:              m.LeagueID,
		Name:                  m.Name,
		StartsOn:              m.StartsOn,
		EndsOn:                m.EndsOn,
		PlannedRounds:         m.PlannedRounds,
		MaxMatchesPerSaturday: m.MaxMatchesPerSaturday,
		Status:                season.NormalizeStatus(m.Status),
	}
}
