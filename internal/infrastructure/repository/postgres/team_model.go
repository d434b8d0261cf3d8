package postgres

import (
	"time"

	"github.com/ackerman1984/d-sports-sub002/internal/domain/team"
)

type teamTableModel struct {
	ID        int64      `db:"id"`
	PublicID  string     `db:"public_id"`
	LeagueID  string     `db:"league_public_id"`
	Name      string     `db:"name"`
	IsActive  bool       `db:"is_active"`
	CreatedAt time.Time  `db:"created_at"`
	UpdatedAt time.Time  `db:"updated_at"`
	DeletedAt *time.Time `db:"deleted_at"`
}

func (m teamTableModel) toDomain() team.Team {
	return team.Team{
		ID:       m.PublicID,
		LeagueID: m.LeagueID,
		Name:     m.Name,
		Active:   m.IsActive,
	}
}
