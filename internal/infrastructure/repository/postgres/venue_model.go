package postgres

import (
	"time"

	"github.com/ackerman1984/d-sports-sub002/internal/domain/venue"
)

type fieldTableModel struct {
	ID        int64      `db:"id"`
	PublicID  string     `db:"public_id"`
	LeagueID  string     `db:"league_public_id"`
	Name      string     `db:"name"`
	Priority  int        `db:"priority"`
	IsActive  bool       `db:"is_active"`
	CreatedAt time.Time  `db:"created_at"`
	UpdatedAt time.Time  `db:"updated_at"`
	DeletedAt *time.Time `db:"deleted_at"`
}

func (m fieldTableModel) toDomain() venue.Field {
	return venue.Field{
		ID:       m.PublicID,
		LeagueID: m.LeagueID,
		Name:     m.Name,
		Priority: m.Priority,
		Active:   m.IsActive,
	}
}

type timeSlotTableModel struct {
	ID              int64      `db:"id"`
	PublicID        string     `db:"public_id"`
	LeagueID        string     `db:"league_public_id"`
	Name            string     `db:"name"`
	StartsAt        string     `db:"starts_at"`
	EndsAt          string     `db:"ends_at"`
	IsDefaultActive bool       `db:"is_default_active"`
	Position        int        `db:"position"`
	CreatedAt       time.Time  `db:"created_at"`
	UpdatedAt       time.Time  `db:"updated_at"`
	DeletedAt       *time.Time `db:"deleted_at"`
}

func (m timeSlotTableModel) toDomain() venue.TimeSlot {
	return venue.TimeSlot{
		ID:            m.PublicID,
		LeagueID:      m.LeagueID,
		Name:          m.Name,
		StartsAt:      m.StartsAt,
		EndsAt:        m.EndsAt,
		DefaultActive: m.IsDefaultActive,
		Position:      m.Position,
	}
}

type seasonTimeSlotTableModel struct {
	SeasonID   string `db:"season_public_id"`
	TimeSlotID string `db:"time_slot_public_id"`
	IsEnabled  bool   `db:"is_enabled"`
}
