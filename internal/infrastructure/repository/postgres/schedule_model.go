package postgres

import (
	"database/sql"
	"encoding/json"
	"time"

	"github.com/ackerman1984/d-sports-sub002/internal/domain/schedule"
)

type matchdayTableModel struct {
	ID        int64      `db:"id"`
	PublicID  string     `db:"public_id"`
	SeasonID  string     `db:"season_public_id"`
	Seq       int        `db:"seq"`
	Date      time.Time  `db:"match_date"`
	IsPlayoff bool       `db:"is_playoff"`
	CreatedAt time.Time  `db:"created_at"`
	UpdatedAt time.Time  `db:"updated_at"`
	DeletedAt *time.Time `db:"deleted_at"`
}

func (m matchdayTableModel) toDomain() schedule.Matchday {
	return schedule.Matchday{
		ID:       m.PublicID,
		SeasonID: m.SeasonID,
		Seq:      m.Seq,
		Date:     m.Date,
		Playoff:  m.IsPlayoff,
	}
}

type matchTableModel struct {
	ID         int64          `db:"id"`
	PublicID   string         `db:"public_id"`
	SeasonID   string         `db:"season_public_id"`
	MatchdayID string         `db:"matchday_public_id"`
	Round      int            `db:"round"`
	Seq        int            `db:"seq"`
	HomeTeamID string         `db:"home_team_public_id"`
	AwayTeamID sql.NullString `db:"away_team_public_id"`
	IsBye      bool           `db:"is_bye"`
	FieldID    sql.NullString `db:"field_public_id"`
	TimeSlotID sql.NullString `db:"time_slot_public_id"`
	Status     string         `db:"status"`
	CreatedAt  time.Time      `db:"created_at"`
	UpdatedAt  time.Time      `db:"updated_at"`
	DeletedAt  *time.Time     `db:"deleted_at"`
}

func (m matchTableModel) toDomain() schedule.Match {
	away := schedule.ByeOpponent()
	if !m.IsBye && m.AwayTeamID.Valid {
		away = schedule.TeamOpponent(m.AwayTeamID.String)
	}
	return schedule.Match{
		ID:         m.PublicID,
		SeasonID:   m.SeasonID,
		MatchdayID: m.MatchdayID,
		Round:      m.Round,
		Seq:        m.Seq,
		HomeTeamID: m.HomeTeamID,
		Away:       away,
		FieldID:    m.FieldID.String,
		TimeSlotID: m.TimeSlotID.String,
		Status:     m.Status,
	}
}

type restCounterTableModel struct {
	SeasonID        string `db:"season_public_id"`
	TeamID          string `db:"team_public_id"`
	CarriedOverByes int    `db:"carried_over_byes"`
	ScheduledByes   int    `db:"scheduled_byes"`
}

func (m restCounterTableModel) toDomain() schedule.RestCounter {
	return schedule.RestCounter{
		SeasonID:        m.SeasonID,
		TeamID:          m.TeamID,
		CarriedOverByes: m.CarriedOverByes,
		ScheduledByes:   m.ScheduledByes,
	}
}

type generationRunTableModel struct {
	ID               int64     `db:"id"`
	PublicID         string    `db:"public_id"`
	SeasonID         string    `db:"season_public_id"`
	Outcome          string    `db:"outcome"`
	MatchdaysCreated int       `db:"matchdays_created"`
	MatchesCreated   int       `db:"matches_created"`
	Warnings         []byte    `db:"warnings"`
	ConflictDetail   []byte    `db:"conflict_detail"`
	StartedAt        time.Time `db:"started_at"`
	FinishedAt       time.Time `db:"finished_at"`
	CreatedAt        time.Time `db:"created_at"`
}

type conflictDetailJSON struct {
	Round      int    `json:"round"`
	Seq        int    `json:"seq"`
	HomeTeamID string `json:"home_team_id"`
	AwayTeamID string `json:"away_team_id,omitempty"`
	Reason     string `json:"reason"`
}

func encodeConflict(c *schedule.Conflict) []byte {
	if c == nil {
		return nil
	}
	buf, err := json.Marshal(conflictDetailJSON{
		Round:      c.Round,
		Seq:        c.Seq,
		HomeTeamID: c.HomeTeamID,
		AwayTeamID: c.AwayTeamID,
		Reason:     c.Reason,
	})
	if err != nil {
		return nil
	}
	return buf
}

func decodeConflict(buf []byte) *schedule.Conflict {
	if len(buf) == 0 {
		return nil
	}
	var detail conflictDetailJSON
	if err := json.Unmarshal(buf, &detail); err != nil {
		return nil
	}
	return &schedule.Conflict{
		Round:      detail.Round,
		Seq:        detail.Seq,
		HomeTeamID: detail.HomeTeamID,
		AwayTeamID: detail.AwayTeamID,
		Reason:     detail.Reason,
	}
}

func (m generationRunTableModel) toDomain() schedule.GenerationRun {
	return schedule.GenerationRun{
		ID:               m.PublicID,
		SeasonID:         m.SeasonID,
		Outcome:          m.Outcome,
		MatchdaysCreated: m.MatchdaysCreated,
		MatchesCreated:   m.MatchesCreated,
		Warnings:         decodeJSONStrings(m.Warnings),
		Conflict:         decodeConflict(m.ConflictDetail),
		StartedAt:        m.StartedAt,
		FinishedAt:       m.FinishedAt,
	}
}
