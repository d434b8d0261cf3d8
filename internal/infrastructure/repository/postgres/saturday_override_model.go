package postgres

import (
	"database/sql"
	"time"

	"github.com/lib/pq"

	"github.com/ackerman1984/d-sports-sub002/internal/domain/calendar"
)

type saturdayOverrideTableModel struct {
	ID          int64          `db:"id"`
	PublicID    string         `db:"public_id"`
	LeagueID    string         `db:"league_public_id"`
	Date        time.Time      `db:"override_date"`
	Kind        string         `db:"kind"`
	MaxMatches  sql.NullInt64  `db:"max_matches"`
	FieldIDs    pq.StringArray `db:"field_public_ids"`
	TimeSlotIDs pq.StringArray `db:"time_slot_public_ids"`
	Reason      string         `db:"reason"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
	DeletedAt   *time.Time     `db:"deleted_at"`
}

func (m saturdayOverrideTableModel) toDomain() calendar.SaturdayOverride {
	ov := calendar.SaturdayOverride{
		LeagueID:    m.LeagueID,
		Date:        m.Date,
		Kind:        calendar.NormalizeKind(m.Kind),
		FieldIDs:    append([]string(nil), m.FieldIDs...),
		TimeSlotIDs: append([]string(nil), m.TimeSlotIDs...),
		Reason:      m.Reason,
	}
	if m.MaxMatches.Valid {
		v := int(m.MaxMatches.Int64)
		ov.MaxMatches = &v
	}
	return ov
}
