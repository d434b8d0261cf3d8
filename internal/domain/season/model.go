package season

import (
	"strings"
	"time"
)

const (
	StatusDraft     = "draft"
	StatusGenerated = "generated"
	StatusPublished = "published"
	StatusArchived  = "archived"
)

// Season is one competition window for a league. PlannedRounds counts
// rotation rounds ("vueltas"): a full single round-robin for n teams
// (padded to even) spans n-1 of them.
type Season struct {
	ID                    string
	LeagueID              string
	Name                  string
	StartsOn              time.Time
	EndsOn                time.Time
	PlannedRounds         int
	MaxMatchesPerSaturday int
	Status                string
}

func NormalizeStatus(value string) string {
	status := strings.ToLower(strings.TrimSpace(value))
	if status == "" {
		return StatusDraft
	}
	return status
}

// Generatable reports whether calendar generation may run for the season.
// Published and archived seasons are immutable.
func (s Season) Generatable() bool {
	switch NormalizeStatus(s.Status) {
	case StatusDraft, StatusGenerated:
		return true
	default:
		return false
	}
}
