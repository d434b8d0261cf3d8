package calendar

import (
	"strings"
	"time"
)

const (
	OverrideBlackout = "blackout"
	OverrideModified = "modified"
)

// SaturdayOverride changes the rules for a single calendar date: either a
// full blackout or a modified capacity/field/slot set. For modified
// overrides a nil MaxMatches and empty id lists mean "inherit the season
// defaults".
type SaturdayOverride struct {
	LeagueID    string
	Date        time.Time
	Kind        string
	MaxMatches  *int
	FieldIDs    []string
	TimeSlotIDs []string
	Reason      string
}

func NormalizeKind(value string) string {
	kind := strings.ToLower(strings.TrimSpace(value))
	if kind == "" {
		return OverrideModified
	}
	return kind
}

func (o SaturdayOverride) IsBlackout() bool {
	return NormalizeKind(o.Kind) == OverrideBlackout
}

// DateKey is the lookup key used by the allocator ("2026-04-18").
func (o SaturdayOverride) DateKey() string {
	return o.Date.Format("2006-01-02")
}
