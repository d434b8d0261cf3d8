package schedule

import (
	"fmt"
	"time"

	"github.com/ackerman1984/d-sports-sub002/internal/domain/calendar"
)

// AllocatorConfig is the snapshot of season scheduling inputs. FieldIDs
// come in priority order and TimeSlotIDs in position order; combos are
// handed out time-slot major (all fields at the first slot, then the
// next slot).
type AllocatorConfig struct {
	StartsOn         time.Time
	EndsOn           time.Time
	Weekday          time.Weekday
	MaxMatchesPerDay int
	FieldIDs         []string
	TimeSlotIDs      []string
	Overrides        []calendar.SaturdayOverride
}

// Allocation is the placed schedule: one matchday per date that received
// a match or a bye, and one match per pairing.
type Allocation struct {
	Matchdays []Matchday
	Matches   []Match
	Warnings  []string
}

type slotCombo struct {
	timeSlotID string
	fieldID    string
}

type allocDay struct {
	date     time.Time
	combos   []slotCombo
	capacity int
}

// EligibleDates lists the dates the allocator would consider, after
// blackouts and zero-capacity overrides. Used for pre-computation
// configuration checks.
func EligibleDates(cfg AllocatorConfig) []time.Time {
	days, _ := buildDays(cfg)
	dates := make([]time.Time, 0, len(days))
	for _, d := range days {
		dates = append(dates, d.date)
	}
	return dates
}

// AllocateSlots walks rounds in order and pairings in sequence order,
// assigning each non-bye pairing the next free (field, time slot) combo
// on the current date and advancing dates when the effective capacity is
// exhausted. Byes consume nothing but are recorded against the current
// matchday. On insufficient capacity it returns the partial allocation
// and the first blocking pairing; it never drops a match and never
// exceeds a date's capacity.
func AllocateSlots(plan *PairingPlan, cfg AllocatorConfig) (*Allocation, *Conflict) {
	days, warnings := buildDays(cfg)
	alloc := &Allocation{Warnings: warnings}

	dayIdx := 0
	usedInDay := 0

	// currentMatchday lazily creates the matchday for the date under the
	// cursor, so blacked-out or unused dates never produce one.
	currentMatchday := func() *Matchday {
		if len(alloc.Matchdays) > 0 {
			last := &alloc.Matchdays[len(alloc.Matchdays)-1]
			if dayIdx < len(days) && last.Date.Equal(days[dayIdx].date) {
				return last
			}
			if dayIdx >= len(days) {
				return last
			}
		}
		if dayIdx >= len(days) {
			return nil
		}
		alloc.Matchdays = append(alloc.Matchdays, Matchday{
			Seq:  len(alloc.Matchdays) + 1,
			Date: days[dayIdx].date,
		})
		return &alloc.Matchdays[len(alloc.Matchdays)-1]
	}

	for _, round := range plan.Rounds {
		for _, p := range round {
			if p.IsBye() {
				md := currentMatchday()
				if md == nil {
					return alloc, conflictFor(p, "no eligible dates in season window")
				}
				alloc.Matches = append(alloc.Matches, Match{
					MatchdaySeq: md.Seq,
					Round:       p.Round,
					Seq:         p.Seq,
					HomeTeamID:  p.Home,
					Away:        ByeOpponent(),
					Status:      StatusScheduled,
				})
				continue
			}

			for dayIdx < len(days) && usedInDay >= days[dayIdx].capacity {
				dayIdx++
				usedInDay = 0
			}
			if dayIdx >= len(days) {
				return alloc, conflictFor(p, "no Saturday with free capacity remains before the season end date")
			}

			md := currentMatchday()
			combo := days[dayIdx].combos[usedInDay]
			usedInDay++

			alloc.Matches = append(alloc.Matches, Match{
				MatchdaySeq: md.Seq,
				Round:       p.Round,
				Seq:         p.Seq,
				HomeTeamID:  p.Home,
				Away:        p.Away,
				FieldID:     combo.fieldID,
				TimeSlotID:  combo.timeSlotID,
				Status:      StatusScheduled,
			})
		}
	}

	return alloc, nil
}

// buildDays enumerates the cadence dates inside the season window and
// resolves each date's effective capacity, fields, and slots against any
// override.
func buildDays(cfg AllocatorConfig) ([]allocDay, []string) {
	overrides := make(map[string]calendar.SaturdayOverride, len(cfg.Overrides))
	for _, ov := range cfg.Overrides {
		overrides[ov.DateKey()] = ov
	}

	var days []allocDay
	var warnings []string

	date := cfg.StartsOn
	for date.Weekday() != cfg.Weekday {
		date = date.AddDate(0, 0, 1)
	}
	for ; !date.After(cfg.EndsOn); date = date.AddDate(0, 0, 7) {
		fields := cfg.FieldIDs
		slots := cfg.TimeSlotIDs
		capacity := cfg.MaxMatchesPerDay

		key := date.Format("2006-01-02")
		if ov, ok := overrides[key]; ok {
			switch calendar.NormalizeKind(ov.Kind) {
			case calendar.OverrideBlackout:
				continue
			case calendar.OverrideModified:
				if ov.MaxMatches != nil {
					capacity = *ov.MaxMatches
				}
				if len(ov.FieldIDs) > 0 {
					fields = intersectOrdered(cfg.FieldIDs, ov.FieldIDs)
				}
				if len(ov.TimeSlotIDs) > 0 {
					slots = intersectOrdered(cfg.TimeSlotIDs, ov.TimeSlotIDs)
				}
			default:
				warnings = append(warnings, fmt.Sprintf("unknown override kind %q on %s; date skipped", ov.Kind, key))
				continue
			}
		}

		combos := make([]slotCombo, 0, len(slots)*len(fields))
		for _, slot := range slots {
			for _, field := range fields {
				combos = append(combos, slotCombo{timeSlotID: slot, fieldID: field})
			}
		}
		if capacity > len(combos) {
			capacity = len(combos)
		}
		if capacity <= 0 {
			warnings = append(warnings, fmt.Sprintf("no usable capacity on %s; date skipped", key))
			continue
		}

		days = append(days, allocDay{date: date, combos: combos, capacity: capacity})
	}

	return days, warnings
}

// intersectOrdered keeps the members of base that the restriction allows,
// preserving base's ordering (field priority, slot position).
func intersectOrdered(base, allowed []string) []string {
	allowedSet := make(map[string]struct{}, len(allowed))
	for _, id := range allowed {
		allowedSet[id] = struct{}{}
	}
	out := make([]string, 0, len(base))
	for _, id := range base {
		if _, ok := allowedSet[id]; ok {
			out = append(out, id)
		}
	}
	return out
}

func conflictFor(p Pairing, reason string) *Conflict {
	away := ""
	if !p.IsBye() {
		away = p.Away.TeamID()
	}
	return &Conflict{
		Round:      p.Round,
		Seq:        p.Seq,
		HomeTeamID: p.Home,
		AwayTeamID: away,
		Reason:     reason,
	}
}
