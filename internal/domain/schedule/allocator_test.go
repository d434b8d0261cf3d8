package schedule

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ackerman1984/d-sports-sub002/internal/domain/calendar"
)

func saturday(day int) time.Time {
	return time.Date(2025, time.September, day, 0, 0, 0, 0, time.UTC)
}

func baseConfig() AllocatorConfig {
	return AllocatorConfig{
		StartsOn:         saturday(1), // Monday; first Saturday is the 6th
		EndsOn:           saturday(30),
		Weekday:          time.Saturday,
		MaxMatchesPerDay: 2,
		FieldIDs:         []string{"field-a", "field-b"},
		TimeSlotIDs:      []string{"slot-0900", "slot-1100"},
	}
}

func intPtr(v int) *int { return &v }

func TestAllocateSlotsFillsSaturdaysInOrder(t *testing.T) {
	plan, err := BuildPairingPlan(teamIDs(4), 2)
	require.NoError(t, err)

	alloc, conflict := AllocateSlots(plan, baseConfig())
	require.Nil(t, conflict)
	require.Len(t, alloc.Matchdays, 2)
	require.Len(t, alloc.Matches, 4)

	require.Equal(t, saturday(6), alloc.Matchdays[0].Date)
	require.Equal(t, saturday(13), alloc.Matchdays[1].Date)
	require.Equal(t, 1, alloc.Matchdays[0].Seq)
	require.Equal(t, 2, alloc.Matchdays[1].Seq)

	// Two matches per Saturday, slot-major within the day.
	require.Equal(t, 1, alloc.Matches[0].MatchdaySeq)
	require.Equal(t, "slot-0900", alloc.Matches[0].TimeSlotID)
	require.Equal(t, "field-a", alloc.Matches[0].FieldID)
	require.Equal(t, 1, alloc.Matches[1].MatchdaySeq)
	require.Equal(t, "slot-0900", alloc.Matches[1].TimeSlotID)
	require.Equal(t, "field-b", alloc.Matches[1].FieldID)
	require.Equal(t, 2, alloc.Matches[2].MatchdaySeq)
	require.Equal(t, 2, alloc.Matches[3].MatchdaySeq)
}

func TestAllocateSlotsNeverReusesACombo(t *testing.T) {
	plan, err := BuildPairingPlan(teamIDs(6), 5)
	require.NoError(t, err)

	cfg := baseConfig()
	cfg.EndsOn = time.Date(2025, time.November, 30, 0, 0, 0, 0, time.UTC)
	cfg.MaxMatchesPerDay = 3

	alloc, conflict := AllocateSlots(plan, cfg)
	require.Nil(t, conflict)
	require.Len(t, alloc.Matches, 15)

	perDay := map[int]int{}
	seen := map[string]bool{}
	for _, m := range alloc.Matches {
		perDay[m.MatchdaySeq]++
		key := fmt.Sprintf("%d|%s|%s", m.MatchdaySeq, m.FieldID, m.TimeSlotID)
		require.False(t, seen[key], "combo %s placed twice", key)
		seen[key] = true
	}
	for seq, count := range perDay {
		require.LessOrEqual(t, count, 3, "matchday %d", seq)
	}
}

func TestAllocateSlotsByesAttachWithoutConsumingCapacity(t *testing.T) {
	plan, err := BuildPairingPlan(teamIDs(5), 2)
	require.NoError(t, err)

	alloc, conflict := AllocateSlots(plan, baseConfig())
	require.Nil(t, conflict)
	require.Len(t, alloc.Matchdays, 2)
	require.Len(t, alloc.Matches, 6)

	byes := 0
	for _, m := range alloc.Matches {
		if m.Away.IsBye() {
			byes++
			require.Empty(t, m.FieldID)
			require.Empty(t, m.TimeSlotID)
			require.Contains(t, []int{1, 2}, m.MatchdaySeq)
		}
	}
	require.Equal(t, 2, byes)
}

func TestAllocateSlotsSkipsBlackouts(t *testing.T) {
	plan, err := BuildPairingPlan(teamIDs(4), 1)
	require.NoError(t, err)

	cfg := baseConfig()
	cfg.Overrides = []calendar.SaturdayOverride{{
		Date:   saturday(6),
		Kind:   calendar.OverrideBlackout,
		Reason: "field maintenance",
	}}

	alloc, conflict := AllocateSlots(plan, cfg)
	require.Nil(t, conflict)
	require.Len(t, alloc.Matchdays, 1)
	require.Equal(t, saturday(13), alloc.Matchdays[0].Date)
	require.Empty(t, alloc.Warnings)
}

func TestAllocateSlotsModifiedOverrideRestricts(t *testing.T) {
	plan, err := BuildPairingPlan(teamIDs(4), 1)
	require.NoError(t, err)

	cfg := baseConfig()
	cfg.Overrides = []calendar.SaturdayOverride{{
		Date:       saturday(6),
		Kind:       calendar.OverrideModified,
		MaxMatches: intPtr(1),
		FieldIDs:   []string{"field-b"},
	}}

	alloc, conflict := AllocateSlots(plan, cfg)
	require.Nil(t, conflict)
	require.Len(t, alloc.Matches, 2)

	require.Equal(t, saturday(6), alloc.Matchdays[0].Date)
	require.Equal(t, "field-b", alloc.Matches[0].FieldID)
	require.Equal(t, "slot-0900", alloc.Matches[0].TimeSlotID)

	// Second pairing spills over to the next Saturday with full defaults.
	require.Equal(t, 2, alloc.Matches[1].MatchdaySeq)
	require.Equal(t, saturday(13), alloc.Matchdays[1].Date)
	require.Equal(t, "field-a", alloc.Matches[1].FieldID)
}

func TestAllocateSlotsZeroCapacityDateSkippedWithWarning(t *testing.T) {
	plan, err := BuildPairingPlan(teamIDs(4), 1)
	require.NoError(t, err)

	cfg := baseConfig()
	cfg.Overrides = []calendar.SaturdayOverride{{
		Date:       saturday(6),
		Kind:       calendar.OverrideModified,
		MaxMatches: intPtr(0),
	}}

	alloc, conflict := AllocateSlots(plan, cfg)
	require.Nil(t, conflict)
	require.Equal(t, saturday(13), alloc.Matchdays[0].Date)
	require.Len(t, alloc.Warnings, 1)
	require.Contains(t, alloc.Warnings[0], "no usable capacity")
}

func TestAllocateSlotsReportsFirstBlockedPairing(t *testing.T) {
	plan, err := BuildPairingPlan(teamIDs(4), 3)
	require.NoError(t, err)

	cfg := baseConfig()
	cfg.EndsOn = saturday(14) // only two Saturdays, room for four matches

	alloc, conflict := AllocateSlots(plan, cfg)
	require.NotNil(t, conflict)
	require.Equal(t, 3, conflict.Round)
	require.Equal(t, 1, conflict.Seq)
	require.NotEmpty(t, conflict.HomeTeamID)
	require.NotEmpty(t, conflict.AwayTeamID)
	require.Contains(t, conflict.Reason, "free capacity")

	// Partial placement is returned, never over capacity.
	require.Len(t, alloc.Matches, 4)
}

func TestAllocateSlotsNoEligibleDates(t *testing.T) {
	plan, err := BuildPairingPlan(teamIDs(4), 1)
	require.NoError(t, err)

	cfg := baseConfig()
	cfg.StartsOn = time.Date(2025, time.September, 8, 0, 0, 0, 0, time.UTC)
	cfg.EndsOn = time.Date(2025, time.September, 12, 0, 0, 0, 0, time.UTC)

	alloc, conflict := AllocateSlots(plan, cfg)
	require.NotNil(t, conflict)
	require.Empty(t, alloc.Matches)
	require.Empty(t, alloc.Matchdays)
}

func TestEligibleDatesHonorsOverrides(t *testing.T) {
	cfg := baseConfig()
	cfg.Overrides = []calendar.SaturdayOverride{
		{Date: saturday(6), Kind: calendar.OverrideBlackout},
		{Date: saturday(20), Kind: calendar.OverrideModified, MaxMatches: intPtr(0)},
	}

	dates := EligibleDates(cfg)
	require.Equal(t, []time.Time{saturday(13), saturday(27)}, dates)
}
