package schedule

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func teamIDs(n int) []string {
	ids := make([]string, n)
	for i := range ids {
		ids[i] = fmt.Sprintf("team-%02d", i+1)
	}
	return ids
}

func TestBuildPairingPlanEvenTeams(t *testing.T) {
	teams := teamIDs(6)
	plan, err := BuildPairingPlan(teams, 5)
	require.NoError(t, err)
	require.Len(t, plan.Rounds, 5)

	seen := map[string]int{}
	for _, round := range plan.Rounds {
		require.Len(t, round, 3)
		inRound := map[string]bool{}
		for _, p := range round {
			require.False(t, p.IsBye())
			require.False(t, inRound[p.Home], "team %s paired twice in one round", p.Home)
			require.False(t, inRound[p.Away.TeamID()])
			inRound[p.Home] = true
			inRound[p.Away.TeamID()] = true
			a, b := p.Home, p.Away.TeamID()
			if b < a {
				a, b = b, a
			}
			seen[a+"/"+b]++
		}
	}

	// A full single pass: every pair exactly once.
	require.Len(t, seen, 15)
	for key, count := range seen {
		require.Equal(t, 1, count, "pair %s", key)
	}
}

func TestBuildPairingPlanOddTeamsByes(t *testing.T) {
	teams := teamIDs(5)
	plan, err := BuildPairingPlan(teams, 5)
	require.NoError(t, err)
	require.Len(t, plan.Rounds, 5)

	byes := map[string]int{}
	for _, round := range plan.Rounds {
		byesInRound := 0
		for _, p := range round {
			if p.IsBye() {
				byesInRound++
				byes[p.Home]++
			}
		}
		require.Equal(t, 1, byesInRound)
	}

	// One full rotation hands every team exactly one bye.
	require.Len(t, byes, 5)
	for id, count := range byes {
		require.Equal(t, 1, count, "team %s", id)
	}
}

func TestBuildPairingPlanSecondPassSwapsSides(t *testing.T) {
	teams := teamIDs(4)
	plan, err := BuildPairingPlan(teams, 6)
	require.NoError(t, err)
	require.Len(t, plan.Rounds, 6)

	type sides struct{ home, away int }
	perTeam := map[string]*sides{}
	for _, round := range plan.Rounds {
		for _, p := range round {
			if perTeam[p.Home] == nil {
				perTeam[p.Home] = &sides{}
			}
			if perTeam[p.Away.TeamID()] == nil {
				perTeam[p.Away.TeamID()] = &sides{}
			}
			perTeam[p.Home].home++
			perTeam[p.Away.TeamID()].away++
		}
	}

	// Two full passes with flipped sides: equal home and away counts.
	for id, s := range perTeam {
		require.Equal(t, s.home, s.away, "team %s", id)
	}

	// Same matchup, opposite orientation across passes.
	firstPass := map[string]string{}
	for r := 0; r < 3; r++ {
		for _, p := range plan.Rounds[r] {
			firstPass[p.Home+"/"+p.Away.TeamID()] = ""
		}
	}
	for r := 3; r < 6; r++ {
		for _, p := range plan.Rounds[r] {
			_, sameOrientation := firstPass[p.Home+"/"+p.Away.TeamID()]
			require.False(t, sameOrientation, "%s vs %s repeats orientation", p.Home, p.Away.TeamID())
		}
	}
}

func TestBuildPairingPlanValidation(t *testing.T) {
	_, err := BuildPairingPlan([]string{"only-one"}, 3)
	require.Error(t, err)

	_, err = BuildPairingPlan([]string{"a", "b", "a"}, 3)
	require.Error(t, err)

	_, err = BuildPairingPlan([]string{"a", ""}, 3)
	require.Error(t, err)

	_, err = BuildPairingPlan([]string{"a", "b"}, -1)
	require.Error(t, err)
}

func TestBuildPairingPlanZeroRounds(t *testing.T) {
	plan, err := BuildPairingPlan([]string{"a", "b"}, 0)
	require.NoError(t, err)
	require.Empty(t, plan.Rounds)
	require.NotEmpty(t, plan.Warnings)
}

func TestBuildPairingPlanDeterministic(t *testing.T) {
	teams := teamIDs(7)
	first, err := BuildPairingPlan(teams, 7)
	require.NoError(t, err)
	second, err := BuildPairingPlan(teams, 7)
	require.NoError(t, err)
	require.Equal(t, first, second)
}
