package schedule

import "fmt"

// FairnessResult reports the bye distribution after adjustment.
// ByeCounts covers this plan only; TotalByes adds carried-over counters
// from season continuation.
type FairnessResult struct {
	ByeCounts     map[string]int
	TotalByes     map[string]int
	Reassignments int
	Warnings      []string
}

// BalanceByes audits the bye distribution of a plan and greedily
// reassigns byes while the max-min gap exceeds 1. A reassignment moves a
// round's bye from the most-rested team to the least-rested one: the
// most-rested team takes over the other's opponent for that round. It is
// only taken when the induced matchup does not already occur elsewhere
// in the plan; when no safe move remains a warning is recorded and the
// plan stands. Fairness is best-effort, validity of pairings is not.
func BalanceByes(plan *PairingPlan, carriedOver map[string]int) *FairnessResult {
	res := &FairnessResult{
		ByeCounts: make(map[string]int, len(plan.Teams)),
		TotalByes: make(map[string]int, len(plan.Teams)),
	}
	for _, id := range plan.Teams {
		res.ByeCounts[id] = 0
	}
	for _, round := range plan.Rounds {
		for _, p := range round {
			if p.IsBye() {
				res.ByeCounts[p.Home]++
			}
		}
	}
	for _, id := range plan.Teams {
		res.TotalByes[id] = res.ByeCounts[id] + carriedOver[id]
	}

	maxMoves := len(plan.Teams) * (len(plan.Rounds) + 1)
	for move := 0; move < maxMoves; move++ {
		hi, lows := byeExtremes(plan.Teams, res.TotalByes)
		if hi == "" || len(lows) == 0 || res.TotalByes[hi]-res.TotalByes[lows[0]] <= 1 {
			return res
		}

		moved := ""
		for _, lo := range lows {
			if reassignBye(plan, hi, lo) {
				moved = lo
				break
			}
		}
		if moved == "" {
			res.Warnings = append(res.Warnings, fmt.Sprintf(
				"bye distribution unbalanced: %s rests %d times, %s rests %d; no safe reassignment remains",
				hi, res.TotalByes[hi], lows[0], res.TotalByes[lows[0]]))
			return res
		}
		res.Reassignments++
		res.ByeCounts[hi]--
		res.ByeCounts[moved]++
		res.TotalByes[hi]--
		res.TotalByes[moved]++
	}
	return res
}

// byeExtremes returns the most-rested team (ties broken by plan order)
// and every least-rested team, so the caller can try each under-rested
// candidate in a deterministic order.
func byeExtremes(teams []string, totals map[string]int) (hi string, lows []string) {
	min := 0
	for i, id := range teams {
		if i == 0 || totals[id] > totals[hi] {
			hi = id
		}
		switch {
		case i == 0 || totals[id] < min:
			min = totals[id]
			lows = append(lows[:0], id)
		case totals[id] == min:
			lows = append(lows, id)
		}
	}
	return hi, lows
}

// reassignBye looks for a round where hi rests and lo plays, and hands
// the bye to lo with hi taking over lo's opponent. Returns false when no
// round admits the move without duplicating a matchup.
func reassignBye(plan *PairingPlan, hi, lo string) bool {
	for ri, round := range plan.Rounds {
		byeIdx, loIdx := -1, -1
		for pi, p := range round {
			if p.IsBye() && p.Home == hi {
				byeIdx = pi
			}
			if !p.IsBye() && (p.Home == lo || p.Away.TeamID() == lo) {
				loIdx = pi
			}
		}
		if byeIdx < 0 || loIdx < 0 {
			continue
		}

		loPairing := round[loIdx]
		opponent := loPairing.Home
		if opponent == lo {
			opponent = loPairing.Away.TeamID()
		}
		if countMatchups(plan, hi, opponent) > 0 {
			continue
		}

		if loPairing.Home == lo {
			plan.Rounds[ri][loIdx].Home = hi
		} else {
			plan.Rounds[ri][loIdx].Away = TeamOpponent(hi)
		}
		plan.Rounds[ri][byeIdx].Home = lo
		return true
	}
	return false
}

func countMatchups(plan *PairingPlan, a, b string) int {
	count := 0
	for _, round := range plan.Rounds {
		for _, p := range round {
			if p.IsBye() {
				continue
			}
			home, away := p.Home, p.Away.TeamID()
			if (home == a && away == b) || (home == b && away == a) {
				count++
			}
		}
	}
	return count
}
