package schedule

import "fmt"

// byeSentinel pads an odd team count to even; whoever it pairs with
// rests that round.
const byeSentinel = ""

// BuildPairingPlan produces rounds of round-robin pairings using the
// circle method: the first team stays fixed while the rest rotate one
// position per round. Requesting more rounds than one full cycle repeats
// the rotation with home and away roles flipped on every odd pass, so an
// even number of passes gives every team each opponent home and away in
// equal measure. Requesting fewer truncates the first pass.
func BuildPairingPlan(teamIDs []string, rounds int) (*PairingPlan, error) {
	if len(teamIDs) < 2 {
		return nil, fmt.Errorf("pairing requires at least 2 teams, got %d", len(teamIDs))
	}
	if rounds < 0 {
		return nil, fmt.Errorf("round count cannot be negative, got %d", rounds)
	}
	seen := make(map[string]struct{}, len(teamIDs))
	for _, id := range teamIDs {
		if id == byeSentinel {
			return nil, fmt.Errorf("team id cannot be empty")
		}
		if _, dup := seen[id]; dup {
			return nil, fmt.Errorf("duplicate team id %q", id)
		}
		seen[id] = struct{}{}
	}

	plan := &PairingPlan{Teams: append([]string(nil), teamIDs...)}
	if rounds == 0 {
		plan.Warnings = append(plan.Warnings, "no rounds requested; plan is empty")
		return plan, nil
	}

	ring := append([]string(nil), teamIDs...)
	if len(ring)%2 == 1 {
		ring = append(ring, byeSentinel)
	}
	m := len(ring)
	cycle := m - 1

	for r := 0; r < rounds; r++ {
		flip := (r/cycle)%2 == 1
		round := make([]Pairing, 0, m/2)

		for i := 0; i < m/2; i++ {
			a, b := ring[i], ring[m-1-i]
			seq := len(round) + 1
			switch {
			case a == byeSentinel:
				round = append(round, Pairing{Round: r + 1, Seq: seq, Home: b, Away: ByeOpponent()})
			case b == byeSentinel:
				round = append(round, Pairing{Round: r + 1, Seq: seq, Home: a, Away: ByeOpponent()})
			default:
				home, away := a, b
				if (r%cycle+i)%2 == 1 {
					home, away = away, home
				}
				if flip {
					home, away = away, home
				}
				round = append(round, Pairing{Round: r + 1, Seq: seq, Home: home, Away: TeamOpponent(away)})
			}
		}

		plan.Rounds = append(plan.Rounds, round)

		// Rotate everything except the pivot one step.
		last := ring[m-1]
		copy(ring[2:], ring[1:m-1])
		ring[1] = last
	}

	return plan, nil
}
