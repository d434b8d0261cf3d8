package team

// Team is a roster-bearing club in one league. Rosters live elsewhere;
// generation only needs identity and the active flag.
type Team struct {
	ID       string
	LeagueID string
	Name     string
	Active   bool
}
