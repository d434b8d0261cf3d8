package venue

// Field is a playable diamond belonging to a league. Priority orders
// fields when the allocator hands out slots (lower plays first).
type Field struct {
	ID       string
	LeagueID string
	Name     string
	Priority int
	Active   bool
}

// TimeSlot is a named time window ("09:00"–"11:00"). DefaultActive is the
// league-wide default; a season can enable or disable individual slots on
// top of it.
type TimeSlot struct {
	ID            string
	LeagueID      string
	Name          string
	StartsAt      string
	EndsAt        string
	DefaultActive bool
	Position      int
}
