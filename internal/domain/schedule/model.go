package schedule

import (
	"errors"
	"fmt"
	"time"
)

const (
	StatusScheduled  = "scheduled"
	StatusInProgress = "in_progress"
	StatusFinished   = "finished"
	StatusCanceled   = "canceled"
)

const (
	RunSuccess = "success"
	RunFailure = "failure"
)

// ErrLocked is returned by the persistence layer when another generation
// run holds the season's advisory lock.
var ErrLocked = errors.New("season schedule is locked by another generation run")

// Opponent is either a real team or the bye placeholder. The zero value
// is the bye, so a match row cannot end up with a phantom opponent id.
type Opponent struct {
	teamID string
}

func TeamOpponent(teamID string) Opponent {
	return Opponent{teamID: teamID}
}

func ByeOpponent() Opponent {
	return Opponent{}
}

func (o Opponent) IsBye() bool {
	return o.teamID == ""
}

func (o Opponent) TeamID() string {
	return o.teamID
}

// Pairing is one round-robin matchup. Round is 1-based; Seq is the stable
// 1-based position inside the round used for deterministic slot
// assignment.
type Pairing struct {
	Round int
	Seq   int
	Home  string
	Away  Opponent
}

func (p Pairing) IsBye() bool {
	return p.Away.IsBye()
}

func (p Pairing) String() string {
	if p.IsBye() {
		return fmt.Sprintf("round %d #%d: %s rests", p.Round, p.Seq, p.Home)
	}
	return fmt.Sprintf("round %d #%d: %s vs %s", p.Round, p.Seq, p.Home, p.Away.TeamID())
}

// PairingPlan is the full set of rounds for a season, before and after
// fairness adjustment.
type PairingPlan struct {
	Teams    []string
	Rounds   [][]Pairing
	Warnings []string
}

// Matchday is one generated competition date ("jornada").
type Matchday struct {
	ID       string
	SeasonID string
	Seq      int
	Date     time.Time
	Playoff  bool
}

// Match is the atomic schedule unit. MatchdaySeq links a freshly
// allocated match to its matchday before ids exist; MatchdayID is set on
// persisted rows. Field and time slot are empty on byes.
type Match struct {
	ID          string
	SeasonID    string
	MatchdayID  string
	MatchdaySeq int
	Round       int
	Seq         int
	HomeTeamID  string
	Away        Opponent
	FieldID     string
	TimeSlotID  string
	Status      string
}

func (m Match) IsBye() bool {
	return m.Away.IsBye()
}

// RestCounter tracks byes per team per season. CarriedOverByes comes from
// season continuation and is never written by generation; ScheduledByes
// is what the current schedule assigns.
type RestCounter struct {
	SeasonID        string
	TeamID          string
	CarriedOverByes int
	ScheduledByes   int
}

// Conflict describes the first pairing the allocator could not place.
type Conflict struct {
	Round      int
	Seq        int
	HomeTeamID string
	AwayTeamID string
	Reason     string
}

func (c Conflict) Pairing() string {
	if c.AwayTeamID == "" {
		return fmt.Sprintf("round %d #%d: %s (bye)", c.Round, c.Seq, c.HomeTeamID)
	}
	return fmt.Sprintf("round %d #%d: %s vs %s", c.Round, c.Seq, c.HomeTeamID, c.AwayTeamID)
}

// GenerationRun is the append-only audit record of one attempt.
type GenerationRun struct {
	ID               string
	SeasonID         string
	Outcome          string
	MatchdaysCreated int
	MatchesCreated   int
	Warnings         []string
	Conflict         *Conflict
	StartedAt        time.Time
	FinishedAt       time.Time
}
