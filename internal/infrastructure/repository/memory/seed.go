package memory

import (
	"time"

	"github.com/ackerman1984/d-sports-sub002/internal/domain/season"
	"github.com/ackerman1984/d-sports-sub002/internal/domain/team"
	"github.com/ackerman1984/d-sports-sub002/internal/domain/venue"
)

const (
	LeagueIDSabatina  = "lg-sabatina"
	LeagueIDVeteranos = "lg-veteranos"

	SeasonIDApertura2026 = "season-apertura-2026"
)

func SeedSeasons() []season.Season {
	return []season.Season{
		{
			ID:                    SeasonIDApertura2026,
			LeagueID:              LeagueIDSabatina,
			Name:                  "Apertura 2026",
			StartsOn:              time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC),
			EndsOn:                time.Date(2026, time.May, 31, 0, 0, 0, 0, time.UTC),
			PlannedRounds:         5,
			MaxMatchesPerSaturday: 2,
			Status:                season.StatusDraft,
		},
	}
}

func SeedTeams() []team.Team {
	return []team.Team{
		{ID: "team-aguilas", LeagueID: LeagueIDSabatina, Name: "Aguilas", Active: true},
		{ID: "team-broncos", LeagueID: LeagueIDSabatina, Name: "Broncos", Active: true},
		{ID: "team-cuervos", LeagueID: LeagueIDSabatina, Name: "Cuervos", Active: true},
		{ID: "team-diablos", LeagueID: LeagueIDSabatina, Name: "Diablos", Active: true},
		{ID: "team-estrellas", LeagueID: LeagueIDSabatina, Name: "Estrellas", Active: true},
		{ID: "team-faros", LeagueID: LeagueIDSabatina, Name: "Faros", Active: false},
		{ID: "team-vet-01", LeagueID: LeagueIDVeteranos, Name: "Veteranos 01", Active: true},
	}
}

func SeedFields() []venue.Field {
	return []venue.Field{
		{ID: "field-central", LeagueID: LeagueIDSabatina, Name: "Campo Central", Priority: 1, Active: true},
		{ID: "field-anexo", LeagueID: LeagueIDSabatina, Name: "Campo Anexo", Priority: 2, Active: true},
		{ID: "field-viejo", LeagueID: LeagueIDSabatina, Name: "Campo Viejo", Priority: 3, Active: false},
	}
}

func SeedTimeSlots() []venue.TimeSlot {
	return []venue.TimeSlot{
		{ID: "slot-0900", LeagueID: LeagueIDSabatina, Name: "Morning", StartsAt: "09:00", EndsAt: "11:00", DefaultActive: true, Position: 1},
		{ID: "slot-1130", LeagueID: LeagueIDSabatina, Name: "Midday", StartsAt: "11:30", EndsAt: "13:30", DefaultActive: true, Position: 2},
		{ID: "slot-1600", LeagueID: LeagueIDSabatina, Name: "Afternoon", StartsAt: "16:00", EndsAt: "18:00", DefaultActive: false, Position: 3},
	}
}
