package httpapi

import (
	"net/http"
	"time"

	"github.com/ackerman1984/d-sports-sub002/internal/domain/schedule"
)

type matchdayResponse struct {
	ID       string `json:"id"`
	SeasonID string `json:"seasonId"`
	Seq      int    `json:"seq"`
	Date     string `json:"date"`
	Playoff  bool   `json:"playoff"`
}

type matchResponse struct {
	ID         string `json:"id"`
	MatchdayID string `json:"matchdayId"`
	Round      int    `json:"round"`
	Seq        int    `json:"seq"`
	HomeTeamID string `json:"homeTeamId"`
	AwayTeamID string `json:"awayTeamId,omitempty"`
	Bye        bool   `json:"bye"`
	FieldID    string `json:"fieldId,omitempty"`
	TimeSlotID string `json:"timeSlotId,omitempty"`
	Status     string `json:"status"`
}

type restCounterResponse struct {
	TeamID          string `json:"teamId"`
	CarriedOverByes int    `json:"carriedOverByes"`
	ScheduledByes   int    `json:"scheduledByes"`
	TotalByes       int    `json:"totalByes"`
}

type generationRunResponse struct {
	ID               string       `json:"id"`
	Outcome          string       `json:"outcome"`
	MatchdaysCreated int          `json:"matchdaysCreated"`
	MatchesCreated   int          `json:"matchesCreated"`
	Warnings         []string     `json:"warnings,omitempty"`
	Conflict         *conflictDTO `json:"conflict,omitempty"`
	StartedAt        time.Time    `json:"startedAt"`
	FinishedAt       time.Time    `json:"finishedAt"`
}

func (h *Handler) ListMatchdays(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMatchdays")
	defer span.End()

	matchdays, err := h.scheduleService.ListMatchdays(ctx, r.PathValue("seasonID"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	items := make([]matchdayResponse, 0, len(matchdays))
	for _, md := range matchdays {
		items = append(items, matchdayResponse{
			ID:       md.ID,
			SeasonID: md.SeasonID,
			Seq:      md.Seq,
			Date:     md.Date.Format("2006-01-02"),
			Playoff:  md.Playoff,
		})
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]any{"matchdays": items})
}

func (h *Handler) ListMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMatches")
	defer span.End()

	matches, err := h.scheduleService.ListMatches(ctx, r.PathValue("seasonID"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	items := make([]matchResponse, 0, len(matches))
	for _, m := range matches {
		items = append(items, matchResponse{
			ID:         m.ID,
			MatchdayID: m.MatchdayID,
			Round:      m.Round,
			Seq:        m.Seq,
			HomeTeamID: m.HomeTeamID,
			AwayTeamID: m.Away.TeamID(),
			Bye:        m.IsBye(),
			FieldID:    m.FieldID,
			TimeSlotID: m.TimeSlotID,
			Status:     m.Status,
		})
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]any{"matches": items})
}

func (h *Handler) ListRestCounters(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListRestCounters")
	defer span.End()

	counters, err := h.scheduleService.ListRestCounters(ctx, r.PathValue("seasonID"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	items := make([]restCounterResponse, 0, len(counters))
	for _, rc := range counters {
		items = append(items, restCounterResponse{
			TeamID:          rc.TeamID,
			CarriedOverByes: rc.CarriedOverByes,
			ScheduledByes:   rc.ScheduledByes,
			TotalByes:       rc.CarriedOverByes + rc.ScheduledByes,
		})
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]any{"restCounters": items})
}

func (h *Handler) ListGenerationRuns(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListGenerationRuns")
	defer span.End()

	runs, err := h.scheduleService.ListGenerationRuns(ctx, r.PathValue("seasonID"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	items := make([]generationRunResponse, 0, len(runs))
	for _, run := range runs {
		items = append(items, toGenerationRunResponse(run))
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]any{"runs": items})
}

func toGenerationRunResponse(run schedule.GenerationRun) generationRunResponse {
	out := generationRunResponse{
		ID:               run.ID,
		Outcome:          run.Outcome,
		MatchdaysCreated: run.MatchdaysCreated,
		MatchesCreated:   run.MatchesCreated,
		Warnings:         run.Warnings,
		StartedAt:        run.StartedAt,
		FinishedAt:       run.FinishedAt,
	}
	if run.Conflict != nil {
		out.Conflict = &conflictDTO{
			Round:      run.Conflict.Round,
			Seq:        run.Conflict.Seq,
			HomeTeamID: run.Conflict.HomeTeamID,
			AwayTeamID: run.Conflict.AwayTeamID,
			Reason:     run.Conflict.Reason,
		}
	}
	return out
}
