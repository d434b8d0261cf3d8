package httpapi

import (
	"fmt"
	"io"
	"net/http"
	"strings"

	sonic "github.com/bytedance/sonic"

	"github.com/ackerman1984/d-sports-sub002/internal/usecase"
)

type generateCalendarRequest struct {
	DryRun bool `json:"dryRun"`
}

type generatePendingJobRequest struct {
	LeagueID   string `json:"leagueId" validate:"required"`
	MaxWorkers int    `json:"maxWorkers" validate:"gte=0,lte=32"`
	DryRun     bool   `json:"dryRun"`
}

// GenerateCalendar builds the full Saturday calendar for one season.
// The body is optional; {"dryRun": true} computes everything without
// persisting.
func (h *Handler) GenerateCalendar(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GenerateCalendar")
	defer span.End()

	seasonID := r.PathValue("seasonID")

	req, err := decodeGenerateCalendarRequest(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.generationService.Generate(ctx, usecase.GenerateInput{
		SeasonID: seasonID,
		DryRun:   req.DryRun,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "calendar generation failed", "season_id", seasonID, "dry_run", req.DryRun, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, result)
}

// RunGeneratePendingJob regenerates every draft or generated season of a
// league. Meant for the internal scheduler, not for admins.
func (h *Handler) RunGeneratePendingJob(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RunGeneratePendingJob")
	defer span.End()

	var req generatePendingJobRequest
	if err := h.decodeJSONBody(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validator.Struct(req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: %s", usecase.ErrInvalidInput, err))
		return
	}

	result, err := h.batchService.GeneratePending(ctx, usecase.BatchGenerateInput{
		LeagueID:   req.LeagueID,
		MaxWorkers: req.MaxWorkers,
		DryRun:     req.DryRun,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "generate pending job failed", "league_id", req.LeagueID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, result)
}

func decodeGenerateCalendarRequest(r *http.Request) (generateCalendarRequest, error) {
	var req generateCalendarRequest

	body, err := io.ReadAll(r.Body)
	if err != nil {
		return req, fmt.Errorf("%w: read request body: %s", usecase.ErrInvalidInput, err)
	}
	if len(strings.TrimSpace(string(body))) == 0 {
		return req, nil
	}
	if err := sonic.Unmarshal(body, &req); err != nil {
		return req, fmt.Errorf("%w: invalid request body: %s", usecase.ErrInvalidInput, err)
	}

	return req, nil
}

func (h *Handler) decodeJSONBody(r *http.Request, target any) error {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return fmt.Errorf("%w: read request body: %s", usecase.ErrInvalidInput, err)
	}
	if len(strings.TrimSpace(string(body))) == 0 {
		return fmt.Errorf("%w: request body is required", usecase.ErrInvalidInput)
	}
	if err := sonic.Unmarshal(body, target); err != nil {
		return fmt.Errorf("%w: invalid request body: %s", usecase.ErrInvalidInput, err)
	}
	return nil
}
