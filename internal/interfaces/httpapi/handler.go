package httpapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/ackerman1984/d-sports-sub002/internal/platform/logging"
	"github.com/ackerman1984/d-sports-sub002/internal/usecase"
)

type Handler struct {
	generationService *usecase.GenerationService
	scheduleService   *usecase.ScheduleService
	batchService      *usecase.BatchGenerationService
	logger            *logging.Logger
	validator         *validator.Validate
}

func NewHandler(
	generationService *usecase.GenerationService,
	scheduleService *usecase.ScheduleService,
	batchService *usecase.BatchGenerationService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		generationService: generationService,
		scheduleService:   scheduleService,
		batchService:      batchService,
		logger:            logger,
		validator:         validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	writeSuccess(r.Context(), w, http.StatusOK, map[string]string{"status": "ok"})
}
