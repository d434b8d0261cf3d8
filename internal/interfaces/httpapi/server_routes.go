package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerPublicScheduleRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/seasons/{seasonID}/matchdays", handler.ListMatchdays)
	mux.HandleFunc("GET /v1/seasons/{seasonID}/matches", handler.ListMatches)
	mux.HandleFunc("GET /v1/seasons/{seasonID}/rest-counters", handler.ListRestCounters)
}

func registerAdminRoutes(mux *http.ServeMux, handler *Handler, adminToken string) {
	mux.Handle("POST /v1/seasons/{seasonID}/calendar:generate",
		RequireAdminToken(adminToken, http.HandlerFunc(handler.GenerateCalendar)))
	mux.Handle("GET /v1/seasons/{seasonID}/generation-runs",
		RequireAdminToken(adminToken, http.HandlerFunc(handler.ListGenerationRuns)))
}

func registerInternalJobRoutes(mux *http.ServeMux, handler *Handler, internalJobToken string) {
	mux.Handle("POST /v1/internal/jobs/generate-pending",
		RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.RunGeneratePendingJob)))
}
