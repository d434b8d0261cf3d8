package httpapi

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	sonic "github.com/bytedance/sonic"
	"github.com/stretchr/testify/require"

	"github.com/ackerman1984/d-sports-sub002/internal/infrastructure/repository/memory"
	"github.com/ackerman1984/d-sports-sub002/internal/platform/id"
	"github.com/ackerman1984/d-sports-sub002/internal/platform/logging"
	"github.com/ackerman1984/d-sports-sub002/internal/usecase"
)

const testAdminToken = "admin-secret"

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	seasonRepo := memory.NewSeasonRepository(memory.SeedSeasons())
	teamRepo := memory.NewTeamRepository(memory.SeedTeams())
	fieldRepo := memory.NewFieldRepository(memory.SeedFields())
	timeSlotRepo := memory.NewTimeSlotRepository(memory.SeedTimeSlots())
	overrideRepo := memory.NewOverrideRepository(nil)
	store := memory.NewScheduleStore()

	generationService := usecase.NewGenerationService(
		seasonRepo, teamRepo, fieldRepo, timeSlotRepo, overrideRepo,
		store, store.RestCounters(), store.Runs(),
		id.NewRandomGenerator(),
	)
	scheduleService := usecase.NewScheduleService(seasonRepo, store, store.RestCounters(), store.Runs())
	batchService := usecase.NewBatchGenerationService(seasonRepo, generationService)

	handler := NewHandler(generationService, scheduleService, batchService, logging.NewNop())
	return NewRouter(handler, logging.NewNop(), []string{"*"}, testAdminToken, "job-secret")
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, "2.0", body["apiVersion"])
	return body
}

func TestRouter_GenerateThenListMatches(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/v1/seasons/"+memory.SeasonIDApertura2026+"/calendar:generate", strings.NewReader(`{"dryRun":false}`))
	req.Header.Set("X-Admin-Token", testAdminToken)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	body := decodeEnvelope(t, rec)
	data, ok := body["data"].(map[string]any)
	require.True(t, ok)
	require.Equal(t, float64(5), data["matchday_count"])
	require.Equal(t, float64(15), data["match_count"])
	require.NotEmpty(t, data["run_id"])

	listReq := httptest.NewRequest(http.MethodGet, "/v1/seasons/"+memory.SeasonIDApertura2026+"/matches", nil)
	listRec := httptest.NewRecorder()
	router.ServeHTTP(listRec, listReq)

	require.Equal(t, http.StatusOK, listRec.Code, listRec.Body.String())
	listBody := decodeEnvelope(t, listRec)
	listData, ok := listBody["data"].(map[string]any)
	require.True(t, ok)
	matches, ok := listData["matches"].([]any)
	require.True(t, ok)
	require.Len(t, matches, 15)
}

func TestRouter_GenerateRequiresAdminToken(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/v1/seasons/"+memory.SeasonIDApertura2026+"/calendar:generate", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRouter_GenerateUnknownSeason(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/v1/seasons/season-nope/calendar:generate", nil)
	req.Header.Set("X-Admin-Token", testAdminToken)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	body := decodeEnvelope(t, rec)
	errorObj, ok := body["error"].(map[string]any)
	require.True(t, ok)
	require.Equal(t, "NOT_FOUND", errorObj["status"])
}

func TestRouter_GenerateRejectsMalformedBody(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/v1/seasons/"+memory.SeasonIDApertura2026+"/calendar:generate", strings.NewReader(`{"dryRun":`))
	req.Header.Set("X-Admin-Token", testAdminToken)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRouter_DryRunSkipsPersistence(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/v1/seasons/"+memory.SeasonIDApertura2026+"/calendar:generate", strings.NewReader(`{"dryRun":true}`))
	req.Header.Set("X-Admin-Token", testAdminToken)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	body := decodeEnvelope(t, rec)
	data, ok := body["data"].(map[string]any)
	require.True(t, ok)
	require.Equal(t, true, data["dry_run"])
	require.Empty(t, data["run_id"])

	listReq := httptest.NewRequest(http.MethodGet, "/v1/seasons/"+memory.SeasonIDApertura2026+"/matches", nil)
	listRec := httptest.NewRecorder()
	router.ServeHTTP(listRec, listReq)

	listBody := decodeEnvelope(t, listRec)
	listData := listBody["data"].(map[string]any)
	matches, _ := listData["matches"].([]any)
	require.Empty(t, matches)
}

func TestRouter_PendingJobRequiresLeague(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/v1/internal/jobs/generate-pending", strings.NewReader(`{"maxWorkers":2}`))
	req.Header.Set("X-Internal-Job-Token", "job-secret")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRouter_PendingJobGeneratesLeague(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/v1/internal/jobs/generate-pending", strings.NewReader(`{"leagueId":"`+memory.LeagueIDSabatina+`","maxWorkers":2}`))
	req.Header.Set("X-Internal-Job-Token", "job-secret")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	body := decodeEnvelope(t, rec)
	data, ok := body["data"].(map[string]any)
	require.True(t, ok)
	require.Equal(t, float64(1), data["season_count"])
	require.Equal(t, float64(1), data["success_count"])
}

func TestRouter_Healthz(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
}
