package adaptor

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/waysterMelo/sarah-pilates-sub001/internal/data/repository"
	"github.com/waysterMelo/sarah-pilates-sub001/internal/usecase"
	"github.com/waysterMelo/sarah-pilates-sub001/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newScheduleTestRouter() *chi.Mux {
	log := zap.NewNop()
	service := usecase.NewScheduleService(repository.NewWeekRepository(repository.SampleWeek(), log), log)
	handler := NewScheduleHandler(service, log)

	r := chi.NewRouter()
	r.Get("/api/schedule", handler.GetWeek)
	r.Get("/api/schedule/stats", handler.GetStats)
	r.Post("/api/schedule/{day}/slots", handler.AddSlot)
	r.Put("/api/schedule/slots/{id}/capacity", handler.UpdateSlotCapacity)
	r.Delete("/api/schedule/{day}/slots/{id}", handler.DeleteSlot)
	return r
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) utils.Response {
	t.Helper()
	var resp utils.Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp
}

func TestScheduleHandlerGetWeek(t *testing.T) {
	router := newScheduleTestRouter()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/schedule", nil))

	assert.Equal(t, http.StatusOK, rec.Code)

	resp := decodeResponse(t, rec)
	assert.True(t, resp.Status)

	days := resp.Data.(map[string]any)["days"].([]any)
	assert.Len(t, days, 6)
}

func TestScheduleHandlerAddSlot(t *testing.T) {
	router := newScheduleTestRouter()

	body := strings.NewReader(`{"time":"20:00","max_capacity":5,"room":"Sala 2"}`)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/schedule/Segunda/slots", body))

	require.Equal(t, http.StatusCreated, rec.Code)

	resp := decodeResponse(t, rec)
	slot := resp.Data.(map[string]any)
	assert.Equal(t, float64(13), slot["id"])
	assert.Equal(t, "low", slot["occupancy_band"])
}

func TestScheduleHandlerAddSlotValidation(t *testing.T) {
	router := newScheduleTestRouter()

	body := strings.NewReader(`{"time":"20:00","max_capacity":101}`)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/schedule/Segunda/slots", body))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestScheduleHandlerUnknownDayIs404(t *testing.T) {
	router := newScheduleTestRouter()

	body := strings.NewReader(`{"time":"09:00","max_capacity":5}`)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/schedule/Domingo/slots", body))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestScheduleHandlerUpdateCapacity(t *testing.T) {
	router := newScheduleTestRouter()

	body := strings.NewReader(`{"max_capacity":9}`)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/api/schedule/slots/1/capacity", body))

	require.Equal(t, http.StatusOK, rec.Code)

	resp := decodeResponse(t, rec)
	slot := resp.Data.(map[string]any)
	assert.Equal(t, float64(9), slot["max_capacity"])
	assert.Equal(t, float64(5), slot["current_bookings"])
}

func TestScheduleHandlerDeleteSlot(t *testing.T) {
	router := newScheduleTestRouter()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/schedule/S%C3%A1bado/slots/12", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/schedule/S%C3%A1bado/slots/12", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestScheduleHandlerStats(t *testing.T) {
	router := newScheduleTestRouter()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/schedule/stats", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	resp := decodeResponse(t, rec)
	stats := resp.Data.(map[string]any)
	assert.Equal(t, float64(92), stats["total_capacity"])
	assert.Equal(t, float64(60), stats["total_bookings"])
	assert.Equal(t, float64(65), stats["average_occupancy"])
}
