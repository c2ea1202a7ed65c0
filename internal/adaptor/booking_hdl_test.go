package adaptor

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/waysterMelo/sarah-pilates-sub001/internal/data/repository"
	"github.com/waysterMelo/sarah-pilates-sub001/internal/usecase"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newBookingTestRouter() *chi.Mux {
	log := zap.NewNop()
	repo := &repository.Repository{
		Booking: repository.NewBookingRepository(repository.SampleBookings(), log),
	}
	handler := NewBookingHandler(usecase.NewBookingService(repo, log), log)

	r := chi.NewRouter()
	r.Get("/api/bookings/{id}", handler.GetBooking)
	r.Delete("/api/bookings/{id}", handler.DeleteBooking)
	return r
}

// Deletion is gated on an explicit confirm query flag.
func TestBookingHandlerDeleteRequiresConfirm(t *testing.T) {
	router := newBookingTestRouter()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/bookings/1", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// Record untouched
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/bookings/1", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/bookings/1?confirm=true", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/bookings/1", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestBookingHandlerBadID(t *testing.T) {
	router := newBookingTestRouter()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/bookings/abc", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
