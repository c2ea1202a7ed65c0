package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

// Two different ids must land on the same label series.
func TestMetricsPathUsesRoutePattern(t *testing.T) {
	var got []string

	r := chi.NewRouter()
	r.Get("/api/bookings/{id}", func(w http.ResponseWriter, r *http.Request) {
		got = append(got, metricsPath(r))
		w.WriteHeader(http.StatusOK)
	})

	for _, target := range []string{"/api/bookings/1", "/api/bookings/42"} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	}

	assert.Equal(t, []string{"/api/bookings/{id}", "/api/bookings/{id}"}, got)
}

func TestMetricsPathFallsBackToURLPath(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/unrouted/path", nil)
	assert.Equal(t, "/unrouted/path", metricsPath(req))
}
