package middleware_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jsamuelsen11/fleet-dispatch/internal/adapters/http/middleware"
)

func TestTimeout_CompletesBeforeDeadline(t *testing.T) {
	t.Parallel()

	var hasDeadline bool
	handler := middleware.Timeout(time.Second)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, hasDeadline = r.Context().Deadline()
		w.Header().Set("Location", "/api/v1/maintenance/request/17")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"vehicle_id":17}`))
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/maintenance/request", http.NoBody))

	assert.True(t, hasDeadline)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "/api/v1/maintenance/request/17", rec.Header().Get("Location"))
	assert.JSONEq(t, `{"vehicle_id":17}`, rec.Body.String())
}

func TestTimeout_ImplicitStatusIsOK(t *testing.T) {
	t.Parallel()

	handler := middleware.Timeout(time.Second)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`["local","intercity","space"]`))
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/trip/types", http.NoBody))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `["local","intercity","space"]`, rec.Body.String())
}

func TestTimeout_ExceedsDeadline(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	late := make(chan error, 1)
	handler := middleware.Timeout(20 * time.Millisecond)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		<-release
		_, err := w.Write([]byte("too late"))
		late <- err
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/trip/quotes", http.NoBody))
	close(release)

	assert.Equal(t, http.StatusGatewayTimeout, rec.Code)
	assert.Equal(t, "application/problem+json", rec.Header().Get("Content-Type"))
	assert.ErrorIs(t, <-late, http.ErrHandlerTimeout)
	assert.NotContains(t, rec.Body.String(), "too late")
}

func TestTimeout_PanicReachesRecovery(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	rec := httptest.NewRecorder()
	fleetRouter(jsonLogger(&buf), time.Second).
		ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/content/markdown", http.NoBody))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "renderer exploded", findEntry(t, &buf, "panic recovered")["panic"])
}
