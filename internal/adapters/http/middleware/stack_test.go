package middleware_test

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/fleet-dispatch/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/fleet-dispatch/internal/platform/logging"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func jsonLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// logEntries decodes every JSON log line written to buf.
func logEntries(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()

	var entries []map[string]any
	sc := bufio.NewScanner(bytes.NewReader(buf.Bytes()))
	for sc.Scan() {
		var entry map[string]any
		require.NoError(t, json.Unmarshal(sc.Bytes(), &entry))
		entries = append(entries, entry)
	}
	require.NoError(t, sc.Err())
	return entries
}

// findEntry returns the first log entry with the given message.
func findEntry(t *testing.T, buf *bytes.Buffer, msg string) map[string]any {
	t.Helper()

	for _, entry := range logEntries(t, buf) {
		if entry["msg"] == msg {
			return entry
		}
	}
	require.Failf(t, "log entry not found", "msg %q in %s", msg, buf.String())
	return nil
}

// fleetRouter mounts the dispatch routes behind the middleware in the order
// the server installs them. The handlers record registry lookups the way
// the app services do.
func fleetRouter(logger *slog.Logger, timeout time.Duration) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.CorrelationID(),
		middleware.Logging(logger),
		middleware.Timeout(timeout),
	)

	r.Post("/api/v1/trip/quotes", func(w http.ResponseWriter, r *http.Request) {
		d := logging.DispatchFromContext(r.Context())
		d.Record("trip", "local", nil)
		d.Record("trip", "space", nil)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"quotes":[]}`))
	})
	r.Post("/api/v1/maintenance/request", func(w http.ResponseWriter, r *http.Request) {
		logging.DispatchFromContext(r.Context()).Record("maintenance", "rocket", errors.New("unknown"))
		http.Error(w, "unknown issue type", http.StatusBadRequest)
	})
	r.Get("/api/v1/content/{type}", func(_ http.ResponseWriter, r *http.Request) {
		logging.DispatchFromContext(r.Context()).Record("content", chi.URLParam(r, "type"), nil)
		panic("renderer exploded")
	})
	return r
}
