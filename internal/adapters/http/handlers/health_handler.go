package handlers

import (
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/fleet-dispatch/internal/adapters/http/dto"
	"github.com/jsamuelsen11/fleet-dispatch/internal/platform/logging"
	"github.com/jsamuelsen11/fleet-dispatch/internal/ports"
)

// HealthHandler serves liveness and readiness. Readiness runs the checks of
// the dispatch registries and the trip pricing upstream.
type HealthHandler struct {
	registry ports.HealthRegistry
}

// NewHealthHandler returns a handler reporting on registry.
func NewHealthHandler(registry ports.HealthRegistry) *HealthHandler {
	return &HealthHandler{registry: registry}
}

// Liveness handles GET /health/live.
func (h *HealthHandler) Liveness(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": dto.StatusOK})
}

// Readiness handles GET /health/ready: 200 when every check passes,
// otherwise 503 with each failure logged at warn level.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	resp := dto.ToReadinessResponse(h.registry.CheckAll(r.Context()))
	if resp.Status == dto.StatusReady {
		writeJSON(w, http.StatusOK, resp)
		return
	}

	logger := logging.FromContext(r.Context())
	for _, check := range resp.Checks {
		if check.Status == dto.StatusFailed {
			logger.LogAttrs(r.Context(), slog.LevelWarn, "readiness check failed",
				slog.String("check", check.Name),
				slog.String("error", check.Error),
			)
		}
	}
	writeJSON(w, http.StatusServiceUnavailable, resp)
}
