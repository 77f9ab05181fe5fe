package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/fleet-dispatch/internal/adapters/http/dto"
	"github.com/jsamuelsen11/fleet-dispatch/internal/ports"
)

// MaintenanceHandler handles HTTP requests for vehicle maintenance.
type MaintenanceHandler struct {
	service ports.MaintenanceService
}

// NewMaintenanceHandler creates a new MaintenanceHandler with the given
// service port.
func NewMaintenanceHandler(service ports.MaintenanceService) *MaintenanceHandler {
	return &MaintenanceHandler{service: service}
}

// Submit handles POST /api/v1/maintenance/request.
func (h *MaintenanceHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req dto.MaintenanceRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	outcome, err := h.service.Submit(r.Context(), req.ToDomain())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.ToMaintenanceResponse(outcome))
}

// Types handles GET /api/v1/maintenance/types.
func (h *MaintenanceHandler) Types(w http.ResponseWriter, r *http.Request) {
	types, err := h.service.Types(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToTypesResponse(types))
}
