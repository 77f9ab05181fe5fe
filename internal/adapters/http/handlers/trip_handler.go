package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/fleet-dispatch/internal/adapters/http/dto"
	"github.com/jsamuelsen11/fleet-dispatch/internal/ports"
)

// TripHandler handles HTTP requests for trip pricing.
type TripHandler struct {
	service ports.TripService
}

// NewTripHandler creates a new TripHandler with the given service port.
func NewTripHandler(service ports.TripService) *TripHandler {
	return &TripHandler{service: service}
}

// Calculate handles POST /api/v1/trip/request.
func (h *TripHandler) Calculate(w http.ResponseWriter, r *http.Request) {
	var req dto.TripRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	cost, err := h.service.Calculate(r.Context(), req.ToDomain())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToTripCostResponse(cost))
}

// Quotes handles POST /api/v1/trip/quotes.
func (h *TripHandler) Quotes(w http.ResponseWriter, r *http.Request) {
	var req dto.QuoteRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	quotes, err := h.service.Quote(r.Context(), *req.DistanceKm, *req.DurationHours)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToQuoteListResponse(quotes))
}

// Types handles GET /api/v1/trip/types.
func (h *TripHandler) Types(w http.ResponseWriter, r *http.Request) {
	types, err := h.service.Types(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToTypesResponse(types))
}
