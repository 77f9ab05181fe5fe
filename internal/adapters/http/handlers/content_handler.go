package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/fleet-dispatch/internal/adapters/http/dto"
	"github.com/jsamuelsen11/fleet-dispatch/internal/ports"
)

// ContentHandler handles HTTP requests for generated content.
type ContentHandler struct {
	service ports.ContentService
}

// NewContentHandler creates a new ContentHandler with the given service port.
func NewContentHandler(service ports.ContentService) *ContentHandler {
	return &ContentHandler{service: service}
}

// Text handles POST /api/v1/ai/text.
func (h *ContentHandler) Text(w http.ResponseWriter, r *http.Request) {
	var req dto.TextRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	gen, err := h.service.GenerateText(r.Context(), req.ToDomain())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToTextResponse(gen))
}

// Image handles POST /api/v1/ai/image.
func (h *ContentHandler) Image(w http.ResponseWriter, r *http.Request) {
	var req dto.ImageRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	gen, err := h.service.GenerateImage(r.Context(), req.ToDomain())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToImageResponse(gen))
}
