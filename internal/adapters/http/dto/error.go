package dto

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"slices"
	"strings"

	"github.com/jsamuelsen11/fleet-dispatch/internal/domain"
	"github.com/jsamuelsen11/fleet-dispatch/internal/platform/logging"
)

const (
	internalErrorDetail = "an internal error occurred"

	// retryAfterSeconds is advertised with 502s: a failed registry
	// bootstrap is retried by the next lookup.
	retryAfterSeconds = "1"
)

// Problem type URIs. Errors without a dedicated type use "about:blank".
const (
	ProblemInvalidRequest = "urn:fleet-dispatch:problem:invalid-request"
	ProblemUnavailable    = "urn:fleet-dispatch:problem:registry-unavailable"
	ProblemTimeout        = "urn:fleet-dispatch:problem:timeout"
)

// ErrorResponse is an RFC 9457 problem details body.
type ErrorResponse struct {
	Type     string        `json:"type"`
	Title    string        `json:"title"`
	Status   int           `json:"status"`
	Detail   string        `json:"detail,omitempty"`
	Instance string        `json:"instance,omitempty"`
	Errors   []ErrorDetail `json:"errors,omitempty"`
}

// ErrorDetail is one invalid request field, located as "body.<field>".
type ErrorDetail struct {
	Location string `json:"location"`
	Message  string `json:"message"`
	Value    any    `json:"value,omitempty"`
}

// problem maps a domain sentinel to its status and type.
type problem struct {
	target error
	status int
	typ    string
}

var problems = []problem{
	{domain.ErrValidation, http.StatusBadRequest, ProblemInvalidRequest},
	{domain.ErrNotFound, http.StatusNotFound, "about:blank"},
	{domain.ErrUnavailable, http.StatusBadGateway, ProblemUnavailable},
	{context.DeadlineExceeded, http.StatusGatewayTimeout, ProblemTimeout},
}

func classify(err error) problem {
	for _, p := range problems {
		if errors.Is(err, p.target) {
			return p
		}
	}
	return problem{status: http.StatusInternalServerError, typ: "about:blank"}
}

// NewErrorResponse builds the problem body for err. Unmapped errors answer
// 500 with a generic detail.
func NewErrorResponse(r *http.Request, err error) ErrorResponse {
	p := classify(err)

	detail := err.Error()
	if p.status == http.StatusInternalServerError {
		detail = internalErrorDetail
	}

	resp := ErrorResponse{
		Type:     p.typ,
		Title:    http.StatusText(p.status),
		Status:   p.status,
		Detail:   detail,
		Instance: r.RequestURI,
	}

	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		resp.Errors = fieldDetails(verr.Fields)
	}
	return resp
}

// WriteErrorResponse writes err as application/problem+json. Server-side
// failures are logged with the request logger.
func WriteErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	resp := NewErrorResponse(r, err)
	logger := logging.FromContext(r.Context())

	switch resp.Status {
	case http.StatusInternalServerError:
		logger.LogAttrs(r.Context(), slog.LevelError, "request failed", slog.Any("error", err))
	case http.StatusBadGateway:
		logger.LogAttrs(r.Context(), slog.LevelWarn, "dispatch unavailable", slog.Any("error", err))
		w.Header().Set("Retry-After", retryAfterSeconds)
	}

	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(resp.Status)

	if encErr := json.NewEncoder(w).Encode(resp); encErr != nil {
		logger.LogAttrs(r.Context(), slog.LevelError, "encoding problem response", slog.Any("error", encErr))
	}
}

func fieldDetails(fields map[string]string) []ErrorDetail {
	details := make([]ErrorDetail, 0, len(fields))
	for field, msg := range fields {
		details = append(details, ErrorDetail{Location: "body." + field, Message: msg})
	}
	slices.SortFunc(details, func(a, b ErrorDetail) int {
		return strings.Compare(a.Location, b.Location)
	})
	return details
}
