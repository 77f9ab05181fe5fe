// Package maintenance routes vehicle maintenance requests to the team that
// handles each kind of issue. A RequestFactory is registered per issue type;
// the factory creates the Handler that processes the request.
package maintenance

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/jsamuelsen11/fleet-dispatch/internal/domain"
)

// MaxDescriptionLength bounds Request.Description, in characters.
const MaxDescriptionLength = 1000

// Request is a maintenance request for a single vehicle.
type Request struct {
	VehicleID   int64
	IssueType   string
	Description string
}

// Validate checks the request shape. It does not check whether IssueType
// has a registered handler.
func (r *Request) Validate() error {
	fields := make(map[string]string)

	if r.VehicleID <= 0 {
		fields["vehicle_id"] = fmt.Sprintf("must be positive, got %d", r.VehicleID)
	}
	if strings.TrimSpace(r.IssueType) == "" {
		fields["issue_type"] = domain.MsgRequired
	}
	if n := utf8.RuneCountInString(r.Description); n > MaxDescriptionLength {
		fields["description"] = fmt.Sprintf("must be at most %d characters, got %d", MaxDescriptionLength, n)
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// Outcome is the result of handling a request. Priority, InventoryChecked
// and EstimatedTime are set only by the handlers they belong to.
type Outcome struct {
	Success    bool
	RequestID  string
	VehicleID  int64
	IssueType  string
	Status     Status
	Message    string
	AssignedTo string

	Priority         Priority
	InventoryChecked *bool
	EstimatedTime    string
}

// Handler processes a maintenance request.
type Handler interface {
	Handle(req Request) Outcome
}

// RequestFactory creates the Handler for one issue type. It is the
// capability maintenance registries dispatch on.
type RequestFactory interface {
	CreateHandler() Handler
}

// HandleRequest creates a handler with f and runs req through it.
func HandleRequest(f RequestFactory, req Request) Outcome {
	return f.CreateHandler().Handle(req)
}
