package dto

import (
	"strings"

	"github.com/jsamuelsen11/fleet-dispatch/internal/domain"
	"github.com/jsamuelsen11/fleet-dispatch/internal/domain/content"
	"github.com/jsamuelsen11/fleet-dispatch/internal/domain/maintenance"
	"github.com/jsamuelsen11/fleet-dispatch/internal/domain/trip"
)

// MaintenanceRequest represents the JSON body for submitting a maintenance
// request.
type MaintenanceRequest struct {
	VehicleID   *int64 `json:"vehicle_id"`
	IssueType   string `json:"issue_type"`
	Description string `json:"description,omitempty"`
}

// Validate checks that required fields are present. Range and length rules
// are checked by the domain.
func (r *MaintenanceRequest) Validate() error {
	fields := make(map[string]string)

	if r.VehicleID == nil {
		fields["vehicle_id"] = domain.MsgRequired
	}
	if strings.TrimSpace(r.IssueType) == "" {
		fields["issue_type"] = domain.MsgRequired
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// ToDomain converts the request to a maintenance.Request. Call Validate first.
func (r *MaintenanceRequest) ToDomain() maintenance.Request {
	var id int64
	if r.VehicleID != nil {
		id = *r.VehicleID
	}
	return maintenance.Request{
		VehicleID:   id,
		IssueType:   r.IssueType,
		Description: r.Description,
	}
}

// TripRequest represents the JSON body for pricing a trip.
type TripRequest struct {
	Type          string   `json:"type"`
	DistanceKm    *float64 `json:"distance_km"`
	DurationHours *float64 `json:"duration_hours"`
}

// Validate checks that required fields are present.
func (r *TripRequest) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(r.Type) == "" {
		fields["type"] = domain.MsgRequired
	}
	requireDimensions(fields, r.DistanceKm, r.DurationHours)

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// ToDomain converts the request to a trip.Request. Call Validate first.
func (r *TripRequest) ToDomain() trip.Request {
	return trip.Request{
		Type:          r.Type,
		DistanceKm:    deref(r.DistanceKm),
		DurationHours: deref(r.DurationHours),
	}
}

// QuoteRequest represents the JSON body for quoting a trip under every
// strategy.
type QuoteRequest struct {
	DistanceKm    *float64 `json:"distance_km"`
	DurationHours *float64 `json:"duration_hours"`
}

// Validate checks that required fields are present.
func (r *QuoteRequest) Validate() error {
	fields := make(map[string]string)
	requireDimensions(fields, r.DistanceKm, r.DurationHours)

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// TextRequest represents the JSON body for text generation.
type TextRequest struct {
	Model  string `json:"model,omitempty"`
	Prompt string `json:"prompt"`
}

// Validate checks that the prompt is present.
func (r *TextRequest) Validate() error {
	if strings.TrimSpace(r.Prompt) == "" {
		return domain.NewFieldError("prompt", domain.MsgRequired)
	}
	return nil
}

// ToDomain converts the request to a content.Request.
func (r *TextRequest) ToDomain() content.Request {
	return content.Request{Model: r.Model, Input: r.Prompt}
}

// ImageRequest represents the JSON body for image generation.
type ImageRequest struct {
	Model       string `json:"model,omitempty"`
	Description string `json:"description"`
}

// Validate checks that the description is present.
func (r *ImageRequest) Validate() error {
	if strings.TrimSpace(r.Description) == "" {
		return domain.NewFieldError("description", domain.MsgRequired)
	}
	return nil
}

// ToDomain converts the request to a content.Request.
func (r *ImageRequest) ToDomain() content.Request {
	return content.Request{Model: r.Model, Input: r.Description}
}

func requireDimensions(fields map[string]string, distanceKm, durationHours *float64) {
	if distanceKm == nil {
		fields["distance_km"] = domain.MsgRequired
	}
	if durationHours == nil {
		fields["duration_hours"] = domain.MsgRequired
	}
}

func deref(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
