// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"slices"
	"strings"

	"github.com/jsamuelsen11/fleet-dispatch/internal/domain/maintenance"
	"github.com/jsamuelsen11/fleet-dispatch/internal/domain/trip"
	"github.com/jsamuelsen11/fleet-dispatch/internal/ports"
)

// TripCostMessage is the message of a successful trip pricing response.
const TripCostMessage = "Trip cost calculated successfully"

// MaintenanceResponse represents a handled maintenance request. Priority,
// inventory_checked and estimated_time appear only for the issue types that
// set them.
type MaintenanceResponse struct {
	Success          bool   `json:"success"`
	RequestID        string `json:"request_id"`
	VehicleID        int64  `json:"vehicle_id"`
	IssueType        string `json:"issue_type"`
	Status           string `json:"status"`
	Message          string `json:"message"`
	AssignedTo       string `json:"assigned_to"`
	Priority         string `json:"priority,omitempty"`
	InventoryChecked *bool  `json:"inventory_checked,omitempty"`
	EstimatedTime    string `json:"estimated_time,omitempty"`
}

// Health statuses.
const (
	StatusOK       = "ok"
	StatusFailed   = "failed"
	StatusReady    = "ready"
	StatusNotReady = "not_ready"
)

// CheckResult is the outcome of one readiness check, typically a dispatch
// registry named "<domain>-registry".
type CheckResult struct {
	Name   string `json:"name"`
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// ReadinessResponse reports every readiness check sorted by name.
type ReadinessResponse struct {
	Status string        `json:"status"`
	Checks []CheckResult `json:"checks"`
}

// TripCostData is a priced trip.
type TripCostData struct {
	TotalCost float64            `json:"total_cost"`
	Details   map[string]float64 `json:"details"`
}

// TripCostResponse wraps a priced trip with a message.
type TripCostResponse struct {
	Message string       `json:"message"`
	Data    TripCostData `json:"data"`
}

// QuoteResponse is the price of a trip under one strategy.
type QuoteResponse struct {
	Type string `json:"type"`
	TripCostData
}

// QuoteListResponse wraps quotes with a count.
type QuoteListResponse struct {
	Quotes []QuoteResponse `json:"quotes"`
	Count  int             `json:"count"`
}

// TypesResponse lists the keys of a registry.
type TypesResponse struct {
	Types []string `json:"types"`
	Count int      `json:"count"`
}

// TextResponse is generated text.
type TextResponse struct {
	Model  string `json:"model"`
	Result string `json:"result"`
}

// ImageResponse is a generated image link.
type ImageResponse struct {
	Model    string `json:"model"`
	ImageURL string `json:"image_url"`
}

// ToMaintenanceResponse converts a maintenance outcome to its response.
func ToMaintenanceResponse(o *maintenance.Outcome) MaintenanceResponse {
	return MaintenanceResponse{
		Success:          o.Success,
		RequestID:        o.RequestID,
		VehicleID:        o.VehicleID,
		IssueType:        o.IssueType,
		Status:           o.Status.String(),
		Message:          o.Message,
		AssignedTo:       o.AssignedTo,
		Priority:         o.Priority.String(),
		InventoryChecked: o.InventoryChecked,
		EstimatedTime:    o.EstimatedTime,
	}
}

// ToTripCostResponse converts a trip cost to its response.
func ToTripCostResponse(c *trip.Cost) TripCostResponse {
	return TripCostResponse{
		Message: TripCostMessage,
		Data:    toTripCostData(*c),
	}
}

// ToQuoteListResponse converts quotes to a list response.
func ToQuoteListResponse(quotes []ports.Quote) QuoteListResponse {
	items := make([]QuoteResponse, len(quotes))
	for i, q := range quotes {
		items[i] = QuoteResponse{Type: q.Type, TripCostData: toTripCostData(q.Cost)}
	}
	return QuoteListResponse{Quotes: items, Count: len(items)}
}

// ToTypesResponse converts registry keys to a list response.
func ToTypesResponse(types []string) TypesResponse {
	if types == nil {
		types = []string{}
	}
	return TypesResponse{Types: types, Count: len(types)}
}

// ToTextResponse converts a text generation to its response.
func ToTextResponse(g *ports.Generation) TextResponse {
	return TextResponse{Model: g.Model, Result: g.Result}
}

// ToImageResponse converts an image generation to its response.
func ToImageResponse(g *ports.Generation) ImageResponse {
	return ImageResponse{Model: g.Model, ImageURL: g.Result}
}

func toTripCostData(c trip.Cost) TripCostData {
	details := c.Details
	if details == nil {
		details = map[string]float64{}
	}
	return TripCostData{TotalCost: c.Total, Details: details}
}

// ToReadinessResponse converts health check results keyed by checker name.
func ToReadinessResponse(results map[string]error) ReadinessResponse {
	resp := ReadinessResponse{Status: StatusReady, Checks: make([]CheckResult, 0, len(results))}
	for name, err := range results {
		check := CheckResult{Name: name, Status: StatusOK}
		if err != nil {
			check.Status = StatusFailed
			check.Error = err.Error()
			resp.Status = StatusNotReady
		}
		resp.Checks = append(resp.Checks, check)
	}
	slices.SortFunc(resp.Checks, func(a, b CheckResult) int {
		return strings.Compare(a.Name, b.Name)
	})
	return resp
}
