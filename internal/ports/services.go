package ports

import (
	"context"

	"github.com/jsamuelsen11/fleet-dispatch/internal/domain/content"
	"github.com/jsamuelsen11/fleet-dispatch/internal/domain/maintenance"
	"github.com/jsamuelsen11/fleet-dispatch/internal/domain/trip"
)

// MaintenanceService defines the service port for maintenance requests.
// Implemented by the application layer; called by inbound adapters (handlers).
type MaintenanceService interface {
	// Submit validates req and hands it to the factory registered for its
	// issue type.
	// Returns domain.ErrValidation if the request is malformed or no
	// factory is registered for the issue type.
	Submit(ctx context.Context, req maintenance.Request) (*maintenance.Outcome, error)

	// Types returns the registered issue types in sorted order,
	// bootstrapping the built-ins first.
	Types(ctx context.Context) ([]string, error)
}

// TripService defines the service port for trip pricing.
type TripService interface {
	// Calculate prices a trip with the strategy discovered for req.Type.
	// Returns domain.ErrValidation if the request is malformed or no
	// strategy exists for the type.
	Calculate(ctx context.Context, req trip.Request) (*trip.Cost, error)

	// Quote prices the same trip with every known strategy. Quotes are
	// ordered by trip type.
	Quote(ctx context.Context, distanceKm, durationHours float64) ([]Quote, error)

	// Types returns the known trip types in sorted order.
	Types(ctx context.Context) ([]string, error)
}

// Quote is the price of a trip under one strategy.
type Quote struct {
	Type string
	Cost trip.Cost
}

// ContentService defines the service port for content generation.
type ContentService interface {
	// GenerateText generates text from req.Input with req.Model, or the
	// default model when none is named.
	// Returns domain.ErrValidation if the input is empty or the model is
	// not supported.
	GenerateText(ctx context.Context, req content.Request) (*Generation, error)

	// GenerateImage generates an image link from req.Input.
	GenerateImage(ctx context.Context, req content.Request) (*Generation, error)
}

// Generation is generated content together with the model that produced it.
type Generation struct {
	Model  string
	Result string
}
