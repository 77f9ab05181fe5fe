package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jsamuelsen11/fleet-dispatch/internal/app/fanout"
	"github.com/jsamuelsen11/fleet-dispatch/internal/domain/trip"
	"github.com/jsamuelsen11/fleet-dispatch/internal/platform/telemetry"
	"github.com/jsamuelsen11/fleet-dispatch/internal/ports"
)

// Compile-time check that TripService implements ports.TripService.
var _ ports.TripService = (*TripService)(nil)

// DefaultQuoteWorkers bounds concurrent pricing in Quote when no worker
// count is configured.
const DefaultQuoteWorkers = 4

// TripService implements ports.TripService over a registry of discovered
// strategies.
type TripService struct {
	dispatch *dispatcher[trip.Strategy]
	workers  int
	logger   *slog.Logger
}

// NewTripService creates a TripService over reg. workers bounds Quote's
// concurrency; values below 1 select DefaultQuoteWorkers. metrics may be nil.
func NewTripService(
	reg Registry[trip.Strategy],
	workers int,
	metrics *telemetry.Metrics,
	logger *slog.Logger,
) *TripService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if workers < 1 {
		workers = DefaultQuoteWorkers
	}
	return &TripService{
		dispatch: newDispatcher(reg, "trip", "type", "strategy", metrics),
		workers:  workers,
		logger:   logger,
	}
}

// Calculate prices a trip with the strategy for req.Type.
func (s *TripService) Calculate(ctx context.Context, req trip.Request) (*trip.Cost, error) {
	s.logger.InfoContext(ctx, "calculating trip cost",
		slog.String("type", req.Type),
		slog.Float64("distance_km", req.DistanceKm),
		slog.Float64("duration_hours", req.DurationHours),
	)

	if err := req.Validate(); err != nil {
		return nil, err
	}

	cost, err := s.price(ctx, req.Type, req.DistanceKm, req.DurationHours)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to calculate trip cost",
			slog.String("operation", "Calculate"),
			slog.String("type", req.Type),
			slog.Any("error", err),
		)
		return nil, err
	}
	return &cost, nil
}

// Quote prices the trip with every known strategy concurrently.
func (s *TripService) Quote(ctx context.Context, distanceKm, durationHours float64) ([]ports.Quote, error) {
	s.logger.InfoContext(ctx, "quoting trip",
		slog.Float64("distance_km", distanceKm),
		slog.Float64("duration_hours", durationHours),
	)

	if err := trip.ValidateDimensions(distanceKm, durationHours); err != nil {
		return nil, err
	}

	types, err := s.Types(ctx)
	if err != nil {
		return nil, err
	}

	results := fanout.Run(ctx, s.workers, types, func(ctx context.Context, key string) (ports.Quote, error) {
		cost, err := s.price(ctx, key, distanceKm, durationHours)
		if err != nil {
			return ports.Quote{}, fmt.Errorf("quoting %s: %w", key, err)
		}
		return ports.Quote{Type: key, Cost: cost}, nil
	})

	quotes := make([]ports.Quote, 0, len(results))
	var errs []error
	for _, r := range results {
		if r.Err != nil {
			errs = append(errs, r.Err)
			continue
		}
		quotes = append(quotes, r.Value)
	}
	if err := errors.Join(errs...); err != nil {
		s.logger.ErrorContext(ctx, "failed to quote trip",
			slog.String("operation", "Quote"),
			slog.Int("failed", len(errs)),
			slog.Any("error", err),
		)
		return nil, err
	}
	return quotes, nil
}

// Types returns the known trip types.
func (s *TripService) Types(ctx context.Context) ([]string, error) {
	keys, err := s.dispatch.keys(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list trip types",
			slog.String("operation", "Types"),
			slog.Any("error", err),
		)
		return nil, err
	}
	return keys, nil
}

func (s *TripService) price(ctx context.Context, key string, distanceKm, durationHours float64) (trip.Cost, error) {
	strategy, err := s.dispatch.resolve(ctx, key)
	if err != nil {
		return trip.Cost{}, err
	}
	calc, err := trip.NewCalculator(strategy)
	if err != nil {
		return trip.Cost{}, err
	}
	return calc.Calculate(distanceKm, durationHours), nil
}
