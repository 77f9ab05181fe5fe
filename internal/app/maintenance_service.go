package app

import (
	"context"
	"log/slog"

	"github.com/jsamuelsen11/fleet-dispatch/internal/domain/maintenance"
	"github.com/jsamuelsen11/fleet-dispatch/internal/platform/telemetry"
	"github.com/jsamuelsen11/fleet-dispatch/internal/ports"
)

// Compile-time check that MaintenanceService implements ports.MaintenanceService.
var _ ports.MaintenanceService = (*MaintenanceService)(nil)

// MaintenanceService implements ports.MaintenanceService by dispatching each
// request to the factory registered for its issue type.
type MaintenanceService struct {
	dispatch *dispatcher[maintenance.RequestFactory]
	logger   *slog.Logger
}

// NewMaintenanceService creates a MaintenanceService over reg. metrics may
// be nil. A nil logger is replaced by a discarding one.
func NewMaintenanceService(
	reg Registry[maintenance.RequestFactory],
	metrics *telemetry.Metrics,
	logger *slog.Logger,
) *MaintenanceService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &MaintenanceService{
		dispatch: newDispatcher(reg, "maintenance", "issue_type", "maintenance handler", metrics),
		logger:   logger,
	}
}

// Submit validates req and hands it to the factory for its issue type.
func (s *MaintenanceService) Submit(ctx context.Context, req maintenance.Request) (*maintenance.Outcome, error) {
	s.logger.InfoContext(ctx, "submitting maintenance request",
		slog.Int64("vehicle_id", req.VehicleID),
		slog.String("issue_type", req.IssueType),
	)

	if err := req.Validate(); err != nil {
		return nil, err
	}

	factory, err := s.dispatch.resolve(ctx, req.IssueType)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to resolve maintenance factory",
			slog.String("operation", "Submit"),
			slog.String("issue_type", req.IssueType),
			slog.Any("error", err),
		)
		return nil, err
	}

	out := maintenance.HandleRequest(factory, req)
	return &out, nil
}

// Types returns the registered issue types.
func (s *MaintenanceService) Types(ctx context.Context) ([]string, error) {
	keys, err := s.dispatch.keys(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list maintenance types",
			slog.String("operation", "Types"),
			slog.Any("error", err),
		)
		return nil, err
	}
	return keys, nil
}
