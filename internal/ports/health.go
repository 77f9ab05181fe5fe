package ports

import "context"

// HealthChecker is a component readiness depends on, such as a dispatch
// registry ("trip-registry") or a discovery scanner ("trip-discovery").
type HealthChecker interface {
	Name() string

	// HealthCheck returns nil when the component can serve dispatches.
	HealthCheck(ctx context.Context) error
}

// HealthRegistry collects the checkers behind /health/ready.
type HealthRegistry interface {
	Register(checker HealthChecker)

	// CheckAll returns each checker's result keyed by name.
	CheckAll(ctx context.Context) map[string]error
}
