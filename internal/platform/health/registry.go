// Package health runs the readiness checks of the dispatch service: one per
// dispatch registry and discovery scanner, plus any upstream the service
// depends on.
package health

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/jsamuelsen11/fleet-dispatch/internal/ports"
)

var _ ports.HealthRegistry = (*Registry)(nil)

// DefaultCheckTimeout bounds a single check unless WithCheckTimeout says
// otherwise.
const DefaultCheckTimeout = 2 * time.Second

// ErrCheckTimeout reports a check that did not return within its timeout.
var ErrCheckTimeout = errors.New("health check timed out")

// Option configures a Registry.
type Option func(*Registry)

// WithCheckTimeout sets the per-check timeout. Non-positive values are
// ignored.
func WithCheckTimeout(d time.Duration) Option {
	return func(r *Registry) {
		if d > 0 {
			r.timeout = d
		}
	}
}

// Registry holds the checkers consulted by /health/ready. Checks run
// concurrently, each under its own timeout, so one hung checker cannot stall
// readiness.
type Registry struct {
	timeout time.Duration

	mu       sync.RWMutex
	checkers map[string]ports.HealthChecker
}

// New returns an empty registry.
func New(opts ...Option) *Registry {
	r := &Registry{
		timeout:  DefaultCheckTimeout,
		checkers: make(map[string]ports.HealthChecker),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register adds checker under its Name, replacing a checker registered
// under the same name.
func (r *Registry) Register(checker ports.HealthChecker) {
	name := checker.Name()

	r.mu.Lock()
	defer r.mu.Unlock()
	r.checkers[name] = checker
}

// CheckAll runs every check and returns the results keyed by checker name;
// nil means healthy.
func (r *Registry) CheckAll(ctx context.Context) map[string]error {
	r.mu.RLock()
	checkers := make(map[string]ports.HealthChecker, len(r.checkers))
	for name, c := range r.checkers {
		checkers[name] = c
	}
	r.mu.RUnlock()

	var (
		mu      sync.Mutex
		wg      sync.WaitGroup
		results = make(map[string]error, len(checkers))
	)
	for name, c := range checkers {
		wg.Go(func() {
			err := r.check(ctx, c)
			mu.Lock()
			results[name] = err
			mu.Unlock()
		})
	}
	wg.Wait()
	return results
}

// check runs one checker, turning a panic or an overrun into an error. A
// checker that ignores its context keeps running after the timeout; its
// result is dropped.
func (r *Registry) check(ctx context.Context, c ports.HealthChecker) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		defer func() {
			if v := recover(); v != nil {
				done <- fmt.Errorf("health check panicked: %v", v)
			}
		}()
		done <- c.HealthCheck(ctx)
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return fmt.Errorf("%w after %s: %w", ErrCheckTimeout, r.timeout, ctx.Err())
	}
}
