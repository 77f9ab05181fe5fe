package registry

import (
	"context"
	"fmt"
	"log/slog"
	"reflect"
	"sort"
	"strings"
	"sync"

	"github.com/samber/do/v2"
)

// Registrar accepts registrations. Bootstrappers receive a Registrar rather
// than the Registry itself so that defaults can be staged and published in
// one step.
type Registrar interface {
	Register(key string, resolver Resolver) error
}

// Bootstrapper registers a domain's built-in entries.
type Bootstrapper func(reg Registrar) error

// Option configures a Registry.
type Option func(*options)

type options struct {
	bootstrap Bootstrapper
	injector  do.Injector
	logger    *slog.Logger
}

// WithBootstrapper sets the domain's default bootstrapper.
func WithBootstrapper(b Bootstrapper) Option {
	return func(o *options) {
		o.bootstrap = b
	}
}

// WithInjector sets the injector used to instantiate type references.
func WithInjector(i do.Injector) Option {
	return func(o *options) {
		o.injector = i
	}
}

// WithLogger sets the registry logger. Defaults to a discarding logger.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// Registry is a thread-safe keyed store of resolvers for capability C.
type Registry[C any] struct {
	domain     string
	capability reflect.Type
	opts       options

	mu      sync.RWMutex
	entries map[string]Resolver

	// bootMu serializes bootstrap runs; bootstrapped and bootErr are
	// guarded by mu.
	bootMu       sync.Mutex
	bootstrapped bool
	bootErr      error
}

// New creates an empty registry for the named domain.
func New[C any](domain string, opts ...Option) *Registry[C] {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = slog.New(slog.DiscardHandler)
	}
	o.logger = o.logger.With(slog.String("registry", domain))

	return &Registry[C]{
		domain:     domain,
		capability: reflect.TypeFor[C](),
		opts:       o,
		entries:    make(map[string]Resolver),
	}
}

// Domain returns the registry's domain name.
func (r *Registry[C]) Domain() string {
	return r.domain
}

// Register stores resolver under the trimmed, lowercased key, replacing any
// existing entry. Type references are checked against C immediately; factories are
// checked when resolved.
func (r *Registry[C]) Register(key string, resolver Resolver) error {
	key, err := r.validate(key, resolver)
	if err != nil {
		return err
	}

	r.mu.Lock()
	r.entries[key] = resolver
	r.mu.Unlock()

	r.opts.logger.Debug("resolver registered", slog.String("key", key))
	return nil
}

// Has reports whether key is currently registered. It does not bootstrap.
func (r *Registry[C]) Has(key string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.entries[normalize(key)]
	return ok
}

// Keys returns a sorted snapshot of the registered keys. It does not
// bootstrap.
func (r *Registry[C]) Keys() []string {
	r.mu.RLock()
	keys := make([]string, 0, len(r.entries))
	for k := range r.entries {
		keys = append(keys, k)
	}
	r.mu.RUnlock()

	sort.Strings(keys)
	return keys
}

// Get resolves key to an instance of C. If the key is absent and the
// registry has not been bootstrapped, the bootstrapper runs once and the
// lookup is retried.
func (r *Registry[C]) Get(key string) (C, error) {
	var zero C
	key = normalize(key)

	resolver, ok := r.lookup(key)
	if !ok && !r.isBootstrapped() {
		if err := r.Bootstrap(); err != nil {
			return zero, err
		}
		resolver, ok = r.lookup(key)
	}
	if !ok {
		return zero, fmt.Errorf("%w: %q in %s registry", ErrUnknownKey, key, r.domain)
	}

	return r.resolve(key, resolver)
}

// Bootstrap registers the domain defaults. The defaults are validated in a
// staging map and published in a single step; keys registered explicitly
// before bootstrap keep their resolver. Calling Bootstrap again after a
// successful run is a no-op. A failed run publishes nothing and may be
// retried.
func (r *Registry[C]) Bootstrap() error {
	r.bootMu.Lock()
	defer r.bootMu.Unlock()

	if r.isBootstrapped() {
		return nil
	}

	staged := &stage[C]{reg: r, entries: make(map[string]Resolver)}
	if r.opts.bootstrap != nil {
		if err := r.opts.bootstrap(staged); err != nil {
			r.opts.logger.Error("bootstrap failed",
				slog.String("operation", "Bootstrap"),
				slog.Any("error", err),
			)
			err = fmt.Errorf("%w: %s registry: %w", ErrBootstrap, r.domain, err)
			r.mu.Lock()
			r.bootErr = err
			r.mu.Unlock()
			return err
		}
	}

	r.mu.Lock()
	r.bootErr = nil
	for k, res := range staged.entries {
		if _, exists := r.entries[k]; !exists {
			r.entries[k] = res
		}
	}
	r.bootstrapped = true
	count := len(r.entries)
	r.mu.Unlock()

	r.opts.logger.Info("registry bootstrapped",
		slog.Int("defaults", len(staged.entries)),
		slog.Int("entries", count),
	)
	return nil
}

// Name implements ports.HealthChecker.
func (r *Registry[C]) Name() string {
	return r.domain + "-registry"
}

// HealthCheck implements ports.HealthChecker. It reports the error of the
// most recent failed bootstrap and never triggers one, so a lazily seeded
// registry stays lazy under readiness checks.
func (r *Registry[C]) HealthCheck(_ context.Context) error {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.bootErr
}

func (r *Registry[C]) lookup(key string) (Resolver, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	res, ok := r.entries[key]
	return res, ok
}

func (r *Registry[C]) isBootstrapped() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.bootstrapped
}

// validate normalizes key and checks resolver without touching entries.
func (r *Registry[C]) validate(key string, resolver Resolver) (string, error) {
	key = normalize(key)
	if key == "" {
		return "", fmt.Errorf("%w: key must not be empty", ErrInvalidKey)
	}

	switch res := resolver.(type) {
	case TypeRef:
		if res.IsZero() {
			return "", fmt.Errorf("%w: %q references no type", ErrInvalidResolver, key)
		}
		if !res.Implements(r.capability) {
			return "", fmt.Errorf("%w: %s does not implement %s", ErrInvalidResolver, res, r.capability)
		}
	case Factory:
		if res == nil {
			return "", fmt.Errorf("%w: %q has a nil factory", ErrInvalidResolver, key)
		}
	default:
		return "", fmt.Errorf("%w: %q must be a type reference or a factory", ErrInvalidResolver, key)
	}

	return key, nil
}

// resolve instantiates resolver and checks the result against C.
func (r *Registry[C]) resolve(key string, resolver Resolver) (C, error) {
	var zero C

	var (
		inst any
		err  error
	)
	switch res := resolver.(type) {
	case TypeRef:
		inst, err = res.New(r.opts.injector)
	case Factory:
		inst, err = res()
	}
	if err != nil {
		return zero, fmt.Errorf("%w: resolving %q: %w", ErrInvalidResolver, key, err)
	}

	c, ok := inst.(C)
	if !ok {
		return zero, fmt.Errorf("%w: %q resolved to %T, want %s", ErrInvalidResolver, key, inst, r.capability)
	}
	return c, nil
}

// stage collects bootstrap registrations for atomic publication.
type stage[C any] struct {
	reg     *Registry[C]
	entries map[string]Resolver
}

func (s *stage[C]) Register(key string, resolver Resolver) error {
	key, err := s.reg.validate(key, resolver)
	if err != nil {
		return err
	}
	s.entries[key] = resolver
	return nil
}

// normalize trims and lowercases key. Blank keys normalize to "".
func normalize(key string) string {
	return strings.ToLower(strings.TrimSpace(key))
}
