// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and the dispatch registries.
package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen11/fleet-dispatch/internal/domain"
	"github.com/jsamuelsen11/fleet-dispatch/internal/platform/logging"
	"github.com/jsamuelsen11/fleet-dispatch/internal/platform/registry"
	"github.com/jsamuelsen11/fleet-dispatch/internal/platform/telemetry"
)

const tracerName = "github.com/jsamuelsen11/fleet-dispatch/internal/app"

// Registry is the part of registry.Registry the services depend on.
type Registry[C any] interface {
	Get(key string) (C, error)
	Keys() []string
	Bootstrap() error
}

// dispatcher resolves keys against one registry and records each
// resolution as a span and a metric, and on the request's logging.Dispatch
// when there is one.
type dispatcher[C any] struct {
	registry Registry[C]
	domain   string
	field    string
	noun     string
	tracer   trace.Tracer
	metrics  *telemetry.Metrics
}

func newDispatcher[C any](reg Registry[C], domainName, field, noun string, metrics *telemetry.Metrics) *dispatcher[C] {
	return &dispatcher[C]{
		registry: reg,
		domain:   domainName,
		field:    field,
		noun:     noun,
		tracer:   otel.Tracer(tracerName),
		metrics:  metrics,
	}
}

// resolve returns the capability registered under key. An unknown key is
// reported as a validation error on the request field that named it; a
// registry whose bootstrap failed is reported as domain.ErrUnavailable.
func (d *dispatcher[C]) resolve(ctx context.Context, key string) (C, error) {
	ctx, span := d.tracer.Start(ctx, "dispatch.resolve", trace.WithAttributes(
		telemetry.AttrDomain.String(d.domain),
		telemetry.AttrKey.String(key),
	))
	defer span.End()

	start := time.Now()
	c, err := d.registry.Get(key)
	logging.DispatchFromContext(ctx).Record(d.domain, key, err)
	result := resultOf(err)
	d.metrics.RecordDispatch(ctx, d.domain, result, time.Since(start))
	span.SetAttributes(telemetry.AttrResult.String(result))

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, result)

		var zero C
		switch {
		case errors.Is(err, registry.ErrUnknownKey):
			return zero, domain.NewFieldError(d.field, fmt.Sprintf("no %s registered for %q", d.noun, key))
		case errors.Is(err, registry.ErrBootstrap):
			return zero, fmt.Errorf("%w: resolving %s %q: %w", domain.ErrUnavailable, d.domain, key, err)
		}
		return zero, fmt.Errorf("resolving %s %q: %w", d.domain, key, err)
	}
	return c, nil
}

// keys bootstraps the registry and returns its keys. A failed bootstrap is
// reported as domain.ErrUnavailable.
func (d *dispatcher[C]) keys(ctx context.Context) ([]string, error) {
	_, span := d.tracer.Start(ctx, "dispatch.keys", trace.WithAttributes(
		telemetry.AttrDomain.String(d.domain),
	))
	defer span.End()

	err := d.registry.Bootstrap()
	logging.DispatchFromContext(ctx).Record(d.domain, "", err)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "bootstrap failed")
		return nil, fmt.Errorf("%w: bootstrapping %s registry: %w", domain.ErrUnavailable, d.domain, err)
	}
	return d.registry.Keys(), nil
}


func resultOf(err error) string {
	switch {
	case err == nil:
		return telemetry.ResultResolved
	case errors.Is(err, registry.ErrUnknownKey):
		return telemetry.ResultUnknown
	case errors.Is(err, registry.ErrInvalidResolver):
		return telemetry.ResultInvalid
	case errors.Is(err, registry.ErrBootstrap):
		return telemetry.ResultUnavailable
	default:
		return telemetry.ResultError
	}
}
