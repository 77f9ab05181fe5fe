// Package main is the entry point for the dispatch service. It wires all
// dependencies using samber/do v2, starts the HTTP server, and handles
// graceful shutdown on SIGINT/SIGTERM.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samber/do/v2"

	adapthttp "github.com/jsamuelsen11/fleet-dispatch/internal/adapters/http"
	"github.com/jsamuelsen11/fleet-dispatch/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/fleet-dispatch/internal/adapters/http/middleware"

	"github.com/jsamuelsen11/fleet-dispatch/internal/app"
	"github.com/jsamuelsen11/fleet-dispatch/internal/domain/content"
	"github.com/jsamuelsen11/fleet-dispatch/internal/domain/maintenance"
	"github.com/jsamuelsen11/fleet-dispatch/internal/domain/trip"
	"github.com/jsamuelsen11/fleet-dispatch/internal/platform/config"
	"github.com/jsamuelsen11/fleet-dispatch/internal/platform/discovery"
	"github.com/jsamuelsen11/fleet-dispatch/internal/platform/health"
	"github.com/jsamuelsen11/fleet-dispatch/internal/platform/logging"
	"github.com/jsamuelsen11/fleet-dispatch/internal/platform/registry"
	"github.com/jsamuelsen11/fleet-dispatch/internal/platform/telemetry"
	"github.com/jsamuelsen11/fleet-dispatch/internal/ports"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

const (
	serverShutdownTimeout = 15 * time.Second
	otelShutdownTimeout   = 5 * time.Second
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	profile := os.Getenv(config.ProfileEnv)
	if profile == "" {
		return fmt.Errorf("%s environment variable is required (e.g. local, dev, qa, prod)", config.ProfileEnv)
	}

	// Bootstrap: config, logger, telemetry.
	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)

	ctx := context.Background()
	otel, err := initTelemetry(ctx, cfg)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	// DI container.
	injector := do.New()

	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, otel.metrics)

	registerDispatch(injector, cfg, logger)
	registerDependencies(injector, cfg, logger)

	// Resolve the server (eagerly wires the full graph).
	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("resolving server: %w", err)
	}

	// Register health checkers after the graph is wired.
	checkers := dispatchCheckers(injector)
	healthRegistry := do.MustInvoke[ports.HealthRegistry](injector)
	for _, c := range checkers {
		healthRegistry.Register(c)
	}

	if cfg.Dispatch.EagerBootstrap {
		if err := bootstrapAll(injector); err != nil {
			return fmt.Errorf("bootstrapping registries: %w", err)
		}
		logger.Info("registries bootstrapped eagerly")
	}

	// Start server in background.
	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.Start()
	}()

	// Wait for shutdown signal or server error.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		logger.Info("received shutdown signal", slog.String("signal", sig.String()))
	case err := <-serverErr:
		return fmt.Errorf("server failed: %w", err)
	}

	// Graceful shutdown: drain HTTP requests.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), serverShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	}

	// Wait for Start() goroutine to return.
	<-serverErr

	// Flush telemetry.
	otelCtx, otelCancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
	defer otelCancel()

	if err := otel.Shutdown(otelCtx); err != nil {
		logger.Error("telemetry shutdown error", slog.Any("error", err))
	}

	logger.Info("shutdown complete")
	return nil
}

// otelProviders bundles OpenTelemetry provider lifecycle. All fields are nil
// when telemetry is disabled.
type otelProviders struct {
	tracer  *sdktrace.TracerProvider
	meter   *sdkmetric.MeterProvider
	metrics *telemetry.Metrics
}

// Shutdown flushes both providers. Nil-safe.
func (o *otelProviders) Shutdown(ctx context.Context) error {
	var errs []error
	if o.tracer != nil {
		if err := o.tracer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("tracer shutdown: %w", err))
		}
	}
	if o.meter != nil {
		if err := o.meter.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("meter shutdown: %w", err))
		}
	}
	return errors.Join(errs...)
}

func initTelemetry(ctx context.Context, cfg *config.Config) (*otelProviders, error) {
	if !cfg.Telemetry.Enabled {
		return &otelProviders{}, nil
	}

	tp, err := telemetry.InitTracer(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		return nil, fmt.Errorf("init tracer: %w", err)
	}

	mp, err := telemetry.InitMeter(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		_ = tp.Shutdown(ctx)
		return nil, fmt.Errorf("init meter: %w", err)
	}

	metrics, err := telemetry.NewMetrics(mp, cfg.Telemetry.ServiceName)
	if err != nil {
		_ = tp.Shutdown(ctx)
		_ = mp.Shutdown(ctx)
		return nil, fmt.Errorf("creating metrics: %w", err)
	}

	return &otelProviders{
		tracer:  tp,
		meter:   mp,
		metrics: metrics,
	}, nil
}

// registerDispatch provides the registries and the trip strategy scanner.
// The maintenance registry resolves its factories through the injector.
func registerDispatch(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	do.Provide(injector, func(i do.Injector) (*registry.Registry[maintenance.RequestFactory], error) {
		return maintenance.NewRegistry(
			registry.WithInjector(i),
			registry.WithLogger(logger),
		), nil
	})

	do.Provide(injector, func(_ do.Injector) (*discovery.Scanner[trip.Strategy], error) {
		scanner := trip.NewScanner(discovery.WithLogger(logger))
		if root := cfg.Dispatch.TripStrategyRoot; root != "" {
			if _, err := scanner.ScanDir(root); err != nil {
				return nil, fmt.Errorf("scanning trip strategies: %w", err)
			}
		}
		return scanner, nil
	})

	do.Provide(injector, func(i do.Injector) (*registry.Registry[trip.Strategy], error) {
		scanner := do.MustInvoke[*discovery.Scanner[trip.Strategy]](i)
		return trip.NewRegistry(scanner, registry.WithLogger(logger)), nil
	})

	do.Provide(injector, func(_ do.Injector) (*registry.Registry[content.ModelFactory], error) {
		return content.NewRegistry(registry.WithLogger(logger)), nil
	})
}

// dispatchCheckers returns the readiness checks of the dispatch layer.
func dispatchCheckers(i do.Injector) []ports.HealthChecker {
	return []ports.HealthChecker{
		do.MustInvoke[*registry.Registry[maintenance.RequestFactory]](i),
		do.MustInvoke[*discovery.Scanner[trip.Strategy]](i),
		do.MustInvoke[*registry.Registry[trip.Strategy]](i),
		do.MustInvoke[*registry.Registry[content.ModelFactory]](i),
	}
}

// bootstrapAll bootstraps every registry.
func bootstrapAll(i do.Injector) error {
	return errors.Join(
		do.MustInvoke[*registry.Registry[maintenance.RequestFactory]](i).Bootstrap(),
		do.MustInvoke[*registry.Registry[trip.Strategy]](i).Bootstrap(),
		do.MustInvoke[*registry.Registry[content.ModelFactory]](i).Bootstrap(),
	)
}

func registerDependencies(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	do.Provide(injector, func(i do.Injector) (ports.MaintenanceService, error) {
		reg := do.MustInvoke[*registry.Registry[maintenance.RequestFactory]](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return app.NewMaintenanceService(reg, metrics, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.TripService, error) {
		reg := do.MustInvoke[*registry.Registry[trip.Strategy]](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return app.NewTripService(reg, cfg.Dispatch.QuoteWorkers, metrics, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.ContentService, error) {
		reg := do.MustInvoke[*registry.Registry[content.ModelFactory]](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return app.NewContentService(reg, metrics, logger), nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.HealthRegistry, error) {
		return health.New(), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.MaintenanceHandler, error) {
		svc := do.MustInvoke[ports.MaintenanceService](i)
		return handlers.NewMaintenanceHandler(svc), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.TripHandler, error) {
		svc := do.MustInvoke[ports.TripService](i)
		return handlers.NewTripHandler(svc), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.ContentHandler, error) {
		svc := do.MustInvoke[ports.ContentService](i)
		return handlers.NewContentHandler(svc), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.HealthHandler, error) {
		healthRegistry := do.MustInvoke[ports.HealthRegistry](i)
		return handlers.NewHealthHandler(healthRegistry), nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		maintH := do.MustInvoke[*handlers.MaintenanceHandler](i)
		tripH := do.MustInvoke[*handlers.TripHandler](i)
		contentH := do.MustInvoke[*handlers.ContentHandler](i)
		healthH := do.MustInvoke[*handlers.HealthHandler](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		return adapthttp.NewRouter(maintH, tripH, contentH, healthH,
			middleware.Recovery(logger),
			middleware.RequestID(),
			middleware.CorrelationID(),
			middleware.OpenTelemetry(metrics),
			middleware.Logging(logger),
			middleware.Timeout(cfg.Server.RequestTimeout),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler := do.MustInvoke[nethttp.Handler](i)
		return adapthttp.NewServer(cfg.Server, handler, logger), nil
	})
}
