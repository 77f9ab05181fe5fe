package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/fleet-dispatch/internal/app"
	"github.com/jsamuelsen11/fleet-dispatch/internal/domain/content"
	"github.com/jsamuelsen11/fleet-dispatch/internal/domain/maintenance"
	"github.com/jsamuelsen11/fleet-dispatch/internal/domain/trip"
	"github.com/jsamuelsen11/fleet-dispatch/internal/platform/discovery"
	"github.com/jsamuelsen11/fleet-dispatch/internal/platform/logging"
	"github.com/jsamuelsen11/fleet-dispatch/internal/platform/registry"
)

// rootOptions holds the persistent flags shared by every subcommand.
type rootOptions struct {
	logLevel     string
	jsonOutput   bool
	strategyRoot string
	workers      int
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "fleetctl",
		Short: "Inspect fleet dispatch registries",
		Long: `fleetctl inspects the fleet dispatch registries.

It discovers trip strategies from Go sources, lists the keys each registry
dispatches on and prices trips with the discovered strategies.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	flags.BoolVar(&opts.jsonOutput, "json", false, "write JSON instead of a table")
	flags.StringVar(&opts.strategyRoot, "strategies", "",
		"directory of trip strategy sources (default: sources compiled into fleetctl)")
	flags.IntVar(&opts.workers, "workers", app.DefaultQuoteWorkers, "concurrent strategies when quoting")

	cmd.AddCommand(
		newScanCmd(opts),
		newTypesCmd(opts),
		newQuoteCmd(opts),
	)
	return cmd
}

// logger returns a text logger on the command's error stream.
func (o *rootOptions) logger(cmd *cobra.Command) *slog.Logger {
	return logging.New(o.logLevel, "text", cmd.ErrOrStderr())
}

// scanner returns a trip scanner, scanning the configured root when one is
// set.
func (o *rootOptions) scanner(logger *slog.Logger) (*discovery.Scanner[trip.Strategy], error) {
	s := trip.NewScanner(discovery.WithLogger(logger))
	if o.strategyRoot == "" {
		return s, nil
	}
	if _, err := s.ScanDir(o.strategyRoot); err != nil {
		return nil, err
	}
	return s, nil
}

// tripService builds a trip service over a freshly scanned registry.
func (o *rootOptions) tripService(logger *slog.Logger) (*app.TripService, error) {
	s, err := o.scanner(logger)
	if err != nil {
		return nil, err
	}
	reg := trip.NewRegistry(s, registry.WithLogger(logger))
	return app.NewTripService(reg, o.workers, nil, logger), nil
}

// registries returns the keys of every built-in registry by domain.
func (o *rootOptions) registries(ctx context.Context, logger *slog.Logger) (map[string][]string, error) {
	svc, err := o.tripService(logger)
	if err != nil {
		return nil, err
	}

	out := make(map[string][]string, 3)

	out["trip"], err = svc.Types(ctx)
	if err != nil {
		return nil, err
	}

	maint := maintenance.NewRegistry(registry.WithLogger(logger))
	if err := maint.Bootstrap(); err != nil {
		return nil, err
	}
	out["maintenance"] = maint.Keys()

	models := content.NewRegistry(registry.WithLogger(logger))
	if err := models.Bootstrap(); err != nil {
		return nil, err
	}
	out["content"] = models.Keys()

	return out, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding output: %w", err)
	}
	return nil
}
