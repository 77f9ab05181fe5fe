package config

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"
)

var (
	logLevels  = []string{"debug", "info", "warn", "error"}
	logFormats = []string{"json", "text"}
	exporters  = []string{"stdout", "otlp"}
)

// Validate checks every section and joins all problems into one error.
func (c *Config) Validate() error {
	var v validator
	c.Server.validate(&v)
	c.Log.validate(&v)
	c.Dispatch.validate(&v)
	c.Telemetry.validate(&v)
	return errors.Join(v.errs...)
}

// validator collects problems keyed by the dotted config key.
type validator struct {
	errs []error
}

func (v *validator) failf(key, format string, args ...any) {
	v.errs = append(v.errs, fmt.Errorf("%s %s", key, fmt.Sprintf(format, args...)))
}

func (v *validator) oneOf(key, got string, allowed []string) {
	if !slices.Contains(allowed, got) {
		v.failf(key, "must be one of: %s; got %q", strings.Join(allowed, ", "), got)
	}
}

func (s *ServerConfig) validate(v *validator) {
	if s.Port < 1 || s.Port > 65535 {
		v.failf("server.port", "must be between 1 and 65535, got %d", s.Port)
	}
	if s.ReadTimeout <= 0 {
		v.failf("server.read_timeout", "must be positive")
	}
	if s.WriteTimeout <= 0 {
		v.failf("server.write_timeout", "must be positive")
	}
	switch {
	case s.RequestTimeout <= 0:
		v.failf("server.request_timeout", "must be positive")
	case s.WriteTimeout > 0 && s.RequestTimeout >= s.WriteTimeout:
		v.failf("server.request_timeout", "(%s) must be shorter than server.write_timeout (%s)",
			s.RequestTimeout, s.WriteTimeout)
	}
}

func (l *LogConfig) validate(v *validator) {
	v.oneOf("log.level", l.Level, logLevels)
	v.oneOf("log.format", l.Format, logFormats)
}

func (d *DispatchConfig) validate(v *validator) {
	if d.QuoteWorkers < 1 {
		v.failf("dispatch.quote_workers", "must be >= 1, got %d", d.QuoteWorkers)
	}
	if d.TripStrategyRoot == "" {
		return
	}
	info, err := os.Stat(d.TripStrategyRoot)
	switch {
	case err != nil:
		v.errs = append(v.errs, fmt.Errorf("dispatch.trip_strategy_root: %w", err))
	case !info.IsDir():
		v.failf("dispatch.trip_strategy_root", "must be a directory, got %q", d.TripStrategyRoot)
	}
}

func (t *TelemetryConfig) validate(v *validator) {
	if !t.Enabled {
		return
	}
	v.oneOf("telemetry.exporter", t.Exporter, exporters)
	if t.Exporter == "otlp" && t.Endpoint == "" {
		v.failf("telemetry.endpoint", "must not be empty when exporter is otlp")
	}
}
