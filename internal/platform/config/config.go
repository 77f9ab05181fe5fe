// Package config provides configuration loading and validation for the service.
// Configuration is loaded from YAML files with environment variable overrides
// using a layered system: defaults -> base.yaml -> {profile}.yaml -> env vars.
package config

import "time"

// Config holds all configuration for the service.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Log       LogConfig       `koanf:"log"`
	Dispatch  DispatchConfig  `koanf:"dispatch"`
	Telemetry TelemetryConfig `koanf:"telemetry"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host         string        `koanf:"host"`
	Port         int           `koanf:"port"`
	ReadTimeout  time.Duration `koanf:"read_timeout"`
	WriteTimeout time.Duration `koanf:"write_timeout"`
	IdleTimeout  time.Duration `koanf:"idle_timeout"`

	// RequestTimeout bounds a handler; it must be shorter than WriteTimeout
	// so the 504 problem response can still be written.
	RequestTimeout time.Duration `koanf:"request_timeout"`
}

// LogConfig holds structured logging settings.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// DispatchConfig holds registry and discovery settings.
type DispatchConfig struct {
	// EagerBootstrap bootstraps every registry at startup instead of on
	// first use, so a broken built-in set fails the process early.
	EagerBootstrap bool `koanf:"eager_bootstrap"`

	// TripStrategyRoot is a directory of Go sources scanned for trip
	// strategies. Empty scans the sources compiled into the binary.
	TripStrategyRoot string `koanf:"trip_strategy_root"`

	// QuoteWorkers bounds how many strategies price a quote concurrently.
	QuoteWorkers int `koanf:"quote_workers"`
}

// TelemetryConfig holds OpenTelemetry settings.
type TelemetryConfig struct {
	Enabled     bool   `koanf:"enabled"`
	Exporter    string `koanf:"exporter"`
	Endpoint    string `koanf:"endpoint"`
	ServiceName string `koanf:"service_name"`
}
