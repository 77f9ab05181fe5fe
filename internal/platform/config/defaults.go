package config

const (
	defaultServerPort = 8080

	defaultQuoteWorkers = 4
)

// defaults returns the default configuration values.
// These are loaded first and can be overridden by base.yaml, profile YAML, and env vars.
func defaults() map[string]any {
	return map[string]any{
		"server.host":          "0.0.0.0",
		"server.port":          defaultServerPort,
		"server.read_timeout":  "5s",
		"server.write_timeout": "10s",
		"server.idle_timeout":  "120s",

		"server.request_timeout": "8s",

		"log.level":  "info",
		"log.format": "json",

		"dispatch.eager_bootstrap":    false,
		"dispatch.trip_strategy_root": "",
		"dispatch.quote_workers":      defaultQuoteWorkers,

		"telemetry.enabled":      false,
		"telemetry.exporter":     "stdout",
		"telemetry.endpoint":     "",
		"telemetry.service_name": "fleet-dispatch",
	}
}
