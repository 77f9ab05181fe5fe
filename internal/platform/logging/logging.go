// Package logging builds the service's slog loggers and carries them, along
// with a per-request dispatch record, through context.
//
//	logger := logging.New("info", "json", os.Stderr)
//	ctx = logging.WithLogger(ctx, logger)
//	logging.FromContext(ctx).InfoContext(ctx, "trip priced", slog.String("type", "local"))
//
// Application services log failures with the operation, the dispatch key and
// the full error chain:
//
//	logger.ErrorContext(ctx, "failed to resolve trip strategy",
//	    slog.String("operation", "Calculate"),
//	    slog.String("type", req.Type),
//	    slog.Any("error", err),
//	)
//
// Under the HTTP logging middleware the context also carries request_id and
// correlation_id, and the registry lookups made by the request are reported
// once the response is written (see Dispatch).
package logging

import (
	"context"
	"io"
	"log/slog"
)

type loggerKey struct{}

// New returns a logger writing to w.
//
// level is one of debug, info, warn or error, case-insensitive; anything
// else selects info. format "text" selects the text handler and any other
// value JSON. Debug loggers report source locations. Every handler redacts
// credentials (see SensitiveHeaders).
func New(level, format string, w io.Writer) *slog.Logger {
	lvl := parseLevel(level)
	opts := &slog.HandlerOptions{
		Level:       lvl,
		AddSource:   lvl <= slog.LevelDebug,
		ReplaceAttr: redactor(),
	}

	if format == "text" {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

// WithLogger returns ctx carrying logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// FromContext returns the logger stored by WithLogger, or slog.Default.
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

func parseLevel(level string) slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return slog.LevelInfo
	}
	return lvl
}
