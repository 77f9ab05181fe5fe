package middleware

import (
	"log/slog"
	"maps"
	"net/http"
	"slices"
	"strings"

	"github.com/jsamuelsen11/fleet-dispatch/internal/platform/logging"
)

const redacted = "[REDACTED]"

// RedactHeaders returns headers as log attributes sorted by name, with the
// values of logging.SensitiveHeaders replaced by "[REDACTED]". Repeated
// headers are joined with commas.
func RedactHeaders(headers http.Header) []slog.Attr {
	names := slices.Sorted(maps.Keys(headers))
	attrs := make([]slog.Attr, 0, len(names))
	for _, name := range names {
		value := strings.Join(headers[name], ",")
		if logging.SensitiveHeaders[strings.ToLower(name)] {
			value = redacted
		}
		attrs = append(attrs, slog.String(name, value))
	}
	return attrs
}
