package middleware

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/jsamuelsen11/fleet-dispatch/internal/adapters/http/dto"
	"github.com/jsamuelsen11/fleet-dispatch/internal/platform/logging"
)

// errPanic is reported to clients in place of the panic value.
var errPanic = errors.New("handler panicked")

// Recovery returns middleware that turns a handler panic into a 500 problem
// response. The log entry names the route, the request ID echoed by
// RequestID, and the registry lookups made before the panic, followed by the
// stack. When the response is already committed only the log entry is
// written. http.ErrAbortHandler is re-raised so net/http can abort the
// connection.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, dispatch := logging.WithDispatch(r.Context())
			r = r.WithContext(ctx)
			rec := newStatusRecorder(w)

			defer func() {
				v := recover()
				if v == nil {
					return
				}
				if v == http.ErrAbortHandler { //nolint:errorlint // sentinel panic value
					panic(v)
				}

				logger.LogAttrs(ctx, slog.LevelError, "panic recovered",
					slog.String("panic", fmt.Sprint(v)),
					slog.String("method", r.Method),
					slog.String("route", routePattern(r)),
					slog.String("request_id", rec.Header().Get(headerRequestID)),
					slog.Any("dispatch", dispatch),
					slog.String("stack", string(debug.Stack())),
				)

				if !rec.Committed() {
					dto.WriteErrorResponse(rec, r, errPanic)
				}
			}()

			next.ServeHTTP(rec, r)
		})
	}
}
