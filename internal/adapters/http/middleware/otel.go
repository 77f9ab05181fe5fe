package middleware

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen11/fleet-dispatch/internal/platform/logging"
	"github.com/jsamuelsen11/fleet-dispatch/internal/platform/telemetry"
)

const tracerName = "github.com/jsamuelsen11/fleet-dispatch/internal/adapters/http"

// OpenTelemetry returns middleware that serves each request inside a server
// span continued from the incoming W3C trace context. Once the handler
// returns, the span is renamed after the chi route and annotated with the
// dispatch domain and keys the request resolved; the same domain labels the
// request metrics. A nil metrics records spans only.
func OpenTelemetry(metrics *telemetry.Metrics) func(http.Handler) http.Handler {
	tracer := otel.Tracer(tracerName)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			ctx := otel.GetTextMapPropagator().Extract(r.Context(), propagation.HeaderCarrier(r.Header))
			ctx, dispatch := logging.WithDispatch(ctx)
			ctx, span := tracer.Start(ctx, "HTTP "+r.Method+" "+r.URL.Path,
				trace.WithSpanKind(trace.SpanKindServer),
				trace.WithAttributes(
					telemetry.AttrHTTPMethod.String(r.Method),
					attribute.String("http.url", r.URL.String()),
				),
			)
			defer span.End()

			rec := newStatusRecorder(w)
			next.ServeHTTP(rec, r.WithContext(ctx))

			route := routePattern(r)
			if route != "" {
				span.SetName("HTTP " + r.Method + " " + route)
				span.SetAttributes(telemetry.AttrHTTPRoute.String(route))
			}

			domain, keys := dispatch.Summary()
			if domain != "" {
				span.SetAttributes(
					telemetry.AttrDomain.String(domain),
					attribute.StringSlice("dispatch.keys", keys),
				)
			}

			status := rec.Status()
			span.SetAttributes(telemetry.AttrHTTPStatus.Int(status))
			if status >= http.StatusInternalServerError {
				span.SetStatus(codes.Error, http.StatusText(status))
			}

			metrics.RecordRequest(ctx, r.Method, route, domain, status, time.Since(start))
		})
	}
}

// routePattern returns the matched chi route pattern, or "" when the request
// did not pass through a chi router.
func routePattern(r *http.Request) string {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil {
		return ""
	}
	return rctx.RoutePattern()
}
