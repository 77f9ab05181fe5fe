// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/fleet-dispatch/internal/adapters/http/handlers"
)

// NewRouter creates an HTTP handler with all application routes registered.
// Middleware is applied globally in the order given.
func NewRouter(
	maintenanceHandler *handlers.MaintenanceHandler,
	tripHandler *handlers.TripHandler,
	contentHandler *handlers.ContentHandler,
	healthHandler *handlers.HealthHandler,
	middlewares ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	// Health endpoints (outside /api/v1 prefix).
	r.Get("/health/live", healthHandler.Liveness)
	r.Get("/health/ready", healthHandler.Readiness)

	// API v1 routes.
	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/maintenance", func(r chi.Router) {
			r.Post("/request", maintenanceHandler.Submit)
			r.Get("/types", maintenanceHandler.Types)
		})

		r.Route("/trip", func(r chi.Router) {
			r.Post("/request", tripHandler.Calculate)
			r.Post("/quotes", tripHandler.Quotes)
			r.Get("/types", tripHandler.Types)
		})

		r.Route("/ai", func(r chi.Router) {
			r.Post("/text", contentHandler.Text)
			r.Post("/image", contentHandler.Image)
		})
	})

	return r
}
