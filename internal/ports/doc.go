// Package ports declares what the HTTP adapter and the CLI need from the
// application: one service per dispatch domain and the health checks behind
// readiness.
package ports
