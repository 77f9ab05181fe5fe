// Package domain contains shared domain types used across the dispatch
// sub-packages. Each pluggable domain lives in its own sub-package
// (domain/maintenance, domain/trip, domain/content) and declares the
// capability its registry dispatches on. This root package holds sentinel
// errors and validation types shared by all of them.
package domain
