// Package middleware provides the inbound HTTP middleware of the dispatch
// service. The router installs it in this order:
//
//	Recovery → RequestID → CorrelationID → OpenTelemetry → Logging → Timeout → handler
//
// Recovery and Logging share a logging.Dispatch record through the request
// context; the app services fill it with the registry lookups they make, so
// both the request log and a recovered panic name the domain and keys.
package middleware

import "net/http"

// statusRecorder remembers the status and size of the response written
// through it.
type statusRecorder struct {
	http.ResponseWriter
	status int
	bytes  int64
}

func newStatusRecorder(w http.ResponseWriter) *statusRecorder {
	return &statusRecorder{ResponseWriter: w}
}

// WriteHeader forwards the first status only.
func (sr *statusRecorder) WriteHeader(code int) {
	if sr.status != 0 {
		return
	}
	sr.status = code
	sr.ResponseWriter.WriteHeader(code)
}

func (sr *statusRecorder) Write(b []byte) (int, error) {
	if sr.status == 0 {
		sr.status = http.StatusOK
	}
	n, err := sr.ResponseWriter.Write(b)
	sr.bytes += int64(n)
	return n, err
}

// Status returns the written status, or 200 when nothing was written.
func (sr *statusRecorder) Status() int {
	if sr.status == 0 {
		return http.StatusOK
	}
	return sr.status
}

// Committed reports whether the response status has been sent.
func (sr *statusRecorder) Committed() bool {
	return sr.status != 0
}

// Unwrap exposes the underlying writer to http.ResponseController.
func (sr *statusRecorder) Unwrap() http.ResponseWriter {
	return sr.ResponseWriter
}
