package logging

import (
	"context"
	"log/slog"
	"slices"
	"strings"
	"sync"
)

// Dispatch records the registry lookups made while serving one request so
// the request log can name the domain and keys involved. It is safe for
// concurrent use; methods on a nil *Dispatch do nothing.
type Dispatch struct {
	mu       sync.Mutex
	domain   string
	keys     []string
	failures int
}

type dispatchKey struct{}

// WithDispatch returns ctx carrying the Dispatch already stored in it, or a
// new one.
func WithDispatch(ctx context.Context) (context.Context, *Dispatch) {
	if d := DispatchFromContext(ctx); d != nil {
		return ctx, d
	}
	d := &Dispatch{}
	return context.WithValue(ctx, dispatchKey{}, d), d
}

// DispatchFromContext returns the Dispatch stored by WithDispatch, or nil.
func DispatchFromContext(ctx context.Context) *Dispatch {
	d, _ := ctx.Value(dispatchKey{}).(*Dispatch)
	return d
}

// Record notes one lookup in domain. An empty key records a listing of the
// domain's keys.
func (d *Dispatch) Record(domain, key string, err error) {
	if d == nil {
		return
	}
	d.mu.Lock()
	defer d.mu.Unlock()

	d.domain = domain
	if key != "" && !slices.Contains(d.keys, key) {
		d.keys = append(d.keys, key)
	}
	if err != nil {
		d.failures++
	}
}

// Summary returns the domain and the sorted keys recorded so far.
func (d *Dispatch) Summary() (domain string, keys []string) {
	if d == nil {
		return "", nil
	}
	d.mu.Lock()
	defer d.mu.Unlock()

	keys = slices.Clone(d.keys)
	slices.Sort(keys)
	return d.domain, keys
}

// LogValue implements slog.LogValuer. A request that made no lookup logs an
// empty group, which handlers omit.
func (d *Dispatch) LogValue() slog.Value {
	if d == nil {
		return slog.GroupValue()
	}
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.domain == "" {
		return slog.GroupValue()
	}

	attrs := []slog.Attr{slog.String("domain", d.domain)}
	if len(d.keys) > 0 {
		keys := slices.Sorted(slices.Values(d.keys))
		attrs = append(attrs, slog.String("keys", strings.Join(keys, ",")))
	}
	if d.failures > 0 {
		attrs = append(attrs, slog.Int("failures", d.failures))
	}
	return slog.GroupValue(attrs...)
}
