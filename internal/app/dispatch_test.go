package app

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/jsamuelsen11/fleet-dispatch/internal/domain"
	"github.com/jsamuelsen11/fleet-dispatch/internal/platform/logging"
	"github.com/jsamuelsen11/fleet-dispatch/internal/platform/registry"
	"github.com/jsamuelsen11/fleet-dispatch/internal/platform/telemetry"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// newTestMetrics returns metrics backed by a manual reader.
func newTestMetrics(t *testing.T) (*telemetry.Metrics, *sdkmetric.ManualReader) {
	t.Helper()

	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = mp.Shutdown(context.Background()) })

	metrics, err := telemetry.NewMetrics(mp, "test")
	if err != nil {
		t.Fatalf("NewMetrics() error = %v", err)
	}
	return metrics, reader
}

// dispatchCounts sums dispatch.resolution.total by result attribute.
func dispatchCounts(t *testing.T, reader *sdkmetric.ManualReader) map[string]int64 {
	t.Helper()

	var rm metricdata.ResourceMetrics
	if err := reader.Collect(context.Background(), &rm); err != nil {
		t.Fatalf("Collect() error = %v", err)
	}

	counts := make(map[string]int64)
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name != "dispatch.resolution.total" {
				continue
			}
			sum, ok := m.Data.(metricdata.Sum[int64])
			if !ok {
				t.Fatalf("dispatch.resolution.total data = %T, want Sum[int64]", m.Data)
			}
			for _, dp := range sum.DataPoints {
				result, _ := dp.Attributes.Value(telemetry.AttrResult)
				counts[result.AsString()] += dp.Value
			}
		}
	}
	return counts
}

// stubRegistry returns fixed results for every call.
type stubRegistry[C any] struct {
	value   C
	getErr  error
	bootErr error
	keys    []string
}

func (s *stubRegistry[C]) Get(string) (C, error) { return s.value, s.getErr }
func (s *stubRegistry[C]) Keys() []string        { return s.keys }
func (s *stubRegistry[C]) Bootstrap() error      { return s.bootErr }

func TestDispatcher_Resolve(t *testing.T) {
	t.Parallel()

	t.Run("unknown key becomes a field error", func(t *testing.T) {
		t.Parallel()
		metrics, reader := newTestMetrics(t)
		reg := registry.New[error]("errors")
		d := newDispatcher[error](reg, "errors", "kind", "error kind", metrics)

		_, err := d.resolve(context.Background(), "missing")

		var verr *domain.ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("resolve() error = %v, want *domain.ValidationError", err)
		}
		if got := verr.Fields["kind"]; got != `no error kind registered for "missing"` {
			t.Errorf("Fields[kind] = %q", got)
		}
		if got := dispatchCounts(t, reader)[telemetry.ResultUnknown]; got != 1 {
			t.Errorf("unknown count = %d, want 1", got)
		}
	})

	t.Run("invalid resolver is wrapped", func(t *testing.T) {
		t.Parallel()
		metrics, reader := newTestMetrics(t)
		d := newDispatcher[error](&stubRegistry[error]{getErr: registry.ErrInvalidResolver}, "errors", "kind", "error kind", metrics)

		_, err := d.resolve(context.Background(), "broken")

		if !errors.Is(err, registry.ErrInvalidResolver) {
			t.Fatalf("resolve() error = %v, want ErrInvalidResolver", err)
		}
		if errors.Is(err, domain.ErrValidation) {
			t.Error("an invalid resolver must not be reported as a validation error")
		}
		if got := dispatchCounts(t, reader)[telemetry.ResultInvalid]; got != 1 {
			t.Errorf("invalid count = %d, want 1", got)
		}
	})

	t.Run("failed bootstrap is unavailable", func(t *testing.T) {
		t.Parallel()
		metrics, reader := newTestMetrics(t)
		boom := errors.New("boom")
		reg := registry.New[error]("errors", registry.WithBootstrapper(func(registry.Registrar) error {
			return boom
		}))
		d := newDispatcher[error](reg, "errors", "kind", "error kind", metrics)

		_, err := d.resolve(context.Background(), "any")

		if !errors.Is(err, domain.ErrUnavailable) {
			t.Fatalf("resolve() error = %v, want domain.ErrUnavailable", err)
		}
		if !errors.Is(err, boom) {
			t.Errorf("resolve() error = %v, want it to wrap %v", err, boom)
		}
		if errors.Is(err, domain.ErrValidation) {
			t.Error("a failed bootstrap must not be reported as a validation error")
		}
		if got := dispatchCounts(t, reader)[telemetry.ResultUnavailable]; got != 1 {
			t.Errorf("unavailable count = %d, want 1", got)
		}
	})

	t.Run("resolved key is counted", func(t *testing.T) {
		t.Parallel()
		metrics, reader := newTestMetrics(t)
		want := errors.New("value")
		d := newDispatcher[error](&stubRegistry[error]{value: want}, "errors", "kind", "error kind", metrics)

		got, err := d.resolve(context.Background(), "value")
		if err != nil {
			t.Fatalf("resolve() error = %v", err)
		}
		if got != want {
			t.Errorf("resolve() = %v, want %v", got, want)
		}
		if got := dispatchCounts(t, reader)[telemetry.ResultResolved]; got != 1 {
			t.Errorf("resolved count = %d, want 1", got)
		}
	})

	t.Run("nil metrics are skipped", func(t *testing.T) {
		t.Parallel()
		d := newDispatcher[error](&stubRegistry[error]{getErr: errors.New("boom")}, "errors", "kind", "error kind", nil)

		if _, err := d.resolve(context.Background(), "x"); err == nil {
			t.Fatal("resolve() error = nil, want error")
		}
	})
}

func TestDispatcher_KeysBootstrapFailure(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	d := newDispatcher[error](&stubRegistry[error]{bootErr: boom}, "errors", "kind", "error kind", nil)

	_, err := d.keys(context.Background())
	if !errors.Is(err, boom) {
		t.Fatalf("keys() error = %v, want %v", err, boom)
	}
	if !errors.Is(err, domain.ErrUnavailable) {
		t.Errorf("keys() error = %v, want domain.ErrUnavailable", err)
	}
}

func TestDispatcher_RecordsRequestDispatch(t *testing.T) {
	t.Parallel()

	reg := registry.New[error]("errors")
	if err := reg.Register("known", registry.Factory(func() (any, error) { return errors.New("known"), nil })); err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	d := newDispatcher[error](reg, "errors", "kind", "error kind", nil)

	ctx, record := logging.WithDispatch(context.Background())
	_, _ = d.resolve(ctx, "known")
	_, _ = d.resolve(ctx, "missing")
	_, _ = d.resolve(ctx, "known")
	if _, err := d.keys(ctx); err != nil {
		t.Fatalf("keys() error = %v", err)
	}

	got := record.LogValue().String()
	want := slog.GroupValue(
		slog.String("domain", "errors"),
		slog.String("keys", "known,missing"),
		slog.Int("failures", 1),
	).String()
	if got != want {
		t.Errorf("dispatch record = %s, want %s", got, want)
	}

	// Without a request record, lookups are still served.
	if _, err := d.resolve(context.Background(), "known"); err != nil {
		t.Errorf("resolve() without record error = %v", err)
	}
}
