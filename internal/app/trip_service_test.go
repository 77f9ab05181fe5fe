package app

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/jsamuelsen11/fleet-dispatch/internal/domain"
	"github.com/jsamuelsen11/fleet-dispatch/internal/domain/trip"
	"github.com/jsamuelsen11/fleet-dispatch/internal/platform/registry"
)

func newTripService(workers int) *TripService {
	return NewTripService(trip.NewRegistry(trip.NewScanner()), workers, nil, discardLogger())
}

func TestNewTripService_Defaults(t *testing.T) {
	t.Parallel()

	svc := NewTripService(trip.NewRegistry(trip.NewScanner()), 0, nil, nil)
	if svc.logger == nil {
		t.Error("NewTripService(nil logger) should create a no-op logger, got nil")
	}
	if svc.workers != DefaultQuoteWorkers {
		t.Errorf("workers = %d, want %d", svc.workers, DefaultQuoteWorkers)
	}
}

func TestTripService_Calculate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		req       trip.Request
		wantTotal float64
	}{
		{name: "local", req: trip.Request{Type: "local", DistanceKm: 100, DurationHours: 2}, wantTotal: 280},
		{name: "intercity", req: trip.Request{Type: "intercity", DistanceKm: 150, DurationHours: 3}, wantTotal: 375},
		{name: "international", req: trip.Request{Type: "International", DistanceKm: 800, DurationHours: 10}, wantTotal: 4960},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cost, err := newTripService(2).Calculate(context.Background(), tt.req)
			if err != nil {
				t.Fatalf("Calculate() error = %v, want nil", err)
			}
			if math.Abs(cost.Total-tt.wantTotal) > 1e-9 {
				t.Errorf("Total = %v, want %v", cost.Total, tt.wantTotal)
			}
		})
	}
}

func TestTripService_CalculateErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		req       trip.Request
		wantField string
	}{
		{name: "unknown type", req: trip.Request{Type: "space", DistanceKm: 10, DurationHours: 1}, wantField: "type"},
		{name: "missing type", req: trip.Request{DistanceKm: 10}, wantField: "type"},
		{name: "distance out of range", req: trip.Request{Type: "local", DistanceKm: 60000}, wantField: "distance_km"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := newTripService(2).Calculate(context.Background(), tt.req)

			var verr *domain.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("Calculate() error = %v, want *domain.ValidationError", err)
			}
			if _, ok := verr.Fields[tt.wantField]; !ok {
				t.Errorf("Fields = %v, want %s", verr.Fields, tt.wantField)
			}
		})
	}
}

func TestTripService_Quote(t *testing.T) {
	t.Parallel()

	quotes, err := newTripService(1).Quote(context.Background(), 100, 2)
	if err != nil {
		t.Fatalf("Quote() error = %v, want nil", err)
	}

	want := []struct {
		typ   string
		total float64
	}{
		{"intercity", 250},
		{"international", 2920},
		{"local", 280},
	}
	if len(quotes) != len(want) {
		t.Fatalf("len(quotes) = %d, want %d", len(quotes), len(want))
	}
	for i, w := range want {
		if quotes[i].Type != w.typ {
			t.Errorf("quotes[%d].Type = %q, want %q", i, quotes[i].Type, w.typ)
		}
		if math.Abs(quotes[i].Cost.Total-w.total) > 1e-9 {
			t.Errorf("quotes[%d].Cost.Total = %v, want %v", i, quotes[i].Cost.Total, w.total)
		}
	}
}

func TestTripService_QuoteInvalidDimensions(t *testing.T) {
	t.Parallel()

	_, err := newTripService(2).Quote(context.Background(), -1, 2)
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("Quote() error = %v, want ErrValidation", err)
	}
}

func TestTripService_QuoteFailingStrategy(t *testing.T) {
	t.Parallel()

	boom := errors.New("rate table missing")
	reg := trip.NewRegistry(trip.NewScanner())
	if err := reg.Register("charter", registry.Factory(func() (any, error) { return nil, boom })); err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	svc := NewTripService(reg, 2, nil, discardLogger())

	_, err := svc.Quote(context.Background(), 100, 2)
	if !errors.Is(err, boom) {
		t.Fatalf("Quote() error = %v, want %v", err, boom)
	}
	if !errors.Is(err, registry.ErrInvalidResolver) {
		t.Errorf("Quote() error = %v, want ErrInvalidResolver", err)
	}
}

func TestTripService_Types(t *testing.T) {
	t.Parallel()

	got, err := newTripService(2).Types(context.Background())
	if err != nil {
		t.Fatalf("Types() error = %v, want nil", err)
	}
	if len(got) != 3 || got[0] != "intercity" || got[1] != "international" || got[2] != "local" {
		t.Errorf("Types() = %v, want [intercity international local]", got)
	}
}
