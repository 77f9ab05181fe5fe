// Package trip prices trips. Each pricing model is a Strategy carrying a
// `trip:"<type>"` marker tag; strategies are found by scanning this
// package's own source rather than listed by hand.
package trip

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/jsamuelsen11/fleet-dispatch/internal/domain"
)

// TagKey is the struct tag naming a strategy's trip type.
const TagKey = "trip"

// Request bounds.
const (
	MaxDistanceKm    = 50000
	MaxDurationHours = 168
)

// ErrNoStrategy is returned by a Calculator without a strategy.
var ErrNoStrategy = errors.New("trip: strategy not set")

// Cost is a priced trip. Details break the total down by component; every
// figure is rounded to two decimals.
type Cost struct {
	Total   float64
	Details map[string]float64
}

// Strategy prices a trip of the given distance and duration.
type Strategy interface {
	Calculate(distanceKm, durationHours float64) Cost
}

// Request asks for the price of a trip of Type.
type Request struct {
	Type          string
	DistanceKm    float64
	DurationHours float64
}

// Validate checks the request shape. It does not check whether Type has a
// strategy.
func (r *Request) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(r.Type) == "" {
		fields["type"] = domain.MsgRequired
	}
	checkDimensions(fields, r.DistanceKm, r.DurationHours)

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// ValidateDimensions checks distance and duration without a trip type.
func ValidateDimensions(distanceKm, durationHours float64) error {
	fields := make(map[string]string)
	checkDimensions(fields, distanceKm, durationHours)

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

func checkDimensions(fields map[string]string, distanceKm, durationHours float64) {
	if msg := checkRange(distanceKm, MaxDistanceKm); msg != "" {
		fields["distance_km"] = msg
	}
	if msg := checkRange(durationHours, MaxDurationHours); msg != "" {
		fields["duration_hours"] = msg
	}
}

func checkRange(v, limit float64) string {
	if math.IsNaN(v) || v < 0 || v > limit {
		return fmt.Sprintf("must be between 0 and %g, got %g", limit, v)
	}
	return ""
}

// Calculator prices trips with a fixed strategy.
type Calculator struct {
	strategy Strategy
}

// NewCalculator returns a calculator using s.
func NewCalculator(s Strategy) (*Calculator, error) {
	if s == nil {
		return nil, ErrNoStrategy
	}
	return &Calculator{strategy: s}, nil
}

// Calculate prices a trip.
func (c *Calculator) Calculate(distanceKm, durationHours float64) Cost {
	return c.strategy.Calculate(distanceKm, durationHours)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
