package trip

// LocalStrategy prices trips within a city by distance and time.
type LocalStrategy struct {
	_ struct{} `trip:"local"`
}

const (
	localPerKm   = 2.50
	localPerHour = 15.00
)

// Calculate implements Strategy.
func (LocalStrategy) Calculate(distanceKm, durationHours float64) Cost {
	distance := distanceKm * localPerKm
	timeCost := durationHours * localPerHour

	return Cost{
		Total: round2(distance + timeCost),
		Details: map[string]float64{
			"distance_cost": round2(distance),
			"time_cost":     round2(timeCost),
		},
	}
}
