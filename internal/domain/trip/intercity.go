package trip

// InterCityStrategy prices trips between cities: fuel and vehicle wear by
// distance plus a driver allowance by time.
type InterCityStrategy struct {
	_ struct{} `trip:"intercity"`
}

const (
	intercityFuelPerKm     = 0.80
	intercityWearPerKm     = 1.20
	intercityDriverPerHour = 25.00
)

// Calculate implements Strategy.
func (InterCityStrategy) Calculate(distanceKm, durationHours float64) Cost {
	fuel := distanceKm * intercityFuelPerKm
	wear := distanceKm * intercityWearPerKm
	driver := durationHours * intercityDriverPerHour

	return Cost{
		Total: round2(fuel + wear + driver),
		Details: map[string]float64{
			"fuel_cost":           round2(fuel),
			"vehicle_consumption": round2(wear),
			"driver_allowance":    round2(driver),
		},
	}
}
