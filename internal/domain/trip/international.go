package trip

import "math"

// InternationalStrategy prices cross-border trips. Customs is a percentage
// of fuel with a fixed floor.
type InternationalStrategy struct {
	_ struct{} `trip:"international"`
}

const (
	internationalFuelPerKm      = 1.20
	internationalCustomsMin     = 2000.00
	internationalCustomsRate    = 0.20
	internationalInsurancePerHr = 150.00
	internationalBorderFee      = 500.00
)

// Calculate implements Strategy.
func (InternationalStrategy) Calculate(distanceKm, durationHours float64) Cost {
	fuel := distanceKm * internationalFuelPerKm
	customs := math.Max(internationalCustomsMin, fuel*internationalCustomsRate)
	insurance := durationHours * internationalInsurancePerHr

	return Cost{
		Total: round2(fuel + customs + insurance + internationalBorderFee),
		Details: map[string]float64{
			"base_fuel_cost":  round2(fuel),
			"custom_fees":     round2(customs),
			"insurance":       round2(insurance),
			"border_crossing": internationalBorderFee,
		},
	}
}
