package domain

import "math"

const (
	// barometric is 2·R/g for dry air (29.27 m/K), halving the two-layer sum.
	barometric = 58.54
	// gasConstant is the specific gas constant of dry air, J/(kg·K).
	gasConstant = 287.05
)

// IntegratePressure runs the density/pressure chain over zones whose Tvrn is
// already set: pressure at each zone bound, density, standard density,
// percent deviation and its weighted mean.
func IntegratePressure(zones []TempZone, uc UserConstants) {
	Pressures(zones, uc)
	Densities(zones)
	DensityDeviation(zones)
	DensityWeightedMean(zones)
}

// Pressures integrates Pn upward from the ground pressure P0.
func Pressures(zones []TempZone, uc UserConstants) {
	if len(zones) == 0 {
		return
	}
	zones[0].Pn = uc.P0
	if len(zones) < 2 {
		return
	}

	// The first step divides by Tvrn in °C, not Kelvin: a sub-zero first zone
	// gives Pn[1] > P0 and values near 0 °C grow without bound past the guard.
	if math.Abs(zones[1].Tvrn) >= Epsilon {
		zones[1].Pn = uc.P0 * math.Exp((-1/barometric)*(zones[1].Height/zones[1].Tvrn))
	}

	for i := 2; i < len(zones); i++ {
		tk1 := zones[i].Tvrn + kelvin
		tk2 := zones[i-1].Tvrn + kelvin
		if math.Abs(tk1) < Epsilon || math.Abs(tk2) < Epsilon {
			continue
		}
		x1 := (zones[i].Height - zones[i-1].Height) / tk1
		x2 := (zones[i-1].Height - zones[i-2].Height) / tk2
		zones[i].Pn = zones[i-1].Pn * math.Exp((-1/barometric)*(x1+x2))
	}
}

// Densities derives air density from pressure (hPa) and the corrected
// temperature by the ideal gas law.
func Densities(zones []TempZone) {
	for i := range zones {
		tk := zones[i].Tvrn + kelvin
		if math.Abs(tk) < Epsilon {
			continue
		}
		zones[i].Pi = zones[i].Pn * 100 / (gasConstant * tk)
	}
}

// DensityDeviation stores the standard density at each zone bound and the
// percent deviation of the derived density from it.
func DensityDeviation(zones []TempZone) {
	for i := range zones {
		z := &zones[i]
		z.Pitab = StandardDensity(z.Height)
		if math.Abs(z.Pitab) < Epsilon {
			continue
		}
		z.PPi = (z.Pi - z.Pitab) / z.Pitab * 100
	}
}

// DensityWeightedMean computes PPcpm with the same recursion as TTcpm.
func DensityWeightedMean(zones []TempZone) {
	runningMean(zones,
		func(z *TempZone) float64 { return z.PPi },
		func(z *TempZone) *float64 { return &z.PPcpm },
	)
}
