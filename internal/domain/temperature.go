package domain

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

const kelvin = 273.15

// lnKilo is ln(1000), the resistance scale of the thermistor law.
var lnKilo = math.Log(1000)

// CorrectTemperatures runs the temperature correction chain over readings and
// zones in place: thickness, per-reading temperature, zone means, midpoint
// heights, virtual correction, standard-table deviation and its weighted mean.
func CorrectTemperatures(readings []TempReading, zones []TempZone, uc UserConstants) {
	ZoneThickness(zones)
	ReadingTemperatures(readings, uc)
	AggregateZones(readings, zones)
	MidpointHeights(zones)
	VirtualCorrection(zones, uc)
	TableDeviation(zones)
	WeightedMean(zones)
}

// ZoneThickness sets DH to the distance from the previous zone's lower bound.
func ZoneThickness(zones []TempZone) {
	for i := range zones {
		if i == 0 {
			zones[i].DH = 0
			continue
		}
		zones[i].DH = zones[i].Height - zones[i-1].Height
	}
}

// ReadingTemperatures converts each raw voltage pair into a resistance and
// then a temperature in °C, adding the radiation correction into T1.
// Readings whose ratio or resistance is degenerate get T = 0.
func ReadingTemperatures(readings []TempReading, uc UserConstants) {
	for i := range readings {
		r := &readings[i]
		r.T, _ = readingTemperature(r, uc)
		r.T1 = r.T + r.DTP
	}
}

func readingTemperature(r *TempReading, uc UserConstants) (float64, bool) {
	if math.Abs(r.QT) < Epsilon {
		return 0, false
	}
	r.Yt = r.QO / r.QT
	if math.Abs(r.Yt) < Epsilon {
		return 0, false
	}
	r.Rt = uc.R1/r.Yt - uc.R2
	if math.Abs(uc.A) < Epsilon || r.Rt/uc.A <= 0 {
		return 0, false
	}
	denom := lnKilo + math.Log(r.Rt/uc.A)
	if math.Abs(denom) < Epsilon {
		return 0, false
	}
	return uc.B/denom - uc.C - kelvin, true
}

// AggregateZones sets Tn of the zone at 1-based ordinal n to the mean T1 of
// the readings in group n. Zones without readings get zero.
func AggregateZones(readings []TempReading, zones []TempZone) {
	groups := make(map[int][]float64)
	for _, r := range readings {
		groups[r.Group] = append(groups[r.Group], r.T1)
	}
	for i := range zones {
		values := groups[i+1]
		if len(values) == 0 {
			zones[i].Tn = 0
			continue
		}
		zones[i].Tn = stat.Mean(values, nil)
	}
}

// MidpointHeights sets Hi to the middle of each zone. The ground zone has none.
func MidpointHeights(zones []TempZone) {
	for i := 1; i < len(zones); i++ {
		zones[i].Hi = (zones[i-1].Height + zones[i].Height) / 2
	}
}

// VirtualCorrection applies the empirical humidity correction to each zone
// mean and stores the corrected temperature in Tvrn.
func VirtualCorrection(zones []TempZone, uc UserConstants) {
	x2 := math.Exp((310*uc.T0 - uc.T0*uc.T0) / 4300)
	for i := range zones {
		z := &zones[i]
		hkm := z.Hi / 1000
		var x1 float64
		if math.Abs(uc.P0) >= Epsilon {
			x1 = 2.3 * (z.Tn + kelvin) * uc.U0 / (100 * uc.P0)
		}
		x3 := math.Exp(-2.3 * (0.0947*hkm + 0.0138*hkm*hkm))
		z.DTvir = x1 * x2 * x3
		z.Tvrn = z.Tn + z.DTvir
	}
}

// TableDeviation looks up the standard temperature at each midpoint and
// stores the deviation of the corrected temperature from it.
func TableDeviation(zones []TempZone) {
	for i := range zones {
		zones[i].Ttab = StandardTemperature(zones[i].Hi)
		zones[i].TTi = zones[i].Tvrn - zones[i].Ttab
	}
}

// WeightedMean computes TTcpm, the deviation averaged over the column from
// the ground to the top of each zone.
func WeightedMean(zones []TempZone) {
	runningMean(zones,
		func(z *TempZone) float64 { return z.TTi },
		func(z *TempZone) *float64 { return &z.TTcpm },
	)
}

// runningMean is the height-weighted recursion shared by TTcpm and PPcpm:
// out[0] = in[0]; out[i] = (out[i-1]·height[i-1] + in[i]·dH[i]) / height[i].
// Zones with a zero lower bound are skipped.
func runningMean(zones []TempZone, in func(*TempZone) float64, out func(*TempZone) *float64) {
	if len(zones) == 0 {
		return
	}
	*out(&zones[0]) = in(&zones[0])
	for i := 1; i < len(zones); i++ {
		prev, cur := &zones[i-1], &zones[i]
		if math.Abs(cur.Height) < Epsilon {
			continue
		}
		*out(cur) = (*out(prev)*prev.Height + in(cur)*cur.DH) / cur.Height
	}
}
