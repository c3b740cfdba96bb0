package domain

import (
	"fmt"

	"gonum.org/v1/gonum/interp"
)

// heightRange is a half-open run of zone heights [From, To) spaced by Step.
type heightRange struct {
	From, To, Step float64
}

var (
	windZoneRanges = []heightRange{
		{0, 500, 100},
		{600, 6000, 200},
		{6000, 14000, 400},
		{14000, 20000, 500},
	}

	tempZoneRanges = []heightRange{
		{100, 500, 100},
		{600, 6000, 200},
		{6000, 14000, 400},
		{14000, 50001, 500},
	}

	// actualHeights are the report heights of the "actual" bulletin; the
	// first entry is the surface.
	actualHeights = []float64{
		0, 25, 75, 150, 300, 500, 700, 900,
		1100, 1400, 1800, 2200, 2700,
		3500, 4500, 5500, 7000, 9000,
		11000, 13000, 16000, 20000,
		24000, 28000,
	}

	// meanLayerHeights are the upper bounds of the averaged layers of the
	// "mean layer" bulletin; the first entry is the surface.
	meanLayerHeights = []float64{
		0, 200, 400, 800, 1200, 1600, 2000, 2400,
		3000, 4000, 5000, 6000, 8000, 10000,
		12000, 14000, 18000, 22000, 26000, 30000,
	}
)

func expand(ranges []heightRange) []float64 {
	var heights []float64
	for _, r := range ranges {
		for h := r.From; h < r.To; h += r.Step {
			heights = append(heights, h)
		}
	}
	return heights
}

// WindZoneHeights returns the label heights of the wind zones, starting at the ground.
func WindZoneHeights() []float64 {
	return expand(windZoneRanges)
}

// TempZoneHeights returns the lower bounds of the temperature zones: the
// ground zone followed by bins up to 50 km.
func TempZoneHeights() []float64 {
	return append([]float64{0}, expand(tempZoneRanges)...)
}

// ActualLevels returns a fresh set of "actual" report levels with only H set.
func ActualLevels() []ActualLevel {
	levels := make([]ActualLevel, len(actualHeights))
	for i, h := range actualHeights {
		levels[i].H = h
	}
	return levels
}

// MeanLayerLevels returns a fresh set of "mean layer" report levels with only H set.
func MeanLayerLevels() []MeanLayerLevel {
	levels := make([]MeanLayerLevel, len(meanLayerHeights))
	for i, h := range meanLayerHeights {
		levels[i].H = h
	}
	return levels
}

// Standard atmosphere, height in metres.
var (
	// standardTemperature holds temperature in °C.
	standardTemperature = mustTable(
		[]float64{0, 1000, 2000, 3000, 4000, 5000, 6000, 7000, 8000, 9000, 10000, 11000, 20000, 32000, 47000, 51000},
		[]float64{15.0, 8.5, 2.0, -4.5, -11.0, -17.5, -24.0, -30.5, -37.0, -43.5, -50.0, -56.5, -56.5, -44.5, -2.5, -2.5},
	)

	// standardDensity holds air density in kg/m³.
	standardDensity = mustTable(
		[]float64{
			0, 1000, 2000, 3000, 4000, 5000, 6000, 7000, 8000, 9000,
			10000, 11000, 12000, 13000, 14000, 15000, 16000, 17000, 18000, 19000,
			20000, 22000, 24000, 26000, 28000, 30000, 35000, 40000, 45000, 50000,
		},
		[]float64{
			1.2250, 1.1117, 1.0066, 0.9093, 0.8194, 0.7364, 0.6601, 0.5900, 0.5258, 0.4671,
			0.4135, 0.3648, 0.3119, 0.2666, 0.2279, 0.1948, 0.1665, 0.1423, 0.1217, 0.1040,
			0.08891, 0.06451, 0.04694, 0.03426, 0.02508, 0.01841, 0.008463, 0.003996, 0.001966, 0.001027,
		},
	)
)

// mustTable fits a piecewise linear lookup and panics on malformed table data.
func mustTable(xs, ys []float64) *interp.PiecewiseLinear {
	var pl interp.PiecewiseLinear
	if err := pl.Fit(xs, ys); err != nil {
		panic(fmt.Sprintf("domain: bad table: %v", err))
	}
	return &pl
}

// StandardTemperature returns the standard-atmosphere temperature at height h.
// Heights below the table take the first value, heights above take the last.
func StandardTemperature(h float64) float64 {
	return standardTemperature.Predict(h)
}

// StandardDensity returns the standard-atmosphere density at height h with
// the same clamping as StandardTemperature.
func StandardDensity(h float64) float64 {
	return standardDensity.Predict(h)
}
