package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testConstants = UserConstants{A: 1, B: 4000, C: 100, R1: 32, R2: 32, T0: 10, U0: 51, P0: 993.331}

func TestReadingTemperatures(t *testing.T) {
	readings := []TempReading{
		{Group: 1, QO: 1, QT: 2, DTP: 0.5},
		{Group: 1, QO: 0.8, QT: 2, DTP: -0.25},
	}

	ReadingTemperatures(readings, testConstants)

	r := readings[0]
	assert.Equal(t, 0.5, r.Yt)
	assert.Equal(t, 32.0, r.Rt)
	wantT := 4000/(math.Log(1000)+math.Log(32.0)) - 100 - 273.15
	assert.InDelta(t, wantT, r.T, 1e-12)
	assert.InDelta(t, wantT+0.5, r.T1, 1e-12)
	assert.InDelta(t, 12.448, r.T, 0.001)

	assert.InDelta(t, 0.4, readings[1].Yt, 1e-12)
	assert.InDelta(t, 48.0, readings[1].Rt, 1e-9)
	assert.Greater(t, readings[0].T, readings[1].T, "higher resistance is colder")
}

func TestReadingTemperatures_Degenerate(t *testing.T) {
	tests := []struct {
		name    string
		reading TempReading
	}{
		{"zero reference voltage", TempReading{QO: 1, QT: 0, DTP: 0.3}},
		{"zero differential voltage", TempReading{QO: 0, QT: 1, DTP: 0.3}},
		{"negative resistance", TempReading{QO: 2, QT: 1, DTP: 0.3}},
		{"stale temperature is cleared", TempReading{QO: 2, QT: 1, DTP: 0.3, T: 99, T1: 99.3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			readings := []TempReading{tt.reading}
			assert.NotPanics(t, func() { ReadingTemperatures(readings, testConstants) })
			assert.Zero(t, readings[0].T)
			assert.Equal(t, 0.3, readings[0].T1)
			assert.False(t, math.IsNaN(readings[0].T1))
		})
	}
}

func TestAggregateZones(t *testing.T) {
	readings := []TempReading{
		{Group: 1, T1: 10},
		{Group: 1, T1: 12},
		{Group: 2, T1: 7},
		{Group: 4, T1: -3},
		{Group: 9, T1: 100},
	}
	zones := BuildTempZones([]float64{0, 100, 200, 300})

	AggregateZones(readings, zones)

	assert.Equal(t, 11.0, zones[0].Tn)
	assert.Equal(t, 7.0, zones[1].Tn)
	assert.Zero(t, zones[2].Tn)
	assert.Equal(t, -3.0, zones[3].Tn)
}

func TestZoneThicknessAndMidpoints(t *testing.T) {
	zones := BuildTempZones([]float64{0, 100, 200, 400})

	ZoneThickness(zones)
	MidpointHeights(zones)

	assert.Equal(t, []float64{0, 100, 100, 200}, []float64{zones[0].DH, zones[1].DH, zones[2].DH, zones[3].DH})
	assert.Equal(t, []float64{0, 50, 150, 300}, []float64{zones[0].Hi, zones[1].Hi, zones[2].Hi, zones[3].Hi})
}

func TestVirtualCorrection(t *testing.T) {
	zones := []TempZone{{Hi: 0, Tn: 15}, {Hi: 3000, Tn: -5}}

	VirtualCorrection(zones, testConstants)

	x2 := math.Exp((310*10.0 - 100) / 4300)
	want0 := 2.3 * (15 + 273.15) * 51 / (100 * 993.331) * x2
	assert.InDelta(t, want0, zones[0].DTvir, 1e-12)
	assert.Less(t, zones[1].DTvir, zones[0].DTvir, "correction decays with height")
	for _, z := range zones {
		assert.Equal(t, z.Tn+z.DTvir, z.Tvrn)
	}
}

func TestVirtualCorrection_ZeroPressure(t *testing.T) {
	zones := []TempZone{{Hi: 50, Tn: 3}}
	uc := testConstants
	uc.P0 = 0

	VirtualCorrection(zones, uc)

	assert.Zero(t, zones[0].DTvir)
	assert.Equal(t, 3.0, zones[0].Tvrn)
}

func TestWeightedMean(t *testing.T) {
	zones := []TempZone{
		{Height: 0, DH: 0, TTi: 1},
		{Height: 100, DH: 100, TTi: 2},
		{Height: 200, DH: 100, TTi: 4},
		{Height: 400, DH: 200, TTi: 0},
	}

	WeightedMean(zones)

	assert.Equal(t, 1.0, zones[0].TTcpm)
	assert.Equal(t, 2.0, zones[1].TTcpm)
	assert.Equal(t, 3.0, zones[2].TTcpm)
	assert.Equal(t, 1.5, zones[3].TTcpm)
}

func TestStandardTemperature(t *testing.T) {
	tests := []struct {
		h    float64
		want float64
	}{
		{-100, 15},
		{0, 15},
		{500, 11.75},
		{1000, 8.5},
		{11000, -56.5},
		{15000, -56.5},
		{51000, -2.5},
		{80000, -2.5},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, StandardTemperature(tt.h), 1e-12, "height %v", tt.h)
	}
}

func TestStandardDensity(t *testing.T) {
	assert.InDelta(t, 1.2250, StandardDensity(-5), 1e-12)
	assert.InDelta(t, 1.2250, StandardDensity(0), 1e-12)
	assert.InDelta(t, 0.4135, StandardDensity(10000), 1e-12)
	assert.InDelta(t, 0.001027, StandardDensity(90000), 1e-12)
	assert.InDelta(t, (1.2250+1.1117)/2, StandardDensity(500), 1e-12)
}

func TestCorrectTemperatures_Identities(t *testing.T) {
	readings := []TempReading{
		{Group: 1, QO: 1, QT: 2, DTP: 0.1},
		{Group: 1, QO: 1.02, QT: 2, DTP: 0.1},
		{Group: 2, QO: 1.05, QT: 2, DTP: 0.2},
		{Group: 3, QO: 1.1, QT: 2, DTP: 0.2},
	}
	zones := BuildTempZones(TempZoneHeights())

	CorrectTemperatures(readings, zones, testConstants)

	require.NotZero(t, zones[0].Tn)
	for i, z := range zones {
		assert.Equal(t, z.Tn+z.DTvir, z.Tvrn, "zone %d", i)
		assert.Equal(t, z.Tvrn-z.Ttab, z.TTi, "zone %d", i)
	}
	assert.Equal(t, zones[0].TTi, zones[0].TTcpm)
	assert.Equal(t, 150.0, zones[2].Hi)
	assert.Equal(t, 100.0, zones[2].DH)
}
