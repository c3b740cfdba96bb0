package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClosest(t *testing.T) {
	positions := []Position{{H: 100}, {H: 300}, {H: 200}, {H: 300}}

	tests := []struct {
		name string
		h    float64
		want int
	}{
		{"below all", -50, 0},
		{"exact first", 100, 0},
		{"tie resolves to earliest", 250, 1},
		{"duplicate height resolves to earliest", 300, 1},
		{"exact middle", 200, 2},
		{"above all", 10000, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			idx, ok := Closest(tt.h, positions)
			require.True(t, ok)
			assert.Equal(t, tt.want, idx)
		})
	}
}

func TestClosest_MinimizesDistance(t *testing.T) {
	positions := []Position{{H: 12}, {H: 480}, {H: 97}, {H: 1510}, {H: 733}, {H: 205}}

	for _, h := range WindZoneHeights() {
		idx, ok := Closest(h, positions)
		require.True(t, ok)
		best := math.Abs(positions[idx].H - h)
		for j, p := range positions {
			d := math.Abs(p.H - h)
			assert.GreaterOrEqual(t, d, best, "height %v: position %d is closer than %d", h, j, idx)
			if j < idx {
				assert.Greater(t, d, best, "height %v: earlier position %d ties with %d", h, j, idx)
			}
		}
	}
}

func TestClosest_Empty(t *testing.T) {
	idx, ok := Closest(100, nil)
	assert.False(t, ok)
	assert.Equal(t, -1, idx)
}

func TestBuildWindZones(t *testing.T) {
	positions := []Position{
		{X: 1, Z: 2, H: 5, S: 10},
		{X: 3, Z: 4, H: 95, S: 20},
		{X: 5, Z: 6, H: 210, S: 30},
	}

	zones := BuildWindZones([]float64{0, 100, 200}, positions)

	require.Len(t, zones, 3)
	assert.Equal(t, WindZone{Height: 0, X: 1, Z: 2, S: 10}, zones[0])
	assert.Equal(t, WindZone{Height: 100, X: 3, Z: 4, S: 20}, zones[1])
	assert.Equal(t, WindZone{Height: 200, X: 5, Z: 6, S: 30}, zones[2])
}

func TestBuildWindZones_NoPositions(t *testing.T) {
	zones := BuildWindZones([]float64{0, 100}, nil)

	require.Len(t, zones, 2)
	assert.Equal(t, WindZone{Height: 100}, zones[1])
}

func TestSeedGroundZone(t *testing.T) {
	zones := []WindZone{{Height: 0, X: 9, Z: 9, S: 9}, {Height: 100, X: 7}}
	surface := &SurfaceObservation{Fix: RawFix{Distance: 50, Elapsed: 1}, Direction: 10, Speed: 3}

	SeedGroundZone(zones, surface)

	assert.InDelta(t, 50.0, zones[0].X, 1e-9)
	assert.InDelta(t, 0.0, zones[0].Z, 1e-9)
	assert.Equal(t, 1.0, zones[0].S)
	assert.InDelta(t, 1.5, zones[0].VX, 1e-12)
	assert.InDelta(t, 3*math.Sqrt(3)/2, zones[0].VZ, 1e-12)
	assert.Equal(t, 7.0, zones[1].X)
	assert.Zero(t, zones[1].VX)

	SeedGroundZone(zones, nil)
	assert.Equal(t, 1.0, zones[0].S)
}

func TestSeedGroundZone_SurvivesVelocityEstimate(t *testing.T) {
	zones := BuildWindZones([]float64{0, 100}, []Position{{H: 0}, {X: 40, H: 100, S: 10}})
	SeedGroundZone(zones, &SurfaceObservation{Direction: 15, Speed: 10})

	EstimateVelocities(zones)

	assert.InDelta(t, 0.0, zones[0].VX, 1e-12)
	assert.InDelta(t, 10.0, zones[0].VZ, 1e-12)
	assert.InDelta(t, 4.0, zones[1].VX, 1e-12)
}

func TestSurfaceObservation_Components(t *testing.T) {
	tests := []struct {
		name      string
		direction float64
		wantVX    float64
		wantVZ    float64
	}{
		{"north", 0, 2, 0},
		{"quarter turn", 15, 0, 2},
		{"half turn", 30, -2, 0},
		{"full turn wraps", 60, 2, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vx, vz := SurfaceObservation{Direction: tt.direction, Speed: 2}.Components()
			assert.InDelta(t, tt.wantVX, vx, 1e-12)
			assert.InDelta(t, tt.wantVZ, vz, 1e-12)
		})
	}
}

func TestWindZoneHeights(t *testing.T) {
	heights := WindZoneHeights()

	require.Len(t, heights, 64)
	assert.Equal(t, []float64{0, 100, 200, 300, 400, 600}, heights[:6])
	assert.Equal(t, 19500.0, heights[len(heights)-1])
	for i := 1; i < len(heights); i++ {
		assert.Greater(t, heights[i], heights[i-1])
	}
}

func TestTempZoneHeights(t *testing.T) {
	heights := TempZoneHeights()

	require.Len(t, heights, 125)
	assert.Equal(t, []float64{0, 100, 200, 300, 400, 600}, heights[:6])
	assert.Equal(t, 50000.0, heights[len(heights)-1])
	for i := 1; i < len(heights); i++ {
		assert.Greater(t, heights[i], heights[i-1])
	}
}

func TestBuildTempZones(t *testing.T) {
	zones := BuildTempZones([]float64{0, 100})

	require.Len(t, zones, 2)
	assert.Equal(t, TempZone{Height: 100}, zones[1])
}
