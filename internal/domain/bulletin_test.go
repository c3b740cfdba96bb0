package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWindCode(t *testing.T) {
	tests := []struct {
		name      string
		direction int
		speed     int
		want      string
	}{
		{"missing direction", -1, 40, "// 40"},
		{"missing speed", 300, -1, "03 //"},
		{"both missing", -1, -1, "// //"},
		{"exact hundreds", 4500, 12, "45 12"},
		{"rounds down", 4549, 3, "45 03"},
		{"rounds half up", 4550, 3, "46 03"},
		{"full revolution", 5960, 7, "60 07"},
		{"calm", 0, 0, "00 00"},
		{"three digit speed", 1200, 105, "12 105"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, WindCode(tt.direction, tt.speed))
		})
	}
}

func TestNapr(t *testing.T) {
	tests := []struct {
		name string
		x, z float64
		want float64
	}{
		{"zero x positive z", 0, 5, 3 * math.Pi / 2},
		{"zero x negative z", 0, -5, math.Pi / 2},
		{"zero x zero z", 0, 0, math.Pi / 2},
		{"positive x zero z", 1, 0, math.Pi},
		{"positive x positive z", 1, 1, math.Pi + math.Pi/4},
		{"negative x positive z", -1, 1, 2*math.Pi - math.Pi/4},
		{"negative x negative z", -1, -1, math.Pi / 4},
		{"tiny x treated as zero", 1e-7, 3, 3 * math.Pi / 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Napr(tt.x, tt.z), 1e-12)
		})
	}
}

func TestNapr_SpecialValuesExact(t *testing.T) {
	assert.Equal(t, 3*math.Pi/2, Napr(0, 5))
	assert.Equal(t, math.Pi, Napr(1, 0))
}

func TestPolar(t *testing.T) {
	speed, direction := Polar(3, 4)
	assert.Equal(t, 5.0, speed)
	assert.Equal(t, math.Round((math.Pi+math.Atan(4.0/3))*3000/math.Pi), direction)

	speed, direction = Polar(-2, 0)
	assert.Equal(t, 2.0, speed)
	assert.Equal(t, 0.0, direction)
}

func TestEncodeBulletin(t *testing.T) {
	actual := []ActualLevel{{H: 0, AV: 1200, V: 4.6}, {H: 25, AV: 3000, V: 12.4}}
	mean := []MeanLayerLevel{{H: 200, AW: 450, W: 0.5}}

	b := EncodeBulletin(actual, mean)

	assert.Equal(t, []BulletinLine{{Height: 0, Code: "12 05"}, {Height: 25, Code: "30 12"}}, b.Actual)
	assert.Equal(t, []BulletinLine{{Height: 200, Code: "05 01"}}, b.MeanLayer)
}

func TestEncodeBulletin_UnbracketedIsMissing(t *testing.T) {
	actual := []ActualLevel{{H: 20000, AV: 1500, V: 0, Unbracketed: true}}

	b := EncodeBulletin(actual, nil)

	assert.Equal(t, []BulletinLine{{Height: 20000, Code: "// //"}}, b.Actual)
}
