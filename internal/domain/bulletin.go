package domain

import (
	"fmt"
	"math"
)

// Missing marks a direction or speed that is not reported.
const Missing = -1

// Napr returns the bulletin azimuth of the horizontal vector (x, z) in
// radians within [0, 2π). The quadrant rules are the bulletin's own and do
// not match atan2.
func Napr(x, z float64) float64 {
	if math.Abs(x) < 1e-6 {
		if z > 0 {
			return 3 * math.Pi / 2
		}
		return math.Pi / 2
	}
	switch {
	case x > 0:
		return math.Pi + math.Atan(z/x)
	case z > 0:
		return 2*math.Pi + math.Atan(z/x)
	default:
		return math.Atan(z / x)
	}
}

// Polar converts wind components into speed and direction in angular units.
func Polar(vx, vz float64) (speed, direction float64) {
	speed = math.Sqrt(vx*vx + vz*vz)
	direction = math.Round(Napr(vx, vz) * unitsPerRadian)
	return speed, direction
}

// WindCode encodes a direction (angular units) and speed (m/s) as the
// two-group bulletin form "dd ss". Direction is rounded to hundreds. Either
// group becomes "//" when its input is Missing.
func WindCode(direction, speed int) string {
	dir := "//"
	if direction != Missing {
		dir = fmt.Sprintf("%02d", int(math.Round(float64(direction)/100)))
	}
	spd := "//"
	if speed != Missing {
		spd = fmt.Sprintf("%02d", speed)
	}
	return dir + " " + spd
}

// EncodeBulletin produces one wind code per report level of both families.
// Actual levels without an interpolated wind are reported as missing.
func EncodeBulletin(actual []ActualLevel, mean []MeanLayerLevel) Bulletin {
	b := Bulletin{
		Actual:    make([]BulletinLine, len(actual)),
		MeanLayer: make([]BulletinLine, len(mean)),
	}
	for i, l := range actual {
		code := WindCode(int(l.AV), int(math.Round(l.V)))
		if l.Unbracketed {
			code = WindCode(Missing, Missing)
		}
		b.Actual[i] = BulletinLine{Height: l.H, Code: code}
	}
	for i, l := range mean {
		b.MeanLayer[i] = BulletinLine{Height: l.H, Code: WindCode(int(l.AW), int(math.Round(l.W)))}
	}
	return b
}
