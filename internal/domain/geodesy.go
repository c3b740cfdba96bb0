package domain

import "math"

const (
	// Epsilon guards every near-zero denominator in the pipeline.
	Epsilon = 1e-9

	// radiansPerUnit converts angular units (6000 per revolution) to radians.
	radiansPerUnit = math.Pi / 3000.0
	// unitsPerRadian is the inverse of radiansPerUnit.
	unitsPerRadian = 3000.0 / math.Pi

	// curvature is the Earth-curvature and refraction term applied to the
	// squared horizontal range.
	curvature = 0.6868e-7
)

// Locate converts a tracking fix into a Cartesian position with height.
func Locate(f RawFix) Position {
	cosE := math.Cos(f.Elevation * radiansPerUnit)
	sinE := math.Sin(f.Elevation * radiansPerUnit)
	cosA := math.Cos(f.Azimuth * radiansPerUnit)
	sinA := math.Sin(f.Azimuth * radiansPerUnit)

	horizontal := f.Distance * cosE
	return Position{
		X: horizontal * cosA,
		Z: horizontal * sinA,
		H: f.Distance*sinE + curvature*horizontal*horizontal,
		S: f.Elapsed,
	}
}

// LocateAll converts fixes in arrival order.
func LocateAll(fixes []RawFix) []Position {
	positions := make([]Position, len(fixes))
	for i, f := range fixes {
		positions[i] = Locate(f)
	}
	return positions
}
