package domain

import "math"

// Closest returns the index of the position whose height is nearest to h.
// The earliest position wins ties. ok is false when positions is empty.
func Closest(h float64, positions []Position) (idx int, ok bool) {
	if len(positions) == 0 {
		return -1, false
	}

	minDiff := math.Abs(positions[0].H - h)
	for i, p := range positions {
		if diff := math.Abs(p.H - h); diff < minDiff {
			minDiff = diff
			idx = i
		}
	}
	return idx, true
}

// BuildWindZones creates one zone per target height and attaches the nearest
// position to it. Zones keep zero coordinates when there are no positions.
func BuildWindZones(heights []float64, positions []Position) []WindZone {
	zones := make([]WindZone, len(heights))
	for i, h := range heights {
		zones[i].Height = h
		if j, ok := Closest(h, positions); ok {
			zones[i].X = positions[j].X
			zones[i].Z = positions[j].Z
			zones[i].S = positions[j].S
		}
	}
	return zones
}

// SeedGroundZone replaces the coordinates of the zero-height zone with the
// surface fix and gives it the observed surface wind. Only the horizontal
// offsets and time of the fix are used.
func SeedGroundZone(zones []WindZone, surface *SurfaceObservation) {
	if surface == nil || len(zones) == 0 || math.Abs(zones[0].Height) > Epsilon {
		return
	}
	p := Locate(surface.Fix)
	zones[0].X = p.X
	zones[0].Z = p.Z
	zones[0].S = p.S
	zones[0].VX, zones[0].VZ = surface.Components()
}

// Components returns the surface wind as (vx, vz). Direction is scaled by 6°
// per unit and wrapped below a full turn.
func (s SurfaceObservation) Components() (vx, vz float64) {
	deg := s.Direction * 6
	if deg >= 360 {
		deg -= 360
	}
	rad := deg * math.Pi / 180
	return s.Speed * math.Cos(rad), s.Speed * math.Sin(rad)
}

// BuildTempZones creates empty temperature zones with the given lower bounds.
func BuildTempZones(heights []float64) []TempZone {
	zones := make([]TempZone, len(heights))
	for i, h := range heights {
		zones[i].Height = h
	}
	return zones
}
