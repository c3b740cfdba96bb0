package domain

import "math"

// LevelThickness sets DH of each actual level to the distance from the level
// below. The first level measures from the ground.
func LevelThickness(levels []ActualLevel) {
	prev := 0.0
	for i := range levels {
		levels[i].DH = levels[i].H - prev
		prev = levels[i].H
	}
}

// LayerThickness is LevelThickness for mean-layer levels.
func LayerThickness(levels []MeanLayerLevel) {
	prev := 0.0
	for i := range levels {
		levels[i].DH = levels[i].H - prev
		prev = levels[i].H
	}
}

// ActualPolar fills speed and direction of every actual level from its components.
func ActualPolar(levels []ActualLevel) {
	for i := range levels {
		levels[i].V, levels[i].AV = Polar(levels[i].VX, levels[i].VZ)
	}
}

// LayerMeans sets VX, VZ of each mean-layer level to the thickness-weighted
// average of the zone velocities whose height falls in (H[m-1], H[m]].
// The first layer starts at the ground.
func LayerMeans(zones []WindZone, levels []MeanLayerLevel) {
	lower := 0.0
	for m := range levels {
		l := &levels[m]
		var sumX, sumZ float64
		for k := 1; k < len(zones); k++ {
			if zones[k].Height <= l.H && zones[k].Height > lower {
				sumX += zones[k].VX * zones[k].DH
				sumZ += zones[k].VZ * zones[k].DH
			}
		}
		lower = l.H
		if math.Abs(l.DH) < Epsilon {
			continue
		}
		l.VX = sumX / l.DH
		l.VZ = sumZ / l.DH
	}
}

// ColumnMeans sets WX, WZ of each mean-layer level to the average wind over
// the whole column from the ground to H, along with W and AW.
func ColumnMeans(levels []MeanLayerLevel) {
	var sumX, sumZ float64
	for m := range levels {
		l := &levels[m]
		sumX += l.VX * l.DH
		sumZ += l.VZ * l.DH
		if l.H <= Epsilon {
			continue
		}
		l.WX = sumX / l.H
		l.WZ = sumZ / l.H
		l.W, l.AW = Polar(l.WX, l.WZ)
	}
}

// SeedSurfaceLevels overwrites the ground level of both families with the
// observed surface wind.
func SeedSurfaceLevels(surface *SurfaceObservation, actual []ActualLevel, mean []MeanLayerLevel) {
	if surface == nil {
		return
	}

	vx, vz := surface.Components()
	direction := surface.Direction * 100

	if len(actual) > 0 && actual[0].H <= Epsilon {
		actual[0].SetWind(vx, vz)
		actual[0].V, actual[0].AV = surface.Speed, direction
	}
	if len(mean) > 0 && mean[0].H <= Epsilon {
		mean[0].VX, mean[0].VZ = vx, vz
		mean[0].WX, mean[0].WZ = vx, vz
		mean[0].W, mean[0].AW = surface.Speed, direction
	}
}
