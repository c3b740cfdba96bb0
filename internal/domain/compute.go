package domain

import "slices"

// Compute runs one full cycle over a sounding. The level slices are filled in
// place and returned in the profile; readings are copied before the derived
// fields are written.
func Compute(s Sounding, uc UserConstants, actual []ActualLevel, mean []MeanLayerLevel) Profile {
	positions := LocateAll(s.Fixes)

	zones := BuildWindZones(WindZoneHeights(), positions)
	SeedGroundZone(zones, s.Surface)
	EstimateVelocities(zones)

	LevelThickness(actual)
	LayerThickness(mean)
	unbracketed := InterpolateWind(zones, actual)
	ActualPolar(actual)
	LayerMeans(zones, mean)
	ColumnMeans(mean)
	SeedSurfaceLevels(s.Surface, actual, mean)

	readings := slices.Clone(s.Readings)
	tempZones := BuildTempZones(TempZoneHeights())
	CorrectTemperatures(readings, tempZones, uc)
	IntegratePressure(tempZones, uc)
	InterpolateTemperature(tempZones, actual)
	InterpolateTemperature(tempZones, mean)

	return Profile{
		Source:      s.Source,
		Positions:   positions,
		WindZones:   zones,
		Readings:    readings,
		TempZones:   tempZones,
		Actual:      actual,
		MeanLayer:   mean,
		Bulletin:    EncodeBulletin(actual, mean),
		Unbracketed: unbracketed,
		ComputedAt:  clock.Now(),
	}
}
