package domain

import "math"

// WindLevel is a report level that receives point-interpolated wind components.
type WindLevel interface {
	Height() float64
	SetWind(vx, vz float64)
	MarkUnbracketed()
}

// TemperatureLevel is a report level that receives the temperature deviation
// and its weighted mean.
type TemperatureLevel interface {
	Height() float64
	SetTemperature(tti, ttcpm float64)
}

// windLevelPtr and temperatureLevelPtr let the interpolators take a slice of
// level values and mutate them in place through their pointer methods.
type windLevelPtr[L any] interface {
	*L
	WindLevel
}

type temperatureLevelPtr[L any] interface {
	*L
	TemperatureLevel
}

// InterpolateWind interpolates zone velocities onto each level between the
// two zone midpoints that bracket it. Levels outside every bracket keep
// their current wind and are marked; their count is returned.
func InterpolateWind[L any, P windLevelPtr[L]](zones []WindZone, levels []L) (unbracketed int) {
	for i := range levels {
		lvl := P(&levels[i])
		if !interpolateWindAt(zones, lvl) {
			lvl.MarkUnbracketed()
			unbracketed++
		}
	}
	return unbracketed
}

func interpolateWindAt(zones []WindZone, lvl WindLevel) bool {
	h := lvl.Height()
	for k := 1; k < len(zones); k++ {
		lo, hi := zones[k-1], zones[k]
		if h < lo.Y || h > hi.Y {
			continue
		}

		if h == hi.Y {
			lvl.SetWind(hi.VX, hi.VZ)
			return true
		}
		dy := hi.Y - lo.Y
		if math.Abs(dy) < Epsilon {
			return false
		}
		lvl.SetWind(
			lo.VX+(hi.VX-lo.VX)/dy*(h-lo.Y),
			lo.VZ+(hi.VZ-lo.VZ)/dy*(h-lo.Y),
		)
		return true
	}
	return false
}

// InterpolateTemperature interpolates TTi and TTcpm of the temperature zones
// onto each level by zone midpoint height. Levels below the first midpoint or
// above the last take the boundary zone's values.
func InterpolateTemperature[L any, P temperatureLevelPtr[L]](zones []TempZone, levels []L) {
	if len(zones) == 0 {
		return
	}
	for i := range levels {
		lvl := P(&levels[i])
		lvl.SetTemperature(temperatureAt(zones, lvl.Height()))
	}
}

func temperatureAt(zones []TempZone, h float64) (tti, ttcpm float64) {
	first, last := zones[0], zones[len(zones)-1]
	if h <= first.Hi {
		return first.TTi, first.TTcpm
	}
	if h >= last.Hi {
		return last.TTi, last.TTcpm
	}

	for i := 1; i < len(zones); i++ {
		lo, hi := zones[i-1], zones[i]
		if h < lo.Hi || h > hi.Hi {
			continue
		}
		if h == hi.Hi {
			return hi.TTi, hi.TTcpm
		}
		span := hi.Hi - lo.Hi
		if math.Abs(span) < Epsilon {
			return lo.TTi, lo.TTcpm
		}
		k := (h - lo.Hi) / span
		return lo.TTi + k*(hi.TTi-lo.TTi), lo.TTcpm + k*(hi.TTcpm-lo.TTcpm)
	}
	return 0, 0
}
