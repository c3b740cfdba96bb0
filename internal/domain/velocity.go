package domain

import "math"

// EstimateVelocities fills VX, VZ, DH and Y of every zone by differencing it
// against the zone below. The ground zone is left as built. A near-zero time
// step leaves the velocity at zero but still sets DH and Y.
func EstimateVelocities(zones []WindZone) {
	for i := 1; i < len(zones); i++ {
		prev, cur := &zones[i-1], &zones[i]

		dt := cur.S - prev.S
		if math.Abs(dt) < Epsilon {
			cur.VX, cur.VZ = 0, 0
		} else {
			cur.VX = (cur.X - prev.X) / dt
			cur.VZ = (cur.Z - prev.Z) / dt
		}

		cur.DH = cur.Height - prev.Height
		cur.Y = (cur.Height + prev.Height) / 2
	}
}
