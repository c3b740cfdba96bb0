// Package domain computes vertical wind, temperature and density profiles
// from a balloon sounding and encodes them as bulletin levels.
//
// # Inputs
//
// Wind comes from radar tracking fixes: slant distance (m), azimuth and
// elevation in angular units, and elapsed time. The angular unit divides a
// revolution into 6000 parts, so 1 unit = π/3000 rad and 100 units = 6°.
//
// Temperature comes from a thermistor channel as a pair of voltages (QO, QT)
// plus a radiation correction. Readings are grouped; group n belongs to the
// n-th temperature zone.
//
// # Wind
//
//	fixes → positions (Locate)
//	      → zones at fixed heights, nearest position by height (BuildWindZones)
//	      → zone velocity by finite difference (EstimateVelocities)
//	      → actual levels by linear interpolation on zone midpoints (InterpolateWind)
//	      → mean-layer levels by layer and column averaging (LayerMeans, ColumnMeans)
//
// Zone heights step by 100 m up to 500 m, 200 m up to 6 km, 400 m up to 14 km
// and 500 m above.
//
// # Temperature and density
//
//	readings → T = B / (ln 1000 + ln(Rt/A)) − C − 273.15, Rt = R1·QT/QO − R2
//	         → zone mean Tn, virtual correction dTvir, Tvrn = Tn + dTvir
//	         → deviation from the standard atmosphere TTi and its
//	           height-weighted column mean TTcpm
//	         → pressure Pn integrated from P0, density Pi, percent deviation
//	           PPi and PPcpm
//
// Standard-atmosphere lookups clamp to the table ends.
//
// # Bulletin
//
// Each level is reported as "dd ss": direction in hundreds of angular units
// and speed in m/s, both two digits. "//" marks a missing group.
//
// Nothing in this package performs I/O or returns errors. Degenerate
// arithmetic (near-zero time steps, spans or temperatures) is guarded by
// [Epsilon] and leaves the affected field at its current value.
package domain
