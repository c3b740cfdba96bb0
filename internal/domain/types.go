package domain

import "time"

// RawFix is one radar tracking sample of the balloon: slant distance in
// metres, azimuth and elevation in angular units (6000 per revolution) and
// elapsed time since release.
type RawFix struct {
	Distance  float64 `json:"distance"`
	Azimuth   float64 `json:"azimuth"`
	Elevation float64 `json:"elevation"`
	Elapsed   float64 `json:"elapsed"`
}

// SurfaceObservation is the optional ground seed carried by the first line of
// a wind file. Direction is in hundreds of angular units (1/60 revolution),
// Speed in metres per second.
type SurfaceObservation struct {
	Fix       RawFix  `json:"fix"`
	Direction float64 `json:"direction"`
	Speed     float64 `json:"speed"`
}

// Position is a tracking fix converted to local Cartesian coordinates.
type Position struct {
	X float64 `json:"x"`
	Z float64 `json:"z"`
	H float64 `json:"h"`
	S float64 `json:"s"`
}

// WindZone is a fixed-height altitude bin holding the nearest observed
// position and the wind velocity derived from it.
type WindZone struct {
	Height float64 `json:"height"`
	X      float64 `json:"x"`
	Z      float64 `json:"z"`
	S      float64 `json:"s"`
	VX     float64 `json:"vx"`
	VZ     float64 `json:"vz"`
	DH     float64 `json:"dh"`
	Y      float64 `json:"y"` // midpoint height, the interpolation key
}

// TempReading is one raw temperature channel sample. Group is 1-based and
// selects the TempZone the reading is averaged into.
type TempReading struct {
	Group int     `json:"group"`
	QO    float64 `json:"qo"`
	QT    float64 `json:"qt"`
	DTP   float64 `json:"dtp"` // radiation correction

	Yt float64 `json:"yt"`
	Rt float64 `json:"rt"`
	T  float64 `json:"t"`
	T1 float64 `json:"t1"`
}

// TempZone is an altitude bin holding aggregated, corrected temperature and
// density/pressure quantities. Temperatures are in °C, pressures in hPa,
// densities in kg/m³ and density deviations in percent.
type TempZone struct {
	Height float64 `json:"height"`
	DH     float64 `json:"dh"`
	Hi     float64 `json:"hi"`
	Tn     float64 `json:"tn"`
	DTvir  float64 `json:"dtvir"`
	Tvrn   float64 `json:"tvrn"`
	Ttab   float64 `json:"ttab"`
	TTi    float64 `json:"tti"`
	TTcpm  float64 `json:"ttcpm"`
	Pn     float64 `json:"pn"`
	Pi     float64 `json:"pi"`
	Pitab  float64 `json:"pitab"`
	PPi    float64 `json:"ppi"`
	PPcpm  float64 `json:"ppcpm"`
}

// ActualLevel is a report height of the "actual" bulletin: wind and
// temperature deviation at a point.
type ActualLevel struct {
	H     float64 `json:"h"`
	VX    float64 `json:"vx"`
	VZ    float64 `json:"vz"`
	V     float64 `json:"v"`
	AV    float64 `json:"av"`
	DH    float64 `json:"dh"`
	TTi   float64 `json:"tti"`
	TTcpm float64 `json:"ttcpm"`

	// Unbracketed is set when no pair of wind zones spans H.
	Unbracketed bool `json:"unbracketed,omitempty"`
}

// MeanLayerLevel is a report height of the "mean layer" bulletin: wind
// averaged over the layer below H and over the whole column up to H.
type MeanLayerLevel struct {
	H     float64 `json:"h"`
	VX    float64 `json:"vx"`
	VZ    float64 `json:"vz"`
	WX    float64 `json:"wx"`
	WZ    float64 `json:"wz"`
	W     float64 `json:"w"`
	AW    float64 `json:"aw"`
	DH    float64 `json:"dh"`
	TTi   float64 `json:"tti"`
	TTcpm float64 `json:"ttcpm"`
}

func (l *ActualLevel) Height() float64 { return l.H }

func (l *ActualLevel) SetWind(vx, vz float64) { l.VX, l.VZ, l.Unbracketed = vx, vz, false }

func (l *ActualLevel) MarkUnbracketed() { l.Unbracketed = true }

func (l *ActualLevel) SetTemperature(tti, ttcpm float64) { l.TTi, l.TTcpm = tti, ttcpm }

func (l *MeanLayerLevel) Height() float64 { return l.H }

func (l *MeanLayerLevel) SetTemperature(tti, ttcpm float64) { l.TTi, l.TTcpm = tti, ttcpm }

// UserConstants holds the sensor calibration coefficients and the ground
// reference state measured at release.
type UserConstants struct {
	A  float64 `json:"a"`
	B  float64 `json:"b"`
	C  float64 `json:"c"`
	R1 float64 `json:"r1"`
	R2 float64 `json:"r2"`
	T0 float64 `json:"t0"` // ground temperature, °C
	U0 float64 `json:"u0"` // ground relative humidity, %
	P0 float64 `json:"p0"` // ground pressure, hPa
}

// Sounding is the raw input of one computation cycle.
type Sounding struct {
	Source   string              `json:"source"`
	Fixes    []RawFix            `json:"fixes"`
	Surface  *SurfaceObservation `json:"surface,omitempty"`
	Readings []TempReading       `json:"readings"`
}

// BulletinLine is one encoded report level.
type BulletinLine struct {
	Height float64 `json:"height"`
	Code   string  `json:"code"`
}

// Bulletin holds the encoded wind groups of both report families.
type Bulletin struct {
	Actual    []BulletinLine `json:"actual"`
	MeanLayer []BulletinLine `json:"mean_layer"`
}

// Profile is the result of one computation cycle with every derived
// collection populated.
type Profile struct {
	Source      string           `json:"source"`
	Positions   []Position       `json:"positions"`
	WindZones   []WindZone       `json:"wind_zones"`
	Readings    []TempReading    `json:"readings"`
	TempZones   []TempZone       `json:"temp_zones"`
	Actual      []ActualLevel    `json:"actual"`
	MeanLayer   []MeanLayerLevel `json:"mean_layer"`
	Bulletin    Bulletin         `json:"bulletin"`
	Unbracketed int              `json:"unbracketed"`
	ComputedAt  time.Time        `json:"computed_at"`
}
