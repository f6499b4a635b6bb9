// Package latlon computes distances, bearings and forward positions between
// geographic coordinates on a spherical and on a WGS84 ellipsoidal Earth.
//
// All angles are decimal degrees and all distances are meters.
package latlon

import "math"

const π = math.Pi

// R is the mean Earth radius used by the spherical model.
const R = 6371e3

// MaxEarthDistance is half the great-circle circumference of the spherical
// model. It is returned for antipodal spherical distance queries.
const MaxEarthDistance = π * R

// WGS84 ellipsoid.
const (
	WGS84A = 6378137.0
	WGS84F = 1 / 298.257223563
	WGS84B = (1 - WGS84F) * WGS84A
)

const (
	// AntipodalTolerance is the absolute tolerance, in degrees, under which
	// two points count as diametrically opposite.
	AntipodalTolerance = 1e-10

	// PoleNudge is the relative amount a starting latitude of exactly ±90 is
	// moved towards the equator before a forward computation, since a
	// bearing has no meaning at the pole itself. It amounts to about 1 cm.
	PoleNudge = 1e-9

	// poleSnap is the value of cos(φ) under which a computed position is
	// treated as lying on a pole, where longitude is undefined.
	poleSnap = 1e-12
)

// PoleNudgeDistance is the distance in meters a starting pole is moved by
// PoleNudge.
const PoleNudgeDistance = R * 90 * PoleNudge * π / 180

// LatLon is a geographic coordinate in decimal degrees.
type LatLon struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Valid reports whether the latitude is within [-90, 90] and the longitude
// within [-180, 180].
func (p LatLon) Valid() bool {
	return math.Abs(p.Lat) <= 90 && math.Abs(p.Lon) <= 180
}

// IsPole reports whether p is exactly on the North or South Pole.
func (p LatLon) IsPole() bool {
	return math.Abs(p.Lat) == 90
}

// Normalized returns p with its longitude in (-180, 180].
func (p LatLon) Normalized() LatLon {
	return LatLon{Lat: p.Lat, Lon: NormalizeLongitude(p.Lon)}
}

func toRadians(a float64) float64 {
	return a * π / 180.0
}

func toDegrees(a float64) float64 {
	return a * 180.0 / π
}

func wrap360(d float64) float64 {
	if 0.0 <= d && d < 360.0 {
		return d
	}
	d = math.Mod(d, 360.0)
	if d < 0 {
		d += 360.0
	}
	// -1e-14 + 360 rounds to 360
	if d >= 360.0 {
		d -= 360.0
	}
	return d
}

// NormalizeLongitude maps any finite longitude into (-180, 180]. Values
// already in that range are returned unchanged.
func NormalizeLongitude(lon float64) float64 {
	if lon > -180.0 && lon <= 180.0 {
		return lon
	}
	l := math.Mod(lon+180.0, 360.0)
	if l <= 0 {
		l += 360.0
	}
	return l - 180.0
}

// AreAntipodal reports whether a and b are diametrically opposite within
// AntipodalTolerance.
func AreAntipodal(a, b LatLon) bool {
	// opposite poles, whatever the longitudes
	if (a.Lat == 90 && b.Lat == -90) || (a.Lat == -90 && b.Lat == 90) {
		return true
	}
	if (math.Abs(a.Lat-90) < AntipodalTolerance && math.Abs(b.Lat+90) < AntipodalTolerance) ||
		(math.Abs(a.Lat+90) < AntipodalTolerance && math.Abs(b.Lat-90) < AntipodalTolerance) {
		return true
	}

	if math.Abs(a.Lat+b.Lat) >= AntipodalTolerance {
		return false
	}
	Δλ := math.Abs(NormalizeLongitude(a.Lon - b.Lon))
	return math.Abs(Δλ-180) < AntipodalTolerance
}

// Antipode returns the point diametrically opposite p.
//
// The antipode of a pole is the other pole with longitude 0. Poles carry no
// longitude, so Antipode(Antipode(p)) only gives p back for non-polar p.
func Antipode(p LatLon) LatLon {
	lat := -p.Lat
	if math.Abs(lat) == 90 {
		return LatLon{Lat: lat, Lon: 0}
	}
	return LatLon{Lat: lat, Lon: NormalizeLongitude(p.Lon + 180)}
}

// coincident reports whether a and b are the same point. Any two points on
// the same pole are the same point.
func coincident(a, b LatLon) bool {
	if a.Lat != b.Lat {
		return false
	}
	if a.IsPole() {
		return true
	}
	return NormalizeLongitude(a.Lon) == NormalizeLongitude(b.Lon)
}
