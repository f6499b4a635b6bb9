package latlon

import "math"

// LatLonHaversine computes on a sphere of radius R.
type LatLonHaversine struct{}

func (LatLonHaversine) DistanceTo(from, to LatLon) (float64, error) {
	if !from.Valid() || !to.Valid() {
		return 0, ErrOutOfRange
	}

	φ1 := toRadians(from.Lat)
	φ2 := toRadians(to.Lat)
	Δφ := φ2 - φ1

	Δλ := toRadians(to.Lon - from.Lon)

	a := math.Sin(Δφ/2)*math.Sin(Δφ/2) + math.Cos(φ1)*math.Cos(φ2)*math.Sin(Δλ/2)*math.Sin(Δλ/2)
	δ := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	// a rounds to 1 or above between antipodes and sqrt(1-a) becomes NaN
	if math.IsNaN(δ) || a >= 1 {
		return MaxEarthDistance, nil
	}

	return R * δ, nil
}

func (LatLonHaversine) BearingTo(from, to LatLon) (float64, error) {
	if !from.Valid() || !to.Valid() {
		return 0, ErrOutOfRange
	}
	if coincident(from, to) || AreAntipodal(from, to) {
		return 0, ErrUndefined
	}

	φ1 := toRadians(from.Lat)
	φ2 := toRadians(to.Lat)

	Δλ := toRadians(to.Lon - from.Lon)
	x := math.Cos(φ1)*math.Sin(φ2) - math.Sin(φ1)*math.Cos(φ2)*math.Cos(Δλ)
	y := math.Sin(Δλ) * math.Cos(φ2)
	θ := math.Atan2(y, x)

	return wrap360(toDegrees(θ)), nil
}

func (hav LatLonHaversine) DistanceAndBearingTo(from, to LatLon) (float64, float64, error) {
	d, err := hav.DistanceTo(from, to)
	if err != nil {
		return 0, 0, err
	}
	b, err := hav.BearingTo(from, to)
	if err != nil {
		return 0, 0, err
	}
	return d, b, nil
}

// Destination returns the point reached by travelling distance meters from
// from along the great circle with the given initial bearing. A negative
// distance travels in the opposite direction.
func (LatLonHaversine) Destination(from LatLon, bearing float64, distance float64) (LatLon, error) {
	if !from.Valid() || !(bearing >= 0 && bearing <= 360) || math.IsNaN(distance) || math.IsInf(distance, 0) {
		return LatLon{}, ErrOutOfRange
	}

	lat := from.Lat
	if from.IsPole() {
		lat *= 1 - PoleNudge
	}

	φ1 := toRadians(lat)
	λ1 := toRadians(from.Lon)
	θ := toRadians(bearing)
	δ := distance / R

	sinφ1, cosφ1 := math.Sincos(φ1)
	sinδ, cosδ := math.Sincos(δ)
	sinθ, cosθ := math.Sincos(θ)

	// sinφ2 = sinφ1⋅cosδ + cosφ1⋅sinδ⋅cosθ
	// cosφ2⋅cosΔλ = cosφ1⋅cosδ − sinφ1⋅sinδ⋅cosθ
	// cosφ2⋅sinΔλ = sinθ⋅sinδ
	z := sinφ1*cosδ + cosφ1*sinδ*cosθ
	x := cosφ1*cosδ - sinφ1*sinδ*cosθ
	y := sinθ * sinδ

	h := math.Hypot(x, y)
	if h < poleSnap {
		return LatLon{Lat: math.Copysign(90, z), Lon: 0}, nil
	}

	φ2 := math.Atan2(z, h)
	λ2 := λ1 + math.Atan2(y, x)

	return LatLon{Lat: toDegrees(φ2), Lon: NormalizeLongitude(toDegrees(λ2))}, nil
}
