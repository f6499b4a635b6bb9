package latlon

import "math"

const (
	// distanceConvergence and bearingConvergence bound the change of λ
	// between two iterations, in radians. 1e-12 rad is about 6 µm on the
	// Earth's surface.
	distanceConvergence = 1e-12
	bearingConvergence  = 1e-11

	maxIterations = 100
)

// LatLonEllipsoidal computes on the WGS84 ellipsoid with the iterative
// reduced-latitude inverse method.
type LatLonEllipsoidal struct{}

type inverse struct {
	distance float64
	bearing  float64
}

// solveInverse iterates λ, the longitude difference on the auxiliary sphere,
// until it changes by less than tolerance. It returns a zero distance and
// zero bearing for coincident points.
func solveInverse(from, to LatLon, tolerance float64) (inverse, error) {
	const f = WGS84F

	L := toRadians(to.Lon - from.Lon)
	tanU1 := (1 - f) * math.Tan(toRadians(from.Lat))
	tanU2 := (1 - f) * math.Tan(toRadians(to.Lat))
	cosU1 := 1 / math.Sqrt(1+tanU1*tanU1)
	sinU1 := tanU1 * cosU1
	cosU2 := 1 / math.Sqrt(1+tanU2*tanU2)
	sinU2 := tanU2 * cosU2

	λ := L
	for i := 0; i < maxIterations; i++ {
		sinλ, cosλ := math.Sincos(λ)

		p := cosU2 * sinλ
		q := cosU1*sinU2 - sinU1*cosU2*cosλ
		sinσ := math.Sqrt(p*p + q*q)
		if sinσ == 0 {
			return inverse{}, nil
		}
		cosσ := sinU1*sinU2 + cosU1*cosU2*cosλ
		σ := math.Atan2(sinσ, cosσ)

		sinα := cosU1 * cosU2 * sinλ / sinσ
		cos2α := 1 - sinα*sinα

		// cos2α is 0 on equatorial lines
		cos2σm := 0.0
		if cos2α != 0 {
			cos2σm = cosσ - 2*sinU1*sinU2/cos2α
		}

		C := f / 16 * cos2α * (4 + f*(4-3*cos2α))
		λʹ := λ
		λ = L + (1-C)*f*sinα*(σ+C*sinσ*(cos2σm+C*cosσ*(-1+2*cos2σm*cos2σm)))

		if math.Abs(λ-λʹ) < tolerance {
			u2 := cos2α * (WGS84A*WGS84A - WGS84B*WGS84B) / (WGS84B * WGS84B)
			A := 1 + u2/16384*(4096+u2*(-768+u2*(320-175*u2)))
			B := u2 / 1024 * (256 + u2*(-128+u2*(74-47*u2)))
			Δσ := B * sinσ * (cos2σm + B/4*(cosσ*(-1+2*cos2σm*cos2σm)-
				B/6*cos2σm*(-3+4*sinσ*sinσ)*(-3+4*cos2σm*cos2σm)))

			sinλ, cosλ = math.Sincos(λ)
			α1 := math.Atan2(cosU2*sinλ, cosU1*sinU2-sinU1*cosU2*cosλ)

			return inverse{
				distance: WGS84B * A * (σ - Δσ),
				bearing:  wrap360(toDegrees(α1)),
			}, nil
		}
	}

	return inverse{}, ErrNoConvergence
}

func (LatLonEllipsoidal) DistanceTo(from, to LatLon) (float64, error) {
	if !from.Valid() || !to.Valid() {
		return 0, ErrOutOfRange
	}

	inv, err := solveInverse(from, to, distanceConvergence)
	if err != nil {
		return 0, err
	}
	return inv.distance, nil
}

func (LatLonEllipsoidal) BearingTo(from, to LatLon) (float64, error) {
	if !from.Valid() || !to.Valid() {
		return 0, ErrOutOfRange
	}
	// the iteration may converge here but its bearing means nothing
	if coincident(from, to) || AreAntipodal(from, to) {
		return 0, ErrUndefined
	}

	inv, err := solveInverse(from, to, bearingConvergence)
	if err != nil {
		return 0, err
	}
	if inv.distance == 0 {
		return 0, ErrUndefined
	}
	return inv.bearing, nil
}
