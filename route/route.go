// Package route interpolates positions along the great circle between two
// coordinates.
package route

import (
	"github.com/a-bouts/geocalc/latlon"
)

var hav = latlon.LatLonHaversine{}

// MaxPoints bounds the number of intermediate positions of a Course.
const MaxPoints = 1000000

// Point returns the position a fraction of the way from `from` to `to`.
// Fractions below 0 or above 1 give positions behind the start or beyond the
// end. Coincident or antipodal endpoints have no unique path and fail with
// latlon.ErrUndefined.
func Point(from, to latlon.LatLon, fraction float64) (latlon.LatLon, error) {
	bearing, err := hav.BearingTo(from, to)
	if err != nil {
		return latlon.LatLon{}, err
	}
	distance, err := hav.DistanceTo(from, to)
	if err != nil {
		return latlon.LatLon{}, err
	}

	return hav.Destination(from, bearing, distance*fraction)
}

// Course returns from, numPoints evenly spaced intermediate positions and to.
// numPoints must be within [0, MaxPoints].
func Course(from, to latlon.LatLon, numPoints int) ([]latlon.LatLon, error) {
	if numPoints < 0 || numPoints > MaxPoints {
		return nil, latlon.ErrOutOfRange
	}

	segments := numPoints + 1
	points := make([]latlon.LatLon, 0, segments+1)
	for i := 0; i <= segments; i++ {
		p, err := Point(from, to, float64(i)/float64(segments))
		if err != nil {
			return nil, err
		}
		points = append(points, p)
	}

	return points, nil
}
