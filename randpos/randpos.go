// Package randpos draws random positions uniformly by area, either over the
// whole globe or inside a ring around a center point.
package randpos

import (
	"errors"
	"math"
	"math/rand"

	"github.com/a-bouts/geocalc/latlon"
)

// MaxAttempts caps the rejection loop of Annulus. A non-degenerate ring
// accepts almost every draw, so reaching it means the parameters are broken.
const MaxAttempts = 10000

// ErrSamplingFailed is returned when no draw was accepted within MaxAttempts.
var ErrSamplingFailed = errors.New("random position sampling did not converge")

var hav = latlon.LatLonHaversine{}

// Sampler draws positions from its own generator. Two samplers built with
// the same seed produce the same sequence.
type Sampler struct {
	rng *rand.Rand
}

func New(seed int64) *Sampler {
	return &Sampler{rng: rand.New(rand.NewSource(seed))}
}

// Global returns a position uniformly distributed over the globe.
func (s *Sampler) Global() latlon.LatLon {
	// asin of a uniform [-1,1] variate spreads latitudes by area
	lat := math.Asin(2*s.rng.Float64()-1) * 180 / math.Pi
	lon := 180 - 360*s.rng.Float64()

	return latlon.LatLon{Lat: lat, Lon: lon}
}

// Annulus returns a position whose great-circle distance from center lies
// between minDist and maxDist meters.
//
// With both distances 0 the position is drawn from the whole globe. With only
// minDist set, the position is drawn from everything at least minDist away,
// which is the disk of radius MaxEarthDistance-minDist around the antipode of
// center.
func (s *Sampler) Annulus(center latlon.LatLon, maxDist, minDist float64) (latlon.LatLon, error) {
	if !center.Valid() || !validDistance(maxDist) || !validDistance(minDist) {
		return latlon.LatLon{}, latlon.ErrOutOfRange
	}
	if maxDist == 0 && minDist == 0 {
		return s.Global(), nil
	}
	if maxDist == 0 {
		center = latlon.Antipode(center)
		maxDist = latlon.MaxEarthDistance - minDist
		minDist = 0
	}
	if minDist > maxDist {
		minDist, maxDist = maxDist, minDist
	}

	antipode := latlon.Antipode(center)
	slack := latlon.PoleNudgeDistance + maxDist*1e-12
	for i := 0; i < MaxAttempts; i++ {
		bearing := 360 * s.rng.Float64()

		// sqrt keeps the density constant over the growing rings
		u := s.rng.Float64()
		dist := math.Sqrt(minDist*minDist + u*(maxDist*maxDist-minDist*minDist))

		p, err := hav.Destination(center, bearing, dist)
		if err != nil {
			return latlon.LatLon{}, err
		}
		if minDist == maxDist {
			return p, nil
		}

		d, err := realized(center, antipode, p)
		if err != nil {
			return latlon.LatLon{}, err
		}
		if d >= minDist-slack && d <= maxDist+slack {
			return p, nil
		}
	}

	return latlon.LatLon{}, ErrSamplingFailed
}

// realized returns the distance from center to p. Haversine only resolves
// about 0.13 m close to MaxEarthDistance, so the far hemisphere is measured
// from the antipode instead.
func realized(center, antipode, p latlon.LatLon) (float64, error) {
	d, err := hav.DistanceTo(center, p)
	if err != nil || d <= latlon.MaxEarthDistance/2 {
		return d, err
	}
	back, err := hav.DistanceTo(antipode, p)
	if err != nil {
		return 0, err
	}
	return latlon.MaxEarthDistance - back, nil
}

func validDistance(d float64) bool {
	return d >= 0 && d <= latlon.MaxEarthDistance
}
