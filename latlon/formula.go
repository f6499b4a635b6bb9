package latlon

import (
	"fmt"
	"strings"
)

type LatLonInterface interface {
	DistanceTo(from, to LatLon) (float64, error)
	BearingTo(from, to LatLon) (float64, error)
}

// Formula selects the Earth model used by Distance and Bearing.
type Formula int

const (
	Spherical Formula = iota
	Ellipsoidal
)

var formulaNames = map[string]Formula{
	"haversine":   Spherical,
	"spherical":   Spherical,
	"ellipsoidal": Ellipsoidal,
	"karney":      Ellipsoidal,
	"vincenty":    Ellipsoidal,
	"wgs84":       Ellipsoidal,
}

// ParseFormula returns the formula for one of its names.
func ParseFormula(s string) (Formula, error) {
	f, ok := formulaNames[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return 0, fmt.Errorf("%q: unknown formula", s)
	}
	return f, nil
}

func (f Formula) String() string {
	switch f {
	case Spherical:
		return "haversine"
	case Ellipsoidal:
		return "ellipsoidal"
	}
	return fmt.Sprintf("Formula(%d)", int(f))
}

// Decimals is the number of decimals worth printing for results of f.
func (f Formula) Decimals() int {
	switch f {
	case Spherical:
		return 6
	case Ellipsoidal:
		return 8
	}
	panic(fmt.Sprintf("latlon: unknown formula %d", int(f)))
}

// Model returns the implementation of f. It panics if f is not Spherical or
// Ellipsoidal.
func (f Formula) Model() LatLonInterface {
	switch f {
	case Spherical:
		return LatLonHaversine{}
	case Ellipsoidal:
		return LatLonEllipsoidal{}
	}
	panic(fmt.Sprintf("latlon: unknown formula %d", int(f)))
}

// Distance returns the distance in meters from `from` to `to` using formula f.
func Distance(f Formula, from, to LatLon) (float64, error) {
	return f.Model().DistanceTo(from, to)
}

// Bearing returns the initial bearing in degrees from `from` to `to` using
// formula f.
func Bearing(f Formula, from, to LatLon) (float64, error) {
	return f.Model().BearingTo(from, to)
}
