package latlon

import "errors"

var (
	// ErrOutOfRange is returned when a coordinate or bearing is outside its
	// valid domain.
	ErrOutOfRange = errors.New("value out of range")

	// ErrUndefined is returned for the bearing between coincident or
	// antipodal points, where no unique direction exists.
	ErrUndefined = errors.New("bearing is undefined")

	// ErrNoConvergence is returned when the ellipsoidal iteration does not
	// stabilize, which happens for nearly antipodal points.
	ErrNoConvergence = errors.New("formula did not converge")
)
