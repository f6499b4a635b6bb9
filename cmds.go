package main

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/a-bouts/geocalc/format"
	"github.com/a-bouts/geocalc/latlon"
	"github.com/a-bouts/geocalc/randpos"
	"github.com/a-bouts/geocalc/route"
)

var (
	errInvalidNumber  = errors.New("invalid number specified")
	errMissingArgs    = errors.New("missing arguments")
	errTooManyArgs    = errors.New("too many arguments")
	errUnknownCommand = errors.New("unknown command")
)

type geocalc struct {
	opts    Options
	formula latlon.Formula
	format  format.Formatter
	sampler *randpos.Sampler
	stdout  io.Writer
	log     Logger
}

// describe turns an error into the message shown to the user.
func describe(err error) string {
	switch {
	case errors.Is(err, latlon.ErrOutOfRange):
		return "Value out of range"
	case errors.Is(err, latlon.ErrUndefined):
		return "Bearing is undefined"
	case errors.Is(err, latlon.ErrNoConvergence):
		return "Formula did not converge"
	case errors.Is(err, randpos.ErrSamplingFailed):
		return "Random position sampling did not converge"
	case errors.Is(err, format.ErrUnsupported):
		return "Unsupported output format for this command"
	case errors.Is(err, errInvalidNumber):
		return "Invalid number specified"
	case errors.Is(err, errMissingArgs):
		return "Missing arguments"
	case errors.Is(err, errTooManyArgs):
		return "Too many arguments"
	case errors.Is(err, errUnknownCommand):
		return "Unknown command: " + strings.TrimPrefix(err.Error(), errUnknownCommand.Error()+": ")
	}
	return err.Error()
}

func argcount(min, max, got int) error {
	if got < min {
		return errMissingArgs
	}
	if got > max {
		return errTooManyArgs
	}
	return nil
}

func (g *geocalc) run(args []string) error {
	cmd, args := args[0], args[1:]
	g.log.debugf("cmd = %s, args = %q", cmd, args)

	switch cmd {
	case "bear", "dist":
		if err := argcount(2, 2, len(args)); err != nil {
			return err
		}
		return g.bearDist(cmd, args[0], args[1])
	case "bpos":
		if err := argcount(3, 3, len(args)); err != nil {
			return err
		}
		return g.bpos(args[0], args[1], args[2])
	case "course":
		if err := argcount(3, 3, len(args)); err != nil {
			return err
		}
		return g.course(args[0], args[1], args[2])
	case "lpos":
		if err := argcount(3, 3, len(args)); err != nil {
			return err
		}
		return g.lpos(args[0], args[1], args[2])
	case "randpos":
		if err := argcount(0, 3, len(args)); err != nil {
			return err
		}
		return g.randpos(args)
	case "bench":
		if err := argcount(0, 1, len(args)); err != nil {
			return err
		}
		secs := ""
		if len(args) == 1 {
			secs = args[0]
		}
		return g.bench(secs)
	}

	return fmt.Errorf("%w: %s", errUnknownCommand, cmd)
}

// parseNumber accepts a finite decimal number. Trailing commas and blanks
// are ignored so values can be pasted from lists.
func parseNumber(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimRight(strings.TrimSpace(s), ", \t"), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, errInvalidNumber
	}
	return v, nil
}

// parseCoordinate parses "lat,lon" in decimal degrees. Ranges are checked by
// the computations.
func parseCoordinate(s string) (latlon.LatLon, error) {
	parts := strings.Split(strings.TrimRight(strings.TrimSpace(s), ", \t"), ",")
	if len(parts) != 2 {
		return latlon.LatLon{}, errInvalidNumber
	}
	lat, err := parseNumber(parts[0])
	if err != nil {
		return latlon.LatLon{}, err
	}
	lon, err := parseNumber(parts[1])
	if err != nil {
		return latlon.LatLon{}, err
	}
	return latlon.LatLon{Lat: lat, Lon: lon}, nil
}

func parseCoordinates(ss ...string) ([]latlon.LatLon, error) {
	res := make([]latlon.LatLon, 0, len(ss))
	for _, s := range ss {
		p, err := parseCoordinate(s)
		if err != nil {
			return nil, err
		}
		res = append(res, p)
	}
	return res, nil
}

// meters converts a user supplied length to meters.
func (g *geocalc) meters(v float64) float64 {
	if g.opts.KM {
		return v * 1000
	}
	return v
}

func (g *geocalc) bearDist(cmd, coor1, coor2 string) error {
	g.log.tracef("bearDist(%q, %q, %q)", cmd, coor1, coor2)

	c, err := parseCoordinates(coor1, coor2)
	if err != nil {
		return err
	}

	var result float64
	if cmd == "bear" {
		result, err = latlon.Bearing(g.formula, c[0], c[1])
	} else {
		result, err = latlon.Distance(g.formula, c[0], c[1])
		if g.opts.KM {
			result /= 1000
		}
	}
	if err != nil {
		return err
	}

	return g.format.Value(result, g.formula.Decimals())
}

func (g *geocalc) bpos(coor, bearingS, distS string) error {
	g.log.tracef("bpos(%q, %q, %q)", coor, bearingS, distS)

	c, err := parseCoordinate(coor)
	if err != nil {
		return err
	}
	bearing, err := parseNumber(bearingS)
	if err != nil {
		return err
	}
	dist, err := parseNumber(distS)
	if err != nil {
		return err
	}

	p, err := latlon.LatLonHaversine{}.Destination(c, bearing, g.meters(dist))
	if err != nil {
		return err
	}

	return g.format.Points("bpos", format.Waypoints, []latlon.LatLon{p})
}

func (g *geocalc) course(coor1, coor2, numPointsS string) error {
	g.log.tracef("course(%q, %q, %q)", coor1, coor2, numPointsS)

	c, err := parseCoordinates(coor1, coor2)
	if err != nil {
		return err
	}
	n, err := parseNumber(numPointsS)
	if err != nil {
		return err
	}
	if n < 0 || n != math.Trunc(n) || n > route.MaxPoints {
		return latlon.ErrOutOfRange
	}

	points, err := route.Course(c[0], c[1], int(n))
	if err != nil {
		return err
	}

	return g.format.Points("course", format.Route, points)
}

func (g *geocalc) lpos(coor1, coor2, fracS string) error {
	g.log.tracef("lpos(%q, %q, %q)", coor1, coor2, fracS)

	c, err := parseCoordinates(coor1, coor2)
	if err != nil {
		return err
	}
	frac, err := parseNumber(fracS)
	if err != nil {
		return err
	}

	p, err := route.Point(c[0], c[1], frac)
	if err != nil {
		return err
	}

	return g.format.Points("lpos", format.Waypoints, []latlon.LatLon{p})
}

// randpos takes an optional center, maximum and minimum distance.
func (g *geocalc) randpos(args []string) error {
	g.log.tracef("randpos(%q)", args)

	var (
		center           latlon.LatLon
		maxDist, minDist float64
		err              error
	)
	if len(args) > 0 {
		if center, err = parseCoordinate(args[0]); err != nil {
			return err
		}
	}
	if len(args) > 1 {
		if maxDist, err = parseNumber(args[1]); err != nil {
			return err
		}
	}
	if len(args) > 2 {
		if minDist, err = parseNumber(args[2]); err != nil {
			return err
		}
	}
	maxDist, minDist = g.meters(maxDist), g.meters(minDist)

	points := make([]latlon.LatLon, 0, g.opts.Count)
	for i := 0; i < g.opts.Count; i++ {
		var p latlon.LatLon
		if len(args) == 0 {
			p = g.sampler.Global()
		} else if p, err = g.sampler.Annulus(center, maxDist, minDist); err != nil {
			return err
		}
		points = append(points, p)
	}

	return g.format.Points("randpos", format.Waypoints, points)
}
