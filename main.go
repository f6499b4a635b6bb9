package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/a-bouts/geocalc/format"
	"github.com/a-bouts/geocalc/latlon"
	"github.com/a-bouts/geocalc/randpos"
)

const version = "0.9.0"

const license = `This program is free software; you can redistribute it and/or modify it
under the terms of the GNU General Public License as published by the
Free Software Foundation; either version 2 of the License, or (at your
option) any later version.

This program is distributed in the hope that it will be useful, but
WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
See the GNU General Public License for more details.
`

const usage = `Usage: %s [options] <command> [args]

Coordinates are written lat,lon in decimal degrees.

Commands:
  bear <coor1> <coor2>                initial bearing (0-360)
  dist <coor1> <coor2>                distance
  bpos <coor> <bearing> <length>      position after moving length from coor
  course <coor1> <coor2> <numpoints>  intermediate points between two positions
  lpos <coor1> <coor2> <fracdist>     position a fraction along the line
  randpos [coor [maxdist [mindist]]]  random positions
  bench [seconds]                     benchmark the distance formulas

Options:
`

func main() {
	os.Exit(run(os.Args, os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	progname := filepath.Base(args[0])

	opts, rest, err := parseOptions(progname, args[1:], stdout)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	log := newLogger(stderr, progname, opts.Verbose, opts.Quiet)
	if err != nil {
		log.errorf("Option error: %v", err)
		return 1
	}
	log.debugf("Using verbose level %d, seed %d", opts.Verbose, opts.Seed)

	switch {
	case opts.Version:
		fmt.Fprintf(stdout, "%s %s\n", progname, version)
		return 0
	case opts.License:
		fmt.Fprint(stdout, license)
		return 0
	case len(rest) == 0:
		log.errorln("No arguments specified")
		return 1
	}

	formula, err := latlon.ParseFormula(opts.Formula)
	if err != nil {
		log.errorln(err)
		return 1
	}
	f, err := format.New(opts.Format, stdout)
	if err != nil {
		log.errorln(err)
		return 1
	}

	g := geocalc{
		opts:    opts,
		formula: formula,
		format:  f,
		sampler: randpos.New(opts.Seed),
		stdout:  stdout,
		log:     log,
	}
	if err := g.run(rest); err != nil {
		log.errorln(describe(err))
		return 1
	}

	return 0
}
