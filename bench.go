package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/pkg/profile"

	"github.com/a-bouts/geocalc/latlon"
)

const benchLoopSecs = 2.0

type benchResult struct {
	formula latlon.Formula
	rounds  uint64
	failed  uint64
	elapsed time.Duration
}

func (r benchResult) String() string {
	secs := r.elapsed.Seconds()
	return fmt.Sprintf("%s: %d rounds (%d failed) in %.3f s, %.0f rounds/s",
		r.formula, r.rounds, r.failed, secs, float64(r.rounds)/secs)
}

// benchFormula computes distances between random point pairs with f until d
// has elapsed.
func (g *geocalc) benchFormula(f latlon.Formula, d time.Duration) benchResult {
	res := benchResult{formula: f}
	start := time.Now()
	for time.Since(start) < d {
		from, to := g.sampler.Global(), g.sampler.Global()
		if _, err := latlon.Distance(f, from, to); err != nil {
			if !errors.Is(err, latlon.ErrNoConvergence) {
				g.log.debugf("bench %s: %v", f, err)
			}
			res.failed++
		}
		res.rounds++
	}
	res.elapsed = time.Since(start)
	return res
}

func (g *geocalc) bench(secsS string) error {
	secs := benchLoopSecs
	if secsS != "" {
		var err error
		if secs, err = parseNumber(secsS); err != nil {
			return err
		}
		if secs <= 0 {
			return latlon.ErrOutOfRange
		}
	}

	if g.opts.CPUProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	}

	d := time.Duration(secs * float64(time.Second))
	for _, f := range []latlon.Formula{latlon.Spherical, latlon.Ellipsoidal} {
		res := g.benchFormula(f, d)
		g.log.debugf("bench %s done", f)
		if _, err := fmt.Fprintln(g.stdout, res); err != nil {
			return err
		}
	}

	return nil
}
