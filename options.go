package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/peterbourgon/ff"
)

type Options struct {
	Format     string `validate:"oneof=default gpx sql"`
	Formula    string `validate:"oneof=haversine spherical ellipsoidal karney vincenty wgs84"`
	Count      int    `validate:"gte=1"`
	KM         bool
	Seed       int64
	Verbose    int `validate:"gte=0"`
	Quiet      bool
	CPUProfile bool
	Version    bool
	License    bool
}

func defaultSeed() int64 {
	return time.Now().UnixNano() ^ int64(os.Getpid())
}

// parseOptions reads flags from args, then GEOCALC_* environment variables,
// which may come from a .env file in the working directory.
// Usage goes to out.
func parseOptions(progname string, args []string, out io.Writer) (Options, []string, error) {
	// a missing .env is fine
	_ = godotenv.Load()

	fs := flag.NewFlagSet(progname, flag.ContinueOnError)
	fs.SetOutput(out)
	fs.Usage = func() {
		fmt.Fprintf(out, usage, progname)
		fs.PrintDefaults()
	}
	var (
		format     = fs.String("format", "default", "output format: default, gpx or sql")
		formula    = fs.String("formula", "haversine", "distance formula: haversine or ellipsoidal")
		count      = fs.Int("count", 1, "number of random positions for randpos")
		km         = fs.Bool("km", false, "use kilometers instead of meters for input and output")
		seed       = fs.Int64("seed", 0, "random seed, 0 derives one from the time and process id")
		verbose    = fs.Int("verbose", 0, "verbosity level")
		quiet      = fs.Bool("quiet", false, "only print errors")
		cpuprofile = fs.Bool("cpuprofile", false, "write a CPU profile while running bench")
		version    = fs.Bool("version", false, "print version information")
		license    = fs.Bool("license", false, "print the software license")
	)
	if err := ff.Parse(fs, args, ff.WithEnvVarPrefix("GEOCALC")); err != nil {
		return Options{}, nil, err
	}

	// names are matched the way latlon.ParseFormula matches them
	o := Options{
		Format:     strings.ToLower(strings.TrimSpace(*format)),
		Formula:    strings.ToLower(strings.TrimSpace(*formula)),
		Count:      *count,
		KM:         *km,
		Seed:       *seed,
		Verbose:    *verbose,
		Quiet:      *quiet,
		CPUProfile: *cpuprofile,
		Version:    *version,
		License:    *license,
	}
	if o.Format == "" {
		o.Format = "default"
	}
	if o.Seed == 0 {
		o.Seed = defaultSeed()
	}

	if err := validator.New().Struct(o); err != nil {
		return Options{}, nil, err
	}

	return o, fs.Args(), nil
}
