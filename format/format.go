// Package format renders command results as plain text, GPX or SQL.
package format

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/a-bouts/geocalc/gpx"
	"github.com/a-bouts/geocalc/latlon"
)

// Decimals is the precision of printed coordinates.
const Decimals = 6

// ErrUnsupported is returned when a format cannot render a kind of result.
var ErrUnsupported = errors.New("unsupported output format")

// Kind tells how a list of points relates.
type Kind int

const (
	// Waypoints are independent positions.
	Waypoints Kind = iota
	// Route is an ordered path.
	Route
)

// Formatter writes the result of one command.
type Formatter interface {
	// Value writes a scalar rounded to decimals.
	Value(v float64, decimals int) error
	// Points writes positions produced by the command named cmd.
	Points(cmd string, kind Kind, points []latlon.LatLon) error
}

// Names lists the accepted format names.
var Names = []string{"default", "gpx", "sql"}

// New returns the formatter called name writing to w. An empty name selects
// the default format.
func New(name string, w io.Writer) (Formatter, error) {
	switch name {
	case "", "default":
		return plain{w: w}, nil
	case "gpx":
		return gpxFormat{w: w}, nil
	case "sql":
		return sqlFormat{w: w}, nil
	}
	return nil, fmt.Errorf("%s: Unknown output format", name)
}

type plain struct {
	w io.Writer
}

func (p plain) Value(v float64, decimals int) error {
	_, err := fmt.Fprintln(p.w, decimal.NewFromFloat(v).StringFixed(int32(decimals)))
	return err
}

func (p plain) Points(cmd string, kind Kind, points []latlon.LatLon) error {
	for _, pt := range points {
		if _, err := fmt.Fprintf(p.w, "%s,%s\n", fixed(pt.Lat), fixed(pt.Lon)); err != nil {
			return err
		}
	}
	return nil
}

func fixed(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(Decimals)
}

type gpxFormat struct {
	w io.Writer
}

func (g gpxFormat) Value(v float64, decimals int) error {
	return fmt.Errorf("gpx: %w", ErrUnsupported)
}

func (g gpxFormat) Points(cmd string, kind Kind, points []latlon.LatLon) error {
	doc := gpx.Document{Creator: "geocalc"}

	wpts := make([]gpx.Waypoint, 0, len(points))
	for i, pt := range points {
		wpts = append(wpts, gpx.Waypoint{Lat: pt.Lat, Lon: pt.Lon, Name: fmt.Sprintf("%d", i+1)})
	}

	switch kind {
	case Route:
		doc.Routes = []gpx.Route{{Name: cmd, Points: wpts}}
	default:
		for i := range wpts {
			wpts[i].Comment = cmd
		}
		doc.Waypoints = wpts
	}

	return gpx.Write(g.w, doc)
}

type sqlFormat struct {
	w io.Writer
}

func (s sqlFormat) Value(v float64, decimals int) error {
	return fmt.Errorf("sql: %w", ErrUnsupported)
}

func (s sqlFormat) Points(cmd string, kind Kind, points []latlon.LatLon) error {
	var b strings.Builder

	table := sqlIdentifier(cmd)
	b.WriteString("BEGIN;\n")
	fmt.Fprintf(&b, "CREATE TABLE IF NOT EXISTS %s (num INTEGER, lat REAL, lon REAL);\n", table)
	for i, pt := range points {
		fmt.Fprintf(&b, "INSERT INTO %s (num, lat, lon) VALUES (%d, %s, %s);\n",
			table, i+1, gpx.Number(pt.Lat), gpx.Number(pt.Lon))
	}
	b.WriteString("COMMIT;\n")

	_, err := io.WriteString(s.w, b.String())
	return err
}

// sqlIdentifier keeps letters, digits and underscores of s.
func sqlIdentifier(s string) string {
	id := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			return r
		}
		return -1
	}, s)
	if id == "" {
		return "points"
	}
	return id
}
