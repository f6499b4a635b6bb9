// Package gpx writes GPX 1.1 documents.
package gpx

import (
	"encoding/xml"
	"io"

	"github.com/shopspring/decimal"
)

const (
	namespace = "http://www.topografix.com/GPX/1/1"
	version   = "1.1"
)

// Decimals is the precision of written coordinates.
const Decimals = 6

type Waypoint struct {
	Lat     float64
	Lon     float64
	Name    string
	Comment string
}

type Route struct {
	Name   string
	Points []Waypoint
}

type Document struct {
	Creator   string
	Waypoints []Waypoint
	Routes    []Route
}

type gpxDoc struct {
	XMLName xml.Name `xml:"gpx"`
	Xmlns   string   `xml:"xmlns,attr"`
	Version string   `xml:"version,attr"`
	Creator string   `xml:"creator,attr"`
	Wpts    []gpxWpt `xml:"wpt"`
	Rtes    []gpxRte `xml:"rte"`
}

type gpxWpt struct {
	Lat  string `xml:"lat,attr"`
	Lon  string `xml:"lon,attr"`
	Name string `xml:"name,omitempty"`
	Cmt  string `xml:"cmt,omitempty"`
}

type gpxRte struct {
	Name   string   `xml:"name,omitempty"`
	Rtepts []gpxWpt `xml:"rtept"`
}

// Number formats v rounded to Decimals with trailing zeros removed.
func Number(v float64) string {
	return decimal.NewFromFloat(v).Round(Decimals).String()
}

func toWpt(w Waypoint) gpxWpt {
	return gpxWpt{Lat: Number(w.Lat), Lon: Number(w.Lon), Name: w.Name, Cmt: w.Comment}
}

// Write encodes doc to w. Names and comments are escaped.
func Write(w io.Writer, doc Document) error {
	g := gpxDoc{
		Xmlns:   namespace,
		Version: version,
		Creator: doc.Creator,
	}
	for _, wp := range doc.Waypoints {
		g.Wpts = append(g.Wpts, toWpt(wp))
	}
	for _, r := range doc.Routes {
		rte := gpxRte{Name: r.Name}
		for _, wp := range r.Points {
			rte.Rtepts = append(rte.Rtepts, toWpt(wp))
		}
		g.Rtes = append(g.Rtes, rte)
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(g); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}
