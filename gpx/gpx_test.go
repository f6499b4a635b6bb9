package gpx

import (
	"bytes"
	"encoding/xml"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNumber(t *testing.T) {
	tests := []struct {
		v    float64
		want string
	}{
		{0, "0"},
		{-2, "-2"},
		{1.5, "1.5"},
		{0.1234567, "0.123457"},
		{-179.9999999, "-180"},
		{12.3400001, "12.34"},
	}
	for _, tt := range tests {
		if got := Number(tt.v); got != tt.want {
			t.Errorf("Number(%v) = %q; want %q", tt.v, got, tt.want)
		}
	}
}

func TestWrite(t *testing.T) {
	doc := Document{
		Creator: "geocalc",
		Waypoints: []Waypoint{
			{Lat: 1.5, Lon: -2, Name: "1", Comment: "a & <b>"},
		},
		Routes: []Route{
			{Name: "course", Points: []Waypoint{{Lat: 0, Lon: 0}, {Lat: 0.1234567, Lon: 10}}},
		},
	}

	var buf bytes.Buffer
	if err := Write(&buf, doc); err != nil {
		t.Fatal(err)
	}

	want := `<?xml version="1.0" encoding="UTF-8"?>
<gpx xmlns="http://www.topografix.com/GPX/1/1" version="1.1" creator="geocalc">
  <wpt lat="1.5" lon="-2">
    <name>1</name>
    <cmt>a &amp; &lt;b&gt;</cmt>
  </wpt>
  <rte>
    <name>course</name>
    <rtept lat="0" lon="0"></rtept>
    <rtept lat="0.123457" lon="10"></rtept>
  </rte>
</gpx>
`
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("Write() mismatch (-want +got):\n%s", diff)
	}
}

func TestWriteIsWellFormed(t *testing.T) {
	doc := Document{
		Creator: `"quoted" & <tagged>`,
		Waypoints: []Waypoint{
			{Lat: 89.999999, Lon: 180, Name: "</name>", Comment: "x'y"},
		},
	}

	var buf bytes.Buffer
	if err := Write(&buf, doc); err != nil {
		t.Fatal(err)
	}

	var back gpxDoc
	if err := xml.Unmarshal(buf.Bytes(), &back); err != nil {
		t.Fatalf("Unmarshal(Write()) error %v\n%s", err, buf.String())
	}
	if back.Creator != doc.Creator {
		t.Errorf("creator = %q; want %q", back.Creator, doc.Creator)
	}
	if len(back.Wpts) != 1 || back.Wpts[0].Name != "</name>" || back.Wpts[0].Cmt != "x'y" {
		t.Errorf("waypoints = %+v; want the escaped name and comment back", back.Wpts)
	}
}
