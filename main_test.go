package main

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/a-bouts/geocalc/format"
	"github.com/a-bouts/geocalc/latlon"
)

func runArgs(args ...string) (code int, stdout, stderr string) {
	var out, errOut bytes.Buffer
	code = run(append([]string{"geocalc"}, args...), &out, &errOut)
	return code, out.String(), errOut.String()
}

func TestRun(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"dist", "0,0", "0,0"}, "0.000000\n"},
		{[]string{"dist", "1,2", "3,4"}, "314402.951024\n"},
		{[]string{"-km", "dist", "1,2", "3,4"}, "314.402951\n"},
		{[]string{"-formula", "ellipsoidal", "dist", "1,2", "3,4"}, "313705.44546923\n"},
		{[]string{"bear", "1,2", "3,4"}, "44.951998\n"},
		{[]string{"bear", "1,2,", "3,4,"}, "44.951998\n"},
		{[]string{"-formula", "ellipsoidal", "bear", "1,2", "3,4"}, "45.14416881\n"},
		{[]string{"-formula", " Ellipsoidal", "-format", "DEFAULT", "dist", "1,2", "3,4"}, "313705.44546923\n"},
		{[]string{"bpos", "1,2", "44.951998", "314402.951024"}, "3.000000,4.000000\n"},
		{[]string{"-km", "bpos", "0,0", "90", "111.19492664455873"}, "0.000000,1.000000\n"},
		{[]string{"lpos", "0,10", "0,20", "0.5"}, "0.000000,15.000000\n"},
		{[]string{"course", "0,0", "0,30", "2"}, "0.000000,0.000000\n0.000000,10.000000\n0.000000,20.000000\n0.000000,30.000000\n"},
		{[]string{"-version"}, "geocalc 0.9.0\n"},
	}
	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			code, out, errOut := runArgs(tt.args...)
			if code != 0 {
				t.Fatalf("exit code %d; stderr:\n%s", code, errOut)
			}
			if diff := cmp.Diff(tt.want, out); diff != "" {
				t.Errorf("output mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRunErrors(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{nil, "No arguments specified"},
		{[]string{"dist", "1,2"}, "Missing arguments"},
		{[]string{"dist", "1,2", "3,4", "5,6"}, "Too many arguments"},
		{[]string{"dist", "1,x", "3,4"}, "Invalid number specified"},
		{[]string{"dist", "1", "3,4"}, "Invalid number specified"},
		{[]string{"dist", "91,0", "3,4"}, "Value out of range"},
		{[]string{"bear", "1,2", "1,2"}, "Bearing is undefined"},
		{[]string{"-formula", "ellipsoidal", "dist", "0,0", "0,180"}, "Formula did not converge"},
		{[]string{"bpos", "1,2", "361", "10"}, "Value out of range"},
		{[]string{"course", "0,0", "0,30", "1.5"}, "Value out of range"},
		{[]string{"course", "0,0", "0,30", "-1"}, "Value out of range"},
		{[]string{"randpos", "0,0", "-5"}, "Value out of range"},
		{[]string{"-format", "gpx", "dist", "1,2", "3,4"}, "Unsupported output format"},
		{[]string{"course", "0,0", "0,30", "1e9"}, "Value out of range"},
		{[]string{"-format", "csv", "dist", "1,2", "3,4"}, "Option error"},
		{[]string{"-count", "0", "randpos"}, "Option error"},
		{[]string{"fly", "1,2"}, "Unknown command: fly"},
	}
	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			code, out, errOut := runArgs(tt.args...)
			if code != 1 {
				t.Errorf("exit code %d; want 1", code)
			}
			if out != "" {
				t.Errorf("stdout = %q; want nothing", out)
			}
			if !strings.Contains(errOut, tt.want) {
				t.Errorf("stderr = %q; want it to contain %q", errOut, tt.want)
			}
		})
	}
}

func TestRunFormulaFromEnv(t *testing.T) {
	t.Setenv("GEOCALC_FORMULA", "Vincenty")

	code, out, errOut := runArgs("dist", "1,2", "3,4")
	if code != 0 {
		t.Fatalf("exit code %d; stderr:\n%s", code, errOut)
	}
	if out != "313705.44546923\n" {
		t.Errorf("dist with GEOCALC_FORMULA=Vincenty printed %q; want the ellipsoidal distance", out)
	}
}

func TestDescribe(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{errInvalidNumber, "Invalid number specified"},
		{errMissingArgs, "Missing arguments"},
		{errTooManyArgs, "Too many arguments"},
		{fmt.Errorf("%w: %s", errUnknownCommand, "fly"), "Unknown command: fly"},
		{fmt.Errorf("bpos: %w", latlon.ErrOutOfRange), "Value out of range"},
		{fmt.Errorf("gpx: %w", format.ErrUnsupported), "Unsupported output format for this command"},
	}
	for _, tt := range tests {
		if got := describe(tt.err); got != tt.want {
			t.Errorf("describe(%v) = %q; want %q", tt.err, got, tt.want)
		}
	}
}

func TestRunQuiet(t *testing.T) {
	code, _, errOut := runArgs("-quiet", "-verbose", "2", "dist", "0,0", "0,0")
	if code != 0 || errOut != "" {
		t.Errorf("run() = %d, stderr %q; want 0 and no log output", code, errOut)
	}

	code, _, errOut = runArgs("-verbose", "1", "dist", "0,0", "0,0")
	if code != 0 || !strings.Contains(errOut, "level=debug") {
		t.Errorf("run() = %d, stderr %q; want debug output", code, errOut)
	}
}

func TestRunHelp(t *testing.T) {
	code, out, _ := runArgs("-h")
	if code != 0 {
		t.Errorf("run(-h) = %d; want 0", code)
	}
	if !strings.Contains(out, "Usage: geocalc") || !strings.Contains(out, "randpos [coor [maxdist [mindist]]]") {
		t.Errorf("run(-h) printed %q; want the usage", out)
	}
}

func TestRunRandpos(t *testing.T) {
	code, first, errOut := runArgs("-seed", "42", "-count", "5", "randpos")
	if code != 0 {
		t.Fatalf("exit code %d; stderr:\n%s", code, errOut)
	}
	if n := strings.Count(first, "\n"); n != 5 {
		t.Errorf("randpos -count 5 printed %d lines; want 5", n)
	}

	_, second, _ := runArgs("-seed", "42", "-count", "5", "randpos")
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("same seed gave different output (-first +second):\n%s", diff)
	}

	code, out, errOut := runArgs("-seed", "7", "-count", "3", "-format", "sql", "randpos", "12,34", "1", "0")
	if code != 0 {
		t.Fatalf("exit code %d; stderr:\n%s", code, errOut)
	}
	if strings.Count(out, "INSERT INTO randpos") != 3 {
		t.Errorf("randpos -format sql printed:\n%s", out)
	}
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, "INSERT") && !strings.Contains(line, ", 12") && !strings.Contains(line, ", 11.99") {
			t.Errorf("randpos 12,34 1 0 gave %q; want a point within a meter of 12,34", line)
		}
	}
}

func TestRunBench(t *testing.T) {
	code, out, errOut := runArgs("-seed", "1", "bench", "0.01")
	if code != 0 {
		t.Fatalf("exit code %d; stderr:\n%s", code, errOut)
	}
	if !strings.Contains(out, "haversine: ") || !strings.Contains(out, "ellipsoidal: ") {
		t.Errorf("bench printed %q; want one line per formula", out)
	}

	if code, _, _ := runArgs("bench", "0"); code != 1 {
		t.Errorf("bench 0 exit code %d; want 1", code)
	}
}
