// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package config_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
	_ "time/tzdata"

	"cloudeng.io/astrocal/config"
	"cloudeng.io/logging/ctxlog"
)

const locationsSpec = `
calculator: usno
date: 2024-03-20
locations:
  - name: Lakewood, NJ
    latitude: 40.0828
    longitude: -74.2094
    elevation: 20
    timezone: America/New_York
  - name: Jerusalem
    latitude: 31.778
    longitude: 35.2354
    elevation: 754
    timezone: Asia/Jerusalem
`

func TestParse(t *testing.T) {
	cfg, err := config.Parse([]byte(locationsSpec))
	if err != nil {
		t.Fatal(err)
	}
	calc, err := cfg.SolarCalculator()
	if err != nil {
		t.Fatal(err)
	}
	if got, want := calc.Name(), "usno"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	cals, err := cfg.Calendars()
	if err != nil {
		t.Fatal(err)
	}
	if got, want := len(cals), 2; got != want {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i, zone := range []string{"America/New_York", "Asia/Jerusalem"} {
		cal := cals[i]
		if got, want := cal.Date().Location().String(), zone; got != want {
			t.Errorf("got %v, want %v", got, want)
		}
		if got, want := cal.Date().Format(time.DateTime), "2024-03-20 00:00:00"; got != want {
			t.Errorf("got %v, want %v", got, want)
		}
		if got, want := cal.Calculator().Name(), "usno"; got != want {
			t.Errorf("got %v, want %v", got, want)
		}
		if !cal.Sunrise().IsSet() {
			t.Errorf("%v: expected a sunrise", cal)
		}
	}

	cal, err := cfg.Calendar("Jerusalem")
	if err != nil {
		t.Fatal(err)
	}
	if got, want := cal.Location().Elevation, 754.0; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if !cal.Equal(cals[1]) {
		t.Errorf("%v != %v", cal, cals[1])
	}
	if _, err := cfg.Calendar("Atlantis"); err == nil || !strings.Contains(err.Error(), `unknown location: "Atlantis"`) {
		t.Errorf("unexpected or missing error: %v", err)
	}
}

func TestDefaults(t *testing.T) {
	cfg, err := config.Parse([]byte(`
locations:
  - name: Greenwich
    latitude: 51.4769
    longitude: 0
`))
	if err != nil {
		t.Fatal(err)
	}
	cal, err := cfg.Calendar("Greenwich")
	if err != nil {
		t.Fatal(err)
	}
	if got, want := cal.Calculator().Name(), "noaa"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := cal.Date().Location(), time.UTC; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if d := time.Since(cal.Date()); d < 0 || d > time.Minute {
		t.Errorf("expected the current time: %v", cal.Date())
	}
}

func TestValidate(t *testing.T) {
	_, err := config.Parse([]byte(`
calculator: sundial
locations:
  - name: a
    latitude: 91
    timezone: UTC
  - name: a
    timezone: UTC
  - latitude: 10
    longitude: 20
  - name: b
    timezone: Nowhere/Special
`))
	if err == nil {
		t.Fatal("expected an error")
	}
	for _, msg := range []string{
		`unknown solar calculator "sundial"`,
		"latitude 91",
		`duplicate location: "a"`,
		"location at (10, 20) has no name",
		"b: unknown time zone Nowhere/Special",
	} {
		if !strings.Contains(err.Error(), msg) {
			t.Errorf("%q does not contain %q", err, msg)
		}
	}

	_, err = config.Parse([]byte(`
locations:
  - name: a
    altitude: 10
`))
	if err == nil || !strings.Contains(err.Error(), "altitude") {
		t.Errorf("unexpected or missing error: %v", err)
	}
}

func TestParseFile(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "locations.yaml")
	if err := os.WriteFile(filename, []byte(locationsSpec), 0600); err != nil {
		t.Fatal(err)
	}
	var out bytes.Buffer
	ctx := ctxlog.NewJSONLogger(context.Background(), &out, nil)
	cfg, err := config.ParseFile(ctx, filename)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := len(cfg.Locations), 2; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := out.String(), "loaded solar calendar config"; !strings.Contains(got, want) {
		t.Errorf("%q does not contain %q", got, want)
	}

	if _, err := config.ParseFile(ctx, filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Errorf("expected an error")
	}

	// The marshaled form can be parsed again.
	buf, err := cfg.Marshal()
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(buf), "date: \"2024-03-20T00:00:00Z\"") && !strings.Contains(string(buf), "date: 2024-03-20T00:00:00Z") {
		t.Errorf("unexpected date in %s", buf)
	}
	reparsed, err := config.Parse(buf)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := reparsed.Locations, cfg.Locations; len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("got %v, want %v", got, want)
	}
}
