// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package config provides YAML configuration of a set of named locations
// and the solar calculator to use for them, e.g.:
//
//	calculator: noaa
//	date: 2024-03-20
//	locations:
//	  - name: Lakewood, NJ
//	    latitude: 40.0828
//	    longitude: -74.2094
//	    elevation: 20
//	    timezone: America/New_York
package config

import (
	"context"
	"fmt"
	"time"

	"cloudeng.io/astrocal"
	"cloudeng.io/astrocal/geolocation"
	"cloudeng.io/astrocal/solar"
	"cloudeng.io/cmdutil/cmdyaml"
	"cloudeng.io/errors"
	"cloudeng.io/logging/ctxlog"
	"gopkg.in/yaml.v3"
)

// Location is the configuration for a single location.
type Location struct {
	Name      string  `yaml:"name"`
	Latitude  float64 `yaml:"latitude"`
	Longitude float64 `yaml:"longitude"`
	Elevation float64 `yaml:"elevation"`
	TimeZone  string  `yaml:"timezone"`
}

// Config represents a set of locations and the calculator to use for them.
type Config struct {
	// Calculator is the name of the solar calculator, see solar.Lookup.
	// The default is solar.Default().
	Calculator string `yaml:"calculator"`
	// Date, if set, is the date for calendars created from this config,
	// the default is the current time.
	Date      cmdyaml.FlexTime `yaml:"date"`
	Locations []Location       `yaml:"locations"`
}

// Parse parses and validates the YAML configuration in spec. Unknown
// fields are reported as errors.
func Parse(spec []byte) (Config, error) {
	var cfg Config
	if err := cmdyaml.ParseConfigStrict(spec, &cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ParseFile is like Parse but reads the configuration from filename.
func ParseFile(ctx context.Context, filename string) (Config, error) {
	var cfg Config
	if err := cmdyaml.ParseConfigFileStrict(ctx, filename, &cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%v: %w", filename, err)
	}
	ctxlog.Logger(ctx).Info("loaded solar calendar config", "file", filename, "calculator", cfg.Calculator, "locations", len(cfg.Locations))
	return cfg, nil
}

// Marshal returns the YAML representation of cfg. The date, if set, is
// written in time.RFC3339 format.
func (cfg Config) Marshal() ([]byte, error) {
	out := struct {
		Calculator string     `yaml:"calculator,omitempty"`
		Date       string     `yaml:"date,omitempty"`
		Locations  []Location `yaml:"locations"`
	}{
		Calculator: cfg.Calculator,
		Locations:  cfg.Locations,
	}
	if when := time.Time(cfg.Date); !when.IsZero() {
		out.Date = when.Format(time.RFC3339)
	}
	return yaml.Marshal(out)
}

// Validate returns an error describing all of the problems with cfg.
func (cfg Config) Validate() error {
	errs := errors.M{}
	if len(cfg.Calculator) > 0 {
		_, err := solar.Lookup(cfg.Calculator)
		errs.Append(err)
	}
	seen := map[string]bool{}
	for _, l := range cfg.Locations {
		if seen[l.Name] {
			errs.Append(fmt.Errorf("duplicate location: %q", l.Name))
		}
		seen[l.Name] = true
		_, err := l.Location()
		errs.Append(err)
	}
	return errs.Err()
}

// Location returns the geolocation.Location for l.
func (l Location) Location() (geolocation.Location, error) {
	if len(l.Name) == 0 {
		return geolocation.Location{}, fmt.Errorf("location at (%v, %v) has no name", l.Latitude, l.Longitude)
	}
	tz, err := time.LoadLocation(l.TimeZone)
	if err != nil {
		return geolocation.Location{}, fmt.Errorf("%v: %w", l.Name, err)
	}
	return geolocation.New(l.Name, l.Latitude, l.Longitude, l.Elevation, tz)
}

// SolarCalculator returns the configured calculator.
func (cfg Config) SolarCalculator() (solar.Calculator, error) {
	if len(cfg.Calculator) == 0 {
		return solar.Default(), nil
	}
	return solar.Lookup(cfg.Calculator)
}

// Location returns the named location.
func (cfg Config) Location(name string) (geolocation.Location, error) {
	for _, l := range cfg.Locations {
		if l.Name == name {
			return l.Location()
		}
	}
	return geolocation.Location{}, fmt.Errorf("unknown location: %q", name)
}

// Calendar returns a Calendar for the named location.
func (cfg Config) Calendar(name string) (astrocal.Calendar, error) {
	loc, err := cfg.Location(name)
	if err != nil {
		return astrocal.Calendar{}, err
	}
	return cfg.calendar(loc)
}

// Calendars returns a Calendar for each configured location, in the order
// in which they appear.
func (cfg Config) Calendars() ([]astrocal.Calendar, error) {
	cals := make([]astrocal.Calendar, 0, len(cfg.Locations))
	for _, l := range cfg.Locations {
		loc, err := l.Location()
		if err != nil {
			return nil, err
		}
		cal, err := cfg.calendar(loc)
		if err != nil {
			return nil, err
		}
		cals = append(cals, cal)
	}
	return cals, nil
}

func (cfg Config) calendar(loc geolocation.Location) (astrocal.Calendar, error) {
	calc, err := cfg.SolarCalculator()
	if err != nil {
		return astrocal.Calendar{}, err
	}
	opts := []astrocal.Option{astrocal.UsingCalculator(calc)}
	if when := time.Time(cfg.Date); !when.IsZero() {
		// dates parsed as UTC, including those without a zone, are
		// interpreted in the location's zone.
		if when.Location() == time.UTC {
			y, m, d := when.Date()
			when = time.Date(y, m, d, when.Hour(), when.Minute(), when.Second(), when.Nanosecond(), loc.Zone())
		}
		opts = append(opts, astrocal.AtDate(when))
	}
	return astrocal.New(loc, opts...), nil
}
