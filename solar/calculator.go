// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package solar provides interchangeable algorithms for calculating the
// UTC time at which the sun reaches a given zenith angle on a given date
// and location.
//
// A Calculator never fails for lack of an event: when the sun does not
// reach the requested zenith on the requested date, as happens during
// polar day or night, it returns ok == false.
package solar

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"cloudeng.io/astrocal/geolocation"
	"github.com/soniakeys/unit"
)

// Zenith angles, in degrees, of commonly used solar events.
const (
	// GeometricZenith is the sun's center on the mathematical horizon.
	GeometricZenith = 90.0
	// CivilZenith is the sun 6 degrees below the horizon.
	CivilZenith = 96.0
	// NauticalZenith is the sun 12 degrees below the horizon.
	NauticalZenith = 102.0
	// AstronomicalZenith is the sun 18 degrees below the horizon.
	AstronomicalZenith = 108.0
)

const (
	// Refraction is the average atmospheric refraction at the horizon, in degrees.
	Refraction = 34 / 60.0
	// SolarRadius is the sun's average apparent radius, in degrees.
	SolarRadius = 16 / 60.0
	// EarthRadius is the earth's radius in kilometers.
	EarthRadius = 6356.9
)

// Side selects the morning (rise) or evening (set) event.
type Side int

const (
	Rise Side = iota
	Set
)

func (s Side) String() string {
	if s == Rise {
		return "rise"
	}
	return "set"
}

// Calculator is implemented by solar position algorithms.
type Calculator interface {
	// Name identifies the algorithm.
	Name() string

	// UTCEvent returns the time, as fractional hours in [0, 24) of the
	// UTC day, at which the sun reaches zenith degrees on date at loc.
	// If adjustForElevation is true the location's elevation is taken
	// into account for the geometric zenith. ok is false if the sun never
	// reaches the zenith on that date.
	UTCEvent(date Date, loc geolocation.Location, zenith float64, adjustForElevation bool, side Side) (hour float64, ok bool)

	// Clone returns an independent copy of the calculator.
	Clone() Calculator
}

// NoonCalculator is implemented by calculators that can compute the sun's
// transit directly rather than as the midpoint of sunrise and sunset.
type NoonCalculator interface {
	Calculator
	UTCNoon(date Date, loc geolocation.Location) (hour float64, ok bool)
}

// ElevationAdjustment returns the dip of the horizon, in degrees, seen
// from elevation meters above sea level.
func ElevationAdjustment(elevation float64) float64 {
	return unit.Angle(math.Acos(EarthRadius / (EarthRadius + elevation/1000))).Deg()
}

// AdjustZenith returns the zenith to be used in calculations for the
// requested zenith. Only the geometric zenith is adjusted, by the solar
// radius, refraction and the elevation dip, so that sunrise and sunset
// are when the sun's upper limb appears on the visible horizon. Any other
// zenith, e.g. those used for twilight, is returned unchanged.
func AdjustZenith(zenith, elevation float64) float64 {
	if zenith != GeometricZenith {
		return zenith
	}
	return zenith + SolarRadius + Refraction + ElevationAdjustment(elevation)
}

// NormalizeHours returns h mapped into [0, 24).
func NormalizeHours(h float64) float64 {
	h = math.Mod(h, 24)
	if h < 0 {
		h += 24
	}
	return h
}

func elevationFor(loc geolocation.Location, adjustForElevation bool) float64 {
	if adjustForElevation {
		return loc.Elevation
	}
	return 0
}

var registry = map[string]func() Calculator{
	"noaa": func() Calculator { return NOAA{} },
	"usno": func() Calculator { return USNO{} },
}

// Default returns the calculator used when none is specified, NOAA.
func Default() Calculator {
	return NOAA{}
}

// Names returns the names accepted by Lookup.
func Names() []string {
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}

// Lookup returns the calculator with the specified name, names are case
// insensitive.
func Lookup(name string) (Calculator, error) {
	fn, ok := registry[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("unknown solar calculator %q, must be one of: %v", name, strings.Join(Names(), ", "))
	}
	return fn(), nil
}
