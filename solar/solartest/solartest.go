// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package solartest provides deterministic implementations of
// solar.Calculator for use in tests.
package solartest

import (
	"cloudeng.io/astrocal/geolocation"
	"cloudeng.io/astrocal/solar"
)

// Linear is a solar.Calculator whose events move away from the geometric
// sunrise and sunset times by MinutesPerDegree for every degree of zenith
// beyond 90. Elevation is ignored.
type Linear struct {
	Sunrise          float64 // UTC hour of sunrise at the geometric zenith.
	Sunset           float64 // UTC hour of sunset at the geometric zenith.
	MinutesPerDegree float64
	// MaxZenith, if non-zero, is the largest zenith for which an event
	// exists.
	MaxZenith float64
	// Never, if set, causes every event to be absent.
	Never bool
}

func (l Linear) Name() string {
	return "linear"
}

// Clone implements solar.Calculator.
func (l Linear) Clone() solar.Calculator {
	return l
}

// UTCEvent implements solar.Calculator.
func (l Linear) UTCEvent(_ solar.Date, _ geolocation.Location, zenith float64, _ bool, side solar.Side) (float64, bool) {
	if l.Never || (l.MaxZenith != 0 && zenith > l.MaxZenith) {
		return 0, false
	}
	shift := (zenith - solar.GeometricZenith) * l.MinutesPerDegree / 60
	if side == solar.Rise {
		return solar.NormalizeHours(l.Sunrise - shift), true
	}
	return solar.NormalizeHours(l.Sunset + shift), true
}

// Noon extends Linear with a fixed UTC transit time.
type Noon struct {
	Linear
	Noon float64
}

func (n Noon) Name() string {
	return "linear-noon"
}

// Clone implements solar.Calculator.
func (n Noon) Clone() solar.Calculator {
	return n
}

// UTCNoon implements solar.NoonCalculator.
func (n Noon) UTCNoon(solar.Date, geolocation.Location) (float64, bool) {
	if n.Never {
		return 0, false
	}
	return n.Noon, true
}
