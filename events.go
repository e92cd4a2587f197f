// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package astrocal

import (
	"cloudeng.io/astrocal/solar"
)

func (c Calendar) utcEvent(zenith float64, adjustForElevation bool, side solar.Side) (float64, bool) {
	return c.Calculator().UTCEvent(solar.DateOf(c.adjustedDate()), c.location, zenith, adjustForElevation, side)
}

// UTCSunrise returns the UTC time of sunrise, as fractional hours, for
// the specified zenith, adjusted for the location's elevation.
func (c Calendar) UTCSunrise(zenith float64) (float64, bool) {
	return c.utcEvent(zenith, true, solar.Rise)
}

// UTCSeaLevelSunrise is like UTCSunrise but ignores elevation.
func (c Calendar) UTCSeaLevelSunrise(zenith float64) (float64, bool) {
	return c.utcEvent(zenith, false, solar.Rise)
}

// UTCSunset returns the UTC time of sunset, as fractional hours, for
// the specified zenith, adjusted for the location's elevation.
func (c Calendar) UTCSunset(zenith float64) (float64, bool) {
	return c.utcEvent(zenith, true, solar.Set)
}

// UTCSeaLevelSunset is like UTCSunset but ignores elevation.
func (c Calendar) UTCSeaLevelSunset(zenith float64) (float64, bool) {
	return c.utcEvent(zenith, false, solar.Set)
}

// Sunrise returns sunrise, taking elevation into account, for the
// calendar's date. It is absent if the sun does not rise that day.
func (c Calendar) Sunrise() Event {
	h, ok := c.UTCSunrise(GeometricZenith)
	return c.eventFromUTCHours(h, ok, true)
}

// SeaLevelSunrise returns sunrise ignoring elevation. This is the basis
// for dawn and twilight calculations since the amount of light at a
// given solar depression does not depend on elevation.
func (c Calendar) SeaLevelSunrise() Event {
	h, ok := c.UTCSeaLevelSunrise(GeometricZenith)
	return c.eventFromUTCHours(h, ok, true)
}

// SunriseOffsetByDegrees returns the time in the morning at which the
// sun's center is at the specified zenith, e.g. 108 for the start of
// astronomical twilight.
func (c Calendar) SunriseOffsetByDegrees(zenith float64) Event {
	h, ok := c.UTCSunrise(zenith)
	return c.eventFromUTCHours(h, ok, true)
}

// BeginCivilTwilight returns the time the sun is 6 degrees below the
// horizon in the morning.
func (c Calendar) BeginCivilTwilight() Event {
	return c.SunriseOffsetByDegrees(CivilZenith)
}

// BeginNauticalTwilight returns the time the sun is 12 degrees below the
// horizon in the morning.
func (c Calendar) BeginNauticalTwilight() Event {
	return c.SunriseOffsetByDegrees(NauticalZenith)
}

// BeginAstronomicalTwilight returns the time the sun is 18 degrees below
// the horizon in the morning.
func (c Calendar) BeginAstronomicalTwilight() Event {
	return c.SunriseOffsetByDegrees(AstronomicalZenith)
}

// Sunset returns sunset, taking elevation into account, for the
// calendar's date. It is absent if the sun does not set that day.
func (c Calendar) Sunset() Event {
	h, ok := c.UTCSunset(GeometricZenith)
	return c.eventFromUTCHours(h, ok, false)
}

// SeaLevelSunset returns sunset ignoring elevation.
func (c Calendar) SeaLevelSunset() Event {
	h, ok := c.UTCSeaLevelSunset(GeometricZenith)
	return c.eventFromUTCHours(h, ok, false)
}

// SunsetOffsetByDegrees returns the time in the evening at which the
// sun's center is at the specified zenith.
func (c Calendar) SunsetOffsetByDegrees(zenith float64) Event {
	h, ok := c.UTCSunset(zenith)
	return c.eventFromUTCHours(h, ok, false)
}

// EndCivilTwilight returns the time the sun is 6 degrees below the
// horizon in the evening.
func (c Calendar) EndCivilTwilight() Event {
	return c.SunsetOffsetByDegrees(CivilZenith)
}

// EndNauticalTwilight returns the time the sun is 12 degrees below the
// horizon in the evening.
func (c Calendar) EndNauticalTwilight() Event {
	return c.SunsetOffsetByDegrees(NauticalZenith)
}

// EndAstronomicalTwilight returns the time the sun is 18 degrees below
// the horizon in the evening.
func (c Calendar) EndAstronomicalTwilight() Event {
	return c.SunsetOffsetByDegrees(AstronomicalZenith)
}
