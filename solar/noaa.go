// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package solar

import (
	"math"

	"cloudeng.io/astrocal/geolocation"
	"github.com/nathan-osman/go-sunrise"
	"github.com/soniakeys/unit"
)

// NOAA implements Calculator and NoonCalculator using the sunrise
// equation as described by NOAA's solar calculator, with the solar
// position (transit and declination) provided by go-sunrise.
type NOAA struct{}

func (NOAA) Name() string {
	return "noaa"
}

// Clone implements Calculator.
func (n NOAA) Clone() Calculator {
	return n
}

// position returns the julian day of the sun's transit and the sun's
// declination in degrees.
func (NOAA) position(date Date, longitude float64) (transit, declination float64) {
	d := sunrise.MeanSolarNoon(longitude, date.Year, date.Month, date.Day)
	solarAnomaly := sunrise.SolarMeanAnomaly(d)
	equationOfCenter := sunrise.EquationOfCenter(solarAnomaly)
	eclipticLongitude := sunrise.EclipticLongitude(solarAnomaly, equationOfCenter, d)
	transit = sunrise.SolarTransit(d, solarAnomaly, eclipticLongitude)
	declination = sunrise.Declination(eclipticLongitude)
	return
}

// UTCEvent implements Calculator.
func (n NOAA) UTCEvent(date Date, loc geolocation.Location, zenith float64, adjustForElevation bool, side Side) (float64, bool) {
	zenith = AdjustZenith(zenith, elevationFor(loc, adjustForElevation))
	transit, declination := n.position(date, loc.Longitude)
	lat, dec := unit.AngleFromDeg(loc.Latitude), unit.AngleFromDeg(declination)
	cosH := (unit.AngleFromDeg(zenith).Cos() - lat.Sin()*dec.Sin()) / (lat.Cos() * dec.Cos())
	if math.IsNaN(cosH) || cosH < -1 || cosH > 1 {
		return 0, false
	}
	frac := unit.Angle(math.Acos(cosH)).Deg() / 360
	if side == Rise {
		return julianToUTCHours(date, transit-frac), true
	}
	return julianToUTCHours(date, transit+frac), true
}

// UTCNoon implements NoonCalculator.
func (n NOAA) UTCNoon(date Date, loc geolocation.Location) (float64, bool) {
	transit, _ := n.position(date, loc.Longitude)
	return julianToUTCHours(date, transit), true
}

func julianToUTCHours(date Date, jd float64) float64 {
	return NormalizeHours((jd - date.JulianDay()) * 24)
}
