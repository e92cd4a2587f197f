// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package solar

import (
	"math"

	"cloudeng.io/astrocal/geolocation"
	"github.com/soniakeys/unit"
)

// USNO implements Calculator using the sunrise/sunset algorithm from the
// US Naval Observatory's Almanac for Computers (1990). It does not
// implement NoonCalculator.
type USNO struct{}

func (USNO) Name() string {
	return "usno"
}

// Clone implements Calculator.
func (u USNO) Clone() Calculator {
	return u
}

func normalizeDegrees(d float64) float64 {
	d = math.Mod(d, 360)
	if d < 0 {
		d += 360
	}
	return d
}

// UTCEvent implements Calculator.
func (USNO) UTCEvent(date Date, loc geolocation.Location, zenith float64, adjustForElevation bool, side Side) (float64, bool) {
	zenith = AdjustZenith(zenith, elevationFor(loc, adjustForElevation))
	lngHour := loc.Longitude / 15

	// approximate time of the event, in days.
	approx := 18.0
	if side == Rise {
		approx = 6.0
	}
	t := float64(date.YearDay()) + (approx-lngHour)/24

	meanAnomaly := unit.AngleFromDeg(0.9856*t - 3.289)
	trueLong := unit.AngleFromDeg(normalizeDegrees(
		meanAnomaly.Deg() + 1.916*meanAnomaly.Sin() + 0.020*(2*meanAnomaly).Sin() + 282.634))

	// right ascension in the same quadrant as the true longitude, in hours.
	ra := normalizeDegrees(unit.Angle(math.Atan(0.91764 * trueLong.Tan())).Deg())
	ra += math.Floor(trueLong.Deg()/90)*90 - math.Floor(ra/90)*90
	ra /= 15

	sinDec := 0.39782 * trueLong.Sin()
	cosDec := math.Cos(math.Asin(sinDec))
	lat := unit.AngleFromDeg(loc.Latitude)
	cosH := (unit.AngleFromDeg(zenith).Cos() - sinDec*lat.Sin()) / (cosDec * lat.Cos())
	if math.IsNaN(cosH) || cosH < -1 || cosH > 1 {
		return 0, false
	}

	h := unit.Angle(math.Acos(cosH)).Deg()
	if side == Rise {
		h = 360 - h
	}
	h /= 15

	localMeanTime := h + ra - 0.06571*t - 6.622
	return NormalizeHours(localMeanTime - lngHour), true
}
