// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package astrocal calculates the times of sunrise, sunset, twilight and
// related solar events for a given date and location, as well as the
// temporal hours and solar transits derived from them.
//
// A Calendar combines a date, a geolocation.Location and a
// solar.Calculator:
//
//	loc, _ := geolocation.New("Lakewood, NJ", 40.0828, -74.2094, 20, tz)
//	cal := astrocal.New(loc, astrocal.AtDate(time.Now()))
//	rise := cal.Sunrise()
//	if t, ok := rise.Time(); ok {
//		...
//	}
//
// Not every event occurs on every day: north of the arctic circle the sun
// neither rises nor sets for parts of the year and at higher latitudes
// twilight may never end. Such events are returned as absent Events, and
// Durations computed from them are absent too. Absence is an expected
// outcome, not an error; the only errors are for invalid arguments.
//
// Calendars are immutable values. Changing the date, location or
// calculator returns a new Calendar, and the location's time zone is
// always used to interpret and present times.
package astrocal
