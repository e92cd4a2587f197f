// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package astrocal

import (
	"errors"
	"fmt"
	"time"

	"cloudeng.io/astrocal/solar"
)

// ErrInvalidHours is returned by LocalMeanTime for hours outside of [0, 24).
var ErrInvalidHours = errors.New("hours must be at least 0 and less than 24")

// TemporalHour returns one twelfth of the time between sea level sunrise
// and sea level sunset. It is absent if either is absent.
func (c Calendar) TemporalHour() Duration {
	return TemporalHourBetween(c.SeaLevelSunrise(), c.SeaLevelSunset())
}

// TemporalHourBetween returns one twelfth of the time between start and
// end, in whole seconds. It is absent if either is absent.
func TemporalHourBetween(start, end Event) Duration {
	s, sok := start.Time()
	e, eok := end.Time()
	if !sok || !eok {
		return Duration{}
	}
	return DurationOf(time.Duration((e.Unix()-s.Unix())/12) * time.Second)
}

// SunTransit returns the time at which the sun crosses the meridian.
// Calculators that implement solar.NoonCalculator provide it directly,
// otherwise it is the midpoint of sea level sunrise and sunset, which may
// differ slightly from the true transit as the sun's declination changes
// over the course of the day.
func (c Calendar) SunTransit() Event {
	if nc, ok := c.Calculator().(solar.NoonCalculator); ok {
		h, ok := nc.UTCNoon(solar.DateOf(c.adjustedDate()), c.location)
		return c.eventFromUTCHours(h, ok, false)
	}
	return SunTransitBetween(c.SeaLevelSunrise(), c.SeaLevelSunset())
}

// SunTransitBetween returns the midpoint of start and end, computed as
// start plus six temporal hours.
func SunTransitBetween(start, end Event) Event {
	return start.Add(TemporalHourBetween(start, end).Mul(6))
}

// SolarMidnight returns the midpoint between the sun's transit on the
// calendar's date and its transit on the following day.
func (c Calendar) SolarMidnight() Event {
	today := c.SunTransit()
	tomorrow := c.WithDate(c.date.AddDate(0, 0, 1)).SunTransit()
	t, tok := today.Time()
	n, nok := tomorrow.Time()
	if !tok || !nok {
		return Event{}
	}
	return today.Add(DurationOf(time.Duration((n.Unix()-t.Unix())/2) * time.Second))
}

// LocalMeanTime returns the time on the calendar's date at which local
// mean time at the location's longitude is hours, e.g. 12 for mean noon.
// An error wrapping ErrInvalidHours is returned if hours is not in [0, 24).
func (c Calendar) LocalMeanTime(hours float64) (Event, error) {
	if !(hours >= 0 && hours < 24) {
		return Event{}, fmt.Errorf("local mean time %v: %w", hours, ErrInvalidHours)
	}
	year, month, day := c.adjustedDate().Date()
	std := float64(c.location.StandardOffset(c.date).Milliseconds()) / float64(HourMillis)
	t := utcHoursToTime(year, month, day, hours-std)
	return EventAt(t.In(c.location.Zone())).AddMillis(-c.location.LocalMeanTimeOffset(c.date).Milliseconds()), nil
}
