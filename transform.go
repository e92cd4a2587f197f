// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package astrocal

import (
	"math"
	"time"
)

// eventFromUTCHours converts a time expressed as fractional hours of the
// UTC day, as returned by a solar.Calculator, to an Event on the
// calendar's date in the location's time zone.
//
// The calculator's date is the local date but its result is in UTC, so the
// UTC date of the event may be the day before or after. The longitude is
// used to detect this: a sunrise more than 18 hours after local midnight
// must have occurred on the previous UTC day and a sunset less than 6
// hours after it on the next. This matters when the time zone is far from
// the longitude's natural one, e.g. GMT used for California.
func (c Calendar) eventFromUTCHours(hours float64, ok bool, sunrise bool) Event {
	if !ok || math.IsNaN(hours) || math.IsInf(hours, 0) {
		return Event{}
	}
	year, month, day := c.adjustedDate().Date()
	h := int(hours)
	localTimeHours := int(c.location.Longitude) / 15
	switch {
	case sunrise && localTimeHours+h > 18:
		day--
	case !sunrise && localTimeHours+h < 6:
		day++
	}
	return EventAt(utcHoursToTime(year, month, day, hours).In(c.location.Zone()))
}

// utcHoursToTime returns the UTC time that is hours after the start of
// the specified day. Hours, minutes, seconds and milliseconds are each
// truncated, never rounded.
func utcHoursToTime(year int, month time.Month, day int, hours float64) time.Time {
	h := int(hours)
	hours -= float64(h)
	hours *= 60
	m := int(hours)
	hours -= float64(m)
	hours *= 60
	s := int(hours)
	hours -= float64(s)
	ms := int(hours * 1000)
	return time.Date(year, month, day, h, m, s, ms*int(time.Millisecond), time.UTC)
}
