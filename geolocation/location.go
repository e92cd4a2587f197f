// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package geolocation provides the location used for solar calculations:
// coordinates, elevation and time zone together with the corrections
// derived from them.
package geolocation

import (
	"fmt"
	"math"
	"time"

	"cloudeng.io/errors"
)

// Location represents a place on the earth's surface. The zero value is
// Greenwich at sea level using UTC.
type Location struct {
	Name      string
	Latitude  float64 // degrees, north is positive
	Longitude float64 // degrees, east is positive
	Elevation float64 // meters above sea level
	TimeZone  *time.Location
}

// New returns a validated Location.
func New(name string, latitude, longitude, elevation float64, tz *time.Location) (Location, error) {
	l := Location{
		Name:      name,
		Latitude:  latitude,
		Longitude: longitude,
		Elevation: elevation,
		TimeZone:  tz,
	}
	if err := l.Validate(); err != nil {
		return Location{}, err
	}
	return l, nil
}

// Validate returns an error describing every field of l that is out of range.
// A nil TimeZone is allowed and is interpreted as UTC.
func (l Location) Validate() error {
	errs := errors.M{}
	if math.IsNaN(l.Latitude) || l.Latitude < -90 || l.Latitude > 90 {
		errs.Append(fmt.Errorf("%v: latitude %v must be between -90 and 90", l.Name, l.Latitude))
	}
	if math.IsNaN(l.Longitude) || l.Longitude < -180 || l.Longitude > 180 {
		errs.Append(fmt.Errorf("%v: longitude %v must be between -180 and 180", l.Name, l.Longitude))
	}
	if math.IsNaN(l.Elevation) || l.Elevation < 0 {
		errs.Append(fmt.Errorf("%v: elevation %v must be zero or positive", l.Name, l.Elevation))
	}
	return errs.Err()
}

// Zone returns the location's time zone, UTC if none is set.
func (l Location) Zone() *time.Location {
	if l.TimeZone == nil {
		return time.UTC
	}
	return l.TimeZone
}

// StandardOffset returns the offset from UTC of the location's time zone
// ignoring daylight saving time, for the year containing at. It is taken
// to be the smaller of the January and July offsets.
func (l Location) StandardOffset(at time.Time) time.Duration {
	tz := l.Zone()
	year := at.In(tz).Year()
	_, jan := time.Date(year, time.January, 1, 0, 0, 0, 0, tz).Zone()
	_, jul := time.Date(year, time.July, 1, 0, 0, 0, 0, tz).Zone()
	return time.Duration(min(jan, jul)) * time.Second
}

// LocalMeanTimeOffset returns the difference between local mean time at the
// location's longitude and the standard time of its time zone. Each degree
// of longitude accounts for four minutes.
func (l Location) LocalMeanTimeOffset(at time.Time) time.Duration {
	lmt := time.Duration(l.Longitude * 4 * float64(time.Minute))
	return lmt - l.StandardOffset(at)
}

// AntimeridianAdjustment returns the number of days, -1, 0 or +1, that
// the calendar date must be shifted for calculations at this location.
// This is non-zero only when the time zone is on the other side of the
// antimeridian from the location, e.g. Samoa, so that local mean time
// differs from the zone's time by 20 hours or more.
func (l Location) AntimeridianAdjustment(at time.Time) int {
	hours := l.LocalMeanTimeOffset(at).Hours()
	switch {
	case hours >= 20:
		return 1
	case hours <= -20:
		return -1
	}
	return 0
}

// Clone returns an independent copy of l. *time.Location is immutable
// and is shared.
func (l Location) Clone() Location {
	return l
}

// Equal returns true if l and o describe the same place and time zone.
func (l Location) Equal(o Location) bool {
	return l.Name == o.Name &&
		l.Latitude == o.Latitude &&
		l.Longitude == o.Longitude &&
		l.Elevation == o.Elevation &&
		l.Zone().String() == o.Zone().String()
}

func (l Location) String() string {
	return fmt.Sprintf("%s (%.4f, %.4f) %.1fm %s", l.Name, l.Latitude, l.Longitude, l.Elevation, l.Zone())
}
