// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package astrocal

import (
	"encoding/binary"
	"fmt"
	"math"
	"reflect"
	"time"

	"cloudeng.io/astrocal/geolocation"
	"cloudeng.io/astrocal/solar"
	"github.com/cespare/xxhash/v2"
)

// Zenith angles re-exported from the solar package for convenience.
const (
	GeometricZenith    = solar.GeometricZenith
	CivilZenith        = solar.CivilZenith
	NauticalZenith     = solar.NauticalZenith
	AstronomicalZenith = solar.AstronomicalZenith
)

// Milliseconds in a minute and an hour, for use with Event.AddMillis and
// TimeOffset.
const (
	MinuteMillis = int64(time.Minute / time.Millisecond)
	HourMillis   = MinuteMillis * 60
)

// Calendar holds the date, location and solar calculator for which solar
// events are calculated. A Calendar is an immutable value, the With
// methods return new Calendars, and may be shared between goroutines
// provided that its Calculator is safe for concurrent use, as all of
// those provided by the solar package are.
type Calendar struct {
	date       time.Time
	location   geolocation.Location
	calculator solar.Calculator
}

// Option represents an option to New.
type Option func(o *options)

type options struct {
	date       time.Time
	calculator solar.Calculator
}

// AtDate sets the date of the Calendar, the default is the current time.
func AtDate(t time.Time) Option {
	return func(o *options) {
		o.date = t
	}
}

// UsingCalculator sets the solar calculator to be used, the default is
// solar.Default().
func UsingCalculator(c solar.Calculator) Option {
	return func(o *options) {
		o.calculator = c
	}
}

// New returns a Calendar for the specified location.
func New(loc geolocation.Location, opts ...Option) Calendar {
	var o options
	for _, fn := range opts {
		fn(&o)
	}
	if o.date.IsZero() {
		o.date = time.Now()
	}
	if o.calculator == nil {
		o.calculator = solar.Default()
	}
	return Calendar{
		date:       o.date.In(loc.Zone()),
		location:   loc,
		calculator: o.calculator,
	}
}

// Date returns the calendar's date, in the location's time zone.
func (c Calendar) Date() time.Time {
	return c.date
}

// Location returns the calendar's location.
func (c Calendar) Location() geolocation.Location {
	return c.location
}

// Calculator returns the calendar's solar calculator.
func (c Calendar) Calculator() solar.Calculator {
	if c.calculator == nil {
		return solar.Default()
	}
	return c.calculator
}

// WithDate returns a copy of c for the date t. t is converted to the
// location's time zone.
func (c Calendar) WithDate(t time.Time) Calendar {
	c.date = t.In(c.location.Zone())
	return c
}

// WithLocation returns a copy of c for loc. The calendar's instant is
// unchanged but is now expressed in loc's time zone.
func (c Calendar) WithLocation(loc geolocation.Location) Calendar {
	c.location = loc
	c.date = c.date.In(loc.Zone())
	return c
}

// WithCalculator returns a copy of c that uses calc.
func (c Calendar) WithCalculator(calc solar.Calculator) Calendar {
	c.calculator = calc
	return c
}

// Clone returns a copy of c with its own copies of the location and
// calculator.
func (c Calendar) Clone() Calendar {
	return Calendar{
		date:       time.Unix(c.date.Unix(), int64(c.date.Nanosecond())).In(c.date.Location()),
		location:   c.location.Clone(),
		calculator: c.Calculator().Clone(),
	}
}

// Equal returns true if c and o have the same date, time zone, location
// and calculator.
func (c Calendar) Equal(o Calendar) bool {
	return c.date.Equal(o.date) &&
		c.date.Location().String() == o.date.Location().String() &&
		c.location.Equal(o.location) &&
		c.Calculator().Name() == o.Calculator().Name() &&
		reflect.DeepEqual(c.Calculator(), o.Calculator())
}

// Hash returns a hash of c consistent with Equal. The calculator's name
// is included first so that calendars that differ only in the kind of
// calculator used hash differently.
func (c Calendar) Hash() uint64 {
	d := xxhash.New()
	d.WriteString(c.Calculator().Name())
	buf := make([]byte, 0, 44)
	buf = binary.LittleEndian.AppendUint64(buf, uint64(c.date.Unix()))
	buf = binary.LittleEndian.AppendUint32(buf, uint32(c.date.Nanosecond()))
	buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(c.location.Latitude))
	buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(c.location.Longitude))
	buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(c.location.Elevation))
	d.Write(buf)
	d.WriteString(c.date.Location().String())
	d.WriteString(c.location.Name)
	return d.Sum64()
}

func (c Calendar) String() string {
	return fmt.Sprintf("%s: %s using %s", c.location, c.date.Format(time.RFC3339), c.Calculator().Name())
}

// adjustedDate returns the date passed to the calculator: the calendar's
// date shifted by the location's antimeridian adjustment.
func (c Calendar) adjustedDate() time.Time {
	if offset := c.location.AntimeridianAdjustment(c.date); offset != 0 {
		return c.date.AddDate(0, 0, offset)
	}
	return c.date
}
