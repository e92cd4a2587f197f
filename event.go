// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package astrocal

import (
	"math"
	"time"
)

// NoDuration is returned by Duration.Milliseconds for an absent duration.
// It is never a valid offset and AddMillis treats it as absent.
const NoDuration int64 = math.MinInt64

// Event is the time of a solar event, or the absence of one. The zero
// value is absent. Absence is the normal outcome for events that do not
// occur on a given date, e.g. sunrise during polar night, and propagates
// through all arithmetic on Events and Durations.
type Event struct {
	t  time.Time
	ok bool
}

// EventAt returns the Event for t.
func EventAt(t time.Time) Event {
	return Event{t: t, ok: true}
}

// Time returns the time of the event and true, or the zero time and
// false if the event is absent.
func (e Event) Time() (time.Time, bool) {
	return e.t, e.ok
}

// IsSet returns true if the event is present.
func (e Event) IsSet() bool {
	return e.ok
}

// In returns e with its time expressed in loc.
func (e Event) In(loc *time.Location) Event {
	if !e.ok {
		return e
	}
	return EventAt(e.t.In(loc))
}

// AddMillis returns e offset by ms milliseconds. The result is absent if
// e is absent or ms is NoDuration.
func (e Event) AddMillis(ms int64) Event {
	if !e.ok || ms == NoDuration {
		return Event{}
	}
	return EventAt(e.t.Add(time.Duration(ms) * time.Millisecond))
}

// Add returns e offset by d. The result is absent if either is absent.
func (e Event) Add(d Duration) Event {
	if !e.ok || !d.ok {
		return Event{}
	}
	return EventAt(e.t.Add(d.d))
}

// Sub returns e-o, absent if either is absent.
func (e Event) Sub(o Event) Duration {
	if !e.ok || !o.ok {
		return Duration{}
	}
	return DurationOf(e.t.Sub(o.t))
}

// Before returns true if both events are present and e is before o.
func (e Event) Before(o Event) bool {
	return e.ok && o.ok && e.t.Before(o.t)
}

// After returns true if both events are present and e is after o.
func (e Event) After(o Event) bool {
	return e.ok && o.ok && e.t.After(o.t)
}

// Equal returns true if both events are absent or both are present and
// refer to the same instant.
func (e Event) Equal(o Event) bool {
	if !e.ok || !o.ok {
		return e.ok == o.ok
	}
	return e.t.Equal(o.t)
}

func (e Event) String() string {
	if !e.ok {
		return "absent"
	}
	return e.t.Format(time.RFC3339Nano)
}

// TimeOffset returns e offset by ms milliseconds, ms is truncated to a
// whole number of milliseconds.
func TimeOffset(e Event, ms float64) Event {
	if math.IsNaN(ms) {
		return Event{}
	}
	return e.AddMillis(int64(ms))
}

// Duration is a time span derived from solar events, e.g. the length of a
// temporal hour. The zero value is absent.
type Duration struct {
	d  time.Duration
	ok bool
}

// DurationOf returns the Duration for d.
func DurationOf(d time.Duration) Duration {
	return Duration{d: d, ok: true}
}

// Value returns the duration and true, or zero and false if absent.
func (d Duration) Value() (time.Duration, bool) {
	return d.d, d.ok
}

// IsSet returns true if the duration is present.
func (d Duration) IsSet() bool {
	return d.ok
}

// Milliseconds returns the duration in milliseconds, or NoDuration if
// absent.
func (d Duration) Milliseconds() int64 {
	if !d.ok {
		return NoDuration
	}
	return d.d.Milliseconds()
}

// Mul returns d*n.
func (d Duration) Mul(n int64) Duration {
	if !d.ok {
		return d
	}
	return DurationOf(d.d * time.Duration(n))
}

// Div returns d/n.
func (d Duration) Div(n int64) Duration {
	if !d.ok {
		return d
	}
	return DurationOf(d.d / time.Duration(n))
}

func (d Duration) String() string {
	if !d.ok {
		return "absent"
	}
	return d.d.String()
}
