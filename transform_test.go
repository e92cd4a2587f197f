// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package astrocal

import (
	"math"
	"testing"
	"time"

	"cloudeng.io/astrocal/geolocation"
)

func TestUTCHoursToTime(t *testing.T) {
	for i, tc := range []struct {
		hours float64
		want  time.Time
	}{
		{18.75, time.Date(2024, 3, 20, 18, 45, 0, 0, time.UTC)},
		{6.5, time.Date(2024, 3, 20, 6, 30, 0, 0, time.UTC)},
		{0, time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC)},
		{12 + 1.0/128, time.Date(2024, 3, 20, 12, 0, 28, 125*int(time.Millisecond), time.UTC)},
		// Truncated, not rounded up to the next day.
		{23.99999999, time.Date(2024, 3, 20, 23, 59, 59, 999*int(time.Millisecond), time.UTC)},
		{-1.5, time.Date(2024, 3, 19, 22, 30, 0, 0, time.UTC)},
	} {
		if got, want := utcHoursToTime(2024, 3, 20, tc.hours), tc.want; !got.Equal(want) {
			t.Errorf("%v: %v: got %v, want %v", i, tc.hours, got, want)
		}
	}
}

func TestEventFromUTCHours(t *testing.T) {
	// int(-74.2094)/15 == -4
	loc := geolocation.Location{Latitude: 40.0828, Longitude: -74.2094, TimeZone: time.UTC}
	cal := New(loc, AtDate(time.Date(2024, 6, 21, 12, 0, 0, 0, time.UTC)))

	for i, tc := range []struct {
		hours   float64
		sunrise bool
		want    time.Time
	}{
		{9.5, true, time.Date(2024, 6, 21, 9, 30, 0, 0, time.UTC)},
		{22.5, true, time.Date(2024, 6, 21, 22, 30, 0, 0, time.UTC)},
		{23.5, true, time.Date(2024, 6, 20, 23, 30, 0, 0, time.UTC)},
		{0.5, false, time.Date(2024, 6, 22, 0, 30, 0, 0, time.UTC)},
		{9.75, false, time.Date(2024, 6, 22, 9, 45, 0, 0, time.UTC)},
		{10.0, false, time.Date(2024, 6, 21, 10, 0, 0, 0, time.UTC)},
		{23.5, false, time.Date(2024, 6, 21, 23, 30, 0, 0, time.UTC)},
	} {
		e := cal.eventFromUTCHours(tc.hours, true, tc.sunrise)
		got, ok := e.Time()
		if !ok {
			t.Fatalf("%v: absent event", i)
		}
		if want := tc.want; !got.Equal(want) {
			t.Errorf("%v: %v: got %v, want %v", i, tc.hours, got, want)
		}
	}

	for _, h := range []float64{math.NaN(), math.Inf(1)} {
		if e := cal.eventFromUTCHours(h, true, true); e.IsSet() {
			t.Errorf("%v: expected an absent event: %v", h, e)
		}
	}
	if e := cal.eventFromUTCHours(10, false, true); e.IsSet() {
		t.Errorf("expected an absent event: %v", e)
	}

	// The result is in the location's zone.
	est := time.FixedZone("EST", -5*3600)
	loc.TimeZone = est
	cal = cal.WithLocation(loc)
	got, _ := cal.eventFromUTCHours(16, true, true).Time()
	if got, want := got.Location(), est; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := got.Hour(), 11; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}
