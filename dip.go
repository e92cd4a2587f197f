// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package astrocal

import (
	"context"
	"errors"

	"cloudeng.io/astrocal/solar"
	"cloudeng.io/logging/ctxlog"
)

// ErrNoSolarDip is returned when no solar depression reproduces the
// requested offset, e.g. because there is no sea level sunrise or sunset
// to offset from.
var ErrNoSolarDip = errors.New("no solar dip matches the offset")

const (
	// Resolution of the dip searches, in steps per degree. The sunrise
	// search is ten times finer than the sunset one; existing tables of
	// dips were computed this way and depend on the exact values.
	sunriseDipSteps = 10000
	sunsetDipSteps  = 1000

	// dipStride is the number of steps taken at a time before the
	// search falls back to single steps.
	dipStride = 256

	// maxDip bounds the search, in degrees on either side of the
	// geometric zenith.
	maxDip = 90
)

// SunriseSolarDipFromOffset returns the number of degrees below the
// geometric zenith at which the sun is minutes before sea level sunrise.
// Negative minutes are after sunrise and yield a negative dip. The result
// has a resolution of 0.0001 degrees.
//
// The calculation searches over repeated sunrise calculations and is
// slow. It is intended for deriving constants rather than for use on
// every date.
func (c Calendar) SunriseSolarDipFromOffset(ctx context.Context, minutes float64) (float64, error) {
	return c.solarDip(ctx, minutes, solar.Rise)
}

// SunsetSolarDipFromOffset returns the number of degrees below the
// geometric zenith at which the sun is minutes after sea level sunset.
// Negative minutes are before sunset. The result has a resolution of
// 0.001 degrees. It is as slow as SunriseSolarDipFromOffset.
func (c Calendar) SunsetSolarDipFromOffset(ctx context.Context, minutes float64) (float64, error) {
	return c.solarDip(ctx, minutes, solar.Set)
}

type dipSearch struct {
	cal            Calendar
	side           solar.Side
	minutes        float64
	stepsPerDegree int64
	start, target  Event
	evaluations    int
}

// walking returns true while the event n steps from the geometric zenith
// has not yet reached the target, and whether that event exists. An
// absent event has not reached the target.
func (s *dipSearch) walking(n int64) (walking, present bool) {
	candidate := s.start
	if n != 0 {
		s.evaluations++
		zenith := GeometricZenith + s.degrees(n)
		if s.side == solar.Rise {
			candidate = s.cal.SunriseOffsetByDegrees(zenith)
		} else {
			candidate = s.cal.SunsetOffsetByDegrees(zenith)
		}
	}
	if !candidate.IsSet() {
		return true, false
	}
	before, after := candidate.Before(s.target), candidate.After(s.target)
	if s.side == solar.Rise {
		return (s.minutes < 0 && before) || (s.minutes > 0 && after), true
	}
	return (s.minutes > 0 && before) || (s.minutes < 0 && after), true
}

// degrees converts a step count to degrees with a single division so that
// the result is the closest float64 to the exact decimal value.
func (s *dipSearch) degrees(n int64) float64 {
	return float64(n) / float64(s.stepsPerDegree)
}

// find returns the first step, walking away from zero, at which the target
// is reached. It strides ahead and walks back over a stride one step at a
// time when the stride's end has reached the target or the event appears
// or disappears within it. This yields the same step as a single step
// walk when event times move monotonically with the zenith and an event
// that disappears does not reappear within a single stride.
func (s *dipSearch) find(ctx context.Context) (int64, error) {
	dir := int64(1)
	if s.minutes < 0 {
		dir = -1
	}
	walking, present := s.walking(0)
	if !walking {
		return 0, nil
	}
	limit := int64(maxDip) * s.stepsPerDegree
	for prev := int64(0); prev < limit; {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		next := min(prev+dipStride, limit)
		nextWalking, nextPresent := s.walking(dir * next)
		if !nextWalking || nextPresent != present {
			for n := prev + 1; n <= next; n++ {
				if w, _ := s.walking(dir * n); !w {
					return dir * n, nil
				}
			}
		}
		prev, present = next, nextPresent
	}
	return 0, ErrNoSolarDip
}

func (c Calendar) solarDip(ctx context.Context, minutes float64, side solar.Side) (float64, error) {
	s := &dipSearch{cal: c, side: side, minutes: minutes}
	if side == solar.Rise {
		s.stepsPerDegree = sunriseDipSteps
		s.start = c.SeaLevelSunrise()
		s.target = TimeOffset(s.start, -minutes*float64(MinuteMillis))
	} else {
		s.stepsPerDegree = sunsetDipSteps
		s.start = c.SeaLevelSunset()
		s.target = TimeOffset(s.start, minutes*float64(MinuteMillis))
	}
	if !s.target.IsSet() {
		return 0, ErrNoSolarDip
	}
	n, err := s.find(ctx)
	logger := ctxlog.Logger(ctx)
	if err != nil {
		logger.Debug("solar dip search failed", "side", side.String(), "minutes", minutes, "evaluations", s.evaluations, "error", err)
		return 0, err
	}
	dip := s.degrees(n)
	logger.Debug("solar dip search", "side", side.String(), "minutes", minutes, "dip", dip, "evaluations", s.evaluations)
	return dip, nil
}
