// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package solar

import (
	"fmt"
	"time"

	"github.com/mooncaker816/learnmeeus/v3/julian"
)

var (
	dayOfYear     []int // per month cumulative days in year so [0, 31, 59 etc]
	dayOfYearLeap []int // per month cumulative days in leap year [0, 31, 60 etc]
)

func init() {
	dayOfYear = make([]int, 12)
	dayOfYearLeap = make([]int, 12)
	for i := 0; i < 11; i++ {
		dayOfYear[i+1] = dayOfYear[i] + DaysInMonth(2023, time.Month(i+1))
		dayOfYearLeap[i+1] = dayOfYearLeap[i] + DaysInMonth(2024, time.Month(i+1))
	}
}

// IsLeap returns true if the given year is a leap year.
func IsLeap(year int) bool {
	return year%4 == 0 && year%100 != 0 || year%400 == 0
}

// DaysInMonth returns the number of days in the given month for the given year.
func DaysInMonth(year int, month time.Month) int {
	switch month {
	case time.February:
		if IsLeap(year) {
			return 29
		}
		return 28
	case time.April, time.June, time.September, time.November:
		return 30
	default:
		return 31
	}
}

// Date represents the calendar date for which a solar event is calculated.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate returns a Date for the specified year, month and day.
func NewDate(year int, month time.Month, day int) Date {
	return Date{Year: year, Month: month, Day: day}
}

// DateOf returns the date of t in t's location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// AddDays returns the date n days after d, n may be negative.
func (d Date) AddDays(n int) Date {
	return DateOf(time.Date(d.Year, d.Month, d.Day+n, 12, 0, 0, 0, time.UTC))
}

// YearDay returns the day of the year, 1 for January 1st.
func (d Date) YearDay() int {
	if IsLeap(d.Year) {
		return dayOfYearLeap[d.Month-1] + d.Day
	}
	return dayOfYear[d.Month-1] + d.Day
}

// JulianDay returns the julian day number at 0h UT on d.
func (d Date) JulianDay() float64 {
	return julian.CalendarGregorianToJD(d.Year, int(d.Month), float64(d.Day))
}

// Time returns midnight at the start of d in loc.
func (d Date) Time(loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// JDEToDate converts a julian ephemeris day to the Date containing it.
func JDEToDate(jde float64) Date {
	y, m, d := julian.JDToCalendar(jde)
	return NewDate(y, time.Month(m), int(d))
}
