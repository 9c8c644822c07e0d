// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package calendar provides conversion between a calendar independent,
// continuous day count (the Julian Day Number and its fractional
// extension the Julian Day Count) and dates in the Gregorian, Julian,
// Islamic and Hebrew civil calendars. It also provides a period model
// that keeps a day count range and its calendar date representation in
// lock step and supports transposing a period by whole days, months or
// years.
//
// All conversions use astronomical (proleptic) year numbering: year 0
// exists and 1 BCE is year 0, 2 BCE is year -1 and so on. Callers
// working with historical BCE dates expressed in the common era
// convention must adjust by one year.
package calendar

import (
	"fmt"
	"strings"
)

// Month is a month within some calendar's year, numbered from 1.
// Gregorian, Julian and Islamic years have 12 months, Hebrew years
// have 12 or 13.
type Month int

// System identifies one of the supported calendars.
type System uint8

const (
	Gregorian System = iota
	Julian
	Islamic
	Hebrew
)

var systemNames = []string{"gregorian", "julian", "islamic", "hebrew"}

func (s System) String() string {
	if !s.valid() {
		return fmt.Sprintf("invalid calendar (%d)", uint8(s))
	}
	return systemNames[s]
}

func (s System) valid() bool {
	return s <= Hebrew
}

// Parse parses a calendar name, in any case, eg. 'gregorian' or 'Hebrew'.
func (s *System) Parse(val string) error {
	lc := strings.ToLower(val)
	for i, n := range systemNames {
		if n == lc {
			*s = System(i)
			return nil
		}
	}
	return fmt.Errorf("unsupported calendar: %q", val)
}

// conversion is the pair of pure conversion functions, and the month
// arithmetic, for a single calendar. The four calendars are dispatched
// through a fixed table of these so that the core is free of any
// per-calendar types.
type conversion struct {
	toJDC        func(CalendarDate) JDC
	fromJDC      func(JDC) CalendarDate
	daysInMonth  func(year int, month Month) int
	monthsInYear func(year int) int
}

var conversions = [...]conversion{
	Gregorian: {gregorianToJDC, gregorianFromJDC, gregorianDaysInMonth, twelveMonths},
	Julian:    {julianToJDC, julianFromJDC, julianDaysInMonth, twelveMonths},
	Islamic:   {islamicToJDC, islamicFromJDC, islamicDaysInMonth, twelveMonths},
	Hebrew:    {hebrewToJDC, hebrewFromJDC, hebrewDaysInMonth, hebrewMonthsInYear},
}

func twelveMonths(int) int { return 12 }

// ToJDC converts a calendar date to a day count. The date's Daytime, if
// any, is carried into the fractional part of the result. No validation
// of the date against the calendar is performed; out of range fields
// are carried through the conversion arithmetically.
func (s System) ToJDC(cd CalendarDate) JDC {
	return conversions[s].toJDC(cd)
}

// ToJDN converts a calendar date to the Julian Day Number of the day it
// falls on.
func (s System) ToJDN(cd CalendarDate) JDN {
	return s.ToJDC(cd).JDN()
}

// FromJDC converts a day count to a calendar date. The fractional time
// of day is returned in the date's Daytime field and the date's Weekday
// is set.
func (s System) FromJDC(jdc JDC) CalendarDate {
	cd := conversions[s].fromJDC(jdc)
	cd.Weekday = jdc.Weekday()
	return cd
}

// FromJDN converts a day number to the calendar date it falls on, at
// day precision, ie. with a zero Daytime.
func (s System) FromJDN(jdn JDN) CalendarDate {
	cd := conversions[s].fromJDC(JDC(jdn))
	cd.Daytime = 0
	cd.Weekday = jdn.Weekday()
	return cd
}

// DaysInMonth returns the number of days in the given month of the
// given year, or zero if the month is not a month of that year.
func (s System) DaysInMonth(year int, month Month) int {
	if month < 1 || int(month) > s.MonthsInYear(year) {
		return 0
	}
	return conversions[s].daysInMonth(year, month)
}

// MonthsInYear returns the number of months in the given year: 12 for
// all calendars except for Hebrew leap years which have 13.
func (s System) MonthsInYear(year int) int {
	return conversions[s].monthsInYear(year)
}

// IsLeap returns true if the given year is a leap year of the calendar:
// the 4-100-400 rule for Gregorian, every fourth year for Julian, 11
// years per 30 year cycle for Islamic and the 13 month years of the 19
// year cycle for Hebrew.
func (s System) IsLeap(year int) bool {
	switch s {
	case Gregorian:
		return gregorianIsLeap(year)
	case Julian:
		return julianIsLeap(year)
	case Islamic:
		return islamicIsLeap(year)
	default:
		return hebrewIsLeap(year)
	}
}
