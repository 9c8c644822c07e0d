// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendar

import "math"

// A Hebrew year has one of six lengths: 353, 354 or 355 days for common
// years and 383, 384 or 385 days for leap years, and can only begin on
// a Monday, Tuesday, Thursday or Saturday. Everything the conversions
// need to know about a year is captured by its character, resolved once
// per year from the position in the 19 year Metonic cycle and the molad
// approximation below.

// YearCharacter describes the shape of a single Hebrew year.
type YearCharacter struct {
	Days         int     // 353, 354, 355, 383, 384 or 385.
	FirstWeekday Weekday // weekday of 1 Tishri: Monday, Tuesday, Thursday or Saturday.
	Months       int     // 12, or 13 in leap years.
}

// Leap returns true if the year has 13 months.
func (yc YearCharacter) Leap() bool {
	return yc.Months == 13
}

// hebrewIsLeap reports whether the year has a 13th month, ie. whether
// its position in the 19 year Metonic cycle is one of the seven leap
// positions.
func hebrewIsLeap(year int) bool {
	return floorMod(7*year-6, 19) >= 12
}

func hebrewMonthsInYear(year int) int {
	if hebrewIsLeap(year) {
		return 13
	}
	return 12
}

// HebrewYearCharacter resolves the character of the given Hebrew year.
func HebrewYearCharacter(year int) YearCharacter {
	rh := RoshHashanah(year)
	return YearCharacter{
		Days:         int(RoshHashanah(year+1) - rh),
		FirstWeekday: rh.Weekday(),
		Months:       hebrewMonthsInYear(year),
	}
}

// Coefficients of the molad (mean lunar conjunction) approximation.
// The length of a molad interval in days is 29.5 plus 793/25920 parts,
// and the two postponement thresholds are expressed in the same 25920
// parts of a day.
const (
	moladMonth      = 1.554241796621 // 765433/492480, one molad interval expressed in calendar days
	moladBase       = 32.044093161144
	moladYearDrift  = 0.003177794022
	postponeCommon  = 0.897723765432098  // 23269/25920
	postponeRegular = 0.6328703703703703 // 16404/25920
)

// Pesach returns the day number of 15 Nisan (the first day of Pesach)
// of the given Hebrew year, computed from the molad approximation with
// the postponement rules applied as tie breaks on the fractional
// remainder.
func Pesach(year int) JDN {
	a := floorMod(12*year+17, 19)
	b := floorMod(year, 4)
	m := moladBase + moladMonth*float64(a) + 0.25*float64(b) - moladYearDrift*float64(year)
	day := int(math.Floor(m))
	frac := m - math.Floor(m)
	switch c := floorMod(day+3*year+5*b+5, 7); {
	case c == 0 && a > 11 && frac >= postponeCommon:
		day++
	case c == 1 && a > 6 && frac >= postponeRegular:
		day += 2
	case c == 2 || c == 4 || c == 6:
		day++
	}
	// day counts from the start of March in the Julian calendar of the
	// civil year that the spring of the Hebrew year falls in.
	month, jy := Month(3), year-3760
	if day > 31 {
		month, day = 4, day-31
	}
	return julianToJDC(NewCalendarDate(jy, month, day)).JDN()
}

// RoshHashanah returns the day number of 1 Tishri, the first day, of
// the given Hebrew year. The interval from 15 Nisan to the following
// 1 Tishri is fixed at 163 days since the lengths of the intervening
// months never vary.
func RoshHashanah(year int) JDN {
	return Pesach(year-1) + 163
}
