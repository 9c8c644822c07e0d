// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendar

import "math"

// The Gregorian and Julian conversions share the classical Meeus
// arithmetic: the year is shifted to begin in March so that the
// variable length of February falls at the end, the day within the
// shifted year is assembled from truncated multiples of 365.25 and
// 30.6001, and for the Gregorian calendar a century correction is
// applied. The year term is biased before truncation so that it counts
// whole years for BCE dates, and the century terms are floored so the
// correction steps at every century boundary; truncating them instead
// skips a civil day at each BCE non-400 century.

// solarEpochOffset places the day count of the shifted year arithmetic
// at the Julian day epoch.
const solarEpochOffset = 1720994.5

func solarToJDC(gregorian bool, cd CalendarDate) JDC {
	y, m := cd.Year, int(cd.Month)
	if m <= 2 {
		y--
		m += 12
	}
	yd := 365.25 * float64(y)
	if y < 0 {
		// 365.25*y has a fractional part for years not divisible by 4;
		// bias before truncating so that truncation matches the forward
		// counting of whole years.
		yd -= 0.75
	}
	jdc := itrunc(yd) + itrunc(30.6001*float64(m+1)) + float64(cd.Day) + cd.Daytime + solarEpochOffset
	if gregorian {
		a := math.Floor(float64(y) / 100)
		jdc += 2 - a + math.Floor(a/4)
	}
	return JDC(jdc)
}

func solarFromJDC(gregorian bool, jdc JDC) CalendarDate {
	t := float64(jdc) + 0.5
	z := math.Floor(t)
	f := t - z
	b := z
	if gregorian {
		a := itrunc((z - 1867216.25) / 36524.25)
		b = z + 1 + a - itrunc(a/4)
	}
	c := b + 1524
	d := itrunc((c - 122.1) / 365.25)
	e := itrunc(365.25 * d)
	g := itrunc((c - e) / 30.6001)
	day := c - e + f - itrunc(30.6001*g)
	month := g - 1
	if g > 13.5 {
		month = g - 13
	}
	year := d - 4715
	if month > 2.5 {
		year = d - 4716
	}
	dd := math.Floor(day)
	cd := CalendarDate{
		Year:    int(year),
		Month:   Month(month),
		Day:     int(dd),
		Daytime: day - dd,
		Weekday: NoWeekday,
	}
	// On the civil day a century year skips, the century estimate lands
	// one period low and assembles February 29 of a common year; that
	// day is March 1.
	if gregorian && cd.Month == 2 && cd.Day == 29 && !gregorianIsLeap(cd.Year) {
		cd.Month, cd.Day = 3, 1
	}
	return cd
}

func gregorianToJDC(cd CalendarDate) JDC {
	return solarToJDC(true, cd)
}

func gregorianFromJDC(jdc JDC) CalendarDate {
	return solarFromJDC(true, jdc)
}

func julianToJDC(cd CalendarDate) JDC {
	return solarToJDC(false, cd)
}

func julianFromJDC(jdc JDC) CalendarDate {
	return solarFromJDC(false, jdc)
}

var solarMonthDays = []int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

func gregorianIsLeap(year int) bool {
	return floorMod(year, 4) == 0 && floorMod(year, 100) != 0 || floorMod(year, 400) == 0
}

func julianIsLeap(year int) bool {
	return floorMod(year, 4) == 0
}

func gregorianDaysInMonth(year int, month Month) int {
	if month == 2 && gregorianIsLeap(year) {
		return 29
	}
	return solarMonthDays[month-1]
}

func julianDaysInMonth(year int, month Month) int {
	if month == 2 && julianIsLeap(year) {
		return 29
	}
	return solarMonthDays[month-1]
}
