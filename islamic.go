// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendar

import "math"

// The Islamic (Hijri) conversions implement the arithmetic civil
// calendar: months alternate 30 and 29 days and 11 leap years per
// 30 year cycle add a 30th day to the final month. No astronomical
// observation is modelled.

// islamicEpoch is the day count of the start of 1 Muharram, year 1.
const islamicEpoch = 1948439.5

// islamicIsLeap returns true for the 11 leap years of each 30 year
// cycle, in which the final month has 30 days rather than 29.
func islamicIsLeap(year int) bool {
	return floorMod(11*year+14, 30) < 11
}

func islamicToJDC(cd CalendarDate) JDC {
	y, m := cd.Year, int(cd.Month)
	days := float64(cd.Day) + cd.Daytime +
		math.Ceil(29.5*float64(m-1)) +
		float64(y-1)*354 +
		math.Floor(float64(3+11*y)/30)
	return JDC(days + islamicEpoch - 1)
}

func islamicFromJDC(jdc JDC) CalendarDate {
	t := float64(jdc) + 0.5
	z := math.Floor(t)
	f := t - z
	jdn := JDN(z)
	// Locate the year from the mean year length of the 30 year cycle
	// (10631 days), then correct for the one day the estimate can be off
	// by at a year boundary.
	days := int(jdn) - int(islamicEpoch+0.5)
	year := int(math.Floor(float64(30*days+10646) / 10631))
	for jdn < islamicYearStart(year) {
		year--
	}
	for jdn >= islamicYearStart(year+1) {
		year++
	}
	offset := int(jdn - islamicYearStart(year))
	month := Month(1)
	for offset >= islamicDaysInMonth(year, month) {
		offset -= islamicDaysInMonth(year, month)
		month++
	}
	return CalendarDate{
		Year:    year,
		Month:   month,
		Day:     offset + 1,
		Daytime: f,
		Weekday: NoWeekday,
	}
}

// islamicYearStart returns the day number of 1 Muharram of the year.
func islamicYearStart(year int) JDN {
	return islamicToJDC(NewCalendarDate(year, 1, 1)).JDN()
}

// islamicDaysInMonth returns 30 for odd months and 29 for even months,
// except that the final month has 30 days in leap years.
func islamicDaysInMonth(year int, month Month) int {
	if month == 12 && islamicIsLeap(year) {
		return 30
	}
	if month%2 == 1 {
		return 30
	}
	return 29
}
