// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendar

import "math"

// Hebrew months are numbered from Tishri = 1. In leap years the
// intercalated pair Adar I/Adar II occupies positions 6 and 7 and Nisan
// is month 8; in common years Adar is month 6 and Nisan month 7. Only
// Heshvan (month 2) and Kislev (month 3) vary with the year's length,
// every other month has a fixed length.

// hebrewMonthLengths returns the per month lengths for a year of the
// given character. Heshvan has 30 days in complete years (355 or 385
// days) and Kislev 29 in deficient years (353 or 383 days).
func hebrewMonthLengths(yc YearCharacter) []int {
	heshvan, kislev := 29, 30
	switch yc.Days % 10 {
	case 5:
		heshvan = 30
	case 3:
		kislev = 29
	}
	if yc.Leap() {
		return []int{30, heshvan, kislev, 29, 30, 30, 29, 30, 29, 30, 29, 30, 29}
	}
	return []int{30, heshvan, kislev, 29, 30, 29, 30, 29, 30, 29, 30, 29}
}

func hebrewDaysInMonth(year int, month Month) int {
	return hebrewMonthLengths(HebrewYearCharacter(year))[month-1]
}

func hebrewToJDC(cd CalendarDate) JDC {
	days := cd.Day - 1
	ml := hebrewMonthLengths(HebrewYearCharacter(cd.Year))
	for m := 0; m < int(cd.Month)-1 && m < len(ml); m++ {
		days += ml[m]
	}
	start := RoshHashanah(cd.Year) + JDN(days)
	return start.JDC() + JDC(cd.Daytime)
}

func hebrewFromJDC(jdc JDC) CalendarDate {
	t := float64(jdc) + 0.5
	z := math.Floor(t)
	f := t - z
	jdn := JDN(z)
	// The Julian calendar year gives a first guess at the enclosing
	// Hebrew year; a new year in the autumn means the guess can be off
	// by one either way.
	year := julianFromJDC(jdc).Year + 3761
	for RoshHashanah(year) > jdn {
		year--
	}
	for RoshHashanah(year+1) <= jdn {
		year++
	}
	offset := int(jdn - RoshHashanah(year))
	ml := hebrewMonthLengths(HebrewYearCharacter(year))
	month := Month(1)
	for offset >= ml[month-1] {
		offset -= ml[month-1]
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
