// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendar_test

import (
	"testing"

	"cloudeng.io/calendar"
)

func gregorianJDN(year int, month calendar.Month, day int) calendar.JDN {
	return calendar.Gregorian.ToJDN(calendar.NewCalendarDate(year, month, day))
}

func TestHebrewYearCharacter(t *testing.T) {
	for _, tc := range []struct {
		year   int
		days   int
		first  calendar.Weekday
		months int
	}{
		{5770, 355, 6, 12},
		{5771, 385, 4, 13},
		{5772, 354, 4, 12},
		{5773, 353, 1, 12},
		{5774, 385, 4, 13},
		{5778, 354, 4, 12},
	} {
		yc := calendar.HebrewYearCharacter(tc.year)
		if got, want := yc.Days, tc.days; got != want {
			t.Errorf("%v: got %v, want %v", tc.year, got, want)
		}
		if got, want := yc.FirstWeekday, tc.first; got != want {
			t.Errorf("%v: got %v, want %v", tc.year, got, want)
		}
		if got, want := yc.Months, tc.months; got != want {
			t.Errorf("%v: got %v, want %v", tc.year, got, want)
		}
		if got, want := yc.Leap(), tc.months == 13; got != want {
			t.Errorf("%v: got %v, want %v", tc.year, got, want)
		}
	}
}

// A Hebrew year has one of six lengths and can never begin on a
// Sunday, Wednesday or Friday.
func TestHebrewYearCharacterInvariants(t *testing.T) {
	lengths := map[int]bool{353: true, 354: true, 355: true, 383: true, 384: true, 385: true}
	for year := 5600; year < 5900; year++ {
		yc := calendar.HebrewYearCharacter(year)
		if !lengths[yc.Days] {
			t.Errorf("%v: invalid year length: %v", year, yc.Days)
		}
		if yc.Leap() != (yc.Days > 360) {
			t.Errorf("%v: month count %v inconsistent with length %v", year, yc.Months, yc.Days)
		}
		switch yc.FirstWeekday {
		case 0, 3, 5:
			t.Errorf("%v: year starts on a %v", year, yc.FirstWeekday)
		}
	}
}

func TestPesach(t *testing.T) {
	for _, tc := range []struct {
		year int
		gy   int
		gm   calendar.Month
		gd   int
	}{
		{5769, 2009, 4, 9},
		{5770, 2010, 3, 30},
		{5771, 2011, 4, 19},
		{5772, 2012, 4, 7},
		{5773, 2013, 3, 26},
		{5774, 2014, 4, 15},
		{5777, 2017, 4, 11},
		{5784, 2024, 4, 23},
	} {
		if got, want := calendar.Pesach(tc.year), gregorianJDN(tc.gy, tc.gm, tc.gd); got != want {
			t.Errorf("%v: got %v, want %v", tc.year, got, want)
		}
	}
}

func TestRoshHashanah(t *testing.T) {
	for _, tc := range []struct {
		year int
		gy   int
		gm   calendar.Month
		gd   int
	}{
		{5770, 2009, 9, 19},
		{5771, 2010, 9, 9},
		{5772, 2011, 9, 29},
		{5773, 2012, 9, 17},
		{5774, 2013, 9, 5},
		{5778, 2017, 9, 21},
	} {
		rh := calendar.RoshHashanah(tc.year)
		if got, want := rh, gregorianJDN(tc.gy, tc.gm, tc.gd); got != want {
			t.Errorf("%v: got %v, want %v", tc.year, got, want)
		}
		if got, want := calendar.Hebrew.ToJDN(calendar.NewCalendarDate(tc.year, 1, 1)), rh; got != want {
			t.Errorf("%v: got %v, want %v", tc.year, got, want)
		}
	}
}

func TestHebrewMonthLengthsSumToYear(t *testing.T) {
	for year := 5700; year < 5800; year++ {
		yc := calendar.HebrewYearCharacter(year)
		sum := 0
		for m := 1; m <= yc.Months; m++ {
			sum += calendar.Hebrew.DaysInMonth(year, calendar.Month(m))
		}
		if got, want := sum, yc.Days; got != want {
			t.Errorf("%v: got %v, want %v", year, got, want)
		}
	}
}

func TestHebrewLeapCycle(t *testing.T) {
	// Years 3, 6, 8, 11, 14, 17 and 19 of the Metonic cycle are leap
	// years; 5758 is year 1 of a cycle.
	leap := map[int]bool{3: true, 6: true, 8: true, 11: true, 14: true, 17: true, 19: true}
	for i := 1; i <= 19; i++ {
		if got, want := calendar.Hebrew.IsLeap(5757+i), leap[i]; got != want {
			t.Errorf("cycle year %v: got %v, want %v", i, got, want)
		}
	}
}
