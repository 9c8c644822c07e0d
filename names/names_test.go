// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package names_test

import (
	"slices"
	"testing"

	"cloudeng.io/calendar"
	"cloudeng.io/calendar/names"
)

func TestFormatParse(t *testing.T) {
	for _, tc := range []struct {
		val  string
		want names.Format
	}{
		{"long", names.Long},
		{"Short", names.Short},
		{"NARROW", names.Narrow},
	} {
		var f names.Format
		if err := f.Parse(tc.val); err != nil {
			t.Errorf("failed: %v: %v", tc.val, err)
			continue
		}
		if got, want := f, tc.want; got != want {
			t.Errorf("%v: got %v, want %v", tc.val, got, want)
		}
	}
	var f names.Format
	if err := f.Parse("tiny"); err == nil {
		t.Errorf("failed to return an error")
	}
}

func TestWeekdays(t *testing.T) {
	for _, tc := range []struct {
		locale string
		format names.Format
		first  string
	}{
		{"en", names.Long, "Sunday"},
		{"en-US", names.Short, "Sun"},
		{"en", names.Narrow, "S"},
		{"he", names.Long, "ראשון"},
		{"ar", names.Long, "الأحد"},
		// An unsupported locale falls back to English.
		{"fr", names.Long, "Sunday"},
		// A format the locale lacks falls back to its long names.
		{"he", names.Short, "ראשון"},
	} {
		wd := names.Weekdays(tc.locale, tc.format)
		if got, want := len(wd), 7; got != want {
			t.Errorf("%v %v: got %v, want %v", tc.locale, tc.format, got, want)
			continue
		}
		if got, want := wd[0], tc.first; got != want {
			t.Errorf("%v %v: got %v, want %v", tc.locale, tc.format, got, want)
		}
	}
}

func TestMonths(t *testing.T) {
	for _, tc := range []struct {
		sys    calendar.System
		year   int
		locale string
		format names.Format
		months int
		first  string
	}{
		{calendar.Gregorian, 2017, "en", names.Long, 12, "January"},
		{calendar.Gregorian, 2017, "en", names.Short, 12, "Jan"},
		{calendar.Julian, 2017, "en", names.Long, 12, "January"},
		{calendar.Islamic, 1439, "en", names.Long, 12, "Muharram"},
		{calendar.Islamic, 1439, "ar", names.Long, 12, "محرم"},
		{calendar.Hebrew, 5770, "en", names.Long, 12, "Tishri"},
		{calendar.Hebrew, 5771, "en", names.Long, 13, "Tishri"},
		{calendar.Hebrew, 5771, "he", names.Long, 13, "תשרי"},
		// Arabic has no Hebrew month tables: English fallback.
		{calendar.Hebrew, 5770, "ar", names.Long, 12, "Tishri"},
	} {
		m := names.Months(tc.sys, tc.year, tc.locale, tc.format)
		if got, want := len(m), tc.months; got != want {
			t.Errorf("%v %v %v: got %v, want %v", tc.sys, tc.year, tc.locale, got, want)
			continue
		}
		if got, want := m[0], tc.first; got != want {
			t.Errorf("%v %v %v: got %v, want %v", tc.sys, tc.year, tc.locale, got, want)
		}
	}
}

func TestHebrewLeapMonths(t *testing.T) {
	common := names.Months(calendar.Hebrew, 5770, "en", names.Long)
	leap := names.Months(calendar.Hebrew, 5771, "en", names.Long)
	if got, want := slices.Index(common, "Adar"), 5; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := slices.Index(leap, "Adar I"), 5; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := slices.Index(leap, "Adar II"), 6; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := slices.Index(leap, "Nisan"), 7; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}
