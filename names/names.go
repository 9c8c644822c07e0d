// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package names provides locale specific weekday and month names for
// the calendars supported by cloudeng.io/calendar. Lookup is driven by
// static tables keyed by locale and format; a request for a locale or
// format that is not present falls back to the closest supported
// locale, and then to the long format, rather than failing.
package names

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"

	"cloudeng.io/calendar"
)

// Format selects the width of the returned names.
type Format int

const (
	Long Format = iota // eg. 'January'
	Short              // eg. 'Jan'
	Narrow             // eg. 'J'
)

var formatNames = []string{"long", "short", "narrow"}

func (f Format) String() string {
	if f < 0 || int(f) >= len(formatNames) {
		return "unknown"
	}
	return formatNames[f]
}

// Parse parses one of 'long', 'short' or 'narrow'.
func (f *Format) Parse(val string) error {
	for i, n := range formatNames {
		if n == strings.ToLower(val) {
			*f = Format(i)
			return nil
		}
	}
	return fmt.Errorf("invalid format: %q, expected long, short or narrow", val)
}

type localeNames struct {
	weekdays   map[Format][]string
	solar      map[Format][]string
	islamic    map[Format][]string
	hebrew     map[Format][]string
	hebrewLeap map[Format][]string
}

var supported = []language.Tag{language.English, language.Hebrew, language.Arabic}

var matcher = language.NewMatcher(supported)

var locales = map[language.Tag]*localeNames{
	language.English: {
		weekdays: map[Format][]string{
			Long:   {"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"},
			Short:  {"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"},
			Narrow: {"S", "M", "T", "W", "T", "F", "S"},
		},
		solar: map[Format][]string{
			Long:   {"January", "February", "March", "April", "May", "June", "July", "August", "September", "October", "November", "December"},
			Short:  {"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"},
			Narrow: {"J", "F", "M", "A", "M", "J", "J", "A", "S", "O", "N", "D"},
		},
		islamic: map[Format][]string{
			Long:  {"Muharram", "Safar", "Rabi I", "Rabi II", "Jumada I", "Jumada II", "Rajab", "Shaban", "Ramadan", "Shawwal", "Dhu al-Qidah", "Dhu al-Hijjah"},
			Short: {"Muh.", "Saf.", "Rab. I", "Rab. II", "Jum. I", "Jum. II", "Raj.", "Sha.", "Ram.", "Shaw.", "Dhu Q.", "Dhu H."},
		},
		hebrew: map[Format][]string{
			Long:  {"Tishri", "Heshvan", "Kislev", "Tevet", "Shevat", "Adar", "Nisan", "Iyar", "Sivan", "Tammuz", "Av", "Elul"},
			Short: {"Tis.", "Hes.", "Kis.", "Tev.", "She.", "Adar", "Nis.", "Iyar", "Siv.", "Tam.", "Av", "Elul"},
		},
		hebrewLeap: map[Format][]string{
			Long:  {"Tishri", "Heshvan", "Kislev", "Tevet", "Shevat", "Adar I", "Adar II", "Nisan", "Iyar", "Sivan", "Tammuz", "Av", "Elul"},
			Short: {"Tis.", "Hes.", "Kis.", "Tev.", "She.", "Adar I", "Adar II", "Nis.", "Iyar", "Siv.", "Tam.", "Av", "Elul"},
		},
	},
	language.Hebrew: {
		weekdays: map[Format][]string{
			Long: {"ראשון", "שני", "שלישי", "רביעי", "חמישי", "שישי", "שבת"},
		},
		hebrew: map[Format][]string{
			Long: {"תשרי", "חשוון", "כסלו", "טבת", "שבט", "אדר", "ניסן", "אייר", "סיוון", "תמוז", "אב", "אלול"},
		},
		hebrewLeap: map[Format][]string{
			Long: {"תשרי", "חשוון", "כסלו", "טבת", "שבט", "אדר א׳", "אדר ב׳", "ניסן", "אייר", "סיוון", "תמוז", "אב", "אלול"},
		},
	},
	language.Arabic: {
		weekdays: map[Format][]string{
			Long: {"الأحد", "الاثنين", "الثلاثاء", "الأربعاء", "الخميس", "الجمعة", "السبت"},
		},
		islamic: map[Format][]string{
			Long: {"محرم", "صفر", "ربيع الأول", "ربيع الآخر", "جمادى الأولى", "جمادى الآخرة", "رجب", "شعبان", "رمضان", "شوال", "ذو القعدة", "ذو الحجة"},
		},
	},
}

func tagFor(locale string) language.Tag {
	_, idx := language.MatchStrings(matcher, locale)
	return supported[idx]
}

// lookup returns the table for the format, falling back to Long within
// the locale and then to the English tables.
func lookup(tag language.Tag, f Format, sel func(*localeNames) map[Format][]string) []string {
	tables := sel(locales[tag])
	if v, ok := tables[f]; ok {
		return v
	}
	if v, ok := tables[Long]; ok {
		return v
	}
	if tag != language.English {
		return lookup(language.English, f, sel)
	}
	return nil
}

// Weekdays returns the seven weekday names, Sunday first, for the
// locale and format. The week is shared by all four supported calendars.
func Weekdays(locale string, f Format) []string {
	return lookup(tagFor(locale), f, func(ln *localeNames) map[Format][]string { return ln.weekdays })
}

// Months returns the month names of the given calendar year in order,
// 12 names, or 13 for a Hebrew leap year. The year only influences the
// result for the Hebrew calendar.
func Months(sys calendar.System, year int, locale string, f Format) []string {
	sel := func(ln *localeNames) map[Format][]string { return ln.solar }
	switch sys {
	case calendar.Islamic:
		sel = func(ln *localeNames) map[Format][]string { return ln.islamic }
	case calendar.Hebrew:
		if sys.IsLeap(year) {
			sel = func(ln *localeNames) map[Format][]string { return ln.hebrewLeap }
		} else {
			sel = func(ln *localeNames) map[Format][]string { return ln.hebrew }
		}
	}
	return lookup(tagFor(locale), f, sel)
}
