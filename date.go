// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendar

import (
	"fmt"
	"strconv"
	"strings"
)

// CalendarDate represents a date in some calendar as a year, month and
// day, with an optional weekday and an optional fractional time of day.
// The calendar the date belongs to is not part of the value; it is
// supplied by the System whose conversions the date is used with.
// CalendarDate values are immutable, conversions and transpositions
// always return new values.
type CalendarDate struct {
	Year    int
	Month   Month
	Day     int
	Weekday Weekday // 0-6 with 0 being Sunday, NoWeekday when not known.
	Daytime float64 // fraction of a day in [0,1), 0 is the start of the day, 0.5 is noon.
}

// NewCalendarDate returns a CalendarDate for the given year, month and
// day with no weekday and a zero time of day.
func NewCalendarDate(year int, month Month, day int) CalendarDate {
	return CalendarDate{Year: year, Month: month, Day: day, Weekday: NoWeekday}
}

// WithWeekday returns a copy of the date with an explicitly supplied
// weekday. It returns an error if the weekday is outside 0 to 6.
func (cd CalendarDate) WithWeekday(w Weekday) (CalendarDate, error) {
	if w < 0 || w > 6 {
		return CalendarDate{}, fmt.Errorf("invalid weekday: %d, expected 0..6", w)
	}
	cd.Weekday = w
	return cd, nil
}

// WithDaytime returns a copy of the date with the given fractional time
// of day. It returns an error if the fraction is outside [0,1).
func (cd CalendarDate) WithDaytime(f float64) (CalendarDate, error) {
	if f < 0 || f >= 1 {
		return CalendarDate{}, fmt.Errorf("invalid daytime: %v, expected [0,1)", f)
	}
	cd.Daytime = f
	return cd, nil
}

// sameDay returns true if the two dates refer to the same year, month
// and day, ignoring the weekday and time of day.
func (cd CalendarDate) sameDay(od CalendarDate) bool {
	return cd.Year == od.Year && cd.Month == od.Month && cd.Day == od.Day
}

func (cd CalendarDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", cd.Year, cd.Month, cd.Day)
}

// Parse parses a date in the format '2006-01-02'. Years may be negative
// or zero, eg. '-4712-01-01'; astronomical year numbering is assumed.
func (cd *CalendarDate) Parse(val string) error {
	neg := false
	v := val
	if strings.HasPrefix(v, "-") {
		neg = true
		v = v[1:]
	}
	parts := strings.Split(v, "-")
	if len(parts) != 3 {
		return fmt.Errorf("invalid date %q, expected '2006-01-02'", val)
	}
	year, err := strconv.Atoi(parts[0])
	if err != nil {
		return fmt.Errorf("invalid year: %s", parts[0])
	}
	if neg {
		year = -year
	}
	month, err := strconv.Atoi(parts[1])
	if err != nil || month < 1 {
		return fmt.Errorf("invalid month: %s", parts[1])
	}
	day, err := strconv.Atoi(parts[2])
	if err != nil || day < 1 {
		return fmt.Errorf("invalid day: %s", parts[2])
	}
	*cd = NewCalendarDate(year, Month(month), day)
	return nil
}
