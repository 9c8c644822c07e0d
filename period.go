// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendar

import (
	"fmt"
	"math"

	"cloudeng.io/errors"
)

// JDNPeriod represents a range of day numbers, inclusive of both ends,
// with the invariant that the start is never after the end.
type JDNPeriod struct {
	start, end JDN
}

// NewJDNPeriod returns a JDNPeriod for the given day numbers. It
// returns an error if start is after end.
func NewJDNPeriod(start, end JDN) (JDNPeriod, error) {
	if start > end {
		return JDNPeriod{}, fmt.Errorf("invalid period: start %d is after end %d", start, end)
	}
	return JDNPeriod{start: start, end: end}, nil
}

// JDNPeriodFromJDC returns a JDNPeriod for the given day counts, which
// must be whole days. It returns an error if either value has a
// fractional part or if start is after end.
func JDNPeriodFromJDC(start, end JDC) (JDNPeriod, error) {
	var errs errors.M
	for _, v := range []JDC{start, end} {
		if math.Trunc(float64(v)) != float64(v) {
			errs.Append(fmt.Errorf("non-integral day number: %v", float64(v)))
		}
	}
	if err := errs.Err(); err != nil {
		return JDNPeriod{}, err
	}
	return NewJDNPeriod(JDN(start), JDN(end))
}

// Start returns the first day of the period.
func (p JDNPeriod) Start() JDN {
	return p.start
}

// End returns the last day of the period.
func (p JDNPeriod) End() JDN {
	return p.end
}

// ExactDate returns true if the period covers a single day.
func (p JDNPeriod) ExactDate() bool {
	return p.start == p.end
}

func (p JDNPeriod) String() string {
	return fmt.Sprintf("%d - %d", p.start, p.end)
}

// CalendarPeriod represents a range of calendar dates, inclusive of
// both ends, at day precision.
type CalendarPeriod struct {
	Start, End CalendarDate
}

// NewCalendarPeriod returns a CalendarPeriod for the given dates,
// validating the optional weekday and time of day fields of both
// endpoints.
func NewCalendarPeriod(start, end CalendarDate) (CalendarPeriod, error) {
	var errs errors.M
	errs.Append(start.validate())
	errs.Append(end.validate())
	if err := errs.Err(); err != nil {
		return CalendarPeriod{}, err
	}
	return CalendarPeriod{Start: start, End: end}, nil
}

func (cd CalendarDate) validate() error {
	if cd.Weekday < NoWeekday || cd.Weekday > 6 {
		return fmt.Errorf("invalid weekday: %d, expected 0..6", cd.Weekday)
	}
	if cd.Daytime < 0 || cd.Daytime >= 1 {
		return fmt.Errorf("invalid daytime: %v, expected [0,1)", cd.Daytime)
	}
	return nil
}

func (cp CalendarPeriod) String() string {
	return fmt.Sprintf("%s - %s", cp.Start, cp.End)
}

// Period ties a day count range to its representation in one of the
// supported calendars. The two representations always describe the same
// range of days: every operation returns a new Period with both rebuilt,
// so the pair can never be observed out of step. A Period value is
// immutable; as with any value it must not be replaced concurrently
// without external synchronization.
type Period struct {
	system System
	days   JDNPeriod
	dates  CalendarPeriod
}

// NewPeriod returns a Period for the given day number range represented
// in the given calendar.
func NewPeriod(system System, days JDNPeriod) (Period, error) {
	if !system.valid() {
		return Period{}, fmt.Errorf("unsupported calendar: %s", system)
	}
	return Period{system: system, days: days, dates: system.datesFor(days)}, nil
}

// NewPeriodFromDates returns a Period for the given calendar date range
// interpreted in the given calendar. The dates are converted to day
// numbers and then back again, so the resulting period carries the
// derived weekday of each endpoint. It returns an error if the start
// date is after the end date.
func NewPeriodFromDates(system System, dates CalendarPeriod) (Period, error) {
	if !system.valid() {
		return Period{}, fmt.Errorf("unsupported calendar: %s", system)
	}
	days, err := NewJDNPeriod(system.ToJDN(dates.Start), system.ToJDN(dates.End))
	if err != nil {
		return Period{}, err
	}
	return Period{system: system, days: days, dates: system.datesFor(days)}, nil
}

func (s System) datesFor(days JDNPeriod) CalendarPeriod {
	return CalendarPeriod{
		Start: s.FromJDN(days.Start()),
		End:   s.FromJDN(days.End()),
	}
}

// System returns the calendar the period is currently represented in.
func (p Period) System() System {
	return p.system
}

// JDNPeriod returns the day number range of the period.
func (p Period) JDNPeriod() JDNPeriod {
	return p.days
}

// CalendarPeriod returns the calendar date range of the period.
func (p Period) CalendarPeriod() CalendarPeriod {
	return p.dates
}

// ExactDate returns true if the period covers a single day.
func (p Period) ExactDate() bool {
	return p.days.ExactDate()
}

func (p Period) String() string {
	return fmt.Sprintf("%s: %s (%s)", p.system, p.dates, p.days)
}

// Convert returns the period represented in the target calendar. The
// underlying day number range never changes, only its calendar
// representation, hence converting to any calendar and back is always
// an exact round trip.
func (p Period) Convert(target System) (Period, error) {
	if !target.valid() {
		return Period{}, fmt.Errorf("unsupported calendar: %s", target)
	}
	return Period{system: target, days: p.days, dates: target.datesFor(p.days)}, nil
}

// TransposeDays returns the period shifted by the given number of days.
// Day transposition is calendar agnostic and always exact.
func (p Period) TransposeDays(n int) Period {
	days := JDNPeriod{start: p.days.start + JDN(n), end: p.days.end + JDN(n)}
	return Period{system: p.system, days: days, dates: p.system.datesFor(days)}
}

// TransposeMonths returns the period shifted by the given number of
// months in the period's calendar. If a day does not exist in a
// destination month it is clamped to that month's last day rather than
// carried over. For the Hebrew calendar the number of months per year
// is re-resolved at every year boundary crossed.
func (p Period) TransposeMonths(n int) Period {
	return p.rebuild(
		p.system.transposeMonths(p.dates.Start, n),
		p.system.transposeMonths(p.dates.End, n),
	)
}

// TransposeYears returns the period shifted by the given number of
// years in the period's calendar, keeping month and day. The month is
// clamped for a 13th month landing in a 12 month year and the day is
// clamped to the destination month's length.
func (p Period) TransposeYears(n int) Period {
	return p.rebuild(
		p.system.transposeYears(p.dates.Start, n),
		p.system.transposeYears(p.dates.End, n),
	)
}

// DaysInMonth returns the lengths of the months containing the start
// and end dates of the period.
func (p Period) DaysInMonth() (start, end int) {
	return p.system.DaysInMonth(p.dates.Start.Year, p.dates.Start.Month),
		p.system.DaysInMonth(p.dates.End.Year, p.dates.End.Month)
}

// rebuild re-derives the day count range from transposed endpoint dates
// and then the calendar dates from the day counts, keeping the two in
// step. Transposition preserves endpoint order so the range invariant
// cannot be violated here.
func (p Period) rebuild(start, end CalendarDate) Period {
	days := JDNPeriod{start: p.system.ToJDN(start), end: p.system.ToJDN(end)}
	return Period{system: p.system, days: days, dates: p.system.datesFor(days)}
}

func (s System) transposeMonths(cd CalendarDate, n int) CalendarDate {
	y, m := cd.Year, int(cd.Month)+n
	for m > s.MonthsInYear(y) {
		m -= s.MonthsInYear(y)
		y++
	}
	for m < 1 {
		y--
		m += s.MonthsInYear(y)
	}
	return s.clampDay(y, Month(m), cd.Day)
}

func (s System) transposeYears(cd CalendarDate, n int) CalendarDate {
	y, m := cd.Year+n, int(cd.Month)
	if mn := s.MonthsInYear(y); m > mn {
		m = mn
	}
	return s.clampDay(y, Month(m), cd.Day)
}

func (s System) clampDay(year int, month Month, day int) CalendarDate {
	if dm := s.DaysInMonth(year, month); day > dm {
		day = dm
	}
	return NewCalendarDate(year, month, day)
}
