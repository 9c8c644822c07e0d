// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package observance provides named days that recur every year of one
// of the supported calendars and iteration over their occurrences, in
// day count order, across calendars.
package observance

import (
	"iter"

	"cloudeng.io/algo/container/heap"
	"cloudeng.io/calendar"
)

// Observance is a named day that recurs every year of a calendar, eg.
// Gregorian January 1 or Hebrew 15 Nisan.
type Observance struct {
	Name   string
	System calendar.System
	Month  calendar.Month
	Day    int
}

// Occurrence is a single occurrence of an observance.
type Occurrence struct {
	Observance
	Date calendar.CalendarDate
	Day  calendar.JDN
}

// inYear returns the occurrence in the given year of the observance's
// calendar. The month and day are clamped to the year's shape, for a
// 13th month observance falling in a 12 month Hebrew year and for days
// beyond a destination month's length.
func (o Observance) inYear(year int) Occurrence {
	m := o.Month
	if mn := calendar.Month(o.System.MonthsInYear(year)); m > mn {
		m = mn
	}
	d := o.Day
	if dm := o.System.DaysInMonth(year, m); d > dm {
		d = dm
	}
	jdn := o.System.ToJDN(calendar.NewCalendarDate(year, m, d))
	return Occurrence{Observance: o, Date: o.System.FromJDN(jdn), Day: jdn}
}

// Next returns the first occurrence of the observance on or after the
// given day.
func (o Observance) Next(from calendar.JDN) Occurrence {
	year := o.System.FromJDN(from).Year
	occ := o.inYear(year)
	for occ.Day < from {
		year++
		occ = o.inYear(year)
	}
	return occ
}

// List represents a set of observances, possibly defined against
// different calendars.
type List []Observance

// Upcoming returns an iterator that yields the occurrences of the
// observances in the list, starting on or after the given day, in day
// count order. The iteration never ends of its own accord since every
// observance recurs; the caller terminates it.
func (l List) Upcoming(from calendar.JDN) iter.Seq[Occurrence] {
	return func(yield func(Occurrence) bool) {
		h := heap.NewMin(heap.WithSliceCap[int64, Occurrence](len(l)))
		for _, o := range l {
			occ := o.Next(from)
			h.Push(int64(occ.Day), occ)
		}
		for h.Len() > 0 {
			_, occ := h.Pop()
			if !yield(occ) {
				return
			}
			next := occ.Observance.Next(occ.Day + 1)
			h.Push(int64(next.Day), next)
		}
	}
}
