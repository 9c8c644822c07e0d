// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendar

import "math"

// JDN is a Julian Day Number, the calendar independent count of whole
// days since the Julian day epoch (noon, Jan 1 4713 BCE in the proleptic
// Julian calendar).
type JDN int

// JDC is a Julian Day Count, that is, a JDN extended with a fractional
// time of day. The integral part of a JDC refers to noon, hence a
// fraction of 0.5 corresponds to the midnight that starts the following
// calendar day.
type JDC float64

// JDN returns the Julian Day Number of the calendar day that the
// day count falls on. Fractions of 0.5 and above belong to the following
// calendar day, fractions below 0.5 to the day whose noon-to-noon
// interval contains them.
func (jdc JDC) JDN() JDN {
	return JDN(math.Floor(float64(jdc) + 0.5))
}

// JDC returns the day count at the start (midnight) of the day.
func (jdn JDN) JDC() JDC {
	return JDC(float64(jdn) - 0.5)
}

// Weekday returns the day of the week that the day count falls on,
// in the range 0 to 6 with 0 being Sunday.
func (jdc JDC) Weekday() Weekday {
	return Weekday(floorMod(int(math.Floor(float64(jdc)+1.5)), 7))
}

// Weekday returns the day of the week for the day number, in the range
// 0 to 6 with 0 being Sunday.
func (jdn JDN) Weekday() Weekday {
	return Weekday(floorMod(int(jdn)+1, 7))
}

// Weekday represents a day of the week as 0 through 6 with 0 being
// Sunday. NoWeekday is used for dates whose weekday has not been
// determined.
type Weekday int

const NoWeekday Weekday = -1

var weekdays = []string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

func (w Weekday) String() string {
	if w < 0 || w > 6 {
		return "unknown"
	}
	return weekdays[w]
}

// floorMod returns a mod b with the result taking the sign of b,
// ie. in [0, b) for positive b regardless of the sign of a.
func floorMod(a, b int) int {
	r := a % b
	if r < 0 {
		r += b
	}
	return r
}

// itrunc truncates towards zero, which differs from flooring for
// negative intermediate values. Most of the conversion arithmetic
// wants truncation; the Gregorian century terms are the exception,
// see gregorian.go.
func itrunc(v float64) float64 {
	return math.Trunc(v)
}
