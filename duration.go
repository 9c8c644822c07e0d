// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendar

import (
	"errors"
	"fmt"
	"strconv"
)

// Duration is a calendar duration in whole years, months and days.
// Unlike a time.Duration it has no fixed length: a month or a year
// covers however many days the calendar it is applied in gives it.
type Duration struct {
	Years, Months, Days int
}

var ErrInvalidDuration = errors.New("invalid duration")

func consumeN(dur string) (int, byte, int, error) {
	for i := range dur {
		c := dur[i]
		if c >= '0' && c <= '9' {
			continue
		}
		switch c {
		case 'Y', 'M', 'W', 'D':
			n, err := strconv.Atoi(dur[:i])
			if err != nil {
				return 0, 0, 0, fmt.Errorf("invalid number: %q: %q: %w", dur[:i], dur, ErrInvalidDuration)
			}
			return n, c, i + 1, nil
		}
		break
	}
	return 0, 0, 0, fmt.Errorf("invalid number or duration designator: %s: %w", dur, ErrInvalidDuration)
}

// ParseDuration parses a calendar duration in the ISO 8601 period
// format restricted to whole calendar units: [-]PnYnMnWnD. Weeks are
// folded into days. A leading - negates every unit, so '-P1M1D' is one
// month and one day backwards.
func ParseDuration(dur string) (Duration, error) {
	nl := len(dur)
	hasP, hasNP := (nl > 0 && dur[0] == 'P'), (nl > 1 && dur[0] == '-' && dur[1] == 'P')
	if !hasP && !hasNP {
		return Duration{}, fmt.Errorf("duration must start with P or -P: %s: %w", dur, ErrInvalidDuration)
	}
	dur = dur[1:]
	if hasNP {
		dur = dur[1:]
	}
	var result Duration
	for len(dur) > 0 {
		n, designator, idx, err := consumeN(dur)
		if err != nil {
			return Duration{}, err
		}
		dur = dur[idx:]
		switch designator {
		case 'Y':
			result.Years += n
		case 'M':
			result.Months += n
		case 'W':
			result.Days += 7 * n
		case 'D':
			result.Days += n
		}
	}
	if hasNP {
		result.Years, result.Months, result.Days = -result.Years, -result.Months, -result.Days
	}
	return result, nil
}

func (d Duration) String() string {
	if d == (Duration{}) {
		return "P0D"
	}
	s := "P"
	if d.Years <= 0 && d.Months <= 0 && d.Days <= 0 {
		d.Years, d.Months, d.Days = -d.Years, -d.Months, -d.Days
		s = "-P"
	}
	if d.Years != 0 {
		s += fmt.Sprintf("%dY", d.Years)
	}
	if d.Months != 0 {
		s += fmt.Sprintf("%dM", d.Months)
	}
	if d.Days != 0 {
		s += fmt.Sprintf("%dD", d.Days)
	}
	return s
}

// Transpose returns the period shifted by the duration, applying the
// years first, then the months, then the days. Since month and year
// transposition clamp, the order matters and the shift is not
// invertible in general.
func (p Period) Transpose(d Duration) Period {
	moved := p
	if d.Years != 0 {
		moved = moved.TransposeYears(d.Years)
	}
	if d.Months != 0 {
		moved = moved.TransposeMonths(d.Months)
	}
	if d.Days != 0 {
		moved = moved.TransposeDays(d.Days)
	}
	return moved
}
