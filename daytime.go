// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendar

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// TimeOfDay represents a civil time of day at second resolution. It is
// the human readable form of the fractional Daytime carried by a
// CalendarDate and through the fractional part of a JDC.
type TimeOfDay uint32

// NewTimeOfDay creates a new TimeOfDay from the specified hour, minute and second.
func NewTimeOfDay(hour, minute, second int) TimeOfDay {
	return TimeOfDay(hour<<16 | minute<<8 | second)
}

// TimeOfDayFromFraction returns the TimeOfDay for a fraction of a day
// in [0,1), rounded to the nearest second.
func TimeOfDayFromFraction(f float64) TimeOfDay {
	sec := int(f*86400 + 0.5)
	if sec > 86399 {
		sec = 86399
	}
	if sec < 0 {
		sec = 0
	}
	return NewTimeOfDay(sec/3600, sec/60%60, sec%60)
}

func (t TimeOfDay) Hour() int {
	return int(t >> 16)
}

func (t TimeOfDay) Minute() int {
	return int(t >> 8 & 0xff)
}

func (t TimeOfDay) Second() int {
	return int(t & 0xff)
}

// Fraction returns the time of day as a fraction of a day in [0,1),
// suitable for a CalendarDate's Daytime.
func (t TimeOfDay) Fraction() float64 {
	return float64(t.Hour()*3600+t.Minute()*60+t.Second()) / 86400
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", t.Hour(), t.Minute(), t.Second())
}

func isDigits(s string) bool {
	for _, c := range s {
		if !unicode.IsNumber(c) {
			return false
		}
	}
	return true
}

func (t *TimeOfDay) parseHour(h string, ampmState int) (int, error) {
	hour, err := strconv.Atoi(h)
	if err != nil || hour < 0 || hour > 23 {
		return 0, fmt.Errorf("invalid hour: %s", h)
	}
	if ampmState != 0 && hour > 12 {
		return 0, fmt.Errorf("invalid hour: %s with am/pm", h)
	}
	if ampmState == 1 && hour == 12 {
		hour = 0
	}
	if ampmState == 2 && hour < 12 {
		hour += 12
	}
	return hour, nil
}

func (t *TimeOfDay) parseHourMinuteSec(h, m, s string, ampmState int) error {
	if !isDigits(s) || !isDigits(h) || !isDigits(m) {
		return fmt.Errorf("invalid second: %s", s)
	}
	hour, err := t.parseHour(h, ampmState)
	if err != nil {
		return err
	}
	minute, err := strconv.Atoi(m)
	if err != nil || minute < 0 || minute > 59 {
		return fmt.Errorf("invalid minute: %s", m)
	}
	sec, err := strconv.Atoi(s)
	if err != nil || sec < 0 || sec > 59 {
		return fmt.Errorf("invalid second: %s", s)
	}
	*t = NewTimeOfDay(hour, minute, sec)
	return nil
}

// Parse val in formats '08[:12[:10]][am|pm]'
func (t *TimeOfDay) Parse(val string) error {
	if len(val) == 0 {
		return fmt.Errorf("empty value, expected '08[:12][:10][am|pm]'")
	}
	tl := strings.TrimSpace(strings.ToLower(val))
	ampmState := 0
	if strings.HasSuffix(tl, "am") {
		val = strings.TrimSpace(tl[:len(tl)-2])
		ampmState = 1
	}
	if strings.HasSuffix(tl, "pm") {
		val = strings.TrimSpace(tl[:len(tl)-2])
		ampmState = 2
	}
	parts := strings.Split(val, ":")
	switch len(parts) {
	case 1:
		return t.parseHourMinuteSec(parts[0], "0", "0", ampmState)
	case 2:
		return t.parseHourMinuteSec(parts[0], parts[1], "0", ampmState)
	case 3:
		return t.parseHourMinuteSec(parts[0], parts[1], parts[2], ampmState)
	}
	return fmt.Errorf("invalid format, expected '08:12[:10]'")
}

// TimeOfDay returns the date's Daytime as a civil time of day, rounded
// to the nearest second.
func (cd CalendarDate) TimeOfDay() TimeOfDay {
	return TimeOfDayFromFraction(cd.Daytime)
}
