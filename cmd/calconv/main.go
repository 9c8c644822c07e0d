// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Command calconv converts dates between the Gregorian, Julian, Islamic
// and Hebrew calendars, transposes them by days, months or years and
// reports per year calendar information.
package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"cloudeng.io/calendar"
	"cloudeng.io/calendar/names"
	"cloudeng.io/cmdutil"
	"cloudeng.io/cmdutil/subcmd"
	"cloudeng.io/errors"
)

type convertFlags struct {
	From    string `subcmd:"from,gregorian,calendar the input dates are expressed in"`
	To      string `subcmd:"to,gregorian,calendar to convert the dates to"`
	Daytime string `subcmd:"daytime,,'time of day to attach to each date, eg. 13:30:15 or 9pm'"`
}

type transposeFlags struct {
	Calendar string `subcmd:"calendar,gregorian,calendar the dates are expressed in"`
	By       string `subcmd:"by,,'ISO 8601 duration to shift the dates by, eg. P1Y2M10D, overrides the unit flags'"`
	Days     int    `subcmd:"days,0,number of days to shift the dates by"`
	Months   int    `subcmd:"months,0,number of months to shift the dates by"`
	Years    int    `subcmd:"years,0,number of years to shift the dates by"`
}

type yearFlags struct {
	Calendar string `subcmd:"calendar,hebrew,calendar the year belongs to"`
}

type monthNamesFlags struct {
	Calendar string `subcmd:"calendar,gregorian,calendar to show the month names of"`
	Locale   string `subcmd:"locale,en,locale to show the names in"`
	Format   string `subcmd:"format,long,'name format: long, short or narrow'"`
	Year     int    `subcmd:"year,1,year the months belong to; only hebrew years differ"`
}

var cmds subcmd.CommandSet

func init() {
	convFl := subcmd.NewFlags("convert", "convert dates from one calendar to another", "<yyyy-mm-dd>...")
	convFl.MustRegisterFlagStruct("subcmd", &convertFlags{}, nil, nil)
	transFl := subcmd.NewFlags("transpose", "shift dates by whole days, months or years within a calendar", "<yyyy-mm-dd>...")
	transFl.MustRegisterFlagStruct("subcmd", &transposeFlags{}, nil, nil)
	yearFl := subcmd.NewFlags("year", "show the shape of a calendar year", "<year>")
	yearFl.MustRegisterFlagStruct("subcmd", &yearFlags{}, nil, nil)
	namesFl := subcmd.NewFlags("month-names", "show localized month names for a calendar year")
	namesFl.MustRegisterFlagStruct("subcmd", &monthNamesFlags{}, nil, nil)

	cmds = subcmd.First(convFl, convert).
		Append(transFl, transpose).
		Append(yearFl, yearInfo, subcmd.ExactlyNumArguments(1)).
		Append(namesFl, monthNames, subcmd.WithoutArguments())
}

func main() {
	if err := cmds.Dispatch(context.Background()); err != nil {
		cmdutil.Exit("%v", err)
	}
}

func parseSystem(val string) (calendar.System, error) {
	var s calendar.System
	err := s.Parse(val)
	return s, err
}

func periodFor(s calendar.System, arg string) (calendar.Period, error) {
	var cd calendar.CalendarDate
	if err := cd.Parse(arg); err != nil {
		return calendar.Period{}, err
	}
	return calendar.NewPeriodFromDates(s, calendar.CalendarPeriod{Start: cd, End: cd})
}

func convert(_ context.Context, values interface{}, args []string) error {
	cl := values.(*convertFlags)
	from, err := parseSystem(cl.From)
	if err != nil {
		return err
	}
	to, err := parseSystem(cl.To)
	if err != nil {
		return err
	}
	var daytime float64
	if cl.Daytime != "" {
		var tod calendar.TimeOfDay
		if err := tod.Parse(cl.Daytime); err != nil {
			return err
		}
		daytime = tod.Fraction()
	}
	var errs errors.M
	for _, arg := range args {
		var cd calendar.CalendarDate
		if err := cd.Parse(arg); err != nil {
			errs.Append(err)
			continue
		}
		cd, err := cd.WithDaytime(daytime)
		if err != nil {
			errs.Append(err)
			continue
		}
		conv := to.FromJDC(from.ToJDC(cd))
		if cl.Daytime != "" {
			fmt.Printf("%s %s %s = %s %s %s (%s, jdc %.6f)\n",
				from, arg, cd.TimeOfDay(), to, conv, conv.TimeOfDay(), conv.Weekday, float64(from.ToJDC(cd)))
			continue
		}
		fmt.Printf("%s %s = %s %s (%s, jdn %d)\n", from, arg, to, conv, conv.Weekday, from.ToJDN(cd))
	}
	return errs.Err()
}

func transpose(_ context.Context, values interface{}, args []string) error {
	cl := values.(*transposeFlags)
	s, err := parseSystem(cl.Calendar)
	if err != nil {
		return err
	}
	by := calendar.Duration{Years: cl.Years, Months: cl.Months, Days: cl.Days}
	if cl.By != "" {
		if by, err = calendar.ParseDuration(cl.By); err != nil {
			return err
		}
	}
	var errs errors.M
	for _, arg := range args {
		p, err := periodFor(s, arg)
		if err != nil {
			errs.Append(err)
			continue
		}
		p = p.Transpose(by)
		fmt.Printf("%s %s -> %s\n", s, arg, p.CalendarPeriod().Start)
	}
	return errs.Err()
}

func yearInfo(_ context.Context, values interface{}, args []string) error {
	cl := values.(*yearFlags)
	s, err := parseSystem(cl.Calendar)
	if err != nil {
		return err
	}
	year, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid year: %s", args[0])
	}
	if s == calendar.Hebrew {
		yc := calendar.HebrewYearCharacter(year)
		fmt.Printf("hebrew %d: %d days, %d months, begins on a %s\n", year, yc.Days, yc.Months, yc.FirstWeekday)
		return nil
	}
	days := s.ToJDN(calendar.NewCalendarDate(year+1, 1, 1)) - s.ToJDN(calendar.NewCalendarDate(year, 1, 1))
	leap := ""
	if s.IsLeap(year) {
		leap = ", leap year"
	}
	fmt.Printf("%s %d: %d days%s\n", s, year, days, leap)
	return nil
}

func monthNames(_ context.Context, values interface{}, _ []string) error {
	cl := values.(*monthNamesFlags)
	s, err := parseSystem(cl.Calendar)
	if err != nil {
		return err
	}
	var format names.Format
	if err := format.Parse(cl.Format); err != nil {
		return err
	}
	fmt.Println(strings.Join(names.Months(s, cl.Year, cl.Locale, format), ", "))
	return nil
}
