// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package rrule implements the recurrence rules defined in RFC 5545
// https://datatracker.ietf.org/doc/html/rfc5545#section-3.3.10
package rrule

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	vval "github.com/malpanez/vobject/value"
)

type Frequency string

const (
	FrequencySecondly Frequency = "SECONDLY"
	FrequencyMinutely Frequency = "MINUTELY"
	FrequencyHourly   Frequency = "HOURLY"
	FrequencyDaily    Frequency = "DAILY"
	FrequencyWeekly   Frequency = "WEEKLY"
	FrequencyMonthly  Frequency = "MONTHLY"
	FrequencyYearly   Frequency = "YEARLY"
)

type Weekday string

const (
	WeekdayMonday    Weekday = "MO"
	WeekdayTuesday   Weekday = "TU"
	WeekdayWednesday Weekday = "WE"
	WeekdayThursday  Weekday = "TH"
	WeekdayFriday    Weekday = "FR"
	WeekdaySaturday  Weekday = "SA"
	WeekdaySunday    Weekday = "SU"
)

type ByDay struct {
	// The day of the week that the event occurs on
	Weekday Weekday
	// The ordinal of Weekday within the month (or year)
	// eg: If Weekday is Tuesday, and Interval is 2, the event happens on the second Tuesday;
	// negative numbers count from the end (-1 is the last Tuesday).
	// ParseByDay sets 1 when the BYDAY entry has no numeric prefix.
	Interval int
}

type RRule struct {
	// The frequency of the event
	// This MUST be specified
	Frequency Frequency
	// The interval between occurrences of the event
	// eg: an interval of 2 for a daily rule means the event will happen every other day
	// Not mandatory, but treated as 1 if not present
	Interval int
	// The number of occurrences of the event
	// Can not occur with the Until property
	// Expand counts only the occurrences the rule itself produces; DTStart
	// counts only when it matches the rule
	Count *int
	// The date and time until the rule ends, inclusive
	// Can not occur with the Count property
	Until *time.Time
	// The day of the week that the event occurs on
	// This is optional and repeatable
	Weekday []ByDay

	// The Month(s) of the year that the event occurs on
	Month []int

	// The day of the month that the event occurs on
	// eg: 10th of the month, negative numbers are allowed to indicate the last day of the month
	// for example, -3 is the third-to-last-day of the month
	Monthday []int

	// The day of the year that the event occurs on
	// eg: 100th day of the year, negative numbers are allowed to indicate the last day of the year
	YearDay []int

	// The week number(s) of the year that the event occurs on (ISO week numbering),
	// negative numbers count back from the end of the year. Only valid with FREQ=YEARLY.
	WeekNo []int

	// The hour(s) of the day that the event occurs on (0-23)
	Hour []int

	// The minute(s) of the hour that the event occurs on (0-59)
	Minute []int

	// The second(s) of the minute that the event occurs on (0-60, 60 for leap seconds)
	Second []int

	// The Nth occurrence(s) within the frequency's interval to keep;
	// negative numbers count back from the end of the set
	SetPos []int

	// The day on which the work week starts, defaults to Monday if unset
	WeekStart Weekday
}

// ParseRRule takes an iCal reccurence rule string and parses it into a RRule struct
// https://datatracker.ietf.org/doc/html/rfc5545#section-3.3.10
// https://datatracker.ietf.org/doc/html/rfc5545#section-3.8.5.3
// Example for an event that happens daily for 10 days:
// Input:
// RRULE:FREQ=DAILY;INTERVAL=1;COUNT=10
// Output:
// RRule{Frequency: FrequencyDaily, Interval: 1, Count: <pointer to 10>, Until: nil}
func ParseRRule(rruleString string) (*RRule, error) {
	rrule := &RRule{
		// Default to 1 if not present
		Interval: 1,
	}
	// A stray backslash escape (seen in some non-conformant producers,
	// e.g. an escaped comma inside a BYDAY list) is stripped before the
	// field grammar is parsed; RRULE values have no escaping of their own.
	rruleString = stripBackslashEscapes(rruleString)
	for part := range strings.SplitSeq(rruleString, ";") {
		tag, value, found := strings.Cut(part, "=")
		if !found {
			return nil, ErrInvalidRRuleString
		}
		switch tag {
		case "FREQ":
			switch freq := Frequency(value); freq {
			case FrequencySecondly, FrequencyMinutely, FrequencyHourly, FrequencyDaily,
				FrequencyWeekly, FrequencyMonthly, FrequencyYearly:
				rrule.Frequency = freq
			default:
				return nil, fmt.Errorf("%w: %s", errInvalidFrequency, value)
			}
		case "INTERVAL":
			interval, err := strconv.Atoi(value)
			if err != nil {
				return nil, err
			}
			rrule.Interval = interval
		case "COUNT":
			count, err := strconv.Atoi(value)
			if err != nil {
				return nil, err
			}
			rrule.Count = &count
		case "UNTIL":
			until, err := parseUntil(value)
			if err != nil {
				return nil, err
			}
			rrule.Until = &until
		case "BYDAY":
			weekdays := strings.Split(value, ",")
			rrule.Weekday = make([]ByDay, 0, len(weekdays))
			for _, weekday := range weekdays {
				// if there is an interval other than 1, it can be expressed as the number at the start of the string
				interval, weekday, err := ParseByDay(weekday)
				if err != nil {
					return nil, err
				}
				rrule.Weekday = append(rrule.Weekday, ByDay{Weekday: weekday, Interval: interval})
			}
		case "BYMONTH":
			months := strings.Split(value, ",")
			rrule.Month = make([]int, 0, len(months))
			for _, month := range months {
				monthInt, err := strconv.Atoi(month)
				if err != nil {
					return nil, err
				}
				rrule.Month = append(rrule.Month, monthInt)
			}
		case "BYMONTHDAY":
			monthdays := strings.Split(value, ",")
			rrule.Monthday = make([]int, 0, len(monthdays))
			for _, monthday := range monthdays {
				monthdayInt, err := strconv.Atoi(monthday)
				if err != nil {
					return nil, err
				}
				rrule.Monthday = append(rrule.Monthday, monthdayInt)
			}
		case "BYYEARDAY":
			yeardays := strings.Split(value, ",")
			rrule.YearDay = make([]int, 0, len(yeardays))
			for _, yearday := range yeardays {
				yeardayInt, err := strconv.Atoi(yearday)
				if err != nil {
					return nil, err
				}
				rrule.YearDay = append(rrule.YearDay, yeardayInt)
			}
		case "BYWEEKNO":
			weeknos, err := parseIntList(value)
			if err != nil {
				return nil, err
			}
			rrule.WeekNo = weeknos
		case "BYHOUR":
			hours, err := parseIntList(value)
			if err != nil {
				return nil, err
			}
			rrule.Hour = hours
		case "BYMINUTE":
			minutes, err := parseIntList(value)
			if err != nil {
				return nil, err
			}
			rrule.Minute = minutes
		case "BYSECOND":
			seconds, err := parseIntList(value)
			if err != nil {
				return nil, err
			}
			rrule.Second = seconds
		case "BYSETPOS":
			setpos, err := parseIntList(value)
			if err != nil {
				return nil, err
			}
			rrule.SetPos = setpos
		case "WKST":
			wkst := Weekday(value)
			if !isValidWeekday(wkst) {
				return nil, ErrInvalidRRuleString
			}
			rrule.WeekStart = wkst
		}
	}
	if err := validateRRule(rrule); err != nil {
		return nil, err
	}
	return rrule, nil
}

func validateRRule(rrule *RRule) error {
	if rrule.Frequency == "" {
		return ErrFrequencyRequired
	}
	if rrule.Count != nil && rrule.Until != nil {
		return ErrCountAndUntilBothSet
	}
	if rrule.Interval <= 0 {
		return ErrInvalidInterval
	}
	return nil
}

// ParseByDay parses a BYDAY value string and returns the interval and weekday.
// The string can be in the format "20MO" (interval + weekday) or just "MO" (weekday only).
// If no interval is specified, the interval defaults to 1.
// Valid weekdays are: MO, TU, WE, TH, FR, SA, SU.
// Returns (interval, weekday, error) where interval is an integer and weekday is a string.
func ParseByDay(byDayString string) (int, Weekday, error) {
	if byDayString == "" {
		return 0, "", ErrInvalidByDayString
	}

	// Check if string starts with a digit or minus sign
	if len(byDayString) > 0 && (byDayString[0] >= '0' && byDayString[0] <= '9' || byDayString[0] == '-') {
		// Find where the digits end (including negative sign)
		digitEnd := 0
		for i, char := range byDayString {
			if char < '0' || char > '9' {
				// Allow minus sign at the beginning
				if char == '-' && i == 0 {
					continue
				}
				digitEnd = i
				break
			}
			digitEnd = i + 1
		}

		// Extract interval and weekday
		intervalStr := byDayString[:digitEnd]
		weekday := Weekday(byDayString[digitEnd:])

		// Validate weekday
		if !isValidWeekday(weekday) {
			return 0, "", ErrInvalidByDayString
		}

		// Parse interval (can be negative)
		interval, err := strconv.Atoi(intervalStr)
		if err != nil {
			return 0, "", ErrInvalidByDayString
		}

		return interval, weekday, nil
	}

	// No interval prefix, check if it's a valid weekday
	if !isValidWeekday(Weekday(byDayString)) {
		return 0, "", ErrInvalidByDayString
	}

	return 1, Weekday(byDayString), nil
}

// isValidWeekday checks if the string is a valid weekday abbreviation.
func isValidWeekday(weekday Weekday) bool {
	switch weekday {
	case WeekdayMonday, WeekdayTuesday, WeekdayWednesday, WeekdayThursday, WeekdayFriday, WeekdaySaturday, WeekdaySunday:
		return true
	default:
		return false
	}
}

// parseIntList parses a comma-separated list of (possibly negative)
// integers, used by BYWEEKNO/BYHOUR/BYMINUTE/BYSECOND/BYSETPOS.
func parseIntList(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}

// stripBackslashEscapes removes any backslash immediately preceding
// another character, leaving that character bare. RRULE field values are
// not TEXT and carry no escaping of their own, but some producers escape
// commas inside BYDAY/BYMONTHDAY lists anyway.
func stripBackslashEscapes(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) {
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

// parseUntil parses an RRULE UNTIL value, which per RFC 5545 §3.3.10 is
// either a DATE or a UTC DATE-TIME.
func parseUntil(s string) (time.Time, error) {
	if strings.Contains(s, "T") {
		return vval.ParseDateTime(s, time.UTC)
	}
	return vval.ParseDate(s)
}
