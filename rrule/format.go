// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package rrule

import (
	"strconv"
	"strings"
	"time"
)

// FormatRRule renders rr back to its RFC 5545 RRULE value text.
func (rr *RRule) FormatRRule() string {
	var parts []string
	parts = append(parts, "FREQ="+string(rr.Frequency))
	if rr.Interval > 1 {
		parts = append(parts, "INTERVAL="+strconv.Itoa(rr.Interval))
	}
	if rr.Count != nil {
		parts = append(parts, "COUNT="+strconv.Itoa(*rr.Count))
	}
	if rr.Until != nil {
		parts = append(parts, "UNTIL="+formatUntil(*rr.Until))
	}
	if len(rr.Weekday) > 0 {
		days := make([]string, len(rr.Weekday))
		for i, d := range rr.Weekday {
			if d.Interval != 0 && d.Interval != 1 {
				days[i] = strconv.Itoa(d.Interval) + string(d.Weekday)
			} else {
				days[i] = string(d.Weekday)
			}
		}
		parts = append(parts, "BYDAY="+strings.Join(days, ","))
	}
	if len(rr.Month) > 0 {
		parts = append(parts, "BYMONTH="+joinInts(rr.Month))
	}
	if len(rr.Monthday) > 0 {
		parts = append(parts, "BYMONTHDAY="+joinInts(rr.Monthday))
	}
	if len(rr.YearDay) > 0 {
		parts = append(parts, "BYYEARDAY="+joinInts(rr.YearDay))
	}
	if len(rr.WeekNo) > 0 {
		parts = append(parts, "BYWEEKNO="+joinInts(rr.WeekNo))
	}
	if len(rr.Hour) > 0 {
		parts = append(parts, "BYHOUR="+joinInts(rr.Hour))
	}
	if len(rr.Minute) > 0 {
		parts = append(parts, "BYMINUTE="+joinInts(rr.Minute))
	}
	if len(rr.Second) > 0 {
		parts = append(parts, "BYSECOND="+joinInts(rr.Second))
	}
	if len(rr.SetPos) > 0 {
		parts = append(parts, "BYSETPOS="+joinInts(rr.SetPos))
	}
	if rr.WeekStart != "" && rr.WeekStart != WeekdayMonday {
		parts = append(parts, "WKST="+string(rr.WeekStart))
	}
	return strings.Join(parts, ";")
}

func formatUntil(t time.Time) string {
	if t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0 && t.Location() == time.UTC {
		return t.Format("20060102")
	}
	return t.UTC().Format("20060102T150405Z")
}

func joinInts(vs []int) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}
