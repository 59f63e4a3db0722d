// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package rrule

import (
	"sort"
	"time"
)

// weekdayIndex maps a Weekday token to time.Weekday.
var weekdayIndex = map[Weekday]time.Weekday{
	WeekdaySunday:    time.Sunday,
	WeekdayMonday:    time.Monday,
	WeekdayTuesday:   time.Tuesday,
	WeekdayWednesday: time.Wednesday,
	WeekdayThursday:  time.Thursday,
	WeekdayFriday:    time.Friday,
	WeekdaySaturday:  time.Saturday,
}

// Expand generates the occurrences of rr starting from dtstart (inclusive)
// up to limit results or, if rr.Until/rr.Count bound the rule first,
// whichever comes sooner. It is the bounded, slice-returning counterpart to
// the unbounded sequence RFC 5545 describes; RuleSet.Iterate offers a
// channel-based form for callers that want to stop early without choosing
// a limit up front.
func (rr *RRule) Expand(dtstart time.Time, limit int) []time.Time {
	if limit <= 0 {
		return nil
	}
	out := make([]time.Time, 0, min(limit, 64))
	count := 0
	for occ := range rr.iterate(dtstart) {
		if rr.Until != nil && occ.After(*rr.Until) {
			break
		}
		out = append(out, occ)
		count++
		if rr.Count != nil && count >= *rr.Count {
			break
		}
		if len(out) >= limit {
			break
		}
	}
	return out
}

// iterate yields raw candidate occurrences in chronological order, without
// applying Until/Count — those are the caller's responsibility so that
// RuleSet can merge this with RDATE/EXDATE/EXRULE before truncating.
func (rr *RRule) iterate(dtstart time.Time) func(func(time.Time) bool) {
	return func(yield func(time.Time) bool) {
		periodStart := dtstart
		emitted := 0
		// A hard safety cap: RFC 5545 rules are an unbounded sequence, but a
		// malformed rule (e.g. BY* filters that never match) must not spin
		// forever. 10000 periods comfortably covers any COUNT/UNTIL bound a
		// real calendar would set.
		for period := 0; period < 10000; period++ {
			candidates := rr.candidatesForPeriod(dtstart, periodStart)
			candidates = applySetPos(candidates, rr.SetPos)
			sort.Slice(candidates, func(i, j int) bool { return candidates[i].Before(candidates[j]) })
			for _, c := range candidates {
				if c.Before(dtstart) {
					continue
				}
				emitted++
				if !yield(c) {
					return
				}
			}
			periodStart = rr.advancePeriod(periodStart)
		}
	}
}

// candidatesForPeriod returns every occurrence time that falls inside the
// period containing periodStart (a year/month/week/day/hour/minute/second
// depending on rr.Frequency), honoring the BY* filters.
func (rr *RRule) candidatesForPeriod(dtstart, periodStart time.Time) []time.Time {
	var dates []time.Time
	switch rr.Frequency {
	case FrequencyYearly:
		dates = rr.yearlyDates(dtstart, periodStart)
	case FrequencyMonthly:
		dates = rr.monthlyDates(dtstart, periodStart)
	case FrequencyWeekly:
		dates = rr.weeklyDates(dtstart, periodStart)
	case FrequencyDaily:
		dates = []time.Time{dateOnly(periodStart)}
		dates = rr.filterByDayOfWeek(dates)
	case FrequencyHourly, FrequencyMinutely, FrequencySecondly:
		return rr.subDailyCandidates(dtstart, periodStart)
	default:
		dates = []time.Time{dateOnly(periodStart)}
	}

	dates = rr.filterByMonth(dates)
	return rr.crossWithTimeOfDay(dates, dtstart)
}

func (rr *RRule) yearlyDates(dtstart, periodStart time.Time) []time.Time {
	year := periodStart.Year()
	loc := dtstart.Location()

	switch {
	case len(rr.YearDay) > 0:
		var out []time.Time
		yearLen := daysInYear(year)
		for _, yd := range rr.YearDay {
			day := yd
			if day < 0 {
				day = yearLen + day + 1
			}
			if day < 1 || day > yearLen {
				continue
			}
			out = append(out, time.Date(year, time.January, 1, 0, 0, 0, 0, loc).AddDate(0, 0, day-1))
		}
		return out
	case len(rr.Weekday) > 0:
		return rr.yearlyByDay(year, loc)
	case len(rr.Monthday) > 0:
		months := rr.Month
		if len(months) == 0 {
			months = []int{int(dtstart.Month())}
		}
		var out []time.Time
		for _, m := range months {
			out = append(out, monthdayDates(year, time.Month(m), rr.Monthday, loc)...)
		}
		return out
	case len(rr.Month) > 0:
		var out []time.Time
		for _, m := range rr.Month {
			out = append(out, time.Date(year, time.Month(m), dtstart.Day(), 0, 0, 0, 0, loc))
		}
		return out
	default:
		return []time.Time{time.Date(year, dtstart.Month(), dtstart.Day(), 0, 0, 0, 0, loc)}
	}
}

func (rr *RRule) yearlyByDay(year int, loc *time.Location) []time.Time {
	var out []time.Time
	months := rr.Month
	if len(months) == 0 {
		months = []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}
	}
	for _, m := range months {
		out = append(out, monthlyByDayDates(year, time.Month(m), rr.Weekday, loc)...)
	}
	return out
}

func (rr *RRule) monthlyDates(dtstart, periodStart time.Time) []time.Time {
	year, month := periodStart.Year(), periodStart.Month()
	loc := dtstart.Location()

	switch {
	case len(rr.Monthday) > 0:
		return monthdayDates(year, month, rr.Monthday, loc)
	case len(rr.Weekday) > 0:
		return monthlyByDayDates(year, month, rr.Weekday, loc)
	default:
		return []time.Time{time.Date(year, month, dtstart.Day(), 0, 0, 0, 0, loc)}
	}
}

func (rr *RRule) weeklyDates(dtstart, periodStart time.Time) []time.Time {
	loc := dtstart.Location()
	weekStart := startOfWeek(periodStart, rr.WeekStart)

	weekdays := rr.Weekday
	if len(weekdays) == 0 {
		return []time.Time{dateOnly(periodStart)}
	}
	var out []time.Time
	for _, wd := range weekdays {
		target := weekdayIndex[wd.Weekday]
		delta := (int(target) - int(weekStart.Weekday()) + 7) % 7
		out = append(out, time.Date(weekStart.Year(), weekStart.Month(), weekStart.Day(), 0, 0, 0, 0, loc).AddDate(0, 0, delta))
	}
	return out
}

func (rr *RRule) subDailyCandidates(dtstart, periodStart time.Time) []time.Time {
	if !rr.matchesDateFilters(periodStart) {
		return nil
	}
	hours := rr.Hour
	if len(hours) == 0 {
		hours = []int{periodStart.Hour()}
	}
	minutes := rr.Minute
	if len(minutes) == 0 {
		minutes = []int{periodStart.Minute()}
	}
	seconds := rr.Second
	if len(seconds) == 0 {
		seconds = []int{periodStart.Second()}
	}
	var out []time.Time
	base := dateOnly(periodStart)
	for _, h := range hours {
		for _, m := range minutes {
			for _, s := range seconds {
				out = append(out, time.Date(base.Year(), base.Month(), base.Day(), h, m, s, 0, dtstart.Location()))
			}
		}
	}
	return applySetPos(out, rr.SetPos)
}

// matchesDateFilters applies BYMONTH/BYDAY date-level filters used when
// FREQ is HOURLY/MINUTELY/SECONDLY (where the "period" is a single
// instant, not a date, so only the coarse filters apply).
func (rr *RRule) matchesDateFilters(t time.Time) bool {
	if len(rr.Month) > 0 {
		ok := false
		for _, m := range rr.Month {
			if int(t.Month()) == m {
				ok = true
				break
			}
		}
		if !ok {
			return false
		}
	}
	if len(rr.Weekday) > 0 {
		ok := false
		for _, wd := range rr.Weekday {
			if weekdayIndex[wd.Weekday] == t.Weekday() {
				ok = true
				break
			}
		}
		if !ok {
			return false
		}
	}
	return true
}

func (rr *RRule) filterByMonth(dates []time.Time) []time.Time {
	if len(rr.Month) == 0 {
		return dates
	}
	var out []time.Time
	for _, d := range dates {
		for _, m := range rr.Month {
			if int(d.Month()) == m {
				out = append(out, d)
				break
			}
		}
	}
	return out
}

func (rr *RRule) filterByDayOfWeek(dates []time.Time) []time.Time {
	if len(rr.Weekday) == 0 {
		return dates
	}
	var out []time.Time
	for _, d := range dates {
		for _, wd := range rr.Weekday {
			if weekdayIndex[wd.Weekday] == d.Weekday() {
				out = append(out, d)
				break
			}
		}
	}
	return out
}

func (rr *RRule) crossWithTimeOfDay(dates []time.Time, dtstart time.Time) []time.Time {
	hours := rr.Hour
	if len(hours) == 0 {
		hours = []int{dtstart.Hour()}
	}
	minutes := rr.Minute
	if len(minutes) == 0 {
		minutes = []int{dtstart.Minute()}
	}
	seconds := rr.Second
	if len(seconds) == 0 {
		seconds = []int{dtstart.Second()}
	}
	out := make([]time.Time, 0, len(dates)*len(hours)*len(minutes)*len(seconds))
	for _, d := range dates {
		for _, h := range hours {
			for _, m := range minutes {
				for _, s := range seconds {
					out = append(out, time.Date(d.Year(), d.Month(), d.Day(), h, m, s, 0, dtstart.Location()))
				}
			}
		}
	}
	return out
}

// advancePeriod moves periodStart forward by one Interval-worth of
// rr.Frequency's unit.
func (rr *RRule) advancePeriod(periodStart time.Time) time.Time {
	n := rr.Interval
	if n <= 0 {
		n = 1
	}
	switch rr.Frequency {
	case FrequencyYearly:
		return periodStart.AddDate(n, 0, 0)
	case FrequencyMonthly:
		// Step from the 1st so a day-of-month past the next month's end
		// (e.g. the 31st) cannot roll over and skip that month.
		return time.Date(periodStart.Year(), periodStart.Month()+time.Month(n), 1,
			periodStart.Hour(), periodStart.Minute(), periodStart.Second(), periodStart.Nanosecond(), periodStart.Location())
	case FrequencyWeekly:
		return periodStart.AddDate(0, 0, 7*n)
	case FrequencyDaily:
		return periodStart.AddDate(0, 0, n)
	case FrequencyHourly:
		return periodStart.Add(time.Duration(n) * time.Hour)
	case FrequencyMinutely:
		return periodStart.Add(time.Duration(n) * time.Minute)
	case FrequencySecondly:
		return periodStart.Add(time.Duration(n) * time.Second)
	default:
		return periodStart.AddDate(0, 0, n)
	}
}

// applySetPos keeps only the Nth (1-indexed, negative counts from the end)
// entries of a sorted candidate set, per BYSETPOS.
func applySetPos(candidates []time.Time, setpos []int) []time.Time {
	if len(setpos) == 0 {
		return candidates
	}
	sort.Slice(candidates, func(i, j int) bool { return candidates[i].Before(candidates[j]) })
	var out []time.Time
	for _, pos := range setpos {
		idx := pos
		if idx < 0 {
			idx = len(candidates) + idx
		} else {
			idx = idx - 1
		}
		if idx >= 0 && idx < len(candidates) {
			out = append(out, candidates[idx])
		}
	}
	return out
}

func monthdayDates(year int, month time.Month, monthdays []int, loc *time.Location) []time.Time {
	daysInMonth := time.Date(year, month+1, 0, 0, 0, 0, 0, loc).Day()
	var out []time.Time
	for _, md := range monthdays {
		day := md
		if day < 0 {
			day = daysInMonth + day + 1
		}
		if day < 1 || day > daysInMonth {
			continue
		}
		out = append(out, time.Date(year, month, day, 0, 0, 0, 0, loc))
	}
	return out
}

// monthlyByDayDates finds every date in (year, month) matching the given
// BYDAY entries; an entry's Interval, if non-zero, selects only the Nth
// such weekday in the month (negative counts from the end).
func monthlyByDayDates(year int, month time.Month, byday []ByDay, loc *time.Location) []time.Time {
	daysInMonth := time.Date(year, month+1, 0, 0, 0, 0, 0, loc).Day()
	var out []time.Time
	for _, wd := range byday {
		target := weekdayIndex[wd.Weekday]
		var matches []time.Time
		for d := 1; d <= daysInMonth; d++ {
			t := time.Date(year, month, d, 0, 0, 0, 0, loc)
			if t.Weekday() == target {
				matches = append(matches, t)
			}
		}
		if wd.Interval == 0 {
			out = append(out, matches...)
			continue
		}
		idx := wd.Interval
		if idx < 0 {
			idx = len(matches) + idx
		} else {
			idx--
		}
		if idx >= 0 && idx < len(matches) {
			out = append(out, matches[idx])
		}
	}
	return out
}

func startOfWeek(t time.Time, wkst Weekday) time.Time {
	start := weekdayIndex[wkst]
	if start == 0 && wkst == "" {
		start = time.Monday
	}
	d := dateOnly(t)
	delta := (int(d.Weekday()) - int(start) + 7) % 7
	return d.AddDate(0, 0, -delta)
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func daysInYear(year int) int {
	if time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC).YearDay() == 366 {
		return 366
	}
	return 365
}
