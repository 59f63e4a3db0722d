// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package rrule_test

import (
	"testing"
	"time"

	"github.com/malpanez/vobject/rrule"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02T15:04:05", s)
	require.NoError(t, err)
	return d
}

func TestExpandDaily(t *testing.T) {
	rr, err := rrule.ParseRRule("FREQ=DAILY;INTERVAL=1;COUNT=5")
	require.NoError(t, err)
	dtstart := mustDate(t, "2006-05-09T09:00:00")
	occs := rr.Expand(dtstart, 5)
	require.Len(t, occs, 5)
	assert.True(t, occs[0].Equal(dtstart))
	assert.True(t, occs[4].Equal(dtstart.AddDate(0, 0, 4)))
}

func TestExpandWeeklyByDay(t *testing.T) {
	rr, err := rrule.ParseRRule("FREQ=WEEKLY;BYDAY=MO,WE,FR;COUNT=6")
	require.NoError(t, err)
	dtstart := mustDate(t, "2006-05-08T10:00:00") // a Monday
	occs := rr.Expand(dtstart, 6)
	require.Len(t, occs, 6)
	for _, o := range occs {
		wd := o.Weekday()
		assert.True(t, wd == time.Monday || wd == time.Wednesday || wd == time.Friday)
	}
}

func TestExpandMonthlyByMonthday(t *testing.T) {
	rr, err := rrule.ParseRRule("FREQ=MONTHLY;BYMONTHDAY=1,15;COUNT=4")
	require.NoError(t, err)
	dtstart := mustDate(t, "2006-01-01T00:00:00")
	occs := rr.Expand(dtstart, 4)
	require.Len(t, occs, 4)
	assert.Equal(t, 1, occs[0].Day())
	assert.Equal(t, 15, occs[1].Day())
}

func TestExpandMonthlyNegativeMonthday(t *testing.T) {
	rr, err := rrule.ParseRRule("FREQ=MONTHLY;BYMONTHDAY=-1;COUNT=3")
	require.NoError(t, err)
	dtstart := mustDate(t, "2006-01-31T00:00:00")
	occs := rr.Expand(dtstart, 3)
	require.Len(t, occs, 3)
	assert.Equal(t, 31, occs[0].Day())
	assert.Equal(t, 28, occs[1].Day()) // Feb 2006 (non-leap)
}

func TestExpandYearlyByDayNthOfMonth(t *testing.T) {
	// Second Tuesday of November.
	rr, err := rrule.ParseRRule("FREQ=YEARLY;BYMONTH=11;BYDAY=2TU;COUNT=3")
	require.NoError(t, err)
	dtstart := mustDate(t, "2006-11-07T00:00:00")
	occs := rr.Expand(dtstart, 3)
	require.Len(t, occs, 3)
	for _, o := range occs {
		assert.Equal(t, time.November, o.Month())
		assert.Equal(t, time.Tuesday, o.Weekday())
		assert.LessOrEqual(t, o.Day(), 14)
		assert.GreaterOrEqual(t, o.Day(), 8)
	}
}

func TestExpandUntilBound(t *testing.T) {
	rr, err := rrule.ParseRRule("FREQ=DAILY;UNTIL=20060512T000000Z")
	require.NoError(t, err)
	dtstart := mustDate(t, "2006-05-09T00:00:00").UTC()
	occs := rr.Expand(dtstart, 100)
	for _, o := range occs {
		assert.False(t, o.After(*rr.Until))
	}
	assert.GreaterOrEqual(t, len(occs), 3)
}

func TestExpandHourlyWithBySetPos(t *testing.T) {
	rr, err := rrule.ParseRRule("FREQ=HOURLY;BYSETPOS=1;COUNT=2")
	require.NoError(t, err)
	dtstart := mustDate(t, "2006-05-09T09:00:00")
	occs := rr.Expand(dtstart, 2)
	require.Len(t, occs, 2)
}
