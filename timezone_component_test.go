// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package vobject_test

import (
	"strings"
	"testing"
	"time"

	"github.com/malpanez/vobject"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const usEasternVTIMEZONE = "BEGIN:VTIMEZONE\r\n" +
	"TZID:America/New_York\r\n" +
	"BEGIN:DAYLIGHT\r\n" +
	"TZOFFSETFROM:-0500\r\n" +
	"TZOFFSETTO:-0400\r\n" +
	"TZNAME:EDT\r\n" +
	"DTSTART:20070311T020000\r\n" +
	"RRULE:FREQ=YEARLY;BYMONTH=3;BYDAY=2SU\r\n" +
	"END:DAYLIGHT\r\n" +
	"BEGIN:STANDARD\r\n" +
	"TZOFFSETFROM:-0400\r\n" +
	"TZOFFSETTO:-0500\r\n" +
	"TZNAME:EST\r\n" +
	"DTSTART:20071104T020000\r\n" +
	"RRULE:FREQ=YEARLY;BYMONTH=11;BYDAY=1SU\r\n" +
	"END:STANDARD\r\n" +
	"END:VTIMEZONE\r\n"

func TestVTIMEZONEResolvesUSEasternTransitions(t *testing.T) {
	comp, err := vobject.ReadOne(strings.NewReader(usEasternVTIMEZONE), vobject.ReadOptions{Transform: true})
	require.NoError(t, err)

	tzc := vobject.TimezoneComponent{Component: comp}
	resolver, err := tzc.Tzinfo()
	require.NoError(t, err)

	summer := resolver.Lookup(time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC))
	_, offset := time.Now().In(summer).Zone()
	assert.Equal(t, -4*60*60, offset)

	winter := resolver.Lookup(time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC))
	_, offset = time.Now().In(winter).Zone()
	assert.Equal(t, -5*60*60, offset)
}
