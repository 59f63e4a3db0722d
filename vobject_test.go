// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package vobject_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/malpanez/vobject"
	"github.com/malpanez/vobject/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const simpleEvent = "BEGIN:VCALENDAR\r\n" +
	"VERSION:2.0\r\n" +
	"PRODID:-//test//test//EN\r\n" +
	"BEGIN:VEVENT\r\n" +
	"UID:1\r\n" +
	"DTSTAMP:20250101T000000Z\r\n" +
	"DTSTART:20250615T140000Z\r\n" +
	"DTEND:20250615T150000Z\r\n" +
	"SUMMARY:Team sync\r\n" +
	"END:VEVENT\r\n" +
	"END:VCALENDAR\r\n"

func TestReadOneParsesDTSTARTToNative(t *testing.T) {
	comp, err := vobject.ReadOne(strings.NewReader(simpleEvent), vobject.ReadOptions{Transform: true})
	require.NoError(t, err)
	require.Equal(t, "VCALENDAR", comp.Name())

	events := comp.Children("VEVENT")
	require.Len(t, events, 1)
	event, ok := events[0].(*vobject.Component)
	require.True(t, ok)

	dtstart, ok := event.Child("DTSTART")
	require.True(t, ok)
	cl, ok := dtstart.(*vobject.ContentLine)
	require.True(t, ok)
	native, ok := cl.Value.NativeValue()
	require.True(t, ok)
	tm, ok := native.(time.Time)
	require.True(t, ok)
	assert.Equal(t, 2025, tm.Year())
	assert.Equal(t, time.June, tm.Month())
	assert.Equal(t, 15, tm.Day())
}

func TestSerializeRoundTripsSummary(t *testing.T) {
	comp, err := vobject.ReadOne(strings.NewReader(simpleEvent), vobject.ReadOptions{})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, comp.Serialize(&buf, vobject.WriteOptions{}))
	assert.Contains(t, buf.String(), "SUMMARY:Team sync")
	assert.Contains(t, buf.String(), "BEGIN:VEVENT")
	assert.Contains(t, buf.String(), "END:VCALENDAR")
}

func TestUnmatchedEndIsParseError(t *testing.T) {
	bad := "BEGIN:VEVENT\r\nEND:VTODO\r\n"
	_, err := vobject.ReadOne(strings.NewReader(bad), vobject.ReadOptions{})
	require.Error(t, err)
	var pe *vobject.ParseError
	require.ErrorAs(t, err, &pe)
}

func TestImplicitParametersFillUIDAndDTStamp(t *testing.T) {
	cal := vobject.NewComponent("VCALENDAR", "")
	b, ok := vobject.DefaultRegistry.GetBehavior("VCALENDAR", "")
	require.True(t, ok)
	cal.SetBehavior(b)

	event := vobject.NewComponent("VEVENT", "")
	eb, ok := vobject.DefaultRegistry.GetBehavior("VEVENT", "")
	require.True(t, ok)
	event.SetBehavior(eb)
	cal.Add(event)

	var buf bytes.Buffer
	require.NoError(t, cal.Serialize(&buf, vobject.WriteOptions{}))
	out := buf.String()
	assert.Contains(t, out, "UID:")
	assert.Contains(t, out, "DTSTAMP:")
	assert.Contains(t, out, "VERSION:2.0")
	assert.Contains(t, out, "PRODID:")
}

func TestFreeBusyPeriodParsesToNative(t *testing.T) {
	fb := "BEGIN:VFREEBUSY\r\n" +
		"UID:fb-1\r\n" +
		"DTSTAMP:20250101T000000Z\r\n" +
		"FREEBUSY:20250615T140000Z/20250615T150000Z\r\n" +
		"END:VFREEBUSY\r\n"

	comp, err := vobject.ReadOne(strings.NewReader(fb), vobject.ReadOptions{Transform: true})
	require.NoError(t, err)

	child, ok := comp.Child("FREEBUSY")
	require.True(t, ok)
	cl := child.(*vobject.ContentLine)
	native, ok := cl.Value.NativeValue()
	require.True(t, ok)
	periods, ok := native.([]value.Period)
	require.True(t, ok)
	require.Len(t, periods, 1)
	assert.Equal(t, 14, periods[0].Start.Hour())
	assert.Equal(t, 15, periods[0].End.Hour())
}
