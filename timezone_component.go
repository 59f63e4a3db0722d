// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package vobject

import (
	"time"

	"github.com/malpanez/vobject/rrule"
	"github.com/malpanez/vobject/vtz"
)

// TimezoneComponent adapts a VTIMEZONE Component (TZID plus STANDARD/
// DAYLIGHT sub-components, each already transformed to native values) into
// a vtz.Resolver.
type TimezoneComponent struct {
	*Component
}

// Tzinfo builds the vtz.VTimeZone and resolves it to a vtz.Resolver.
func (t TimezoneComponent) Tzinfo() (*vtz.Resolver, error) {
	vt := vtz.VTimeZone{TZID: t.GetChildValue("TZID", "")}

	for _, kind := range []struct {
		name string
		k    vtz.ObservanceKind
	}{{"STANDARD", vtz.Standard}, {"DAYLIGHT", vtz.Daylight}} {
		for _, child := range t.Children(kind.name) {
			sub, ok := child.(*Component)
			if !ok {
				continue
			}
			obs := vtz.Observance{
				Kind: kind.k,
				Name: sub.GetChildValue("TZNAME", ""),
			}
			if off, ok := nativeDuration(sub, "TZOFFSETFROM"); ok {
				obs.OffsetFrom = off
			}
			if off, ok := nativeDuration(sub, "TZOFFSETTO"); ok {
				obs.OffsetTo = off
			}
			if dt, ok := nativeTimeOf(sub, "DTSTART"); ok {
				obs.DTStart = dt
			}
			if rrChild, ok := sub.Child("RRULE"); ok {
				if cl, ok := rrChild.(*ContentLine); ok {
					if v, ok := cl.Value.NativeValue(); ok {
						if rr, ok := v.(*rrule.RRule); ok {
							obs.RRule = rr
						}
					}
				}
			}
			vt.Observances = append(vt.Observances, obs)
		}
	}

	return vtz.FromVTIMEZONE(vt)
}

func nativeTimeOf(c *Component, name string) (time.Time, bool) {
	child, ok := c.Child(name)
	if !ok {
		return time.Time{}, false
	}
	cl, ok := child.(*ContentLine)
	if !ok {
		return time.Time{}, false
	}
	v, ok := cl.Value.NativeValue()
	if !ok {
		return time.Time{}, false
	}
	tm, ok := v.(time.Time)
	return tm, ok
}

func nativeDuration(c *Component, name string) (time.Duration, bool) {
	child, ok := c.Child(name)
	if !ok {
		return 0, false
	}
	cl, ok := child.(*ContentLine)
	if !ok {
		return 0, false
	}
	v, ok := cl.Value.NativeValue()
	if !ok {
		return 0, false
	}
	d, ok := v.(time.Duration)
	return d, ok
}

// PickTZID returns the key to serialize loc under: "UTC" if allowUTC and
// loc is UTC, otherwise loc's own name. It reports false for UTC without
// allowUTC and for an unnamed or "Local" location (the caller must then
// synthesize a fresh VTIMEZONE via vtz.ToVTIMEZONE). No registry is
// consulted.
func PickTZID(loc *time.Location, allowUTC bool) (string, bool) {
	if loc == time.UTC || loc.String() == "UTC" {
		if allowUTC {
			return "UTC", true
		}
		return "", false
	}
	name := loc.String()
	if name == "" || name == "Local" {
		return "", false
	}
	return name, true
}
