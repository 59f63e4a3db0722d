// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package vobject

import (
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/malpanez/vobject/rrule"
	"github.com/malpanez/vobject/value"
	"github.com/malpanez/vobject/vtz"
)

// newTextProperty builds a Behavior for a single-value TEXT property
// (SUMMARY, DESCRIPTION, LOCATION, COMMENT, ...): native form is a plain
// Go string with RFC 5545 §3.3.11 escaping removed.
func newTextProperty(name string) *propertyBehavior {
	return &propertyBehavior{
		name: name,
		toNative: func(cl *ContentLine) error {
			raw, _ := cl.Value.RawText()
			if charset, ok := cl.Param("CHARSET"); ok {
				decoded, err := value.DecodeCharset(raw, charset)
				if err != nil {
					return err
				}
				raw = decoded
			}
			s, err := value.UnescapeText(raw)
			if err != nil {
				return err
			}
			cl.Value = value.Native(s)
			return nil
		},
		fromNative: func(cl *ContentLine) error {
			v, _ := cl.Value.NativeValue()
			s, _ := v.(string)
			escaped := value.EscapeText(s)
			if charset, ok := cl.Param("CHARSET"); ok {
				encoded, err := value.EncodeCharset(escaped, charset)
				if err != nil {
					return err
				}
				escaped = encoded
			}
			cl.Value = value.Raw(escaped)
			return nil
		},
	}
}

// newMultiTextProperty builds a Behavior for a comma-separated TEXT list
// property (CATEGORIES, RESOURCES): native form is []string.
func newMultiTextProperty(name string) *propertyBehavior {
	return &propertyBehavior{
		name: name,
		toNative: func(cl *ContentLine) error {
			raw, _ := cl.Value.RawText()
			items, err := value.SplitMultiText(raw)
			if err != nil {
				return err
			}
			cl.Value = value.Native(items)
			return nil
		},
		fromNative: func(cl *ContentLine) error {
			v, _ := cl.Value.NativeValue()
			items, _ := v.([]string)
			cl.Value = value.Raw(value.JoinMultiText(items))
			return nil
		},
	}
}

// newIntProperty builds a Behavior for a plain-integer property
// (SEQUENCE, PRIORITY, PERCENT-COMPLETE): native form is int.
func newIntProperty(name string) *propertyBehavior {
	return &propertyBehavior{
		name: name,
		toNative: func(cl *ContentLine) error {
			raw, _ := cl.Value.RawText()
			n, err := strconv.Atoi(strings.TrimSpace(raw))
			if err != nil {
				return err
			}
			cl.Value = value.Native(n)
			return nil
		},
		fromNative: func(cl *ContentLine) error {
			v, _ := cl.Value.NativeValue()
			n, _ := v.(int)
			cl.Value = value.Raw(strconv.Itoa(n))
			return nil
		},
	}
}

// dateTimeLocation resolves the time.Location a DATE-TIME value's TZID
// parameter (or lack of one) implies: UTC for a trailing Z, vtz.Default's
// smart lookup for an explicit TZID, local wall-clock (time.Local) if
// neither is present (a "floating" time per RFC 5545 §3.3.5).
func dateTimeLocation(cl *ContentLine, raw string) *time.Location {
	if strings.HasSuffix(raw, "Z") {
		return time.UTC
	}
	if tzid, ok := cl.Param("TZID"); ok {
		if loc, ok := vtz.Default.Lookup(tzid, true); ok {
			return loc
		}
	}
	return time.Local
}

// newDateTimeProperty builds a Behavior for a DATE-TIME-or-DATE property
// (DTSTART, DTEND, DUE, DTSTAMP, RECURRENCE-ID, EXDATE/RDATE's single-value
// form): native form is time.Time. A VALUE=DATE parameter selects the
// date-only grammar.
func newDateTimeProperty(name string) *propertyBehavior {
	return &propertyBehavior{
		name: name,
		toNative: func(cl *ContentLine) error {
			raw, _ := cl.Value.RawText()
			if v, _ := cl.Param("VALUE"); v == "DATE" {
				t, err := value.ParseDate(raw)
				if err != nil {
					return err
				}
				cl.Value = value.Native(t)
				return nil
			}
			t, err := value.ParseDateTime(raw, dateTimeLocation(cl, raw))
			if err != nil {
				return err
			}
			cl.Value = value.Native(t)
			return nil
		},
		fromNative: func(cl *ContentLine) error {
			v, _ := cl.Value.NativeValue()
			t, _ := v.(time.Time)
			if val, _ := cl.Param("VALUE"); val == "DATE" {
				cl.Value = value.Raw(value.FormatDate(t))
				return nil
			}
			cl.Value = value.Raw(value.FormatDateTime(t, t.Location() == time.UTC))
			return nil
		},
	}
}

// newDateTimeListProperty builds a Behavior for a comma-separated list of
// DATE-TIME or DATE values (RDATE, EXDATE): native form is []time.Time.
func newDateTimeListProperty(name string) *propertyBehavior {
	return &propertyBehavior{
		name: name,
		toNative: func(cl *ContentLine) error {
			raw, _ := cl.Value.RawText()
			isDate := false
			if v, _ := cl.Param("VALUE"); v == "DATE" {
				isDate = true
			}
			var out []time.Time
			for _, part := range strings.Split(raw, ",") {
				if part == "" {
					continue
				}
				if isDate {
					t, err := value.ParseDate(part)
					if err != nil {
						return err
					}
					out = append(out, t)
					continue
				}
				t, err := value.ParseDateTime(part, dateTimeLocation(cl, part))
				if err != nil {
					return err
				}
				out = append(out, t)
			}
			cl.Value = value.Native(out)
			return nil
		},
		fromNative: func(cl *ContentLine) error {
			v, _ := cl.Value.NativeValue()
			dates, _ := v.([]time.Time)
			isDate := false
			if val, _ := cl.Param("VALUE"); val == "DATE" {
				isDate = true
			}
			parts := make([]string, len(dates))
			for i, t := range dates {
				if isDate {
					parts[i] = value.FormatDate(t)
				} else {
					parts[i] = value.FormatDateTime(t, t.Location() == time.UTC)
				}
			}
			cl.Value = value.Raw(strings.Join(parts, ","))
			return nil
		},
	}
}

// newDurationProperty builds a Behavior for a DURATION property (DURATION,
// TRIGGER when VALUE=DURATION, the default): native form is time.Duration.
func newDurationProperty(name string) *propertyBehavior {
	return &propertyBehavior{
		name: name,
		toNative: func(cl *ContentLine) error {
			raw, _ := cl.Value.RawText()
			d, err := value.ParseDuration(raw)
			if err != nil {
				return err
			}
			cl.Value = value.Native(d)
			return nil
		},
		fromNative: func(cl *ContentLine) error {
			v, _ := cl.Value.NativeValue()
			d, _ := v.(time.Duration)
			cl.Value = value.Raw(value.FormatDuration(d))
			return nil
		},
	}
}

// newUTCOffsetProperty builds a Behavior for TZOFFSETFROM/TZOFFSETTO:
// native form is time.Duration.
func newUTCOffsetProperty(name string) *propertyBehavior {
	return &propertyBehavior{
		name: name,
		toNative: func(cl *ContentLine) error {
			raw, _ := cl.Value.RawText()
			d, err := value.ParseUTCOffset(raw)
			if err != nil {
				return err
			}
			cl.Value = value.Native(d)
			return nil
		},
		fromNative: func(cl *ContentLine) error {
			v, _ := cl.Value.NativeValue()
			d, _ := v.(time.Duration)
			cl.Value = value.Raw(value.FormatUTCOffset(d))
			return nil
		},
	}
}

// newRRuleProperty builds a Behavior for RRULE/EXRULE: native form is
// *rrule.RRule.
func newRRuleProperty(name string) *propertyBehavior {
	return &propertyBehavior{
		name: name,
		toNative: func(cl *ContentLine) error {
			raw, _ := cl.Value.RawText()
			rr, err := rrule.ParseRRule(raw)
			if err != nil {
				return err
			}
			cl.Value = value.Native(rr)
			return nil
		},
		fromNative: func(cl *ContentLine) error {
			v, _ := cl.Value.NativeValue()
			rr, _ := v.(*rrule.RRule)
			if rr == nil {
				return nil
			}
			cl.Value = value.Raw(rr.FormatRRule())
			return nil
		},
	}
}

// newFreeBusyProperty builds the FREEBUSY Behavior: native form is
// []value.Period, a comma-separated list per RFC 5545 §3.8.2.6.
func newFreeBusyProperty() *propertyBehavior {
	return &propertyBehavior{
		name: "FREEBUSY",
		toNative: func(cl *ContentLine) error {
			raw, _ := cl.Value.RawText()
			var periods []value.Period
			for _, part := range strings.Split(raw, ",") {
				p, err := value.ParsePeriod(part, time.UTC)
				if err != nil {
					return err
				}
				periods = append(periods, p)
			}
			cl.Value = value.Native(periods)
			return nil
		},
		fromNative: func(cl *ContentLine) error {
			v, _ := cl.Value.NativeValue()
			periods, _ := v.([]value.Period)
			parts := make([]string, len(periods))
			for i, p := range periods {
				parts[i] = value.FormatPeriod(p, true)
			}
			cl.Value = value.Raw(strings.Join(parts, ","))
			return nil
		},
	}
}

// newGeoProperty builds the GEO Behavior: native form is value.Geo.
func newGeoProperty() *propertyBehavior {
	return &propertyBehavior{
		name: "GEO",
		toNative: func(cl *ContentLine) error {
			raw, _ := cl.Value.RawText()
			g, err := value.ParseGeo(raw)
			if err != nil {
				return err
			}
			cl.Value = value.Native(g)
			return nil
		},
		fromNative: func(cl *ContentLine) error {
			v, _ := cl.Value.NativeValue()
			g, _ := v.(value.Geo)
			cl.Value = value.Raw(value.FormatGeo(g))
			return nil
		},
	}
}

// newCalAddressProperty builds a Behavior for a CAL-ADDRESS property
// (ORGANIZER, ATTENDEE): native form is *url.URL.
func newCalAddressProperty(name string) *propertyBehavior {
	return &propertyBehavior{
		name: name,
		toNative: func(cl *ContentLine) error {
			raw, _ := cl.Value.RawText()
			u, err := value.ParseCalAddress(raw)
			if err != nil {
				return err
			}
			cl.Value = value.Native(u)
			return nil
		},
		fromNative: func(cl *ContentLine) error {
			v, _ := cl.Value.NativeValue()
			u, _ := v.(*url.URL)
			cl.Value = value.Raw(value.FormatCalAddress(u))
			return nil
		},
	}
}

func registerICalBehaviors(reg *Registry) {
	reg.RegisterBehavior(&componentBehavior{
		name:          "VCALENDAR",
		sortFirst:     []string{"VERSION", "CALSCALE", "METHOD", "PRODID"},
		knownChildren: map[string]ChildSpec{"VEVENT": {}, "VTODO": {}, "VJOURNAL": {}, "VFREEBUSY": {}, "VTIMEZONE": {}},
		implicit: func(c *Component, reg *Registry) error {
			ensureVersion(c, reg, "2.0")
			ensureProdID(c, reg)
			return nil
		},
	})

	reg.RegisterBehavior(&componentBehavior{
		name:      "VEVENT",
		sortFirst: []string{"UID", "DTSTAMP", "DTSTART", "DTEND", "DURATION", "SUMMARY"},
		knownChildren: map[string]ChildSpec{
			"DTSTART": {Max: 1}, "DTEND": {Max: 1}, "DURATION": {Max: 1},
			"UID": {Min: 1, Max: 1}, "DTSTAMP": {Min: 1, Max: 1},
		},
		implicit: func(c *Component, reg *Registry) error {
			ensureUID(c, reg)
			ensureDTStamp(c, reg)
			return nil
		},
	})

	reg.RegisterBehavior(&componentBehavior{
		name:      "VTODO",
		sortFirst: []string{"UID", "DTSTAMP", "DTSTART", "DUE", "DURATION", "SUMMARY"},
		knownChildren: map[string]ChildSpec{
			"UID": {Min: 1, Max: 1}, "DTSTAMP": {Min: 1, Max: 1},
		},
		implicit: func(c *Component, reg *Registry) error {
			ensureUID(c, reg)
			ensureDTStamp(c, reg)
			return nil
		},
	})

	reg.RegisterBehavior(&componentBehavior{
		name:      "VJOURNAL",
		sortFirst: []string{"UID", "DTSTAMP", "DTSTART", "SUMMARY"},
		implicit: func(c *Component, reg *Registry) error {
			ensureUID(c, reg)
			ensureDTStamp(c, reg)
			return nil
		},
	})

	reg.RegisterBehavior(&componentBehavior{
		name:      "VFREEBUSY",
		sortFirst: []string{"UID", "DTSTAMP", "DTSTART", "DTEND"},
		implicit: func(c *Component, reg *Registry) error {
			ensureUID(c, reg)
			ensureDTStamp(c, reg)
			return nil
		},
	})

	reg.RegisterBehavior(&componentBehavior{
		name:      "VALARM",
		sortFirst: []string{"ACTION", "TRIGGER"},
		knownChildren: map[string]ChildSpec{
			"ACTION": {Min: 1, Max: 1}, "TRIGGER": {Min: 1, Max: 1},
		},
		implicit: func(c *Component, reg *Registry) error {
			ensureValarmDefaults(c, reg)
			return nil
		},
	})

	reg.RegisterBehavior(&componentBehavior{
		name:      "VTIMEZONE",
		sortFirst: []string{"TZID"},
		knownChildren: map[string]ChildSpec{
			"TZID": {Min: 1, Max: 1},
		},
	})
	reg.RegisterBehavior(&componentBehavior{
		name:      "STANDARD",
		sortFirst: []string{"DTSTART", "TZOFFSETFROM", "TZOFFSETTO", "TZNAME"},
	})
	reg.RegisterBehavior(&componentBehavior{
		name:      "DAYLIGHT",
		sortFirst: []string{"DTSTART", "TZOFFSETFROM", "TZOFFSETTO", "TZNAME"},
	})

	for _, name := range []string{
		"SUMMARY", "DESCRIPTION", "LOCATION", "COMMENT", "STATUS", "TRANSP",
		"CLASS", "UID", "PRODID", "VERSION", "CALSCALE", "METHOD", "TZID",
		"TZNAME", "CONTACT", "RELATED-TO", "X-WR-CALNAME", "X-WR-TIMEZONE",
	} {
		reg.RegisterBehavior(newTextProperty(name))
	}
	for _, name := range []string{"CATEGORIES", "RESOURCES"} {
		reg.RegisterBehavior(newMultiTextProperty(name))
	}
	for _, name := range []string{"SEQUENCE", "PRIORITY", "PERCENT-COMPLETE"} {
		reg.RegisterBehavior(newIntProperty(name))
	}
	for _, name := range []string{"DTSTART", "DTEND", "DUE", "DTSTAMP", "RECURRENCE-ID", "CREATED", "LAST-MODIFIED"} {
		reg.RegisterBehavior(newDateTimeProperty(name))
	}
	for _, name := range []string{"RDATE", "EXDATE"} {
		reg.RegisterBehavior(newDateTimeListProperty(name))
	}
	for _, name := range []string{"DURATION", "TRIGGER"} {
		reg.RegisterBehavior(newDurationProperty(name))
	}
	for _, name := range []string{"TZOFFSETFROM", "TZOFFSETTO"} {
		reg.RegisterBehavior(newUTCOffsetProperty(name))
	}
	for _, name := range []string{"RRULE", "EXRULE"} {
		reg.RegisterBehavior(newRRuleProperty(name))
	}
	reg.RegisterBehavior(newGeoProperty())
	reg.RegisterBehavior(newFreeBusyProperty())
	for _, name := range []string{"ORGANIZER", "ATTENDEE"} {
		reg.RegisterBehavior(newCalAddressProperty(name))
	}
	reg.RegisterBehavior(newTextProperty("ACTION"))
}
