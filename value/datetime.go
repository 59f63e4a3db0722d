// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package value

import (
	"strconv"
	"strings"
	"time"
)

const (
	dateLayout        = "20060102"
	dateTimeLocalForm = "20060102T150405"
	dateTimeUTCForm   = "20060102T150405Z"
)

// ParseDate parses a DATE value (RFC 5545 §3.3.4 / vCard "DATE"): "YYYYMMDD".
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, ErrBadDate
	}
	return t, nil
}

// FormatDate formats t as a DATE value, discarding its time-of-day and zone.
func FormatDate(t time.Time) string {
	return t.Format(dateLayout)
}

// ParseDateTime parses a DATE-TIME value (RFC 5545 §3.3.5). A trailing "Z"
// means UTC; otherwise the value is a floating local time and loc (the
// property's TZID lookup, or time.Local if nil/absent) supplies the zone.
func ParseDateTime(s string, loc *time.Location) (time.Time, error) {
	if strings.HasSuffix(s, "Z") {
		t, err := time.Parse(dateTimeUTCForm, s)
		if err != nil {
			return time.Time{}, ErrBadDateTime
		}
		return t, nil
	}
	if loc == nil {
		loc = time.Local
	}
	t, err := time.ParseInLocation(dateTimeLocalForm, s, loc)
	if err != nil {
		return time.Time{}, ErrBadDateTime
	}
	return t, nil
}

// FormatDateTime formats t as a DATE-TIME value. When utc is true the
// result is rendered in UTC with the trailing "Z" form; otherwise it is
// rendered in t's own zone with no suffix (a floating or TZID-qualified
// local time — the caller is responsible for emitting the matching TZID
// parameter).
func FormatDateTime(t time.Time, utc bool) string {
	if utc {
		return t.UTC().Format(dateTimeUTCForm)
	}
	return t.Format(dateTimeLocalForm)
}

// ParseUTCOffset parses a UTC-OFFSET value (RFC 5545 §3.3.14): "(+|-)HHMM[SS]".
func ParseUTCOffset(s string) (time.Duration, error) {
	if len(s) != 5 && len(s) != 7 {
		return 0, ErrBadUTCOffset
	}
	sign := int64(1)
	switch s[0] {
	case '+':
	case '-':
		sign = -1
	default:
		return 0, ErrBadUTCOffset
	}
	hh, err := strconv.ParseInt(s[1:3], 10, 64)
	if err != nil {
		return 0, ErrBadUTCOffset
	}
	mm, err := strconv.ParseInt(s[3:5], 10, 64)
	if err != nil {
		return 0, ErrBadUTCOffset
	}
	var ss int64
	if len(s) == 7 {
		ss, err = strconv.ParseInt(s[5:7], 10, 64)
		if err != nil {
			return 0, ErrBadUTCOffset
		}
	}
	total := hh*int64(time.Hour) + mm*int64(time.Minute) + ss*int64(time.Second)
	return time.Duration(sign * total), nil
}

// FormatUTCOffset formats d as a UTC-OFFSET value. RFC 5545 disallows a
// bare "-0000" offset (that is UTC-OFFSET's spelling of "unknown", not
// zero); callers representing true zero offset should emit "+0000".
func FormatUTCOffset(d time.Duration) string {
	sign := byte('+')
	if d < 0 {
		sign = '-'
		d = -d
	}
	hh := int64(d / time.Hour)
	mm := int64((d % time.Hour) / time.Minute)
	ss := int64((d % time.Minute) / time.Second)
	out := string(sign) + pad2(hh) + pad2(mm)
	if ss != 0 {
		out += pad2(ss)
	}
	return out
}

func pad2(v int64) string {
	if v < 10 {
		return "0" + strconv.FormatInt(v, 10)
	}
	return strconv.FormatInt(v, 10)
}
