// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package value

import (
	"strings"
	"time"
)

// Period is a PERIOD value (RFC 5545 §3.3.9): either an explicit
// start/end pair or a start plus a duration. Duration is zero when End is
// set, and vice versa.
type Period struct {
	Start    time.Time
	End      time.Time
	Duration time.Duration
}

// ParsePeriod parses "start/end" or "start/duration".
func ParsePeriod(s string, loc *time.Location) (Period, error) {
	before, after, ok := strings.Cut(s, "/")
	if !ok {
		return Period{}, ErrBadPeriod
	}
	start, err := ParseDateTime(before, loc)
	if err != nil {
		return Period{}, ErrBadPeriod
	}
	if after == "" {
		return Period{}, ErrBadPeriod
	}
	if after[0] == 'P' || after[0] == '+' || after[0] == '-' {
		d, err := ParseDuration(after)
		if err != nil {
			return Period{}, ErrBadPeriod
		}
		return Period{Start: start, Duration: d}, nil
	}
	end, err := ParseDateTime(after, loc)
	if err != nil {
		return Period{}, ErrBadPeriod
	}
	return Period{Start: start, End: end}, nil
}

// FormatPeriod renders p back to its wire form, preferring the explicit
// end form when both End and Duration would describe the same interval.
func FormatPeriod(p Period, utc bool) string {
	start := FormatDateTime(p.Start, utc)
	if !p.End.IsZero() {
		return start + "/" + FormatDateTime(p.End, utc)
	}
	return start + "/" + FormatDuration(p.Duration)
}
