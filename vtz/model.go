// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package vtz

import (
	"time"

	"github.com/malpanez/vobject/rrule"
)

// ObservanceKind distinguishes a VTIMEZONE's STANDARD and DAYLIGHT
// sub-components.
type ObservanceKind int

const (
	Standard ObservanceKind = iota
	Daylight
)

// Observance is one STANDARD or DAYLIGHT sub-component, restricted to the
// TZNAME/TZOFFSETFROM/TZOFFSETTO/DTSTART/RRULE/RDATE children that
// actually drive offset resolution.
type Observance struct {
	Kind       ObservanceKind
	Name       string
	OffsetFrom time.Duration
	OffsetTo   time.Duration
	DTStart    time.Time
	RRule      *rrule.RRule
	RDate      []time.Time
}

// transitions returns every instant (in the zone's own local clock, as
// carried by DTStart) at which this observance takes effect, bounded by
// limit occurrences from the RRULE expansion.
func (o Observance) transitions(limit int) []time.Time {
	out := append([]time.Time{}, o.DTStart)
	if o.RRule != nil {
		out = append(out, o.RRule.Expand(o.DTStart, limit)...)
	}
	out = append(out, o.RDate...)
	return out
}

// VTimeZone is the parsed form of a VTIMEZONE component: a TZID plus its
// STANDARD/DAYLIGHT observances, in the order they appeared in the source.
type VTimeZone struct {
	TZID        string
	Observances []Observance
}
