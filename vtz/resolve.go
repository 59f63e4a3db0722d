// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package vtz

import (
	"sort"
	"time"
)

// transition is one point at which an observance's offset takes effect.
type transition struct {
	at  time.Time
	obs Observance
}

// Resolver answers "what UTC offset applies at this local wall-clock
// instant" for a single VTIMEZONE, built by merging and sorting every
// STANDARD/DAYLIGHT observance's DTSTART/RRULE/RDATE transitions.
type Resolver struct {
	tzid        string
	transitions []transition
	initial     Observance
}

// transitionExpandLimit bounds how many RRULE occurrences are considered
// per observance; VTIMEZONE RRULEs are annual DST rules, so this comfortably
// covers well over a century.
const transitionExpandLimit = 200

// FromVTIMEZONE builds a Resolver from a parsed VTimeZone. Only the
// fields Observance carries are consulted; richer VTIMEZONE metadata
// (e.g. COMMENT, LAST-MODIFIED) plays no role in offset resolution and is
// intentionally dropped here.
func FromVTIMEZONE(vtz VTimeZone) (*Resolver, error) {
	if len(vtz.Observances) == 0 {
		return nil, ErrNoObservations
	}
	r := &Resolver{tzid: vtz.TZID}

	earliest := vtz.Observances[0]
	for _, o := range vtz.Observances {
		if o.DTStart.Before(earliest.DTStart) {
			earliest = o
		}
		for _, at := range o.transitions(transitionExpandLimit) {
			r.transitions = append(r.transitions, transition{at: at, obs: o})
		}
	}
	r.initial = earliest
	sort.Slice(r.transitions, func(i, j int) bool { return r.transitions[i].at.Before(r.transitions[j].at) })
	return r, nil
}

// Lookup returns the Location in effect at local wall-clock time t (the
// same floating-local convention VTIMEZONE's own DTSTART/RRULE/RDATE
// values use) as a time.FixedZone built from the matching observance's
// TZNAME/TZOFFSETTO.
func (r *Resolver) Lookup(t time.Time) *time.Location {
	obs := r.initial
	for _, tr := range r.transitions {
		if tr.at.After(t) {
			break
		}
		obs = tr.obs
	}
	return time.FixedZone(obs.Name, int(obs.OffsetTo.Seconds()))
}

// TZID returns the VTIMEZONE identifier this resolver was built from.
func (r *Resolver) TZID() string {
	return r.tzid
}
