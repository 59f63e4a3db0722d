// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package rrule

import (
	"context"
	"sort"
	"time"
)

// RuleSet is the full recurrence description of a component: its DTSTART,
// zero or more RRULEs and RDATEs describing additional occurrences, and
// zero or more EXRULEs/EXDATEs describing exclusions. It mirrors the
// upstream Python vobject RecurringComponent.rruleset: RRULE/RDATE
// occurrences are unioned, then EXRULE/EXDATE occurrences are subtracted.
type RuleSet struct {
	DTStart time.Time
	RRules  []*RRule
	RDates  []time.Time
	ExRules []*RRule
	ExDates []time.Time
}

// reconcileUntil converts an RRULE's UNTIL value to UTC. RFC 5545 §3.3.10
// requires UNTIL to be expressed in the same "value type" as DTSTART;
// producers regularly emit a UTC UNTIL against a zoned DTSTART, so
// comparisons here operate in UTC rather than rejecting the rule. A
// date-only or floating UNTIL is not re-read in DTStart's zone: the
// parser has already taken it as UTC, and it stays so.
func reconcileUntil(rr *RRule, dtstart time.Time) {
	if rr.Until == nil {
		return
	}
	u := rr.Until.UTC()
	rr.Until = &u
}

// First returns the earliest occurrence at or after DTStart. When
// addRDate is true and DTStart itself isn't already produced by an RRULE
// or listed as an RDATE, DTStart is treated as an implicit first
// occurrence (RFC 5545 §3.8.5.3: "the DTSTART property... is the first
// instance of the recurring event, even if the recurrence rule excludes
// it").
func (rs *RuleSet) First(addRDate bool) (time.Time, bool) {
	all := rs.All(1)
	if addRDate && (len(all) == 0 || !all[0].Equal(rs.DTStart)) {
		return rs.DTStart, true
	}
	if len(all) > 0 {
		return all[0], true
	}
	return time.Time{}, false
}

// All returns up to limit occurrences in chronological order. Go has no
// coroutine-light generator primitive as cheap as a lazy iterator, so a
// hard cap replaces true unbounded iteration here. Use Iterate for
// early-exit consumption without picking a cap up front.
func (rs *RuleSet) All(limit int) []time.Time {
	if limit <= 0 {
		return nil
	}

	occurrences := make(map[int64]time.Time)
	for _, rd := range rs.RDates {
		occurrences[rd.UnixNano()] = rd
	}
	for _, rr := range rs.RRules {
		reconcileUntil(rr, rs.DTStart)
		for _, occ := range rr.Expand(rs.DTStart, limit*4+64) {
			occurrences[occ.UnixNano()] = occ
		}
	}

	excluded := make(map[int64]bool)
	for _, ed := range rs.ExDates {
		excluded[ed.UnixNano()] = true
	}
	for _, exr := range rs.ExRules {
		reconcileUntil(exr, rs.DTStart)
		for _, occ := range exr.Expand(rs.DTStart, limit*4+64) {
			excluded[occ.UnixNano()] = true
		}
	}

	out := make([]time.Time, 0, len(occurrences))
	for k, t := range occurrences {
		if !excluded[k] {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Before(out[j]) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

// Iterate streams occurrences on a channel until ctx is canceled or the
// RuleSet is exhausted (bounded rules only — an unbounded rule with no
// consumer-side ctx cancellation will iterate until canceled, since no
// BY*-bounded rule is inherently finite without COUNT/UNTIL). The channel
// is closed when iteration ends.
func (rs *RuleSet) Iterate(ctx context.Context) <-chan time.Time {
	ch := make(chan time.Time)
	go func() {
		defer close(ch)
		const page = 256
		seen := 0
		for {
			want := seen + page
			batch := rs.All(want)
			fresh := batch[seen:]
			for _, occ := range fresh {
				select {
				case <-ctx.Done():
					return
				case ch <- occ:
				}
			}
			seen = len(batch)
			if len(batch) < want {
				// All() returned fewer than requested: the underlying rule
				// set is exhausted, no point asking for another page.
				return
			}
		}
	}()
	return ch
}

// AddRDate appends an explicit additional occurrence, per the upstream
// add_rdate helper: an RDATE is only meaningful alongside an RRULE/DTSTART
// it supplements, so it is just a RuleSet field append with no extra
// bookkeeping required on this side.
func (rs *RuleSet) AddRDate(t time.Time) {
	rs.RDates = append(rs.RDates, t)
}
