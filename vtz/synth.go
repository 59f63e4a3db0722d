// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package vtz

import "time"

// ToVTIMEZONE synthesizes a VTimeZone for loc covering [from, to] by
// probing loc's own transitions: walk the interval in coarse steps, and
// wherever the zone's offset changes between two consecutive probes,
// bisect down to pin the transition instant. Real Go time.Location values
// (as returned by time.LoadLocation) don't expose their transition table
// directly, so probing is the only public way to recover it.
func ToVTIMEZONE(tzid string, loc *time.Location, from, to time.Time) VTimeZone {
	transitions := discoverTransitions(loc, from, to)
	vtz := VTimeZone{TZID: tzid}

	if len(transitions) == 0 {
		name, offset := from.In(loc).Zone()
		vtz.Observances = append(vtz.Observances, Observance{
			Kind:     Standard,
			Name:     name,
			OffsetTo: time.Duration(offset) * time.Second,
			DTStart:  stripZone(from),
		})
		return vtz
	}

	for _, tr := range transitions {
		_, beforeOffset := tr.before.Zone()
		afterName, afterOffset := tr.after.Zone()
		kind := Standard
		if afterOffset > beforeOffset {
			kind = Daylight
		}
		vtz.Observances = append(vtz.Observances, Observance{
			Kind:       kind,
			Name:       afterName,
			OffsetFrom: time.Duration(beforeOffset) * time.Second,
			OffsetTo:   time.Duration(afterOffset) * time.Second,
			DTStart:    stripZone(tr.after),
		})
	}
	return vtz
}

// zoneTransition is one discovered instant at which loc's offset changes,
// with the instant just before and just after (in loc) for naming/offset
// extraction.
type zoneTransition struct {
	before time.Time
	after  time.Time
}

// discoverTransitions walks [from, to] in 30-day steps and, wherever the
// zone's UTC offset differs between two consecutive steps, bisects down to
// the transition instant within one second of precision.
func discoverTransitions(loc *time.Location, from, to time.Time) []zoneTransition {
	const probe = 30 * 24 * time.Hour
	var out []zoneTransition

	cursor := from.In(loc)
	_, prevOffset := cursor.Zone()
	for cursor.Before(to) {
		next := cursor.Add(probe)
		if next.After(to) {
			next = to
		}
		_, nextOffset := next.In(loc).Zone()
		if nextOffset != prevOffset {
			lo, hi := cursor, next
			for hi.Sub(lo) > time.Second {
				mid := lo.Add(hi.Sub(lo) / 2)
				_, midOffset := mid.In(loc).Zone()
				if midOffset == prevOffset {
					lo = mid
				} else {
					hi = mid
				}
			}
			out = append(out, zoneTransition{before: lo, after: hi})
			prevOffset = nextOffset
		}
		if !next.After(cursor) {
			break
		}
		cursor = next
	}
	return out
}

func stripZone(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), 0, time.UTC)
}

// ResolveAmbiguousLocal builds the time in loc for the given wall-clock
// components, resolving a fall-back-transition ambiguity (two instants
// sharing the same local clock reading) to the later offset, the same
// disambiguation pytz's "localize" hook performs. Go's time.Date picks one
// of the two readings without saying which, so this helper looks at the
// zone period that follows the one time.Date chose: when that period's
// offset is smaller and the same clock reading also falls inside it, that
// later instant (standard time) is returned.
func ResolveAmbiguousLocal(loc *time.Location, year int, month time.Month, day, hour, min, sec int) time.Time {
	first := time.Date(year, month, day, hour, min, sec, 0, loc)
	_, off1 := first.Zone()
	if _, end := first.ZoneBounds(); !end.IsZero() {
		_, offNext := end.Zone()
		second := first.Add(time.Duration(off1-offNext) * time.Second)
		if offNext < off1 && !second.Before(end) {
			return second
		}
	}
	return first
}
