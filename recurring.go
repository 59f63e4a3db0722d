// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package vobject

import (
	"time"

	"github.com/malpanez/vobject/rrule"
)

// RecurringComponent adapts a Component carrying DTSTART/DUE,
// RRULE/EXRULE, and RDATE/EXDATE children into an rrule.RuleSet. It
// expects those children to already hold native values (run
// TransformToNative first): *rrule.RRule for RRULE/EXRULE, []time.Time for
// RDATE/EXDATE, and time.Time for DTSTART/DUE.
type RecurringComponent struct {
	*Component
}

// Anchor returns the component's DTSTART, or its DUE if no DTSTART is
// present (a VTODO may anchor recurrence on DUE instead).
func (r RecurringComponent) Anchor() (time.Time, error) {
	if t, ok := r.nativeTime("DTSTART"); ok {
		return t, nil
	}
	if t, ok := r.nativeTime("DUE"); ok {
		return t, nil
	}
	return time.Time{}, ErrMissingAnchor
}

func (r RecurringComponent) nativeTime(name string) (time.Time, bool) {
	child, ok := r.Child(name)
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
	t, ok := v.(time.Time)
	return t, ok
}

func (r RecurringComponent) nativeRules(name string) []*rrule.RRule {
	var out []*rrule.RRule
	for _, child := range r.Children(name) {
		cl, ok := child.(*ContentLine)
		if !ok {
			continue
		}
		v, ok := cl.Value.NativeValue()
		if !ok {
			continue
		}
		if rr, ok := v.(*rrule.RRule); ok {
			out = append(out, rr)
		}
	}
	return out
}

func (r RecurringComponent) nativeDates(name string) []time.Time {
	var out []time.Time
	for _, child := range r.Children(name) {
		cl, ok := child.(*ContentLine)
		if !ok {
			continue
		}
		v, ok := cl.Value.NativeValue()
		if !ok {
			continue
		}
		switch dates := v.(type) {
		case []time.Time:
			out = append(out, dates...)
		case time.Time:
			out = append(out, dates)
		}
	}
	return out
}

// RuleSet assembles an rrule.RuleSet from the component's recurrence
// children, anchored at Anchor().
func (r RecurringComponent) RuleSet() (*rrule.RuleSet, error) {
	anchor, err := r.Anchor()
	if err != nil {
		return nil, err
	}
	return &rrule.RuleSet{
		DTStart: anchor,
		RRules:  r.nativeRules("RRULE"),
		ExRules: r.nativeRules("EXRULE"),
		RDates:  r.nativeDates("RDATE"),
		ExDates: r.nativeDates("EXDATE"),
	}, nil
}

// GetRuleSet is RuleSet's counterpart to the upstream
// getrruleset(addRDate) convention: when addRDate is true and the rule set's
// first occurrence is not the anchor itself (or there is none), the anchor
// is added as an explicit RDATE so that it becomes the first occurrence.
func (r RecurringComponent) GetRuleSet(addRDate bool) (*rrule.RuleSet, error) {
	rs, err := r.RuleSet()
	if err != nil {
		return nil, err
	}
	if addRDate {
		if first, ok := rs.First(false); !ok || !first.Equal(rs.DTStart) {
			rs.AddRDate(rs.DTStart)
		}
	}
	return rs, nil
}
