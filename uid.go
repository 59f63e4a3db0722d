// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package vobject

import (
	"time"

	"github.com/google/uuid"
	"github.com/malpanez/vobject/value"
)

// ProdID is the default PRODID value stamped onto VCALENDAR components
// that don't already carry one.
const ProdID = "-//vobject//vobject 1.0//EN"

// ensureUID adds a UID child generated from uuid.NewString if none is
// present.
func ensureUID(c *Component, reg *Registry) {
	if _, ok := c.Child("UID"); ok {
		return
	}
	cl := NewContentLine("UID", "")
	cl.Value = value.Raw(uuid.NewString())
	if b, ok := reg.GetBehavior("UID", ""); ok {
		cl.SetBehavior(b)
	}
	c.Add(cl)
}

// ensureDTStamp adds a DTSTAMP of the current UTC instant if none is
// present.
func ensureDTStamp(c *Component, reg *Registry) {
	if _, ok := c.Child("DTSTAMP"); ok {
		return
	}
	cl := NewContentLine("DTSTAMP", "")
	cl.Value = value.Raw(formatUTCStamp(time.Now().UTC()))
	if b, ok := reg.GetBehavior("DTSTAMP", ""); ok {
		cl.SetBehavior(b)
	}
	c.Add(cl)
}

// ensureProdID adds a PRODID to a VCALENDAR if none is present.
func ensureProdID(c *Component, reg *Registry) {
	if _, ok := c.Child("PRODID"); ok {
		return
	}
	cl := NewContentLine("PRODID", "")
	cl.Value = value.Raw(ProdID)
	if b, ok := reg.GetBehavior("PRODID", ""); ok {
		cl.SetBehavior(b)
	}
	c.Add(cl)
}

// ensureVersion adds a VERSION of def to a component if none is present.
func ensureVersion(c *Component, reg *Registry, def string) {
	if _, ok := c.Child("VERSION"); ok {
		return
	}
	cl := NewContentLine("VERSION", "")
	cl.Value = value.Raw(def)
	if b, ok := reg.GetBehavior("VERSION", ""); ok {
		cl.SetBehavior(b)
	}
	c.Add(cl)
}

// ensureValarmDefaults fills ACTION/TRIGGER onto a VALARM that lacks them
// (AUDIO with a zero-length trigger, the most permissive valid alarm).
func ensureValarmDefaults(c *Component, reg *Registry) {
	if _, ok := c.Child("ACTION"); !ok {
		cl := NewContentLine("ACTION", "")
		cl.Value = value.Raw("AUDIO")
		if b, ok := reg.GetBehavior("ACTION", ""); ok {
			cl.SetBehavior(b)
		}
		c.Add(cl)
	}
	if _, ok := c.Child("TRIGGER"); !ok {
		cl := NewContentLine("TRIGGER", "")
		cl.Value = value.Raw("PT0S")
		if b, ok := reg.GetBehavior("TRIGGER", ""); ok {
			cl.SetBehavior(b)
		}
		c.Add(cl)
	}
}

func formatUTCStamp(t time.Time) string {
	return t.Format("20060102T150405Z")
}
