// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package vobject

import (
	"fmt"

	"github.com/malpanez/vobject/value"
)

// VBase is implemented by both ContentLine and Component: every tree node
// carries a name, an optional group prefix, a Behavior reference, and
// whether its value has been transformed to native form.
type VBase interface {
	Name() string
	Group() string
	Behavior() Behavior
	SetBehavior(b Behavior)
	IsNative() bool
}

// ContentLine is one decoded property line: group.NAME;PARAM=val:VALUE.
type ContentLine struct {
	name            string
	group           string
	Params          map[string][]string
	SingletonParams []string
	Value           value.Value
	Line            int

	behavior Behavior
}

// NewContentLine constructs an empty, non-native ContentLine.
func NewContentLine(name, group string) *ContentLine {
	return &ContentLine{
		name:   normalizeToken(name),
		group:  group,
		Params: map[string][]string{},
	}
}

func (c *ContentLine) Name() string           { return c.name }
func (c *ContentLine) Group() string          { return c.group }
func (c *ContentLine) Behavior() Behavior     { return c.behavior }
func (c *ContentLine) SetBehavior(b Behavior) { c.behavior = b }
func (c *ContentLine) IsNative() bool         { return c.Value.IsNative() }

// Param returns the first value of param, if present.
func (c *ContentLine) Param(name string) (string, bool) {
	vs, ok := c.Params[normalizeToken(name)]
	if !ok || len(vs) == 0 {
		return "", false
	}
	return vs[0], true
}

// ParamList returns every value of param.
func (c *ContentLine) ParamList(name string) []string {
	return c.Params[normalizeToken(name)]
}

// HasSingletonParam reports whether name appears as a bare (unlabelled)
// parameter token.
func (c *ContentLine) HasSingletonParam(name string) bool {
	name = normalizeToken(name)
	for _, s := range c.SingletonParams {
		if s == name {
			return true
		}
	}
	return false
}

// Component is a BEGIN:X ... END:X block, possibly containing nested
// components. contents is keyed by child name as normalizeToken gives it
// (upper case, '_' as '-') with insertion order preserved per bucket.
type Component struct {
	name     string
	group    string
	UseBegin bool

	contents map[string][]VBase
	behavior Behavior
}

// NewComponent constructs an empty Component with UseBegin set.
func NewComponent(name, group string) *Component {
	return &Component{
		name:     normalizeToken(name),
		group:    group,
		UseBegin: true,
		contents: map[string][]VBase{},
	}
}

func (c *Component) Name() string           { return c.name }
func (c *Component) Group() string          { return c.group }
func (c *Component) Behavior() Behavior     { return c.behavior }
func (c *Component) SetBehavior(b Behavior) { c.behavior = b }
func (c *Component) IsNative() bool         { return c.behavior != nil && c.behavior.HasNative() }

// Add inserts child under its own Name(), normalized by normalizeToken.
func (c *Component) Add(child VBase) {
	key := childKey(child.Name())
	c.contents[key] = append(c.contents[key], child)
}

// Remove deletes child by identity from its bucket, a no-op if absent.
func (c *Component) Remove(child VBase) {
	key := childKey(child.Name())
	siblings := c.contents[key]
	for i, s := range siblings {
		if s == child {
			c.contents[key] = append(siblings[:i], siblings[i+1:]...)
			return
		}
	}
}

// Child returns the first child named name, if any.
func (c *Component) Child(name string) (VBase, bool) {
	siblings := c.contents[childKey(name)]
	if len(siblings) == 0 {
		return nil, false
	}
	return siblings[0], true
}

// Children returns every child named name, in insertion order.
func (c *Component) Children(name string) []VBase {
	return c.contents[childKey(name)]
}

// AllChildren returns every child across every name, grouped by name in
// map-iteration order (serialization order is computed separately, by
// childOrder in writer.go).
func (c *Component) AllChildren() map[string][]VBase {
	return c.contents
}

// GetChildValue returns the first child's decoded value as a string (its
// RawText if still raw, or fmt's default formatting of the native value),
// or def if the child is absent.
func (c *Component) GetChildValue(name, def string) string {
	child, ok := c.Child(name)
	if !ok {
		return def
	}
	cl, ok := child.(*ContentLine)
	if !ok {
		return def
	}
	if raw, ok := cl.Value.RawText(); ok {
		return raw
	}
	if v, ok := cl.Value.NativeValue(); ok {
		return fmt.Sprint(v)
	}
	return def
}

func childKey(name string) string {
	return normalizeToken(name)
}

func normalizeToken(s string) string {
	out := make([]byte, len(s))
	for i := 0; i < len(s); i++ {
		b := s[i]
		switch {
		case b >= 'a' && b <= 'z':
			out[i] = b - ('a' - 'A')
		case b == '_':
			out[i] = '-'
		default:
			out[i] = b
		}
	}
	return string(out)
}
