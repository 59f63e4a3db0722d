// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package vobject

import (
	"bufio"
	"strconv"
)

// componentBehavior is a data-driven Behavior for a BEGIN/END component
// (VEVENT, VCALENDAR, VCARD, ...), configured with the hooks and metadata
// that distinguish it rather than implemented as its own Go type.
type componentBehavior struct {
	name    string
	version string

	hasNative     bool
	sortFirst     []string
	knownChildren map[string]ChildSpec
	defaultChild  Behavior

	validate   func(c *Component, raise bool) (bool, error)
	toNative   func(c *Component) error
	fromNative func(c *Component) error
	implicit   func(c *Component, reg *Registry) error

	// serialize overrides the default BEGIN/children/END rendering; nil
	// selects defaultSerializeComponent.
	serialize func(c *Component, w *bufio.Writer, lineLength int, validate bool) error
}

func (b *componentBehavior) Name() string                       { return b.name }
func (b *componentBehavior) VersionString() string               { return b.version }
func (b *componentBehavior) IsComponent() bool                   { return true }
func (b *componentBehavior) HasNative() bool                     { return b.hasNative }
func (b *componentBehavior) SortFirst() []string                 { return b.sortFirst }
func (b *componentBehavior) KnownChildren() map[string]ChildSpec { return b.knownChildren }
func (b *componentBehavior) DefaultBehavior() Behavior            { return b.defaultChild }

func (b *componentBehavior) Validate(node VBase, raise bool) (bool, error) {
	c, ok := node.(*Component)
	if !ok {
		return true, nil
	}
	if err := validateCardinality(c, b.knownChildren); err != nil {
		if raise {
			return false, err
		}
		return false, nil
	}
	if b.validate == nil {
		return true, nil
	}
	return b.validate(c, raise)
}

func (b *componentBehavior) Decode(cl *ContentLine) error { return nil }
func (b *componentBehavior) Encode(cl *ContentLine) error { return nil }

func (b *componentBehavior) TransformToNative(node VBase) error {
	c, ok := node.(*Component)
	if !ok || b.toNative == nil {
		return nil
	}
	return b.toNative(c)
}

func (b *componentBehavior) TransformFromNative(node VBase) error {
	c, ok := node.(*Component)
	if !ok || b.fromNative == nil {
		return nil
	}
	return b.fromNative(c)
}

func (b *componentBehavior) GenerateImplicitParameters(node VBase, reg *Registry) error {
	c, ok := node.(*Component)
	if !ok {
		return nil
	}
	for _, children := range c.contents {
		for _, child := range children {
			if child.Behavior() != nil {
				if err := child.Behavior().GenerateImplicitParameters(child, reg); err != nil {
					return err
				}
			}
		}
	}
	if b.implicit == nil {
		return nil
	}
	return b.implicit(c, reg)
}

func (b *componentBehavior) Serialize(node VBase, w *bufio.Writer, lineLength int, validate bool) error {
	c, ok := node.(*Component)
	if !ok {
		return nil
	}
	if b.serialize != nil {
		return b.serialize(c, w, lineLength, validate)
	}
	return defaultSerializeComponent(c, w, lineLength, validate)
}

// validateCardinality checks each known child's Min/Max against the
// component's actual children. Children not listed in known are not
// checked.
func validateCardinality(c *Component, known map[string]ChildSpec) error {
	for name, spec := range known {
		count := len(c.Children(name))
		if count < spec.Min {
			return &ValidateError{Message: name + ": too few (" + strconv.Itoa(count) + " < " + strconv.Itoa(spec.Min) + ")", Cause: ErrCardinality}
		}
		if spec.Max > 0 && count > spec.Max {
			return &ValidateError{Message: name + ": too many (" + strconv.Itoa(count) + " > " + strconv.Itoa(spec.Max) + ")", Cause: ErrCardinality}
		}
	}
	return nil
}
