// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package vobject

import "bufio"

// propertyBehavior is a data-driven Behavior for a leaf ContentLine
// property (DTSTART, SUMMARY, N, ...): rather than one hand-written Go
// type per property, each concrete property is an instance of this struct
// configured with the codec functions it needs. A Behavior is a stateless
// lookup value, not a subclass.
type propertyBehavior struct {
	name    string
	version string

	decode func(cl *ContentLine) error
	encode func(cl *ContentLine) error

	toNative   func(cl *ContentLine) error
	fromNative func(cl *ContentLine) error

	validate func(cl *ContentLine) error
}

func (p *propertyBehavior) Name() string                        { return p.name }
func (p *propertyBehavior) VersionString() string                { return p.version }
func (p *propertyBehavior) IsComponent() bool                    { return false }
func (p *propertyBehavior) HasNative() bool                      { return p.toNative != nil }
func (p *propertyBehavior) SortFirst() []string                  { return nil }
func (p *propertyBehavior) KnownChildren() map[string]ChildSpec   { return nil }
func (p *propertyBehavior) DefaultBehavior() Behavior             { return nil }

func (p *propertyBehavior) Decode(cl *ContentLine) error {
	if p.decode == nil {
		return nil
	}
	return p.decode(cl)
}

func (p *propertyBehavior) Encode(cl *ContentLine) error {
	if p.encode == nil {
		return nil
	}
	return p.encode(cl)
}

func (p *propertyBehavior) Validate(node VBase, raise bool) (bool, error) {
	cl, ok := node.(*ContentLine)
	if !ok || p.validate == nil {
		return true, nil
	}
	if err := p.validate(cl); err != nil {
		if raise {
			return false, err
		}
		return false, nil
	}
	return true, nil
}

func (p *propertyBehavior) TransformToNative(node VBase) error {
	cl, ok := node.(*ContentLine)
	if !ok || p.toNative == nil || cl.IsNative() {
		return nil
	}
	return wrapParseError(cl.Line, p.toNative(cl))
}

func (p *propertyBehavior) TransformFromNative(node VBase) error {
	cl, ok := node.(*ContentLine)
	if !ok || p.fromNative == nil || !cl.IsNative() {
		return nil
	}
	return p.fromNative(cl)
}

func (p *propertyBehavior) GenerateImplicitParameters(node VBase, reg *Registry) error {
	return nil
}

func (p *propertyBehavior) Serialize(node VBase, w *bufio.Writer, lineLength int, validate bool) error {
	cl, ok := node.(*ContentLine)
	if !ok {
		return nil
	}
	return serializeContentLine(cl, w, lineLength)
}
