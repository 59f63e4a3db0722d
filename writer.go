// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package vobject

import (
	"bufio"
	"io"
	"sort"

	"github.com/malpanez/vobject/contentline"
	"github.com/malpanez/vobject/linefold"
)

// Serialize writes comp (and its full subtree) to w as folded content
// lines, generating implicit parameters first and validating if requested.
func (c *Component) Serialize(w io.Writer, opts WriteOptions) error {
	bw := bufio.NewWriter(w)
	reg := opts.registry()

	if c.behavior != nil {
		if err := c.behavior.GenerateImplicitParameters(c, reg); err != nil {
			return err
		}
	}
	if opts.Validate && c.behavior != nil {
		if ok, err := c.behavior.Validate(c, true); !ok && err != nil {
			return &ValidateError{Message: err.Error(), Cause: err}
		}
	}

	if err := c.serializeNode(bw, opts.lineLength(), opts.Validate); err != nil {
		return err
	}
	return bw.Flush()
}

// serializeNode writes one node (and, for a Component, its children) using
// its Behavior's Serialize override if present, falling back to the
// default BEGIN/body/END or property-line rendering.
func (c *Component) serializeNode(w *bufio.Writer, lineLength int, validate bool) error {
	if c.behavior != nil {
		return c.behavior.Serialize(c, w, lineLength, validate)
	}
	return defaultSerializeComponent(c, w, lineLength, validate)
}

// defaultSerializeComponent writes BEGIN:name, each child in SortFirst
// order (falling back to alphabetical for the rest), then END:name.
func defaultSerializeComponent(c *Component, w *bufio.Writer, lineLength int, validate bool) error {
	if c.UseBegin {
		if err := writeLine(w, contentline.Line{Name: "BEGIN", Value: c.Name()}, lineLength); err != nil {
			return err
		}
	}

	for _, name := range childOrder(c) {
		for _, child := range c.Children(name) {
			if err := serializeChild(child, w, lineLength, validate); err != nil {
				return err
			}
		}
	}

	if c.UseBegin {
		if err := writeLine(w, contentline.Line{Name: "END", Value: c.Name()}, lineLength); err != nil {
			return err
		}
	}
	return nil
}

func serializeChild(child VBase, w *bufio.Writer, lineLength int, validate bool) error {
	switch n := child.(type) {
	case *Component:
		return n.serializeNode(w, lineLength, validate)
	case *ContentLine:
		return serializeContentLine(n, w, lineLength)
	default:
		return nil
	}
}

// serializeContentLine runs the property's Behavior.TransformFromNative (to
// produce on-wire text from a native value) if needed, then its
// Behavior.Encode, then writes the folded line.
func serializeContentLine(cl *ContentLine, w *bufio.Writer, lineLength int) error {
	if cl.IsNative() && cl.behavior != nil {
		if err := cl.behavior.TransformFromNative(cl); err != nil {
			return err
		}
	}
	if cl.behavior != nil {
		if err := cl.behavior.Encode(cl); err != nil {
			return err
		}
	}
	raw, _ := cl.Value.RawText()
	line := contentline.Line{
		Group:           cl.group,
		Name:            cl.name,
		Params:          cl.Params,
		SingletonParams: cl.SingletonParams,
		Value:           raw,
	}
	return writeLine(w, line, lineLength)
}

func writeLine(w *bufio.Writer, line contentline.Line, lineLength int) error {
	text, err := line.Serialize()
	if err != nil {
		return err
	}
	return linefold.Fold(w, text, lineLength)
}

// childOrder returns c's child names ordered per its Behavior's SortFirst
// list, followed by every remaining name alphabetically.
func childOrder(c *Component) []string {
	seen := map[string]bool{}
	var order []string

	if c.behavior != nil {
		for _, name := range c.behavior.SortFirst() {
			key := normalizeToken(name)
			if _, ok := c.contents[key]; ok && !seen[key] {
				order = append(order, key)
				seen[key] = true
			}
		}
	}

	var rest []string
	for key := range c.contents {
		if !seen[key] {
			rest = append(rest, key)
		}
	}
	sort.Strings(rest)
	return append(order, rest...)
}
