// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package vobject

import (
	"io"
	"iter"

	"github.com/malpanez/vobject/contentline"
	"github.com/malpanez/vobject/linefold"
	"github.com/malpanez/vobject/value"
)

// frame is one open component on the reader's parse stack.
type frame struct {
	comp    *Component
	version string
}

// ReadComponents parses r as a stream of zero or more top-level components
// (anything at BEGIN/END nesting depth zero), yielding each as it closes.
// Iteration stops at the first error; ignoreUnreadable lines are skipped
// and logged rather than surfaced.
func ReadComponents(r io.Reader, opts ReadOptions) iter.Seq2[*Component, error] {
	return func(yieldAll func(*Component, error) bool) {
		// Every error ends the stream: yield reports false once it has
		// delivered an error, so each error site below returns.
		yield := func(c *Component, err error) bool {
			return yieldAll(c, err) && err == nil
		}
		reg := opts.registry()
		unfolder := linefold.NewUnfolder(r, opts.AllowQP)
		var stack []*frame

		for {
			ln, err := unfolder.Next()
			if err == io.EOF {
				if len(stack) > 0 {
					yield(nil, &ParseError{Message: ErrUnexpectedEOF.Error(), Cause: ErrUnexpectedEOF})
				}
				return
			}
			if err != nil {
				yield(nil, err)
				return
			}

			cl, perr := contentline.Parse(ln.Text)
			if perr != nil {
				if opts.IgnoreUnreadable {
					Logger.Printf("skipping unreadable line %d: %v", ln.Number, perr)
					continue
				}
				if !yield(nil, &ParseError{Message: perr.Error(), Line: ln.Number, Cause: perr}) {
					return
				}
				continue
			}

			switch cl.Name {
			case "BEGIN":
				name := cl.Value
				node := NewComponent(name, cl.Group)
				version := ""
				if len(stack) > 0 {
					version = stack[len(stack)-1].version
				}
				if b, ok := reg.GetBehavior(name, version); ok {
					node.SetBehavior(b)
				}
				stack = append(stack, &frame{comp: node})

			case "END":
				if len(stack) == 0 {
					if !yield(nil, &ParseError{Message: ErrUnknownName.Error(), Line: ln.Number, Cause: ErrUnknownName}) {
						return
					}
					continue
				}
				top := stack[len(stack)-1]
				if normalizeToken(cl.Value) != top.comp.Name() {
					if !yield(nil, &ParseError{Message: ErrUnmatchedEnd.Error(), Line: ln.Number, Cause: ErrUnmatchedEnd}) {
						return
					}
					continue
				}
				stack = stack[:len(stack)-1]

				if err := finishComponent(top.comp, opts, reg); err != nil {
					if !yield(nil, err) {
						return
					}
					continue
				}

				if len(stack) == 0 {
					if !yield(top.comp, nil) {
						return
					}
				} else {
					stack[len(stack)-1].comp.Add(top.comp)
				}

			case "VERSION":
				line := newContentLineFrom(cl, ln.Number)
				if len(stack) > 0 {
					stack[len(stack)-1].version, _ = line.Value.RawText()
					attachProperty(stack[len(stack)-1].comp, line, reg, stack[len(stack)-1].version)
				}

			default:
				if len(stack) == 0 {
					if !yield(nil, &ParseError{Message: ErrUnknownName.Error(), Line: ln.Number, Cause: ErrUnknownName}) {
						return
					}
					continue
				}
				line := newContentLineFrom(cl, ln.Number)
				attachProperty(stack[len(stack)-1].comp, line, reg, stack[len(stack)-1].version)
			}
		}
	}
}

// ReadOne parses r and returns its first top-level component.
func ReadOne(r io.Reader, opts ReadOptions) (*Component, error) {
	for comp, err := range ReadComponents(r, opts) {
		return comp, err
	}
	return nil, io.EOF
}

func newContentLineFrom(cl *contentline.Line, lineNo int) *ContentLine {
	out := &ContentLine{
		name:            cl.Name,
		group:           cl.Group,
		Params:          cl.Params,
		SingletonParams: cl.SingletonParams,
		Value:           value.Raw(cl.Value),
		Line:            lineNo,
	}
	if out.Params == nil {
		out.Params = map[string][]string{}
	}
	return out
}

func attachProperty(parent *Component, cl *ContentLine, reg *Registry, version string) {
	if b, ok := reg.GetBehavior(cl.Name(), version); ok {
		cl.SetBehavior(b)
		if err := b.Decode(cl); err != nil {
			Logger.Printf("line %d: decode %s: %v", cl.Line, cl.Name(), err)
		}
	}
	parent.Add(cl)
}

// finishComponent resolves the closed component's final Behavior (now that
// any VERSION child has been seen), then per opts transforms its direct
// ContentLine children to native, runs Validate, and transforms the
// component itself. Implicit parameters are not generated here.
func finishComponent(comp *Component, opts ReadOptions, reg *Registry) error {
	version := ""
	if vNode, ok := comp.Child("VERSION"); ok {
		if cl, ok := vNode.(*ContentLine); ok {
			version, _ = cl.Value.RawText()
		}
	}
	if b, ok := reg.GetBehavior(comp.Name(), version); ok {
		comp.SetBehavior(b)
	}

	if opts.Transform {
		// Component children finished their own leaf transforms already
		// (their END was seen first); only this component's own direct
		// ContentLine children remain untransformed at this point.
		for _, children := range comp.contents {
			for _, child := range children {
				cl, ok := child.(*ContentLine)
				if !ok || cl.Behavior() == nil {
					continue
				}
				if err := cl.Behavior().TransformToNative(cl); err != nil {
					return wrapParseError(cl.Line, err)
				}
			}
		}
	}

	if opts.Validate {
		if comp.Behavior() != nil {
			if ok, err := comp.Behavior().Validate(comp, true); !ok && err != nil {
				return &ValidateError{Message: err.Error(), Cause: err}
			}
		}
	}
	if opts.Transform {
		if comp.Behavior() != nil {
			if err := comp.Behavior().TransformToNative(comp); err != nil {
				return wrapParseError(0, err)
			}
		}
	}
	return nil
}
