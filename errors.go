// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package vobject

import (
	"errors"
	"fmt"
)

// Sentinel causes, wrapped by the tagged error kinds below per spec §7.
var (
	ErrUnmatchedEnd         = errors.New("vobject: END does not match the open BEGIN")
	ErrUnexpectedEOF        = errors.New("vobject: stream ended inside an open component")
	ErrUnknownName          = errors.New("vobject: no BEGIN is open for this content line")
	ErrNoBehavior           = errors.New("vobject: no Behavior registered for this name")
	ErrDoubleQuoteInParam   = errors.New("vobject: parameter value contains a double quote")
	ErrComponentTwoProfiles = errors.New("vobject: component given two PROFILE lines")
	ErrCardinality          = errors.New("vobject: child cardinality violation")
	ErrMissingAnchor        = errors.New("vobject: component has neither DTSTART nor DUE")
)

// ParseError is a malformed-input failure at the lexical, grammar, or tree
// level. Line is 0 when no source line is known.
type ParseError struct {
	Message string
	Line    int
	Cause   error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("vobject: parse error at line %d: %s", e.Line, e.Message)
	}
	return fmt.Sprintf("vobject: parse error: %s", e.Message)
}

func (e *ParseError) Unwrap() error { return e.Cause }

// NativeError is a failure converting between raw wire text and a native
// Go value.
type NativeError struct {
	Message string
	Line    int
	Cause   error
}

func (e *NativeError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("vobject: native conversion error at line %d: %s", e.Line, e.Message)
	}
	return fmt.Sprintf("vobject: native conversion error: %s", e.Message)
}

func (e *NativeError) Unwrap() error { return e.Cause }

// ValidateError is a Behavior cardinality or semantic-rule failure.
type ValidateError struct {
	Message string
	Cause   error
}

func (e *ValidateError) Error() string {
	return fmt.Sprintf("vobject: validation error: %s", e.Message)
}

func (e *ValidateError) Unwrap() error { return e.Cause }

// wrapParseError fills in line if cause is already a *ParseError or
// *NativeError missing one, otherwise chains cause under a new ParseError,
// per spec §7's "errors inside native transformation are wrapped" policy.
// A nil cause yields nil.
func wrapParseError(line int, cause error) error {
	if cause == nil {
		return nil
	}
	var pe *ParseError
	if errors.As(cause, &pe) {
		if pe.Line == 0 {
			pe.Line = line
		}
		return pe
	}
	var ne *NativeError
	if errors.As(cause, &ne) {
		if ne.Line == 0 {
			ne.Line = line
		}
		return ne
	}
	return &ParseError{Message: cause.Error(), Line: line, Cause: cause}
}
