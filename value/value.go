// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package value

// Value is the dual representation every vObject property value carries:
// either its original on-wire text (Raw) or a transformed native Go value
// produced by a Behavior's TransformToNative step. Exactly one of the two
// is meaningful at a time; IsNative reports which.
//
// This mirrors the upstream Python library's isNative flag on ContentLine,
// reshaped as a small sum type so callers can't read a native field off a
// still-raw value by mistake.
type Value struct {
	raw      string
	native   any
	isNative bool
}

// Raw wraps an on-wire string as a non-native Value.
func Raw(s string) Value {
	return Value{raw: s}
}

// Native wraps a transformed value as a native Value.
func Native(v any) Value {
	return Value{native: v, isNative: true}
}

// IsNative reports whether v holds a transformed native value rather than
// raw wire text.
func (v Value) IsNative() bool {
	return v.isNative
}

// RawText returns the underlying wire text and true, or "" and false if v
// is native.
func (v Value) RawText() (string, bool) {
	if v.isNative {
		return "", false
	}
	return v.raw, true
}

// NativeValue returns the underlying native value and true, or nil and
// false if v is still raw.
func (v Value) NativeValue() (any, bool) {
	if !v.isNative {
		return nil, false
	}
	return v.native, true
}
