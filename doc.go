// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package vobject parses, models, mutates, and re-serializes the
// iCalendar (RFC 5545) and vCard (RFC 2425/2426) "vObject" family of
// line-oriented text formats: BEGIN/END-delimited components containing
// folded content lines with typed parameters and values.
//
// A Component tree is read with ReadComponents or ReadOne, mutated through
// Add/Remove/Child/Children, and written back with Component.Serialize. Each
// property or component name is governed by a Behavior looked up in a
// Registry by (name, version) — the registry and the value codecs in the
// linefold, contentline, value, rrule, and vtz subpackages are what give
// meaning to an otherwise untyped tree of names and strings.
package vobject
