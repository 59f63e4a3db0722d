// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package vtz bridges VTIMEZONE component trees and Go's time.Location:
// a process-wide TZID registry, a VTIMEZONE-to-offset-resolver (FromVTIMEZONE),
// and the reverse synthesis of a VTIMEZONE's STANDARD/DAYLIGHT observations
// from a real time.Location by probing its transitions (ToVTIMEZONE).
package vtz
