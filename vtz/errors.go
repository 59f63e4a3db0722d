// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package vtz

import "errors"

var (
	// ErrUnknownTZID means Lookup found no registered or loadable zone.
	ErrUnknownTZID = errors.New("vtz: unknown TZID")
	// ErrNoObservations means a VTimeZone has neither a STANDARD nor a
	// DAYLIGHT observation, so no offset can ever be resolved.
	ErrNoObservations = errors.New("vtz: VTIMEZONE has no STANDARD or DAYLIGHT observation")
)
