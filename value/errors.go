// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package value

import "errors"

var (
	ErrBadDate           = errors.New("value: malformed DATE")
	ErrBadDateTime       = errors.New("value: malformed DATE-TIME")
	ErrBadUTCOffset      = errors.New("value: malformed UTC-OFFSET")
	ErrBadPeriod         = errors.New("value: malformed PERIOD")
	ErrBadGeo            = errors.New("value: GEO must be two semicolon-separated floats")
	ErrBadCalAddress     = errors.New("value: malformed CAL-ADDRESS URI")
	ErrBadStructured     = errors.New("value: malformed structured (N/ADR/ORG) value")
	ErrTrailingBackslash = errors.New("value: TEXT ends in a dangling backslash escape")
)
