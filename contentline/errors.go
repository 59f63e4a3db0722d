// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package contentline

import "errors"

var (
	// ErrMissingColon means no unquoted ":" separates the header from the value.
	ErrMissingColon = errors.New("contentline: missing unquoted ':' separating header from value")
	// ErrEmptyName means the name portion (after any group prefix) was empty.
	ErrEmptyName = errors.New("contentline: empty property name")
	// ErrQuoteInParamValue means a parameter value containing a double quote
	// was given to Serialize; DQUOTE cannot be escaped inside a quoted
	// parameter value per RFC 5545 grammar, so this is a caller error.
	ErrQuoteInParamValue = errors.New("contentline: parameter value contains a double quote")
)
