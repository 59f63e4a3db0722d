// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package value

import "net/url"

// ParseCalAddress parses a CAL-ADDRESS value (an ORGANIZER/ATTENDEE
// "mailto:" or other URI).
func ParseCalAddress(s string) (*url.URL, error) {
	u, err := url.Parse(s)
	if err != nil {
		return nil, ErrBadCalAddress
	}
	return u, nil
}

// FormatCalAddress renders u back to its wire form.
func FormatCalAddress(u *url.URL) string {
	if u == nil {
		return ""
	}
	return u.String()
}
