// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package value

import "encoding/base64"

// DecodeBinary decodes a BINARY/ENCODING=BASE64 value (e.g. vCard PHOTO,
// iCalendar ATTACH).
func DecodeBinary(s string) ([]byte, error) {
	return base64.StdEncoding.DecodeString(s)
}

// EncodeBinary encodes raw bytes to their wire form.
func EncodeBinary(b []byte) string {
	return base64.StdEncoding.EncodeToString(b)
}
