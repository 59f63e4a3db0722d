// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package value

import (
	"golang.org/x/text/encoding/htmlindex"
)

// DecodeCharset converts raw from the named charset (a vCard 2.1
// CHARSET parameter value, e.g. "ISO-8859-1" or "Windows-1252") to UTF-8.
// An empty charset, or one already naming UTF-8, returns raw unchanged.
func DecodeCharset(raw, charset string) (string, error) {
	if charset == "" {
		return raw, nil
	}
	enc, err := htmlindex.Get(charset)
	if err != nil {
		return "", err
	}
	name, _ := htmlindex.Name(enc)
	if name == "utf-8" {
		return raw, nil
	}
	out, err := enc.NewDecoder().String(raw)
	if err != nil {
		return "", err
	}
	return out, nil
}

// EncodeCharset converts s from UTF-8 to the named charset for output. An
// empty charset, or one already naming UTF-8, returns s unchanged.
func EncodeCharset(s, charset string) (string, error) {
	if charset == "" {
		return s, nil
	}
	enc, err := htmlindex.Get(charset)
	if err != nil {
		return "", err
	}
	name, _ := htmlindex.Name(enc)
	if name == "utf-8" {
		return s, nil
	}
	out, err := enc.NewEncoder().String(s)
	if err != nil {
		return "", err
	}
	return out, nil
}
