// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package linefold

import (
	"bufio"
	"unicode/utf8"
)

// DefaultLineLength is the default octet budget per physical line (RFC
// 5545/2426 75-octet recommendation, not counting the terminating CRLF).
const DefaultLineLength = 75

// Fold writes line to w as one or more physical lines of at most limit
// octets of UTF-8, continuations prefixed with CRLF+SPACE. The split never
// falls inside a multi-byte UTF-8 sequence: the boundary is walked back to
// the previous lead byte first. The terminating CRLF is always written,
// including for an empty line.
func Fold(w *bufio.Writer, line string, limit int) error {
	if limit <= 0 {
		limit = DefaultLineLength
	}

	b := []byte(line)
	first := true
	for first || len(b) > 0 {
		n := limit
		if !first {
			// The leading SPACE counts toward a continuation's budget.
			n = limit - 1
		}
		first = false

		if n >= len(b) {
			n = len(b)
		} else {
			for n > 0 && isUTF8Continuation(b[n]) {
				n--
			}
			if n == 0 {
				_, sz := utf8.DecodeRune(b)
				if sz == 0 {
					sz = 1
				}
				n = sz
			}
		}

		if n > 0 {
			if _, err := w.Write(b[:n]); err != nil {
				return err
			}
		}
		if _, err := w.WriteString("\r\n"); err != nil {
			return err
		}
		b = b[n:]
		if len(b) > 0 {
			if err := w.WriteByte(' '); err != nil {
				return err
			}
		}
	}
	return nil
}

func isUTF8Continuation(b byte) bool {
	return b&0xC0 == 0x80
}
