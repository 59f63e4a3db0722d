// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package linefold

import (
	"bufio"
	"io"
	"strings"
)

// Line is one reconstructed logical line together with the physical line
// number its first octet started on (1-based), used for diagnostics when a
// ParseError is raised further up the stack.
type Line struct {
	Text   string
	Number int
}

// Unfolder reconstructs logical lines from a stream of physical lines.
// Continuation lines (leading SPACE or TAB) are concatenated after their
// single leading SPACE or TAB is removed; a blank physical line terminates the
// in-progress logical line. CRLF, LF, and CR line endings are all accepted.
//
// When AllowQP is set, a logical line that currently ends in "=" and
// contains the case-insensitive token "quoted-printable" switches to the
// quoted-printable soft-break rule for its next continuation: the next
// physical line is appended verbatim (no whitespace stripped) with a "\n"
// inserted in place of the trailing "=". This is a distinct continuation
// scheme from folding and must not share state with it.
type Unfolder struct {
	r       *bufio.Reader
	AllowQP bool

	lineNo  int
	pending *pendingLine
}

type pendingLine struct {
	text   string
	number int
}

// NewUnfolder wraps r for logical-line reconstruction.
func NewUnfolder(r io.Reader, allowQP bool) *Unfolder {
	return &Unfolder{r: bufio.NewReader(r), AllowQP: allowQP}
}

// Next returns the next logical line, or io.EOF when the stream is exhausted.
func (u *Unfolder) Next() (Line, error) {
	var logical strings.Builder
	startLineNo := 0

	for {
		var phys string
		var lineNo int
		var ok bool
		var err error

		if u.pending != nil {
			phys, lineNo = u.pending.text, u.pending.number
			u.pending = nil
			ok = true
		} else {
			phys, ok, err = u.readPhysical()
			if ok {
				u.lineNo++
				lineNo = u.lineNo
			}
		}

		if !ok {
			if err == io.EOF {
				if logical.Len() > 0 {
					return Line{logical.String(), startLineNo}, nil
				}
				return Line{}, io.EOF
			}
			return Line{}, err
		}

		if phys == "" {
			if logical.Len() > 0 {
				return Line{logical.String(), startLineNo}, nil
			}
			continue
		}

		if logical.Len() == 0 {
			startLineNo = lineNo
			logical.WriteString(phys)
			continue
		}

		if u.AllowQP && endsInQPSoftBreak(logical.String()) {
			s := logical.String()
			logical.Reset()
			logical.WriteString(s[:len(s)-1])
			logical.WriteByte('\n')
			logical.WriteString(phys)
			continue
		}

		first := phys[0]
		if first == ' ' || first == '\t' {
			logical.WriteString(phys[1:])
			continue
		}

		// phys belongs to the next logical line.
		u.pending = &pendingLine{phys, lineNo}
		return Line{logical.String(), startLineNo}, nil
	}
}

// endsInQPSoftBreak reports whether the in-progress logical line signals a
// quoted-printable soft line break: it ends with "=" and the token
// "quoted-printable" has appeared somewhere in it (RFC 2045's CHARSET/
// ENCODING parameters are case-insensitive, so the token search is too).
func endsInQPSoftBreak(s string) bool {
	if !strings.HasSuffix(s, "=") {
		return false
	}
	return strings.Contains(strings.ToLower(s), "quoted-printable")
}

// readPhysical reads one physical line, stripping whatever CRLF, LF, or CR
// terminator ended it. ok is false only at EOF (err is io.EOF) or on a
// genuine read error.
func (u *Unfolder) readPhysical() (line string, ok bool, err error) {
	var buf []byte
	for {
		b, rerr := u.r.ReadByte()
		if rerr != nil {
			if len(buf) > 0 {
				return string(buf), true, nil
			}
			return "", false, rerr
		}
		switch b {
		case '\n':
			return string(buf), true, nil
		case '\r':
			if next, perr := u.r.Peek(1); perr == nil && len(next) > 0 && next[0] == '\n' {
				_, _ = u.r.ReadByte()
			}
			return string(buf), true, nil
		default:
			buf = append(buf, b)
		}
	}
}
