// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package linefold_test

import (
	"bufio"
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/malpanez/vobject/linefold"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnfolderBasicContinuation(t *testing.T) {
	input := "DESCRIPTION:This is a long\r\n  description that wraps\r\n  over lines.\r\nEND:VEVENT\r\n"
	u := linefold.NewUnfolder(strings.NewReader(input), false)

	l1, err := u.Next()
	require.NoError(t, err)
	assert.Equal(t, "DESCRIPTION:This is a long description that wraps over lines.", l1.Text)
	assert.Equal(t, 1, l1.Number)

	l2, err := u.Next()
	require.NoError(t, err)
	assert.Equal(t, "END:VEVENT", l2.Text)

	_, err = u.Next()
	assert.ErrorIs(t, err, io.EOF)
}

func TestUnfolderAcceptsAllLineEndings(t *testing.T) {
	input := "BEGIN:VCALENDAR\nEND:VCALENDAR\r"
	u := linefold.NewUnfolder(strings.NewReader(input), false)

	l1, err := u.Next()
	require.NoError(t, err)
	assert.Equal(t, "BEGIN:VCALENDAR", l1.Text)

	l2, err := u.Next()
	require.NoError(t, err)
	assert.Equal(t, "END:VCALENDAR", l2.Text)
}

func TestUnfolderBlankLineTerminatesLogicalLine(t *testing.T) {
	input := "SUMMARY:hi\r\n\r\nDESCRIPTION:bye\r\n"
	u := linefold.NewUnfolder(strings.NewReader(input), false)

	l1, err := u.Next()
	require.NoError(t, err)
	assert.Equal(t, "SUMMARY:hi", l1.Text)

	l2, err := u.Next()
	require.NoError(t, err)
	assert.Equal(t, "DESCRIPTION:bye", l2.Text)
}

func TestUnfolderQuotedPrintableSoftBreak(t *testing.T) {
	// ENCODING=QUOTED-PRINTABLE with a soft break: the continuation is
	// appended verbatim (no leading-whitespace stripping) with a literal
	// newline joining the two physical halves, distinct from normal folding.
	input := "NOTE;ENCODING=QUOTED-PRINTABLE:abc=\r\n   def\r\n"
	u := linefold.NewUnfolder(strings.NewReader(input), true)

	l1, err := u.Next()
	require.NoError(t, err)
	assert.Equal(t, "NOTE;ENCODING=QUOTED-PRINTABLE:abc\n   def", l1.Text)
}

func TestUnfolderQuotedPrintableDisabledFallsBackToFolding(t *testing.T) {
	input := "NOTE;ENCODING=QUOTED-PRINTABLE:abc=\r\n def\r\n"
	u := linefold.NewUnfolder(strings.NewReader(input), false)

	l1, err := u.Next()
	require.NoError(t, err)
	assert.Equal(t, "NOTE;ENCODING=QUOTED-PRINTABLE:abc=def", l1.Text)
}

func TestFoldRespectsOctetBudget(t *testing.T) {
	var buf bytes.Buffer
	w := bufio.NewWriter(&buf)
	long := "SUMMARY:" + strings.Repeat("x", 200)
	require.NoError(t, linefold.Fold(w, long, 75))
	require.NoError(t, w.Flush())

	for _, physical := range strings.Split(strings.TrimSuffix(buf.String(), "\r\n"), "\r\n") {
		assert.LessOrEqual(t, len(physical), 75)
	}
}

func TestFoldUnfoldRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	w := bufio.NewWriter(&buf)
	original := "SUMMARY:" + strings.Repeat("ab", 100)
	require.NoError(t, linefold.Fold(w, original, 75))
	require.NoError(t, w.Flush())

	u := linefold.NewUnfolder(&buf, false)
	got, err := u.Next()
	require.NoError(t, err)
	assert.Equal(t, original, got.Text)
}

func TestFoldNeverSplitsMultiByteCodepoint(t *testing.T) {
	var buf bytes.Buffer
	w := bufio.NewWriter(&buf)
	// Every rune is 3 bytes (UTF-8 snowman), chosen so a naive 75-byte cut
	// would land mid-sequence.
	original := "SUMMARY:" + strings.Repeat("☃", 40)
	require.NoError(t, linefold.Fold(w, original, 75))
	require.NoError(t, w.Flush())

	u := linefold.NewUnfolder(&buf, false)
	got, err := u.Next()
	require.NoError(t, err)
	assert.Equal(t, original, got.Text)
	assert.True(t, stringValidUTF8(buf.String()))
}

func TestFoldEmptyLineStillTerminated(t *testing.T) {
	var buf bytes.Buffer
	w := bufio.NewWriter(&buf)
	require.NoError(t, linefold.Fold(w, "", 75))
	require.NoError(t, w.Flush())
	assert.Equal(t, "\r\n", buf.String())
}

func stringValidUTF8(s string) bool {
	for _, r := range s {
		if r == '�' {
			return false
		}
	}
	return true
}
