// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package value_test

import (
	"testing"

	"github.com/malpanez/vobject/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEscapeUnescapeTextRoundTrip(t *testing.T) {
	original := "Meeting; agenda, notes\nand a \\ backslash"
	escaped := value.EscapeText(original)
	assert.NotContains(t, escaped, "\n")

	got, err := value.UnescapeText(escaped)
	require.NoError(t, err)
	assert.Equal(t, original, got)
}

func TestUnescapeTextUnknownEscapePassesThrough(t *testing.T) {
	got, err := value.UnescapeText(`a\qb`)
	require.NoError(t, err)
	assert.Equal(t, `a\qb`, got)
}

func TestUnescapeTextTrailingBackslashErrors(t *testing.T) {
	_, err := value.UnescapeText(`abc\`)
	assert.ErrorIs(t, err, value.ErrTrailingBackslash)
}

func TestSplitMultiTextRespectsEscapedComma(t *testing.T) {
	got, err := value.SplitMultiText(`Finance,Travel\, International,HR`)
	require.NoError(t, err)
	assert.Equal(t, []string{"Finance", "Travel, International", "HR"}, got)
}

func TestJoinMultiTextEscapesCommas(t *testing.T) {
	out := value.JoinMultiText([]string{"Finance", "Travel, International"})
	assert.Equal(t, `Finance,Travel\, International`, out)
}
