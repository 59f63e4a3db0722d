// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package value_test

import (
	"testing"
	"time"

	"github.com/malpanez/vobject/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDurationWeeks(t *testing.T) {
	d, err := value.ParseDuration("P7W")
	require.NoError(t, err)
	assert.Equal(t, 7*7*24*time.Hour, d)
}

func TestParseDurationDateAndTime(t *testing.T) {
	d, err := value.ParseDuration("P1DT2H3M4S")
	require.NoError(t, err)
	assert.Equal(t, 24*time.Hour+2*time.Hour+3*time.Minute+4*time.Second, d)
}

func TestParseDurationNegative(t *testing.T) {
	d, err := value.ParseDuration("-P1D")
	require.NoError(t, err)
	assert.Equal(t, -24*time.Hour, d)
}

func TestParseDurationMixedWeeksIsError(t *testing.T) {
	_, err := value.ParseDuration("P1W2D")
	assert.ErrorIs(t, err, value.ErrDurationMixedWeeks)
}

func TestParseDurationTimeComponentWithoutTIsError(t *testing.T) {
	_, err := value.ParseDuration("P1H")
	assert.ErrorIs(t, err, value.ErrDurationTimeWithoutT)
}

func TestFormatDurationZero(t *testing.T) {
	assert.Equal(t, "PT0S", value.FormatDuration(0))
}

func TestFormatDurationRoundTrip(t *testing.T) {
	original := 3*24*time.Hour + 4*time.Hour + 5*time.Minute + 6*time.Second
	formatted := value.FormatDuration(original)
	parsed, err := value.ParseDuration(formatted)
	require.NoError(t, err)
	assert.Equal(t, original, parsed)
}
