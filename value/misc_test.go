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

func TestParsePeriodWithEnd(t *testing.T) {
	p, err := value.ParsePeriod("19970101T180000Z/19970102T070000Z", nil)
	require.NoError(t, err)
	assert.False(t, p.End.IsZero())
	assert.Equal(t, time.Duration(0), p.Duration)
}

func TestParsePeriodWithDuration(t *testing.T) {
	p, err := value.ParsePeriod("19970101T180000Z/PT5H30M", nil)
	require.NoError(t, err)
	assert.True(t, p.End.IsZero())
	assert.Equal(t, 5*time.Hour+30*time.Minute, p.Duration)
}

func TestParsePeriodMissingSlashIsError(t *testing.T) {
	_, err := value.ParsePeriod("19970101T180000Z", nil)
	assert.ErrorIs(t, err, value.ErrBadPeriod)
}

func TestParseGeo(t *testing.T) {
	g, err := value.ParseGeo("37.386013;-122.082932")
	require.NoError(t, err)
	assert.InDelta(t, 37.386013, g.Latitude, 1e-9)
	assert.InDelta(t, -122.082932, g.Longitude, 1e-9)
}

func TestParseGeoMissingSemicolonIsError(t *testing.T) {
	_, err := value.ParseGeo("37.386013")
	assert.ErrorIs(t, err, value.ErrBadGeo)
}

func TestParseCalAddress(t *testing.T) {
	u, err := value.ParseCalAddress("mailto:jsmith@example.com")
	require.NoError(t, err)
	assert.Equal(t, "mailto", u.Scheme)
	assert.Equal(t, "jsmith@example.com", u.Opaque)
}

func TestBinaryRoundTrip(t *testing.T) {
	raw := []byte("hello vobject")
	encoded := value.EncodeBinary(raw)
	decoded, err := value.DecodeBinary(encoded)
	require.NoError(t, err)
	assert.Equal(t, raw, decoded)
}

func TestValueRawVsNative(t *testing.T) {
	raw := value.Raw("20060509")
	assert.False(t, raw.IsNative())
	text, ok := raw.RawText()
	assert.True(t, ok)
	assert.Equal(t, "20060509", text)

	d, _ := value.ParseDate("20060509")
	native := value.Native(d)
	assert.True(t, native.IsNative())
	_, ok = native.RawText()
	assert.False(t, ok)
	v, ok := native.NativeValue()
	assert.True(t, ok)
	assert.Equal(t, d, v)
}
