// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package value

import (
	"strconv"
	"strings"
)

// Geo is a GEO value: WGS84 latitude/longitude.
type Geo struct {
	Latitude  float64
	Longitude float64
}

// ParseGeo parses "lat;lon" per RFC 5545 §3.8.1.6: two semicolon-separated
// floats, latitude first.
func ParseGeo(s string) (Geo, error) {
	before, after, ok := strings.Cut(s, ";")
	if !ok {
		return Geo{}, ErrBadGeo
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(before), 64)
	if err != nil {
		return Geo{}, ErrBadGeo
	}
	lon, err := strconv.ParseFloat(strings.TrimSpace(after), 64)
	if err != nil {
		return Geo{}, ErrBadGeo
	}
	return Geo{Latitude: lat, Longitude: lon}, nil
}

// FormatGeo renders g back to its wire form.
func FormatGeo(g Geo) string {
	return strconv.FormatFloat(g.Latitude, 'f', -1, 64) + ";" + strconv.FormatFloat(g.Longitude, 'f', -1, 64)
}
