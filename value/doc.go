// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package value implements the VALUE-type codecs a Behavior uses to move
// between the raw on-wire text of a content line and a native Go
// representation: TEXT escaping, DATE/DATE-TIME, DURATION, PERIOD,
// UTC-OFFSET, CAL-ADDRESS, GEO, and the structured N/ADR/ORG vCard values.
// Every codec in this package is a pure function pair (Parse.../Format...)
// with no knowledge of Behavior, Component, or the registry one layer up.
package value
