// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package contentline decomposes one logical vObject line —
// "group.NAME;PARAM=val,val;PARAM2=\"q\":VALUE" — into its structured form,
// and reconstructs the wire form from it with correct quoting and escaping.
// It does not interpret or escape the VALUE portion: that is the job of a
// Behavior's decode/encode step, one layer up.
package contentline
