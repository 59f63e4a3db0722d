// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package linefold reconstructs logical vObject lines from a folded,
// optionally quoted-printable encoded byte stream, and folds logical lines
// back into the wire form on output.
package linefold
