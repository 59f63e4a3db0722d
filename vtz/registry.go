// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package vtz

import (
	"sync"
	"time"
)

// Registry is a process-wide TZID-to-Location table. Entries come from
// Register and from Lookup's smart fallback; parsing a VTIMEZONE does not
// add one. Default is pre-seeded with UTC.
type Registry struct {
	mu   sync.RWMutex
	zone map[string]*time.Location
}

// Default is the shared registry used when a Behavior isn't handed one
// explicitly, mirroring the upstream module-level registerTzid table.
var Default = NewRegistry()

// NewRegistry returns an empty registry seeded with "UTC" and "GMT".
func NewRegistry() *Registry {
	r := &Registry{zone: make(map[string]*time.Location)}
	r.zone["UTC"] = time.UTC
	r.zone["GMT"] = time.UTC
	return r
}

// Register associates tzid with loc, overwriting any previous entry.
func (r *Registry) Register(tzid string, loc *time.Location) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.zone[tzid] = loc
}

// Unregister removes tzid, if present.
func (r *Registry) Unregister(tzid string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.zone, tzid)
}

// Lookup returns the Location for tzid. When smart is true and tzid isn't
// already registered, Lookup falls back to time.LoadLocation(tzid) (an
// Olson database name, e.g. "America/New_York") and memoizes the result.
func (r *Registry) Lookup(tzid string, smart bool) (*time.Location, bool) {
	r.mu.RLock()
	loc, ok := r.zone[tzid]
	r.mu.RUnlock()
	if ok {
		return loc, true
	}
	if !smart {
		return nil, false
	}
	loaded, err := time.LoadLocation(tzid)
	if err != nil {
		return nil, false
	}
	r.Register(tzid, loaded)
	return loaded, true
}
