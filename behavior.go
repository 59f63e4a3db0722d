// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package vobject

import (
	"bufio"
	"fmt"
	"sync"
)

// ChildSpec describes the cardinality and version applicability of one
// permitted child name within a parent's KnownChildren table.
type ChildSpec struct {
	Min         int
	Max         int // 0 means unbounded
	VersionHint string
}

// Behavior governs one property or component name: how its ContentLine
// encodes/decodes, how it converts to and from native Go values, what
// children a component may hold, and how it serializes. Behaviors are
// stateless descriptors, looked up by (name, version) from a Registry
// rather than attached via inheritance.
type Behavior interface {
	Name() string
	VersionString() string
	IsComponent() bool
	HasNative() bool
	SortFirst() []string
	KnownChildren() map[string]ChildSpec
	DefaultBehavior() Behavior

	Validate(node VBase, raise bool) (bool, error)
	Decode(cl *ContentLine) error
	Encode(cl *ContentLine) error
	TransformToNative(node VBase) error
	TransformFromNative(node VBase) error
	GenerateImplicitParameters(node VBase, reg *Registry) error
	Serialize(node VBase, w *bufio.Writer, lineLength int, validate bool) error
}

// versionedBehavior pairs a Behavior with the version string it was
// registered under; the first entry registered for a name is its default.
type versionedBehavior struct {
	version  string
	behavior Behavior
}

// Registry maps a property/component name to its known Behaviors, keyed
// by version. Registries are safe for concurrent use.
type Registry struct {
	mu    sync.RWMutex
	table map[string][]versionedBehavior
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{table: map[string][]versionedBehavior{}}
}

// DefaultRegistry is the package-level registry populated by init() in
// register_init.go with every built-in iCalendar and vCard Behavior.
var DefaultRegistry = NewRegistry()

// RegisterOption configures a RegisterBehavior call.
type RegisterOption func(*registerConfig)

type registerConfig struct {
	asDefault bool
}

// AsDefault marks this registration as the name's default behavior
// regardless of registration order.
func AsDefault() RegisterOption {
	return func(c *registerConfig) { c.asDefault = true }
}

// RegisterBehavior adds b to the registry under normalizeToken(b.Name()).
// The first Behavior registered for a name becomes its default unless a
// later registration passes AsDefault().
func (r *Registry) RegisterBehavior(b Behavior, opts ...RegisterOption) {
	cfg := registerConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	key := normalizeToken(b.Name())
	entry := versionedBehavior{version: b.VersionString(), behavior: b}
	if cfg.asDefault && len(r.table[key]) > 0 {
		r.table[key] = append([]versionedBehavior{entry}, r.table[key]...)
		return
	}
	r.table[key] = append(r.table[key], entry)
}

// GetBehavior looks up the Behavior registered for name under version. An
// empty version returns the name's default (first-registered) Behavior.
// If no exact version match exists but the name is known, the default is
// returned as a fallback rather than failing the lookup.
func (r *Registry) GetBehavior(name, version string) (Behavior, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries, ok := r.table[normalizeToken(name)]
	if !ok || len(entries) == 0 {
		return nil, false
	}
	if version == "" {
		return entries[0].behavior, true
	}
	for _, e := range entries {
		if e.version == version {
			return e.behavior, true
		}
	}
	return entries[0].behavior, true
}

// NewFromBehavior constructs an empty VBase (Component if the resolved
// Behavior is a component, ContentLine otherwise) for name under version,
// looked up in reg, and attaches that Behavior to it.
func NewFromBehavior(name, version string, reg *Registry) (VBase, error) {
	b, ok := reg.GetBehavior(name, version)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNoBehavior, name)
	}
	var node VBase
	if b.IsComponent() {
		node = NewComponent(name, "")
	} else {
		node = NewContentLine(name, "")
	}
	node.SetBehavior(b)
	return node, nil
}
