// Copyright 2025 The Go A2UI Authors
// SPDX-License-Identifier: Apache-2.0

package ui

// Surface is a named render target owning a root component id, a
// component registry, and a data model addressable by separator paths.
//
// Surfaces are session-scoped and owned by a single logical consumer;
// none of the methods synchronize.
type Surface struct {
	// ID is the surface identifier scoping all protocol messages.
	ID string

	// RootID is the id of the root component to transform.
	RootID string

	// Styles carries opaque styling hints delivered with beginRendering.
	Styles map[string]any

	registry map[string]*Component
	model    map[string]any
}

// NewSurface creates an empty surface.
func NewSurface(id, rootID string, styles map[string]any) *Surface {
	return &Surface{
		ID:       id,
		RootID:   rootID,
		Styles:   styles,
		registry: make(map[string]*Component),
		model:    make(map[string]any),
	}
}

// Component looks up a registry entry by id.
func (s *Surface) Component(id string) (*Component, bool) {
	c, ok := s.registry[id]
	return c, ok
}

// ComponentCount returns the number of registered components.
func (s *Surface) ComponentCount() int {
	return len(s.registry)
}

// ComponentIDs returns the ids of all registered components, in no
// particular order.
func (s *Surface) ComponentIDs() []string {
	ids := make([]string, 0, len(s.registry))
	for id := range s.registry {
		ids = append(ids, id)
	}
	return ids
}

// Model returns the surface's live data model.
func (s *Surface) Model() map[string]any {
	return s.model
}

// upsert adds or replaces registry entries by id. Last write wins;
// entries are never implicitly deleted. This is the only place registry
// mutation happens.
func (s *Surface) upsert(components []*Component) {
	for _, c := range components {
		if c == nil || c.ID == "" {
			continue
		}
		s.registry[c.ID] = c
	}
}

// mergeModel merges a fragment into the data model: a shallow merge in
// which top-level keys are replaced wholesale. The model is never
// implicitly replaced in full.
func (s *Surface) mergeModel(fragment map[string]any) {
	for k, v := range fragment {
		s.model[k] = v
	}
}
