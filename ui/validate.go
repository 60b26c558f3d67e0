// Copyright 2025 The Go A2UI Authors
// SPDX-License-Identifier: Apache-2.0

package ui

import (
	"fmt"
)

// DefaultMaxComponents bounds the total number of registered components
// per surface unless a Validator overrides it.
const DefaultMaxComponents = 500

// Result is the outcome of a validation check, returned as data so
// callers can choose to render partially, degrade, or reject.
type Result struct {
	Valid  bool
	Errors []string
}

// Validator bounds the total component count per surface to cap
// resource usage from adversarial or buggy payloads.
type Validator struct {
	// MaxComponents is the inclusive upper bound; 0 means
	// DefaultMaxComponents.
	MaxComponents int
}

// limit returns the effective bound.
func (v Validator) limit() int {
	if v.MaxComponents > 0 {
		return v.MaxComponents
	}
	return DefaultMaxComponents
}

// Validate checks a surface's registry against the component bound.
func (v Validator) Validate(s *Surface) Result {
	count := s.ComponentCount()
	if count <= v.limit() {
		return Result{Valid: true}
	}
	return Result{
		Valid: false,
		Errors: []string{
			fmt.Sprintf("surface %q has %d components, exceeding the limit of %d", s.ID, count, v.limit()),
		},
	}
}

// ValidateUpdate checks whether applying a batch of components to the
// surface would exceed the bound. The count is over the union of
// already-registered ids and incoming ids, so re-sent components are
// counted once. A batch landing exactly at the bound succeeds.
func (v Validator) ValidateUpdate(s *Surface, incoming []*Component) Result {
	count := s.ComponentCount()
	seen := make(map[string]bool)
	for _, c := range incoming {
		if c == nil || c.ID == "" || seen[c.ID] {
			continue
		}
		seen[c.ID] = true
		if _, exists := s.Component(c.ID); !exists {
			count++
		}
	}

	if count <= v.limit() {
		return Result{Valid: true}
	}
	return Result{
		Valid: false,
		Errors: []string{
			fmt.Sprintf("update would grow surface %q to %d components, exceeding the limit of %d", s.ID, count, v.limit()),
		},
	}
}
