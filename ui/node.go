// Copyright 2025 The Go A2UI Authors
// SPDX-License-Identifier: Apache-2.0

package ui

// Node is an abstract, binding-free UI node produced by the
// transformer. The external renderer maps node types onto its concrete
// primitives; layout hints travel as opaque entries in Props.
type Node struct {
	// Type is the node-type tag, matching the component type name.
	Type string `json:"type"`

	// ID is the stable id of the originating component.
	ID string `json:"id"`

	// Props holds fully resolved property values.
	Props map[string]any `json:"props,omitzero"`

	// Children holds transformed child nodes in source order. Slots
	// whose components were missing or unknown are omitted.
	Children []*Node `json:"children,omitzero"`
}
