// Copyright 2025 The Go A2UI Authors
// SPDX-License-Identifier: Apache-2.0

package ui

import (
	"strings"

	"github.com/go-json-experiment/json"
)

// BindingKind discriminates the forms a binding can take on the wire.
type BindingKind int

const (
	// BindingEmpty is the zero binding; it resolves to absence.
	BindingEmpty BindingKind = iota

	// BindingLiteral resolves to a fixed value regardless of model state.
	BindingLiteral

	// BindingPath resolves against the item context, then the surface
	// data model.
	BindingPath

	// BindingTemplate names a template component for List expansion; it
	// resolves to absence under generic resolution.
	BindingTemplate
)

// PathSeparator separates segments of a data model path. One leading
// separator is permitted and ignored.
const PathSeparator = "/"

// Binding is a descriptor that resolves to a concrete property value
// given a data model and optional per-item context. On the wire it is
// either a bare JSON value (a literal) or an object carrying exactly
// one of the "literal", "path", or "template" members.
type Binding struct {
	Kind     BindingKind
	Literal  any
	Path     string
	Template string
}

// Lit creates a literal binding.
func Lit(v any) Binding {
	return Binding{Kind: BindingLiteral, Literal: v}
}

// PathRef creates a path binding.
func PathRef(path string) Binding {
	return Binding{Kind: BindingPath, Path: path}
}

// UnmarshalJSON implements custom JSON unmarshaling for Binding.
func (b *Binding) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*b = bindingFromValue(raw)
	return nil
}

// MarshalJSON implements custom JSON marshaling for Binding. The wire
// form is normalized: path and template bindings emit their marker
// object, scalar literals emit the bare value, and object literals emit
// the explicit {"literal": v} form so maps that happen to carry marker
// keys survive a round trip. The zero binding emits null.
func (b Binding) MarshalJSON() ([]byte, error) {
	switch b.Kind {
	case BindingPath:
		return json.Marshal(map[string]any{"path": b.Path})
	case BindingTemplate:
		return json.Marshal(map[string]any{"template": b.Template})
	case BindingLiteral:
		if _, ok := b.Literal.(map[string]any); ok {
			return json.Marshal(map[string]any{"literal": b.Literal})
		}
		return json.Marshal(b.Literal)
	default:
		return []byte("null"), nil
	}
}

// bindingFromValue interprets an already-decoded JSON value as a
// binding. Objects that do not carry a recognized marker are literal
// values themselves.
func bindingFromValue(v any) Binding {
	m, ok := v.(map[string]any)
	if !ok {
		return Binding{Kind: BindingLiteral, Literal: v}
	}
	if p, ok := m["path"].(string); ok {
		return Binding{Kind: BindingPath, Path: p}
	}
	if t, ok := m["template"].(string); ok {
		return Binding{Kind: BindingTemplate, Template: t}
	}
	if lit, ok := m["literal"]; ok {
		return Binding{Kind: BindingLiteral, Literal: lit}
	}
	return Binding{Kind: BindingLiteral, Literal: v}
}

// Resolve resolves the binding against a data model and optional
// per-item context.
//
// Literals resolve to their value regardless of model state. Paths are
// checked against the item context first, by exact key, so that a
// template bound to a bare name works both inside a List (reading the
// item) and on a static page (reading the model); otherwise one leading
// separator is stripped and the model is walked segment by segment. A
// missing path resolves to absence (ok=false), never an error.
func (b Binding) Resolve(model, itemContext map[string]any) (any, bool) {
	switch b.Kind {
	case BindingLiteral:
		return b.Literal, true
	case BindingPath:
		if itemContext != nil {
			if v, ok := itemContext[b.Path]; ok {
				return v, true
			}
		}
		return walkPath(model, b.Path)
	default:
		// Empty bindings and template markers resolve to absence; the
		// List transform handles templates itself.
		return nil, false
	}
}

// walkPath walks a separator-delimited path through nested maps.
func walkPath(model map[string]any, path string) (any, bool) {
	path = strings.TrimPrefix(path, PathSeparator)
	if path == "" || model == nil {
		return nil, false
	}

	var current any = model
	for _, seg := range strings.Split(path, PathSeparator) {
		m, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}
		current, ok = m[seg]
		if !ok {
			return nil, false
		}
	}

	return current, true
}
