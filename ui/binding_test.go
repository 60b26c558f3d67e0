// Copyright 2025 The Go A2UI Authors
// SPDX-License-Identifier: Apache-2.0

package ui_test

import (
	"testing"

	"github.com/go-json-experiment/json"
	"github.com/google/go-cmp/cmp"

	"github.com/go-a2ui/a2ui-go/ui"
)

// TestBinding_UnmarshalJSON tests wire-format recognition of the three
// binding forms.
func TestBinding_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		data string
		want ui.Binding
	}{
		{
			name: "bare string literal",
			data: `"hello"`,
			want: ui.Lit("hello"),
		},
		{
			name: "bare number literal",
			data: `42`,
			want: ui.Lit(float64(42)),
		},
		{
			name: "explicit literal",
			data: `{"literal":"hello"}`,
			want: ui.Lit("hello"),
		},
		{
			name: "path",
			data: `{"path":"/user/name"}`,
			want: ui.PathRef("/user/name"),
		},
		{
			name: "template",
			data: `{"template":"itemTemplate"}`,
			want: ui.Binding{Kind: ui.BindingTemplate, Template: "itemTemplate"},
		},
		{
			name: "unmarked object is a literal",
			data: `{"color":"red"}`,
			want: ui.Lit(map[string]any{"color": "red"}),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var b ui.Binding
			if err := json.Unmarshal([]byte(tt.data), &b); err != nil {
				t.Fatalf("Unmarshal failed: %v", err)
			}
			if diff := cmp.Diff(tt.want, b); diff != "" {
				t.Errorf("binding mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

// TestBinding_MarshalJSON_RoundTrip tests that marshaling preserves
// binding semantics across a decode.
func TestBinding_MarshalJSON_RoundTrip(t *testing.T) {
	tests := []struct {
		name     string
		in       ui.Binding
		wantWire string
	}{
		{
			name:     "scalar literal emits the bare value",
			in:       ui.Lit("hello"),
			wantWire: `"hello"`,
		},
		{
			name:     "object literal keeps the explicit form",
			in:       ui.Lit(map[string]any{"path": "/x"}),
			wantWire: `{"literal":{"path":"/x"}}`,
		},
		{
			name:     "path",
			in:       ui.PathRef("/a/b"),
			wantWire: `{"path":"/a/b"}`,
		},
		{
			name:     "template",
			in:       ui.Binding{Kind: ui.BindingTemplate, Template: "row"},
			wantWire: `{"template":"row"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.in)
			if err != nil {
				t.Fatalf("Marshal failed: %v", err)
			}
			if string(data) != tt.wantWire {
				t.Errorf("expected wire form %s, got %s", tt.wantWire, data)
			}

			var back ui.Binding
			if err := json.Unmarshal(data, &back); err != nil {
				t.Fatalf("Unmarshal failed: %v", err)
			}
			if diff := cmp.Diff(tt.in, back); diff != "" {
				t.Errorf("round trip mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

// TestBinding_MarshalJSON_Zero tests that the zero binding emits null.
func TestBinding_MarshalJSON_Zero(t *testing.T) {
	var b ui.Binding
	data, err := json.Marshal(b)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if string(data) != "null" {
		t.Errorf("expected null, got %s", data)
	}
}

// TestBinding_Resolve_Literal tests that literals ignore model state.
func TestBinding_Resolve_Literal(t *testing.T) {
	b := ui.Lit("fixed")

	v, ok := b.Resolve(nil, nil)
	if !ok || v != "fixed" {
		t.Errorf("expected (fixed, true), got (%v, %v)", v, ok)
	}

	v, ok = b.Resolve(map[string]any{"fixed": "other"}, map[string]any{"fixed": "other"})
	if !ok || v != "fixed" {
		t.Errorf("expected model state to be ignored, got (%v, %v)", v, ok)
	}
}

// TestBinding_Resolve_Path tests path walking through nested maps.
func TestBinding_Resolve_Path(t *testing.T) {
	model := map[string]any{
		"user": map[string]any{
			"name":    "Ada",
			"address": map[string]any{"city": "London"},
		},
		"title": "Welcome",
	}

	tests := []struct {
		name   string
		path   string
		want   any
		wantOK bool
	}{
		{name: "top level", path: "/title", want: "Welcome", wantOK: true},
		{name: "nested", path: "/user/name", want: "Ada", wantOK: true},
		{name: "deeply nested", path: "/user/address/city", want: "London", wantOK: true},
		{name: "no leading separator", path: "title", want: "Welcome", wantOK: true},
		{name: "missing key", path: "/user/email", wantOK: false},
		{name: "traversal through a leaf", path: "/title/x", wantOK: false},
		{name: "empty path", path: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, ok := ui.PathRef(tt.path).Resolve(model, nil)
			if ok != tt.wantOK {
				t.Fatalf("expected ok=%v, got %v", tt.wantOK, ok)
			}
			if ok && v != tt.want {
				t.Errorf("expected %v, got %v", tt.want, v)
			}
		})
	}
}

// TestBinding_Resolve_ItemContextShadowing tests that an item context
// shadows the surface model for matching keys.
func TestBinding_Resolve_ItemContextShadowing(t *testing.T) {
	model := map[string]any{"name": "global"}
	itemCtx := map[string]any{"name": "per-item"}

	v, ok := ui.PathRef("name").Resolve(model, itemCtx)
	if !ok || v != "per-item" {
		t.Errorf("expected item context to shadow the model, got (%v, %v)", v, ok)
	}

	// Keys absent from the item context fall through to the model.
	v, ok = ui.PathRef("name").Resolve(model, map[string]any{"other": 1})
	if !ok || v != "global" {
		t.Errorf("expected fallthrough to the model, got (%v, %v)", v, ok)
	}
}

// TestBinding_Resolve_Template tests that template markers resolve to
// absence under generic resolution.
func TestBinding_Resolve_Template(t *testing.T) {
	b := ui.Binding{Kind: ui.BindingTemplate, Template: "rowTemplate"}
	if _, ok := b.Resolve(map[string]any{"rowTemplate": "x"}, nil); ok {
		t.Error("expected template binding to resolve to absence")
	}

	var zero ui.Binding
	if _, ok := zero.Resolve(map[string]any{}, nil); ok {
		t.Error("expected zero binding to resolve to absence")
	}
}
