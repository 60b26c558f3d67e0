// Copyright 2025 The Go A2UI Authors
// SPDX-License-Identifier: Apache-2.0

package a2ui_test

import (
	"testing"

	"github.com/go-json-experiment/json"
	"github.com/google/go-cmp/cmp"

	a2ui "github.com/go-a2ui/a2ui-go"
)

// TestPartWrapper_UnmarshalJSON tests the kind-keyed part union decode.
func TestPartWrapper_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		data string
		want a2ui.Part
	}{
		{
			name: "text part",
			data: `{"kind":"text","text":"hello"}`,
			want: &a2ui.TextPart{Kind: "text", Text: "hello"},
		},
		{
			name: "data part",
			data: `{"kind":"data","data":{"beginRendering":{"surfaceId":"main"}}}`,
			want: &a2ui.DataPart{
				Kind: "data",
				Data: map[string]any{
					"beginRendering": map[string]any{"surfaceId": "main"},
				},
			},
		},
		{
			name: "file part",
			data: `{"kind":"file","file":{"name":"chart.png","mimeType":"image/png","uri":"https://example.com/chart.png"}}`,
			want: &a2ui.FilePart{
				Kind: "file",
				File: &a2ui.FileRef{
					Name:     "chart.png",
					MimeType: "image/png",
					URI:      "https://example.com/chart.png",
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var pw a2ui.PartWrapper
			if err := json.Unmarshal([]byte(tt.data), &pw); err != nil {
				t.Fatalf("Unmarshal failed: %v", err)
			}
			if diff := cmp.Diff(tt.want, pw.GetPart()); diff != "" {
				t.Errorf("part mismatch (-want +got):\n%s", diff)
			}
			if err := pw.Validate(); err != nil {
				t.Errorf("Validate failed: %v", err)
			}
		})
	}
}

// TestPartWrapper_UnmarshalJSON_UnknownKind tests rejection of unknown
// part kinds.
func TestPartWrapper_UnmarshalJSON_UnknownKind(t *testing.T) {
	var pw a2ui.PartWrapper
	if err := json.Unmarshal([]byte(`{"kind":"video","url":"x"}`), &pw); err == nil {
		t.Error("expected error for unknown part kind, got nil")
	}
}

// TestPartWrapper_RoundTrip tests that a marshaled part decodes back to
// the same value.
func TestPartWrapper_RoundTrip(t *testing.T) {
	orig := a2ui.NewPartWrapper(&a2ui.DataPart{
		Kind: "data",
		Data: map[string]any{"surfaceUpdate": map[string]any{"surfaceId": "main"}},
	})

	data, err := json.Marshal(orig)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	var got a2ui.PartWrapper
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if diff := cmp.Diff(orig.GetPart(), got.GetPart()); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

// TestNewTextArtifact tests artifact construction with a generated id.
func TestNewTextArtifact(t *testing.T) {
	artifact, err := a2ui.NewTextArtifact("summary", "all done", "final summary")
	if err != nil {
		t.Fatalf("NewTextArtifact failed: %v", err)
	}
	if artifact.ArtifactID == "" {
		t.Error("expected a generated artifact id")
	}
	if artifact.Name != "summary" {
		t.Errorf("expected name 'summary', got %q", artifact.Name)
	}
	if err := artifact.Validate(); err != nil {
		t.Errorf("Validate failed: %v", err)
	}
}

// TestArtifact_Validate tests artifact validation failures.
func TestArtifact_Validate(t *testing.T) {
	tests := []struct {
		name     string
		artifact a2ui.Artifact
	}{
		{name: "missing id", artifact: a2ui.Artifact{Parts: []*a2ui.PartWrapper{a2ui.NewPartWrapper(&a2ui.TextPart{Kind: "text"})}}},
		{name: "no parts", artifact: a2ui.Artifact{ArtifactID: "a1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.artifact.Validate(); err == nil {
				t.Error("expected validation error, got nil")
			}
		})
	}
}
