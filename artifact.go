// Copyright 2025 The Go A2UI Authors
// SPDX-License-Identifier: Apache-2.0

package a2ui

import (
	"fmt"

	"github.com/go-json-experiment/json"
	"github.com/google/uuid"
)

// Part represents a part of a message's or artifact's content.
// It can be a text part, file part, or data part.
type Part interface {
	GetKind() string
	GetMetadata() map[string]any
	Validate() error
}

// TextPart represents a plain text segment.
type TextPart struct {
	Kind     string         `json:"kind"`
	Text     string         `json:"text"`
	Metadata map[string]any `json:"metadata,omitzero"`
}

// GetKind returns the part kind.
func (tp TextPart) GetKind() string {
	return tp.Kind
}

// GetMetadata returns the part metadata.
func (tp TextPart) GetMetadata() map[string]any {
	return tp.Metadata
}

// Validate ensures the TextPart is valid.
func (tp TextPart) Validate() error {
	if tp.Kind != "text" {
		return fmt.Errorf("text part kind must be 'text', got '%s'", tp.Kind)
	}
	return nil
}

// DataPart represents a structured data segment. Rendering-protocol
// messages travel inside data parts; see the ui package.
type DataPart struct {
	Kind     string         `json:"kind"`
	Data     map[string]any `json:"data"`
	Metadata map[string]any `json:"metadata,omitzero"`
}

// GetKind returns the part kind.
func (dp DataPart) GetKind() string {
	return dp.Kind
}

// GetMetadata returns the part metadata.
func (dp DataPart) GetMetadata() map[string]any {
	return dp.Metadata
}

// Validate ensures the DataPart is valid.
func (dp DataPart) Validate() error {
	if dp.Kind != "data" {
		return fmt.Errorf("data part kind must be 'data', got '%s'", dp.Kind)
	}
	if dp.Data == nil {
		return fmt.Errorf("data part data cannot be nil")
	}
	return nil
}

// FileRef references file content by URI or carries it inline as bytes.
type FileRef struct {
	// Original filename, if known.
	Name string `json:"name,omitzero"`

	// Media type of the file content.
	MimeType string `json:"mimeType,omitzero"`

	// URI to the file content. Mutually exclusive with Bytes.
	URI string `json:"uri,omitzero"`

	// Base64-encoded file content. Mutually exclusive with URI.
	Bytes string `json:"bytes,omitzero"`
}

// FilePart represents a file segment.
type FilePart struct {
	Kind     string         `json:"kind"`
	File     *FileRef       `json:"file"`
	Metadata map[string]any `json:"metadata,omitzero"`
}

// GetKind returns the part kind.
func (fp FilePart) GetKind() string {
	return fp.Kind
}

// GetMetadata returns the part metadata.
func (fp FilePart) GetMetadata() map[string]any {
	return fp.Metadata
}

// Validate ensures the FilePart is valid.
func (fp FilePart) Validate() error {
	if fp.Kind != "file" {
		return fmt.Errorf("file part kind must be 'file', got '%s'", fp.Kind)
	}
	if fp.File == nil {
		return fmt.Errorf("file part file cannot be nil")
	}
	if fp.File.URI == "" && fp.File.Bytes == "" {
		return fmt.Errorf("file part must carry a URI or bytes")
	}
	return nil
}

// PartWrapper wraps a Part interface to enable JSON serialization of
// the kind-keyed union.
type PartWrapper struct {
	part Part
}

// NewPartWrapper creates a new PartWrapper.
func NewPartWrapper(part Part) *PartWrapper {
	return &PartWrapper{part: part}
}

// GetPart returns the wrapped part.
func (pw *PartWrapper) GetPart() Part {
	return pw.part
}

// MarshalJSON implements custom JSON marshaling for PartWrapper.
func (pw PartWrapper) MarshalJSON() ([]byte, error) {
	if pw.part == nil {
		return nil, fmt.Errorf("cannot marshal nil part")
	}
	return json.Marshal(pw.part)
}

// UnmarshalJSON implements custom JSON unmarshaling for PartWrapper.
func (pw *PartWrapper) UnmarshalJSON(data []byte) error {
	var kind struct {
		Kind string `json:"kind"`
	}

	if err := json.Unmarshal(data, &kind); err != nil {
		return fmt.Errorf("failed to unmarshal part kind: %w", err)
	}

	switch kind.Kind {
	case "text":
		var tp TextPart
		if err := json.Unmarshal(data, &tp); err != nil {
			return fmt.Errorf("failed to unmarshal text part: %w", err)
		}
		pw.part = &tp
	case "data":
		var dp DataPart
		if err := json.Unmarshal(data, &dp); err != nil {
			return fmt.Errorf("failed to unmarshal data part: %w", err)
		}
		pw.part = &dp
	case "file":
		var fp FilePart
		if err := json.Unmarshal(data, &fp); err != nil {
			return fmt.Errorf("failed to unmarshal file part: %w", err)
		}
		pw.part = &fp
	default:
		return fmt.Errorf("unknown part kind: %s", kind.Kind)
	}

	return nil
}

// Validate validates the wrapped part.
func (pw *PartWrapper) Validate() error {
	if pw.part == nil {
		return fmt.Errorf("part wrapper cannot contain nil part")
	}
	return pw.part.Validate()
}

// Artifact represents a generated output from a task, which can contain
// multiple ordered parts.
type Artifact struct {
	ArtifactID  string         `json:"artifactId"`
	Name        string         `json:"name,omitzero"`
	Description string         `json:"description,omitzero"`
	Parts       []*PartWrapper `json:"parts"`
	Extensions  []string       `json:"extensions,omitzero"`
	Metadata    map[string]any `json:"metadata,omitzero"`
}

// Validate ensures the Artifact is valid.
func (a Artifact) Validate() error {
	if a.ArtifactID == "" {
		return fmt.Errorf("artifact ID cannot be empty")
	}
	if len(a.Parts) == 0 {
		return fmt.Errorf("artifact must contain at least one part")
	}
	for i, part := range a.Parts {
		if part == nil {
			return fmt.Errorf("artifact part at index %d cannot be nil", i)
		}
		if err := part.Validate(); err != nil {
			return fmt.Errorf("artifact part at index %d is invalid: %w", i, err)
		}
	}
	return nil
}

// NewArtifact creates a new Artifact from a list of parts, a name, and
// an optional description. It generates a unique artifactId.
func NewArtifact(parts []Part, name string, description string) (*Artifact, error) {
	if len(parts) == 0 {
		return nil, fmt.Errorf("artifact must contain at least one part")
	}

	wrapped := make([]*PartWrapper, len(parts))
	for i, part := range parts {
		if part == nil {
			return nil, fmt.Errorf("part at index %d cannot be nil", i)
		}
		if err := part.Validate(); err != nil {
			return nil, fmt.Errorf("part at index %d is invalid: %w", i, err)
		}
		wrapped[i] = NewPartWrapper(part)
	}

	return &Artifact{
		ArtifactID:  uuid.NewString(),
		Name:        name,
		Description: description,
		Parts:       wrapped,
	}, nil
}

// NewTextArtifact creates a new Artifact containing a single TextPart.
func NewTextArtifact(name, text, description string) (*Artifact, error) {
	return NewArtifact([]Part{&TextPart{Kind: "text", Text: text}}, name, description)
}

// NewDataArtifact creates a new Artifact containing a single DataPart.
func NewDataArtifact(name string, data map[string]any, description string) (*Artifact, error) {
	if data == nil {
		return nil, fmt.Errorf("data content cannot be nil")
	}
	return NewArtifact([]Part{&DataPart{Kind: "data", Data: data}}, name, description)
}
