// Copyright 2025 The Go A2UI Authors
// SPDX-License-Identifier: Apache-2.0

package ui

import (
	"fmt"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"

	a2ui "github.com/go-a2ui/a2ui-go"
)

// Rendering-protocol message kinds. Each message is a single-key JSON
// object whose key is the kind.
const (
	KindBeginRendering  = "beginRendering"
	KindSurfaceUpdate   = "surfaceUpdate"
	KindDataModelUpdate = "dataModelUpdate"
	// KindStateUpdate is the legacy alias for dataModelUpdate, still
	// emitted by older agents.
	KindStateUpdate    = "stateUpdate"
	KindActionResponse = "actionResponse"
	KindEndRendering   = "endRendering"
)

// BeginRendering opens a surface: it names the root component and
// delivers styling hints. Registry and model start empty.
type BeginRendering struct {
	SurfaceID string         `json:"surfaceId"`
	Root      string         `json:"root"`
	Styles    map[string]any `json:"styles,omitzero"`
}

// SurfaceUpdate upserts component descriptors into a surface registry.
type SurfaceUpdate struct {
	SurfaceID  string       `json:"surfaceId"`
	Components []*Component `json:"components"`
}

// DataModelUpdate merges a fragment into a surface data model.
type DataModelUpdate struct {
	SurfaceID string         `json:"surfaceId"`
	Contents  map[string]any `json:"contents"`
}

// ActionResponse acknowledges a user action previously reported to the
// agent. Informational only.
type ActionResponse struct {
	SurfaceID string         `json:"surfaceId,omitzero"`
	ActionID  string         `json:"actionId,omitzero"`
	Result    map[string]any `json:"result,omitzero"`
}

// EndRendering marks a surface as conceptually closed. Informational
// only; state is retained so late reads still resolve.
type EndRendering struct {
	SurfaceID string `json:"surfaceId"`
}

// ServerMessage is the kind-keyed union of rendering-protocol messages.
// Unknown kinds decode with Kind set and all payloads nil so the
// processor can skip them without failing the batch.
type ServerMessage struct {
	// Kind is the wire key the message arrived under.
	Kind string

	Begin  *BeginRendering
	Update *SurfaceUpdate
	Model  *DataModelUpdate
	Action *ActionResponse
	End    *EndRendering
}

// SurfaceID returns the surface the message is scoped to, if any.
func (m *ServerMessage) SurfaceID() string {
	switch {
	case m.Begin != nil:
		return m.Begin.SurfaceID
	case m.Update != nil:
		return m.Update.SurfaceID
	case m.Model != nil:
		return m.Model.SurfaceID
	case m.Action != nil:
		return m.Action.SurfaceID
	case m.End != nil:
		return m.End.SurfaceID
	}
	return ""
}

// UnmarshalJSON implements custom JSON unmarshaling for ServerMessage.
func (m *ServerMessage) UnmarshalJSON(data []byte) error {
	var raw map[string]jsontext.Value
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("failed to unmarshal rendering message: %w", err)
	}

	decode := func(kind string, out any) error {
		if err := json.Unmarshal(raw[kind], out); err != nil {
			return fmt.Errorf("failed to unmarshal %s message: %w", kind, err)
		}
		m.Kind = kind
		return nil
	}

	switch {
	case raw[KindBeginRendering] != nil:
		m.Begin = &BeginRendering{}
		return decode(KindBeginRendering, m.Begin)
	case raw[KindSurfaceUpdate] != nil:
		m.Update = &SurfaceUpdate{}
		return decode(KindSurfaceUpdate, m.Update)
	case raw[KindDataModelUpdate] != nil:
		m.Model = &DataModelUpdate{}
		return decode(KindDataModelUpdate, m.Model)
	case raw[KindStateUpdate] != nil:
		// Legacy alias; normalize to the current kind after decoding.
		m.Model = &DataModelUpdate{}
		if err := decode(KindStateUpdate, m.Model); err != nil {
			return err
		}
		m.Kind = KindDataModelUpdate
		return nil
	case raw[KindActionResponse] != nil:
		m.Action = &ActionResponse{}
		return decode(KindActionResponse, m.Action)
	case raw[KindEndRendering] != nil:
		m.End = &EndRendering{}
		return decode(KindEndRendering, m.End)
	}

	// Unknown message type: record the key for logging and move on.
	for kind := range raw {
		m.Kind = kind
		break
	}
	return nil
}

// MessagesFromParts extracts rendering-protocol messages from the data
// parts of an agent message or artifact, in order. Parts that do not
// decode as protocol messages are skipped.
func MessagesFromParts(parts []*a2ui.PartWrapper) []*ServerMessage {
	var out []*ServerMessage
	for _, dp := range a2ui.GetDataParts(parts) {
		payload, err := json.Marshal(dp.Data)
		if err != nil {
			continue
		}
		var msg ServerMessage
		if err := json.Unmarshal(payload, &msg); err != nil {
			continue
		}
		if msg.Kind == "" {
			continue
		}
		out = append(out, &msg)
	}
	return out
}
