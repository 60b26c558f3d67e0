// Copyright 2025 The Go A2UI Authors
// SPDX-License-Identifier: Apache-2.0

package a2ui

import (
	"fmt"

	"github.com/go-json-experiment/json"
)

// Event kind discriminators used on the wire.
const (
	KindMessage        = "message"
	KindTask           = "task"
	KindStatusUpdate   = "status-update"
	KindArtifactUpdate = "artifact-update"
)

// TaskStatusUpdateEvent is emitted on a stream when a task's status
// changes.
type TaskStatusUpdateEvent struct {
	// Task id.
	TaskID string `json:"taskId"`

	// The context the task is associated with.
	ContextID string `json:"contextId,omitzero"`

	// Event type discriminator, always "status-update".
	Kind string `json:"kind"`

	// The new status.
	Status TaskStatus `json:"status"`

	// true if this is the terminal event of the stream for this task.
	Final bool `json:"final,omitzero"`

	// Extension metadata.
	Metadata map[string]any `json:"metadata,omitzero"`
}

// TaskArtifactUpdateEvent is emitted on a stream when a task produces
// or extends an artifact. The ordinal artifact identity plus the append
// and lastChunk flags let callers reassemble incremental chunks; the
// client relays events in arrival order and leaves reassembly to them.
type TaskArtifactUpdateEvent struct {
	// Task id.
	TaskID string `json:"taskId"`

	// The context the task is associated with.
	ContextID string `json:"contextId,omitzero"`

	// Event type discriminator, always "artifact-update".
	Kind string `json:"kind"`

	// Generated artifact, or the next chunk of one.
	Artifact *Artifact `json:"artifact"`

	// true if this artifact appends to a previously sent one.
	Append bool `json:"append,omitzero"`

	// true if this is the last chunk of the artifact.
	LastChunk bool `json:"lastChunk,omitzero"`

	// Extension metadata.
	Metadata map[string]any `json:"metadata,omitzero"`
}

// StreamEvent is the union of event types carried on a message/stream
// or tasks/subscribe stream, discriminated by the "kind" member.
type StreamEvent struct {
	// Kind is the wire discriminator of the decoded event.
	Kind string

	// Exactly one of the following is non-nil.
	Message        *Message
	Task           *Task
	StatusUpdate   *TaskStatusUpdateEvent
	ArtifactUpdate *TaskArtifactUpdateEvent
}

// UnmarshalJSON implements custom JSON unmarshaling for StreamEvent.
func (e *StreamEvent) UnmarshalJSON(data []byte) error {
	var kind struct {
		Kind string `json:"kind"`
	}
	if err := json.Unmarshal(data, &kind); err != nil {
		return fmt.Errorf("failed to unmarshal event kind: %w", err)
	}

	e.Kind = kind.Kind
	switch kind.Kind {
	case KindMessage:
		var m Message
		if err := json.Unmarshal(data, &m); err != nil {
			return fmt.Errorf("failed to unmarshal message event: %w", err)
		}
		e.Message = &m
	case KindTask:
		var t Task
		if err := json.Unmarshal(data, &t); err != nil {
			return fmt.Errorf("failed to unmarshal task event: %w", err)
		}
		e.Task = &t
	case KindStatusUpdate:
		var s TaskStatusUpdateEvent
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("failed to unmarshal status update event: %w", err)
		}
		e.StatusUpdate = &s
	case KindArtifactUpdate:
		var a TaskArtifactUpdateEvent
		if err := json.Unmarshal(data, &a); err != nil {
			return fmt.Errorf("failed to unmarshal artifact update event: %w", err)
		}
		e.ArtifactUpdate = &a
	default:
		return fmt.Errorf("unknown event kind: %q", kind.Kind)
	}

	return nil
}

// SendMessageResult is the result of message/send: either a direct
// reply message or a task handle, discriminated by "kind".
type SendMessageResult struct {
	// Exactly one of the following is non-nil.
	Message *Message
	Task    *Task
}

// UnmarshalJSON implements custom JSON unmarshaling for SendMessageResult.
func (r *SendMessageResult) UnmarshalJSON(data []byte) error {
	var kind struct {
		Kind string `json:"kind"`
	}
	if err := json.Unmarshal(data, &kind); err != nil {
		return fmt.Errorf("failed to unmarshal result kind: %w", err)
	}

	switch kind.Kind {
	case KindMessage:
		var m Message
		if err := json.Unmarshal(data, &m); err != nil {
			return fmt.Errorf("failed to unmarshal message result: %w", err)
		}
		r.Message = &m
	case KindTask:
		var t Task
		if err := json.Unmarshal(data, &t); err != nil {
			return fmt.Errorf("failed to unmarshal task result: %w", err)
		}
		r.Task = &t
	default:
		return fmt.Errorf("unknown result kind: %q", kind.Kind)
	}

	return nil
}
