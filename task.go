// Copyright 2025 The Go A2UI Authors
// SPDX-License-Identifier: Apache-2.0

package a2ui

import (
	"fmt"
)

// TaskState represents the state of a Task. The enumeration is owned by
// the protocol; unrecognized states decode as-is and report non-final.
type TaskState string

const (
	// TaskStateSubmitted indicates the task has been submitted.
	TaskStateSubmitted TaskState = "submitted"

	// TaskStateWorking indicates the task is being worked on.
	TaskStateWorking TaskState = "working"

	// TaskStateInputRequired indicates the task is paused waiting for
	// client input.
	TaskStateInputRequired TaskState = "input-required"

	// TaskStateCompleted indicates the task has been completed.
	TaskStateCompleted TaskState = "completed"

	// TaskStateCanceled indicates the task has been canceled.
	TaskStateCanceled TaskState = "canceled"

	// TaskStateFailed indicates the task has failed.
	TaskStateFailed TaskState = "failed"

	// TaskStateRejected indicates the agent refused the task.
	TaskStateRejected TaskState = "rejected"

	// TaskStateUnknown indicates the state cannot be determined.
	TaskStateUnknown TaskState = "unknown"
)

// IsFinal reports whether the state is terminal.
func (s TaskState) IsFinal() bool {
	switch s {
	case TaskStateCompleted, TaskStateCanceled, TaskStateFailed, TaskStateRejected:
		return true
	}
	return false
}

// TaskStatus carries the state of a task and an optional accompanying
// agent message.
type TaskStatus struct {
	// Current state of the task.
	State TaskState `json:"state"`

	// Additional status update for the client, if any.
	Message *Message `json:"message,omitzero"`

	// ISO 8601 timestamp of the status change.
	Timestamp string `json:"timestamp,omitzero"`
}

// Task represents a unit of work executed by an agent.
type Task struct {
	// Unique identifier of the task, assigned by the agent.
	ID string `json:"id"`

	// Conversation context the task belongs to.
	ContextID string `json:"contextId,omitzero"`

	// Event type discriminator, always "task".
	Kind string `json:"kind,omitzero"`

	// Current status of the task.
	Status TaskStatus `json:"status"`

	// Ordered message history.
	History []*Message `json:"history,omitzero"`

	// Artifacts produced by the task so far.
	Artifacts []*Artifact `json:"artifacts,omitzero"`

	// Extension metadata.
	Metadata map[string]any `json:"metadata,omitzero"`
}

// Validate ensures the Task is valid.
func (t *Task) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("task ID cannot be empty")
	}
	if t.Status.State == "" {
		return fmt.Errorf("task state cannot be empty")
	}
	return nil
}

// TaskQueryParams are the parameters for tasks/get.
type TaskQueryParams struct {
	// Task id.
	ID string `json:"id"`

	// Number of most recent history messages to include.
	HistoryLength int `json:"historyLength,omitzero"`

	// Extension metadata.
	Metadata map[string]any `json:"metadata,omitzero"`
}

// TaskIDParams are parameters containing only a task ID, used for
// simple task operations.
type TaskIDParams struct {
	// Task id.
	ID string `json:"id"`

	// Extension metadata.
	Metadata map[string]any `json:"metadata,omitzero"`
}

// TaskListParams are the parameters for tasks/list. All filters are
// optional and combined conjunctively by the agent.
type TaskListParams struct {
	// Restrict results to tasks in any of these states.
	States []TaskState `json:"states,omitzero"`

	// Restrict results to tasks in this conversation context.
	ContextID string `json:"contextId,omitzero"`

	// Maximum number of tasks to return; 0 leaves the limit to the agent.
	Limit int `json:"limit,omitzero"`

	// Extension metadata.
	Metadata map[string]any `json:"metadata,omitzero"`
}

// TaskList is the result of tasks/list.
type TaskList struct {
	// Tasks matching the query, most recent first.
	Tasks []*Task `json:"tasks"`
}
