// Copyright 2025 The Go A2UI Authors
// SPDX-License-Identifier: Apache-2.0

package client

import (
	"context"
	"fmt"

	a2ui "github.com/go-a2ui/a2ui-go"
)

// SendMessage sends a message to the agent and waits for a single
// response: either a direct reply message or a task handle. No retries
// are performed.
func (c *Client) SendMessage(ctx context.Context, params *a2ui.MessageSendParams) (*a2ui.SendMessageResult, error) {
	if params == nil {
		return nil, fmt.Errorf("params cannot be nil")
	}
	if err := params.Validate(); err != nil {
		return nil, fmt.Errorf("invalid params: %w", err)
	}

	var result a2ui.SendMessageResult
	if err := c.call(ctx, a2ui.MethodMessageSend, params, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// StreamMessage sends a message and returns a stream of real-time
// updates: status updates, artifact updates, and messages, relayed in
// arrival order. Chunk reassembly is the caller's responsibility.
func (c *Client) StreamMessage(ctx context.Context, params *a2ui.MessageSendParams) (<-chan StreamResult, error) {
	if params == nil {
		return nil, fmt.Errorf("params cannot be nil")
	}
	if err := params.Validate(); err != nil {
		return nil, fmt.Errorf("invalid params: %w", err)
	}

	card, err := c.AgentCard(ctx)
	if err != nil {
		return nil, err
	}
	if !card.SupportsStreaming() {
		return nil, ErrStreamingNotSupported
	}

	return c.Stream(ctx, a2ui.MethodMessageStream, params)
}

// GetTask retrieves the current state and history of a specific task.
func (c *Client) GetTask(ctx context.Context, params *a2ui.TaskQueryParams) (*a2ui.Task, error) {
	if params == nil || params.ID == "" {
		return nil, fmt.Errorf("task id is required")
	}

	var task a2ui.Task
	if err := c.call(ctx, a2ui.MethodTasksGet, params, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

// ListTasks lists the agent's tasks, optionally filtered by state and
// context.
func (c *Client) ListTasks(ctx context.Context, params *a2ui.TaskListParams) (*a2ui.TaskList, error) {
	if params == nil {
		params = &a2ui.TaskListParams{}
	}

	var list a2ui.TaskList
	if err := c.call(ctx, a2ui.MethodTasksList, params, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// CancelTask requests cancellation of a task and returns its updated
// state.
func (c *Client) CancelTask(ctx context.Context, params *a2ui.TaskIDParams) (*a2ui.Task, error) {
	if params == nil || params.ID == "" {
		return nil, fmt.Errorf("task id is required")
	}

	var task a2ui.Task
	if err := c.call(ctx, a2ui.MethodTasksCancel, params, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

// SubscribeToTask subscribes to a task's event stream, resuming event
// delivery for a task created earlier.
func (c *Client) SubscribeToTask(ctx context.Context, params *a2ui.TaskIDParams) (<-chan StreamResult, error) {
	if params == nil || params.ID == "" {
		return nil, fmt.Errorf("task id is required")
	}

	card, err := c.AgentCard(ctx)
	if err != nil {
		return nil, err
	}
	if !card.SupportsStreaming() {
		return nil, ErrStreamingNotSupported
	}

	return c.Stream(ctx, a2ui.MethodTasksSubscribe, params)
}

// SendText sends a plain text user message.
func (c *Client) SendText(ctx context.Context, text string) (*a2ui.SendMessageResult, error) {
	return c.SendMessage(ctx, &a2ui.MessageSendParams{
		Message: a2ui.NewUserTextMessage(text),
	})
}

// StreamText sends a plain text user message and streams updates.
func (c *Client) StreamText(ctx context.Context, text string) (<-chan StreamResult, error) {
	return c.StreamMessage(ctx, &a2ui.MessageSendParams{
		Message: a2ui.NewUserTextMessage(text),
	})
}
