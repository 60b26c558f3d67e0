// Copyright 2025 The Go A2UI Authors
// SPDX-License-Identifier: Apache-2.0

package a2ui

import (
	"fmt"

	"github.com/google/uuid"
)

// Role represents the originator of a message.
type Role string

const (
	// RoleUser identifies messages sent by the client.
	RoleUser Role = "user"

	// RoleAgent identifies messages produced by the remote agent.
	RoleAgent Role = "agent"
)

// Message represents a single turn in a task conversation.
type Message struct {
	// Event type discriminator, always "message".
	Kind string `json:"kind"`

	// Unique identifier of the message.
	MessageID string `json:"messageId"`

	// Originator of the message.
	Role Role `json:"role"`

	// Ordered content parts.
	Parts []*PartWrapper `json:"parts"`

	// Task this message belongs to, if any.
	TaskID string `json:"taskId,omitzero"`

	// Conversation context this message belongs to, if any.
	ContextID string `json:"contextId,omitzero"`

	// URIs of protocol extensions relevant to this message.
	Extensions []string `json:"extensions,omitzero"`

	// Extension metadata.
	Metadata map[string]any `json:"metadata,omitzero"`
}

// Validate ensures the Message is valid.
func (m *Message) Validate() error {
	if m.MessageID == "" {
		return fmt.Errorf("message ID cannot be empty")
	}
	if m.Role != RoleUser && m.Role != RoleAgent {
		return fmt.Errorf("invalid message role: %q", m.Role)
	}
	if len(m.Parts) == 0 {
		return fmt.Errorf("message must contain at least one part")
	}
	for i, part := range m.Parts {
		if part == nil {
			return fmt.Errorf("message part at index %d cannot be nil", i)
		}
		if err := part.Validate(); err != nil {
			return fmt.Errorf("message part at index %d is invalid: %w", i, err)
		}
	}
	return nil
}

// NewMessage creates a new Message with a generated id.
func NewMessage(role Role, parts []Part) *Message {
	wrapped := make([]*PartWrapper, len(parts))
	for i, part := range parts {
		wrapped[i] = NewPartWrapper(part)
	}
	return &Message{
		Kind:      "message",
		MessageID: uuid.NewString(),
		Role:      role,
		Parts:     wrapped,
	}
}

// NewUserTextMessage creates a user message containing a single text part.
func NewUserTextMessage(text string) *Message {
	return NewMessage(RoleUser, []Part{&TextPart{Kind: "text", Text: text}})
}

// MessageSendConfiguration configures how the agent should handle a
// message/send or message/stream request.
type MessageSendConfiguration struct {
	// Media types the client accepts in the response.
	AcceptedOutputModes []string `json:"acceptedOutputModes,omitzero"`

	// Number of most recent history messages to include in responses.
	HistoryLength int `json:"historyLength,omitzero"`

	// true if the request should block until the task reaches a
	// terminal state.
	Blocking bool `json:"blocking,omitzero"`
}

// MessageSendParams are the parameters for message/send and
// message/stream requests.
type MessageSendParams struct {
	// The message to send.
	Message *Message `json:"message"`

	// Optional request configuration.
	Configuration *MessageSendConfiguration `json:"configuration,omitzero"`

	// Extension metadata.
	Metadata map[string]any `json:"metadata,omitzero"`
}

// Validate ensures the MessageSendParams are valid.
func (p *MessageSendParams) Validate() error {
	if p.Message == nil {
		return fmt.Errorf("message cannot be nil")
	}
	return p.Message.Validate()
}
