// Copyright 2025 The Go A2UI Authors
// SPDX-License-Identifier: Apache-2.0

package a2ui

// AgentCapabilities defines optional capabilities supported by an agent.
type AgentCapabilities struct {
	// true if the agent supports SSE streaming responses.
	Streaming bool `json:"streaming,omitzero"`

	// true if the agent can notify updates to the client.
	PushNotifications bool `json:"pushNotifications,omitzero"`

	// true if the agent exposes status change history for tasks.
	StateTransitionHistory bool `json:"stateTransitionHistory,omitzero"`

	// Protocol extensions the agent supports.
	Extensions []AgentExtension `json:"extensions,omitzero"`
}

// AgentExtension declares support for a protocol extension, identified
// by URI.
type AgentExtension struct {
	// URI identifying the extension.
	URI string `json:"uri"`

	// A human-readable description of how this agent uses the extension.
	Description string `json:"description,omitzero"`

	// true if the client must understand the extension to interact
	// with the agent.
	Required bool `json:"required,omitzero"`

	// Extension-specific configuration.
	Params map[string]any `json:"params,omitzero"`
}

// AgentProvider represents the service provider of an agent.
type AgentProvider struct {
	// Agent provider's organization name.
	Organization string `json:"organization"`

	// Agent provider's URL.
	URL string `json:"url"`
}

// AgentSkill represents a unit of capability that an agent can perform.
type AgentSkill struct {
	// Unique identifier for the agent's skill.
	ID string `json:"id"`

	// Human readable name of the skill.
	Name string `json:"name"`

	// Description of the skill, used by the client or a human as a
	// hint to understand what the skill does.
	Description string `json:"description,omitzero"`

	// Example scenarios that the skill can perform.
	Examples []string `json:"examples,omitzero"`

	// Interaction modes supported by the skill, if different from the
	// agent defaults.
	InputModes []string `json:"inputModes,omitzero"`

	// Supported media types for output, if different from the agent
	// defaults.
	OutputModes []string `json:"outputModes,omitzero"`

	// Tags describing the skill's capability categories.
	Tags []string `json:"tags,omitzero"`
}

// AgentCard conveys key information about an agent: overall details,
// skills, default modalities, and supported protocol extensions.
type AgentCard struct {
	// Human readable name of the agent.
	Name string `json:"name"`

	// A human-readable description of the agent.
	Description string `json:"description,omitzero"`

	// A URL to the address the agent is hosted at.
	URL string `json:"url"`

	// The version of the agent. Format is up to the provider.
	Version string `json:"version"`

	// The service provider of the agent.
	Provider *AgentProvider `json:"provider,omitzero"`

	// Optional capabilities supported by the agent.
	Capabilities *AgentCapabilities `json:"capabilities,omitzero"`

	// Supported media types for input across all skills.
	DefaultInputModes []string `json:"defaultInputModes,omitzero"`

	// Supported media types for output across all skills.
	DefaultOutputModes []string `json:"defaultOutputModes,omitzero"`

	// Skills are a unit of capability that an agent can perform.
	Skills []AgentSkill `json:"skills,omitzero"`

	// A URL to documentation for the agent.
	DocumentationURL string `json:"documentationUrl,omitzero"`
}

// SupportsStreaming reports whether the agent advertises SSE streaming.
func (c *AgentCard) SupportsStreaming() bool {
	return c != nil && c.Capabilities != nil && c.Capabilities.Streaming
}

// UIExtension returns the rendering-protocol extension advertised by
// the agent, if any.
func (c *AgentCard) UIExtension() (*AgentExtension, bool) {
	if c == nil || c.Capabilities == nil {
		return nil, false
	}
	for i, ext := range c.Capabilities.Extensions {
		if ext.URI == UIExtensionURI {
			return &c.Capabilities.Extensions[i], true
		}
	}
	return nil, false
}
