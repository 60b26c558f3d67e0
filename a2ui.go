// Copyright 2025 The Go A2UI Authors
// SPDX-License-Identifier: Apache-2.0

// Package a2ui provides Go types for agent-driven UI over the A2A
// protocol: task and message wire types, JSON-RPC envelopes, and the
// streaming event union consumed by the client package. The rendering
// protocol itself (surfaces, components, bindings) lives in the ui
// subpackage.
package a2ui

// Version is the protocol version this module implements.
const Version = "0.8.0"

// UIExtensionURI identifies the rendering-protocol extension in agent
// cards and in the extension-advertisement header.
const UIExtensionURI = "https://a2ui.dev/spec/v0.8"

// AgentCardWellKnownPath is the well-known path where agent cards are
// published for plain-GET discovery.
const AgentCardWellKnownPath = "/.well-known/agent-card.json"

// ExtensionsHeader is the HTTP header used to advertise activated
// protocol extensions to the agent.
const ExtensionsHeader = "X-A2A-Extensions"
