// Copyright 2025 The Go A2UI Authors
// SPDX-License-Identifier: Apache-2.0

package ui

import (
	"log/slog"
)

// Processor folds an ordered sequence of rendering-protocol messages
// into per-surface state. Message application is sequential and
// order-preserving; the processor performs no internal synchronization
// and expects a single logical consumer per surface.
type Processor struct {
	surfaces map[string]*Surface
	logger   *slog.Logger
}

// ProcessorOption configures a Processor.
type ProcessorOption func(*Processor)

// WithProcessorLogger sets the structured logger used for degraded
// input reports.
func WithProcessorLogger(logger *slog.Logger) ProcessorOption {
	return func(p *Processor) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// NewProcessor creates an empty Processor.
func NewProcessor(opts ...ProcessorOption) *Processor {
	p := &Processor{
		surfaces: make(map[string]*Surface),
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Apply applies one protocol message to the processor state.
//
// beginRendering creates a fresh surface; surfaceUpdate upserts
// registry entries last-write-wins; dataModelUpdate shallow-merges the
// data model, replacing top-level keys wholesale. actionResponse and
// endRendering are informational. Unknown message kinds and non-begin
// messages for unknown surfaces are logged no-ops, never fatal.
func (p *Processor) Apply(msg *ServerMessage) {
	if msg == nil {
		return
	}

	switch {
	case msg.Begin != nil:
		p.surfaces[msg.Begin.SurfaceID] = NewSurface(msg.Begin.SurfaceID, msg.Begin.Root, msg.Begin.Styles)

	case msg.Update != nil:
		s, ok := p.surfaces[msg.Update.SurfaceID]
		if !ok {
			p.logger.Warn("surface update for unknown surface", "surfaceId", msg.Update.SurfaceID)
			return
		}
		s.upsert(msg.Update.Components)

	case msg.Model != nil:
		s, ok := p.surfaces[msg.Model.SurfaceID]
		if !ok {
			p.logger.Warn("data model update for unknown surface", "surfaceId", msg.Model.SurfaceID)
			return
		}
		s.mergeModel(msg.Model.Contents)

	case msg.Action != nil:
		p.logger.Debug("action response", "surfaceId", msg.Action.SurfaceID, "actionId", msg.Action.ActionID)

	case msg.End != nil:
		p.logger.Debug("end rendering", "surfaceId", msg.End.SurfaceID)

	default:
		p.logger.Debug("ignoring unknown rendering message", "kind", msg.Kind)
	}
}

// ApplyAll applies a batch of messages in order.
func (p *Processor) ApplyAll(msgs []*ServerMessage) {
	for _, msg := range msgs {
		p.Apply(msg)
	}
}

// Surface returns the state of a surface by id.
func (p *Processor) Surface(id string) (*Surface, bool) {
	s, ok := p.surfaces[id]
	return s, ok
}

// SurfaceIDs returns the ids of all known surfaces, in no particular
// order.
func (p *Processor) SurfaceIDs() []string {
	ids := make([]string, 0, len(p.surfaces))
	for id := range p.surfaces {
		ids = append(ids, id)
	}
	return ids
}
