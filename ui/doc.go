// Copyright 2025 The Go A2UI Authors
// SPDX-License-Identifier: Apache-2.0

// Package ui interprets the declarative rendering protocol emitted by
// a remote agent: it folds protocol messages into per-surface state
// (component registry plus data model), resolves bindings against the
// model, and transforms component descriptors into an abstract,
// binding-free node tree for an external renderer.
//
// The package treats all input as untrusted. Malformed descriptors,
// dangling component references, unknown component types, and unknown
// message kinds degrade by omission rather than failing the whole
// surface; the Validator bounds total component counts so adversarial
// payloads cannot exhaust the renderer.
//
// Transformation is pure in (registry, model, item context): each
// update re-derives the full tree from scratch rather than diffing the
// previous one.
package ui
