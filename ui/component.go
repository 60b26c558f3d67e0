// Copyright 2025 The Go A2UI Authors
// SPDX-License-Identifier: Apache-2.0

package ui

import (
	"fmt"

	"github.com/go-json-experiment/json"
)

// Component type names of the standard catalog.
const (
	TypeText           = "Text"
	TypeImage          = "Image"
	TypeIcon           = "Icon"
	TypeVideo          = "Video"
	TypeAudioPlayer    = "AudioPlayer"
	TypeRow            = "Row"
	TypeColumn         = "Column"
	TypeList           = "List"
	TypeCard           = "Card"
	TypeTabs           = "Tabs"
	TypeDivider        = "Divider"
	TypeModal          = "Modal"
	TypeButton         = "Button"
	TypeCheckBox       = "CheckBox"
	TypeTextField      = "TextField"
	TypeDateTimeInput  = "DateTimeInput"
	TypeMultipleChoice = "MultipleChoice"
	TypeSlider         = "Slider"
)

// Component is a registry entry: a stable id plus a type-tagged
// property bag. On the wire the type tag is the single key of the
// "component" object:
//
//	{"id": "t1", "component": {"Text": {"text": {"path": "/title"}}}}
//
// Properties stay untyped here; the transformer decodes them per type.
type Component struct {
	// Stable identifier, unique within a surface.
	ID string

	// Type tag, e.g. "Text". Unknown tags survive decoding and are
	// dropped at transform time.
	Type string

	// Raw properties of the component.
	Properties map[string]any
}

// UnmarshalJSON implements custom JSON unmarshaling for Component.
func (c *Component) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID        string         `json:"id"`
		Component map[string]any `json:"component"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("failed to unmarshal component: %w", err)
	}

	c.ID = raw.ID
	for typeName, props := range raw.Component {
		c.Type = typeName
		if m, ok := props.(map[string]any); ok {
			c.Properties = m
		} else {
			c.Properties = map[string]any{}
		}
		break
	}

	return nil
}

// MarshalJSON implements custom JSON marshaling for Component.
func (c Component) MarshalJSON() ([]byte, error) {
	if c.Type == "" {
		return nil, fmt.Errorf("component %q has no type tag", c.ID)
	}
	props := c.Properties
	if props == nil {
		props = map[string]any{}
	}
	return json.Marshal(map[string]any{
		"id":        c.ID,
		"component": map[string]any{c.Type: props},
	})
}
