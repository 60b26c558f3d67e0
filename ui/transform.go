// Copyright 2025 The Go A2UI Authors
// SPDX-License-Identifier: Apache-2.0

package ui

import (
	"fmt"
	"log/slog"
	"reflect"

	"github.com/mitchellh/mapstructure"
)

// defaultItemKey wraps non-object list items so templates can address
// them by path.
const defaultItemKey = "item"

// Transformer maps component descriptors into abstract UI node trees.
// Each transform is a pure function of (registry, model, item context),
// so the whole tree is safely re-derivable from scratch on every
// update; no incremental diffing is performed.
type Transformer struct {
	logger *slog.Logger
}

// TransformerOption configures a Transformer.
type TransformerOption func(*Transformer)

// WithTransformerLogger sets the structured logger used for degraded
// input reports.
func WithTransformerLogger(logger *slog.Logger) TransformerOption {
	return func(t *Transformer) {
		if logger != nil {
			t.logger = logger
		}
	}
}

// NewTransformer creates a Transformer.
func NewTransformer(opts ...TransformerOption) *Transformer {
	t := &Transformer{logger: slog.Default()}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Transform transforms a surface's root component into a node tree.
// A root id missing from the registry yields a nil tree, not an error.
func (t *Transformer) Transform(s *Surface) *Node {
	root, ok := s.Component(s.RootID)
	if !ok {
		t.logger.Warn("root component not registered", "surfaceId", s.ID, "rootId", s.RootID)
		return nil
	}
	return t.transform(root, s, nil, map[string]bool{})
}

// TransformComponent transforms a single component subtree with an
// optional item context.
func (t *Transformer) TransformComponent(c *Component, s *Surface, itemContext map[string]any) *Node {
	if c == nil {
		return nil
	}
	return t.transform(c, s, itemContext, map[string]bool{})
}

// transform dispatches on the component's type tag. Unknown types yield
// nil with a logged warning; callers filter nil holes from children.
// The visited set turns payloads that reference an ancestor as a child
// into omitted nodes instead of unbounded recursion.
func (t *Transformer) transform(c *Component, s *Surface, itemCtx map[string]any, visited map[string]bool) *Node {
	if c.ID != "" {
		if visited[c.ID] {
			t.logger.Warn("component cycle detected", "surfaceId", s.ID, "componentId", c.ID)
			return nil
		}
		visited[c.ID] = true
		defer delete(visited, c.ID)
	}

	switch c.Type {
	case TypeText:
		return t.textNode(c, s, itemCtx)
	case TypeImage:
		return t.imageNode(c, s, itemCtx)
	case TypeIcon:
		return t.iconNode(c, s, itemCtx)
	case TypeVideo:
		return t.videoNode(c, s, itemCtx)
	case TypeAudioPlayer:
		return t.audioPlayerNode(c, s, itemCtx)
	case TypeRow, TypeColumn:
		return t.stackNode(c, s, itemCtx, visited)
	case TypeList:
		return t.listNode(c, s, itemCtx, visited)
	case TypeCard:
		return t.cardNode(c, s, itemCtx, visited)
	case TypeTabs:
		return t.tabsNode(c, s, itemCtx, visited)
	case TypeDivider:
		return t.dividerNode(c)
	case TypeModal:
		return t.modalNode(c, s, itemCtx, visited)
	case TypeButton:
		return t.buttonNode(c, s, itemCtx)
	case TypeCheckBox:
		return t.checkBoxNode(c, s, itemCtx)
	case TypeTextField:
		return t.textFieldNode(c, s, itemCtx)
	case TypeDateTimeInput:
		return t.dateTimeInputNode(c, s, itemCtx)
	case TypeMultipleChoice:
		return t.multipleChoiceNode(c, s, itemCtx)
	case TypeSlider:
		return t.sliderNode(c, s, itemCtx)
	default:
		t.logger.Warn("unknown component type", "surfaceId", s.ID, "componentId", c.ID, "type", c.Type)
		return nil
	}
}

// transformChildren transforms referenced child ids via registry
// lookup. Missing ids are dropped, never fatal; nil results are
// filtered out.
func (t *Transformer) transformChildren(ids []string, s *Surface, itemCtx map[string]any, visited map[string]bool) []*Node {
	var nodes []*Node
	for _, id := range ids {
		child, ok := s.Component(id)
		if !ok {
			t.logger.Warn("child component not registered", "surfaceId", s.ID, "componentId", id)
			continue
		}
		if node := t.transform(child, s, itemCtx, visited); node != nil {
			nodes = append(nodes, node)
		}
	}
	return nodes
}

// decodeProps decodes a raw property bag into a typed property struct.
// Bindings nested in the bag are recognized by the decode hook.
func decodeProps[T any](props map[string]any) (T, error) {
	var out T
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: bindingDecodeHook,
		Result:     &out,
		TagName:    "json",
	})
	if err != nil {
		return out, err
	}
	if err := dec.Decode(props); err != nil {
		return out, fmt.Errorf("decode properties: %w", err)
	}
	return out, nil
}

// bindingDecodeHook converts raw JSON values into Binding fields while
// mapstructure walks a property bag.
func bindingDecodeHook(from, to reflect.Type, data any) (any, error) {
	if to != reflect.TypeOf(Binding{}) {
		return data, nil
	}
	return bindingFromValue(data), nil
}

// props decodes c's property bag, logging and degrading to the zero
// struct when the bag is malformed.
func props[T any](t *Transformer, c *Component, s *Surface) T {
	out, err := decodeProps[T](c.Properties)
	if err != nil {
		t.logger.Warn("malformed component properties",
			"surfaceId", s.ID, "componentId", c.ID, "type", c.Type, "error", err)
	}
	return out
}

// setResolved resolves a binding and stores the value under key when
// present. Resolution gaps leave the key unset.
func setResolved(p map[string]any, key string, b Binding, model, itemCtx map[string]any) {
	if v, ok := b.Resolve(model, itemCtx); ok {
		p[key] = v
	}
}

type textProps struct {
	Text Binding `json:"text"`
}

func (t *Transformer) textNode(c *Component, s *Surface, itemCtx map[string]any) *Node {
	p := props[textProps](t, c, s)
	nodeProps := map[string]any{}
	setResolved(nodeProps, "text", p.Text, s.Model(), itemCtx)
	return &Node{Type: TypeText, ID: c.ID, Props: nodeProps}
}

type imageProps struct {
	URL Binding `json:"url"`
	Fit string  `json:"fit"`
}

func (t *Transformer) imageNode(c *Component, s *Surface, itemCtx map[string]any) *Node {
	p := props[imageProps](t, c, s)
	nodeProps := map[string]any{}
	setResolved(nodeProps, "url", p.URL, s.Model(), itemCtx)
	if p.Fit != "" {
		nodeProps["fit"] = p.Fit
	}
	return &Node{Type: TypeImage, ID: c.ID, Props: nodeProps}
}

type iconProps struct {
	Name Binding `json:"name"`
}

func (t *Transformer) iconNode(c *Component, s *Surface, itemCtx map[string]any) *Node {
	p := props[iconProps](t, c, s)
	nodeProps := map[string]any{}
	setResolved(nodeProps, "name", p.Name, s.Model(), itemCtx)
	return &Node{Type: TypeIcon, ID: c.ID, Props: nodeProps}
}

type videoProps struct {
	URL Binding `json:"url"`
}

func (t *Transformer) videoNode(c *Component, s *Surface, itemCtx map[string]any) *Node {
	p := props[videoProps](t, c, s)
	nodeProps := map[string]any{}
	setResolved(nodeProps, "url", p.URL, s.Model(), itemCtx)
	return &Node{Type: TypeVideo, ID: c.ID, Props: nodeProps}
}

type audioPlayerProps struct {
	URL         Binding `json:"url"`
	Description Binding `json:"description"`
}

func (t *Transformer) audioPlayerNode(c *Component, s *Surface, itemCtx map[string]any) *Node {
	p := props[audioPlayerProps](t, c, s)
	nodeProps := map[string]any{}
	setResolved(nodeProps, "url", p.URL, s.Model(), itemCtx)
	setResolved(nodeProps, "description", p.Description, s.Model(), itemCtx)
	return &Node{Type: TypeAudioPlayer, ID: c.ID, Props: nodeProps}
}

type stackProps struct {
	Children     []string `json:"children"`
	Distribution string   `json:"distribution"`
	Alignment    string   `json:"alignment"`
	Gap          float64  `json:"gap"`
}

// stackNode handles Row and Column. Layout hints travel as opaque style
// data for the renderer.
func (t *Transformer) stackNode(c *Component, s *Surface, itemCtx map[string]any, visited map[string]bool) *Node {
	p := props[stackProps](t, c, s)

	direction := "row"
	if c.Type == TypeColumn {
		direction = "column"
	}
	nodeProps := map[string]any{"direction": direction}
	if p.Distribution != "" {
		nodeProps["distribution"] = p.Distribution
	}
	if p.Alignment != "" {
		nodeProps["alignment"] = p.Alignment
	}
	if p.Gap != 0 {
		nodeProps["gap"] = p.Gap
	}

	return &Node{
		Type:     c.Type,
		ID:       c.ID,
		Props:    nodeProps,
		Children: t.transformChildren(p.Children, s, itemCtx, visited),
	}
}

type cardProps struct {
	Child string `json:"child"`
}

func (t *Transformer) cardNode(c *Component, s *Surface, itemCtx map[string]any, visited map[string]bool) *Node {
	p := props[cardProps](t, c, s)
	node := &Node{Type: TypeCard, ID: c.ID}
	if p.Child != "" {
		node.Children = t.transformChildren([]string{p.Child}, s, itemCtx, visited)
	}
	return node
}

type tabItemProps struct {
	Title Binding `json:"title"`
	Child string  `json:"child"`
}

type tabsProps struct {
	TabItems []tabItemProps `json:"tabItems"`
}

func (t *Transformer) tabsNode(c *Component, s *Surface, itemCtx map[string]any, visited map[string]bool) *Node {
	p := props[tabsProps](t, c, s)

	var titles []any
	var children []*Node
	for _, item := range p.TabItems {
		title, _ := item.Title.Resolve(s.Model(), itemCtx)
		child, ok := s.Component(item.Child)
		if !ok {
			t.logger.Warn("tab child not registered", "surfaceId", s.ID, "componentId", item.Child)
			continue
		}
		node := t.transform(child, s, itemCtx, visited)
		if node == nil {
			continue
		}
		titles = append(titles, title)
		children = append(children, node)
	}

	return &Node{
		Type:     TypeTabs,
		ID:       c.ID,
		Props:    map[string]any{"titles": titles},
		Children: children,
	}
}

type dividerProps struct {
	Axis string `json:"axis"`
}

func (t *Transformer) dividerNode(c *Component) *Node {
	p, _ := decodeProps[dividerProps](c.Properties)
	nodeProps := map[string]any{}
	if p.Axis != "" {
		nodeProps["axis"] = p.Axis
	}
	return &Node{Type: TypeDivider, ID: c.ID, Props: nodeProps}
}

type modalProps struct {
	EntryPoint string `json:"entryPoint"`
	Content    string `json:"content"`
}

func (t *Transformer) modalNode(c *Component, s *Surface, itemCtx map[string]any, visited map[string]bool) *Node {
	p := props[modalProps](t, c, s)

	node := &Node{Type: TypeModal, ID: c.ID, Props: map[string]any{}}
	if p.EntryPoint != "" {
		if entry := t.transformChildren([]string{p.EntryPoint}, s, itemCtx, visited); len(entry) > 0 {
			node.Props["entryPoint"] = entry[0]
		}
	}
	if p.Content != "" {
		node.Children = t.transformChildren([]string{p.Content}, s, itemCtx, visited)
	}
	return node
}

type buttonProps struct {
	Label  Binding        `json:"label"`
	Action map[string]any `json:"action"`
}

func (t *Transformer) buttonNode(c *Component, s *Surface, itemCtx map[string]any) *Node {
	p := props[buttonProps](t, c, s)
	nodeProps := map[string]any{}
	setResolved(nodeProps, "label", p.Label, s.Model(), itemCtx)
	if p.Action != nil {
		nodeProps["action"] = p.Action
	}
	return &Node{Type: TypeButton, ID: c.ID, Props: nodeProps}
}

type checkBoxProps struct {
	Label Binding `json:"label"`
	Value Binding `json:"value"`
}

func (t *Transformer) checkBoxNode(c *Component, s *Surface, itemCtx map[string]any) *Node {
	p := props[checkBoxProps](t, c, s)
	nodeProps := map[string]any{}
	setResolved(nodeProps, "label", p.Label, s.Model(), itemCtx)
	setResolved(nodeProps, "value", p.Value, s.Model(), itemCtx)
	// The path feeds user edits back into the model; keep it for the
	// renderer alongside the resolved value.
	if p.Value.Kind == BindingPath {
		nodeProps["valuePath"] = p.Value.Path
	}
	return &Node{Type: TypeCheckBox, ID: c.ID, Props: nodeProps}
}

type textFieldProps struct {
	Label            Binding `json:"label"`
	Text             Binding `json:"text"`
	FieldType        string  `json:"type"`
	ValidationRegexp string  `json:"validationRegexp"`
}

func (t *Transformer) textFieldNode(c *Component, s *Surface, itemCtx map[string]any) *Node {
	p := props[textFieldProps](t, c, s)
	nodeProps := map[string]any{}
	setResolved(nodeProps, "label", p.Label, s.Model(), itemCtx)
	setResolved(nodeProps, "text", p.Text, s.Model(), itemCtx)
	if p.Text.Kind == BindingPath {
		nodeProps["textPath"] = p.Text.Path
	}
	if p.FieldType != "" {
		nodeProps["fieldType"] = p.FieldType
	}
	if p.ValidationRegexp != "" {
		nodeProps["validationRegexp"] = p.ValidationRegexp
	}
	return &Node{Type: TypeTextField, ID: c.ID, Props: nodeProps}
}

type dateTimeInputProps struct {
	Value        Binding `json:"value"`
	EnableDate   bool    `json:"enableDate"`
	EnableTime   bool    `json:"enableTime"`
	OutputFormat string  `json:"outputFormat"`
}

func (t *Transformer) dateTimeInputNode(c *Component, s *Surface, itemCtx map[string]any) *Node {
	p := props[dateTimeInputProps](t, c, s)
	nodeProps := map[string]any{
		"enableDate": p.EnableDate,
		"enableTime": p.EnableTime,
	}
	setResolved(nodeProps, "value", p.Value, s.Model(), itemCtx)
	if p.Value.Kind == BindingPath {
		nodeProps["valuePath"] = p.Value.Path
	}
	if p.OutputFormat != "" {
		nodeProps["outputFormat"] = p.OutputFormat
	}
	return &Node{Type: TypeDateTimeInput, ID: c.ID, Props: nodeProps}
}

type choiceOptionProps struct {
	Label Binding `json:"label"`
	Value string  `json:"value"`
}

type multipleChoiceProps struct {
	Selections           Binding             `json:"selections"`
	Options              []choiceOptionProps `json:"options"`
	MaxAllowedSelections int                 `json:"maxAllowedSelections"`
}

func (t *Transformer) multipleChoiceNode(c *Component, s *Surface, itemCtx map[string]any) *Node {
	p := props[multipleChoiceProps](t, c, s)

	options := make([]map[string]any, 0, len(p.Options))
	for _, opt := range p.Options {
		entry := map[string]any{"value": opt.Value}
		setResolved(entry, "label", opt.Label, s.Model(), itemCtx)
		options = append(options, entry)
	}

	nodeProps := map[string]any{"options": options}
	setResolved(nodeProps, "selections", p.Selections, s.Model(), itemCtx)
	if p.Selections.Kind == BindingPath {
		nodeProps["selectionsPath"] = p.Selections.Path
	}
	if p.MaxAllowedSelections > 0 {
		nodeProps["maxAllowedSelections"] = p.MaxAllowedSelections
	}
	return &Node{Type: TypeMultipleChoice, ID: c.ID, Props: nodeProps}
}

type sliderProps struct {
	Value    Binding `json:"value"`
	MinValue float64 `json:"minValue"`
	MaxValue float64 `json:"maxValue"`
}

func (t *Transformer) sliderNode(c *Component, s *Surface, itemCtx map[string]any) *Node {
	p := props[sliderProps](t, c, s)
	nodeProps := map[string]any{
		"minValue": p.MinValue,
		"maxValue": p.MaxValue,
	}
	setResolved(nodeProps, "value", p.Value, s.Model(), itemCtx)
	if p.Value.Kind == BindingPath {
		nodeProps["valuePath"] = p.Value.Path
	}
	return &Node{Type: TypeSlider, ID: c.ID, Props: nodeProps}
}

type listProps struct {
	Items     Binding `json:"items"`
	Template  Binding `json:"template"`
	Direction string  `json:"direction"`
}

// listNode resolves the bound items collection and expands the template
// component once per item, in source order. Each item gets a context
// that shadows the surface model: map items are used as the context
// directly, anything else is wrapped under the default item key.
func (t *Transformer) listNode(c *Component, s *Surface, itemCtx map[string]any, visited map[string]bool) *Node {
	p := props[listProps](t, c, s)

	direction := p.Direction
	if direction == "" {
		direction = "column"
	}
	node := &Node{Type: TypeList, ID: c.ID, Props: map[string]any{"direction": direction}}

	templateID := p.Template.Template
	if templateID == "" {
		t.logger.Warn("list without template", "surfaceId", s.ID, "componentId", c.ID)
		return node
	}
	template, ok := s.Component(templateID)
	if !ok {
		t.logger.Warn("list template not registered", "surfaceId", s.ID, "componentId", templateID)
		return node
	}

	resolved, ok := p.Items.Resolve(s.Model(), itemCtx)
	if !ok {
		return node
	}
	items, ok := resolved.([]any)
	if !ok {
		t.logger.Warn("list items did not resolve to a collection",
			"surfaceId", s.ID, "componentId", c.ID)
		return node
	}

	for _, item := range items {
		ctx, ok := item.(map[string]any)
		if !ok {
			ctx = map[string]any{defaultItemKey: item}
		}
		if child := t.transform(template, s, ctx, visited); child != nil {
			node.Children = append(node.Children, child)
		}
	}

	return node
}
