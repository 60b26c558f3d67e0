// Copyright 2025 The Go A2UI Authors
// SPDX-License-Identifier: Apache-2.0

package client

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"

	a2ui "github.com/go-a2ui/a2ui-go"
)

// CardResolver fetches agent capability cards from the well-known
// discovery path via plain GET.
type CardResolver struct {
	hc            *http.Client
	baseURL       string
	agentCardPath string
	interceptors  []Interceptor
}

// NewCardResolver creates a card resolver for the agent at baseURL.
func NewCardResolver(baseURL string, opts ...Option) *CardResolver {
	o := defaultOptions()
	for _, opt := range opts {
		// Resolver construction has no failure mode worth surfacing;
		// invalid options keep their defaults.
		_ = opt(o)
	}

	cardPath := o.cardPath
	if cardPath == "" {
		cardPath = a2ui.AgentCardWellKnownPath
	}

	return &CardResolver{
		hc:            o.httpClient,
		baseURL:       strings.TrimRight(baseURL, "/"),
		agentCardPath: strings.TrimLeft(cardPath, "/"),
		interceptors:  o.interceptors,
	}
}

// GetAgentCard fetches an agent card from a specified path relative to
// the baseURL.
//
// If relativeCardPath is empty, it defaults to the resolver's
// configured agentCardPath (for the public agent card).
func (r *CardResolver) GetAgentCard(ctx context.Context, relativeCardPath string) (*a2ui.AgentCard, error) {
	if relativeCardPath == "" {
		relativeCardPath = r.agentCardPath
	} else {
		relativeCardPath = strings.TrimLeft(relativeCardPath, "/")
	}

	targetURL := fmt.Sprintf("%s/%s", r.baseURL, relativeCardPath)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, targetURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	invoker := func(ctx context.Context, req *http.Request) (*http.Response, error) {
		return r.hc.Do(req.WithContext(ctx))
	}
	invoker = chainInterceptors(r.interceptors, invoker)

	resp, err := invoker(ctx, req)
	if err != nil {
		return nil, NewTransportError("fetch agent card", 0, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, NewTransportError("fetch agent card", resp.StatusCode, nil)
	}

	var agentCard a2ui.AgentCard
	dec := jsontext.NewDecoder(resp.Body)
	if err := json.UnmarshalDecode(dec, &agentCard, json.DefaultOptionsV2()); err != nil {
		return nil, fmt.Errorf("decode agent card: %w", err)
	}

	return &agentCard, nil
}
