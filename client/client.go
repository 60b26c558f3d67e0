// Copyright 2025 The Go A2UI Authors
// SPDX-License-Identifier: Apache-2.0

// Package client implements the JSON-RPC transport and task domain
// client for agents speaking the A2A protocol with the rendering
// extension. It provides single-shot calls, cancellable SSE event
// streams, agent card discovery with an instance-scoped cache, and a
// typed error taxonomy separating transport failures from protocol
// error envelopes.
package client

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"sync/atomic"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"

	a2ui "github.com/go-a2ui/a2ui-go"
)

// Client is a JSON-RPC client for a single remote agent. Request ids
// are monotonically increasing and unique per client instance. The
// agent card is fetched once and cached for the client's lifetime.
type Client struct {
	opts    *options
	baseURL string
	nextID  atomic.Int64

	card   *a2ui.AgentCard
	cardMu sync.RWMutex
}

// New creates a new client for the agent at baseURL.
func New(baseURL string, opts ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("base URL is required")
	}

	o := defaultOptions()
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, err
		}
	}

	return &Client{
		opts:    o,
		baseURL: baseURL,
	}, nil
}

// Call performs one JSON-RPC round trip and returns the raw result.
//
// Failures divide into a *TransportError (network failure or non-2xx
// HTTP status) and a *ProtocolError (well-formed error envelope inside
// a successful response). The configured timeout bounds the whole
// round trip.
func (c *Client) Call(ctx context.Context, method string, params any) (jsontext.Value, error) {
	ctx, cancel := context.WithTimeout(ctx, c.opts.timeout)
	defer cancel()

	id := c.nextID.Add(1)
	rpcReq := a2ui.NewJSONRPCRequest(id, method, params)

	payload, err := json.Marshal(rpcReq)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	c.setHeaders(req)
	req.Header.Set("Accept", "application/json")

	resp, err := c.invoke(ctx, req)
	if err != nil {
		return nil, NewTransportError("send request", 0, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, NewTransportError("send request", resp.StatusCode, nil)
	}

	var rpcResp a2ui.JSONRPCResponse
	dec := jsontext.NewDecoder(resp.Body)
	if err := json.UnmarshalDecode(dec, &rpcResp, json.DefaultOptionsV2()); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	if rpcResp.Error != nil {
		return nil, newProtocolError(rpcResp.Error)
	}
	if rpcResp.ID != id {
		return nil, fmt.Errorf("%w: response id %d does not match request id %d",
			ErrInvalidResponse, rpcResp.ID, id)
	}

	return rpcResp.Result, nil
}

// call performs a Call and decodes the result into out.
func (c *Client) call(ctx context.Context, method string, params, out any) error {
	result, err := c.Call(ctx, method, params)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(result, out); err != nil {
		return fmt.Errorf("decode %s result: %w", method, err)
	}
	return nil
}

// AgentCard returns the agent's capability card, fetching and caching
// it on first use. The cache is scoped to this client instance.
func (c *Client) AgentCard(ctx context.Context) (*a2ui.AgentCard, error) {
	c.cardMu.RLock()
	card := c.card
	c.cardMu.RUnlock()
	if card != nil {
		return card, nil
	}

	fetched, err := c.fetchCard(ctx)
	if err != nil {
		return nil, err
	}

	// A concurrent fetch may have won the race; re-fetch is idempotent
	// so last write wins.
	c.cardMu.Lock()
	c.card = fetched
	c.cardMu.Unlock()

	return fetched, nil
}

// fetchCard retrieves the card via the agent/card RPC method, falling
// back to a plain GET on the well-known path for agents that predate
// the method.
func (c *Client) fetchCard(ctx context.Context) (*a2ui.AgentCard, error) {
	var card a2ui.AgentCard
	rpcErr := c.call(ctx, a2ui.MethodAgentCard, nil, &card)
	if rpcErr == nil {
		return &card, nil
	}
	c.logger().Debug("agent/card method unavailable, falling back to well-known path",
		"error", rpcErr)

	resolver := NewCardResolver(c.baseURL,
		WithHTTPClient(c.opts.httpClient),
		WithInterceptors(c.opts.interceptors...),
		WithAgentCardPath(c.opts.cardPath))
	fetched, err := resolver.GetAgentCard(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("fetch agent card: %w", err)
	}
	return fetched, nil
}

// setHeaders sets the headers common to unary and streaming requests.
func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", c.opts.userAgent)
	if c.opts.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.opts.token)
	}
	if c.opts.uiExtension {
		req.Header.Set(a2ui.ExtensionsHeader, a2ui.UIExtensionURI)
	}
}

// invoke runs the request through the interceptor chain.
func (c *Client) invoke(ctx context.Context, req *http.Request) (*http.Response, error) {
	invoker := func(ctx context.Context, req *http.Request) (*http.Response, error) {
		return c.opts.httpClient.Do(req.WithContext(ctx))
	}
	invoker = chainInterceptors(c.opts.interceptors, invoker)
	return invoker(ctx, req)
}

// logger returns the configured structured logger.
func (c *Client) logger() *slog.Logger {
	return c.opts.logger
}
