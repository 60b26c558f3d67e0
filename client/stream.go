// Copyright 2025 The Go A2UI Authors
// SPDX-License-Identifier: Apache-2.0

package client

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"

	a2ui "github.com/go-a2ui/a2ui-go"
)

// doneSentinel ends an event stream when it appears as a data payload.
const doneSentinel = "[DONE]"

// StreamResult carries one item of an event stream: either a decoded
// event or a terminal error. After an item with a non-nil Err, the
// channel is closed.
type StreamResult struct {
	Event *a2ui.StreamEvent
	Err   error
}

// Stream opens an event-stream call and returns a channel of parsed
// events.
//
// The sequence is finite and non-resumable: it ends on connection
// close, on the [DONE] sentinel, or when ctx is canceled. Garbled
// individual event lines are logged and skipped; a connection-level
// failure ends the sequence with a trailing error item. The consuming
// goroutine suspends only while awaiting the next network chunk.
func (c *Client) Stream(ctx context.Context, method string, params any) (<-chan StreamResult, error) {
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
	req.Header.Set("Accept", "text/event-stream")
	req.Header.Set("Cache-Control", "no-cache")

	resp, err := c.invoke(ctx, req)
	if err != nil {
		return nil, NewTransportError("send streaming request", 0, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		resp.Body.Close()
		return nil, NewTransportError("send streaming request", resp.StatusCode, nil)
	}

	ch := make(chan StreamResult)

	go func() {
		defer resp.Body.Close()
		defer close(ch)
		c.consumeEvents(ctx, resp.Body, ch)
	}()

	return ch, nil
}

// consumeEvents reads the event-delimited body line by line, emitting
// one StreamResult per well-formed data line.
func (c *Client) consumeEvents(ctx context.Context, body io.Reader, ch chan<- StreamResult) {
	reader := bufio.NewReader(body)

	for {
		line, err := reader.ReadString('\n')
		if err != nil {
			if errors.Is(err, io.EOF) {
				// Connection closed without the sentinel: clean end.
				if data, ok := dataLine(line); ok && data != doneSentinel {
					c.emitEvent(ctx, data, ch)
				}
				return
			}
			select {
			case ch <- StreamResult{Err: NewTransportError("read stream", 0, err)}:
			case <-ctx.Done():
			}
			return
		}

		data, ok := dataLine(line)
		if !ok {
			continue
		}
		if data == doneSentinel {
			return
		}

		if !c.emitEvent(ctx, data, ch) {
			return
		}
	}
}

// emitEvent parses one data payload and sends it. It reports false when
// the consumer is gone or the stream must end.
func (c *Client) emitEvent(ctx context.Context, data string, ch chan<- StreamResult) bool {
	event, err := parseStreamEvent([]byte(data))
	if err != nil {
		var pe *ProtocolError
		if errors.As(err, &pe) {
			// Error envelope mid-stream: surface and end the sequence.
			select {
			case ch <- StreamResult{Err: pe}:
			case <-ctx.Done():
			}
			return false
		}
		c.logger().Warn("skipping malformed stream event", "error", err)
		return true
	}

	select {
	case ch <- StreamResult{Event: event}:
		return true
	case <-ctx.Done():
		return false
	}
}

// dataLine extracts the payload of an SSE data line. Comment lines,
// event-type lines, and blank separators carry no payload.
func dataLine(line string) (string, bool) {
	line = strings.TrimRight(line, "\r\n")
	rest, ok := strings.CutPrefix(line, "data:")
	if !ok {
		return "", false
	}
	return strings.TrimSpace(rest), true
}

// parseStreamEvent decodes one event payload. Events normally arrive
// wrapped in a JSON-RPC response envelope; bare events are accepted for
// forward compatibility. An error envelope yields a *ProtocolError.
func parseStreamEvent(data []byte) (*a2ui.StreamEvent, error) {
	var envelope struct {
		Result jsontext.Value     `json:"result"`
		Error  *a2ui.JSONRPCError `json:"error"`
	}
	if err := json.Unmarshal(data, &envelope); err == nil {
		if envelope.Error != nil {
			return nil, newProtocolError(envelope.Error)
		}
		if len(envelope.Result) > 0 {
			var event a2ui.StreamEvent
			if err := json.Unmarshal(envelope.Result, &event); err != nil {
				return nil, fmt.Errorf("decode event result: %w", err)
			}
			return &event, nil
		}
	}

	var event a2ui.StreamEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return nil, fmt.Errorf("decode event: %w", err)
	}
	return &event, nil
}
