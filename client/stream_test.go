// Copyright 2025 The Go A2UI Authors
// SPDX-License-Identifier: Apache-2.0

package client_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-json-experiment/json"
	"github.com/google/go-cmp/cmp"

	a2ui "github.com/go-a2ui/a2ui-go"
	"github.com/go-a2ui/a2ui-go/client"
)

// agentServer answers agent/card requests, over RPC and on the
// well-known path, with the given card and hands every other request
// to handler.
func agentServer(t *testing.T, card *a2ui.AgentCard, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			w.Header().Set("Content-Type", "application/json")
			if err := json.MarshalWrite(w, card); err != nil {
				t.Errorf("failed to write card: %v", err)
			}
			return
		}

		body, err := io.ReadAll(r.Body)
		if err != nil {
			t.Errorf("failed to read request body: %v", err)
			return
		}
		var req a2ui.JSONRPCRequest
		if err := json.Unmarshal(body, &req); err == nil && req.Method == a2ui.MethodAgentCard {
			result, err := json.Marshal(card)
			if err != nil {
				t.Errorf("failed to marshal card: %v", err)
				return
			}
			fmt.Fprintf(w, `{"jsonrpc":"2.0","id":%d,"result":%s}`, req.ID, result)
			return
		}

		r.Body = io.NopCloser(bytes.NewReader(body))
		handler(w, r)
	}))
}

// streamingServer is an agentServer whose card advertises streaming.
func streamingServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	return agentServer(t, &a2ui.AgentCard{
		Name:         "StreamAgent",
		URL:          "https://agent.example.com",
		Version:      "1.0.0",
		Capabilities: &a2ui.AgentCapabilities{Streaming: true},
	}, handler)
}

// collect drains the stream into a slice of results.
func collect(ch <-chan client.StreamResult) []client.StreamResult {
	var out []client.StreamResult
	for item := range ch {
		out = append(out, item)
	}
	return out
}

// TestClient_StreamMessage tests a complete event stream ended by the
// [DONE] sentinel.
func TestClient_StreamMessage(t *testing.T) {
	server := streamingServer(t, func(w http.ResponseWriter, r *http.Request) {
		if accept := r.Header.Get("Accept"); accept != "text/event-stream" {
			t.Errorf("expected Accept text/event-stream, got %q", accept)
		}
		var req a2ui.JSONRPCRequest
		if err := json.UnmarshalRead(r.Body, &req); err != nil {
			t.Errorf("failed to decode request: %v", err)
			return
		}
		if req.Method != a2ui.MethodMessageStream {
			t.Errorf("expected method %q, got %q", a2ui.MethodMessageStream, req.Method)
		}

		w.Header().Set("Content-Type", "text/event-stream")
		fmt.Fprintf(w, "data: {\"jsonrpc\":\"2.0\",\"id\":%d,\"result\":{\"kind\":\"task\",\"id\":\"t1\",\"contextId\":\"c1\",\"status\":{\"state\":\"submitted\"}}}\n\n", req.ID)
		fmt.Fprintf(w, "data: {\"jsonrpc\":\"2.0\",\"id\":%d,\"result\":{\"kind\":\"status-update\",\"taskId\":\"t1\",\"status\":{\"state\":\"working\"}}}\n\n", req.ID)
		fmt.Fprintf(w, "data: {\"jsonrpc\":\"2.0\",\"id\":%d,\"result\":{\"kind\":\"status-update\",\"taskId\":\"t1\",\"status\":{\"state\":\"completed\"},\"final\":true}}\n\n", req.ID)
		fmt.Fprint(w, "data: [DONE]\n\n")
	})
	defer server.Close()

	c, err := client.New(server.URL)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	ch, err := c.StreamText(context.Background(), "stream this")
	if err != nil {
		t.Fatalf("StreamText failed: %v", err)
	}

	results := collect(ch)
	if len(results) != 3 {
		t.Fatalf("expected 3 events, got %d", len(results))
	}
	for i, item := range results {
		if item.Err != nil {
			t.Fatalf("unexpected error at item %d: %v", i, item.Err)
		}
	}

	kinds := []string{results[0].Event.Kind, results[1].Event.Kind, results[2].Event.Kind}
	want := []string{a2ui.KindTask, a2ui.KindStatusUpdate, a2ui.KindStatusUpdate}
	if diff := cmp.Diff(want, kinds); diff != "" {
		t.Errorf("event kinds mismatch (-want +got):\n%s", diff)
	}
	if !results[2].Event.StatusUpdate.Final {
		t.Error("expected final flag on last status update")
	}
}

// TestClient_Stream_SkipsGarbledLines tests that undecodable event
// lines are skipped without ending the stream.
func TestClient_Stream_SkipsGarbledLines(t *testing.T) {
	server := streamingServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/event-stream")
		fmt.Fprint(w, ": comment line\n")
		fmt.Fprint(w, "data: {not json}\n\n")
		fmt.Fprint(w, "event: ping\n\n")
		fmt.Fprint(w, "data: {\"kind\":\"status-update\",\"taskId\":\"t1\",\"status\":{\"state\":\"working\"}}\n\n")
		fmt.Fprint(w, "data: [DONE]\n\n")
	})
	defer server.Close()

	c, err := client.New(server.URL)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	ch, err := c.SubscribeToTask(context.Background(), &a2ui.TaskIDParams{ID: "t1"})
	if err != nil {
		t.Fatalf("SubscribeToTask failed: %v", err)
	}

	results := collect(ch)
	if len(results) != 1 {
		t.Fatalf("expected 1 event, got %d", len(results))
	}
	if results[0].Err != nil {
		t.Fatalf("unexpected error: %v", results[0].Err)
	}
	if results[0].Event.StatusUpdate == nil {
		t.Error("expected a status update event")
	}
}

// TestClient_Stream_ErrorEnvelope tests that a mid-stream error
// envelope ends the stream with a ProtocolError item.
func TestClient_Stream_ErrorEnvelope(t *testing.T) {
	server := streamingServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/event-stream")
		fmt.Fprint(w, "data: {\"kind\":\"status-update\",\"taskId\":\"t1\",\"status\":{\"state\":\"working\"}}\n\n")
		fmt.Fprint(w, "data: {\"jsonrpc\":\"2.0\",\"id\":1,\"error\":{\"code\":-32603,\"message\":\"Internal error\"}}\n\n")
		fmt.Fprint(w, "data: {\"kind\":\"status-update\",\"taskId\":\"t1\",\"status\":{\"state\":\"completed\"}}\n\n")
	})
	defer server.Close()

	c, err := client.New(server.URL)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	ch, err := c.SubscribeToTask(context.Background(), &a2ui.TaskIDParams{ID: "t1"})
	if err != nil {
		t.Fatalf("SubscribeToTask failed: %v", err)
	}

	results := collect(ch)
	if len(results) != 2 {
		t.Fatalf("expected 2 items, got %d", len(results))
	}
	if results[0].Err != nil {
		t.Fatalf("unexpected error on first item: %v", results[0].Err)
	}
	var pe *client.ProtocolError
	if !errors.As(results[1].Err, &pe) {
		t.Fatalf("expected trailing ProtocolError, got %v", results[1].Err)
	}
	if pe.Code != a2ui.InternalErrorCode {
		t.Errorf("expected internal error code, got %d", pe.Code)
	}
}

// TestClient_Stream_ConnectionClose tests that closing the connection
// without a sentinel ends the stream cleanly.
func TestClient_Stream_ConnectionClose(t *testing.T) {
	server := streamingServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/event-stream")
		fmt.Fprint(w, "data: {\"kind\":\"status-update\",\"taskId\":\"t1\",\"status\":{\"state\":\"working\"}}\n\n")
		// No sentinel; handler returns and the connection closes.
	})
	defer server.Close()

	c, err := client.New(server.URL)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	ch, err := c.SubscribeToTask(context.Background(), &a2ui.TaskIDParams{ID: "t1"})
	if err != nil {
		t.Fatalf("SubscribeToTask failed: %v", err)
	}

	results := collect(ch)
	if len(results) != 1 {
		t.Fatalf("expected 1 event, got %d", len(results))
	}
	if results[0].Err != nil {
		t.Errorf("expected clean end, got error: %v", results[0].Err)
	}
}

// TestClient_StreamMessage_NotSupported tests the capability gate for
// agents without streaming.
func TestClient_StreamMessage_NotSupported(t *testing.T) {
	card := &a2ui.AgentCard{Name: "PlainAgent", URL: "https://agent.example.com", Version: "1.0.0"}
	server := agentServer(t, card, func(w http.ResponseWriter, r *http.Request) {
		t.Error("streaming request should not reach the server")
	})
	defer server.Close()

	c, err := client.New(server.URL)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	_, err = c.StreamText(context.Background(), "nope")
	if !errors.Is(err, client.ErrStreamingNotSupported) {
		t.Errorf("expected ErrStreamingNotSupported, got %v", err)
	}
}

// TestClient_Stream_ContextCancel tests that canceling the context ends
// the stream.
func TestClient_Stream_ContextCancel(t *testing.T) {
	blocked := make(chan struct{})
	server := streamingServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/event-stream")
		fmt.Fprint(w, "data: {\"kind\":\"status-update\",\"taskId\":\"t1\",\"status\":{\"state\":\"working\"}}\n\n")
		if f, ok := w.(http.Flusher); ok {
			f.Flush()
		}
		<-blocked
	})
	defer server.Close()
	defer close(blocked)

	c, err := client.New(server.URL)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	ch, err := c.SubscribeToTask(ctx, &a2ui.TaskIDParams{ID: "t1"})
	if err != nil {
		t.Fatalf("SubscribeToTask failed: %v", err)
	}

	first := <-ch
	if first.Err != nil || first.Event == nil {
		t.Fatalf("expected first event, got %+v", first)
	}

	cancel()
	for range ch {
		// Drain whatever trails the cancellation; the channel must close.
	}
}
