// Copyright 2025 The Go A2UI Authors
// SPDX-License-Identifier: Apache-2.0

package client

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

const (
	defaultTimeout   = 30 * time.Second
	defaultUserAgent = "a2ui-go/" + "0.8.0"
)

// options holds the client configuration.
type options struct {
	httpClient   *http.Client
	timeout      time.Duration
	token        string
	userAgent    string
	uiExtension  bool
	interceptors []Interceptor
	logger       *slog.Logger
	cardPath     string
}

// defaultOptions returns options with defaults applied.
func defaultOptions() *options {
	return &options{
		httpClient: http.DefaultClient,
		timeout:    defaultTimeout,
		userAgent:  defaultUserAgent,
		logger:     slog.Default(),
	}
}

// Option configures the client.
type Option func(*options) error

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(o *options) error {
		if hc == nil {
			return fmt.Errorf("http client cannot be nil")
		}
		o.httpClient = hc
		return nil
	}
}

// WithTimeout sets the per-call timeout for unary requests. Streaming
// requests are bounded by the caller's context instead.
func WithTimeout(d time.Duration) Option {
	return func(o *options) error {
		if d <= 0 {
			return fmt.Errorf("timeout must be positive, got %v", d)
		}
		o.timeout = d
		return nil
	}
}

// WithBearerToken sets a static bearer credential attached to every
// request.
func WithBearerToken(token string) Option {
	return func(o *options) error {
		o.token = token
		return nil
	}
}

// WithUIExtension enables the rendering-protocol extension: the
// extension-advertisement header is attached to every request.
func WithUIExtension() Option {
	return func(o *options) error {
		o.uiExtension = true
		return nil
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(o *options) error {
		o.userAgent = ua
		return nil
	}
}

// WithInterceptors appends interceptors to the request chain.
func WithInterceptors(interceptors ...Interceptor) Option {
	return func(o *options) error {
		o.interceptors = append(o.interceptors, interceptors...)
		return nil
	}
}

// WithLogger sets the structured logger used by the client.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) error {
		if logger == nil {
			return fmt.Errorf("logger cannot be nil")
		}
		o.logger = logger
		return nil
	}
}

// WithAgentCardPath overrides the well-known discovery path.
func WithAgentCardPath(path string) Option {
	return func(o *options) error {
		o.cardPath = path
		return nil
	}
}
