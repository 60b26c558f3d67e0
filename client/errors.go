// Copyright 2025 The Go A2UI Authors
// SPDX-License-Identifier: Apache-2.0

package client

import (
	"errors"
	"fmt"

	a2ui "github.com/go-a2ui/a2ui-go"
)

// Common errors.
var (
	// ErrInvalidResponse is returned when the server response is malformed
	// or its id does not correlate with the request.
	ErrInvalidResponse = errors.New("invalid server response")

	// ErrStreamingNotSupported is returned when a streaming operation is
	// attempted against an agent whose card does not advertise streaming.
	ErrStreamingNotSupported = errors.New("agent does not support streaming")
)

// TransportError represents a network- or HTTP-level failure: the
// request never produced a well-formed JSON-RPC response. Status is the
// HTTP status code, or 0 when the failure happened before a response
// was received.
type TransportError struct {
	// Operation during which the failure occurred, e.g. "send request".
	Op string

	// HTTP status code, 0 for pre-response failures.
	Status int

	// Underlying cause, if any.
	Err error
}

// Error implements the error interface.
func (e *TransportError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("transport error during %s: HTTP %d", e.Op, e.Status)
	}
	return fmt.Sprintf("transport error during %s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// NewTransportError creates a new TransportError.
func NewTransportError(op string, status int, err error) *TransportError {
	return &TransportError{Op: op, Status: status, Err: err}
}

// ProtocolError represents a well-formed JSON-RPC error envelope
// returned inside a successful HTTP response. Callers can branch on the
// code to distinguish retryable from semantic failures.
type ProtocolError struct {
	// Code is the JSON-RPC error code.
	Code int

	// Message is the server-provided error message.
	Message string

	// Data is optional additional information about the error.
	Data any
}

// Error implements the error interface.
func (e *ProtocolError) Error() string {
	if e.Data != nil {
		return fmt.Sprintf("rpc error: code = %d, message = %s, data = %v", e.Code, e.Message, e.Data)
	}
	return fmt.Sprintf("rpc error: code = %d, message = %s", e.Code, e.Message)
}

// Is implements errors.Is for ProtocolError, matching on code.
func (e *ProtocolError) Is(target error) bool {
	var pe *ProtocolError
	if errors.As(target, &pe) {
		return e.Code == pe.Code
	}
	return false
}

// newProtocolError converts a JSON-RPC error envelope to a ProtocolError.
func newProtocolError(rpcErr *a2ui.JSONRPCError) *ProtocolError {
	return &ProtocolError{
		Code:    rpcErr.Code,
		Message: rpcErr.Message,
		Data:    rpcErr.Data,
	}
}

// IsProtocolError checks if an error is a ProtocolError with the
// specified code.
func IsProtocolError(err error, code int) bool {
	var pe *ProtocolError
	if errors.As(err, &pe) {
		return pe.Code == code
	}
	return false
}

// IsTaskNotFoundError checks if an error is due to a task not being found.
func IsTaskNotFoundError(err error) bool {
	return IsProtocolError(err, a2ui.TaskNotFoundErrorCode)
}

// IsTaskNotCancelableError checks if an error is due to a task not
// being cancelable.
func IsTaskNotCancelableError(err error) bool {
	return IsProtocolError(err, a2ui.TaskNotCancelableErrorCode)
}

// IsUnsupportedOperationError checks if an error is due to an
// unsupported operation.
func IsUnsupportedOperationError(err error) bool {
	return IsProtocolError(err, a2ui.UnsupportedOperationErrorCode)
}
