// Copyright 2025 The Go A2UI Authors
// SPDX-License-Identifier: Apache-2.0

package a2ui

import (
	"github.com/go-json-experiment/json/jsontext"
)

// RPC method names consumed by the client.
const (
	// MethodAgentCard is the method name for fetching the agent card.
	MethodAgentCard = "agent/card"
	// MethodMessageSend is the method name for sending a message.
	MethodMessageSend = "message/send"
	// MethodMessageStream is the method name for sending a message and
	// streaming updates.
	MethodMessageStream = "message/stream"
	// MethodTasksGet is the method name for getting a task.
	MethodTasksGet = "tasks/get"
	// MethodTasksList is the method name for listing tasks.
	MethodTasksList = "tasks/list"
	// MethodTasksCancel is the method name for canceling a task.
	MethodTasksCancel = "tasks/cancel"
	// MethodTasksSubscribe is the method name for subscribing to task updates.
	MethodTasksSubscribe = "tasks/subscribe"
)

// JSONRPCMessage is the base structure for all JSON-RPC 2.0 messages.
// Ids are client-generated integers, monotonically increasing and
// unique per client instance.
type JSONRPCMessage struct {
	// JSONRPC version, always "2.0".
	JSONRPC string `json:"jsonrpc"`
	// ID is a unique identifier for request/response correlation.
	ID int64 `json:"id,omitzero"`
}

// NewJSONRPCMessage creates a new [JSONRPCMessage] with the given id.
func NewJSONRPCMessage(id int64) JSONRPCMessage {
	return JSONRPCMessage{
		JSONRPC: "2.0",
		ID:      id,
	}
}

// JSONRPCRequest represents a JSON-RPC 2.0 request.
type JSONRPCRequest struct {
	JSONRPCMessage

	// Method identifies the operation to perform.
	Method string `json:"method"`
	// Params contains parameters for the method.
	Params any `json:"params,omitzero"`
}

// NewJSONRPCRequest creates a new [JSONRPCRequest].
func NewJSONRPCRequest(id int64, method string, params any) *JSONRPCRequest {
	return &JSONRPCRequest{
		JSONRPCMessage: NewJSONRPCMessage(id),
		Method:         method,
		Params:         params,
	}
}

// JSONRPCError represents a JSON-RPC 2.0 error.
type JSONRPCError struct {
	// Code is the error code.
	Code int `json:"code"`
	// Message is a short description of the error.
	Message string `json:"message"`
	// Data contains optional additional error details.
	Data any `json:"data,omitempty"`
}

// JSONRPCResponse represents a JSON-RPC 2.0 response.
type JSONRPCResponse struct {
	JSONRPCMessage

	// Result contains the successful result data, left raw so callers
	// decode into the method-specific type. Mutually exclusive with Error.
	Result jsontext.Value `json:"result,omitempty"`
	// Error contains an error object if the request failed.
	// Mutually exclusive with Result.
	Error *JSONRPCError `json:"error,omitempty"`
}

// Standard JSON-RPC 2.0 error codes.
const (
	// JSONParseErrorCode indicates invalid JSON payload.
	JSONParseErrorCode = -32700
	// InvalidRequestErrorCode indicates request payload validation error.
	InvalidRequestErrorCode = -32600
	// MethodNotFoundErrorCode indicates the method does not exist.
	MethodNotFoundErrorCode = -32601
	// InvalidParamsErrorCode indicates invalid method parameters.
	InvalidParamsErrorCode = -32602
	// InternalErrorCode indicates an internal server error.
	InternalErrorCode = -32603
)

// Protocol-specific error codes.
const (
	// TaskNotFoundErrorCode indicates the specified task ID was not found.
	TaskNotFoundErrorCode = -32001
	// TaskNotCancelableErrorCode indicates the task is in a final state
	// and cannot be canceled.
	TaskNotCancelableErrorCode = -32002
	// PushNotificationNotSupportedErrorCode indicates the agent does not
	// support push notifications.
	PushNotificationNotSupportedErrorCode = -32003
	// UnsupportedOperationErrorCode indicates the requested operation is
	// not supported.
	UnsupportedOperationErrorCode = -32004
	// ContentTypeNotSupportedErrorCode indicates a mismatch in supported
	// content types.
	ContentTypeNotSupportedErrorCode = -32005
)
