// Package a2a implements the JSON-RPC 2.0 based agent-to-agent message
// protocol: request/response envelope types, request classification and the
// task envelope returned to callers. The wire layout is fixed; field names
// and nesting must not change without breaking protocol clients.
package a2a

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// JSON-RPC 2.0 error codes used by the endpoint.
const (
	CodeInvalidRequest = -32600
	CodeMethodNotFound = -32601
	CodeInvalidParams  = -32602
	CodeInternal       = -32603
)

// Methods accepted by the A2A endpoint.
const (
	MethodMessageSend = "message/send"
	MethodExecute     = "execute"
)

// Request is the decoded JSON-RPC request envelope. ID is left untyped
// because clients may send strings or numbers and the response must echo
// whatever was sent.
type Request struct {
	JSONRPC string `json:"jsonrpc"`
	ID      any    `json:"id"`
	Method  string `json:"method"`
	Params  Params `json:"params"`
}

// Params carries the payload of both supported methods. "message/send"
// populates Message; "execute" populates Messages plus top-level
// contextId/taskId.
type Params struct {
	Message   *Message  `json:"message,omitempty"`
	Messages  []Message `json:"messages,omitempty"`
	ContextID string    `json:"contextId,omitempty"`
	TaskID    string    `json:"taskId,omitempty"`
}

// Message is a protocol chat message. TaskID and Metadata are pointers so
// that explicit nulls survive a decode/encode round trip.
type Message struct {
	Kind      string         `json:"kind,omitempty"`
	Role      string         `json:"role,omitempty"`
	Parts     []Part         `json:"parts"`
	MessageID string         `json:"messageId,omitempty"`
	TaskID    *string        `json:"taskId"`
	Metadata  map[string]any `json:"metadata"`
}

// Part is one segment of a message body. Only "text" parts carry content
// this service understands.
type Part struct {
	Kind string `json:"kind"`
	Text string `json:"text,omitempty"`
}

// Response is the JSON-RPC response envelope. Exactly one of Result or
// Error is set.
type Response struct {
	JSONRPC string `json:"jsonrpc"`
	ID      any    `json:"id"`
	Result  *Task  `json:"result,omitempty"`
	Error   *Error `json:"error,omitempty"`
}

// Error is a JSON-RPC error object.
type Error struct {
	Code    int            `json:"code"`
	Message string         `json:"message"`
	Data    map[string]any `json:"data,omitempty"`
}

// NewResult wraps a task envelope into a success response for the given
// request id.
func NewResult(id any, task *Task) Response {
	return Response{JSONRPC: "2.0", ID: id, Result: task}
}

// NewError builds an error response. details, when non-empty, is attached
// under data.details so clients get a human-readable reason.
func NewError(id any, code int, message, details string) Response {
	e := &Error{Code: code, Message: message}
	if details != "" {
		e.Data = map[string]any{"details": details}
	}
	return Response{JSONRPC: "2.0", ID: id, Error: e}
}

// NewID returns a random identifier in canonical UUID v4 form. Generated
// locally so the protocol layer carries no extra dependency.
func NewID() string {
	var b [16]byte
	if _, err := rand.Read(b[:]); err != nil {
		// crypto/rand never fails on supported platforms; a zero id is
		// still unambiguous in logs if it somehow does.
		return "00000000-0000-4000-8000-000000000000"
	}
	b[6] = (b[6] & 0x0f) | 0x40
	b[8] = (b[8] & 0x3f) | 0x80
	h := hex.EncodeToString(b[:])
	return fmt.Sprintf("%s-%s-%s-%s-%s", h[0:8], h[8:12], h[12:16], h[16:20], h[20:32])
}
