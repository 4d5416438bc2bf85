// Package protocol implements the newline-delimited JSON-RPC 2.0 framing used
// by MCP stdio transports: one JSON object per line in, one per line out.
package protocol

import "encoding/json"

const jsonRPCVersion = "2.0"

// Request is an incoming JSON-RPC envelope. The id is kept raw so string,
// number and null correlation ids round-trip unchanged. An absent id marks a
// notification; a present-but-null id is still answerable.
type Request struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id,omitempty"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
}

// IsNotification reports whether the request carried no id at all.
func (r *Request) IsNotification() bool {
	return len(r.ID) == 0
}

// Response is an outgoing JSON-RPC envelope carrying either a result or an
// error, never both. The id field is always emitted; a nil raw id encodes as
// JSON null, which is what parse-error responses require.
type Response struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id"`
	Result  any             `json:"result,omitempty"`
	Error   *Error          `json:"error,omitempty"`
}

// Error is the JSON-RPC error object.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// NewResult builds a success response correlated to the given id.
func NewResult(id json.RawMessage, result any) *Response {
	return &Response{JSONRPC: jsonRPCVersion, ID: id, Result: result}
}

// NewError builds an error response correlated to the given id. Pass a nil id
// for responses that cannot be correlated, such as parse errors.
func NewError(id json.RawMessage, code int, message string) *Response {
	return &Response{JSONRPC: jsonRPCVersion, ID: id, Error: &Error{Code: code, Message: message}}
}
