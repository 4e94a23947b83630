package jsonrpc

import (
	"encoding/json"
	"fmt"
)

// ProtocolVersion is the supported JSON-RPC protocol version.
const ProtocolVersion = "2.0"

// Request represents an outgoing JSON-RPC request.
type Request struct {
	JSONRPCVersion string          `json:"jsonrpc"`
	Method         string          `json:"method"`
	Params         json.RawMessage `json:"params,omitempty"`
	ID             *RequestID      `json:"id"`
}

// NewRequest builds a request object, marshaling params eagerly so that
// serialization failures surface before anything touches the wire.
func NewRequest(id *RequestID, method string, params any) (*Request, error) {
	paramBytes, err := json.Marshal(params)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal params: %w", err)
	}

	return &Request{
		JSONRPCVersion: ProtocolVersion,
		Method:         method,
		Params:         paramBytes,
		ID:             id,
	}, nil
}

// Response represents an incoming JSON-RPC response.
type Response struct {
	JSONRPCVersion string          `json:"jsonrpc"`
	Result         json.RawMessage `json:"result,omitempty"`
	Error          *Error          `json:"error,omitempty"`
	ID             *RequestID      `json:"id,omitempty"`
}

// Error is a JSON-RPC error object. Data is kept raw so callers can attempt
// structured decoding of server-specific diagnostic payloads.
type Error struct {
	Code    ErrorCode       `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data,omitempty"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("jsonrpc error %d: %s", e.Code, e.Message)
}

// UnmarshalJSON implements custom JSON unmarshaling for Response.
// It enforces JSON-RPC 2.0 semantics and validates message structure.
func (r *Response) UnmarshalJSON(data []byte) error {
	type rawResponse struct {
		JSONRPCVersion string          `json:"jsonrpc"`
		Result         json.RawMessage `json:"result,omitempty"`
		Error          *Error          `json:"error,omitempty"`
		ID             *RequestID      `json:"id,omitempty"`
	}

	var raw rawResponse
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	if raw.JSONRPCVersion != ProtocolVersion {
		return fmt.Errorf("invalid JSON-RPC version: expected %q, got %q", ProtocolVersion, raw.JSONRPCVersion)
	}

	hasResult := len(raw.Result) > 0
	hasError := raw.Error != nil

	if hasResult && hasError {
		return fmt.Errorf("response message cannot have both result and error fields")
	}
	if !hasResult && !hasError {
		return fmt.Errorf("response message must have either result or error field")
	}

	r.JSONRPCVersion = raw.JSONRPCVersion
	r.Result = raw.Result
	r.Error = raw.Error
	r.ID = raw.ID

	return nil
}
