package jsonrpc

// ErrorCode is a JSON-RPC 2.0 error code.
type ErrorCode int

const (
	// ErrorCodeParseError indicates invalid JSON was received by the server.
	ErrorCodeParseError ErrorCode = -32700
	// ErrorCodeInvalidRequest indicates the JSON sent is not a valid Request object.
	ErrorCodeInvalidRequest ErrorCode = -32600
	// ErrorCodeMethodNotFound indicates the method does not exist / is not available.
	ErrorCodeMethodNotFound ErrorCode = -32601
	// ErrorCodeInvalidParams indicates invalid method parameters.
	ErrorCodeInvalidParams ErrorCode = -32602
	// ErrorCodeInternalError indicates an internal JSON-RPC error.
	ErrorCodeInternalError ErrorCode = -32603
)

// cryptol-remote-api reports application-level failures (module resolution,
// type checking, evaluation) with positive codes in the 20000 range.
const serverErrorBase ErrorCode = 20000

// IsServerReported reports whether the code belongs to the server's
// application-level error range rather than the JSON-RPC protocol range.
func (c ErrorCode) IsServerReported() bool {
	return c >= serverErrorBase
}
