package cryptolclient

import (
	"fmt"

	"github.com/weaversa/cryptol-client-go/cryptol"
)

// ConnectionError indicates the session could not be established: the
// endpoint is unset or unreachable, or the bootstrap prelude load failed.
type ConnectionError struct {
	Endpoint string
	Err      error
}

func (e *ConnectionError) Error() string {
	if e.Endpoint == "" {
		return "cryptol server endpoint is not configured (set CRYPTOL_SERVER_URL)"
	}
	return fmt.Sprintf("failed to connect to cryptol-remote-api at %s: %v", e.Endpoint, e.Err)
}

func (e *ConnectionError) Unwrap() error { return e.Err }

// ModuleNotFoundError indicates the server rejected a "load module" request.
// Payload carries the server's structured diagnostics (search path, source
// tag) when the transport surfaced them; it is nil otherwise.
type ModuleNotFoundError struct {
	Module  string
	Payload *cryptol.ErrorPayload
	Err     error
}

func (e *ModuleNotFoundError) Error() string {
	return fmt.Sprintf("failed to load module %q: %v", e.Module, e.Err)
}

func (e *ModuleNotFoundError) Unwrap() error { return e.Err }

// EvaluationError indicates the server rejected a "call" request: unknown
// function, or ill-typed/ill-formed arguments. Payload carries structured
// diagnostics when available.
type EvaluationError struct {
	Function string
	Payload  *cryptol.ErrorPayload
	Err      error
}

func (e *EvaluationError) Error() string {
	return fmt.Sprintf("call to %q failed: %v", e.Function, e.Err)
}

func (e *EvaluationError) Unwrap() error { return e.Err }

// RPCError indicates a failure below the application protocol: the transport
// failed, or a reply did not have the envelope shape every cryptol-remote-api
// method guarantees.
type RPCError struct {
	Method string
	Err    error
}

func (e *RPCError) Error() string {
	return fmt.Sprintf("rpc %q failed: %v", e.Method, e.Err)
}

func (e *RPCError) Unwrap() error { return e.Err }

// DecodeError indicates a successful reply whose payload does not match the
// shape the caller expected — typically a "call" against a function whose
// remote signature differs from what a typed facade assumes.
type DecodeError struct {
	What string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode %s: %v", e.What, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }
