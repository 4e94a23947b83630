// Package cryptol contains the wire data types and constants of the
// cryptol-remote-api protocol. It mirrors the JSON representation produced by
// the server while keeping the surface Go-friendly (exported structs with
// json tags, string constants for method names).
//
// The package is intentionally free of transport logic: the HTTP channel and
// the session client import these types but implement their own framing,
// state threading and error classification.
//
// # Envelope
//
// Every successful RPC, regardless of method, yields an Envelope. The server
// is stateless between requests; the Envelope's State field is the opaque
// token that threads the evaluation context (loaded modules, bound names)
// into the next request. A client that discards it loses its session.
//
// # Answer
//
// Only the "call" method produces an application-level Answer. Its Value
// field is left raw: the shape is a contract between the caller and the
// specific Cryptol function invoked, so decoding belongs to typed facades
// (see the suiteb package), not to this layer.
package cryptol
