// Package cryptolclient is a client for cryptol-remote-api, the JSON-RPC
// server exposing the Cryptol evaluator. The server is stateless between
// requests: every reply carries an opaque state token, and every request must
// present the token from the previous reply or the evaluation context
// (loaded modules, bound names) is lost. This package owns that threading.
//
// The lifecycle is connect, load a module, call functions:
//
//	client, err := cryptolclient.ConnectFromEnv(ctx)
//	if err != nil { ... }
//	if err := client.LoadModule(ctx, "SuiteB"); err != nil { ... }
//	answer, err := client.Call(ctx, "sha384", "0x1234")
//
// Connect bootstraps the session by loading the Cryptol prelude with a null
// state, and seeds the client with the token the server returns. Each
// subsequent successful operation replaces the token with the one from its
// reply; failed operations leave the token untouched, so a session remains
// usable after a rejected call.
//
// A Client supports exactly one in-flight request at a time. Two goroutines
// sharing a Client — or two Clients cloned from the same token — would race
// the same server-side evaluation context; don't do that.
//
// Failures are typed: ConnectionError, ModuleNotFoundError, EvaluationError,
// RPCError and DecodeError, all matchable with errors.As. Where the server
// attached structured diagnostics (search paths, captured stderr), they are
// decoded into the error's Payload field.
//
// Typed result decoding lives in per-module facade packages such as suiteb;
// this package never interprets an answer's value.
package cryptolclient
