// Package httpjson implements the RPC channel over HTTP: one JSON-RPC
// request per POST to a single endpoint. It is deliberately dumb about the
// cryptol-remote-api protocol — it knows nothing about session tokens or
// envelopes — so that the session layer above it can be exercised against
// fake channels in tests.
//
// Transport failures (connection refused, timeouts, malformed frames) are
// returned as ordinary wrapped errors. Application-level failures reported
// by the server come back as a *jsonrpc.Error with the raw diagnostic data
// blob intact, so the caller can attempt structured decoding. Keeping those
// two classes distinguishable is the channel's one real job: the original
// client this package descends from lost the server's diagnostics inside
// its transport library and could never get them back.
package httpjson
