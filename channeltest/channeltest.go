// Package channeltest provides a scripted in-memory Channel for exercising
// the session client without a running cryptol-remote-api. Each incoming
// request consumes the next scripted reply in order and is recorded, raw
// params included, so tests can assert on the exact wire shape the client
// produced.
package channeltest

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/weaversa/cryptol-client-go/internal/jsonrpc"
)

// Call is one recorded request.
type Call struct {
	Method string
	Params json.RawMessage
}

// Reply is one scripted response: either a raw result or an error.
type Reply struct {
	Result json.RawMessage
	Err    error
}

// OK scripts a successful reply with the given raw JSON result.
func OK(result string) Reply {
	return Reply{Result: json.RawMessage(result)}
}

// Fail scripts a transport-level failure.
func Fail(err error) Reply {
	return Reply{Err: err}
}

// ServerError scripts an application-level failure as the server would
// report it: a JSON-RPC error object with an optional raw diagnostic blob.
func ServerError(code int, message string, data string) Reply {
	e := &jsonrpc.Error{Code: jsonrpc.ErrorCode(code), Message: message}
	if data != "" {
		e.Data = json.RawMessage(data)
	}
	return Reply{Err: e}
}

// Channel replays a fixed script of replies and records every request.
type Channel struct {
	mu      sync.Mutex
	calls   []Call
	replies []Reply
}

// New builds a channel that will serve the given replies in order.
func New(replies ...Reply) *Channel {
	return &Channel{replies: replies}
}

// Request implements the client's Channel interface.
func (c *Channel) Request(ctx context.Context, method string, params any) (json.RawMessage, error) {
	raw, err := json.Marshal(params)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.calls = append(c.calls, Call{Method: method, Params: raw})
	if len(c.replies) == 0 {
		c.mu.Unlock()
		return nil, fmt.Errorf("channeltest: unexpected request %q (script exhausted)", method)
	}
	reply := c.replies[0]
	c.replies = c.replies[1:]
	c.mu.Unlock()

	if reply.Err != nil {
		return nil, reply.Err
	}
	return reply.Result, nil
}

// Calls returns the requests recorded so far.
func (c *Channel) Calls() []Call {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]Call(nil), c.calls...)
}
