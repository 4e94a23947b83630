package cryptolclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/weaversa/cryptol-client-go/cryptol"
	"github.com/weaversa/cryptol-client-go/httpjson"
	"github.com/weaversa/cryptol-client-go/internal/jsonrpc"
	"github.com/weaversa/cryptol-client-go/internal/logctx"
)

// Channel is the transport capability the client needs: send one named
// remote procedure with a parameter value, get back the raw result payload.
// Application-level failures reported by the server must be distinguishable
// from transport failures (the httpjson implementation returns them as a
// dedicated error type carrying the server's diagnostic blob).
type Channel interface {
	Request(ctx context.Context, method string, params any) (json.RawMessage, error)
}

var _ Channel = (*httpjson.Channel)(nil)

var errMissingState = errors.New("reply envelope is missing the state token")

// Client is a live session against cryptol-remote-api. It holds the opaque
// state token threading the server-side evaluation context across requests,
// plus the raw answer of the most recent successful operation.
//
// A Client is not safe for concurrent use: one in-flight request at a time.
type Client struct {
	ch  Channel
	log *slog.Logger

	state  string
	answer json.RawMessage
}

// Option configures a Client at connect time.
type Option func(*Client)

// WithLogger sets the logger used by the client and, unless a channel is
// injected, by the HTTP channel it builds.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) { c.log = l }
}

// WithChannel injects a transport, bypassing construction of the HTTP
// channel. The Config's ServerURL is not consulted in that case.
func WithChannel(ch Channel) Option {
	return func(c *Client) { c.ch = ch }
}

// Connect establishes a session: it builds the HTTP channel and asks the
// server to load the Cryptol prelude with a null state, which makes the
// server mint a fresh session token. No network request is attempted when
// the endpoint is not configured.
func Connect(ctx context.Context, cfg Config, opts ...Option) (*Client, error) {
	c := &Client{log: slog.Default()}
	for _, opt := range opts {
		opt(c)
	}
	c.log = slog.New(logctx.Handler{Handler: c.log.Handler()})

	if c.ch == nil {
		if cfg.ServerURL == "" {
			return nil, &ConnectionError{}
		}
		ch, err := httpjson.New(cfg.ServerURL,
			httpjson.WithTimeout(cfg.RequestTimeout),
			httpjson.WithLogger(c.log),
		)
		if err != nil {
			return nil, &ConnectionError{Endpoint: cfg.ServerURL, Err: err}
		}
		c.ch = ch
	}

	c.log.InfoContext(ctx, "client.connect.start", slog.String("endpoint", cfg.ServerURL))

	env, err := c.do(ctx, cryptol.MethodLoadModule, cryptol.LoadModuleParams{
		State:      nil,
		ModuleName: cryptol.PreludeModule,
	})
	if err != nil {
		c.log.ErrorContext(ctx, "client.connect.fail", slog.String("err", err.Error()))
		return nil, &ConnectionError{Endpoint: cfg.ServerURL, Err: err}
	}
	c.commit(env)

	c.log.InfoContext(ctx, "client.connect.ok")
	return c, nil
}

// ConnectFromEnv is Connect with the Config populated from the environment.
func ConnectFromEnv(ctx context.Context, opts ...Option) (*Client, error) {
	return Connect(ctx, ConfigFromEnv(), opts...)
}

// LoadModule makes the named module the session's focus. It may be called
// repeatedly, including for a module that is already loaded, to switch the
// namespace subsequent calls resolve against.
func (c *Client) LoadModule(ctx context.Context, module string) error {
	state := c.state
	env, err := c.do(ctx, cryptol.MethodLoadModule, cryptol.LoadModuleParams{
		State:      &state,
		ModuleName: module,
	})
	if err != nil {
		var srvErr *jsonrpc.Error
		if errors.As(err, &srvErr) {
			c.log.InfoContext(ctx, "client.load_module.rejected", slog.String("module", module))
			return &ModuleNotFoundError{Module: module, Payload: decodeErrorPayload(srvErr), Err: srvErr}
		}
		return rpcFailure(cryptol.MethodLoadModule, err)
	}
	c.commit(env)

	c.log.InfoContext(ctx, "client.load_module.ok", slog.String("module", module))
	return nil
}

// Call invokes a function from the currently loaded module. String arguments
// are Cryptol expression text ("0x1234", "(join \"Hello\")"); other values
// are passed as JSON literals. On success the session token advances and the
// decoded answer is returned.
func (c *Client) Call(ctx context.Context, function string, arguments ...any) (*cryptol.Answer, error) {
	if arguments == nil {
		arguments = []any{}
	}
	env, err := c.do(ctx, cryptol.MethodCall, cryptol.CallParams{
		State:     c.state,
		Function:  function,
		Arguments: arguments,
	})
	if err != nil {
		var srvErr *jsonrpc.Error
		if errors.As(err, &srvErr) {
			c.log.InfoContext(ctx, "client.call.rejected", slog.String("function", function))
			return nil, &EvaluationError{Function: function, Payload: decodeErrorPayload(srvErr), Err: srvErr}
		}
		return nil, rpcFailure(cryptol.MethodCall, err)
	}

	// Decode before committing: a malformed answer must not advance the
	// session past a reply the caller never saw.
	if len(env.Answer) == 0 {
		return nil, &DecodeError{What: "call answer", Err: errors.New("reply envelope has no answer")}
	}
	var answer cryptol.Answer
	if err := json.Unmarshal(env.Answer, &answer); err != nil {
		return nil, &DecodeError{What: "call answer", Err: err}
	}
	c.commit(env)

	c.log.InfoContext(ctx, "client.call.ok",
		slog.String("function", function),
		slog.String("type", answer.TypeString))
	return &answer, nil
}

// State returns the current session token.
func (c *Client) State() string {
	return c.state
}

// LastAnswer returns the raw answer of the most recent successful operation.
func (c *Client) LastAnswer() json.RawMessage {
	return c.answer
}

// do performs one RPC and decodes the uniform reply envelope. It never
// mutates the session; callers commit the envelope only once the whole
// operation has succeeded.
func (c *Client) do(ctx context.Context, method string, params any) (*cryptol.Envelope, error) {
	if c.state != "" {
		ctx = logctx.WithSessionData(ctx, &logctx.SessionData{State: c.state})
	}

	raw, err := c.ch.Request(ctx, method, params)
	if err != nil {
		return nil, err
	}

	var env cryptol.Envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, &RPCError{Method: method, Err: fmt.Errorf("decode envelope: %w", err)}
	}
	if env.State == "" {
		return nil, &RPCError{Method: method, Err: errMissingState}
	}
	return &env, nil
}

// commit adopts a reply envelope as the new session state.
func (c *Client) commit(env *cryptol.Envelope) {
	c.state = env.State
	c.answer = env.Answer
}

func rpcFailure(method string, err error) error {
	var rpcErr *RPCError
	if errors.As(err, &rpcErr) {
		return err
	}
	return &RPCError{Method: method, Err: err}
}

// decodeErrorPayload lifts a JSON-RPC error into the server's structured
// failure shape. The diagnostic data blob is best-effort: some transports
// flatten it away, and the server does not attach it to every failure, so a
// blob that is absent or unrecognizable degrades to the flat message.
func decodeErrorPayload(srvErr *jsonrpc.Error) *cryptol.ErrorPayload {
	payload := &cryptol.ErrorPayload{
		Code:    int64(srvErr.Code),
		Message: srvErr.Message,
	}
	if len(srvErr.Data) > 0 {
		_ = json.Unmarshal(srvErr.Data, &payload.Data)
	}
	return payload
}
