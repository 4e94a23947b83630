package cryptol

import "encoding/json"

// Envelope is the uniform reply wrapper returned by every cryptol-remote-api
// method. For example:
//
//	{"answer":[],"state":"a4909ccf-3ef9-45cc-913b-57e58da75788","stderr":"","stdout":""}
//
// Answer is absent (or empty) for methods with no result, such as
// "load module".
type Envelope struct {
	Answer json.RawMessage `json:"answer,omitempty"`
	State  string          `json:"state"`
	Stdout string          `json:"stdout"`
	Stderr string          `json:"stderr"`
}

// Answer is the application-level result of a "call" RPC. Value's shape
// depends entirely on the invoked function and is decoded by typed facades.
type Answer struct {
	Type       json.RawMessage `json:"type"`
	TypeString string          `json:"type string"`
	Value      json.RawMessage `json:"value"`
}

// ErrorPayload is the structured failure blob cryptol-remote-api attaches to
// JSON-RPC errors. Example:
//
//	{"code":20500,
//	 "data":{"data":{"path":["//.cryptol","/usr/local/share/cryptol"],"source":"Floataboat","warnings":[]},
//	         "stderr":"","stdout":""},
//	 "message":"[error] Could not find module NoModule\n..."}
//
// Not every failure carries the full blob; consumers must tolerate an empty
// Data when only the flat message survived the transport.
type ErrorPayload struct {
	Code    int64     `json:"code"`
	Message string    `json:"message"`
	Data    ErrorData `json:"data"`
}

// ErrorData carries the output streams captured during the failed request
// plus method-specific detail.
type ErrorData struct {
	Data   ErrorDetail `json:"data"`
	Stderr string      `json:"stderr"`
	Stdout string      `json:"stdout"`
}

// ErrorDetail holds module-resolution diagnostics: the search path the server
// consulted, the source tag of the failing request, and any warnings raised
// before the failure.
type ErrorDetail struct {
	Path     []string          `json:"path"`
	Source   string            `json:"source"`
	Warnings []json.RawMessage `json:"warnings"`
}
