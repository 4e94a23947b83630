package cryptol

// Method names understood by cryptol-remote-api. The names contain spaces;
// using the constants avoids typographical mistakes.
const (
	MethodLoadModule = "load module"
	MethodCall       = "call"
)

// PreludeModule is the module loaded to bootstrap a fresh session.
const PreludeModule = "Cryptol"

// LoadModuleParams are the parameters of a "load module" request. State is a
// pointer so that the bootstrap request serializes as an explicit
// {"state":null}, which is how a client asks the server for a fresh session.
type LoadModuleParams struct {
	State      *string `json:"state"`
	ModuleName string  `json:"module name"`
}

// CallParams are the parameters of a "call" request. Arguments are opaque to
// the client: strings pass through as Cryptol expression text, anything else
// is serialized as a JSON literal for the server to interpret.
type CallParams struct {
	State     string `json:"state"`
	Function  string `json:"function"`
	Arguments []any  `json:"arguments"`
}
