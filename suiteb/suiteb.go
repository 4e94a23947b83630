// Package suiteb is a typed facade over the Cryptol SuiteB module: it loads
// the module, calls a digest function, and decodes the generic answer into a
// concrete digest value. Each wrapper is a pure transformation layered on
// the client's generic Call; no state is shared between wrappers.
package suiteb

import (
	"context"
	"encoding/json"
	"fmt"

	cryptolclient "github.com/weaversa/cryptol-client-go"
)

// ModuleName is the Cryptol module defining the SHA-2 family.
const ModuleName = "SuiteB"

// DigestValue is the value shape SuiteB digest functions return. For
// example:
//
//	{"data":"5d13bb39...","encoding":"hex","expression":"bits","width":384}
type DigestValue struct {
	Data       string `json:"data"`
	Encoding   string `json:"encoding"`
	Expression string `json:"expression"`
	Width      int64  `json:"width"`
}

// Hex renders the digest as a 0x-prefixed hex string.
func (v DigestValue) Hex() string {
	return "0x" + v.Data
}

// SHA256 hashes the given Cryptol expression, like "0x1234" or
// "(join \"Hello World\")", returning the 0x-prefixed hex digest.
func SHA256(ctx context.Context, client *cryptolclient.Client, expr string) (string, error) {
	return digest(ctx, client, "sha256", expr)
}

// SHA384 hashes the given Cryptol expression, returning the 0x-prefixed hex
// digest.
func SHA384(ctx context.Context, client *cryptolclient.Client, expr string) (string, error) {
	return digest(ctx, client, "sha384", expr)
}

// SHA512 hashes the given Cryptol expression, returning the 0x-prefixed hex
// digest.
func SHA512(ctx context.Context, client *cryptolclient.Client, expr string) (string, error) {
	return digest(ctx, client, "sha512", expr)
}

func digest(ctx context.Context, client *cryptolclient.Client, function, expr string) (string, error) {
	if err := client.LoadModule(ctx, ModuleName); err != nil {
		return "", err
	}

	answer, err := client.Call(ctx, function, expr)
	if err != nil {
		return "", err
	}

	value, err := DecodeDigest(answer.Value)
	if err != nil {
		return "", err
	}
	return value.Hex(), nil
}

// DecodeDigest decodes a raw answer value into a DigestValue, rejecting
// shapes that do not carry a hex-encoded digest.
func DecodeDigest(raw json.RawMessage) (DigestValue, error) {
	var value DigestValue
	if err := json.Unmarshal(raw, &value); err != nil {
		return DigestValue{}, &cryptolclient.DecodeError{What: "digest value", Err: err}
	}
	if value.Encoding != "hex" {
		return DigestValue{}, &cryptolclient.DecodeError{
			What: "digest value",
			Err:  fmt.Errorf("unexpected encoding %q, want \"hex\"", value.Encoding),
		}
	}
	return value, nil
}
