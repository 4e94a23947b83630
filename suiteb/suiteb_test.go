package suiteb_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	cryptolclient "github.com/weaversa/cryptol-client-go"
	"github.com/weaversa/cryptol-client-go/channeltest"
	"github.com/weaversa/cryptol-client-go/suiteb"
)

const connectEnvelope = `{"answer":[],"state":"token-1","stderr":"","stdout":""}`
const loadEnvelope = `{"answer":[],"state":"token-2","stderr":"","stdout":""}`
const sha384Envelope = `{"answer":{"type":{},"type string":"[384]","value":{"data":"5d13bb39a64c4ee16e0e8d2e1c13ec4731ff1ac69652c072d0cdc355eb9e0ec41b08aef3dd6fe0541e9fa9e3dcc80f7b","encoding":"hex","expression":"bits","width":384}},"state":"fa57d2ec","stderr":"","stdout":""}`

func connect(t *testing.T, ch *channeltest.Channel) *cryptolclient.Client {
	t.Helper()
	client, err := cryptolclient.Connect(context.Background(), cryptolclient.Config{}, cryptolclient.WithChannel(ch))
	if err != nil {
		t.Fatalf("Connect failed: %v", err)
	}
	return client
}

func TestSHA384FormatsDigest(t *testing.T) {
	ch := channeltest.New(
		channeltest.OK(connectEnvelope),
		channeltest.OK(loadEnvelope),
		channeltest.OK(sha384Envelope),
	)
	client := connect(t, ch)

	digest, err := suiteb.SHA384(context.Background(), client, "0x0001")
	if err != nil {
		t.Fatalf("SHA384 failed: %v", err)
	}
	const want = "0x5d13bb39a64c4ee16e0e8d2e1c13ec4731ff1ac69652c072d0cdc355eb9e0ec41b08aef3dd6fe0541e9fa9e3dcc80f7b"
	if digest != want {
		t.Fatalf("digest = %q, want %q", digest, want)
	}

	calls := ch.Calls()
	if len(calls) != 3 {
		t.Fatalf("expected 3 calls (bootstrap, load, call), got %d", len(calls))
	}
	if calls[1].Method != "load module" || calls[2].Method != "call" {
		t.Fatalf("unexpected call sequence: %q then %q", calls[1].Method, calls[2].Method)
	}
}

func TestSHA384RejectsArrayValue(t *testing.T) {
	// A call whose answer value is an array instead of a digest object must
	// surface as a decode failure, not a panic or a bogus digest.
	const arrayValueEnvelope = `{"answer":{"type":{},"type string":"[384]","value":[]},"state":"token-3","stderr":"","stdout":""}`
	ch := channeltest.New(
		channeltest.OK(connectEnvelope),
		channeltest.OK(loadEnvelope),
		channeltest.OK(arrayValueEnvelope),
	)
	client := connect(t, ch)

	_, err := suiteb.SHA384(context.Background(), client, "0x0001")
	var decErr *cryptolclient.DecodeError
	if !errors.As(err, &decErr) {
		t.Fatalf("expected *DecodeError, got %T: %v", err, err)
	}
}

func TestDecodeDigestRejectsNonHex(t *testing.T) {
	raw := json.RawMessage(`{"data":"ffff","encoding":"base64","expression":"bits","width":16}`)
	_, err := suiteb.DecodeDigest(raw)
	var decErr *cryptolclient.DecodeError
	if !errors.As(err, &decErr) {
		t.Fatalf("expected *DecodeError, got %T: %v", err, err)
	}
}

func TestDigestValueHex(t *testing.T) {
	v := suiteb.DigestValue{Data: "ab12", Encoding: "hex", Expression: "bits", Width: 16}
	if got := v.Hex(); got != "0xab12" {
		t.Fatalf("Hex() = %q, want \"0xab12\"", got)
	}
}
