package jsonrpc

import (
	"encoding/json"
	"testing"
)

func TestResponseUnmarshalValidates(t *testing.T) {
	cases := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{"result", `{"jsonrpc":"2.0","result":{"state":"x"},"id":"1"}`, false},
		{"error", `{"jsonrpc":"2.0","error":{"code":20500,"message":"nope"},"id":"1"}`, false},
		{"both result and error", `{"jsonrpc":"2.0","result":{},"error":{"code":1,"message":"m"},"id":"1"}`, true},
		{"neither result nor error", `{"jsonrpc":"2.0","id":"1"}`, true},
		{"wrong version", `{"jsonrpc":"1.0","result":{},"id":"1"}`, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var res Response
			err := json.Unmarshal([]byte(tc.body), &res)
			if tc.wantErr && err == nil {
				t.Fatal("expected an error")
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestRequestIDRoundTrip(t *testing.T) {
	id := NewRequestID("req-42")
	data, err := json.Marshal(id)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	var echoed RequestID
	if err := json.Unmarshal(data, &echoed); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if !id.Equal(&echoed) {
		t.Fatalf("echoed id %q does not equal original %q", echoed.String(), id.String())
	}
}

func TestRequestIDNumericEcho(t *testing.T) {
	var echoed RequestID
	if err := json.Unmarshal([]byte("7"), &echoed); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if echoed.String() != "7" {
		t.Fatalf("String() = %q, want \"7\"", echoed.String())
	}
	if !echoed.Equal(NewRequestID(7)) {
		t.Fatal("numeric echo should match the original numeric id")
	}
}

func TestErrorDataStaysRaw(t *testing.T) {
	body := `{"jsonrpc":"2.0","error":{"code":20500,"message":"m","data":{"data":{"path":["p"],"source":"s","warnings":[]},"stderr":"","stdout":""}},"id":"1"}`
	var res Response
	if err := json.Unmarshal([]byte(body), &res); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if res.Error == nil || len(res.Error.Data) == 0 {
		t.Fatal("expected the error data blob to be preserved")
	}
}
