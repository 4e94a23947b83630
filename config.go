package cryptolclient

import (
	"time"

	"github.com/joeshaw/envdecode"
)

// Config for a cryptol-remote-api connection. Defaults can be loaded via
// envdecode.
type Config struct {
	// ServerURL of the cryptol-remote-api endpoint, like
	// "http://localhost:8080". ENV: CRYPTOL_SERVER_URL
	ServerURL string `env:"CRYPTOL_SERVER_URL"`
	// RequestTimeout bounds a single RPC. Remote evaluation can run for
	// minutes; keep this generous. ENV: CRYPTOL_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"CRYPTOL_REQUEST_TIMEOUT,default=1h"`
}

// ConfigFromEnv builds a Config using envdecode to populate it.
func ConfigFromEnv() Config {
	var cfg Config
	// Use envdecode; defaults are provided via struct tags. A missing
	// server URL is reported by Connect, not here.
	_ = envdecode.Decode(&cfg)
	return cfg
}
