package echonet

import (
	"github.com/ThreeDotsLabs/watermill"
	"github.com/sethvargo/go-retry"
)

// DefaultBufferSize is the per-connection read buffer used when none is configured.
const DefaultBufferSize = 1024

// BackoffFactory returns a fresh backoff policy. go-retry policies keep state between calls,
// so every retried operation asks for a new one.
type BackoffFactory func() retry.Backoff

type ServerConfig struct {
	// BufferSize of every connection's read buffer. Zero means DefaultBufferSize.
	BufferSize int
	// Logger receives connection diagnostics. Nil means a standard logger writing to stderr.
	Logger watermill.LoggerAdapter
	// AcceptBackoff enables retrying accept failures matched by AcceptErrorFilter.
	// When nil every accept failure stops Serve.
	AcceptBackoff BackoffFactory
	// AcceptErrorFilter defaults to DefaultAcceptErrorFilter.
	AcceptErrorFilter ErrorFilter
}

func validateServerConfig(c ServerConfig) error {
	if c.BufferSize < 0 {
		return &InvalidConfigError{InvalidField: "BufferSize", InvalidReason: "cant be negative"}
	}

	if c.AcceptErrorFilter != nil && c.AcceptBackoff == nil {
		return &InvalidConfigError{InvalidField: "AcceptBackoff", InvalidReason: "required when AcceptErrorFilter is set"}
	}

	return nil
}
