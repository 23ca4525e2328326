package echonet

import (
	"errors"
	"fmt"
	"net"
	"os"
)

type InvalidConfigError struct {
	InvalidField  string
	InvalidReason string
}

func (ic *InvalidConfigError) Error() string {
	return fmt.Sprintf("invalid field: %s. reason: %s", ic.InvalidField, ic.InvalidReason)
}

// BindError is returned when the listening endpoint cannot be created.
type BindError struct {
	Addr string
	Err  error
}

func (be *BindError) Error() string {
	return fmt.Sprintf("bind %s: %s", be.Addr, be.Err)
}

func (be *BindError) Unwrap() error { return be.Err }

// AcceptError terminates the accept loop.
type AcceptError struct {
	Err error
}

func (ae *AcceptError) Error() string {
	return fmt.Sprintf("accept failed: %s", ae.Err)
}

func (ae *AcceptError) Unwrap() error { return ae.Err }

// ConnectionReadError is scoped to one connection and never reaches the accept loop.
type ConnectionReadError struct {
	RemoteAddr net.Addr
	Err        error
}

func (re *ConnectionReadError) Error() string {
	return fmt.Sprintf("failed to read from %s: %s", addrString(re.RemoteAddr), re.Err)
}

func (re *ConnectionReadError) Unwrap() error { return re.Err }

// ConnectionWriteError is scoped to one connection and never reaches the accept loop.
type ConnectionWriteError struct {
	RemoteAddr net.Addr
	Err        error
}

func (we *ConnectionWriteError) Error() string {
	return fmt.Sprintf("failed to write to %s: %s", addrString(we.RemoteAddr), we.Err)
}

func (we *ConnectionWriteError) Unwrap() error { return we.Err }

func addrString(addr net.Addr) string {
	if addr == nil {
		return "unknown peer"
	}

	return addr.String()
}

var (
	ErrServerStarted    = errors.New("server already started")
	ErrListenerNotSet   = errors.New("listener not set")
	ErrIOTimeout        = os.ErrDeadlineExceeded
	ErrNotConnected     = errors.New("not connected")
	ErrAlreadyConnected = errors.New("already connected")
)
