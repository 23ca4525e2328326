package connection

import (
	"fmt"
	"net"
	"strconv"

	echonet "github.com/andyollylarkin/echo-net"
)

// TCPListener is the bound endpoint the echo server accepts from.
type TCPListener struct {
	l net.Listener
}

// Bind reserves addr ("host:port", host may be empty) for listening.
// Every failure is returned as *echonet.BindError.
func Bind(addr string) (*TCPListener, error) {
	if err := validateAddr(addr); err != nil {
		return nil, &echonet.BindError{Addr: addr, Err: err}
	}

	l, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, &echonet.BindError{Addr: addr, Err: err}
	}

	return NewTCPListener(l), nil
}

func NewTCPListener(l net.Listener) *TCPListener {
	tl := new(TCPListener)
	tl.l = l

	return tl
}

func validateAddr(addr string) error {
	_, port, err := net.SplitHostPort(addr)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidAddress, err)
	}

	if _, err = strconv.ParseUint(port, 10, 16); err != nil {
		return fmt.Errorf("%w: port %q", ErrInvalidAddress, port)
	}

	return nil
}

// Accept waits for and returns the next connection to the listener.
func (tl *TCPListener) Accept() (echonet.Connection, error) {
	conn, err := tl.l.Accept()
	if err != nil {
		return nil, err
	}

	return &TCPConnection{underlyingConn: conn}, nil
}

// Close closes the listener.
// Any blocked Accept operations will be unblocked and return errors.
func (tl *TCPListener) Close() error {
	return tl.l.Close()
}

// Addr returns the listener's network address.
func (tl *TCPListener) Addr() net.Addr {
	return tl.l.Addr()
}
