package connection

import (
	"context"
	"net"
	"sync"
	"time"
)

type TCPConnection struct {
	dialer         net.Dialer
	underlyingConn net.Conn
	mu             sync.RWMutex
}

func NewTCPConnection(dialer net.Dialer) *TCPConnection {
	c := new(TCPConnection)
	c.dialer = dialer

	return c
}

func (tc *TCPConnection) conn() (net.Conn, error) {
	tc.mu.RLock()
	defer tc.mu.RUnlock()

	if tc.underlyingConn == nil {
		return nil, ErrNotConnected
	}

	return tc.underlyingConn, nil
}

// Read reads data from the connection.
func (tc *TCPConnection) Read(b []byte) (n int, err error) {
	c, err := tc.conn()
	if err != nil {
		return 0, err
	}

	return c.Read(b)
}

// Write writes data to the connection.
func (tc *TCPConnection) Write(b []byte) (n int, err error) {
	c, err := tc.conn()
	if err != nil {
		return 0, err
	}

	return c.Write(b)
}

// Close closes the connection.
// Any blocked Read or Write operations will be unblocked and return errors.
func (tc *TCPConnection) Close() error {
	c, err := tc.conn()
	if err != nil {
		return err
	}

	return c.Close()
}

// CloseWrite shuts down the writing side. The peer reads io.EOF while this side can still read.
func (tc *TCPConnection) CloseWrite() error {
	c, err := tc.conn()
	if err != nil {
		return err
	}

	hc, ok := c.(interface{ CloseWrite() error })
	if !ok {
		return ErrHalfCloseUnsupported
	}

	return hc.CloseWrite()
}

// LocalAddr returns the local network address, if known.
func (tc *TCPConnection) LocalAddr() net.Addr {
	c, err := tc.conn()
	if err != nil {
		return nil
	}

	return c.LocalAddr()
}

// RemoteAddr returns the remote network address, if known.
func (tc *TCPConnection) RemoteAddr() net.Addr {
	c, err := tc.conn()
	if err != nil {
		return nil
	}

	return c.RemoteAddr()
}

func (tc *TCPConnection) SetDeadline(t time.Time) error {
	c, err := tc.conn()
	if err != nil {
		return err
	}

	return c.SetDeadline(t)
}

func (tc *TCPConnection) SetReadDeadline(t time.Time) error {
	c, err := tc.conn()
	if err != nil {
		return err
	}

	return c.SetReadDeadline(t)
}

func (tc *TCPConnection) SetWriteDeadline(t time.Time) error {
	c, err := tc.conn()
	if err != nil {
		return err
	}

	return c.SetWriteDeadline(t)
}

// Establish connection with remote side.
func (tc *TCPConnection) Connect(ctx context.Context, addr net.Addr) error {
	tc.mu.Lock()
	defer tc.mu.Unlock()

	if tc.underlyingConn != nil {
		return ErrAlreadyConnected
	}

	conn, err := tc.dialer.DialContext(ctx, "tcp", addr.String())
	if err != nil {
		return err
	}

	tc.underlyingConn = conn

	return nil
}
