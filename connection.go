package echonet

import (
	"context"
	"net"
)

// Connection is a duplex byte stream with a single remote peer.
type Connection interface {
	net.Conn
	// Establish connection with remote side.
	Connect(ctx context.Context, addr net.Addr) error
	// CloseWrite shuts down the writing side of the connection.
	CloseWrite() error
}
