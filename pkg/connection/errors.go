package connection

import (
	"errors"

	echonet "github.com/andyollylarkin/echo-net"
)

var (
	ErrNotConnected         = echonet.ErrNotConnected
	ErrAlreadyConnected     = echonet.ErrAlreadyConnected
	ErrInvalidAddress       = errors.New("invalid address")
	ErrHalfCloseUnsupported = errors.New("half close unsupported")
)
