package connection

import (
	"errors"
	"net"
)

// DefaultErrorFilter retries dial failures reported by the network stack, such as a refused
// connection while the server is still starting.
func DefaultErrorFilter(err error) error {
	var netError *net.OpError

	if errors.As(err, &netError) {
		return err
	}

	return nil
}
