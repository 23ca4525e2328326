package internal

import (
	"errors"
	"net"
	"os"
)

func IsTimeoutError(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, os.ErrDeadlineExceeded) {
		return true
	}

	var e net.Error

	return errors.As(err, &e) && e.Timeout()
}

// IsClosedError reports whether err was caused by use of a closed listener or connection.
func IsClosedError(err error) bool {
	return err != nil && errors.Is(err, net.ErrClosed)
}
