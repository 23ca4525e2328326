package echonet

import (
	"errors"
	"syscall"

	"github.com/andyollylarkin/echo-net/internal"
)

// ErrorFilter match the errors at which you want to retry the operation. If err does not match the error you want,
// return nil.
type ErrorFilter func(err error) error

// DefaultAcceptErrorFilter treats accept failures caused by a single misbehaving peer or by
// temporary descriptor exhaustion as retryable. A closed listener is never retryable.
func DefaultAcceptErrorFilter(err error) error {
	if internal.IsClosedError(err) {
		return nil
	}

	switch {
	case internal.IsTimeoutError(err),
		errors.Is(err, syscall.ECONNABORTED),
		errors.Is(err, syscall.ECONNRESET),
		errors.Is(err, syscall.EMFILE),
		errors.Is(err, syscall.ENFILE):
		return err
	}

	return nil
}
