package echonet

import (
	"context"
	"sync/atomic"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/andyollylarkin/echo-net/internal"
	"github.com/sethvargo/go-retry"
)

// Server runs the accept loop and hands every accepted connection to its own Handler goroutine.
type Server struct {
	handler       *Handler
	logger        watermill.LoggerAdapter
	acceptBackoff BackoffFactory
	errorFilter   ErrorFilter
	started       atomic.Bool
}

func NewServer(config ServerConfig) (*Server, error) {
	if err := validateServerConfig(config); err != nil {
		return nil, err
	}

	s := new(Server)
	s.logger = config.Logger

	if s.logger == nil {
		s.logger = watermill.NewStdLogger(false, false)
	}

	s.handler = NewHandler(config.BufferSize, s.logger)
	s.acceptBackoff = config.AcceptBackoff
	s.errorFilter = config.AcceptErrorFilter

	if s.errorFilter == nil {
		s.errorFilter = DefaultAcceptErrorFilter
	}

	return s, nil
}

// Serve accepts connections from l until accepting fails. Every connection is echoed in a new
// goroutine that Serve never waits for.
//
// Serve always returns a non-nil error: *AcceptError when the accept loop stops (closing l makes
// it wrap net.ErrClosed), ErrServerStarted when called more than once.
func (s *Server) Serve(l Listener) error {
	if l == nil {
		return ErrListenerNotSet
	}

	if !s.started.CompareAndSwap(false, true) {
		return ErrServerStarted
	}

	s.logger.Info("Accepting connections", watermill.LogFields{"addr": addrString(l.Addr())})

	for {
		conn, err := s.accept(l)
		if err != nil {
			s.logger.Error("Accept loop stopped", err, watermill.LogFields{"addr": addrString(l.Addr())})

			return &AcceptError{Err: err}
		}

		go s.handler.Handle(conn) //nolint:errcheck // handler reports its own failures
	}
}

func (s *Server) accept(l Listener) (Connection, error) {
	if s.acceptBackoff == nil {
		return l.Accept()
	}

	var conn Connection

	err := retry.Do(context.Background(), s.acceptBackoff(), func(_ context.Context) error {
		c, err := l.Accept()
		if err != nil {
			if s.errorFilter(err) != nil {
				s.logger.Info("Accept failed, retrying", watermill.LogFields{"error": err.Error()})
			}

			return internal.RetryableErrorWrap(s.errorFilter, err)
		}

		conn = c

		return nil
	})

	return conn, err
}
