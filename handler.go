package echonet

import (
	"errors"
	"io"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/andyollylarkin/echo-net/internal"
)

// maxEmptyReads bounds consecutive reads returning no data and no error.
const maxEmptyReads = 100

// Handler echoes the bytes of one connection back to the same connection.
type Handler struct {
	bufferSize int
	logger     watermill.LoggerAdapter
}

// NewHandler returns a Handler reading bufferSize bytes at a time. A nil logger reports to stderr.
func NewHandler(bufferSize int, logger watermill.LoggerAdapter) *Handler {
	h := new(Handler)
	h.bufferSize = bufferSize
	h.logger = logger

	if h.bufferSize <= 0 {
		h.bufferSize = DefaultBufferSize
	}

	if h.logger == nil {
		h.logger = watermill.NewStdLogger(false, false)
	}

	return h
}

// Handle takes ownership of conn and echoes everything it reads until the peer closes its
// writing side or an i/o error occurs. conn is closed before Handle returns.
//
// An orderly close by the peer returns nil. A failed read returns *ConnectionReadError and a
// failed write returns *ConnectionWriteError; both are logged before returning.
func (h *Handler) Handle(conn Connection) error {
	log := h.logger.With(watermill.LogFields{
		"conn_id":     watermill.NewShortUUID(),
		"remote_addr": addrString(conn.RemoteAddr()),
	})

	defer func() {
		if err := conn.Close(); err != nil && !internal.IsClosedError(err) {
			log.Debug("Close connection failed", watermill.LogFields{"error": err.Error()})
		}
	}()

	log.Debug("Connection accepted", nil)

	buf := make([]byte, h.bufferSize)
	empty := 0

	for {
		n, rErr := conn.Read(buf)

		// bytes returned together with an error are echoed before the error is handled
		if n > 0 {
			if err := writeAll(conn, buf[:n]); err != nil {
				log.Error("Failed to write to connection", err, watermill.LogFields{"op": "write"})

				return &ConnectionWriteError{RemoteAddr: conn.RemoteAddr(), Err: err}
			}

			log.Trace("Chunk echoed", watermill.LogFields{"bytes": n})
		}

		if rErr == nil {
			if n > 0 {
				empty = 0

				continue
			}

			if empty++; empty < maxEmptyReads {
				continue
			}

			rErr = io.ErrNoProgress
		}

		if errors.Is(rErr, io.EOF) {
			log.Debug("Connection closed by peer", nil)

			return nil
		}

		log.Error("Failed to read from connection", rErr, watermill.LogFields{"op": "read"})

		return &ConnectionReadError{RemoteAddr: conn.RemoteAddr(), Err: rErr}
	}
}

// writeAll does not return until every byte of b is written or w fails.
func writeAll(w io.Writer, b []byte) error {
	for len(b) > 0 {
		n, err := w.Write(b)
		if err != nil {
			return err
		}

		if n == 0 {
			return io.ErrShortWrite
		}

		b = b[n:]
	}

	return nil
}
