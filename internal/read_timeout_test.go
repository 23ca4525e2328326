package internal_test

import (
	"bytes"
	"errors"
	"net"
	"os"
	"time"
)

type TestTimeoutReader struct {
	buf       bytes.Buffer
	readZero  bool
	chunk     int
	deadlines int
}

func (tr *TestTimeoutReader) Read(p []byte) (n int, err error) {
	if tr.readZero {
		return tr.readZeroBytesTimeout()
	}

	return tr.readBytesPortion(p)
}

func (tr *TestTimeoutReader) readZeroBytesTimeout() (n int, err error) {
	return 0, &net.OpError{Op: "read", Err: os.ErrDeadlineExceeded}
}

func (tr *TestTimeoutReader) readBytesPortion(p []byte) (n int, err error) {
	if tr.chunk > 0 && len(p) > tr.chunk {
		p = p[:tr.chunk]
	}

	n, err = tr.buf.Read(p)
	if err != nil {
		return n, err
	}

	return n, &net.OpError{Op: "read", Err: os.ErrDeadlineExceeded}
}

func (tr *TestTimeoutReader) Write(p []byte) (n int, err error) {
	return tr.buf.Write(p)
}

func (tr *TestTimeoutReader) SetReadDeadline(t time.Time) error {
	tr.deadlines++

	return nil
}

type failingDeadliner struct{}

func (fd failingDeadliner) Read(p []byte) (int, error) { return 0, errors.New("unreachable") }

func (fd failingDeadliner) SetReadDeadline(t time.Time) error { return net.ErrClosed }
