package internal

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"
)

type TimeoutReader struct {
	r       ReadDeadliner
	timeout time.Duration
}

// Return reader that reads from r with every read bounded by timeout. Each read that returns
// data extends the deadline, so only a pause longer than timeout fails.
// A zero timeout disables deadlines.
func NewTimeoutReader(r ReadDeadliner, timeout time.Duration) *TimeoutReader {
	tr := new(TimeoutReader)
	tr.r = r
	tr.timeout = timeout

	return tr
}

// ReadFull reads exactly len(p) bytes. A timeout with nothing read since the last extension
// returns an error wrapping os.ErrDeadlineExceeded; EOF in the middle of p returns
// io.ErrUnexpectedEOF.
func (tr *TimeoutReader) ReadFull(p []byte) (int, error) {
	if err := tr.extendDeadline(); err != nil {
		return 0, err
	}

	var read int

	for read < len(p) {
		n, err := tr.r.Read(p[read:])
		read += n

		if read == len(p) {
			break
		}

		if err != nil && !IsTimeoutError(err) {
			if errors.Is(err, io.EOF) && read > 0 {
				return read, io.ErrUnexpectedEOF
			}

			return read, err
		}

		if n == 0 {
			if err != nil {
				return read, fmt.Errorf("%w: read %d of %d bytes", os.ErrDeadlineExceeded, read, len(p))
			}

			continue
		}

		if err = tr.extendDeadline(); err != nil {
			return read, err
		}
	}

	return read, nil
}

func (tr *TimeoutReader) extendDeadline() error {
	if tr.timeout <= 0 {
		return tr.r.SetReadDeadline(time.Time{})
	}

	return tr.r.SetReadDeadline(time.Now().Add(tr.timeout))
}
