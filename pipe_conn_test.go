package echonet_test

import (
	"context"
	"io"
	"net"
	"sync/atomic"
	"time"
)

type PipeConnection struct {
	LeftSide  net.Conn
	RightSide net.Conn
	closed    atomic.Bool
}

func NewPipeConnection() *PipeConnection {
	pc := new(PipeConnection)
	pc.LeftSide, pc.RightSide = net.Pipe()

	return pc
}

func (pc *PipeConnection) RemoteSideConn() net.Conn {
	return pc.RightSide
}

func (pc *PipeConnection) Closed() bool {
	return pc.closed.Load()
}

func (pc *PipeConnection) Read(b []byte) (n int, err error) {
	return pc.LeftSide.Read(b)
}

func (pc *PipeConnection) Write(b []byte) (n int, err error) {
	return pc.LeftSide.Write(b)
}

func (pc *PipeConnection) Close() error {
	pc.closed.Store(true)

	return pc.LeftSide.Close()
}

func (pc *PipeConnection) CloseWrite() error {
	return pc.Close()
}

func (pc *PipeConnection) LocalAddr() net.Addr {
	return pc.LeftSide.LocalAddr()
}

func (pc *PipeConnection) RemoteAddr() net.Addr {
	return pc.LeftSide.RemoteAddr()
}

func (pc *PipeConnection) SetDeadline(t time.Time) error {
	return pc.LeftSide.SetDeadline(t)
}

func (pc *PipeConnection) SetReadDeadline(t time.Time) error {
	return pc.LeftSide.SetReadDeadline(t)
}

func (pc *PipeConnection) SetWriteDeadline(t time.Time) error {
	return pc.LeftSide.SetWriteDeadline(t)
}

func (pc *PipeConnection) Connect(ctx context.Context, addr net.Addr) error {
	return nil
}

type readResult struct {
	data []byte
	err  error
}

// scriptedConn replays reads and records writes. After the script is exhausted reads return io.EOF.
type scriptedConn struct {
	PipeConnection
	reads      []readResult
	writes     []byte
	writeLimit int
	writeErr   error
	zeroWrite  bool
}

func (sc *scriptedConn) Read(b []byte) (int, error) {
	if len(sc.reads) == 0 {
		return 0, io.EOF
	}

	r := sc.reads[0]
	sc.reads = sc.reads[1:]

	return copy(b, r.data), r.err
}

func (sc *scriptedConn) Write(b []byte) (int, error) {
	if sc.writeErr != nil {
		return 0, sc.writeErr
	}

	if sc.zeroWrite {
		return 0, nil
	}

	if sc.writeLimit > 0 && len(b) > sc.writeLimit {
		b = b[:sc.writeLimit]
	}

	sc.writes = append(sc.writes, b...)

	return len(b), nil
}

func (sc *scriptedConn) Close() error {
	sc.closed.Store(true)

	return nil
}

func (sc *scriptedConn) RemoteAddr() net.Addr { return pipeAddr{} }

func (sc *scriptedConn) LocalAddr() net.Addr { return pipeAddr{} }

type pipeAddr struct{}

func (pa pipeAddr) Network() string { return "pipe" }
func (pa pipeAddr) String() string  { return "pipe" }
