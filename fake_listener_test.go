package echonet_test

import (
	"net"
	"sync"
	"sync/atomic"

	echonet "github.com/andyollylarkin/echo-net"
)

type acceptResult struct {
	conn echonet.Connection
	err  error
}

// listenerStub replays scripted accept results first, then hands out connections pushed
// with Push until Close is called.
type listenerStub struct {
	script  []acceptResult
	conns   chan echonet.Connection
	done    chan struct{}
	once    sync.Once
	accepts atomic.Int32
	mu      sync.Mutex
}

func NewListenerStub(script ...acceptResult) *listenerStub {
	ls := new(listenerStub)
	ls.script = script
	ls.conns = make(chan echonet.Connection)
	ls.done = make(chan struct{})

	return ls
}

func (ls *listenerStub) Push(conn echonet.Connection) {
	ls.conns <- conn
}

func (ls *listenerStub) Accept() (echonet.Connection, error) {
	ls.accepts.Add(1)

	ls.mu.Lock()
	if len(ls.script) > 0 {
		r := ls.script[0]
		ls.script = ls.script[1:]
		ls.mu.Unlock()

		return r.conn, r.err
	}
	ls.mu.Unlock()

	select {
	case c := <-ls.conns:
		return c, nil
	case <-ls.done:
		return nil, &net.OpError{Op: "accept", Net: "pipe", Err: net.ErrClosed}
	}
}

func (ls *listenerStub) Close() error {
	ls.once.Do(func() { close(ls.done) })

	return nil
}

func (ls *listenerStub) Addr() net.Addr { return pipeAddr{} }
