package listener

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"syscall"

	"github.com/iammegalith/telnet"
)

type TelnetListener struct {
	addr string
	cm   *ConnectionManager
}

// NewTelnetListener serves telnet on addr, a host:port pair. An empty host
// binds every interface.
func NewTelnetListener(addr string, cm *ConnectionManager) *TelnetListener {
	return &TelnetListener{
		addr: addr,
		cm:   cm,
	}
}

func (l *TelnetListener) Start(ctx context.Context) error {
	// Create a cancelable context for all connections
	connCtx, cancelConns := context.WithCancel(context.Background())

	handler := &telnetHandler{
		cFunc:       l.cm.AcceptConnection,
		connCtx:     connCtx,
		cancelConns: cancelConns,
	}

	svr := telnet.NewServer(l.addr, handler)

	// done signals that Start is returning (either success or failure)
	done := make(chan struct{})
	defer close(done)

	go func() {
		select {
		case <-ctx.Done():
			svr.Stop()
			handler.Stop()
		case <-done:
		}
	}()

	slog.InfoContext(ctx, "listening for telnet", "addr", l.addr)

	err := svr.ListenAndServe()
	if err != nil {
		if errors.Is(err, syscall.EADDRINUSE) {
			return fmt.Errorf("%s is already in use (another server running?)", l.addr)
		}
		if ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("serving telnet on %s: %w", l.addr, err)
	}

	return nil
}

type telnetHandler struct {
	wg          sync.WaitGroup
	cFunc       func(context.Context, io.ReadWriter)
	connCtx     context.Context
	cancelConns context.CancelFunc
}

func (h *telnetHandler) HandleTelnet(conn *telnet.Connection) {
	h.wg.Add(1)
	defer h.wg.Done()
	defer func() {
		if err := conn.Close(); err != nil {
			slog.Warn("closing telnet connection", "error", err)
		}
	}()

	// All connections share one context so shutdown cancels them together.
	h.cFunc(h.connCtx, newLineConn(conn))
}

func (h *telnetHandler) Stop() {
	h.cancelConns()
	h.wg.Wait()
}
