package listener

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"sync"

	"golang.org/x/crypto/ssh"
)

// SshListener serves sessions over SSH without client authentication. Players
// identify themselves at the login prompt like telnet players do.
type SshListener struct {
	addr    string
	cm      *ConnectionManager
	hostKey ssh.Signer
}

func NewSshListener(addr string, cm *ConnectionManager, hostKey ssh.Signer) *SshListener {
	return &SshListener{
		addr:    addr,
		cm:      cm,
		hostKey: hostKey,
	}
}

func (l *SshListener) Start(ctx context.Context) error {
	config := &ssh.ServerConfig{
		NoClientAuth:  true,
		ServerVersion: "SSH-2.0-FluxMUD",
	}
	config.AddHostKey(l.hostKey)

	listener, err := net.Listen("tcp", l.addr)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", l.addr, err)
	}

	slog.InfoContext(ctx, "listening for ssh", "addr", l.addr)

	connCtx, cancelConns := context.WithCancel(context.Background())
	var wg sync.WaitGroup

	// Close the listener when the parent context is canceled
	go func() {
		<-ctx.Done()
		_ = listener.Close()
	}()

	for {
		conn, err := listener.Accept()
		if err != nil {
			select {
			case <-ctx.Done():
				cancelConns()
				wg.Wait()
				return nil
			default:
			}
			slog.ErrorContext(ctx, "accepting ssh connection", "error", err)
			continue
		}

		wg.Add(1)
		go func() {
			defer wg.Done()
			l.handleConnection(connCtx, conn, config)
		}()
	}
}

func (l *SshListener) handleConnection(ctx context.Context, conn net.Conn, config *ssh.ServerConfig) {
	defer func() { _ = conn.Close() }()

	sshConn, chans, reqs, err := ssh.NewServerConn(conn, config)
	if err != nil {
		slog.WarnContext(ctx, "ssh handshake", "remote", conn.RemoteAddr(), "error", err)
		return
	}
	defer func() { _ = sshConn.Close() }()

	slog.InfoContext(ctx, "ssh connection established", "remote", conn.RemoteAddr(), "client", string(sshConn.ClientVersion()))

	// Closing the connection on shutdown ends the channel loop below.
	go func() {
		<-ctx.Done()
		_ = sshConn.Close()
	}()

	go ssh.DiscardRequests(reqs)

	for newChan := range chans {
		if newChan.ChannelType() != "session" {
			_ = newChan.Reject(ssh.UnknownChannelType, "unknown channel type")
			continue
		}
		l.serveChannel(ctx, newChan)
	}
}

// serveChannel runs one player session on an accepted channel once the client
// has asked for a shell.
func (l *SshListener) serveChannel(ctx context.Context, newChan ssh.NewChannel) {
	ch, requests, err := newChan.Accept()
	if err != nil {
		slog.ErrorContext(ctx, "accepting ssh channel", "error", err)
		return
	}
	defer func() { _ = ch.Close() }()

	// SSH clients won't forward input until they receive the shell reply.
	shellReady := make(chan struct{})
	go func(in <-chan *ssh.Request) {
		shell := false
		for req := range in {
			switch {
			case req.Type == "shell" && !shell:
				shell = true
				_ = req.Reply(true, nil)
				close(shellReady)
			default:
				// Rejecting pty-req keeps local echo and line buffering on
				// the client.
				_ = req.Reply(false, nil)
			}
		}
	}(requests)

	select {
	case <-shellReady:
	case <-ctx.Done():
		return
	}

	l.cm.AcceptConnection(ctx, newLineConn(ch))
}
