package command

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/pem"
	"fmt"
	"log/slog"
	"net"
	"os"
	"path/filepath"
	"strconv"

	"github.com/pixil98/go-errors"
	"github.com/pixil98/go-fluxmud/internal/listener"
	"github.com/pixil98/go-service"
	"golang.org/x/crypto/ssh"
)

// Protocol is the wire protocol a listener speaks.
type Protocol string

const (
	ProtocolTelnet Protocol = "telnet"
	ProtocolSSH    Protocol = "ssh"
)

// ListenerConfig is one entry of the listeners list. Bind restricts the
// listener to one interface; empty binds them all.
type ListenerConfig struct {
	Protocol Protocol `json:"protocol"`
	Bind     string   `json:"bind,omitempty"`
	Port     uint16   `json:"port"`
	// HostKeyPath is the ssh host key. A missing file is generated and
	// written there so the key survives restarts.
	HostKeyPath string `json:"host_key_path,omitempty"`
}

func (cl *ListenerConfig) validate() error {
	el := errors.NewErrorList()

	switch cl.Protocol {
	case ProtocolTelnet:
		if cl.HostKeyPath != "" {
			el.Add(fmt.Errorf("host_key_path only applies to ssh listeners"))
		}
	case ProtocolSSH:
	default:
		el.Add(fmt.Errorf("unknown protocol %q", cl.Protocol))
	}

	if cl.Port == 0 {
		el.Add(fmt.Errorf("port must be set to a positive integer"))
	}

	return el.Err()
}

func (cl *ListenerConfig) Address() string {
	return net.JoinHostPort(cl.Bind, strconv.Itoa(int(cl.Port)))
}

func (cl *ListenerConfig) BuildListener(cm *listener.ConnectionManager) (service.Worker, error) {
	switch cl.Protocol {
	case ProtocolTelnet:
		return listener.NewTelnetListener(cl.Address(), cm), nil
	case ProtocolSSH:
		hostKey, err := cl.hostKey()
		if err != nil {
			return nil, fmt.Errorf("setting up ssh host key: %w", err)
		}
		return listener.NewSshListener(cl.Address(), cm, hostKey), nil
	default:
		return nil, fmt.Errorf("unknown protocol %q", cl.Protocol)
	}
}

func (cl *ListenerConfig) hostKey() (ssh.Signer, error) {
	if cl.HostKeyPath == "" {
		slog.Warn("no host_key_path configured for ssh listener, players will see a new host key after every restart")
		signer, _, err := generateHostKey()
		return signer, err
	}

	keyBytes, err := os.ReadFile(cl.HostKeyPath)
	if os.IsNotExist(err) {
		return cl.writeHostKey()
	}
	if err != nil {
		return nil, fmt.Errorf("reading host key %q: %w", cl.HostKeyPath, err)
	}

	signer, err := ssh.ParsePrivateKey(keyBytes)
	if err != nil {
		return nil, fmt.Errorf("parsing host key %q: %w", cl.HostKeyPath, err)
	}
	return signer, nil
}

func (cl *ListenerConfig) writeHostKey() (ssh.Signer, error) {
	signer, block, err := generateHostKey()
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(filepath.Dir(cl.HostKeyPath), 0o700); err != nil {
		return nil, fmt.Errorf("creating host key directory: %w", err)
	}
	if err := os.WriteFile(cl.HostKeyPath, pem.EncodeToMemory(block), 0o600); err != nil {
		return nil, fmt.Errorf("writing host key %q: %w", cl.HostKeyPath, err)
	}

	slog.Info("generated ssh host key", "path", cl.HostKeyPath, "fingerprint", ssh.FingerprintSHA256(signer.PublicKey()))
	return signer, nil
}

func generateHostKey() (ssh.Signer, *pem.Block, error) {
	_, privKey, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, nil, fmt.Errorf("generating host key: %w", err)
	}
	signer, err := ssh.NewSignerFromKey(privKey)
	if err != nil {
		return nil, nil, fmt.Errorf("creating signer from host key: %w", err)
	}
	block, err := ssh.MarshalPrivateKey(privKey, "fluxmud host key")
	if err != nil {
		return nil, nil, fmt.Errorf("encoding host key: %w", err)
	}
	return signer, block, nil
}
