package command

import (
	"fmt"
	"time"

	"github.com/pixil98/go-errors"
	"github.com/pixil98/go-fluxmud/internal/messaging"
)

const defaultNatsStartTimeout = 10 * time.Second

// NatsConfig tunes the embedded bus that carries player messages between
// sessions. The bus stays on loopback unless Host says otherwise; port -1
// picks a free port.
type NatsConfig struct {
	Host         string `json:"host" env:"FLUXMUD_NATS_HOST"`
	Port         int    `json:"port" env:"FLUXMUD_NATS_PORT"`
	StartTimeout string `json:"start_timeout" env:"FLUXMUD_NATS_START_TIMEOUT"`
}

func (n *NatsConfig) validate() error {
	el := errors.NewErrorList()

	if _, err := parseDuration(n.StartTimeout, defaultNatsStartTimeout); err != nil {
		el.Add(fmt.Errorf("parsing start_timeout: %w", err))
	}
	if n.Port < -1 || n.Port > 65535 {
		el.Add(fmt.Errorf("port %d out of range", n.Port))
	}

	return el.Err()
}

func (n *NatsConfig) options() ([]messaging.NatsServerOpt, error) {
	timeout, err := parseDuration(n.StartTimeout, defaultNatsStartTimeout)
	if err != nil {
		return nil, fmt.Errorf("parsing start_timeout: %w", err)
	}

	opts := []messaging.NatsServerOpt{messaging.WithStartTimeout(timeout)}
	if n.Host != "" {
		opts = append(opts, messaging.WithHost(n.Host))
	}
	if n.Port != 0 {
		opts = append(opts, messaging.WithPort(n.Port))
	}
	return opts, nil
}

func (n *NatsConfig) buildNatsServer() (*messaging.NatsServer, error) {
	opts, err := n.options()
	if err != nil {
		return nil, err
	}
	return messaging.NewNatsServer(opts...)
}
