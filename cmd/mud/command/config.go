package command

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/pixil98/go-errors"
)

type Config struct {
	Listeners []ListenerConfig `json:"listeners"`
	Nats      NatsConfig       `json:"nats"`
	Content   ContentConfig    `json:"content"`
	Players   PlayersConfig    `json:"players"`
	Engine    EngineConfig     `json:"engine"`
	Metrics   MetricsConfig    `json:"metrics"`
}

// Validate applies environment overrides on top of the loaded file, then
// checks every section.
func (c *Config) Validate() error {
	if err := env.Parse(c); err != nil {
		return fmt.Errorf("reading environment: %w", err)
	}

	el := errors.NewErrorList()

	if len(c.Listeners) == 0 {
		el.Add(fmt.Errorf("at least one listener is required"))
	}
	for i := range c.Listeners {
		if err := c.Listeners[i].validate(); err != nil {
			el.Add(fmt.Errorf("listener %d: %w", i, err))
		}
	}

	el.Add(c.Nats.validate())
	el.Add(c.Content.validate())
	el.Add(c.Players.validate())
	el.Add(c.Engine.validate())
	el.Add(c.Metrics.validate())

	return el.Err()
}
