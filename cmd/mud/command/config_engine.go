package command

import (
	"fmt"
	"time"

	"github.com/pixil98/go-errors"

	"github.com/pixil98/go-fluxmud/internal/driver"
	"github.com/pixil98/go-fluxmud/internal/engine"
)

type EngineConfig struct {
	StartRoom    string `json:"start_room"`
	Group        string `json:"group"`
	DevCommands  bool   `json:"dev_commands" env:"FLUXMUD_DEV_COMMANDS"`
	FightTTL     string `json:"fight_ttl"`
	TickInterval string `json:"tick_interval"`
}

func (c *EngineConfig) validate() error {
	el := errors.NewErrorList()

	if c.StartRoom == "" {
		el.Add(fmt.Errorf("engine: start_room is required"))
	}
	if _, err := parseDuration(c.FightTTL, engine.DefaultFightTTL); err != nil {
		el.Add(fmt.Errorf("engine: parsing fight_ttl: %w", err))
	}
	if _, err := parseDuration(c.TickInterval, driver.DefaultTickLength); err != nil {
		el.Add(fmt.Errorf("engine: parsing tick_interval: %w", err))
	}

	return el.Err()
}

func (c *EngineConfig) fightTTL() time.Duration {
	d, _ := parseDuration(c.FightTTL, engine.DefaultFightTTL)
	return d
}

func (c *EngineConfig) tickInterval() time.Duration {
	d, _ := parseDuration(c.TickInterval, driver.DefaultTickLength)
	return d
}

func (c *EngineConfig) options() []engine.EngineOpt {
	var opts []engine.EngineOpt
	if c.Group != "" {
		opts = append(opts, engine.WithGroup(c.Group))
	}
	if c.DevCommands {
		opts = append(opts, engine.WithDevCommands(true))
	}
	return opts
}

func parseDuration(s string, def time.Duration) (time.Duration, error) {
	if s == "" {
		return def, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, err
	}
	if d <= 0 {
		return 0, fmt.Errorf("duration must be positive, got %s", s)
	}
	return d, nil
}
