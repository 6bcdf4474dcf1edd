package command

import (
	"context"
	"fmt"

	"github.com/pixil98/go-errors"

	"github.com/pixil98/go-fluxmud/internal/game"
	"github.com/pixil98/go-fluxmud/internal/persistence"
)

const (
	PlayersBackendFile   = "file"
	PlayersBackendBadger = "badger"
	PlayersBackendRedis  = "redis"
)

// PlayerStore is an engine player store that owns resources to release
// on shutdown.
type PlayerStore interface {
	Load(ctx context.Context, id string) (*game.Player, error)
	Save(ctx context.Context, p *game.Player) error
	Close() error
}

type PlayersConfig struct {
	Backend string      `json:"backend" env:"FLUXMUD_PLAYERS_BACKEND"`
	Path    string      `json:"path" env:"FLUXMUD_PLAYERS_PATH"`
	Redis   RedisConfig `json:"redis"`
}

type RedisConfig struct {
	Addr     string `json:"addr" env:"FLUXMUD_REDIS_ADDR"`
	Password string `json:"password" env:"FLUXMUD_REDIS_PASSWORD"`
	DB       int    `json:"db"`
	Prefix   string `json:"prefix"`
}

func (c *PlayersConfig) validate() error {
	el := errors.NewErrorList()

	switch c.Backend {
	case "", PlayersBackendFile, PlayersBackendBadger:
		if c.Path == "" {
			el.Add(fmt.Errorf("players: path is required for the %s backend", c.backend()))
		}
	case PlayersBackendRedis:
		if c.Redis.Addr == "" {
			el.Add(fmt.Errorf("players: redis.addr is required for the redis backend"))
		}
	default:
		el.Add(fmt.Errorf("players: unknown backend %q", c.Backend))
	}

	return el.Err()
}

func (c *PlayersConfig) backend() string {
	if c.Backend == "" {
		return PlayersBackendFile
	}
	return c.Backend
}

func (c *PlayersConfig) BuildStore(ctx context.Context) (PlayerStore, error) {
	switch c.backend() {
	case PlayersBackendFile:
		return persistence.NewFileStore(c.Path)
	case PlayersBackendBadger:
		return persistence.NewBadgerStore(c.Path)
	case PlayersBackendRedis:
		return persistence.NewRedisStore(ctx, persistence.RedisOpts{
			Addr:     c.Redis.Addr,
			Password: c.Redis.Password,
			DB:       c.Redis.DB,
			Prefix:   c.Redis.Prefix,
		})
	default:
		return nil, fmt.Errorf("unknown players backend: %s", c.Backend)
	}
}
