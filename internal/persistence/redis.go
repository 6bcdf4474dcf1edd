package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/pixil98/go-fluxmud/internal/game"
)

const DefaultRedisPrefix = "fluxmud:player:"

// RedisStore keeps players as JSON strings in Redis so several processes can
// share them. Commands for one player must still be routed to a single
// process: the fight cache is local.
type RedisStore struct {
	client *redis.Client
	prefix string
}

type RedisOpts struct {
	Addr     string
	Password string
	DB       int
	Prefix   string
}

func NewRedisStore(ctx context.Context, opts RedisOpts) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         opts.Addr,
		Password:     opts.Password,
		DB:           opts.DB,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 5 * time.Second,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("connecting to redis at %s: %w", opts.Addr, err)
	}

	prefix := opts.Prefix
	if prefix == "" {
		prefix = DefaultRedisPrefix
	}
	slog.InfoContext(ctx, "connected player database", "backend", "redis", "addr", opts.Addr)
	return newRedisStore(client, prefix), nil
}

func newRedisStore(client *redis.Client, prefix string) *RedisStore {
	return &RedisStore{client: client, prefix: prefix}
}

func (s *RedisStore) Load(ctx context.Context, id string) (*game.Player, error) {
	data, err := s.client.Get(ctx, s.prefix+id).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("loading %s: %w", id, game.ErrPlayerNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", id, err)
	}

	var p game.Player
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("unmarshalling %s: %w", id, err)
	}
	return &p, nil
}

func (s *RedisStore) Save(ctx context.Context, p *game.Player) error {
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshalling %s: %w", p.Id, err)
	}
	if err := s.client.Set(ctx, s.prefix+p.Id, data, 0).Err(); err != nil {
		return fmt.Errorf("saving %s: %w", p.Id, err)
	}
	return nil
}

func (s *RedisStore) Close() error {
	slog.Info("closing player database", "backend", "redis")
	return s.client.Close()
}
