package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/dgraph-io/badger/v3"

	"github.com/pixil98/go-fluxmud/internal/game"
)

const badgerKeyPrefix = "player:"

// BadgerStore keeps players as JSON values in an embedded badger database.
type BadgerStore struct {
	db *badger.DB
}

func NewBadgerStore(path string) (*BadgerStore, error) {
	opts := badger.DefaultOptions(path)
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("opening badger at %s: %w", path, err)
	}
	slog.Info("opened player database", "backend", "badger", "path", path)
	return &BadgerStore{db: db}, nil
}

func (s *BadgerStore) Load(_ context.Context, id string) (*game.Player, error) {
	var p game.Player
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(badgerKeyPrefix + id))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &p)
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, fmt.Errorf("loading %s: %w", id, game.ErrPlayerNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", id, err)
	}
	return &p, nil
}

func (s *BadgerStore) Save(_ context.Context, p *game.Player) error {
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshalling %s: %w", p.Id, err)
	}

	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(badgerKeyPrefix+p.Id), data)
	})
	if err != nil {
		return fmt.Errorf("saving %s: %w", p.Id, err)
	}
	return nil
}

func (s *BadgerStore) Close() error {
	slog.Info("closing player database", "backend", "badger")
	return s.db.Close()
}
