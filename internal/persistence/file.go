// Package persistence stores player records. Every backend hands out copies:
// a caller mutating a loaded player never changes the stored one until it
// saves.
package persistence

import (
	"context"
	"fmt"
	"os"

	"github.com/pixil98/go-fluxmud/internal/game"
	"github.com/pixil98/go-fluxmud/internal/storage"
)

// FileStore keeps one JSON asset per player in a directory.
type FileStore struct {
	store *storage.FileStore[*game.Player]
}

func NewFileStore(path string) (*FileStore, error) {
	if err := os.MkdirAll(path, 0o755); err != nil {
		return nil, fmt.Errorf("creating player directory: %w", err)
	}

	store, err := storage.NewFileStore[*game.Player](path)
	if err != nil {
		return nil, fmt.Errorf("loading players: %w", err)
	}
	return &FileStore{store: store}, nil
}

func (s *FileStore) Load(_ context.Context, id string) (*game.Player, error) {
	p := s.store.Get(id)
	if p == nil {
		return nil, fmt.Errorf("loading %s: %w", id, game.ErrPlayerNotFound)
	}
	return p.Clone(), nil
}

func (s *FileStore) Save(_ context.Context, p *game.Player) error {
	if err := s.store.Save(p.Id, p.Clone()); err != nil {
		return fmt.Errorf("saving %s: %w", p.Id, err)
	}
	return nil
}

func (s *FileStore) Close() error {
	return nil
}
