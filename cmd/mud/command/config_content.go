package command

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/pixil98/go-errors"

	"github.com/pixil98/go-fluxmud/internal/game"
	"github.com/pixil98/go-fluxmud/internal/storage"
)

// ContentConfig points at the asset directory of each content catalog.
type ContentConfig struct {
	Rooms    AssetConfig[*game.Room]    `json:"rooms"`
	Monsters AssetConfig[*game.Monster] `json:"monsters"`
	Items    AssetConfig[*game.Item]    `json:"items"`
	Shops    AssetConfig[*game.Shop]    `json:"shops"`
	Skills   AssetConfig[*game.Skill]   `json:"skills"`
	Quests   AssetConfig[*game.Quest]   `json:"quests"`
	NPCs     AssetConfig[*game.NPC]     `json:"npcs"`
	Races    AssetConfig[*game.Race]    `json:"races"`
}

// BuildCatalog loads every asset directory and resolves the references
// between them.
func (c *ContentConfig) BuildCatalog(startRoom string) (*game.Catalog, error) {
	var stores game.Stores
	var err error

	if stores.Rooms, err = c.Rooms.BuildFileStore(); err != nil {
		return nil, fmt.Errorf("creating room store: %w", err)
	}
	if stores.Monsters, err = c.Monsters.BuildFileStore(); err != nil {
		return nil, fmt.Errorf("creating monster store: %w", err)
	}
	if stores.Items, err = c.Items.BuildFileStore(); err != nil {
		return nil, fmt.Errorf("creating item store: %w", err)
	}
	if stores.Shops, err = c.Shops.BuildFileStore(); err != nil {
		return nil, fmt.Errorf("creating shop store: %w", err)
	}
	if stores.Skills, err = c.Skills.BuildFileStore(); err != nil {
		return nil, fmt.Errorf("creating skill store: %w", err)
	}
	if stores.Quests, err = c.Quests.BuildFileStore(); err != nil {
		return nil, fmt.Errorf("creating quest store: %w", err)
	}
	if stores.NPCs, err = c.NPCs.BuildFileStore(); err != nil {
		return nil, fmt.Errorf("creating npc store: %w", err)
	}
	if stores.Races, err = c.Races.BuildFileStore(); err != nil {
		return nil, fmt.Errorf("creating race store: %w", err)
	}

	cat, err := game.NewCatalog(stores, startRoom)
	if err != nil {
		return nil, fmt.Errorf("resolving references: %w", err)
	}

	slog.Info("content loaded",
		"rooms", len(stores.Rooms.GetAll()),
		"monsters", len(stores.Monsters.GetAll()),
		"skills", len(stores.Skills.GetAll()),
		"races", len(stores.Races.GetAll()),
	)
	return cat, nil
}

func (c *ContentConfig) validate() error {
	el := errors.NewErrorList()
	el.Add(c.Rooms.Validate("rooms"))
	el.Add(c.Monsters.Validate("monsters"))
	el.Add(c.Items.Validate("items"))
	el.Add(c.Shops.Validate("shops"))
	el.Add(c.Skills.Validate("skills"))
	el.Add(c.Quests.Validate("quests"))
	el.Add(c.NPCs.Validate("npcs"))
	el.Add(c.Races.Validate("races"))
	return el.Err()
}

type AssetConfig[T storage.ValidatingSpec] struct {
	Path string `json:"path"`
}

func (c *AssetConfig[T]) Validate(name string) error {
	if c.Path == "" {
		return fmt.Errorf("%s: path is required", name)
	}
	_, err := os.Stat(c.Path)
	if err != nil {
		return fmt.Errorf("%s: invalid path %q: %w", name, c.Path, err)
	}

	return nil
}

func (c *AssetConfig[T]) BuildFileStore() (*storage.FileStore[T], error) {
	return storage.NewFileStore[T](c.Path)
}
