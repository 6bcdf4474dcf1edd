package game

import (
	"fmt"

	"github.com/pixil98/go-errors"
)

// ItemType decides what "use" does with an item.
type ItemType string

const (
	ItemConsumable ItemType = "consumable"
	ItemWeapon     ItemType = "weapon"
	ItemArmor      ItemType = "armor"
	ItemAccessory  ItemType = "accessory"
	ItemKey        ItemType = "key"
)

// IsEquipment reports whether the item would be worn or wielded.
func (t ItemType) IsEquipment() bool {
	switch t {
	case ItemWeapon, ItemArmor, ItemAccessory:
		return true
	}
	return false
}

// ItemEffect is what a consumable restores.
type ItemEffect struct {
	HP   int `json:"hp,omitempty"`
	Flux int `json:"flux,omitempty"`
}

// Item is an item definition.
type Item struct {
	Id          string     `json:"-"`
	Name        string     `json:"name"`
	Type        ItemType   `json:"type"`
	Description string     `json:"description,omitempty"`
	Price       int        `json:"price"`
	Effect      ItemEffect `json:"effect,omitempty"`
}

// Validate satisfies storage.ValidatingSpec.
func (i *Item) Validate() error {
	el := errors.NewErrorList()

	if i.Name == "" {
		el.Add(fmt.Errorf("item name is required"))
	}
	if i.Type == "" {
		el.Add(fmt.Errorf("item type is required"))
	}
	if i.Price < 0 {
		el.Add(fmt.Errorf("price cannot be negative"))
	}
	if i.Effect.HP < 0 || i.Effect.Flux < 0 {
		el.Add(fmt.Errorf("effects cannot be negative"))
	}

	return el.Err()
}

// Shop sells items in a single room.
type Shop struct {
	Id        string   `json:"-"`
	Name      string   `json:"name"`
	Room      string   `json:"room"`
	Inventory []string `json:"inventory"` // item ids
}

// Validate satisfies storage.ValidatingSpec.
func (s *Shop) Validate() error {
	el := errors.NewErrorList()

	if s.Name == "" {
		el.Add(fmt.Errorf("shop name is required"))
	}
	if s.Room == "" {
		el.Add(fmt.Errorf("shop room is required"))
	}

	return el.Err()
}
