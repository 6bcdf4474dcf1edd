package game

import (
	"fmt"

	"github.com/pixil98/go-errors"
)

// Drop is one entry of a monster's loot table. Each drop is rolled on its own.
type Drop struct {
	ItemId string  `json:"item_id"`
	Rate   float64 `json:"rate"`
}

// Monster is a monster template. Fights use copies made by the combat package.
type Monster struct {
	Id          string     `json:"-"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	Stats       Attributes `json:"stats"`
	MaxHP       int        `json:"max_hp"`
	Exp         int        `json:"exp"`
	Drops       []Drop     `json:"drops,omitempty"`
}

// Validate satisfies storage.ValidatingSpec.
func (m *Monster) Validate() error {
	el := errors.NewErrorList()

	if m.Name == "" {
		el.Add(fmt.Errorf("monster name is required"))
	}
	if m.MaxHP <= 0 {
		el.Add(fmt.Errorf("max_hp must be positive"))
	}
	if m.Exp < 0 {
		el.Add(fmt.Errorf("exp cannot be negative"))
	}
	for i, d := range m.Drops {
		if d.ItemId == "" {
			el.Add(fmt.Errorf("drop %d: item_id is required", i))
		}
		if d.Rate < 0 || d.Rate > 1 {
			el.Add(fmt.Errorf("drop %d: rate must be between 0 and 1", i))
		}
	}

	return el.Err()
}
