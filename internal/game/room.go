package game

import (
	"fmt"

	"github.com/pixil98/go-errors"
)

// Room is a node of the world graph.
type Room struct {
	Id          string            `json:"-"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Exits       map[string]string `json:"exits"`              // direction -> room id
	Monsters    []string          `json:"monsters,omitempty"` // monster template ids that can be hunted here
}

// Validate satisfies storage.ValidatingSpec.
func (r *Room) Validate() error {
	el := errors.NewErrorList()

	if r.Name == "" {
		el.Add(fmt.Errorf("room name is required"))
	}
	for dir, dest := range r.Exits {
		if dest == "" {
			el.Add(fmt.Errorf("exit %s: destination is required", dir))
		}
	}

	return el.Err()
}
