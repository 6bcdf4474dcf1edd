package game

import (
	"strings"

	"github.com/pixil98/go-fluxmud/internal/commands"
)

// Transform switches the player into the named form if the race has unlocked
// it at the player's level.
func Transform(p *Player, race *Race, name string) (*Transformation, error) {
	if race == nil {
		return nil, reject(commands.MsgCannotTransform, nil)
	}
	for _, f := range race.AvailableForms(p.Level) {
		if strings.EqualFold(f.Name, name) {
			p.Transformation = f.Name
			return &f, nil
		}
	}
	return nil, reject(commands.MsgCannotTransform, nil)
}

// Revert returns the player to the Base form.
func (p *Player) Revert() error {
	if p.Transformation == BaseForm || p.Transformation == "" {
		return reject(commands.MsgAlreadyBase, nil)
	}
	p.Transformation = BaseForm
	return nil
}
