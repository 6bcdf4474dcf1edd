package game

import (
	"errors"

	"github.com/pixil98/go-fluxmud/internal/commands"
)

var (
	ErrPlayerNotFound = errors.New("player not found")
	ErrPlayerExists   = errors.New("player already exists")
)

// reject builds the UserError for a rule violation from a message template.
func reject(msg string, data any) error {
	return commands.Reject(msg, data)
}
