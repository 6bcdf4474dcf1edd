package engine

import (
	"context"

	"github.com/pixil98/go-fluxmud/internal/game"
)

// PlayerStore loads and saves whole player records. Load returns an error
// wrapping game.ErrPlayerNotFound for unknown ids.
type PlayerStore interface {
	Load(ctx context.Context, id string) (*game.Player, error)
	Save(ctx context.Context, p *game.Player) error
}

// Delivery sends notifications to one player or to every member of a group.
type Delivery interface {
	SendPlayer(ctx context.Context, id string, n Notification) error
	Broadcast(ctx context.Context, group string, n Notification) error
}
