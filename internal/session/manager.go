// Package session runs one connected client: login or character creation,
// then a loop feeding input lines to the engine and writing the
// notifications that arrive for the player and their group.
package session

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/pixil98/go-fluxmud/internal/engine"
	"github.com/pixil98/go-fluxmud/internal/game"
	"github.com/pixil98/go-fluxmud/internal/messaging"
	"github.com/pixil98/go-fluxmud/internal/storage"
)

// Processor runs player commands.
type Processor interface {
	Process(ctx context.Context, id string, raw string) (*game.Player, []engine.Notification, error)
	Catalog() *game.Catalog
	Group() string
}

// Subscriber delivers the messages published on a subject.
type Subscriber interface {
	Subscribe(subject string, handler func(data []byte)) (func(), error)
}

type Manager struct {
	engine  Processor
	players engine.PlayerStore
	subs    Subscriber
	races   *storage.SelectableStorer[*game.Race]
}

func NewManager(e Processor, players engine.PlayerStore, subs Subscriber) *Manager {
	return &Manager{
		engine:  e,
		players: players,
		subs:    subs,
		races:   storage.NewSelectableStorer(e.Catalog().Races()),
	}
}

// Run serves one connection until the client leaves, ctx is done or the
// player record can no longer be loaded.
func (m *Manager) Run(ctx context.Context, rw io.ReadWriter) error {
	c := &conn{Writer: rw, Reader: bufio.NewReader(rw)}

	p, err := m.login(ctx, c)
	if err != nil {
		return fmt.Errorf("logging in: %w", err)
	}

	s := newSession(c, p, m.engine)

	var unsubs []func()
	defer func() {
		for _, u := range unsubs {
			u()
		}
	}()
	for _, subject := range []string{messaging.PlayerSubject(p.Id), messaging.GroupSubject(m.engine.Group())} {
		unsub, err := m.subs.Subscribe(subject, s.receive)
		if err != nil {
			return fmt.Errorf("subscribing to %s: %w", subject, err)
		}
		unsubs = append(unsubs, unsub)
	}

	return s.play(ctx)
}

// conn shares one read buffer between the login prompts and the command
// loop.
type conn struct {
	io.Writer
	*bufio.Reader
}
