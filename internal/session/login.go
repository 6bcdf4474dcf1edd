package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"strings"

	"github.com/pixil98/go-fluxmud/internal"
	"github.com/pixil98/go-fluxmud/internal/display"
	"github.com/pixil98/go-fluxmud/internal/game"
)

const maxNameTries = 5

var namePattern = regexp.MustCompile(`^[A-Za-z]{2,16}$`)

// login asks for a name and loads that player, creating the character when
// the name is new.
func (m *Manager) login(ctx context.Context, rw io.ReadWriter) (*game.Player, error) {
	if _, err := io.WriteString(rw, "Welcome to FluxMUD!\n"); err != nil {
		return nil, err
	}

	for {
		name, err := internal.Prompt(rw, "By what name do you wish to be known? ",
			internal.WithMaxTries(maxNameTries),
			internal.WithValidator(func(str string) (bool, string) {
				if !namePattern.MatchString(str) {
					return false, "Names are 2 to 16 letters. Please try another.\n"
				}
				return true, ""
			}),
		)
		if err != nil {
			return nil, err
		}
		id := strings.ToLower(name)

		p, err := m.players.Load(ctx, id)
		if err == nil {
			slog.InfoContext(ctx, "player logged in", "player", id)
			return p, nil
		}
		if !errors.Is(err, game.ErrPlayerNotFound) {
			return nil, err
		}

		p, err = m.newCharacter(ctx, rw, id)
		if err != nil {
			return nil, err
		}
		if p == nil {
			continue
		}
		return p, nil
	}
}

// newCharacter confirms the name, asks for a race and saves the new player.
// A nil player means the name was not confirmed.
func (m *Manager) newCharacter(ctx context.Context, rw io.ReadWriter, id string) (*game.Player, error) {
	ok, err := internal.PromptYN(rw, fmt.Sprintf("Did I get that right, %s (Y/N)? ", display.Capitalize(id)))
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}

	sel, err := m.races.Prompt(rw, "What is your race?")
	if err != nil {
		return nil, fmt.Errorf("selecting race: %w", err)
	}
	race := m.races.Get(sel)
	if race == nil {
		return nil, fmt.Errorf("selected unknown race %s", sel)
	}

	cat := m.engine.Catalog()
	p := game.NewPlayer(id, id, race, cat.StartRoom().Id, cat)
	if err := m.players.Save(ctx, p); err != nil {
		return nil, fmt.Errorf("saving new character: %w", err)
	}

	slog.InfoContext(ctx, "character created", "player", id, "race", race.Id)
	return p, nil
}
