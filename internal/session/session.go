package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/pixil98/go-fluxmud/internal"
	"github.com/pixil98/go-fluxmud/internal/commands"
	"github.com/pixil98/go-fluxmud/internal/engine"
	"github.com/pixil98/go-fluxmud/internal/game"
)

// Session is one logged in player's connection.
type Session struct {
	conn   *conn
	id     string
	engine Processor

	msgs chan []byte
	done chan struct{}

	// last is the most recent state snapshot, used for the prompt.
	last *engine.Snapshot
}

func newSession(c *conn, p *game.Player, e Processor) *Session {
	last := &engine.Snapshot{HP: p.HP, MaxHP: p.MaxHP, Flux: p.Flux, MaxFlux: p.MaxFlux}
	if p.InCombat() {
		name := p.Combat.MonsterId
		if m := e.Catalog().Monster(name); m != nil {
			name = m.Name
		}
		last.Combat = &engine.CombatView{Monster: name, HP: p.Combat.MonsterHP, MaxHP: p.Combat.MonsterMaxHP}
	}

	return &Session{
		conn:   c,
		id:     p.Id,
		engine: e,
		msgs:   make(chan []byte, 64),
		done:   make(chan struct{}),
		last:   last,
	}
}

// receive queues a published notification for the play loop.
func (s *Session) receive(data []byte) {
	select {
	case s.msgs <- data:
	case <-s.done:
	}
}

func (s *Session) play(ctx context.Context) error {
	defer close(s.done)

	// Start goroutine to read input lines into a channel
	inputChan := make(chan string)
	inputErrChan := make(chan error, 1)
	go func() {
		defer close(inputChan)
		for {
			line, err := internal.ReadLine(s.conn)
			if err != nil {
				if !errors.Is(err, io.EOF) {
					inputErrChan <- err
				}
				return
			}
			select {
			case inputChan <- line:
			case <-s.done:
				return
			}
		}
	}()

	if err := s.greet(ctx); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			_ = s.writeLine("\nThe world fades away...")
			return ctx.Err()

		case msg := <-s.msgs:
			if err := s.flush(msg); err != nil {
				return err
			}

		case line, ok := <-inputChan:
			if !ok {
				// Connection lost. Write out what is still queued.
				if err := s.drain(); err != nil {
					return err
				}
				select {
				case err := <-inputErrChan:
					return err
				default:
					return nil
				}
			}

			if strings.TrimSpace(line) == "" {
				if err := s.prompt(); err != nil {
					return err
				}
				continue
			}

			if err := s.exec(ctx, line); err != nil {
				return err
			}
		}
	}
}

// greet shows the current room on login. A player who left mid-fight cannot
// look around, so they get the fight instead.
func (s *Session) greet(ctx context.Context) error {
	if c := s.last.Combat; c != nil {
		msg := commands.Render(commands.MsgCombatResume, map[string]any{"Monster": c.Monster, "HP": c.HP, "MaxHP": c.MaxHP})
		if err := s.writeLine(msg); err != nil {
			return err
		}
		return s.prompt()
	}
	return s.exec(ctx, "look")
}

// exec hands a line to the engine. The results come back as published
// notifications.
func (s *Session) exec(ctx context.Context, line string) error {
	_, _, err := s.engine.Process(ctx, s.id, line)
	if errors.Is(err, engine.ErrSessionClosed) {
		_ = s.writeLine("Your session has ended.")
		return err
	}
	if err != nil {
		return fmt.Errorf("processing command: %w", err)
	}
	return nil
}

// flush renders msg and everything queued behind it, then one prompt.
func (s *Session) flush(msg []byte) error {
	if err := s.render(msg); err != nil {
		return err
	}
	if err := s.drain(); err != nil {
		return err
	}
	return s.prompt()
}

func (s *Session) drain() error {
	for {
		select {
		case msg := <-s.msgs:
			if err := s.render(msg); err != nil {
				return err
			}
		default:
			return nil
		}
	}
}

func (s *Session) render(msg []byte) error {
	text, snap, err := Render(msg)
	if err != nil {
		slog.Warn("dropping undecodable notification", "player", s.id, "error", err)
		return nil
	}
	if snap != nil {
		s.last = snap
	}
	if text == "" {
		return nil
	}
	return s.writeLine(text)
}

func (s *Session) prompt() error {
	_, err := io.WriteString(s.conn, Prompt(s.last))
	return err
}

func (s *Session) writeLine(msg string) error {
	_, err := io.WriteString(s.conn, msg+"\n")
	return err
}
