package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/pixil98/go-fluxmud/internal/combat"
	"github.com/pixil98/go-fluxmud/internal/commands"
	"github.com/pixil98/go-fluxmud/internal/game"
)

// DefaultGroup is the broadcast group every session joins.
const DefaultGroup = "world"

// Engine interprets player commands. It is safe for concurrent use: commands
// for one player run one at a time, different players run in parallel.
type Engine struct {
	cat      *game.Catalog
	players  PlayerStore
	delivery Delivery
	fights   *FightCache
	resolver *combat.Resolver
	metrics  *Metrics
	locks    *keyedMutex
	routes   map[route]handler

	group string
	dev   bool
}

func NewEngine(cat *game.Catalog, players PlayerStore, opts ...EngineOpt) *Engine {
	e := &Engine{
		cat:      cat,
		players:  players,
		fights:   NewFightCache(DefaultFightTTL),
		resolver: combat.NewResolver(combat.DefaultRand()),
		metrics:  NewMetrics(nil),
		locks:    newKeyedMutex(),
		group:    DefaultGroup,
	}

	for _, opt := range opts {
		opt(e)
	}

	e.routes = e.buildRoutes()
	return e
}

// Catalog returns the content the engine runs on.
func (e *Engine) Catalog() *game.Catalog {
	return e.cat
}

// Group returns the broadcast group sessions should listen on.
func (e *Engine) Group() string {
	return e.group
}

// Process runs one raw command for the player and returns the resulting
// player and every notification it produced. Notifications are delivered
// after the player is saved. Rejected commands leave the stored player
// untouched. An error is returned only when the player cannot be loaded.
func (e *Engine) Process(ctx context.Context, id string, raw string) (*game.Player, []Notification, error) {
	start := time.Now()
	defer func() { e.metrics.latency.Observe(time.Since(start).Seconds()) }()

	unlock := e.locks.lock(id)
	defer unlock()

	p, err := e.players.Load(ctx, id)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: loading player %s: %w", ErrSessionClosed, id, err)
	}

	recovery := e.heal(p)
	if len(recovery) > 0 {
		if err := e.players.Save(ctx, p); err != nil {
			slog.ErrorContext(ctx, "saving recovered player", "player", id, "error", err)
		}
	}

	state := commands.StateNormal
	if p.InCombat() {
		state = commands.StateInCombat
	}

	cmd, err := commands.Parse(raw, state)
	if errors.Is(err, commands.ErrEmptyCommand) {
		return p, e.deliver(ctx, p, recovery), nil
	}
	if err != nil {
		return p, e.fail(ctx, p, cmd, recovery, err), nil
	}

	t := &turn{p: p.Clone()}
	err = e.run(ctx, t, cmd)
	if err == nil {
		err = t.p.Validate()
	}
	if err == nil {
		err = e.players.Save(ctx, t.p)
	}
	if err != nil {
		return p, e.fail(ctx, p, cmd, recovery, err), nil
	}

	e.metrics.commands.WithLabelValues(cmd.Verb.String(), resultOK).Inc()
	t.notes = append(t.notes, Notification{Kind: KindStateSnapshot, Snapshot: e.snapshot(t.p)})
	return t.p, e.deliver(ctx, t.p, append(recovery, t.notes...)), nil
}

// run dispatches cmd, converting a panic in a handler into an error.
func (e *Engine) run(ctx context.Context, t *turn, cmd commands.Command) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic handling %s: %v", cmd.Verb, r)
		}
	}()
	return e.dispatch(ctx, t, cmd)
}

// fail answers a command that did not commit with a single notice. The
// player's fight is dropped from the cache since the handler may have
// touched it.
func (e *Engine) fail(ctx context.Context, p *game.Player, cmd commands.Command, recovery []Notification, err error) []Notification {
	e.fights.Evict(p.Id)

	var userErr *commands.UserError
	text := commands.Render(commands.MsgInternalFailure, nil)
	result := resultError
	if errors.As(err, &userErr) {
		text = userErr.Message
		result = resultRejected
		e.metrics.rejections.WithLabelValues(userErr.Reason).Inc()
	} else {
		slog.ErrorContext(ctx, "processing command", "player", p.Id, "verb", cmd.Word, "error", err)
	}
	e.metrics.commands.WithLabelValues(cmd.Verb.String(), result).Inc()

	return e.deliver(ctx, p, append(recovery, Notification{Kind: KindSystemText, Text: text}))
}

// deliver addresses notes to p and hands them to the delivery layer.
// Delivery failures are logged, not returned: the command has committed.
func (e *Engine) deliver(ctx context.Context, p *game.Player, notes []Notification) []Notification {
	for i := range notes {
		n := &notes[i]
		if n.Group == "" {
			n.PlayerId = p.Id
		}
		if e.delivery == nil {
			continue
		}

		var err error
		if n.Group != "" {
			err = e.delivery.Broadcast(ctx, n.Group, *n)
		} else {
			err = e.delivery.SendPlayer(ctx, p.Id, *n)
		}
		if err != nil {
			slog.WarnContext(ctx, "delivering notification", "player", p.Id, "kind", n.Kind, "error", err)
		}
	}
	return notes
}

// heal repairs references the content no longer resolves: a missing room
// sends the player to the start room, a fight against a missing monster
// ends. It returns the recovery notices.
func (e *Engine) heal(p *game.Player) []Notification {
	var notes []Notification
	if e.cat.Room(p.Location) == nil {
		p.Location = e.cat.StartRoom().Id
		notes = append(notes, Notification{Kind: KindSystemText, Text: commands.Render(commands.MsgLostInVoid, nil)})
	}
	if p.Combat != nil && e.cat.Monster(p.Combat.MonsterId) == nil {
		p.Combat = nil
		e.fights.Evict(p.Id)
		notes = append(notes, Notification{Kind: KindSystemText, Text: commands.Render(commands.MsgCombatReset, nil)})
	}
	return notes
}

// turn accumulates the effects of one command on a working copy of the
// player.
type turn struct {
	p     *game.Player
	notes []Notification
}

func (t *turn) system(msg string, data any) {
	t.systemText(commands.Render(msg, data))
}

func (t *turn) systemText(text string) {
	t.notes = append(t.notes, Notification{Kind: KindSystemText, Text: text})
}

func (t *turn) combat(lines ...string) {
	for _, l := range lines {
		t.notes = append(t.notes, Notification{Kind: KindCombatLog, Text: l})
	}
}

func (t *turn) broadcast(group, sender, text string) {
	t.notes = append(t.notes, Notification{Kind: KindRoomBroadcast, Group: group, Sender: sender, Text: text})
}
