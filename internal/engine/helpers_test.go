package engine

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/pixil98/go-fluxmud/internal/game"
	"github.com/pixil98/go-fluxmud/internal/game/gametest"
)

// fixedRand replays queued values. When a queue runs dry Float64 returns 0.5
// and IntN returns 0.
type fixedRand struct {
	floats []float64
	ints   []int
}

func (f *fixedRand) Float64() float64 {
	if len(f.floats) == 0 {
		return 0.5
	}
	v := f.floats[0]
	f.floats = f.floats[1:]
	return v
}

func (f *fixedRand) IntN(int) int {
	if len(f.ints) == 0 {
		return 0
	}
	v := f.ints[0]
	f.ints = f.ints[1:]
	return v
}

type memPlayers struct {
	mu       sync.Mutex
	players  map[string]*game.Player
	saves    int
	failSave error
}

func newMemPlayers(players ...*game.Player) *memPlayers {
	s := &memPlayers{players: map[string]*game.Player{}}
	for _, p := range players {
		s.players[p.Id] = p.Clone()
	}
	return s
}

func (s *memPlayers) Load(_ context.Context, id string) (*game.Player, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.players[id]
	if !ok {
		return nil, fmt.Errorf("loading %s: %w", id, game.ErrPlayerNotFound)
	}
	return p.Clone(), nil
}

func (s *memPlayers) Save(_ context.Context, p *game.Player) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failSave != nil {
		return s.failSave
	}
	s.saves++
	s.players[p.Id] = p.Clone()
	return nil
}

func (s *memPlayers) get(id string) *game.Player {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.players[id].Clone()
}

type recorder struct {
	mu        sync.Mutex
	personal  []Notification
	broadcast []Notification
}

func (r *recorder) SendPlayer(_ context.Context, _ string, n Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.personal = append(r.personal, n)
	return nil
}

func (r *recorder) Broadcast(_ context.Context, _ string, n Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.broadcast = append(r.broadcast, n)
	return nil
}

type harness struct {
	engine  *Engine
	players *memPlayers
	out     *recorder
	rng     *fixedRand
}

// newHarness builds an engine with dev commands over the test catalog and a
// single player prepared by setup.
func newHarness(t *testing.T, race string, setup func(p *game.Player, cat *game.Catalog)) *harness {
	t.Helper()
	cat := gametest.Catalog(t)
	p := gametest.Player(t, cat, race)
	if setup != nil {
		setup(p, cat)
	}

	h := &harness{
		players: newMemPlayers(p),
		out:     &recorder{},
		rng:     &fixedRand{},
	}
	h.engine = NewEngine(cat, h.players,
		WithDelivery(h.out),
		WithRand(h.rng),
		WithDevCommands(true),
	)
	return h
}

func (h *harness) process(t *testing.T, raw string) []Notification {
	t.Helper()
	_, notes, err := h.engine.Process(context.Background(), "p1", raw)
	if err != nil {
		t.Fatalf("processing %q: %v", raw, err)
	}
	return notes
}

// texts returns the text of every notification that has some.
func texts(notes []Notification) []string {
	var out []string
	for _, n := range notes {
		if n.Text != "" {
			out = append(out, n.Text)
		}
	}
	return out
}

func hasText(notes []Notification, want string) bool {
	for _, s := range texts(notes) {
		if strings.Contains(s, want) {
			return true
		}
	}
	return false
}

func countText(notes []Notification, want string) int {
	n := 0
	for _, s := range texts(notes) {
		if s == want {
			n++
		}
	}
	return n
}

// fighting puts the player in a fight with a full health instance of
// monster.
func fighting(monster string) func(p *game.Player, cat *game.Catalog) {
	return func(p *game.Player, cat *game.Catalog) {
		m := cat.Monster(monster)
		p.Combat = &game.CombatState{MonsterId: monster, MonsterHP: m.MaxHP, MonsterMaxHP: m.MaxHP}
	}
}
