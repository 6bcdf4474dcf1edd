package engine

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/pixil98/go-fluxmud/internal/combat"
	"github.com/pixil98/go-fluxmud/internal/game"
)

const DefaultFightTTL = 10 * time.Minute

// FightCache holds the live monster instance of each player's fight. The
// persisted combat state is authoritative: a cached instance is only used
// when it still matches it, otherwise the instance is rebuilt from the
// template.
type FightCache struct {
	ttl time.Duration
	now func() time.Time

	mu      sync.Mutex
	entries map[string]*fightEntry
}

type fightEntry struct {
	monster *combat.Monster
	touched time.Time
}

func NewFightCache(ttl time.Duration) *FightCache {
	if ttl <= 0 {
		ttl = DefaultFightTTL
	}
	return &FightCache{
		ttl:     ttl,
		now:     time.Now,
		entries: map[string]*fightEntry{},
	}
}

// Get returns the instance described by cs, rebuilding and caching it from
// tmpl when the cached copy is missing or out of date.
func (c *FightCache) Get(playerId string, cs *game.CombatState, tmpl *game.Monster) *combat.Monster {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.entries[playerId]; ok && e.monster.Matches(cs) {
		e.touched = c.now()
		return e.monster
	}

	m := combat.Restore(tmpl, cs)
	c.entries[playerId] = &fightEntry{monster: m, touched: c.now()}
	return m
}

// Put caches m as the player's current opponent.
func (c *FightCache) Put(playerId string, m *combat.Monster) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[playerId] = &fightEntry{monster: m, touched: c.now()}
}

// Evict forgets the player's opponent.
func (c *FightCache) Evict(playerId string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, playerId)
}

func (c *FightCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Tick evicts entries idle for longer than the TTL. It satisfies
// driver.Manager.
func (c *FightCache) Tick(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	cutoff := c.now().Add(-c.ttl)
	evicted := 0
	for id, e := range c.entries {
		if e.touched.Before(cutoff) {
			delete(c.entries, id)
			evicted++
		}
	}
	if evicted > 0 {
		slog.DebugContext(ctx, "evicted idle fights", "count", evicted)
	}
	return nil
}
