package engine

import (
	"math/rand/v2"
	"testing"

	"github.com/pixil98/go-fluxmud/internal/combat"
)

var randomCommands = []string{
	"look", "n", "s", "e", "w", "u", "d", "west", "up",
	"hunt", "attack", "a", "flee",
	"skill ki blast", "skill solar flare", "skill rage", "skill heal", "skill kamehameha", "skill super punch",
	"use potion", "use ether", "use relic", "buy potion", "buy ether", "buy", "inventory",
	"talk", "quests", "wish", "cheat_shards", "cheat_exp 150", "cheat_item potion",
	"transform super zenkai", "transform giant vitalis", "revert",
	"stats", "skills", "skillinfo rage", "passive", "help", "sk", "say hi", "dance", "",
}

// TestProcess_RandomSessions drives every race through long random command
// sequences and checks the stored player after each command.
func TestProcess_RandomSessions(t *testing.T) {
	for _, race := range []string{"zenkai", "vitalis", "terran", "glacial"} {
		t.Run(race, func(t *testing.T) {
			h := newHarness(t, race, nil)
			h.engine = NewEngine(h.engine.Catalog(), h.players, WithRand(combat.NewRand(7, 11)), WithDevCommands(true))
			pick := rand.New(rand.NewPCG(3, 5))

			for i := range 400 {
				raw := randomCommands[pick.IntN(len(randomCommands))]
				notes := h.process(t, raw)

				if hasText(notes, "Something went wrong") {
					t.Fatalf("command %d %q failed internally", i, raw)
				}

				p := h.players.get("p1")
				if err := p.Validate(); err != nil {
					t.Fatalf("after command %d %q: %v", i, raw, err)
				}
				if h.engine.Catalog().Room(p.Location) == nil {
					t.Fatalf("after command %d %q: unknown room %q", i, raw, p.Location)
				}
				if p.Combat != nil && (p.Combat.MonsterHP <= 0 || p.Combat.MonsterHP > p.Combat.MonsterMaxHP) {
					t.Fatalf("after command %d %q: monster hp %d/%d", i, raw, p.Combat.MonsterHP, p.Combat.MonsterMaxHP)
				}
				for id, cd := range p.Cooldowns {
					if cd <= 0 {
						t.Fatalf("after command %d %q: cooldown %s is %d", i, raw, id, cd)
					}
				}
			}
		})
	}
}
