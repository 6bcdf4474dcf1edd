package engine

import (
	"context"
	"errors"
	"testing"

	"github.com/pixil98/go-testutil"
	"github.com/prometheus/client_golang/prometheus"
	promtest "github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/pixil98/go-fluxmud/internal/commands"
	"github.com/pixil98/go-fluxmud/internal/game"
)

func TestProcess_UnknownVerb(t *testing.T) {
	tests := map[string]struct {
		setup func(p *game.Player, cat *game.Catalog)
	}{
		"normal":    {},
		"in combat": {setup: fighting("wall")},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			h := newHarness(t, "zenkai", tt.setup)
			before := h.players.get("p1")

			notes := h.process(t, "dance wildly")

			testutil.AssertEqual(t, "notices", len(notes), 1)
			testutil.AssertEqual(t, "kind", notes[0].Kind, KindSystemText)
			testutil.AssertEqual(t, "text", notes[0].Text, "Unknown command.")
			testutil.AssertEqual(t, "delivered", len(h.out.personal), 1)
			testutil.AssertEqual(t, "saves", h.players.saves, 0)

			after := h.players.get("p1")
			testutil.AssertEqual(t, "hp", after.HP, before.HP)
			testutil.AssertEqual(t, "flux", after.Flux, before.Flux)
			testutil.AssertEqual(t, "location", after.Location, before.Location)
		})
	}
}

func TestProcess_EmptyCommand(t *testing.T) {
	h := newHarness(t, "zenkai", nil)

	notes := h.process(t, "   ")

	testutil.AssertEqual(t, "notices", len(notes), 0)
	testutil.AssertEqual(t, "saves", h.players.saves, 0)
}

func TestProcess_TooLong(t *testing.T) {
	h := newHarness(t, "zenkai", nil)

	long := make([]byte, commands.MaxCommandLength+1)
	for i := range long {
		long[i] = 'a'
	}
	notes := h.process(t, string(long))

	testutil.AssertEqual(t, "notices", len(notes), 1)
	testutil.AssertEqual(t, "text", notes[0].Text, "Command too long. Maximum length is 1000 characters.")
}

func TestProcess_UnknownPlayer(t *testing.T) {
	h := newHarness(t, "zenkai", nil)

	_, _, err := h.engine.Process(context.Background(), "nobody", "look")

	testutil.AssertEqual(t, "session closed", errors.Is(err, ErrSessionClosed), true)
	testutil.AssertEqual(t, "not found", errors.Is(err, game.ErrPlayerNotFound), true)
}

func TestProcess_DevCommands(t *testing.T) {
	tests := map[string]struct {
		dev      bool
		expText  string
		expLevel int
	}{
		"disabled": {dev: false, expText: "Unknown command.", expLevel: 1},
		"enabled":  {dev: true, expText: "Cheater! Gained 100 EXP.", expLevel: 2},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			h := newHarness(t, "zenkai", nil)
			h.engine = NewEngine(h.engine.Catalog(), h.players, WithRand(h.rng), WithDevCommands(tt.dev))

			notes := h.process(t, "cheat_exp 100")

			testutil.AssertEqual(t, "text", notes[0].Text, tt.expText)
			testutil.AssertEqual(t, "level", h.players.get("p1").Level, tt.expLevel)
		})
	}
}

func TestProcess_Move(t *testing.T) {
	tests := map[string]struct {
		raw         string
		expLocation string
		expText     string
	}{
		"direction alias": {raw: "n", expLocation: "forest", expText: "You move north..."},
		"move verb":       {raw: "move east", expLocation: "market", expText: "You move east..."},
		"go verb":         {raw: "go D", expLocation: "pit", expText: "You move down..."},
		"no exit":         {raw: "west", expLocation: "start_area", expText: "You cannot go that way."},
		"no direction":    {raw: "move", expLocation: "start_area", expText: "Move where?"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			h := newHarness(t, "zenkai", nil)

			notes := h.process(t, tt.raw)

			testutil.AssertEqual(t, "text", notes[0].Text, tt.expText)
			testutil.AssertEqual(t, "location", h.players.get("p1").Location, tt.expLocation)
		})
	}
}

func TestProcess_MoveLooksAround(t *testing.T) {
	h := newHarness(t, "zenkai", nil)

	notes := h.process(t, "north")

	testutil.AssertEqual(t, "notices", len(notes), 3)
	testutil.AssertEqual(t, "room", notes[1].Text, "Forest\nSomething rustles.\nYou sense: Saibaman\nExits: south")
	testutil.AssertEqual(t, "snapshot kind", notes[2].Kind, KindStateSnapshot)
	testutil.AssertEqual(t, "snapshot room", notes[2].Snapshot.Room.Id, "forest")
}

func TestProcess_StaleReferences(t *testing.T) {
	tests := map[string]struct {
		setup       func(p *game.Player, cat *game.Catalog)
		expRecovery string
	}{
		"missing room": {
			setup:       func(p *game.Player, _ *game.Catalog) { p.Location = "deleted_room" },
			expRecovery: "You were lost in the void and returned to reality.",
		},
		"missing monster": {
			setup: func(p *game.Player, _ *game.Catalog) {
				p.Combat = &game.CombatState{MonsterId: "deleted_monster", MonsterHP: 5, MonsterMaxHP: 5}
			},
			expRecovery: "Your opponent has vanished. The fight is over.",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			h := newHarness(t, "zenkai", tt.setup)

			notes := h.process(t, "dance")

			testutil.AssertEqual(t, "notices", len(notes), 2)
			testutil.AssertEqual(t, "recovery", notes[0].Text, tt.expRecovery)
			testutil.AssertEqual(t, "rejection", notes[1].Text, "Unknown command.")

			p := h.players.get("p1")
			testutil.AssertEqual(t, "location", p.Location, "start_area")
			testutil.AssertEqual(t, "combat", p.InCombat(), false)
		})
	}
}

func TestProcess_StateRouting(t *testing.T) {
	tests := map[string]struct {
		setup   func(p *game.Player, cat *game.Catalog)
		raw     string
		expText string
	}{
		"look in combat":       {setup: fighting("wall"), raw: "look", expText: "You are in combat! Valid commands: attack, flee, use, skill"},
		"move in combat":       {setup: fighting("wall"), raw: "n", expText: "You are in combat! Valid commands: attack, flee, use, skill"},
		"skills in combat":     {setup: fighting("wall"), raw: "skills", expText: "You are in combat! Valid commands: attack, flee, use, skill"},
		"attack out of combat": {raw: "attack", expText: "You are not in combat."},
		"flee out of combat":   {raw: "flee", expText: "You are not in combat."},
		"skill out of combat":  {raw: "skill ki blast", expText: "You can only use skills in combat!"},
		"sk out of combat":     {raw: "sk", expText: "Skill Progression [Zenkai]"},
		"sk in combat":         {setup: fighting("wall"), raw: "sk", expText: "Usage: skill <skill_name>"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			h := newHarness(t, "zenkai", tt.setup)

			notes := h.process(t, tt.raw)

			testutil.AssertEqual(t, "text", hasText(notes[:1], tt.expText), true)
		})
	}
}

func TestProcess_HandlerPanic(t *testing.T) {
	h := newHarness(t, "zenkai", nil)
	h.engine.routes[route{commands.StateNormal, commands.VerbLook}] = func(_ context.Context, t *turn, _ commands.Command) error {
		t.p.HP = 1
		panic("boom")
	}

	notes := h.process(t, "look")

	testutil.AssertEqual(t, "notices", len(notes), 1)
	testutil.AssertEqual(t, "text", notes[0].Text, "Something went wrong. Please try again.")
	testutil.AssertEqual(t, "hp", h.players.get("p1").HP, 80)
	testutil.AssertEqual(t, "saves", h.players.saves, 0)
}

func TestProcess_SaveFailure(t *testing.T) {
	h := newHarness(t, "zenkai", nil)
	h.players.failSave = errors.New("disk full")

	notes := h.process(t, "n")

	testutil.AssertEqual(t, "notices", len(notes), 1)
	testutil.AssertEqual(t, "text", notes[0].Text, "Something went wrong. Please try again.")
	testutil.AssertEqual(t, "location", h.players.get("p1").Location, "start_area")
}

func TestProcess_Say(t *testing.T) {
	h := newHarness(t, "zenkai", nil)

	notes := h.process(t, "say hello   there")

	testutil.AssertEqual(t, "kind", notes[0].Kind, KindRoomBroadcast)
	testutil.AssertEqual(t, "group", notes[0].Group, DefaultGroup)
	testutil.AssertEqual(t, "sender", notes[0].Sender, "Goku")
	testutil.AssertEqual(t, "text", notes[0].Text, "hello there")
	testutil.AssertEqual(t, "broadcasts", len(h.out.broadcast), 1)
	testutil.AssertEqual(t, "personal", len(h.out.personal), 1)

	notes = h.process(t, "say")
	testutil.AssertEqual(t, "usage", notes[0].Text, "Say what?")
}

func TestProcess_Shop(t *testing.T) {
	tests := map[string]struct {
		location    string
		raw         string
		expText     string
		expCurrency int
		expPotions  int
	}{
		"listing":       {location: "market", raw: "buy", expText: "Capsule Mart (Credits: 100)", expCurrency: 100},
		"purchase":      {location: "market", raw: "buy potion", expText: "You bought Potion for 20 Credits.", expCurrency: 80, expPotions: 1},
		"too expensive": {location: "market", raw: "buy relic", expText: "You cannot afford that.", expCurrency: 100},
		"not sold":      {location: "market", raw: "buy senzu", expText: "That item is not sold here.", expCurrency: 100},
		"no shop":       {location: "start_area", raw: "buy potion", expText: "There is no shop here.", expCurrency: 100},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			h := newHarness(t, "zenkai", func(p *game.Player, _ *game.Catalog) { p.Location = tt.location })

			notes := h.process(t, tt.raw)

			testutil.AssertEqual(t, "text", hasText(notes[:1], tt.expText), true)
			p := h.players.get("p1")
			testutil.AssertEqual(t, "currency", p.Currency, tt.expCurrency)
			testutil.AssertEqual(t, "potions", p.ItemCount("potion"), tt.expPotions)
		})
	}
}

func TestProcess_UseInCombatDoesNotCostARound(t *testing.T) {
	h := newHarness(t, "zenkai", func(p *game.Player, cat *game.Catalog) {
		fighting("wall")(p, cat)
		p.HP = 20
		p.AddItem("potion", 2)
	})

	notes := h.process(t, "use potion")

	testutil.AssertEqual(t, "text", notes[0].Text, "You used Potion and recovered 50 HP.")
	p := h.players.get("p1")
	testutil.AssertEqual(t, "hp", p.HP, 70)
	testutil.AssertEqual(t, "potions", p.ItemCount("potion"), 1)
	testutil.AssertEqual(t, "monster hp", p.Combat.MonsterHP, 100000)
}

func TestProcess_UseAtFullHealth(t *testing.T) {
	h := newHarness(t, "zenkai", func(p *game.Player, _ *game.Catalog) {
		p.AddItem("potion", 1)
	})

	notes := h.process(t, "use potion")

	testutil.AssertEqual(t, "text", notes[0].Text, "You used Potion.")
	p := h.players.get("p1")
	testutil.AssertEqual(t, "hp", p.HP, p.MaxHP)
	testutil.AssertEqual(t, "potions", p.ItemCount("potion"), 0)
	testutil.AssertEqual(t, "saves", h.players.saves, 1)
}

func TestProcess_InsufficientFluxRollsBack(t *testing.T) {
	h := newHarness(t, "zenkai", func(p *game.Player, cat *game.Catalog) {
		fighting("wall")(p, cat)
		p.Flux = 5
		p.Cooldowns = map[string]int{"solar_flare": 2}
	})

	notes := h.process(t, "skill ki blast")

	testutil.AssertEqual(t, "notices", len(notes), 1)
	testutil.AssertEqual(t, "text", notes[0].Text, "Not enough Flux! Need 10, have 5.")
	p := h.players.get("p1")
	testutil.AssertEqual(t, "flux", p.Flux, 5)
	testutil.AssertEqual(t, "cooldown untouched", p.Cooldown("solar_flare"), 2)
	testutil.AssertEqual(t, "monster hp", p.Combat.MonsterHP, 100000)
}

func TestProcess_SkillSpendsFlux(t *testing.T) {
	h := newHarness(t, "zenkai", fighting("wall"))

	notes := h.process(t, "skill Ki Blast")

	// 95 - 10, then 9 regenerated for a round that did not end the fight.
	testutil.AssertEqual(t, "used", hasText(notes, "Used 10 Flux (85/95 remaining)"), true)
	testutil.AssertEqual(t, "regen", hasText(notes, "Regenerated 9 Flux (94/95)"), true)
	testutil.AssertEqual(t, "flux", h.players.get("p1").Flux, 94)
}

func TestProcess_CooldownClearsAfterExactRounds(t *testing.T) {
	h := newHarness(t, "zenkai", fighting("wall"))

	notes := h.process(t, "skill solar flare")
	testutil.AssertEqual(t, "stunned", hasText(notes, "Wall is stunned and cannot attack!"), true)
	testutil.AssertEqual(t, "cooldown set", h.players.get("p1").Cooldown("solar_flare"), 3)

	notes = h.process(t, "attack")
	testutil.AssertEqual(t, "round 1 ready", countText(notes, "Solar Flare is ready!"), 0)

	notes = h.process(t, "skill solar flare")
	testutil.AssertEqual(t, "still cooling", notes[0].Text, "Solar Flare is on cooldown! 1 rounds remaining.")
	testutil.AssertEqual(t, "rejected attempt kept cooldown", h.players.get("p1").Cooldown("solar_flare"), 2)

	notes = h.process(t, "attack")
	testutil.AssertEqual(t, "round 2 ready", countText(notes, "Solar Flare is ready!"), 0)

	notes = h.process(t, "attack")
	testutil.AssertEqual(t, "round 3 ready", countText(notes, "Solar Flare is ready!"), 1)
	testutil.AssertEqual(t, "cleared", h.players.get("p1").Cooldown("solar_flare"), 0)

	notes = h.process(t, "attack")
	testutil.AssertEqual(t, "round 4 ready", countText(notes, "Solar Flare is ready!"), 0)
}

func TestProcess_Defeat(t *testing.T) {
	h := newHarness(t, "zenkai", func(p *game.Player, cat *game.Catalog) {
		fighting("brute")(p, cat)
		p.MaxHP = 100
		p.HP = 10
		p.Flux = 3
		p.Location = "lair"
		p.Transformation = "Super Zenkai"
		p.BattleBonus = 15
	})

	notes := h.process(t, "attack")

	testutil.AssertEqual(t, "revive notice", hasText(notes, "You took fatal damage! Reviving at start with 50 HP."), true)
	p := h.players.get("p1")
	testutil.AssertEqual(t, "hp", p.HP, 50)
	testutil.AssertEqual(t, "flux", p.Flux, p.MaxFlux)
	testutil.AssertEqual(t, "location", p.Location, "start_area")
	testutil.AssertEqual(t, "form", p.Transformation, game.BaseForm)
	testutil.AssertEqual(t, "battle bonus", p.BattleBonus, 0)
	testutil.AssertEqual(t, "combat", p.InCombat(), false)
	testutil.AssertEqual(t, "fight cache", h.engine.fights.Len(), 0)
}

func TestProcess_Flee(t *testing.T) {
	tests := map[string]struct {
		roll      float64
		expText   string
		expCombat bool
	}{
		"escapes": {roll: 0.1, expText: "You fled successfully!", expCombat: false},
		"caught":  {roll: 0.9, expText: "Failed to flee!", expCombat: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			h := newHarness(t, "zenkai", fighting("saibaman"))
			h.rng.floats = []float64{tt.roll}

			notes := h.process(t, "run")

			testutil.AssertEqual(t, "text", notes[0].Text, tt.expText)
			p := h.players.get("p1")
			testutil.AssertEqual(t, "combat", p.InCombat(), tt.expCombat)
			testutil.AssertEqual(t, "hp", p.HP, 80)
		})
	}
}

func TestProcess_HuntQuestAndTurnIn(t *testing.T) {
	h := newHarness(t, "zenkai", nil)

	h.process(t, "down")

	notes := h.process(t, "talk")
	testutil.AssertEqual(t, "dialogue", notes[0].Text, "Sensei: Train hard.")
	testutil.AssertEqual(t, "started", notes[1].Text, "Quest Started! Check 'quests' for details.")

	notes = h.process(t, "hunt")
	testutil.AssertEqual(t, "found", notes[0].Text, "You found a Training Dummy! Combat started!")
	testutil.AssertEqual(t, "engaged", notes[1].Kind, KindCombatLog)
	p := h.players.get("p1")
	testutil.AssertEqual(t, "monster", p.Combat.MonsterId, "dummy")
	testutil.AssertEqual(t, "instance", p.Combat.InstanceId != "", true)

	notes = h.process(t, "a")
	for _, want := range []string{
		"You hit Training Dummy for 20 damage!",
		"Training Dummy is defeated!",
		"You gained 100 EXP.",
		"[Battle Hardened] STR bonus: +5%!",
		"Loot dropped: Cosmic Shard 1",
		"Quest Update: Dummy Drill (1/1)",
		"LEVEL UP! You are now level 2!",
		"Goku has reached Level 2!",
	} {
		testutil.AssertEqual(t, want, hasText(notes, want), true)
	}

	p = h.players.get("p1")
	testutil.AssertEqual(t, "level", p.Level, 2)
	testutil.AssertEqual(t, "exp", p.Exp, 0)
	testutil.AssertEqual(t, "combat over", p.InCombat(), false)
	testutil.AssertEqual(t, "shard", p.ItemCount("cosmic_shard_1"), 1)
	testutil.AssertEqual(t, "relic", p.ItemCount("relic"), 0)
	testutil.AssertEqual(t, "progress", p.ActiveQuests["dummy_drill"].Progress, 1)

	notes = h.process(t, "talk")
	testutil.AssertEqual(t, "completed", notes[1].Text, "Quest Completed! Received: 100 EXP")

	notes = h.process(t, "talk")
	testutil.AssertEqual(t, "default", notes[0].Text, "Sensei: Train hard.")
	testutil.AssertEqual(t, "no quest notices", notes[1].Kind, KindStateSnapshot)

	p = h.players.get("p1")
	testutil.AssertEqual(t, "exp", p.Exp, 100)
	testutil.AssertEqual(t, "completed once", len(p.CompletedQuests), 1)
}

func TestProcess_Wish(t *testing.T) {
	h := newHarness(t, "zenkai", func(p *game.Player, cat *game.Catalog) {
		game.GrantExp(p, 300, cat)
		for _, id := range game.WishShards {
			p.AddItem(id, 1)
		}
		p.HP = 1
		p.Flux = 0
	})

	notes := h.process(t, "wish")

	testutil.AssertEqual(t, "levels", hasText(notes, "You have gained 5 levels! (Level 3 -> 8)"), true)
	testutil.AssertEqual(t, "broadcasts", len(h.out.broadcast) > 0, true)
	testutil.AssertEqual(t, "archon", h.out.broadcast[0].Text, "THE ARCHON has been summoned by a powerful traveler!")

	p := h.players.get("p1")
	testutil.AssertEqual(t, "level", p.Level, 8)
	testutil.AssertEqual(t, "exp", p.Exp, 0)
	testutil.AssertEqual(t, "hp", p.HP, p.MaxHP)
	testutil.AssertEqual(t, "flux", p.Flux, p.MaxFlux)
	for _, id := range game.WishShards {
		testutil.AssertEqual(t, id, p.ItemCount(id), 0)
	}

	notes = h.process(t, "wish")
	testutil.AssertEqual(t, "no shards", notes[0].Text, "You do not have all 7 Cosmic Shards.")
}

func TestProcess_TransformAndRevert(t *testing.T) {
	h := newHarness(t, "zenkai", func(p *game.Player, cat *game.Catalog) {
		game.GrantExp(p, 1000, cat)
	})

	notes := h.process(t, "transform")
	testutil.AssertEqual(t, "listing", notes[0].Text, "Available forms: Super Zenkai")

	notes = h.process(t, "transform super zenkai 2")
	testutil.AssertEqual(t, "locked", notes[0].Text, "You cannot transform into that.")

	notes = h.process(t, "transform super zenkai")
	testutil.AssertEqual(t, "transformed", notes[0].Text, "You scream in power and transform into Super Zenkai!")
	testutil.AssertEqual(t, "form", h.players.get("p1").Transformation, "Super Zenkai")

	notes = h.process(t, "revert")
	testutil.AssertEqual(t, "reverted", notes[0].Text, "You return to your Base form.")

	notes = h.process(t, "revert")
	testutil.AssertEqual(t, "already", notes[0].Text, "You are already in your Base form.")
}

func TestProcess_Metrics(t *testing.T) {
	h := newHarness(t, "zenkai", nil)
	m := NewMetrics(prometheus.NewRegistry())
	h.engine = NewEngine(h.engine.Catalog(), h.players, WithRand(h.rng), WithMetrics(m))

	h.process(t, "dance")
	h.process(t, "look")
	h.process(t, "look")

	testutil.AssertEqual(t, "rejected", promtest.ToFloat64(m.commands.WithLabelValues("unknown", resultRejected)), float64(1))
	testutil.AssertEqual(t, "ok", promtest.ToFloat64(m.commands.WithLabelValues("look", resultOK)), float64(2))
	testutil.AssertEqual(t, "reason", promtest.ToFloat64(m.rejections.WithLabelValues(commands.MsgUnknownCommand)), float64(1))
}
