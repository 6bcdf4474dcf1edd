// Package gametest builds a small, fully cross-referenced content catalog for
// tests in other packages.
package gametest

import (
	"fmt"
	"testing"

	"github.com/pixil98/go-fluxmud/internal/game"
	"github.com/pixil98/go-fluxmud/internal/storage"
)

const StartRoom = "start_area"

// Stores returns fresh content stores. Every call returns new values so tests
// may mutate them.
func Stores() game.Stores {
	items := map[string]*game.Item{
		"potion": {Name: "Potion", Type: game.ItemConsumable, Price: 20, Effect: game.ItemEffect{HP: 50}, Description: "Restores 50 HP."},
		"ether":  {Name: "Ether", Type: game.ItemConsumable, Price: 30, Effect: game.ItemEffect{Flux: 30}, Description: "Restores 30 Flux."},
		"sword":  {Name: "Sword", Type: game.ItemWeapon, Price: 50},
		"relic":  {Name: "Relic", Type: game.ItemKey, Price: 500},
	}
	for i := 1; i <= 7; i++ {
		items[fmt.Sprintf("cosmic_shard_%d", i)] = &game.Item{Name: fmt.Sprintf("Cosmic Shard %d", i), Type: game.ItemKey}
	}

	return game.Stores{
		Rooms: storage.NewMemoryStore(map[string]*game.Room{
			"start_area": {Name: "Start Area", Description: "A quiet clearing.", Exits: map[string]string{"north": "forest", "east": "market", "down": "pit"}},
			"forest":     {Name: "Forest", Description: "Something rustles.", Exits: map[string]string{"south": "start_area"}, Monsters: []string{"saibaman"}},
			"market":     {Name: "Market", Description: "Stalls everywhere.", Exits: map[string]string{"west": "start_area"}},
			"pit":        {Name: "Pit", Description: "It smells of training.", Exits: map[string]string{"up": "start_area"}, Monsters: []string{"dummy"}},
			"lair":       {Name: "Lair", Description: "Bones.", Exits: map[string]string{"out": "start_area"}, Monsters: []string{"brute"}},
		}),
		Monsters: storage.NewMemoryStore(map[string]*game.Monster{
			"saibaman": {Name: "Saibaman", Stats: game.Attributes{STR: 10, DEX: 5, VIT: 5}, MaxHP: 50, Exp: 30, Drops: []game.Drop{{ItemId: "potion", Rate: 0.5}}},
			"dummy":    {Name: "Training Dummy", MaxHP: 1, Exp: 100, Drops: []game.Drop{{ItemId: "cosmic_shard_1", Rate: 1}, {ItemId: "relic", Rate: 0}}},
			"brute":    {Name: "Brute", Stats: game.Attributes{STR: 1000, VIT: 1000}, MaxHP: 100000},
			"wall":     {Name: "Wall", Stats: game.Attributes{VIT: 1000}, MaxHP: 100000, Exp: 1},
		}),
		Items: storage.NewMemoryStore(items),
		Shops: storage.NewMemoryStore(map[string]*game.Shop{
			"market_shop": {Name: "Capsule Mart", Room: "market", Inventory: []string{"potion", "ether", "sword", "relic"}},
		}),
		Skills: storage.NewMemoryStore(map[string]*game.Skill{
			"ki_blast":    {Name: "Ki Blast", Description: "A quick blast.", Level: 1, FluxCost: 10, DamageMultiplier: 1.5, StatBasis: game.BasisINT},
			"solar_flare": {Name: "Solar Flare", Description: "Blinds the enemy.", Level: 1, FluxCost: 20, Cooldown: 3, Stun: true},
			"rage":        {Name: "Rage", Description: "Fury.", Level: 3, FluxCost: 10, BuffStat: game.StatSTR, BuffPercent: 50, BuffDuration: 2},
			"kamehameha":  {Name: "Kamehameha", Description: "The signature wave.", Level: 5, Race: "zenkai", FluxCost: 30, Cooldown: 2, DamageMultiplier: 3, StatBasis: game.BasisSTR},
			"super_punch": {Name: "Super Punch", Description: "Only when transformed.", Level: 5, Race: "zenkai", Form: "Super Zenkai", DamageMultiplier: 2},
			"heal":        {Name: "Heal", Description: "Mend wounds.", Level: 1, Race: "vitalis", FluxCost: 15, HealPercent: 30},
		}),
		Quests: storage.NewMemoryStore(map[string]*game.Quest{
			"saibaman_hunt": {Title: "Saibaman Hunt", Description: "Defeat 2 Saibamen.", Type: game.QuestKill, Target: "saibaman", Count: 2, Reward: game.QuestReward{Currency: 100, Exp: 50, Item: "potion"}},
			"dummy_drill":   {Title: "Dummy Drill", Description: "Break a dummy.", Type: game.QuestKill, Target: "dummy", Count: 1, Reward: game.QuestReward{Exp: 100}},
		}),
		NPCs: storage.NewMemoryStore(map[string]*game.NPC{
			"elder": {Name: "Elder", Room: "start_area", QuestId: "saibaman_hunt", Dialogue: game.Dialogue{
				Default:       "Peace be with you.",
				QuestStart:    "Please deal with the Saibamen, {{ .Player }}.",
				QuestPending:  "They are still out there.",
				QuestComplete: "Thank you!",
			}},
			"sensei":   {Name: "Sensei", Room: "pit", QuestId: "dummy_drill", Dialogue: game.Dialogue{Default: "Train hard."}},
			"merchant": {Name: "Merchant", Room: "market", Dialogue: game.Dialogue{Default: "Buy something."}},
		}),
		Races: storage.NewMemoryStore(map[string]*game.Race{
			"zenkai": {
				Name:      "Zenkai",
				BaseStats: game.Attributes{STR: 10, DEX: 5, INT: 3, VIT: 8},
				Growth:    map[string]float64{"str": 2, "dex": 1, "int": 0.5, "vit": 1.5},
				BaseFlux:  80,
				Forms: []game.Transformation{
					{Name: "Super Zenkai", Level: 5, Multiplier: 1.5},
					{Name: "Super Zenkai 2", Level: 10, Multiplier: 2},
				},
				Passive: game.Passive{Kind: game.PassiveBattleHardened, Name: "Battle Hardened", Description: "+5% STR per win.", Percent: 5, Cap: 50},
			},
			"vitalis": {
				Name:      "Vitalis",
				BaseStats: game.Attributes{STR: 4, DEX: 5, INT: 10, VIT: 10},
				Growth:    map[string]float64{"str": 0.5, "dex": 1, "int": 2, "vit": 2},
				Forms: []game.Transformation{
					{Name: "Giant Vitalis", Level: 5, Multiplier: 1, Multipliers: map[string]float64{"str": 2, "vit": 1.5}},
				},
				Passive: game.Passive{Kind: game.PassiveRegeneration, Name: "Regeneration", Description: "Restore 5% max HP each round.", Percent: 5},
			},
			"terran": {
				Name:      "Terran",
				BaseStats: game.Attributes{STR: 6, DEX: 6, INT: 6, VIT: 6},
				Growth:    map[string]float64{"str": 1.2, "dex": 1.2, "int": 1.2, "vit": 1.2},
				Passive:   game.Passive{Kind: game.PassiveTacticalMind, Name: "Tactical Mind", Description: "+10% damage to known foes.", Percent: 10},
			},
			"glacial": {
				Name:      "Glacial",
				BaseStats: game.Attributes{STR: 8, DEX: 8, INT: 4, VIT: 8},
				Growth:    map[string]float64{"str": 1.5, "dex": 1.5, "int": 0.8, "vit": 1.5},
				Passive:   game.Passive{Kind: game.PassiveIceArmor, Name: "Ice Armor", Description: "Reduce damage taken by 10%.", Percent: 10},
			},
		}),
	}
}

// Catalog builds a catalog over Stores and fails the test if it does not
// resolve.
func Catalog(t testing.TB) *game.Catalog {
	t.Helper()
	cat, err := game.NewCatalog(Stores(), StartRoom)
	if err != nil {
		t.Fatalf("building catalog: %v", err)
	}
	return cat
}

// Player creates a fresh level 1 character of race in the start room.
func Player(t testing.TB, cat *game.Catalog, race string) *game.Player {
	t.Helper()
	r := cat.Race(race)
	if r == nil {
		t.Fatalf("unknown race %q", race)
	}
	return game.NewPlayer("p1", "goku", r, StartRoom, cat)
}
