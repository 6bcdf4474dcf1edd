package game_test

import (
	"slices"
	"testing"

	"github.com/pixil98/go-testutil"

	"github.com/pixil98/go-fluxmud/internal/game"
	"github.com/pixil98/go-fluxmud/internal/game/gametest"
)

func TestSpendFlux(t *testing.T) {
	p := &game.Player{Flux: 50, MaxFlux: 100}

	if err := p.SpendFlux(30); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "after first use", p.Flux, 20)

	err := p.SpendFlux(30)
	testutil.AssertErrorContains(t, err, "Not enough Flux! Need 30, have 20.")
	testutil.AssertEqual(t, "after rejected use", p.Flux, 20)
}

func TestRegenFlux(t *testing.T) {
	tests := map[string]struct {
		flux     int
		max      int
		expFlux  int
		expRegen int
	}{
		"ten percent":  {flux: 20, max: 100, expFlux: 30, expRegen: 10},
		"capped":       {flux: 95, max: 100, expFlux: 100, expRegen: 5},
		"already full": {flux: 100, max: 100, expFlux: 100, expRegen: 0},
		"truncated":    {flux: 0, max: 95, expFlux: 9, expRegen: 9},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			p := &game.Player{Flux: tt.flux, MaxFlux: tt.max}
			regen := p.RegenFlux()
			testutil.AssertEqual(t, "flux", p.Flux, tt.expFlux)
			testutil.AssertEqual(t, "regen", regen, tt.expRegen)
		})
	}
}

func TestCooldowns(t *testing.T) {
	for _, c := range []int{1, 2, 3, 5} {
		p := &game.Player{}
		p.StartCooldown("kamehameha", c)

		readyNotices := 0
		rounds := 0
		for p.Cooldown("kamehameha") > 0 {
			rounds++
			readyNotices += len(p.TickCooldowns())
			if rounds > c {
				t.Fatalf("cooldown %d still running after %d rounds", c, rounds)
			}
		}

		testutil.AssertEqual(t, "rounds", rounds, c)
		testutil.AssertEqual(t, "ready notices", readyNotices, 1)
		testutil.AssertEqual(t, "ticks after clear", len(p.TickCooldowns()), 0)
	}
}

func TestTickCooldowns_ReportsEachSkillOnce(t *testing.T) {
	p := &game.Player{}
	p.StartCooldown("b", 1)
	p.StartCooldown("a", 1)
	p.StartCooldown("c", 2)
	p.StartCooldown("zero", 0)

	testutil.AssertEqual(t, "first tick", slices.Equal(p.TickCooldowns(), []string{"a", "b"}), true)
	testutil.AssertEqual(t, "second tick", slices.Equal(p.TickCooldowns(), []string{"c"}), true)
	testutil.AssertEqual(t, "map cleared", p.Cooldowns == nil, true)
}

func TestCheckSkill(t *testing.T) {
	cat := gametest.Catalog(t)

	tests := map[string]struct {
		race   string
		skill  string
		setup  func(p *game.Player)
		expErr string
	}{
		"usable": {
			race:  "zenkai",
			skill: "ki_blast",
		},
		"not learned": {
			race:   "zenkai",
			skill:  "kamehameha",
			expErr: "You haven't learned Kamehameha yet.",
		},
		"level too low": {
			race:  "zenkai",
			skill: "kamehameha",
			setup: func(p *game.Player) {
				p.LearnedSkills = append(p.LearnedSkills, "kamehameha")
			},
			expErr: "Kamehameha requires level 5.",
		},
		"wrong race": {
			race:  "terran",
			skill: "kamehameha",
			setup: func(p *game.Player) {
				p.Level = 5
				p.LearnedSkills = append(p.LearnedSkills, "kamehameha")
			},
			expErr: "can only be used by the Zenkai",
		},
		"wrong form": {
			race:  "zenkai",
			skill: "super_punch",
			setup: func(p *game.Player) {
				p.Level = 5
				p.LearnedSkills = append(p.LearnedSkills, "super_punch")
			},
			expErr: "requires the Super Zenkai form",
		},
		"right form": {
			race:  "zenkai",
			skill: "super_punch",
			setup: func(p *game.Player) {
				p.Level = 5
				p.Transformation = "Super Zenkai"
				p.LearnedSkills = append(p.LearnedSkills, "super_punch")
			},
		},
		"on cooldown": {
			race:  "zenkai",
			skill: "solar_flare",
			setup: func(p *game.Player) {
				p.StartCooldown("solar_flare", 2)
			},
			expErr: "Solar Flare is on cooldown! 2 rounds remaining.",
		},
		"not enough flux": {
			race:  "zenkai",
			skill: "solar_flare",
			setup: func(p *game.Player) {
				p.Flux = 19
			},
			expErr: "Not enough Flux! Need 20, have 19.",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			p := gametest.Player(t, cat, tt.race)
			if tt.setup != nil {
				tt.setup(p)
			}
			before := p.Clone()

			err := p.CheckSkill(cat.Skill(tt.skill), cat)
			if tt.expErr != "" {
				testutil.AssertErrorContains(t, err, tt.expErr)
			} else if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			testutil.AssertEqual(t, "flux untouched", p.Flux, before.Flux)
		})
	}
}
