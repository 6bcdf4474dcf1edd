package combat

import (
	"fmt"

	"github.com/pixil98/go-fluxmud/internal/game"
)

// FleeChance is the probability that a flee attempt succeeds.
const FleeChance = 0.5

// Status is how a round ended.
type Status string

const (
	StatusContinue Status = "continue"
	StatusWin      Status = "win"
	StatusLoss     Status = "loss"
)

// Fighter is the player's side of a round.
type Fighter struct {
	Stats   game.Attributes // effective stats
	HP      int
	MaxHP   int
	Passive game.Passive
	// Veteran is set when the player has defeated this monster template before.
	Veteran bool
	Buffs   []game.Buff
}

// Outcome is the result of one round.
type Outcome struct {
	Status    Status
	Log       []string
	PlayerHP  int
	MonsterHP int
	// Exp and Loot are set on a win. Loot is never nil on a win.
	Exp  int
	Loot []string
	// Buffs are the player's buffs for the next round.
	Buffs []game.Buff
}

// Resolver runs combat rounds.
type Resolver struct {
	rng Rand
}

func NewResolver(rng Rand) *Resolver {
	return &Resolver{rng: rng}
}

// Attack resolves a round in which the player makes a plain attack.
func (r *Resolver) Attack(f Fighter, m *Monster) Outcome {
	return r.round(f, m, nil)
}

// UseSkill resolves a round in which the player uses s. Eligibility and flux
// are the caller's concern.
func (r *Resolver) UseSkill(f Fighter, m *Monster, s *game.Skill) Outcome {
	return r.round(f, m, s)
}

// Flee rolls a flee attempt.
func (r *Resolver) Flee() bool {
	return r.rng.Float64() < FleeChance
}

// Pick returns a uniform index in [0, n).
func (r *Resolver) Pick(n int) int {
	return r.rng.IntN(n)
}

type roundState struct {
	f      Fighter
	m      *Monster
	stats  game.Attributes
	hp     int
	log    []string
	shield int
	dodge  int
	stun   bool
	buff   *game.Buff
}

func (st *roundState) logf(format string, args ...any) {
	st.log = append(st.log, fmt.Sprintf(format, args...))
}

func (r *Resolver) round(f Fighter, m *Monster, skill *game.Skill) Outcome {
	st := &roundState{f: f, m: m, hp: f.HP}

	if f.Passive.Kind == game.PassiveRegeneration {
		heal := min(f.MaxHP-st.hp, f.MaxHP*f.Passive.Percent/100)
		if heal > 0 {
			st.hp += heal
			st.logf("[%s] You recover %d HP.", f.Passive.Name, heal)
		}
	}
	st.stats = applyBuffs(f.Stats, f.Buffs)

	if skill == nil {
		dmg := r.strike(st, BaseDamage(st.stats.STR, m.Template.Stats.VIT))
		st.logf("You hit %s for %d damage!", m.Name(), dmg)
	} else {
		r.useSkill(st, skill)
	}

	buffs := expireBuffs(f.Buffs)
	if st.buff != nil {
		buffs = append(buffs, *st.buff)
	}

	if m.HP <= 0 {
		m.HP = 0
		st.logf("%s is defeated!", m.Name())
		loot := []string{}
		for _, d := range m.Template.Drops {
			if r.rng.Float64() < d.Rate {
				loot = append(loot, d.ItemId)
			}
		}
		return Outcome{
			Status:   StatusWin,
			Log:      st.log,
			PlayerHP: st.hp,
			Exp:      m.Template.Exp,
			Loot:     loot,
		}
	}

	r.counter(st)

	out := Outcome{
		Status:    StatusContinue,
		Log:       st.log,
		PlayerHP:  st.hp,
		MonsterHP: m.HP,
		Buffs:     buffs,
	}
	if st.hp <= 0 {
		out.Status = StatusLoss
		out.PlayerHP = 0
		out.Buffs = nil
		st.logf("You have been defeated...")
		out.Log = st.log
	}
	return out
}

func (r *Resolver) useSkill(st *roundState, s *game.Skill) {
	st.logf("You use %s!", s.Name)

	if s.HPCostPercent > 0 {
		cost := st.f.MaxHP * s.HPCostPercent / 100
		st.hp = max(1, st.hp-cost)
		st.logf("%s costs you %d HP.", s.Name, cost)
	}

	if s.HealPercent > 0 {
		heal := min(st.f.MaxHP-st.hp, st.f.MaxHP*s.HealPercent/100)
		if heal > 0 {
			st.hp += heal
		}
		st.logf("You recover %d HP.", max(0, heal))
	}

	if s.DamageMultiplier > 0 {
		def := st.m.Template.Stats.VIT
		switch {
		case s.IgnoresDefense:
			def = 0
		case s.PiercePercent > 0:
			def -= def * s.PiercePercent / 100
		}
		raw := max(1, int(float64(s.StatBasis.Value(st.stats))*s.DamageMultiplier)-def)
		dmg := r.strike(st, raw)
		st.logf("%s hits %s for %d damage!", s.Name, st.m.Name(), dmg)
	}

	st.shield = s.ShieldPercent
	st.dodge = s.DodgePercent
	st.stun = s.Stun
	if st.shield > 0 {
		st.logf("You brace yourself.")
	}
	if s.BuffStat != "" && s.BuffDuration > 0 {
		st.buff = &game.Buff{Skill: s.Id, Stat: s.BuffStat, Percent: s.BuffPercent, Rounds: s.BuffDuration}
		st.logf("Your %s rises by %d%%!", s.BuffStat, s.BuffPercent)
	}
}

// strike applies variance and the Tactical Mind bonus to raw and deals the
// result to the monster.
func (r *Resolver) strike(st *roundState, raw int) int {
	dmg := Vary(r.rng, raw)
	if st.f.Veteran && st.f.Passive.Kind == game.PassiveTacticalMind {
		dmg += dmg * st.f.Passive.Percent / 100
	}
	st.m.HP -= dmg
	return dmg
}

func (r *Resolver) counter(st *roundState) {
	name := st.m.Name()
	switch {
	case st.stun:
		st.logf("%s is stunned and cannot attack!", name)
		return
	case st.dodge > 0 && r.rng.IntN(100) < st.dodge:
		st.logf("You dodge %s's attack!", name)
		return
	}

	dmg := Vary(r.rng, BaseDamage(st.m.Template.Stats.STR, st.stats.VIT))
	if st.f.Passive.Kind == game.PassiveIceArmor {
		dmg -= dmg * st.f.Passive.Percent / 100
	}
	if st.shield > 0 {
		dmg -= dmg * st.shield / 100
	}
	dmg = max(1, dmg)

	st.hp -= dmg
	st.logf("%s %s you for %d damage!", name, DamageVerb(dmg), dmg)
}

func applyBuffs(a game.Attributes, buffs []game.Buff) game.Attributes {
	for _, b := range buffs {
		v := a.Get(b.Stat)
		a.Set(b.Stat, v+v*b.Percent/100)
	}
	return a
}

func expireBuffs(buffs []game.Buff) []game.Buff {
	var out []game.Buff
	for _, b := range buffs {
		if b.Rounds > 1 {
			b.Rounds--
			out = append(out, b)
		}
	}
	return out
}
