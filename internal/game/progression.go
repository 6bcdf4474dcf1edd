package game

import (
	"github.com/pixil98/go-fluxmud/internal/commands"
)

// LevelUp records one pass of the level-up loop.
type LevelUp struct {
	Level   int
	Learned []string // names of skills learned on this pass
}

// GrantExp adds amount experience and levels the player up as many times as
// the total allows. Residual experience carries over.
func GrantExp(p *Player, amount int, cat *Catalog) []LevelUp {
	if amount <= 0 {
		return nil
	}
	p.Exp += amount

	var ups []LevelUp
	for p.Exp >= ExpToNextLevel(p.Level) {
		p.Exp -= ExpToNextLevel(p.Level)
		ups = append(ups, levelUp(p, cat))
	}
	return ups
}

// levelUp advances one level: grows stats by the race's per-level deltas,
// recomputes both pools and learns every newly eligible skill.
func levelUp(p *Player, cat *Catalog) LevelUp {
	p.Level++

	race := cat.Race(p.Race)
	if race != nil {
		for stat, delta := range race.Growth {
			p.Stats.Set(stat, p.Stats.Get(stat)+growth(delta, p.Level))
		}
		p.MaxFlux = race.FluxPool() + p.Stats.INT*FluxPerInt
	} else {
		p.MaxFlux = BaseFlux + p.Stats.INT*FluxPerInt
	}

	p.MaxHP = p.Stats.VIT * HPPerVit
	if p.HP > p.MaxHP {
		p.HP = p.MaxHP
	}
	p.Flux = p.MaxFlux

	return LevelUp{Level: p.Level, Learned: p.learnSkills(cat)}
}

// learnSkills adds every skill the player qualifies for but does not know and
// returns their names in catalog order.
func (p *Player) learnSkills(cat *Catalog) []string {
	var names []string
	for _, s := range cat.SkillsFor(p.Race) {
		if s.Level > p.Level || p.HasLearned(s.Id) {
			continue
		}
		p.LearnedSkills = append(p.LearnedSkills, s.Id)
		names = append(names, s.Name)
	}
	return names
}

// WishResult reports what a wish granted.
type WishResult struct {
	OldLevel int
	LevelUps []LevelUp
}

// Wish consumes one of each cosmic shard and grants WishLevels levels through
// the normal level-up loop. Experience is reset and both pools are filled.
func Wish(p *Player, cat *Catalog) (*WishResult, error) {
	for _, id := range WishShards {
		if p.ItemCount(id) < 1 {
			return nil, reject(commands.MsgMissingShards, nil)
		}
	}
	for _, id := range WishShards {
		if err := p.RemoveItem(id, 1); err != nil {
			return nil, err
		}
	}

	res := &WishResult{OldLevel: p.Level}
	p.Exp = 0
	for range WishLevels {
		res.LevelUps = append(res.LevelUps, levelUp(p, cat))
	}
	p.HP = p.MaxHP
	p.Flux = p.MaxFlux
	return res, nil
}

// Die revives the player at startRoom with half HP and a full flux pool. The
// fight, any transformation and the Battle Hardened bonus are lost.
func (p *Player) Die(startRoom string) {
	p.Combat = nil
	p.HP = p.MaxHP * RevivePercent / 100
	p.Flux = p.MaxFlux
	p.Location = startRoom
	p.Transformation = BaseForm
	p.BattleBonus = 0
}

// RecordWin counts a defeated monster template and applies the Battle
// Hardened step. It returns the new bonus and whether it changed.
func (p *Player) RecordWin(monsterId string, race *Race) (int, bool) {
	if p.Defeated == nil {
		p.Defeated = map[string]int{}
	}
	p.Defeated[monsterId]++

	if race == nil || race.Passive.Kind != PassiveBattleHardened {
		return p.BattleBonus, false
	}
	next := min(race.Passive.Cap, p.BattleBonus+race.Passive.Percent)
	if next == p.BattleBonus {
		return p.BattleBonus, false
	}
	p.BattleBonus = next
	return next, true
}
