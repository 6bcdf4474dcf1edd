package game

import (
	"sort"

	"github.com/pixil98/go-fluxmud/internal/commands"
)

// SpendFlux deducts exactly cost, or rejects without touching the pool.
func (p *Player) SpendFlux(cost int) error {
	if cost > p.Flux {
		return reject(commands.MsgInsufficientFlux, map[string]any{"Required": cost, "Current": p.Flux})
	}
	p.Flux -= cost
	return nil
}

// RegenFlux restores FluxRegenPercent of max flux, capped at max, and returns
// the amount restored.
func (p *Player) RegenFlux() int {
	before := p.Flux
	p.Flux = min(p.MaxFlux, p.Flux+p.MaxFlux*FluxRegenPercent/100)
	return p.Flux - before
}

// RestoreFlux fills the flux pool.
func (p *Player) RestoreFlux() {
	p.Flux = p.MaxFlux
}

// Cooldown returns the rounds left before skill id can be used again.
func (p *Player) Cooldown(id string) int {
	return p.Cooldowns[id]
}

// StartCooldown puts skill id on cooldown for rounds.
func (p *Player) StartCooldown(id string, rounds int) {
	if rounds <= 0 {
		return
	}
	if p.Cooldowns == nil {
		p.Cooldowns = map[string]int{}
	}
	p.Cooldowns[id] = rounds
}

// TickCooldowns counts every cooldown down by one round and returns the ids
// of the skills that became ready, sorted.
func (p *Player) TickCooldowns() []string {
	var ready []string
	for id, rounds := range p.Cooldowns {
		if rounds <= 1 {
			delete(p.Cooldowns, id)
			ready = append(ready, id)
			continue
		}
		p.Cooldowns[id] = rounds - 1
	}
	if len(p.Cooldowns) == 0 {
		p.Cooldowns = nil
	}
	sort.Strings(ready)
	return ready
}

// CheckSkill validates that the player may use s right now. It does not
// mutate the player.
func (p *Player) CheckSkill(s *Skill, cat *Catalog) error {
	if !p.HasLearned(s.Id) {
		return reject(commands.MsgSkillNotLearned, map[string]any{"Skill": s.Name})
	}
	if p.Level < s.Level {
		return reject(commands.MsgSkillLevel, map[string]any{"Skill": s.Name, "Level": s.Level})
	}
	if !s.ForRace(p.Race) {
		raceName := s.Race
		if r := cat.Race(s.Race); r != nil {
			raceName = r.Name
		}
		return reject(commands.MsgSkillRace, map[string]any{"Skill": s.Name, "Race": raceName})
	}
	if s.Form != "" && s.Form != p.Transformation {
		return reject(commands.MsgSkillForm, map[string]any{"Skill": s.Name, "Form": s.Form})
	}
	if cd := p.Cooldown(s.Id); cd > 0 {
		return reject(commands.MsgSkillCooldown, map[string]any{"Skill": s.Name, "Remaining": cd})
	}
	if s.FluxCost > p.Flux {
		return reject(commands.MsgInsufficientFlux, map[string]any{"Required": s.FluxCost, "Current": p.Flux})
	}
	return nil
}
