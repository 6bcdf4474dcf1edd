package engine

import (
	"context"
	"fmt"

	"github.com/pixil98/go-fluxmud/internal/combat"
	"github.com/pixil98/go-fluxmud/internal/commands"
	"github.com/pixil98/go-fluxmud/internal/game"
)

func (e *Engine) attack(_ context.Context, t *turn, _ commands.Command) error {
	m, err := e.opponent(t.p)
	if err != nil {
		return err
	}
	e.startRound(t)
	return e.settle(t, m, e.resolver.Attack(e.fighter(t.p, m), m))
}

func (e *Engine) skill(_ context.Context, t *turn, cmd commands.Command) error {
	name := cmd.Rest()
	if name == "" {
		return commands.Reject(commands.MsgSkillUsage, nil)
	}
	s := e.findSkill(t.p.Race, name)
	if s == nil {
		return commands.Reject(commands.MsgSkillUnknown, map[string]any{"Skill": name})
	}

	m, err := e.opponent(t.p)
	if err != nil {
		return err
	}
	e.startRound(t)

	if err := t.p.CheckSkill(s, e.cat); err != nil {
		return err
	}
	if err := t.p.SpendFlux(s.FluxCost); err != nil {
		return err
	}
	if s.FluxCost > 0 {
		t.system(commands.MsgFluxUsed, map[string]any{"Cost": s.FluxCost, "Current": t.p.Flux, "Max": t.p.MaxFlux})
	}
	t.p.StartCooldown(s.Id, s.Cooldown)

	return e.settle(t, m, e.resolver.UseSkill(e.fighter(t.p, m), m, s))
}

// flee ends the fight on success. A failed attempt costs nothing else.
func (e *Engine) flee(_ context.Context, t *turn, _ commands.Command) error {
	if !e.resolver.Flee() {
		t.system(commands.MsgFleeFailed, nil)
		return nil
	}
	t.p.Combat = nil
	e.fights.Evict(t.p.Id)
	t.system(commands.MsgFleeSuccess, nil)
	return nil
}

// opponent returns the live instance of the player's monster, rebuilt from
// the persisted combat state when the cache cannot vouch for it.
func (e *Engine) opponent(p *game.Player) (*combat.Monster, error) {
	tmpl := e.cat.Monster(p.Combat.MonsterId)
	if tmpl == nil {
		return nil, fmt.Errorf("unknown monster %s in combat state", p.Combat.MonsterId)
	}
	return e.fights.Get(p.Id, p.Combat, tmpl), nil
}

// startRound counts cooldowns down and announces the skills that became
// ready.
func (e *Engine) startRound(t *turn) {
	for _, id := range t.p.TickCooldowns() {
		name := id
		if s := e.cat.Skill(id); s != nil {
			name = s.Name
		}
		t.system(commands.MsgSkillReady, map[string]any{"Skill": name})
	}
}

func (e *Engine) fighter(p *game.Player, m *combat.Monster) combat.Fighter {
	race := e.cat.Race(p.Race)
	f := combat.Fighter{
		Stats:   game.EffectiveStats(p.Stats, race, p.Transformation, p.BattleBonus),
		HP:      p.HP,
		MaxHP:   p.MaxHP,
		Veteran: p.Defeated[m.Template.Id] > 0,
		Buffs:   p.Combat.Buffs,
	}
	if race != nil {
		f.Passive = race.Passive
	}
	return f
}

// settle applies a round's outcome to the player.
func (e *Engine) settle(t *turn, m *combat.Monster, out combat.Outcome) error {
	t.combat(out.Log...)
	e.metrics.combat.WithLabelValues(string(out.Status)).Inc()

	p := t.p
	switch out.Status {
	case combat.StatusWin:
		p.HP = out.PlayerHP
		p.Combat = nil
		e.fights.Evict(p.Id)

		t.system(commands.MsgExpGained, map[string]any{"Exp": out.Exp})
		ups := game.GrantExp(p, out.Exp, e.cat)

		if bonus, changed := p.RecordWin(m.Template.Id, e.cat.Race(p.Race)); changed {
			t.system(commands.MsgBattleHarden, map[string]any{"Bonus": bonus})
		}

		var names []string
		for _, id := range out.Loot {
			if item := e.cat.Item(id); item != nil {
				p.AddItem(id, 1)
				names = append(names, item.Name)
			}
		}
		if len(names) > 0 {
			t.system(commands.MsgLootDropped, map[string]any{"Items": names})
		}

		for _, u := range game.RecordKill(p, m.Template.Id, e.cat) {
			t.system(commands.MsgQuestUpdate, map[string]any{"Title": u.Quest.Title, "Progress": u.Progress, "Count": u.Quest.Count})
		}

		e.announceLevelUps(t, ups)
		p.RestoreFlux()

	case combat.StatusLoss:
		e.fights.Evict(p.Id)
		p.Die(e.cat.StartRoom().Id)
		t.system(commands.MsgFatalDamage, map[string]any{"HP": p.HP})

	default:
		p.HP = out.PlayerHP
		p.Combat = m.State(out.Buffs)
		if regen := p.RegenFlux(); regen > 0 {
			t.system(commands.MsgFluxRegen, map[string]any{"Regen": regen, "Current": p.Flux, "Max": p.MaxFlux})
		}
	}
	return nil
}
