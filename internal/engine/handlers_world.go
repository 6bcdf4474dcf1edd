package engine

import (
	"context"
	"fmt"
	"strings"

	"github.com/pixil98/go-fluxmud/internal/combat"
	"github.com/pixil98/go-fluxmud/internal/commands"
	"github.com/pixil98/go-fluxmud/internal/display"
	"github.com/pixil98/go-fluxmud/internal/game"
)

func (e *Engine) look(_ context.Context, t *turn, _ commands.Command) error {
	room := e.cat.Room(t.p.Location)
	data := map[string]any{
		"Name":        room.Name,
		"Description": display.Wrap(room.Description),
		"Exits":       exitNames(room),
		"Monsters":    e.monsterNames(room),
	}
	if npc := e.cat.NPCIn(room.Id); npc != nil {
		data["NPC"] = npc.Name
	}
	if shop := e.cat.ShopIn(room.Id); shop != nil {
		data["Shop"] = shop.Name
	}
	t.system(commands.MsgRoom, data)
	return nil
}

func (e *Engine) move(ctx context.Context, t *turn, cmd commands.Command) error {
	if len(cmd.Args) == 0 {
		return commands.Reject(commands.MsgMoveUsage, nil)
	}
	dir := cmd.Args[0]

	room := e.cat.Room(t.p.Location)
	dest, ok := room.Exits[dir]
	if !ok || e.cat.Room(dest) == nil {
		return commands.Reject(commands.MsgCannotMove, nil)
	}

	t.p.Location = dest
	t.system(commands.MsgMoved, map[string]any{"Direction": dir})
	return e.look(ctx, t, cmd)
}

func (e *Engine) say(_ context.Context, t *turn, cmd commands.Command) error {
	text := cmd.Rest()
	if text == "" {
		return commands.Reject(commands.MsgSayUsage, nil)
	}
	t.broadcast(e.group, display.Title(t.p.Name), commands.Render(commands.MsgSay, map[string]any{"Text": text}))
	return nil
}

// hunt starts a fight with a random monster of the current room.
func (e *Engine) hunt(_ context.Context, t *turn, _ commands.Command) error {
	room := e.cat.Room(t.p.Location)
	if len(room.Monsters) == 0 {
		return commands.Reject(commands.MsgNothingToHunt, nil)
	}

	tmpl := e.cat.Monster(room.Monsters[e.resolver.Pick(len(room.Monsters))])
	if tmpl == nil {
		return fmt.Errorf("room %s lists an unknown monster", room.Id)
	}

	m := combat.Spawn(tmpl)
	t.p.Combat = m.State(nil)
	e.fights.Put(t.p.Id, m)

	t.system(commands.MsgFoundMonster, map[string]any{"Monster": m.Name()})
	t.combat(commands.Render(commands.MsgEngages, map[string]any{"Monster": m.Name()}))
	return nil
}

func (e *Engine) stats(_ context.Context, t *turn, _ commands.Command) error {
	p := t.p
	race := e.cat.Race(p.Race)
	eff := game.EffectiveStats(p.Stats, race, p.Transformation, p.BattleBonus)

	raceName := p.Race
	if race != nil {
		raceName = race.Name
	}

	sections := []display.Section{
		{
			Header: display.Title(p.Name),
			Lines: []display.Line{
				{Value: fmt.Sprintf("Level %d %s (%s)", p.Level, raceName, p.Transformation), Center: true},
			},
		},
		{
			Lines: []display.Line{
				{Value: fmt.Sprintf("HP:   %d/%d", p.HP, p.MaxHP)},
				{Value: fmt.Sprintf("Flux: %d/%d", p.Flux, p.MaxFlux)},
				{Value: fmt.Sprintf("EXP:  %d/%d", p.Exp, game.ExpToNextLevel(p.Level))},
				{Value: fmt.Sprintf("Credits: %d", p.Currency)},
			},
		},
		{
			Header: "Attributes",
			Lines: []display.Line{
				{Value: eff.String()},
			},
		},
	}
	if p.BattleBonus > 0 {
		sections[2].Lines = append(sections[2].Lines, display.Line{Value: fmt.Sprintf("Battle Hardened: +%d%% STR", p.BattleBonus)})
	}

	t.systemText(display.Box(sections, display.DefaultWidth))
	return nil
}

func (e *Engine) passive(_ context.Context, t *turn, _ commands.Command) error {
	race := e.cat.Race(t.p.Race)
	if race == nil || race.Passive.Kind == "" {
		t.system(commands.MsgNoPassive, nil)
		return nil
	}
	t.system(commands.MsgPassive, map[string]any{"Name": race.Passive.Name, "Description": race.Passive.Description})
	return nil
}

func (e *Engine) help(_ context.Context, t *turn, _ commands.Command) error {
	t.system(commands.MsgHelp, map[string]any{"Verbs": e.verbs(commands.StateNormal)})
	return nil
}

func (e *Engine) transform(_ context.Context, t *turn, cmd commands.Command) error {
	race := e.cat.Race(t.p.Race)
	name := cmd.Rest()

	if name == "" {
		var forms []string
		if race != nil {
			for _, f := range race.AvailableForms(t.p.Level) {
				forms = append(forms, f.Name)
			}
		}
		if len(forms) == 0 {
			t.system(commands.MsgNoForms, nil)
			return nil
		}
		t.system(commands.MsgAvailableForms, map[string]any{"Forms": forms})
		return nil
	}

	form, err := game.Transform(t.p, race, name)
	if err != nil {
		return err
	}
	t.system(commands.MsgTransformed, map[string]any{"Form": form.Name})
	t.system(commands.MsgPowerMultiplied, nil)
	return nil
}

func (e *Engine) revert(_ context.Context, t *turn, _ commands.Command) error {
	if err := t.p.Revert(); err != nil {
		return err
	}
	t.system(commands.MsgReverted, nil)
	return nil
}

// findSkill resolves a skill name, preferring the player's own race skills.
func (e *Engine) findSkill(race, name string) *game.Skill {
	for _, s := range e.cat.SkillsFor(race) {
		if strings.EqualFold(s.Name, name) {
			return s
		}
	}
	return e.cat.SkillByName(name)
}
