package engine

import (
	"context"
	"slices"
	"strconv"

	"github.com/pixil98/go-fluxmud/internal/commands"
	"github.com/pixil98/go-fluxmud/internal/display"
	"github.com/pixil98/go-fluxmud/internal/game"
)

func (e *Engine) talk(_ context.Context, t *turn, _ commands.Command) error {
	npc := e.cat.NPCIn(t.p.Location)
	if npc == nil {
		return commands.Reject(commands.MsgNoOneToTalk, nil)
	}

	res := game.Talk(t.p, npc, e.cat)

	text, err := commands.ExpandTemplate(res.Line, map[string]any{"Player": display.Title(t.p.Name)})
	if err != nil {
		text = res.Line
	}
	t.system(commands.MsgNPCSays, map[string]any{"NPC": npc.Name, "Text": text})

	switch res.Outcome {
	case game.TalkStarted:
		t.system(commands.MsgQuestStarted, nil)
	case game.TalkCompleted:
		t.system(commands.MsgQuestCompleted, map[string]any{"Rewards": res.Rewards})
		e.announceLevelUps(t, res.LevelUps)
	}
	return nil
}

type questRow struct {
	Title       string
	Description string
	Progress    int
	Count       int
}

func (e *Engine) quests(_ context.Context, t *turn, _ commands.Command) error {
	ids := make([]string, 0, len(t.p.ActiveQuests))
	for id := range t.p.ActiveQuests {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	var rows []questRow
	for _, id := range ids {
		if q := e.cat.Quest(id); q != nil {
			rows = append(rows, questRow{Title: q.Title, Description: q.Description, Progress: t.p.ActiveQuests[id].Progress, Count: q.Count})
		}
	}
	if len(rows) == 0 {
		t.system(commands.MsgNoActiveQuests, nil)
		return nil
	}
	t.system(commands.MsgQuestList, map[string]any{"Quests": rows})
	return nil
}

func (e *Engine) wish(_ context.Context, t *turn, _ commands.Command) error {
	res, err := game.Wish(t.p, e.cat)
	if err != nil {
		return err
	}

	t.system(commands.MsgShardsResonate, nil)
	t.broadcast(e.group, "", commands.Render(commands.MsgArchonSummoned, nil))
	t.system(commands.MsgArchonAwakened, nil)
	t.system(commands.MsgLevelsGained, map[string]any{"Levels": len(res.LevelUps), "Old": res.OldLevel, "New": t.p.Level})
	for _, up := range res.LevelUps {
		e.announceSkills(t, up.Learned)
	}
	t.system(commands.MsgArchonDone, nil)
	e.metrics.levelUps.Add(float64(len(res.LevelUps)))
	return nil
}

// announceLevelUps reports each pass of the level-up loop to the player and
// the group.
func (e *Engine) announceLevelUps(t *turn, ups []game.LevelUp) {
	for _, up := range ups {
		t.system(commands.MsgLevelUp, map[string]any{"Level": up.Level})
		t.broadcast(e.group, "", commands.Render(commands.MsgLevelUpAll, map[string]any{"Name": display.Title(t.p.Name), "Level": up.Level}))
		e.announceSkills(t, up.Learned)
	}
	e.metrics.levelUps.Add(float64(len(ups)))
}

func (e *Engine) announceSkills(t *turn, learned []string) {
	if len(learned) == 0 {
		return
	}
	t.system(commands.MsgSkillsLearned, map[string]any{"Skills": learned})
	t.broadcast(e.group, "", commands.Render(commands.MsgSkillsLearnedAll, map[string]any{"Name": display.Title(t.p.Name), "Skills": learned}))
}

type skillRow struct {
	Name        string
	Status      string
	Flux        string
	Description string
}

func (e *Engine) skills(_ context.Context, t *turn, _ commands.Command) error {
	raceName := t.p.Race
	if race := e.cat.Race(t.p.Race); race != nil {
		raceName = race.Name
	}

	var rows []skillRow
	for _, s := range e.cat.SkillsFor(t.p.Race) {
		row := skillRow{Name: s.Name, Status: skillStatus(t.p, s), Flux: "-", Description: s.Description}
		if s.FluxCost > 0 {
			row.Flux = strconv.Itoa(s.FluxCost)
		}
		rows = append(rows, row)
	}
	t.system(commands.MsgSkillsTable, map[string]any{"Race": raceName, "Rows": rows})
	return nil
}

// skillStatus is the short status column of the skills table.
func skillStatus(p *game.Player, s *game.Skill) string {
	switch {
	case p.HasLearned(s.Id) && p.Cooldown(s.Id) > 0:
		return "cd " + strconv.Itoa(p.Cooldown(s.Id))
	case p.HasLearned(s.Id):
		return "learned"
	case p.Level >= s.Level:
		return "unlocked"
	default:
		return "Lv" + strconv.Itoa(s.Level)
	}
}

func (e *Engine) skillInfo(_ context.Context, t *turn, cmd commands.Command) error {
	name := cmd.Rest()
	if name == "" {
		return commands.Reject(commands.MsgSkillInfoUsage, nil)
	}
	s := e.findSkill(t.p.Race, name)
	if s == nil {
		return commands.Reject(commands.MsgSkillUnknown, map[string]any{"Skill": name})
	}

	status := "NOT LEARNED"
	switch {
	case t.p.HasLearned(s.Id):
		status = "LEARNED"
	case t.p.Level < s.Level:
		status = "LOCKED"
	}

	raceName := ""
	if s.Race != "" {
		raceName = s.Race
		if r := e.cat.Race(s.Race); r != nil {
			raceName = r.Name
		}
	}

	t.system(commands.MsgSkillInfo, map[string]any{
		"Name":        s.Name,
		"Status":      status,
		"Description": s.Description,
		"Level":       s.Level,
		"Race":        raceName,
		"Form":        s.Form,
		"FluxCost":    s.FluxCost,
		"HPCost":      s.HPCostPercent,
		"Cooldown":    s.Cooldown,
		"Remaining":   t.p.Cooldown(s.Id),
		"Effects":     s.Effects(),
	})
	return nil
}

func (e *Engine) skillOutsideCombat(_ context.Context, _ *turn, _ commands.Command) error {
	return commands.Reject(commands.MsgSkillsOnlyInCombat, nil)
}
