package engine

import (
	"context"
	"slices"

	"github.com/pixil98/go-fluxmud/internal/commands"
)

type route struct {
	state commands.State
	verb  commands.Verb
}

type handler func(ctx context.Context, t *turn, cmd commands.Command) error

func (e *Engine) buildRoutes() map[route]handler {
	normal := map[commands.Verb]handler{
		commands.VerbLook:      e.look,
		commands.VerbMove:      e.move,
		commands.VerbSay:       e.say,
		commands.VerbHunt:      e.hunt,
		commands.VerbTransform: e.transform,
		commands.VerbRevert:    e.revert,
		commands.VerbInventory: e.inventory,
		commands.VerbBuy:       e.buy,
		commands.VerbUse:       e.use,
		commands.VerbTalk:      e.talk,
		commands.VerbQuests:    e.quests,
		commands.VerbWish:      e.wish,
		commands.VerbSkills:    e.skills,
		commands.VerbSkillInfo: e.skillInfo,
		commands.VerbPassive:   e.passive,
		commands.VerbSkill:     e.skillOutsideCombat,
		commands.VerbStats:     e.stats,
		commands.VerbHelp:      e.help,
	}
	if e.dev {
		normal[commands.VerbCheatShards] = e.cheatShards
		normal[commands.VerbCheatExp] = e.cheatExp
		normal[commands.VerbCheatItem] = e.cheatItem
	}

	inCombat := map[commands.Verb]handler{
		commands.VerbAttack: e.attack,
		commands.VerbFlee:   e.flee,
		commands.VerbUse:    e.use,
		commands.VerbSkill:  e.skill,
	}

	routes := map[route]handler{}
	for v, h := range normal {
		routes[route{commands.StateNormal, v}] = h
	}
	for v, h := range inCombat {
		routes[route{commands.StateInCombat, v}] = h
	}
	return routes
}

// dispatch finds the handler for the command in the player's current state.
// Verbs with no route are rejected: unknown verbs as unknown, known verbs
// with guidance for the state.
func (e *Engine) dispatch(ctx context.Context, t *turn, cmd commands.Command) error {
	state := commands.StateNormal
	if t.p.InCombat() {
		state = commands.StateInCombat
	}

	if h, ok := e.routes[route{state, cmd.Verb}]; ok {
		return h(ctx, t, cmd)
	}

	switch {
	case cmd.Verb == commands.VerbUnknown || e.isCheat(cmd.Verb):
		return commands.Reject(commands.MsgUnknownCommand, nil)
	case state == commands.StateInCombat:
		return commands.Reject(commands.MsgInCombat, nil)
	default:
		return commands.Reject(commands.MsgNotInCombat, nil)
	}
}

func (e *Engine) isCheat(v commands.Verb) bool {
	switch v {
	case commands.VerbCheatShards, commands.VerbCheatExp, commands.VerbCheatItem:
		return !e.dev
	}
	return false
}

// verbs lists the verbs routed in state, sorted.
func (e *Engine) verbs(state commands.State) []string {
	var names []string
	for r := range e.routes {
		if r.state == state {
			names = append(names, r.verb.String())
		}
	}
	slices.Sort(names)
	return names
}
