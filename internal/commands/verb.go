package commands

// State is the macro-state of a player when a command arrives.
type State int

const (
	StateNormal State = iota
	StateInCombat
)

func (s State) String() string {
	switch s {
	case StateInCombat:
		return "in_combat"
	default:
		return "normal"
	}
}

// Verb identifies what a command asks for, independent of the alias typed.
type Verb int

const (
	VerbUnknown Verb = iota
	VerbLook
	VerbMove
	VerbSay
	VerbHunt
	VerbTransform
	VerbRevert
	VerbInventory
	VerbBuy
	VerbUse
	VerbTalk
	VerbQuests
	VerbWish
	VerbSkills
	VerbSkillInfo
	VerbPassive
	VerbSkill
	VerbAttack
	VerbFlee
	VerbStats
	VerbHelp
	VerbCheatShards
	VerbCheatExp
	VerbCheatItem
)

var verbNames = map[Verb]string{
	VerbUnknown:     "unknown",
	VerbLook:        "look",
	VerbMove:        "move",
	VerbSay:         "say",
	VerbHunt:        "hunt",
	VerbTransform:   "transform",
	VerbRevert:      "revert",
	VerbInventory:   "inventory",
	VerbBuy:         "buy",
	VerbUse:         "use",
	VerbTalk:        "talk",
	VerbQuests:      "quests",
	VerbWish:        "wish",
	VerbSkills:      "skills",
	VerbSkillInfo:   "skillinfo",
	VerbPassive:     "passive",
	VerbSkill:       "skill",
	VerbAttack:      "attack",
	VerbFlee:        "flee",
	VerbStats:       "stats",
	VerbHelp:        "help",
	VerbCheatShards: "cheat_shards",
	VerbCheatExp:    "cheat_exp",
	VerbCheatItem:   "cheat_item",
}

func (v Verb) String() string {
	if name, ok := verbNames[v]; ok {
		return name
	}
	return "unknown"
}

// aliases maps every typed word that means the same thing in both states.
var aliases = map[string]Verb{
	"look":         VerbLook,
	"l":            VerbLook,
	"move":         VerbMove,
	"go":           VerbMove,
	"say":          VerbSay,
	"hunt":         VerbHunt,
	"transform":    VerbTransform,
	"revert":       VerbRevert,
	"inventory":    VerbInventory,
	"inv":          VerbInventory,
	"i":            VerbInventory,
	"buy":          VerbBuy,
	"shop":         VerbBuy,
	"use":          VerbUse,
	"item":         VerbUse,
	"talk":         VerbTalk,
	"quests":       VerbQuests,
	"q":            VerbQuests,
	"wish":         VerbWish,
	"skills":       VerbSkills,
	"skillinfo":    VerbSkillInfo,
	"si":           VerbSkillInfo,
	"passive":      VerbPassive,
	"skill":        VerbSkill,
	"attack":       VerbAttack,
	"a":            VerbAttack,
	"flee":         VerbFlee,
	"run":          VerbFlee,
	"stats":        VerbStats,
	"score":        VerbStats,
	"help":         VerbHelp,
	"cheat_shards": VerbCheatShards,
	"cheat_exp":    VerbCheatExp,
	"cheat_item":   VerbCheatItem,
}

// stateAliases are words whose meaning depends on the macro-state. They are
// consulted before the shared table.
var stateAliases = map[State]map[string]Verb{
	StateNormal:   {"sk": VerbSkills},
	StateInCombat: {"sk": VerbSkill},
}

// directions maps every accepted spelling of an exit to its canonical name.
var directions = map[string]string{
	"north": "north",
	"south": "south",
	"east":  "east",
	"west":  "west",
	"up":    "up",
	"down":  "down",
	"enter": "enter",
	"exit":  "exit",
	"n":     "north",
	"s":     "south",
	"e":     "east",
	"w":     "west",
	"u":     "up",
	"d":     "down",
}

// Direction returns the canonical exit name for word, or word unchanged when
// it is not a known direction. Rooms may define exits with arbitrary names.
func Direction(word string) string {
	if dir, ok := directions[word]; ok {
		return dir
	}
	return word
}

// Lookup resolves a lowercase word to its verb for the given state.
func Lookup(word string, state State) Verb {
	if v, ok := stateAliases[state][word]; ok {
		return v
	}
	if v, ok := aliases[word]; ok {
		return v
	}
	if _, ok := directions[word]; ok {
		return VerbMove
	}
	return VerbUnknown
}
