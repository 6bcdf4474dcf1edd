package game

import (
	"fmt"
	"maps"
	"slices"

	"github.com/pixil98/go-errors"
)

// InventorySlot is a stack of one item. Qty is always positive.
type InventorySlot struct {
	ItemId string `json:"item_id"`
	Qty    int    `json:"qty"`
}

// Buff is a timed stat bonus from a skill. It lives only as long as a fight.
type Buff struct {
	Skill   string `json:"skill"`
	Stat    string `json:"stat"`
	Percent int    `json:"percent"`
	Rounds  int    `json:"rounds"`
}

// CombatState is persisted while a player is in a fight. Its presence is what
// puts the player in combat.
type CombatState struct {
	MonsterId    string `json:"monster_id"`
	InstanceId   string `json:"instance_id,omitempty"`
	MonsterHP    int    `json:"monster_hp"`
	MonsterMaxHP int    `json:"monster_max_hp"`
	Buffs        []Buff `json:"buffs,omitempty"`
}

// QuestProgress tracks one active quest.
type QuestProgress struct {
	Progress int `json:"progress"`
}

// Player is the whole persisted record of a character. It is loaded, mutated
// and saved as a unit.
type Player struct {
	Id       string `json:"id"`
	Name     string `json:"name"`
	Race     string `json:"race"`
	Level    int    `json:"level"`
	Exp      int    `json:"exp"`
	Currency int    `json:"currency"`

	Stats   Attributes `json:"stats"`
	HP      int        `json:"hp"`
	MaxHP   int        `json:"max_hp"`
	Flux    int        `json:"flux"`
	MaxFlux int        `json:"max_flux"`

	BattleBonus int            `json:"battle_hardened_bonus,omitempty"`
	Cooldowns   map[string]int `json:"skill_cooldowns,omitempty"`
	// Defeated counts wins per monster template.
	Defeated map[string]int `json:"defeated,omitempty"`

	Inventory      []InventorySlot `json:"inventory,omitempty"`
	Combat         *CombatState    `json:"combat_state,omitempty"`
	Transformation string          `json:"transformation"`
	LearnedSkills  []string        `json:"learned_skills,omitempty"`

	ActiveQuests    map[string]QuestProgress `json:"active_quests,omitempty"`
	CompletedQuests []string                 `json:"completed_quests,omitempty"`

	Location string `json:"location"`
}

// NewPlayer rolls a level 1 character of the given race standing in
// startRoom, with full pools and every level 1 skill of the race learned.
func NewPlayer(id, name string, race *Race, startRoom string, cat *Catalog) *Player {
	p := &Player{
		Id:             id,
		Name:           name,
		Race:           race.Id,
		Level:          1,
		Currency:       StartingCurrency,
		Stats:          race.BaseStats,
		Transformation: BaseForm,
		Location:       startRoom,
	}
	p.MaxHP = p.Stats.VIT * HPPerVit
	p.HP = p.MaxHP
	p.MaxFlux = race.FluxPool() + p.Stats.INT*FluxPerInt
	p.Flux = p.MaxFlux
	if cat != nil {
		p.learnSkills(cat)
	}
	return p
}

// Validate satisfies storage.ValidatingSpec and checks every bound the rules
// promise to keep.
func (p *Player) Validate() error {
	el := errors.NewErrorList()

	if p.Id == "" {
		el.Add(fmt.Errorf("player id is required"))
	}
	if p.Level < 1 {
		el.Add(fmt.Errorf("level must be at least 1"))
	}
	if p.Exp < 0 {
		el.Add(fmt.Errorf("exp cannot be negative"))
	}
	if p.Currency < 0 {
		el.Add(fmt.Errorf("currency cannot be negative"))
	}
	if p.HP < 0 || p.HP > p.MaxHP {
		el.Add(fmt.Errorf("hp %d outside 0..%d", p.HP, p.MaxHP))
	}
	if p.Flux < 0 || p.Flux > p.MaxFlux {
		el.Add(fmt.Errorf("flux %d outside 0..%d", p.Flux, p.MaxFlux))
	}
	for _, slot := range p.Inventory {
		if slot.Qty <= 0 {
			el.Add(fmt.Errorf("inventory slot %s has quantity %d", slot.ItemId, slot.Qty))
		}
	}
	for id := range p.ActiveQuests {
		if slices.Contains(p.CompletedQuests, id) {
			el.Add(fmt.Errorf("quest %s is both active and completed", id))
		}
	}

	return el.Err()
}

// InCombat reports whether the player is in a fight.
func (p *Player) InCombat() bool {
	return p.Combat != nil
}

// HasLearned reports whether the player knows skill id.
func (p *Player) HasLearned(id string) bool {
	return slices.Contains(p.LearnedSkills, id)
}

// Clone returns a deep copy. Commands run against a clone so a rejected
// command leaves the original untouched.
func (p *Player) Clone() *Player {
	c := *p
	c.Cooldowns = maps.Clone(p.Cooldowns)
	c.Defeated = maps.Clone(p.Defeated)
	c.ActiveQuests = maps.Clone(p.ActiveQuests)
	c.Inventory = slices.Clone(p.Inventory)
	c.LearnedSkills = slices.Clone(p.LearnedSkills)
	c.CompletedQuests = slices.Clone(p.CompletedQuests)
	if p.Combat != nil {
		cs := *p.Combat
		cs.Buffs = slices.Clone(p.Combat.Buffs)
		c.Combat = &cs
	}
	return &c
}

// HealHP restores up to amount HP without passing max and returns the amount
// actually restored.
func (p *Player) HealHP(amount int) int {
	before := p.HP
	p.HP = min(p.MaxHP, p.HP+max(0, amount))
	return p.HP - before
}
