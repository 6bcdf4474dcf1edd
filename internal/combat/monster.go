package combat

import (
	"github.com/google/uuid"

	"github.com/pixil98/go-fluxmud/internal/game"
)

// Monster is a live copy of a template. Every fight gets its own instance.
type Monster struct {
	InstanceId string
	Template   *game.Monster
	HP         int
	MaxHP      int
}

// Spawn creates a fresh instance of t at full health.
func Spawn(t *game.Monster) *Monster {
	return &Monster{
		InstanceId: uuid.NewString(),
		Template:   t,
		HP:         t.MaxHP,
		MaxHP:      t.MaxHP,
	}
}

// Restore rebuilds the instance described by a persisted combat state.
func Restore(t *game.Monster, cs *game.CombatState) *Monster {
	id := cs.InstanceId
	if id == "" {
		id = uuid.NewString()
	}
	return &Monster{
		InstanceId: id,
		Template:   t,
		HP:         cs.MonsterHP,
		MaxHP:      cs.MonsterMaxHP,
	}
}

// Matches reports whether the instance is the one cs describes.
func (m *Monster) Matches(cs *game.CombatState) bool {
	return cs != nil &&
		m.Template.Id == cs.MonsterId &&
		m.InstanceId == cs.InstanceId &&
		m.HP == cs.MonsterHP &&
		m.MaxHP == cs.MonsterMaxHP
}

// State returns the persisted form of the instance.
func (m *Monster) State(buffs []game.Buff) *game.CombatState {
	return &game.CombatState{
		MonsterId:    m.Template.Id,
		InstanceId:   m.InstanceId,
		MonsterHP:    m.HP,
		MonsterMaxHP: m.MaxHP,
		Buffs:        buffs,
	}
}

func (m *Monster) Name() string {
	return m.Template.Name
}
