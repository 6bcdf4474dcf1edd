package engine

import (
	"slices"

	"github.com/pixil98/go-fluxmud/internal/game"
)

// Kind classifies a notification for the delivery layer.
type Kind string

const (
	KindSystemText    Kind = "system-text"
	KindCombatLog     Kind = "combat-log"
	KindRoomBroadcast Kind = "room-broadcast"
	KindStateSnapshot Kind = "state-snapshot"
)

// Notification is one message produced by a command. Personal notifications
// carry PlayerId; broadcasts carry Group instead.
type Notification struct {
	Kind     Kind      `json:"kind"`
	PlayerId string    `json:"player_id,omitempty"`
	Group    string    `json:"group,omitempty"`
	Sender   string    `json:"sender,omitempty"`
	Text     string    `json:"text,omitempty"`
	Snapshot *Snapshot `json:"snapshot,omitempty"`
}

// Snapshot is the client-facing view of a player after a command.
type Snapshot struct {
	Name           string          `json:"name"`
	Race           string          `json:"race"`
	Level          int             `json:"level"`
	Exp            int             `json:"exp"`
	ExpNext        int             `json:"exp_next"`
	HP             int             `json:"hp"`
	MaxHP          int             `json:"max_hp"`
	Flux           int             `json:"flux"`
	MaxFlux        int             `json:"max_flux"`
	Currency       int             `json:"currency"`
	Stats          game.Attributes `json:"stats"`
	Transformation string          `json:"transformation"`
	Room           *RoomView       `json:"room,omitempty"`
	Combat         *CombatView     `json:"combat,omitempty"`
}

type RoomView struct {
	Id          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Exits       []string `json:"exits"`
	Monsters    []string `json:"monsters,omitempty"`
}

type CombatView struct {
	Monster string `json:"monster"`
	HP      int    `json:"hp"`
	MaxHP   int    `json:"max_hp"`
}

func (e *Engine) snapshot(p *game.Player) *Snapshot {
	race := e.cat.Race(p.Race)
	raceName := p.Race
	if race != nil {
		raceName = race.Name
	}

	s := &Snapshot{
		Name:           p.Name,
		Race:           raceName,
		Level:          p.Level,
		Exp:            p.Exp,
		ExpNext:        game.ExpToNextLevel(p.Level),
		HP:             p.HP,
		MaxHP:          p.MaxHP,
		Flux:           p.Flux,
		MaxFlux:        p.MaxFlux,
		Currency:       p.Currency,
		Stats:          game.EffectiveStats(p.Stats, race, p.Transformation, p.BattleBonus),
		Transformation: p.Transformation,
	}

	if room := e.cat.Room(p.Location); room != nil {
		s.Room = &RoomView{
			Id:          room.Id,
			Name:        room.Name,
			Description: room.Description,
			Exits:       exitNames(room),
			Monsters:    e.monsterNames(room),
		}
	}

	if p.Combat != nil {
		s.Combat = &CombatView{HP: p.Combat.MonsterHP, MaxHP: p.Combat.MonsterMaxHP, Monster: p.Combat.MonsterId}
		if m := e.cat.Monster(p.Combat.MonsterId); m != nil {
			s.Combat.Monster = m.Name
		}
	}
	return s
}

func exitNames(room *game.Room) []string {
	exits := make([]string, 0, len(room.Exits))
	for dir := range room.Exits {
		exits = append(exits, dir)
	}
	slices.Sort(exits)
	return exits
}

func (e *Engine) monsterNames(room *game.Room) []string {
	var names []string
	for _, id := range room.Monsters {
		if m := e.cat.Monster(id); m != nil && !slices.Contains(names, m.Name) {
			names = append(names, m.Name)
		}
	}
	return names
}
