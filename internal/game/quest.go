package game

import (
	"fmt"

	"github.com/pixil98/go-errors"
)

// QuestKill is the only quest type: defeat Count monsters of template Target.
const QuestKill = "kill"

// QuestReward is paid out once when a quest is turned in.
type QuestReward struct {
	Currency int    `json:"currency,omitempty"`
	Exp      int    `json:"exp,omitempty"`
	Item     string `json:"item,omitempty"`
}

// Quest is a quest definition.
type Quest struct {
	Id          string      `json:"-"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Type        string      `json:"type"`
	Target      string      `json:"target"`
	Count       int         `json:"count"`
	Reward      QuestReward `json:"reward"`
}

// Validate satisfies storage.ValidatingSpec.
func (q *Quest) Validate() error {
	el := errors.NewErrorList()

	if q.Title == "" {
		el.Add(fmt.Errorf("quest title is required"))
	}
	if q.Type != QuestKill {
		el.Add(fmt.Errorf("unsupported quest type %q", q.Type))
	}
	if q.Target == "" {
		el.Add(fmt.Errorf("quest target is required"))
	}
	if q.Count < 1 {
		el.Add(fmt.Errorf("quest count must be at least 1"))
	}

	return el.Err()
}

// Dialogue holds an NPC's lines for each quest state. Lines may use template
// fields .Player and .Quest.
type Dialogue struct {
	Default       string `json:"default"`
	QuestStart    string `json:"quest_start,omitempty"`
	QuestPending  string `json:"quest_pending,omitempty"`
	QuestComplete string `json:"quest_complete,omitempty"`
}

// NPC is a character players can talk to. An NPC offers at most one quest.
type NPC struct {
	Id       string   `json:"-"`
	Name     string   `json:"name"`
	Room     string   `json:"room"`
	QuestId  string   `json:"quest_id,omitempty"`
	Dialogue Dialogue `json:"dialogue"`
}

// Validate satisfies storage.ValidatingSpec.
func (n *NPC) Validate() error {
	el := errors.NewErrorList()

	if n.Name == "" {
		el.Add(fmt.Errorf("npc name is required"))
	}
	if n.Room == "" {
		el.Add(fmt.Errorf("npc room is required"))
	}
	if n.Dialogue.Default == "" {
		el.Add(fmt.Errorf("default dialogue is required"))
	}

	return el.Err()
}
