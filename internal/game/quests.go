package game

import (
	"fmt"
	"slices"
)

// TalkOutcome is the state transition a conversation caused.
type TalkOutcome int

const (
	TalkDefault TalkOutcome = iota
	TalkStarted
	TalkPending
	TalkCompleted
)

// TalkResult is what happened when a player talked to an NPC.
type TalkResult struct {
	Outcome TalkOutcome
	Quest   *Quest
	// Line is the NPC dialogue for the outcome, before template expansion.
	Line string
	// Rewards describes the turn-in payout, for TalkCompleted only.
	Rewards  []string
	LevelUps []LevelUp
}

// Talk advances npc's quest for the player:
// not started -> in progress -> ready to turn in -> completed.
// Talking after completion, or to an NPC without a quest, gives the default
// line.
func Talk(p *Player, npc *NPC, cat *Catalog) *TalkResult {
	quest := cat.Quest(npc.QuestId)
	if quest == nil || slices.Contains(p.CompletedQuests, quest.Id) {
		return &TalkResult{Outcome: TalkDefault, Line: npc.Dialogue.Default}
	}

	progress, active := p.ActiveQuests[quest.Id]
	switch {
	case !active:
		if p.ActiveQuests == nil {
			p.ActiveQuests = map[string]QuestProgress{}
		}
		p.ActiveQuests[quest.Id] = QuestProgress{}
		return &TalkResult{Outcome: TalkStarted, Quest: quest, Line: line(npc.Dialogue.QuestStart, npc)}

	case progress.Progress < quest.Count:
		return &TalkResult{Outcome: TalkPending, Quest: quest, Line: line(npc.Dialogue.QuestPending, npc)}
	}

	res := &TalkResult{Outcome: TalkCompleted, Quest: quest, Line: line(npc.Dialogue.QuestComplete, npc)}
	delete(p.ActiveQuests, quest.Id)
	if len(p.ActiveQuests) == 0 {
		p.ActiveQuests = nil
	}
	p.CompletedQuests = append(p.CompletedQuests, quest.Id)

	r := quest.Reward
	if r.Currency > 0 {
		p.Currency += r.Currency
		res.Rewards = append(res.Rewards, fmt.Sprintf("%d Credits", r.Currency))
	}
	if r.Exp > 0 {
		res.Rewards = append(res.Rewards, fmt.Sprintf("%d EXP", r.Exp))
		res.LevelUps = GrantExp(p, r.Exp, cat)
	}
	if r.Item != "" {
		p.AddItem(r.Item, 1)
		name := r.Item
		if item := cat.Item(r.Item); item != nil {
			name = item.Name
		}
		res.Rewards = append(res.Rewards, name)
	}
	return res
}

func line(s string, npc *NPC) string {
	if s == "" {
		return npc.Dialogue.Default
	}
	return s
}

// QuestUpdate reports a kill that advanced a quest.
type QuestUpdate struct {
	Quest    *Quest
	Progress int
}

// RecordKill advances every active kill quest targeting monsterId by one,
// never past the quest's count. Updates are sorted by quest id.
func RecordKill(p *Player, monsterId string, cat *Catalog) []QuestUpdate {
	ids := make([]string, 0, len(p.ActiveQuests))
	for id := range p.ActiveQuests {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	var updates []QuestUpdate
	for _, id := range ids {
		quest := cat.Quest(id)
		if quest == nil || quest.Type != QuestKill || quest.Target != monsterId {
			continue
		}
		progress := p.ActiveQuests[id]
		if progress.Progress >= quest.Count {
			continue
		}
		progress.Progress++
		p.ActiveQuests[id] = progress
		updates = append(updates, QuestUpdate{Quest: quest, Progress: progress.Progress})
	}
	return updates
}
