package game

import (
	"fmt"
	"slices"
	"strings"

	"github.com/pixil98/go-errors"

	"github.com/pixil98/go-fluxmud/internal/storage"
)

// Stores holds the content stores a Catalog is built from.
type Stores struct {
	Rooms    storage.Storer[*Room]
	Monsters storage.Storer[*Monster]
	Items    storage.Storer[*Item]
	Shops    storage.Storer[*Shop]
	Skills   storage.Storer[*Skill]
	Quests   storage.Storer[*Quest]
	NPCs     storage.Storer[*NPC]
	Races    storage.Storer[*Race]
}

// Catalog is the read-only view of all game content. It is built once at
// startup and shared by every command.
type Catalog struct {
	stores    Stores
	startRoom string

	shopsByRoom map[string]*Shop
	npcsByRoom  map[string]*NPC
	skills      []*Skill // sorted by level, then name
}

// NewCatalog stamps ids onto every definition, indexes shops and NPCs by room
// and verifies that every cross reference resolves.
func NewCatalog(stores Stores, startRoom string) (*Catalog, error) {
	c := &Catalog{
		stores:      stores,
		startRoom:   startRoom,
		shopsByRoom: map[string]*Shop{},
		npcsByRoom:  map[string]*NPC{},
	}

	for id, r := range stores.Rooms.GetAll() {
		r.Id = id
	}
	for id, m := range stores.Monsters.GetAll() {
		m.Id = id
	}
	for id, i := range stores.Items.GetAll() {
		i.Id = id
	}
	for id, q := range stores.Quests.GetAll() {
		q.Id = id
	}
	for id, r := range stores.Races.GetAll() {
		r.Id = id
	}
	for id, s := range stores.Skills.GetAll() {
		s.Id = id
		c.skills = append(c.skills, s)
	}
	slices.SortFunc(c.skills, func(a, b *Skill) int {
		if a.Level != b.Level {
			return a.Level - b.Level
		}
		return strings.Compare(a.Name, b.Name)
	})
	for id, s := range stores.Shops.GetAll() {
		s.Id = id
		c.shopsByRoom[s.Room] = s
	}
	for id, n := range stores.NPCs.GetAll() {
		n.Id = id
		c.npcsByRoom[n.Room] = n
	}

	if err := c.resolve(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Catalog) resolve() error {
	el := errors.NewErrorList()

	if c.Room(c.startRoom) == nil {
		el.Add(fmt.Errorf("start room %q does not exist", c.startRoom))
	}
	for id, r := range c.stores.Rooms.GetAll() {
		for dir, dest := range r.Exits {
			if c.Room(dest) == nil {
				el.Add(fmt.Errorf("room %s: exit %s leads to unknown room %q", id, dir, dest))
			}
		}
		for _, m := range r.Monsters {
			if c.Monster(m) == nil {
				el.Add(fmt.Errorf("room %s: unknown monster %q", id, m))
			}
		}
	}
	for id, m := range c.stores.Monsters.GetAll() {
		for _, d := range m.Drops {
			if c.Item(d.ItemId) == nil {
				el.Add(fmt.Errorf("monster %s: drop of unknown item %q", id, d.ItemId))
			}
		}
	}
	for id, s := range c.stores.Shops.GetAll() {
		if c.Room(s.Room) == nil {
			el.Add(fmt.Errorf("shop %s: unknown room %q", id, s.Room))
		}
		for _, item := range s.Inventory {
			if c.Item(item) == nil {
				el.Add(fmt.Errorf("shop %s: unknown item %q", id, item))
			}
		}
	}
	for id, n := range c.stores.NPCs.GetAll() {
		if c.Room(n.Room) == nil {
			el.Add(fmt.Errorf("npc %s: unknown room %q", id, n.Room))
		}
		if n.QuestId != "" && c.Quest(n.QuestId) == nil {
			el.Add(fmt.Errorf("npc %s: unknown quest %q", id, n.QuestId))
		}
	}
	for id, q := range c.stores.Quests.GetAll() {
		if c.Monster(q.Target) == nil {
			el.Add(fmt.Errorf("quest %s: unknown target %q", id, q.Target))
		}
		if q.Reward.Item != "" && c.Item(q.Reward.Item) == nil {
			el.Add(fmt.Errorf("quest %s: unknown reward item %q", id, q.Reward.Item))
		}
	}
	for _, s := range c.skills {
		if s.Race != "" && c.Race(s.Race) == nil {
			el.Add(fmt.Errorf("skill %s: unknown race %q", s.Id, s.Race))
		}
	}

	return el.Err()
}

// StartRoom returns the room new and revived characters appear in.
func (c *Catalog) StartRoom() *Room {
	return c.Room(c.startRoom)
}

func (c *Catalog) Room(id string) *Room       { return c.stores.Rooms.Get(id) }
func (c *Catalog) Monster(id string) *Monster { return c.stores.Monsters.Get(id) }
func (c *Catalog) Item(id string) *Item       { return c.stores.Items.Get(id) }
func (c *Catalog) Skill(id string) *Skill     { return c.stores.Skills.Get(id) }
func (c *Catalog) Quest(id string) *Quest     { return c.stores.Quests.Get(id) }
func (c *Catalog) Race(id string) *Race       { return c.stores.Races.Get(id) }

// Races returns the race store, for character creation menus.
func (c *Catalog) Races() storage.Storer[*Race] {
	return c.stores.Races
}

// ShopIn returns the shop in room, or nil.
func (c *Catalog) ShopIn(room string) *Shop {
	return c.shopsByRoom[room]
}

// NPCIn returns the NPC standing in room, or nil.
func (c *Catalog) NPCIn(room string) *NPC {
	return c.npcsByRoom[room]
}

// SkillByName finds a skill by display name, case-insensitively.
func (c *Catalog) SkillByName(name string) *Skill {
	for _, s := range c.skills {
		if strings.EqualFold(s.Name, name) {
			return s
		}
	}
	return nil
}

// SkillsFor returns every skill a character of race could ever learn, sorted
// by level then name.
func (c *Catalog) SkillsFor(race string) []*Skill {
	var out []*Skill
	for _, s := range c.skills {
		if s.ForRace(race) {
			out = append(out, s)
		}
	}
	return out
}

// ItemByName finds an item among ids by display name, case-insensitively.
func (c *Catalog) ItemByName(ids []string, name string) *Item {
	for _, id := range ids {
		if item := c.Item(id); item != nil && strings.EqualFold(item.Name, name) {
			return item
		}
	}
	return nil
}
