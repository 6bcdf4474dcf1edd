package game_test

import (
	"testing"

	"github.com/pixil98/go-testutil"

	"github.com/pixil98/go-fluxmud/internal/game"
	"github.com/pixil98/go-fluxmud/internal/game/gametest"
	"github.com/pixil98/go-fluxmud/internal/storage"
)

func TestNewCatalog(t *testing.T) {
	cat := gametest.Catalog(t)

	testutil.AssertEqual(t, "start room", cat.StartRoom().Id, gametest.StartRoom)
	testutil.AssertEqual(t, "monster id stamped", cat.Monster("saibaman").Id, "saibaman")
	testutil.AssertEqual(t, "shop by room", cat.ShopIn("market").Id, "market_shop")
	testutil.AssertEqual(t, "no shop", cat.ShopIn("forest") == nil, true)
	testutil.AssertEqual(t, "npc by room", cat.NPCIn("start_area").Name, "Elder")
	testutil.AssertEqual(t, "skill by name", cat.SkillByName("ki BLAST").Id, "ki_blast")
	testutil.AssertEqual(t, "unknown skill", cat.SkillByName("Spirit Bomb") == nil, true)

	skills := cat.SkillsFor("vitalis")
	names := make([]string, 0, len(skills))
	for _, s := range skills {
		names = append(names, s.Name)
	}
	testutil.AssertEqual(t, "vitalis skills", len(names), 4)
	testutil.AssertEqual(t, "sorted by level then name", names[0]+","+names[1]+","+names[2]+","+names[3], "Heal,Ki Blast,Solar Flare,Rage")
}

func TestNewCatalog_BrokenReferences(t *testing.T) {
	tests := map[string]struct {
		mutate    func(s *game.Stores)
		startRoom string
		expErr    string
	}{
		"missing start room": {
			startRoom: "nowhere",
			expErr:    `start room "nowhere" does not exist`,
		},
		"dangling exit": {
			mutate: func(s *game.Stores) {
				s.Rooms.Get("forest").Exits["west"] = "void"
			},
			expErr: `exit west leads to unknown room "void"`,
		},
		"unknown monster in room": {
			mutate: func(s *game.Stores) {
				r := s.Rooms.Get("forest")
				r.Monsters = append(r.Monsters, "dragon")
			},
			expErr: `unknown monster "dragon"`,
		},
		"unknown drop": {
			mutate: func(s *game.Stores) {
				m := s.Monsters.Get("saibaman")
				m.Drops = append(m.Drops, game.Drop{ItemId: "ghost", Rate: 1})
			},
			expErr: `drop of unknown item "ghost"`,
		},
		"unknown shop item": {
			mutate: func(s *game.Stores) {
				sh := s.Shops.Get("market_shop")
				sh.Inventory = append(sh.Inventory, "ghost")
			},
			expErr: `shop market_shop: unknown item "ghost"`,
		},
		"unknown quest": {
			mutate: func(s *game.Stores) {
				s.NPCs.Get("merchant").QuestId = "lost_quest"
			},
			expErr: `unknown quest "lost_quest"`,
		},
		"unknown skill race": {
			mutate: func(s *game.Stores) {
				s.Skills.Get("heal").Race = "namekian"
			},
			expErr: `unknown race "namekian"`,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			stores := gametest.Stores()
			if tt.mutate != nil {
				tt.mutate(&stores)
			}
			start := tt.startRoom
			if start == "" {
				start = gametest.StartRoom
			}

			_, err := game.NewCatalog(stores, start)
			testutil.AssertErrorContains(t, err, tt.expErr)
		})
	}
}

func TestCatalog_FileStores(t *testing.T) {
	dir := t.TempDir()
	rooms, err := storage.NewFileStore[*game.Room](dir)
	if err != nil {
		t.Fatalf("creating store: %v", err)
	}
	if err := rooms.Save("start_area", &game.Room{Name: "Start"}); err != nil {
		t.Fatalf("saving room: %v", err)
	}

	stores := gametest.Stores()
	stores.Rooms = rooms
	stores.Shops = storage.NewMemoryStore(map[string]*game.Shop{})
	stores.NPCs = storage.NewMemoryStore(map[string]*game.NPC{})

	cat, err := game.NewCatalog(stores, "start_area")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "room", cat.StartRoom().Name, "Start")
}
