package engine

import (
	"context"
	"fmt"
	"strconv"

	"github.com/pixil98/go-fluxmud/internal/commands"
	"github.com/pixil98/go-fluxmud/internal/game"
)

type itemRow struct {
	Name        string
	Qty         int
	Price       int
	Description string
}

func (e *Engine) itemName(id string) string {
	if item := e.cat.Item(id); item != nil {
		return item.Name
	}
	return id
}

func (e *Engine) inventory(_ context.Context, t *turn, _ commands.Command) error {
	rows := make([]itemRow, 0, len(t.p.Inventory))
	for _, slot := range t.p.Inventory {
		rows = append(rows, itemRow{Name: e.itemName(slot.ItemId), Qty: slot.Qty})
	}
	t.system(commands.MsgInventory, map[string]any{"Currency": t.p.Currency, "Items": rows})
	return nil
}

func (e *Engine) buy(_ context.Context, t *turn, cmd commands.Command) error {
	shop := e.cat.ShopIn(t.p.Location)
	if shop == nil {
		return commands.Reject(commands.MsgNoShop, nil)
	}

	name := cmd.Rest()
	if name == "" {
		var rows []itemRow
		for _, id := range shop.Inventory {
			if item := e.cat.Item(id); item != nil {
				rows = append(rows, itemRow{Name: item.Name, Price: item.Price, Description: item.Description})
			}
		}
		t.system(commands.MsgShopListing, map[string]any{"Shop": shop.Name, "Currency": t.p.Currency, "Items": rows})
		return nil
	}

	item, err := game.Buy(t.p, shop, name, e.cat)
	if err != nil {
		return err
	}
	t.system(commands.MsgItemPurchased, map[string]any{"Item": item.Name, "Price": item.Price})
	return nil
}

// use consumes an item. In combat it does not cost a round.
func (e *Engine) use(_ context.Context, t *turn, cmd commands.Command) error {
	name := cmd.Rest()
	if name == "" {
		return commands.Reject(commands.MsgUseUsage, nil)
	}

	res, err := game.Use(t.p, name, e.cat)
	if err != nil {
		return err
	}

	var gains []string
	if res.HP > 0 {
		gains = append(gains, fmt.Sprintf("%d HP", res.HP))
	}
	if res.Flux > 0 {
		gains = append(gains, fmt.Sprintf("%d Flux", res.Flux))
	}
	t.system(commands.MsgItemUsed, map[string]any{"Item": res.Item.Name, "Gains": gains})
	return nil
}

func (e *Engine) cheatShards(_ context.Context, t *turn, _ commands.Command) error {
	for _, id := range game.WishShards {
		t.p.AddItem(id, 1)
	}
	t.system(commands.MsgCheatShards, nil)
	return nil
}

func (e *Engine) cheatExp(_ context.Context, t *turn, cmd commands.Command) error {
	if len(cmd.Args) == 0 {
		return commands.Reject(commands.MsgCheatExpUsage, nil)
	}
	amount, err := strconv.Atoi(cmd.Args[0])
	if err != nil || amount <= 0 {
		return commands.Reject(commands.MsgCheatExpUsage, nil)
	}

	ups := game.GrantExp(t.p, amount, e.cat)
	t.system(commands.MsgCheatExp, map[string]any{"Exp": amount})
	e.announceLevelUps(t, ups)
	return nil
}

func (e *Engine) cheatItem(_ context.Context, t *turn, cmd commands.Command) error {
	if len(cmd.Args) == 0 {
		return commands.Reject(commands.MsgCheatItemUsage, nil)
	}
	item := e.cat.Item(cmd.Args[0])
	if item == nil {
		return commands.Reject(commands.MsgCheatItemUnknown, nil)
	}
	t.p.AddItem(item.Id, 1)
	t.system(commands.MsgCheatItem, map[string]any{"Item": item.Name})
	return nil
}
