package game

import (
	"fmt"

	"github.com/pixil98/go-fluxmud/internal/commands"
)

// AddItem merges qty of item id into its stack, appending a new slot when the
// player has none.
func (p *Player) AddItem(id string, qty int) {
	if qty <= 0 {
		return
	}
	for i := range p.Inventory {
		if p.Inventory[i].ItemId == id {
			p.Inventory[i].Qty += qty
			return
		}
	}
	p.Inventory = append(p.Inventory, InventorySlot{ItemId: id, Qty: qty})
}

// RemoveItem takes qty of item id, dropping the slot when it empties. It
// fails without mutation when the stack is too small.
func (p *Player) RemoveItem(id string, qty int) error {
	for i := range p.Inventory {
		if p.Inventory[i].ItemId != id {
			continue
		}
		if p.Inventory[i].Qty < qty {
			break
		}
		p.Inventory[i].Qty -= qty
		if p.Inventory[i].Qty == 0 {
			p.Inventory = append(p.Inventory[:i], p.Inventory[i+1:]...)
		}
		return nil
	}
	return fmt.Errorf("not enough %s", id)
}

// ItemCount returns how many of item id the player carries.
func (p *Player) ItemCount(id string) int {
	for _, slot := range p.Inventory {
		if slot.ItemId == id {
			return slot.Qty
		}
	}
	return 0
}

// Buy purchases the item called name from shop.
func Buy(p *Player, shop *Shop, name string, cat *Catalog) (*Item, error) {
	item := cat.ItemByName(shop.Inventory, name)
	if item == nil {
		return nil, reject(commands.MsgItemNotSold, nil)
	}
	if p.Currency < item.Price {
		return nil, reject(commands.MsgCannotAfford, nil)
	}
	p.Currency -= item.Price
	p.AddItem(item.Id, 1)
	return item, nil
}

// UseResult reports what a consumable restored.
type UseResult struct {
	Item *Item
	HP   int
	Flux int
}

// Use consumes one of the carried item called name. Restores are capped at
// the pool maximum and the item is used up even when nothing was restored.
func Use(p *Player, name string, cat *Catalog) (*UseResult, error) {
	if len(p.Inventory) == 0 {
		return nil, reject(commands.MsgNothingToUse, nil)
	}

	ids := make([]string, 0, len(p.Inventory))
	for _, slot := range p.Inventory {
		ids = append(ids, slot.ItemId)
	}
	item := cat.ItemByName(ids, name)
	if item == nil {
		return nil, reject(commands.MsgItemNotFound, nil)
	}

	switch {
	case item.Type == ItemConsumable:
	case item.Type.IsEquipment():
		return nil, reject(commands.MsgEquipUnready, nil)
	default:
		return nil, reject(commands.MsgCannotUse, nil)
	}

	res := &UseResult{Item: item}
	res.HP = p.HealHP(item.Effect.HP)
	before := p.Flux
	p.Flux = min(p.MaxFlux, p.Flux+item.Effect.Flux)
	res.Flux = p.Flux - before

	if err := p.RemoveItem(item.Id, 1); err != nil {
		return nil, fmt.Errorf("consuming %s: %w", item.Id, err)
	}
	return res, nil
}
