package player

import "github.com/manus-games/shadowcity/internal/game/catalog"

// equippable reports whether items of this type occupy an equipment slot.
// Each type is its own slot, so a player wears one clothing item, rides
// one tool, and so on.
func equippable(t InventoryItem) bool {
	return t.Type != catalog.ItemConsumable
}

// Owns reports whether the player carries an item with the given ID.
func (p *Player) Owns(itemID string) bool {
	return p.findItem(itemID) >= 0
}

func (p *Player) findItem(itemID string) int {
	for i := range p.Inventory {
		if p.Inventory[i].ID == itemID {
			return i
		}
	}
	return -1
}

// AddItem places an item into the inventory.
//
// Precondition: it.ID must be non-empty.
// Postcondition: On success the item is appended unequipped; returns
// ErrItemOwned for duplicates and ErrInventoryFull at capacity.
func (p *Player) AddItem(it InventoryItem) error {
	if it.ID == "" {
		panic("player: AddItem called with empty item ID")
	}
	if p.Owns(it.ID) {
		return ErrItemOwned
	}
	if len(p.Inventory) >= InventoryCap {
		return ErrInventoryFull
	}
	it.Equipped = false
	p.Inventory = append(p.Inventory, it)
	return nil
}

// RemoveItem drops an item from the inventory.
func (p *Player) RemoveItem(itemID string) error {
	i := p.findItem(itemID)
	if i < 0 {
		return ErrItemNotOwned
	}
	p.Inventory = append(p.Inventory[:i], p.Inventory[i+1:]...)
	return nil
}

// Equip marks an item as worn, displacing any other equipped item of
// the same type.
//
// Postcondition: At most one item per type is equipped.
func (p *Player) Equip(itemID string) error {
	i := p.findItem(itemID)
	if i < 0 {
		return ErrItemNotOwned
	}
	it := &p.Inventory[i]
	if !equippable(*it) {
		return ErrNotEquippable
	}
	for j := range p.Inventory {
		if j != i && p.Inventory[j].Type == it.Type {
			p.Inventory[j].Equipped = false
		}
	}
	it.Equipped = true
	return nil
}

// Unequip removes an item from its slot without dropping it.
func (p *Player) Unequip(itemID string) error {
	i := p.findItem(itemID)
	if i < 0 {
		return ErrItemNotOwned
	}
	p.Inventory[i].Equipped = false
	return nil
}

// Consume uses up a consumable, applying its "energy" and "health"
// effects and removing it from the inventory.
//
// Postcondition: On success the item is gone and vitals stay clamped;
// on error nothing changes.
func (p *Player) Consume(itemID string) error {
	i := p.findItem(itemID)
	if i < 0 {
		return ErrItemNotOwned
	}
	it := p.Inventory[i]
	if it.Type != catalog.ItemConsumable {
		return ErrNotConsumable
	}
	p.AddEnergy(int(it.Effects["energy"]))
	p.AddHealth(int(it.Effects["health"]))
	p.Inventory = append(p.Inventory[:i], p.Inventory[i+1:]...)
	return nil
}

// EquippedItems returns the currently equipped items.
func (p *Player) EquippedItems() []InventoryItem {
	var out []InventoryItem
	for _, it := range p.Inventory {
		if it.Equipped {
			out = append(out, it)
		}
	}
	return out
}
