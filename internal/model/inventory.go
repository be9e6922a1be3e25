package model

import "fmt"

// MaxSlotCount is the hard ceiling on any inventory's slot count — the
// per-inventory count never exceeds this (§3 invariant).
const MaxSlotCount = 252

// Cell holds exactly one of an Equipment or an InventoryItem, or neither
// (an empty slot). Pure data; mutation happens via Inventory methods.
type Cell struct {
	Equipment *Equipment
	Item      *InventoryItem
}

// Empty reports whether the cell carries no item.
func (c Cell) Empty() bool {
	return c.Equipment == nil && c.Item == nil
}

// Inventory is a bounded ordered array of slot cells indexed 1..N. Accessed
// only from the owning player's worker goroutine (§5) — no internal
// locking.
type Inventory struct {
	slots []Cell // slots[0] is slot 1; len(slots) is N
}

// NewInventory creates an inventory with n slots, all empty. n must not
// exceed MaxSlotCount.
func NewInventory(n int) *Inventory {
	if n > MaxSlotCount {
		panic(fmt.Sprintf("model: inventory slot count %d exceeds MaxSlotCount %d", n, MaxSlotCount))
	}
	return &Inventory{slots: make([]Cell, n)}
}

// Count returns the inventory's declared slot count.
func (inv *Inventory) Count() int {
	return len(inv.slots)
}

// At returns the cell at 1-based slot, and whether slot was in range.
func (inv *Inventory) At(slot int) (Cell, bool) {
	if slot < 1 || slot > len(inv.slots) {
		return Cell{}, false
	}
	return inv.slots[slot-1], true
}

// Set overwrites the cell at 1-based slot. ok is false if slot is out of
// range and no write occurred.
func (inv *Inventory) Set(slot int, c Cell) (ok bool) {
	if slot < 1 || slot > len(inv.slots) {
		return false
	}
	inv.slots[slot-1] = c
	return true
}

// Clear empties the cell at 1-based slot.
func (inv *Inventory) Clear(slot int) (ok bool) {
	return inv.Set(slot, Cell{})
}

// FirstEmpty returns the lowest-numbered empty slot, or 0 if the inventory
// is full.
func (inv *Inventory) FirstEmpty() int {
	for i, c := range inv.slots {
		if c.Empty() {
			return i + 1
		}
	}
	return 0
}

// IsFull reports whether every slot is occupied.
func (inv *Inventory) IsFull() bool {
	return inv.FirstEmpty() == 0
}
