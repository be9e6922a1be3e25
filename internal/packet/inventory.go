package packet

import (
	"github.com/mapleforge/channeld/internal/model"
	"github.com/mapleforge/channeld/internal/wire"
)

// Inventory-modify operation kinds (§4.3, opcode 0x001D batch).
const (
	InvOpAdd       uint8 = 0
	InvOpModifyQty uint8 = 1
	InvOpMove      uint8 = 2
	InvOpRemove    uint8 = 3
)

// InventoryKind selects which of the five inventory tabs an operation
// addresses, matching the leading byte every operation record carries.
type InventoryKind uint8

const (
	KindEquip InventoryKind = 1
	KindUse   InventoryKind = 2
	KindSetup InventoryKind = 3
	KindEtc   InventoryKind = 4
	KindCash  InventoryKind = 5
)

// InventoryOp is one entry in an inventory-modify batch. Exactly one of
// Equipment/Item is meaningful, selected by Kind and Op: ADD re-serializes
// the full item; MOVE/REMOVE only need slot numbers and quantities.
type InventoryOp struct {
	Op   uint8
	Kind InventoryKind

	Equipment *model.Equipment
	Item      *model.InventoryItem

	FromSlot int16
	ToSlot   int16
	Quantity int16
}

// inventoryOpMaxLen bounds a single worst-case operation record (an ADD of
// a full equipment sub-record).
const inventoryOpMaxLen = 1 + 1 + EquipmentSubRecordMaxLen + 2

// InventoryModifyMaxLen bounds a batch of n operations.
func InventoryModifyMaxLen(n int) int {
	return 2 + 1 + n*inventoryOpMaxLen + 4
}

// InventoryModify encodes a batch of inventory mutations (opcode 0x001D).
// MOVE and REMOVE write an extra direction byte whenever a slot number is
// negative — the original implementation's signal that the item crossed
// the equip/unequip boundary rather than moving within one tab.
func InventoryModify(w *wire.Writer, moveID int32, ops []InventoryOp) int {
	w.Opcode(OpInventoryModify)
	w.U8(uint8(len(ops)))
	for _, op := range ops {
		w.U8(op.Op)
		w.U8(uint8(op.Kind))
		switch op.Op {
		case InvOpAdd:
			w.U8(uint8(op.ToSlot))
			if op.Equipment != nil {
				EquipmentSubRecord(w, uint16(op.ToSlot), SlotU8, op.Equipment, FlagsI16)
			} else {
				w.U8(2) // item-type: stackable
				w.I32(op.Item.ItemID)
				w.String(op.Item.Owner)
				w.I16(op.Item.Quantity)
			}
		case InvOpModifyQty:
			w.I16(op.ToSlot)
			w.I16(op.Quantity)
		case InvOpMove:
			w.I16(op.FromSlot)
			w.I16(op.ToSlot)
			if op.FromSlot < 0 || op.ToSlot < 0 {
				w.U8(1) // crossed the equip/unequip boundary
			}
		case InvOpRemove:
			w.I16(op.FromSlot)
			if op.FromSlot < 0 {
				w.U8(1)
			}
		}
	}
	w.I32(moveID)
	return w.Len()
}
