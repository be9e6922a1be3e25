package packet

import (
	"time"

	"github.com/mapleforge/channeld/internal/codec"
	"github.com/mapleforge/channeld/internal/filetime"
	"github.com/mapleforge/channeld/internal/model"
	"github.com/mapleforge/channeld/internal/wire"
)

// unusedRockSlot marks an unoccupied teleport-rock or VIP-rock slot.
const unusedRockSlot = 999999999

// MapEntryMaxLen bounds MapEntry at 4 KiB, well above the reference
// implementation's declared ~1 KiB ceiling, to leave room for the
// variable-length inventory/quest/skill/monster-book sections.
const MapEntryMaxLen = 4096

// MapEntry encodes the full character snapshot sent on map entry or
// channel change (opcode 0x007D) — the largest packet in the catalog. The
// field order is load-bearing: any reordering desyncs the unmodifiable
// client.
func MapEntry(w *wire.Writer, p *model.Player, now time.Time) int {
	w.Opcode(OpMapEntry)
	w.U32(0) // channel-id/world validation field, fixed in the original
	w.U8(1)  // "has SP table" flag, always set by this core
	w.U32(uint32(p.CharacterID))

	codec.Stats(w, p)

	w.U8(10) // buddy-list capacity
	w.Bool(false) // linked (married) flag
	w.String("")  // linked character name, empty when unlinked
	w.I32(p.Meso)

	w.U8(uint8(p.Equip.Count()))
	w.U8(uint8(p.Use.Count()))
	w.U8(uint8(p.SetupItem.Count()))
	w.U8(uint8(p.Etc.Count()))
	w.U8(uint8(p.Cash.Count()))

	w.U64(filetime.Zero)

	writeEquippedSlots(w, p)
	writeInventoryTab(w, p.Equip, SlotU16)
	writeInventoryTab(w, p.Use, SlotU8)
	writeInventoryTab(w, p.SetupItem, SlotU8)
	writeInventoryTab(w, p.Etc, SlotU8)
	writeInventoryTab(w, p.Cash, SlotU8)
	w.U8(0) // terminator shared by every stackable tab's item-type byte

	for skillID, s := range p.Skills.All() {
		w.I32(skillID)
		w.I32(int32(s.Level))
		if s.MasterLevel > 0 {
			w.I32(int32(s.MasterLevel))
		}
	}
	w.I32(0) // skill-map terminator

	w.U16(0) // cooldown count, always 0 on entry — cooldowns do not persist

	w.I16(int16(len(p.Quests.Active)))
	for questID, progress := range p.Quests.Active {
		w.I32(questID)
		w.String(p.Quests.InfoSlots[questID])
		for _, target := range progress {
			w.I32(target)
		}
	}

	w.I16(int16(len(p.Quests.Completed)))
	for questID, completedAt := range p.Quests.Completed {
		w.I32(questID)
		w.U64(completedAt)
	}

	w.I16(0) // minigame records, unsupported by this core
	w.I16(0) // ring records, unsupported by this core
	w.I16(0) // partner-ring records, unsupported by this core

	for i := 0; i < 5; i++ {
		w.I32(unusedRockSlot)
	}
	for i := 0; i < 10; i++ {
		w.I32(unusedRockSlot)
	}

	w.U64(0) // monster-book cover
	w.I16(int16(len(p.Book.Entries())))
	for monsterID, count := range p.Book.Entries() {
		w.I32(monsterID)
		w.U8(count)
	}

	w.I16(0) // new-year card records
	w.I16(0) // area-info records

	w.U16(0) // final sentinel

	w.U64(filetime.Now(now))
	return w.Len()
}

func writeEquippedSlots(w *wire.Writer, p *model.Player) {
	for slot := 0; slot < model.EquipSlotCount; slot++ {
		eq := p.Appearance.Equipped[slot]
		if eq == nil || eq.IsEmpty {
			continue
		}
		EquipmentSubRecord(w, uint16(model.Expand(model.Slot(slot))), SlotU16, eq, FlagsI16)
	}
	w.U8(0) // equipped-slots terminator
}

func writeInventoryTab(w *wire.Writer, inv *model.Inventory, slotWidth EquipmentSlotWidth) {
	for slot := 1; slot <= inv.Count(); slot++ {
		cell, _ := inv.At(slot)
		if cell.Empty() {
			continue
		}
		if cell.Equipment != nil {
			EquipmentSubRecord(w, uint16(slot), slotWidth, cell.Equipment, FlagsU16)
			continue
		}
		w.U8(uint8(slot))
		w.U8(2) // item-type: stackable
		w.I32(cell.Item.ItemID)
		w.String(cell.Item.Owner)
		w.I16(cell.Item.Quantity)
	}
	w.U8(0) // per-tab terminator
}
