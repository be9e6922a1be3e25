package packet

import (
	"github.com/mapleforge/channeld/internal/filetime"
	"github.com/mapleforge/channeld/internal/model"
	"github.com/mapleforge/channeld/internal/wire"
)

// EquipmentSubRecordMaxLen bounds one equipment sub-record (§4.3.1).
const EquipmentSubRecordMaxLen = 2 + 1 + 4 + 1 + 8 + 2 + 2*15 + 2 + 14 + 2 + 1 + 1 + 4 + 4 + 8 + 8 + 4

// FlagsWidth selects the wire width of an equipment sub-record's flags
// field. The map-entry encoder uses two back-to-back loops over equipped
// and inventoried equipment that differ in exactly this field's width —
// preserved rather than normalized (§9 open question, resolved against the
// original implementation).
type FlagsWidth int

const (
	FlagsI16 FlagsWidth = iota
	FlagsU16
)

// EquipmentSlotWidth selects the wire width of the leading slot index:
// u16 in the map-entry packet, u8 in the inventory-modify ADD record.
type EquipmentSlotWidth int

const (
	SlotU16 EquipmentSlotWidth = iota
	SlotU8
)

// EquipmentSubRecord writes one equipped item's full wire record: slot
// index, item-type byte, item id, cash flag, a fixed expiration timestamp,
// two upgrade-tracking bytes, the fifteen stat deltas in their fixed order,
// the owner sized-string, flags, a zero byte, item level (always 1),
// exp, vicious, a zero u64, ZERO_TIME, and a trailing -1 i32.
func EquipmentSubRecord(w *wire.Writer, slot uint16, slotWidth EquipmentSlotWidth, eq *model.Equipment, flagsWidth FlagsWidth) {
	if slotWidth == SlotU8 {
		w.U8(uint8(slot))
	} else {
		w.U16(slot)
	}
	w.U8(1) // item-type: equipment
	w.I32(eq.ItemID)
	w.Bool(eq.Cash)
	w.U64(filetime.Default)

	// Two upgrade-tracking bytes: remaining slots, then a reserved byte.
	w.U8(uint8(eq.Slots))
	w.U8(0)

	d := eq.Deltas
	for _, v := range []int16{
		d.Str, d.Dex, d.Int, d.Luk,
		d.HP, d.MP,
		d.Atk, d.MAtk,
		d.Def, d.MDef,
		d.Acc, d.Avoid,
		d.Hands, d.Speed, d.Jump,
	} {
		w.I16(v)
	}

	w.String(eq.Owner)
	if flagsWidth == FlagsU16 {
		w.U16(uint16(eq.Flags))
	} else {
		w.I16(eq.Flags)
	}
	w.U8(0)
	w.U8(1) // item level, always 1
	w.I32(0)  // exp
	w.U32(0)  // vicious
	w.U64(0)
	w.U64(filetime.Zero)
	w.I32(-1)
}
