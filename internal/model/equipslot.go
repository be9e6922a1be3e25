package model

import "fmt"

// Slot is a compact (dense, storage-side) equipment slot index: 0..Count-1.
// The wire protocol never sees a Slot directly — it sees the "expanded"
// wire value produced by Expand.
type Slot uint8

// equipSlots lists every compact slot's expanded wire value, non-cosmetic
// slots first. The header defining these constants in the original
// implementation was not available in the retrieved reference pack — only
// the call sites (writer_char_appearance iterating EQUIP_SLOT_COUNT compact
// indices, splitting at EQUIP_SLOT_NON_COSMETIC_COUNT, and looking up the
// cosmetic weapon via equip_slot_to_compact(EQUIP_SLOT_WEAPON_COSMETIC))
// were visible. This table is this module's own reconstruction, built to
// satisfy the same shape: a dense non-cosmetic prefix, a dense cosmetic
// suffix whose wire values mirror their non-cosmetic counterpart offset by
// +100, and a bijective Expand/Compact pair. See DESIGN.md.
var equipSlots = []uint8{
	// non-cosmetic, compact indices 0..nonCosmeticCount-1
	1,  // cap
	2,  // face accessory
	3,  // eye accessory
	4,  // earrings
	5,  // top / coat
	6,  // bottom / pants
	7,  // shoes
	8,  // gloves
	9,  // cape
	10, // shield
	11, // weapon
	12, // ring 1
	13, // ring 2
	15, // ring 3
	16, // ring 4
	17, // pendant

	// cosmetic, mirrors the visible slot + 100
	101, // cosmetic cap
	105, // cosmetic top
	106, // cosmetic bottom
	107, // cosmetic shoes
	108, // cosmetic gloves
	109, // cosmetic cape
	110, // cosmetic shield
	111, // cosmetic weapon
}

// EquipSlotCount is the total number of compact equipment slots.
const EquipSlotCount = 24

// EquipSlotNonCosmeticCount is the number of compact slots before the
// cosmetic range begins.
const EquipSlotNonCosmeticCount = 16

// SlotWeaponCosmetic is the compact index of the cosmetic weapon overlay —
// emitted a second time, as a bare id with no slot prefix, after the
// terminator in the appearance block (§4.2).
const SlotWeaponCosmetic Slot = EquipSlotNonCosmeticCount + 7

func init() {
	if len(equipSlots) != EquipSlotCount {
		panic(fmt.Sprintf("model: equipSlots table has %d entries, want %d", len(equipSlots), EquipSlotCount))
	}
	compactByWire = make(map[uint8]Slot, EquipSlotCount)
	for i, wireVal := range equipSlots {
		compactByWire[wireVal] = Slot(i)
	}
}

var compactByWire map[uint8]Slot

// Expand converts a compact slot index to its wire (client-visible) value.
func Expand(s Slot) uint8 {
	return equipSlots[s]
}

// Compact converts a wire slot value back to its compact storage index. ok
// is false if the value names no known slot.
func Compact(wireVal uint8) (s Slot, ok bool) {
	s, ok = compactByWire[wireVal]
	return
}
