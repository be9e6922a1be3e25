// Package codec composes wire.Writer primitives into the two non-trivial
// fixed sub-structures named in §4.2: the appearance block and the
// character-stats block.
package codec

import (
	"github.com/mapleforge/channeld/internal/model"
	"github.com/mapleforge/channeld/internal/wire"
)

// AppearanceMaxLen is the declared maximum length of an encoded appearance
// block, matching the reference implementation's declared bound.
const AppearanceMaxLen = 349

// appearanceTerminator marks the end of the non-cosmetic and, separately,
// the cosmetic equipment runs.
const appearanceTerminator = 0xFF

// Appearance writes the appearance block: gender, skin, face, a
// megaphone-avatar mode byte, hair, a terminated list of equipped items by
// expanded slot, and the trailing cosmetic-weapon/pet placeholder fields.
//
// mega selects the mode byte: true writes 0 ("megaphone avatar"), false
// writes 1.
func Appearance(w *wire.Writer, a *model.Appearance, mega bool) {
	w.U8(a.Gender)
	w.U8(a.Skin)
	w.U32(a.Face)
	if mega {
		w.U8(0)
	} else {
		w.U8(1)
	}
	w.U32(a.Hair)

	for i := 0; i < model.EquipSlotCount; i++ {
		eq := a.Equipped[i]
		if eq != nil && !eq.IsEmpty {
			w.U8(model.Expand(model.Slot(i)))
			w.U32(uint32(eq.ItemID))
		}
		if i == model.EquipSlotNonCosmeticCount-1 {
			w.U8(appearanceTerminator)
		}
	}
	w.U8(appearanceTerminator)

	cosmeticWeapon := a.Equipped[model.SlotWeaponCosmetic]
	if cosmeticWeapon != nil && !cosmeticWeapon.IsEmpty {
		w.U32(uint32(cosmeticWeapon.ItemID))
	} else {
		w.U32(0)
	}

	// Pets.
	w.U32(0)
	w.U32(0)
	w.U32(0)
}
