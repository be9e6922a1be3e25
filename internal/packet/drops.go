package packet

import "github.com/mapleforge/channeld/internal/wire"

// Drop-spawn kind discriminators — both share opcode OpDropSpawn
// (0x010C), disambiguated by this second byte (§9 open question,
// resolved against the original implementation).
const (
	DropKindSpawnExisting uint8 = 1
	DropKindFromObject    uint8 = 2
)

// DropSpawnMaxLen bounds either drop-spawn variant.
const DropSpawnMaxLen = 2 + 1 + 1 + 4 + 4 + 4 + 4 + 4 + 4 + 4 + 4 + 1

// DropSpawn encodes a drop appearing on the ground. isMeso distinguishes
// a meso pile from an item drop (the boolean immediately following the
// drop-kind byte). sourceObjectID/sourceX/sourceY are only meaningful (and
// only written) for DropKindFromObject — they describe where the drop
// animated in from (a killed monster, an opened chest).
func DropSpawn(w *wire.Writer, kind uint8, isMeso bool, objectID int32, itemOrMesoID int32, x, y int32, ownerID int32, sourceObjectID int32, sourceX, sourceY int32) int {
	w.Opcode(OpDropSpawn)
	w.U8(kind)
	w.Bool(isMeso)
	w.I32(objectID)
	w.I32(itemOrMesoID)
	w.I32(ownerID)
	w.I32(x)
	w.I32(y)
	if kind == DropKindFromObject {
		w.I32(sourceObjectID)
		w.I32(sourceX)
		w.I32(sourceY)
	}
	w.U8(0) // drop type (animation), 0 = normal fall
	return w.Len()
}

// Drop removal/pickup reasons.
const (
	DropRemoveDisappear uint8 = 0
	DropRemovePickup    uint8 = 1
	DropRemovePetPickup uint8 = 2
)

// DropRemovalMaxLen bounds DropRemoval.
const DropRemovalMaxLen = 2 + 1 + 4 + 4

// DropRemoval encodes a drop leaving the map, whether by disappearing or
// by a player or pet picking it up.
func DropRemoval(w *wire.Writer, reason uint8, objectID int32, pickerID int32) int {
	w.Opcode(OpDropRemovalPickup)
	w.U8(reason)
	w.I32(objectID)
	w.I32(pickerID)
	return w.Len()
}
