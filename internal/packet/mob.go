package packet

import "github.com/mapleforge/channeld/internal/wire"

// SpawnMobMaxLen bounds SpawnMob.
const SpawnMobMaxLen = 2 + 4 + 4 + 4 + 4 + 1 + 2 + 1 + 2 + 1

// SpawnMob announces a monster becoming visible.
func SpawnMob(w *wire.Writer, objectID int32, templateID int32, x, y int32, facesLeft bool, foothold int16, stance uint8) int {
	w.Opcode(OpSpawnMob)
	w.I32(objectID)
	w.I32(templateID)
	w.I32(x)
	w.I32(y)
	w.Bool(facesLeft)
	w.I16(foothold)
	w.U8(stance)
	w.I16(0) // origin-fh, only meaningful for summoned mobs
	w.U8(0)  // team, 0 = neutral
	return w.Len()
}

// SpawnMobControllerMaxLen bounds SpawnMobController.
const SpawnMobControllerMaxLen = 2 + 1 + 4 + 1

// SpawnMobController grants or revokes one client's authority to relay a
// monster's movement to the rest of the map.
func SpawnMobController(w *wire.Writer, objectID int32, controlled bool) int {
	w.Opcode(OpSpawnMobController)
	w.U8(1)
	w.I32(objectID)
	w.Bool(controlled)
	return w.Len()
}

// RemoveMobControllerMaxLen bounds RemoveMobController.
const RemoveMobControllerMaxLen = 2 + 1 + 4

// RemoveMobController revokes a controller with no replacement.
func RemoveMobController(w *wire.Writer, objectID int32) int {
	w.Opcode(OpSpawnMobController)
	w.U8(0)
	w.I32(objectID)
	return w.Len()
}

// MoveMobMaxLen bounds MoveMob: fixed header plus an opaque path the
// server relays without decoding.
const MoveMobMaxLen = 2 + 4 + 1 + 1 + 2 + 1024

// MoveMob relays a monster's movement path, as reported by its
// controlling client, to the rest of the map.
func MoveMob(w *wire.Writer, objectID int32, useSkill uint8, skillID uint8, path []byte) int {
	w.Opcode(OpMoveMob)
	w.I32(objectID)
	w.U8(useSkill)
	w.U8(skillID)
	w.U16(0) // unused validation field, always zero
	w.RawBytes(path)
	return w.Len()
}

// MoveMobResponseMaxLen bounds MoveMobResponse.
const MoveMobResponseMaxLen = 2 + 2 + 1 + 2 + 2 + 1

// MoveMobResponse acknowledges a controller's reported move: the
// controller's moveId echo, a fixed MP-gain amount, and an action byte.
func MoveMobResponse(w *wire.Writer, moveID uint16, useSkill uint8, mpGain uint16, mp uint16, action uint8) int {
	w.Opcode(OpMoveMobResponse)
	w.U16(moveID)
	w.U8(useSkill)
	w.U16(mpGain)
	w.U16(mp)
	w.U8(action)
	return w.Len()
}

// MobHPMaxLen bounds MobHP.
const MobHPMaxLen = 2 + 4 + 1 + 4

// MobHP updates a monster's HP bar percentage for observing clients.
func MobHP(w *wire.Writer, objectID int32, percent uint8) int {
	w.Opcode(OpMobHP)
	w.I32(objectID)
	w.U8(percent)
	w.I32(0) // display duration in ms, fixed in the original
	return w.Len()
}

// KillMobMaxLen bounds KillMob.
const KillMobMaxLen = 2 + 4 + 1

// Kill-animation selectors for KillMob.
const (
	KillAnimationNone    uint8 = 0
	KillAnimationFade    uint8 = 1
	KillAnimationExplode uint8 = 2
)

// KillMob removes a monster from visibility, optionally with a death
// animation.
func KillMob(w *wire.Writer, objectID int32, animation uint8) int {
	w.Opcode(OpKillMob)
	w.I32(objectID)
	w.U8(animation)
	return w.Len()
}
