package packet

import "github.com/mapleforge/channeld/internal/wire"

// SpawnNPCMaxLen bounds SpawnNPC.
const SpawnNPCMaxLen = 2 + 4 + 4 + 4 + 4 + 1 + 2 + 1 + 1

// SpawnNPC announces an NPC becoming visible: object id, template id,
// position, facing, and the foothold it stands on.
func SpawnNPC(w *wire.Writer, objectID int32, templateID int32, x, y int32, facesLeft bool, foothold int16, rangeX uint8) int {
	w.Opcode(OpSpawnNPC)
	w.I32(objectID)
	w.I32(templateID)
	w.I32(x)
	w.I32(y)
	w.Bool(facesLeft)
	w.I16(foothold)
	w.U8(rangeX)
	w.U8(1) // visible flag, always 1 on initial spawn
	return w.Len()
}

// SpawnNPCControllerMaxLen bounds SpawnNPCController.
const SpawnNPCControllerMaxLen = 2 + 1 + 4 + 1

// SpawnNPCController grants (or revokes, when controlled is false) one
// client's authority to relay this NPC's minor state to the rest of the
// map.
func SpawnNPCController(w *wire.Writer, objectID int32, controlled bool) int {
	w.Opcode(OpSpawnNPCController)
	w.U8(1)
	w.I32(objectID)
	w.Bool(controlled)
	return w.Len()
}

// NPCActionRelayMaxLen bounds NPCActionRelay: fixed header plus an opaque
// client-authored action payload, relayed verbatim like movement paths.
const NPCActionRelayMaxLen = 2 + 4 + 256

// NPCActionRelay relays an NPC's minor action (look direction, animation)
// from its controlling client to the rest of the map.
func NPCActionRelay(w *wire.Writer, objectID int32, action []byte) int {
	w.Opcode(OpNPCActionRelay)
	w.I32(objectID)
	w.RawBytes(action)
	return w.Len()
}

// NPC dialogue box types, selecting the trailing control-byte pair.
const (
	DialogueTypeOK       uint8 = 0
	DialogueTypePrevNext uint8 = 1
	DialogueTypeNext     uint8 = 2
	DialogueTypePrev     uint8 = 3
)

// dialogueTrailer maps a dialogue type to its two trailing control bytes,
// per the §8 worked example (PREV_NEXT -> 01 01, OK -> 00 00).
func dialogueTrailer(t uint8) (prev, next uint8) {
	switch t {
	case DialogueTypePrevNext:
		return 1, 1
	case DialogueTypeNext:
		return 0, 1
	case DialogueTypePrev:
		return 1, 0
	default:
		return 0, 0
	}
}

// NPCDialogueMaxLen bounds NPCDialogue (message up to 255 bytes).
const NPCDialogueMaxLen = 2 + 1 + 4 + 1 + 2 + 255 + 1 + 1

// NPCDialogue opens or continues an NPC's dialogue box: box kind, speaker
// npc id, dialogue type, message text, and a trailing control-byte pair
// selected by dialogueType.
func NPCDialogue(w *wire.Writer, npcID int32, dialogueType uint8, message string) int {
	w.Opcode(OpNPCDialogue)
	w.U8(4) // simple-message box kind; the original multiplexes richer kinds the core doesn't model
	w.I32(npcID)
	w.U8(dialogueType)
	w.String(message)
	prev, next := dialogueTrailer(dialogueType)
	w.U8(prev)
	w.U8(next)
	return w.Len()
}

// ReactorStateMaxLen bounds SpawnReactor/ChangeReactor.
const ReactorStateMaxLen = 2 + 4 + 4 + 1 + 4 + 4 + 1

// SpawnReactor announces a reactor becoming visible.
func SpawnReactor(w *wire.Writer, objectID int32, templateID int32, state uint8, x, y int32, facesLeft bool) int {
	w.Opcode(OpSpawnReactor)
	w.I32(objectID)
	w.I32(templateID)
	w.U8(state)
	w.I32(x)
	w.I32(y)
	w.Bool(facesLeft)
	return w.Len()
}

// ChangeReactor announces a reactor transitioning to a new state without
// leaving visibility.
func ChangeReactor(w *wire.Writer, objectID int32, state uint8, x, y int32, facesLeft bool) int {
	w.Opcode(OpChangeReactor)
	w.I32(objectID)
	w.U8(state)
	w.I32(x)
	w.I32(y)
	w.Bool(facesLeft)
	return w.Len()
}

// DestroyReactorMaxLen bounds DestroyReactor.
const DestroyReactorMaxLen = 2 + 4 + 1 + 4 + 4

// DestroyReactor announces a reactor leaving visibility (consumed, or its
// owning map unloaded).
func DestroyReactor(w *wire.Writer, objectID int32, state uint8, x, y int32) int {
	w.Opcode(OpDestroyReactor)
	w.I32(objectID)
	w.U8(state)
	w.I32(x)
	w.I32(y)
	return w.Len()
}
