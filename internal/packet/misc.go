package packet

import (
	"github.com/mapleforge/channeld/internal/filetime"
	"github.com/mapleforge/channeld/internal/wire"
)

// KeymapMaxLen bounds Keymap: header plus 90 fixed keybind slots.
const KeymapMaxLen = 2 + 1 + 90*(1+4)

// Keybind is one slot of the client's keybind table.
type Keybind struct {
	Type   uint8
	Action int32
}

// Keymap writes the full 90-slot keybind table.
func Keymap(w *wire.Writer, binds [90]Keybind) int {
	w.Opcode(OpKeymap)
	w.U8(0) // always-update flag
	for _, b := range binds {
		w.U8(b.Type)
		w.I32(b.Action)
	}
	return w.Len()
}

// UpdateSkillMaxLen bounds UpdateSkill.
const UpdateSkillMaxLen = 2 + 1 + 4 + 4 + 4 + 8 + 1

// UpdateSkill notifies the client a skill's level changed.
func UpdateSkill(w *wire.Writer, skillID int32, level, masterLevel int32) int {
	w.Opcode(OpUpdateSkill)
	w.U8(1) // single-skill update count
	w.I32(skillID)
	w.I32(level)
	w.I32(masterLevel)
	w.U64(filetime.Default)
	w.Bool(false) // not from reset-skills
	return w.Len()
}

// PopupMaxLen bounds Popup (message up to 255 bytes).
const PopupMaxLen = 2 + 2 + 255

// Popup writes a client-side popup/system message.
func Popup(w *wire.Writer, message string) int {
	w.Opcode(OpPopup)
	w.String(message)
	return w.Len()
}

// FaceEmoteMaxLen bounds FaceEmote.
const FaceEmoteMaxLen = 2 + 4 + 1

// FaceEmote relays a character's face-emote animation to observers.
func FaceEmote(w *wire.Writer, objectID int32, emote uint8) int {
	w.Opcode(OpEmote)
	w.I32(objectID)
	w.U8(emote)
	return w.Len()
}

// ChatMaxLen bounds Chat (message up to 255 bytes).
const ChatMaxLen = 2 + 4 + 1 + 2 + 255

// Chat relays a chat line: speaker object id, admin flag, and message.
func Chat(w *wire.Writer, objectID int32, isAdmin bool, message string) int {
	w.Opcode(OpChat)
	w.I32(objectID)
	w.Bool(isAdmin)
	w.String(message)
	return w.Len()
}

// SelfEffectMaxLen bounds SelfEffect.
const SelfEffectMaxLen = 2 + 1 + 1

// ForeignEffectMaxLen bounds ForeignEffect.
const ForeignEffectMaxLen = 2 + 4 + 1 + 1

// Effect kinds shared by SelfEffect/ForeignEffect.
const (
	EffectLevelUp   uint8 = 0
	EffectJobUp     uint8 = 1
	EffectQuickSlot uint8 = 2
)

// SelfEffect plays an effect (level up, job advancement) for the
// triggering client itself.
func SelfEffect(w *wire.Writer, kind uint8) int {
	w.Opcode(OpSelfEffect)
	w.U8(kind)
	return w.Len()
}

// ForeignEffect plays the same effect for observers of objectID.
func ForeignEffect(w *wire.Writer, objectID int32, kind uint8) int {
	w.Opcode(OpForeignEffect)
	w.I32(objectID)
	w.U8(kind)
	return w.Len()
}
