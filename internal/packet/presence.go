package packet

import (
	"github.com/mapleforge/channeld/internal/codec"
	"github.com/mapleforge/channeld/internal/model"
	"github.com/mapleforge/channeld/internal/wire"
)

// AddPlayerMaxLen bounds AddPlayer: header fields plus a full appearance
// block plus a trailing name/chat-balloon reservation.
const AddPlayerMaxLen = 2 + 4 + 2 + 12 + codec.AppearanceMaxLen + 4 + 1 + 4 + 4 + 2 + 1 + 1

// AddPlayer announces another character entering visible range: object id,
// level, name, appearance, position, and initial pose.
func AddPlayer(w *wire.Writer, objectID int32, p *model.Player) int {
	w.Opcode(OpAddPlayer)
	w.I32(objectID)
	w.U16(uint16(p.Level))
	w.SizedString(12, p.Name)
	codec.Appearance(w, &p.Appearance, false)
	w.I32(p.MapID)
	w.I32(p.X)
	w.I32(p.Y)
	w.I16(p.Foothold)
	w.U8(p.Stance)
	w.U8(0) // trailing reserved byte, always zero in the original
	return w.Len()
}

// RemovePlayerMaxLen bounds RemovePlayer.
const RemovePlayerMaxLen = 2 + 4

// RemovePlayer announces a character leaving visible range.
func RemovePlayer(w *wire.Writer, objectID int32) int {
	w.Opcode(OpRemovePlayer)
	w.I32(objectID)
	return w.Len()
}

// MovePlayerMaxLen bounds MovePlayer: fixed header plus raw movement-path
// bytes the client itself interprets (the server relays them opaquely).
const MovePlayerMaxLen = 2 + 4 + 4 + 1 + 1024

// MovePlayer relays a movement path verbatim from the moving client to
// every other client observing the map — the path encoding itself is
// client-internal and opaque to the server, so it is carried as raw bytes
// rather than decoded.
func MovePlayer(w *wire.Writer, objectID int32, path []byte) int {
	w.Opcode(OpMovePlayer)
	w.I32(objectID)
	w.U32(0) // unused validation field in the original, always zero
	w.U8(uint8(len(path)))
	w.RawBytes(path)
	return w.Len()
}
