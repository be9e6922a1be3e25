package packet

import "github.com/mapleforge/channeld/internal/wire"

// LoginSuccessMaxLen is sized for a 12-byte (max) account/character name.
const LoginSuccessMaxLen = 2 + 6 + 4 + 1 + 3 + 2 + 12 + 2 + 8 + 8 + 4 + 1 + 1

// LoginSuccess encodes the login-success packet. pic is the PIN/PIC prompt
// status the client should show next (e.g. StatusDisabled).
//
// Worked example (id=123, gender=0, name="Hero", pic=2): opcode 00 00, six
// zero bytes, id 7B 00 00 00, gender 00, three zero bytes, sized-string
// "Hero", two zero bytes, eight zero bytes, eight zero bytes, 01 00 00 00,
// 01, 02 — 46 bytes total.
func LoginSuccess(w *wire.Writer, id int32, gender uint8, name string, pic uint8) int {
	w.Opcode(OpLoginSuccess)
	w.Zero(6)
	w.I32(id)
	w.U8(gender)
	w.Zero(3)
	w.String(name)
	w.Zero(2)
	w.Zero(8)
	w.Zero(8)
	w.I32(1)
	w.U8(1)
	w.U8(pic)
	return w.Len()
}

// PIC prompt status values, passed as LoginSuccess's pic argument.
const (
	StatusDisabled = 2
)

// LoginFailureMaxLen bounds LoginFailure.
const LoginFailureMaxLen = 2 + 1 + 4

// LoginFailure encodes a login rejection with a reason code.
func LoginFailure(w *wire.Writer, reason uint8) int {
	w.Opcode(OpLoginError)
	w.U8(reason)
	w.Zero(4)
	return w.Len()
}

// PinMaxLen bounds Pin.
const PinMaxLen = 2 + 1

// Pin encodes the PIN prompt: 0 = no pin set, 1 = request pin, 2 = invalid.
func Pin(w *wire.Writer, status uint8) int {
	w.Opcode(OpPin)
	w.U8(status)
	return w.Len()
}

// ServerListEntryMaxLen bounds ServerListEntry (name up to 12 bytes plus a
// single channel-load sample).
const ServerListEntryMaxLen = 2 + 4 + 2 + 12 + 1 + 1 + 2 + 1 + 2 + 2 + 2

// ServerListEntry encodes one world's listing entry.
func ServerListEntry(w *wire.Writer, worldID uint8, name string, flags uint8, channelCount uint8, channelID uint8, channelLoad int32) int {
	w.Opcode(OpServerList)
	w.U8(worldID)
	w.String(name)
	w.U8(flags)
	w.U8(0) // event message byte, unused
	w.U16(100)
	w.U8(channelCount)
	w.U8(channelID)
	w.I32(channelLoad)
	return w.Len()
}

// ServerListTerminatorMaxLen bounds ServerListTerminator.
const ServerListTerminatorMaxLen = 2 + 1

// ServerListTerminator marks the end of the world list: opcode 0x000A with
// world=0xFF.
func ServerListTerminator(w *wire.Writer) int {
	w.Opcode(OpServerList)
	w.U8(0xFF)
	return w.Len()
}

// ServerStatusMaxLen bounds ServerStatus.
const ServerStatusMaxLen = 2 + 2

// Server load status values sent in ServerStatus.
const (
	ServerStatusNormal   = 0
	ServerStatusHighLoad = 1
	ServerStatusFull     = 2
)

// ServerStatus reports current channel load.
func ServerStatus(w *wire.Writer, status uint16) int {
	w.Opcode(OpServerStatus)
	w.U16(status)
	return w.Len()
}

// ChannelIPMaxLen bounds ChannelIP.
const ChannelIPMaxLen = 2 + 4 + 4 + 2 + 4

// ChannelIP hands the client off to this channel's address and a one-time
// token tying the new connection back to the authenticated account.
func ChannelIP(w *wire.Writer, clientID int32, ip [4]byte, port uint16, charID int32) int {
	w.Opcode(OpChannelIP)
	w.I32(clientID)
	w.RawBytes(ip[:])
	w.U16(port)
	w.I32(charID)
	return w.Len()
}

// NameCheckResponseMaxLen bounds NameCheckResponse.
const NameCheckResponseMaxLen = 2 + 2 + 12 + 1

// NameCheckResponse reports whether a requested character name is free.
func NameCheckResponse(w *wire.Writer, name string, available bool) int {
	w.Opcode(OpNameCheck)
	w.String(name)
	w.Bool(available)
	return w.Len()
}

// CreateCharacterResponseMaxLen bounds CreateCharacterResponse (the
// character-stats block it embeds is allocated separately by the caller
// and copied in via RawBytes).
const CreateCharacterResponseMaxLen = 2 + 1 + 444

// CreateCharacterResponse reports character-creation success with the
// embedded stats block. When ok is false only the flag is written; no
// failure reason is carried.
func CreateCharacterResponse(w *wire.Writer, ok bool, statsBlock []byte) int {
	w.Opcode(OpCreateCharacter)
	w.Bool(ok)
	if ok {
		w.RawBytes(statsBlock)
	}
	return w.Len()
}
