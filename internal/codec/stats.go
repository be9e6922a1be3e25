package codec

import (
	"github.com/mapleforge/channeld/internal/model"
	"github.com/mapleforge/channeld/internal/wire"
)

// StatsMaxLen is the declared maximum length of an encoded character-stats
// block, matching the reference implementation's declared bound.
const StatsMaxLen = 444

// nameFieldWidth is the fixed width of the NUL-padded name field — distinct
// from sized-string framing, which carries its own length prefix.
const nameFieldWidth = 13

// Stats writes the character-stats block: id, a 13-byte NUL-padded name,
// appearance basics, pet placeholders, level/job, ten primary stat fields
// (str/dex/int/luk/hp/maxHp/mp/maxMp/ap/sp), exp, fame, gacha-exp, current
// map, spawn point, and a trailing zero.
func Stats(w *wire.Writer, p *model.Player) {
	if len(p.Name) == 0 {
		panic("codec: character-stats name must not be empty")
	}

	w.U32(uint32(p.CharacterID))

	nameLen := len(p.Name)
	if nameLen > nameFieldWidth-1 {
		nameLen = nameFieldWidth - 1
	}
	w.RawBytes([]byte(p.Name[:nameLen]))
	w.Zero(nameFieldWidth - nameLen)

	w.U8(p.Appearance.Gender)
	w.U8(p.Appearance.Skin)
	w.U32(p.Appearance.Face)
	w.U32(p.Appearance.Hair)

	// Pets.
	w.U64(0)
	w.U64(0)
	w.U64(0)

	w.U8(p.Level)
	w.U16(uint16(p.Job))

	w.I16(p.Str)
	w.I16(p.Dex)
	w.I16(p.Int)
	w.I16(p.Luk)
	w.I16(p.HP)
	w.I16(p.MaxHP)
	w.I16(p.MP)
	w.I16(p.MaxMP)
	w.I16(p.AP)
	w.I16(p.SP)

	w.I32(p.Exp)
	w.I16(p.Fame)
	w.I32(p.Appearance.GachaExp)
	w.U32(uint32(p.MapID))
	w.U8(p.Appearance.SpawnPoint)
	w.U32(0)
}
