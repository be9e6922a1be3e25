package packet

import "github.com/mapleforge/channeld/internal/wire"

// Stat mask bits, matching the original implementation's enum exactly
// (including the unnamed reserved bits folded into StatPet).
const (
	StatSkin     uint32 = 0x1
	StatFace     uint32 = 0x2
	StatHair     uint32 = 0x4
	StatLevel    uint32 = 0x10
	StatJob      uint32 = 0x20
	StatStr      uint32 = 0x40
	StatDex      uint32 = 0x80
	StatInt      uint32 = 0x100
	StatLuk      uint32 = 0x200
	StatHP       uint32 = 0x400
	StatMaxHP    uint32 = 0x800
	StatMP       uint32 = 0x1000
	StatMaxMP    uint32 = 0x2000
	StatAP       uint32 = 0x4000
	StatSP       uint32 = 0x8000
	StatExp      uint32 = 0x10000
	StatFame     uint32 = 0x20000
	StatMeso     uint32 = 0x40000
	StatPet      uint32 = 0x180008
	StatGachaExp uint32 = 0x200000
)

// StatChangeValues carries one value per bit StatChange might be asked to
// write. Only the fields named by mask are read.
type StatChangeValues struct {
	Skin  uint8
	Face  uint32
	Hair  uint32
	Level uint8
	Job   uint16

	Str, Dex, Int, Luk   int16
	HP, MaxHP, MP, MaxMP int16
	AP, SP               int16

	Exp  int32
	Fame int16
	Meso int32

	// Pet bundles the three reserved bits STAT_PET folds into a single
	// logical field — one combined write, not three (§9 open question,
	// resolved: preserve the original's special case).
	Pet uint32

	GachaExp int32
}

// StatChangeMaxLen bounds a stat-change packet with every field present.
const StatChangeMaxLen = 2 + 4 + 1 + (1 + 4 + 4) + 1 + 2 + 2*10 + 4 + 2 + 4 + 4 + 4

// StatChange encodes the stat-change packet (opcode 0x001F): the bitmask
// itself, then one field per set bit in ascending mask order — except
// StatPet, whose three reserved bits are counted and written as a single
// combined field ahead of ordinary per-bit iteration.
func StatChange(w *wire.Writer, exclRequestID uint8, mask uint32, v StatChangeValues) int {
	w.Opcode(OpStatChange)
	w.U8(exclRequestID)
	w.U32(mask)

	remaining := mask
	if remaining&StatPet == StatPet {
		w.U32(v.Pet)
		remaining &^= StatPet
	}

	type field struct {
		bit   uint32
		write func()
	}
	fields := []field{
		{StatSkin, func() { w.U8(v.Skin) }},
		{StatFace, func() { w.U32(v.Face) }},
		{StatHair, func() { w.U32(v.Hair) }},
		{StatLevel, func() { w.U8(v.Level) }},
		{StatJob, func() { w.U16(v.Job) }},
		{StatStr, func() { w.I16(v.Str) }},
		{StatDex, func() { w.I16(v.Dex) }},
		{StatInt, func() { w.I16(v.Int) }},
		{StatLuk, func() { w.I16(v.Luk) }},
		{StatHP, func() { w.I16(v.HP) }},
		{StatMaxHP, func() { w.I16(v.MaxHP) }},
		{StatMP, func() { w.I16(v.MP) }},
		{StatMaxMP, func() { w.I16(v.MaxMP) }},
		{StatAP, func() { w.I16(v.AP) }},
		{StatSP, func() { w.I16(v.SP) }},
		{StatExp, func() { w.I32(v.Exp) }},
		{StatFame, func() { w.I16(v.Fame) }},
		{StatMeso, func() { w.I32(v.Meso) }},
		{StatGachaExp, func() { w.I32(v.GachaExp) }},
	}
	for _, f := range fields {
		if remaining&f.bit == f.bit {
			f.write()
		}
	}
	return w.Len()
}

// ExpGainMaxLen bounds ExpGain.
const ExpGainMaxLen = 2 + 1 + 4 + 4 + 4 + 1

// ExpGain encodes an experience-gain notification. inChat selects the
// trailing display-variant byte the inline and in-chat forms share every
// other field with.
func ExpGain(w *wire.Writer, amount int32, monsterBookBonus int32, questBonus int32, inChat bool) int {
	w.Opcode(OpStatChange) // exp gain rides the stat-change multiplexer
	w.U8(0)
	w.I32(amount)
	w.I32(monsterBookBonus)
	w.I32(questBonus)
	w.Bool(inChat)
	return w.Len()
}

// MesoGainMaxLen bounds MesoGain.
const MesoGainMaxLen = 2 + 4 + 1

// MesoGain encodes a meso-gain notification.
func MesoGain(w *wire.Writer, amount int32, fromDrop bool) int {
	w.Opcode(OpStatChange)
	w.I32(amount)
	w.Bool(fromDrop)
	return w.Len()
}
