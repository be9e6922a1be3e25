package codec

import (
	"fmt"

	"github.com/mapleforge/channeld/internal/model"
	"github.com/mapleforge/channeld/internal/wire"
)

// DecodedStats is the subset of a decoded character-stats block the tests
// assert against — a parser-side mirror of Stats, used to verify the
// encode/decode identity law in §8.
type DecodedStats struct {
	CharacterID int32
	Name        string
	Gender      uint8
	Skin        uint8
	Face        uint32
	Hair        uint32
	Level       uint8
	Job         model.Job
	Str, Dex, Int, Luk int16
	HP, MaxHP          int16
	MP, MaxMP          int16
	AP, SP             int16
	Exp        int32
	Fame       int16
	GachaExp   int32
	MapID      int32
	SpawnPoint uint8
}

// DecodeStats parses a Stats-encoded block back into its fields.
func DecodeStats(r *wire.Reader) (*DecodedStats, error) {
	var d DecodedStats

	id, err := r.U32()
	if err != nil {
		return nil, fmt.Errorf("codec: decode stats id: %w", err)
	}
	d.CharacterID = int32(id)

	name, err := r.FixedString(nameFieldWidth)
	if err != nil {
		return nil, fmt.Errorf("codec: decode stats name: %w", err)
	}
	d.Name = name

	if d.Gender, err = r.U8(); err != nil {
		return nil, err
	}
	if d.Skin, err = r.U8(); err != nil {
		return nil, err
	}
	if d.Face, err = r.U32(); err != nil {
		return nil, err
	}
	if d.Hair, err = r.U32(); err != nil {
		return nil, err
	}
	for i := 0; i < 3; i++ {
		if _, err := r.U64(); err != nil {
			return nil, err
		}
	}
	if d.Level, err = r.U8(); err != nil {
		return nil, err
	}
	job, err := r.U16()
	if err != nil {
		return nil, err
	}
	d.Job = model.Job(job)

	stats := []*int16{&d.Str, &d.Dex, &d.Int, &d.Luk, &d.HP, &d.MaxHP, &d.MP, &d.MaxMP, &d.AP, &d.SP}
	for _, s := range stats {
		v, err := r.I16()
		if err != nil {
			return nil, err
		}
		*s = v
	}

	if d.Exp, err = r.I32(); err != nil {
		return nil, err
	}
	if d.Fame, err = r.I16(); err != nil {
		return nil, err
	}
	if d.GachaExp, err = r.I32(); err != nil {
		return nil, err
	}
	mapID, err := r.U32()
	if err != nil {
		return nil, err
	}
	d.MapID = int32(mapID)
	if d.SpawnPoint, err = r.U8(); err != nil {
		return nil, err
	}
	if _, err := r.U32(); err != nil {
		return nil, err
	}

	return &d, nil
}
