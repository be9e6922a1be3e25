package packet

import (
	"testing"

	"github.com/mapleforge/channeld/internal/wire"
	"github.com/stretchr/testify/require"
)

func TestStatChangePetMaskWritesSingleCombinedField(t *testing.T) {
	w := wire.NewWriter(StatChangeMaxLen)
	n := StatChange(w, 1, StatPet|StatLevel, StatChangeValues{Pet: 0xAABBCCDD, Level: 30})

	b := w.Bytes()
	// opcode(2) + exclRequestID(1) + mask(4) = 7 bytes header.
	require.Equal(t, uint32(StatPet|StatLevel), uint32(b[3])|uint32(b[4])<<8|uint32(b[5])<<16|uint32(b[6])<<24)

	pet := uint32(b[7]) | uint32(b[8])<<8 | uint32(b[9])<<16 | uint32(b[10])<<24
	require.Equal(t, uint32(0xAABBCCDD), pet)

	level := b[11]
	require.Equal(t, uint8(30), level)

	require.Equal(t, 12, n)
}

func TestStatChangeWithoutPetMaskOmitsPetField(t *testing.T) {
	w := wire.NewWriter(StatChangeMaxLen)
	StatChange(w, 1, StatLevel, StatChangeValues{Level: 12})
	require.Equal(t, 8, w.Len()) // opcode(2)+exclReq(1)+mask(4)+level(1)
}

func TestCombatNibbleHeaderSaturatesAtFifteen(t *testing.T) {
	hits := make([]MonsterHit, 20)
	for i := range hits {
		hits[i] = MonsterHit{ObjectID: int32(i), Damages: make([]int32, 20)}
	}
	w := wire.NewWriter(CloseRangeAttackMaxLen * 2)
	CloseRangeAttack(w, 0, hits)
	header := w.Bytes()[2]
	require.Equal(t, uint8(0xFF), header) // both nibbles saturate at 15
}
