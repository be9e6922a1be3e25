package packet

import (
	"testing"

	"github.com/mapleforge/channeld/internal/wire"
	"github.com/stretchr/testify/require"
)

func TestDropSpawnKindDiscriminatesOpcodeReuse(t *testing.T) {
	w1 := wire.NewWriter(DropSpawnMaxLen)
	DropSpawn(w1, DropKindSpawnExisting, false, 1, 2000000, 100, 200, 0, 0, 0, 0)

	w2 := wire.NewWriter(DropSpawnMaxLen)
	DropSpawn(w2, DropKindFromObject, false, 1, 2000000, 100, 200, 0, 42, 90, 190)

	require.Equal(t, w1.Bytes()[0:2], w2.Bytes()[0:2]) // same opcode
	require.NotEqual(t, w1.Bytes()[2], w2.Bytes()[2])  // discriminated by second byte
	require.Equal(t, DropKindSpawnExisting, w1.Bytes()[2])
	require.Equal(t, DropKindFromObject, w2.Bytes()[2])
	require.Greater(t, w2.Len(), w1.Len()) // from-object carries extra source coords
}

func TestDropSpawnMesoBoolImmediatelyAfterKind(t *testing.T) {
	w := wire.NewWriter(DropSpawnMaxLen)
	DropSpawn(w, DropKindSpawnExisting, true, 1, 40308, 100, 200, 0, 0, 0, 0)
	require.Equal(t, byte(1), w.Bytes()[3]) // opcode(2) + kind(1) + meso-bool at index 3
}
