package packet

import (
	"testing"

	"github.com/mapleforge/channeld/internal/wire"
	"github.com/stretchr/testify/require"
)

func TestSpawnMobControllerAndRemoveShareOpcode(t *testing.T) {
	w1 := wire.NewWriter(SpawnMobControllerMaxLen)
	SpawnMobController(w1, 9, true)
	w2 := wire.NewWriter(RemoveMobControllerMaxLen)
	RemoveMobController(w2, 9)
	require.Equal(t, w1.Bytes()[0:2], w2.Bytes()[0:2])
	require.Equal(t, uint8(1), w1.Bytes()[2])
	require.Equal(t, uint8(0), w2.Bytes()[2])
}

func TestKillMobAnimationByte(t *testing.T) {
	w := wire.NewWriter(KillMobMaxLen)
	KillMob(w, 3, KillAnimationExplode)
	require.Equal(t, KillAnimationExplode, w.Bytes()[6])
}

func TestMobHPIsObjectIDThenPercent(t *testing.T) {
	w := wire.NewWriter(MobHPMaxLen)
	MobHP(w, 3, 42)
	b := w.Bytes()
	require.Equal(t, uint8(42), b[6])
}
