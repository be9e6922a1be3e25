package packet

import (
	"testing"

	"github.com/mapleforge/channeld/internal/wire"
	"github.com/stretchr/testify/require"
)

func TestKeymapWritesAllNinetySlots(t *testing.T) {
	var binds [90]Keybind
	binds[0] = Keybind{Type: 4, Action: 100}
	w := wire.NewWriter(KeymapMaxLen)
	n := Keymap(w, binds)
	require.Equal(t, 2+1+90*5, n)
}

func TestSelfEffectAndForeignEffectShareKindEncoding(t *testing.T) {
	w1 := wire.NewWriter(SelfEffectMaxLen)
	SelfEffect(w1, EffectLevelUp)
	w2 := wire.NewWriter(ForeignEffectMaxLen)
	ForeignEffect(w2, 7, EffectLevelUp)
	require.Equal(t, w1.Bytes()[len(w1.Bytes())-1], w2.Bytes()[len(w2.Bytes())-1])
}

func TestChatCarriesMessage(t *testing.T) {
	w := wire.NewWriter(ChatMaxLen)
	n := Chat(w, 1, false, "hello")
	require.Equal(t, 2+4+1+2+5, n)
}
