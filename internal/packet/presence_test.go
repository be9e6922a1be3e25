package packet

import (
	"testing"

	"github.com/mapleforge/channeld/internal/model"
	"github.com/mapleforge/channeld/internal/wire"
	"github.com/stretchr/testify/require"
)

func TestAddPlayerEmbedsAppearanceBlock(t *testing.T) {
	p := model.NewPlayer()
	p.Name = "Bob"
	p.Level = 30
	p.MapID = 100000000
	p.X, p.Y = 100, 200

	w := wire.NewWriter(AddPlayerMaxLen)
	n := AddPlayer(w, 1, p)
	require.Greater(t, n, 2+4+2+12)
}

func TestRemovePlayerIsObjectIDOnly(t *testing.T) {
	w := wire.NewWriter(RemovePlayerMaxLen)
	n := RemovePlayer(w, 42)
	require.Equal(t, 6, n)
}

func TestMovePlayerCarriesPathVerbatim(t *testing.T) {
	path := []byte{1, 2, 3, 4}
	w := wire.NewWriter(MovePlayerMaxLen)
	MovePlayer(w, 7, path)
	b := w.Bytes()
	require.Equal(t, byte(len(path)), b[2+4+4])
	require.Equal(t, path, b[2+4+4+1:])
}
