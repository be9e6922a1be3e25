package packet

import (
	"testing"

	"github.com/mapleforge/channeld/internal/wire"
	"github.com/stretchr/testify/require"
)

func TestLoginSuccessWorkedExample(t *testing.T) {
	w := wire.NewWriter(LoginSuccessMaxLen)
	n := LoginSuccess(w, 123, 0, "Hero", StatusDisabled)

	want := []byte{
		0x00, 0x00, // opcode
		0, 0, 0, 0, 0, 0, // 6 zero bytes
		0x7B, 0x00, 0x00, 0x00, // id = 123
		0x00,             // gender
		0, 0, 0,          // 3 zero bytes
		0x04, 0x00, 'H', 'e', 'r', 'o', // sized-string "Hero"
		0x00, 0x00, // 2 zero bytes
		0, 0, 0, 0, 0, 0, 0, 0, // 8 zero bytes
		0, 0, 0, 0, 0, 0, 0, 0, // 8 zero bytes
		0x01, 0x00, 0x00, 0x00,
		0x01,
		0x02,
	}

	require.Equal(t, 46, n)
	require.Equal(t, want, w.Bytes())
}

func TestServerListTerminatorUsesSentinelWorld(t *testing.T) {
	w := wire.NewWriter(ServerListTerminatorMaxLen)
	ServerListTerminator(w)
	require.Equal(t, []byte{0x0A, 0x00, 0xFF}, w.Bytes())
}
