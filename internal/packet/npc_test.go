package packet

import (
	"testing"

	"github.com/mapleforge/channeld/internal/wire"
	"github.com/stretchr/testify/require"
)

func TestNPCDialoguePrevNextTrailerWorkedExample(t *testing.T) {
	w := wire.NewWriter(NPCDialogueMaxLen)
	NPCDialogue(w, 1012000, DialogueTypePrevNext, "Hi")
	b := w.Bytes()
	require.Equal(t, []byte{1, 1}, b[len(b)-2:])
}

func TestNPCDialogueOKTrailerWorkedExample(t *testing.T) {
	w := wire.NewWriter(NPCDialogueMaxLen)
	NPCDialogue(w, 1012000, DialogueTypeOK, "Hi")
	b := w.Bytes()
	require.Equal(t, []byte{0, 0}, b[len(b)-2:])
}

func TestSpawnNPCControllerFlagTogglesTrailingByte(t *testing.T) {
	wOn := wire.NewWriter(SpawnNPCControllerMaxLen)
	SpawnNPCController(wOn, 5, true)
	wOff := wire.NewWriter(SpawnNPCControllerMaxLen)
	SpawnNPCController(wOff, 5, false)
	require.NotEqual(t, wOn.Bytes(), wOff.Bytes())
}
