package packet

import (
	"testing"

	"github.com/mapleforge/channeld/internal/wire"
	"github.com/stretchr/testify/require"
)

func TestQuestStartAndEndShareFlowOpcode(t *testing.T) {
	w1 := wire.NewWriter(QuestStartMaxLen)
	QuestStart(w1, 2702)

	w2 := wire.NewWriter(QuestEndMaxLen)
	QuestEnd(w2, 2702, 1012005)

	require.Equal(t, w1.Bytes()[0:2], w2.Bytes()[0:2])
	require.Equal(t, QuestActionStart, w1.Bytes()[2])
	require.Equal(t, QuestActionEnd, w2.Bytes()[2])
}

func TestQuestUpdatesRideInfoMultiplexerNotFlowOpcode(t *testing.T) {
	w := wire.NewWriter(QuestUpdateProgressMaxLen)
	QuestUpdateProgress(w, 2702, "1")

	flow := wire.NewWriter(QuestStartMaxLen)
	QuestStart(flow, 2702)

	require.NotEqual(t, flow.Bytes()[0:2], w.Bytes()[0:2])
	require.Equal(t, uint8(OpQuestInfoMultiplexer), w.Bytes()[0])
}

func TestQuestForfeitIsShortestFlowVariant(t *testing.T) {
	w := wire.NewWriter(QuestForfeitMaxLen)
	n := QuestForfeit(w, 2702)
	require.Equal(t, 5, n) // opcode(2) + action(1) + questID(2)
}
