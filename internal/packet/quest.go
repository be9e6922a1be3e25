package packet

import (
	"github.com/mapleforge/channeld/internal/filetime"
	"github.com/mapleforge/channeld/internal/wire"
)

// Quest sub-actions. Start, End and Forfeit ride OpQuestFlow; the two
// update actions ride OpQuestInfoMultiplexer.
const (
	QuestActionStart           uint8 = 1
	QuestActionEnd             uint8 = 2
	QuestActionUpdateProgress  uint8 = 3
	QuestActionUpdateComplete  uint8 = 4
	QuestActionForfeit         uint8 = 5
)

// QuestStartMaxLen bounds QuestStart.
const QuestStartMaxLen = 2 + 1 + 2 + 2

// QuestStart notifies the client a quest began.
func QuestStart(w *wire.Writer, questID uint16) int {
	w.Opcode(OpQuestFlow)
	w.U8(QuestActionStart)
	w.U16(questID)
	w.U16(0) // no accompanying progress string on start
	return w.Len()
}

// QuestEndMaxLen bounds QuestEnd.
const QuestEndMaxLen = 2 + 1 + 2 + 4

// QuestEnd notifies the client a quest finished, carrying the id of the
// NPC to return to for the next quest in the chain (0 if none).
func QuestEnd(w *wire.Writer, questID uint16, nextNpcID int32) int {
	w.Opcode(OpQuestFlow)
	w.U8(QuestActionEnd)
	w.U16(questID)
	w.I32(nextNpcID)
	return w.Len()
}

// QuestUpdateProgressMaxLen bounds QuestUpdateProgress (scratch string up
// to 255 bytes).
const QuestUpdateProgressMaxLen = 2 + 1 + 2 + 2 + 255

// QuestUpdateProgress writes a quest's opaque script-visible progress
// scratch string. Rides the info/update multiplexer (0x0027), not the
// start/end/forfeit flow opcode.
func QuestUpdateProgress(w *wire.Writer, questID uint16, progress string) int {
	w.Opcode(OpQuestInfoMultiplexer)
	w.U8(QuestActionUpdateProgress)
	w.U16(questID)
	w.String(progress)
	return w.Len()
}

// QuestUpdateCompletionMaxLen bounds QuestUpdateCompletion.
const QuestUpdateCompletionMaxLen = 2 + 1 + 2 + 8

// QuestUpdateCompletion writes a quest's completion FILETIME — local
// timezone offset pre-folded in, per §6. Rides the info/update
// multiplexer (0x0027).
func QuestUpdateCompletion(w *wire.Writer, questID uint16, completedAt uint64) int {
	w.Opcode(OpQuestInfoMultiplexer)
	w.U8(QuestActionUpdateComplete)
	w.U16(questID)
	w.U64(completedAt)
	return w.Len()
}

// QuestForfeitMaxLen bounds QuestForfeit.
const QuestForfeitMaxLen = 2 + 1 + 2

// QuestForfeit notifies the client a quest was abandoned.
func QuestForfeit(w *wire.Writer, questID uint16) int {
	w.Opcode(OpQuestFlow)
	w.U8(QuestActionForfeit)
	w.U16(questID)
	return w.Len()
}

// NeverCompleted is the FILETIME sentinel for a quest with no completion
// record yet.
const NeverCompleted = filetime.Zero
