package session

import (
	"github.com/mapleforge/channeld/internal/model"
	"github.com/mapleforge/channeld/internal/packet"
	"github.com/mapleforge/channeld/internal/persist"
	"github.com/mapleforge/channeld/internal/wire"
)

// playerOps adapts one connected worker's player state to bridge.ClientOps
// — the interface a running script actually calls through. Every mutating
// method here does three things: mutate the in-memory Player, queue the
// confirmation packet on the worker's session, and append an effect-log
// entry for the batch the caller flushes after the script finishes
// running.
type playerOps struct {
	worker     *Worker
	scriptName string
	pending    []persist.EffectEntry
}

func newPlayerOps(scriptName string) *playerOps {
	return &playerOps{scriptName: scriptName}
}

func (o *playerOps) log(kind string, itemID, quantity int32) {
	o.pending = append(o.pending, persist.EffectEntry{
		CharacterID: o.worker.Player.CharacterID,
		ScriptName:  o.scriptName,
		Kind:        kind,
		ItemID:      itemID,
		Quantity:    quantity,
	})
}

func (o *playerOps) GrantMeso(amount int32) {
	p := o.worker.Player
	p.Meso += amount
	o.log("meso", 0, amount)

	w := wire.NewWriter(packet.MesoGainMaxLen)
	packet.MesoGain(w, amount, false)
	o.worker.Send(w.Bytes())
}

func (o *playerOps) GrantItem(itemID int32, quantity int16) {
	p := o.worker.Player
	slot := p.Etc.FirstEmpty()
	if slot == 0 {
		return // inventory full; the script sees no confirmation packet
	}
	p.Etc.Set(slot, model.Cell{Item: &model.InventoryItem{ItemID: itemID, Owner: p.Name, Quantity: quantity}})
	o.log("item", itemID, int32(quantity))

	w := wire.NewWriter(packet.InventoryModifyMaxLen(1))
	packet.InventoryModify(w, 0, []packet.InventoryOp{{
		Op:     packet.InvOpAdd,
		Kind:   packet.KindEtc,
		Item:   &model.InventoryItem{ItemID: itemID, Owner: p.Name, Quantity: quantity},
		ToSlot: int16(slot),
	}})
	o.worker.Send(w.Bytes())
}

func (o *playerOps) Level() uint8 { return o.worker.Player.Level }
func (o *playerOps) Job() int32   { return int32(o.worker.Player.Job) }

func (o *playerOps) StartQuest(questID int32) {
	p := o.worker.Player
	p.Quests.Start(questID, nil)
	o.log("quest_start", questID, 0)

	w := wire.NewWriter(packet.QuestStartMaxLen)
	packet.QuestStart(w, uint16(questID))
	o.worker.Send(w.Bytes())
}

func (o *playerOps) CompleteQuest(questID int32) {
	p := o.worker.Player
	p.Quests.Complete(questID, 0, nil)
	o.log("quest_complete", questID, 0)

	w := wire.NewWriter(packet.QuestEndMaxLen)
	packet.QuestEnd(w, uint16(questID), 0)
	o.worker.Send(w.Bytes())
}

// Warp relocates the player to a new map and portal, then resends the
// full map-entry snapshot the way entering any map does.
func (o *playerOps) Warp(mapID, portalID int32) {
	p := o.worker.Player
	p.MapID = mapID
	o.log("warp", mapID, portalID)
	o.worker.World.JoinMap(o.worker, mapID)
	o.worker.sendMapEntry()
}

func (o *playerOps) ChangeJob(job int32) {
	p := o.worker.Player
	p.Job = model.Job(job)
	o.log("job_change", job, 0)

	w := wire.NewWriter(packet.StatChangeMaxLen)
	packet.StatChange(w, 0, packet.StatJob, packet.StatChangeValues{Job: uint16(job)})
	o.worker.Send(w.Bytes())
}

func (o *playerOps) AwardExp(amount int32) {
	p := o.worker.Player
	p.Exp += amount
	o.log("exp", 0, amount)

	w := wire.NewWriter(packet.ExpGainMaxLen)
	packet.ExpGain(w, amount, 0, 0, true)
	o.worker.Send(w.Bytes())
}

func (o *playerOps) ChangeMap(mapID int32) {
	o.Warp(mapID, 0)
}

func (o *playerOps) Say(message string) {
	w := wire.NewWriter(packet.NPCDialogueMaxLen)
	packet.NPCDialogue(w, o.worker.npcID, packet.DialogueTypePrevNext, message)
	o.worker.Send(w.Bytes())
}
