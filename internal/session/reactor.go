package session

import (
	"github.com/mapleforge/channeld/internal/packet"
	"github.com/mapleforge/channeld/internal/wire"
)

// reactorProxy adapts one client-reported reactor hit to bridge.ReactorOps.
// Reactor placement/state is authoritative on the original map data (an
// external collaborator, §1); this core has no persistent reactor
// registry, so a proxy is allocated per trigger and relays the script's
// effects to every worker sharing the triggering client's map, keyed by
// the object id the client itself reported.
type reactorProxy struct {
	wk       *Worker
	objectID int32
}

func (rp *reactorProxy) broadcast(data []byte) {
	for _, ob := range rp.wk.World.Observers(rp.wk) {
		ob.Send(data)
	}
}

func (rp *reactorProxy) Spawn(templateID, x, y int32) {
	w := wire.NewWriter(packet.ReactorStateMaxLen)
	packet.SpawnReactor(w, rp.objectID, templateID, 0, x, y, false)
	rp.broadcast(w.Bytes())
}

func (rp *reactorProxy) Despawn() {
	w := wire.NewWriter(packet.DestroyReactorMaxLen)
	packet.DestroyReactor(w, rp.objectID, 0, 0, 0)
	rp.broadcast(w.Bytes())
}

func (rp *reactorProxy) Trigger(state uint8) {
	w := wire.NewWriter(packet.ReactorStateMaxLen)
	packet.ChangeReactor(w, rp.objectID, state, 0, 0, false)
	rp.broadcast(w.Bytes())
}
