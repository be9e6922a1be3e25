// Package session drives the end-to-end request path: it owns the
// per-connection workers, wires internal/net's dispatch registry to the
// script host and interaction bridge, and is the one place that turns a
// client frame into a script call or a persisted effect.
package session

import (
	"context"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/mapleforge/channeld/internal/bridge"
	"github.com/mapleforge/channeld/internal/config"
	"github.com/mapleforge/channeld/internal/persist"
	"github.com/mapleforge/channeld/internal/script"
)

// Script manager names, matching config.Config.Scripts keys.
const (
	ScriptsNPC     = "npc"
	ScriptsPortal  = "portal"
	ScriptsReactor = "reactor"
	ScriptsJob     = "job"
)

// Entry point indices, shared by every manager's registered vector
// (cmd/channeld wires the same four-entry vector to each manager — see
// entryPoints in cmd/channeld/main.go).
const (
	EntryTalk    = 0
	EntryEnter   = 1
	EntryTrigger = 2
	EntryAdvance = 3
)

// World is the process-wide shared state every connection's worker reads
// from: script managers, the interaction bridge registry, persistence
// repos, and the character-id allocator. Everything here is either
// read-only after construction or internally synchronized — no player
// state lives on World itself (§5).
type World struct {
	Config *config.Config
	Log    *zap.Logger

	Accounts  *persist.AccountRepo
	Snapshots *persist.SnapshotRepo
	Effects   *persist.EffectLogRepo

	Bridge  *bridge.Registry
	Scripts map[string]*script.Manager

	nextCharID atomic.Int32

	mu      sync.Mutex
	workers map[uint64]*Worker        // session id -> worker
	maps    map[int32]map[uint64]*Worker // map id -> session id -> worker
}

// NewWorld assembles the shared state. maxCharID seeds the allocator used
// by character creation above every id already persisted.
func NewWorld(cfg *config.Config, log *zap.Logger, accounts *persist.AccountRepo, snapshots *persist.SnapshotRepo, effects *persist.EffectLogRepo, reg *bridge.Registry, scripts map[string]*script.Manager, maxCharID int32) *World {
	w := &World{
		Config:    cfg,
		Log:       log,
		Accounts:  accounts,
		Snapshots: snapshots,
		Effects:   effects,
		Bridge:    reg,
		Scripts:   scripts,
		workers:   make(map[uint64]*Worker),
		maps:      make(map[int32]map[uint64]*Worker),
	}
	w.nextCharID.Store(maxCharID)
	return w
}

// NextCharacterID allocates the next free character id.
func (w *World) NextCharacterID() int32 {
	return w.nextCharID.Add(1)
}

// Register tracks a newly connected worker.
func (w *World) Register(wk *Worker) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.workers[wk.Session.ID] = wk
}

// Unregister drops a disconnected worker from every index, including
// whichever map it last joined.
func (w *World) Unregister(wk *Worker) {
	w.mu.Lock()
	defer w.mu.Unlock()
	delete(w.workers, wk.Session.ID)
	if wk.MapID != 0 {
		if m, ok := w.maps[wk.MapID]; ok {
			delete(m, wk.Session.ID)
			if len(m) == 0 {
				delete(w.maps, wk.MapID)
			}
		}
	}
}

// JoinMap moves wk's visibility registration to mapID, leaving whatever
// map it previously occupied.
func (w *World) JoinMap(wk *Worker, mapID int32) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if wk.MapID != 0 {
		if m, ok := w.maps[wk.MapID]; ok {
			delete(m, wk.Session.ID)
			if len(m) == 0 {
				delete(w.maps, wk.MapID)
			}
		}
	}
	m, ok := w.maps[mapID]
	if !ok {
		m = make(map[uint64]*Worker)
		w.maps[mapID] = m
	}
	m[wk.Session.ID] = wk
	wk.MapID = mapID
}

// Observers returns every worker sharing wk's current map, wk itself
// excluded.
func (w *World) Observers(wk *Worker) []*Worker {
	w.mu.Lock()
	defer w.mu.Unlock()
	m := w.maps[wk.MapID]
	out := make([]*Worker, 0, len(m))
	for id, other := range m {
		if id == wk.Session.ID {
			continue
		}
		out = append(out, other)
	}
	return out
}

// Close tears down every loaded script VM.
func (w *World) Close() {
	for _, m := range w.Scripts {
		m.Close()
	}
}

// scriptManager resolves one of the four named managers, or nil if this
// process was started without it configured.
func (w *World) scriptManager(name string) *script.Manager {
	return w.Scripts[name]
}

// PersistOnDisconnect is a small helper shared by quit and abrupt-drop
// paths; errors are logged, never fatal to the caller's own flow.
func (w *World) PersistOnDisconnect(ctx context.Context, wk *Worker) {
	snap, err := persist.ToSnapshot(wk.Player)
	if err != nil {
		w.Log.Error("snapshot encode failed", zap.Int32("character_id", wk.Player.CharacterID), zap.Error(err))
		return
	}
	if err := w.Snapshots.Save(ctx, snap); err != nil {
		w.Log.Error("snapshot save failed", zap.Int32("character_id", wk.Player.CharacterID), zap.Error(err))
	}
}
