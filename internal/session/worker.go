package session

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/mapleforge/channeld/internal/model"
	"github.com/mapleforge/channeld/internal/net"
	dispatch "github.com/mapleforge/channeld/internal/net/packet"
	"github.com/mapleforge/channeld/internal/packet"
	"github.com/mapleforge/channeld/internal/script"
	"github.com/mapleforge/channeld/internal/wire"
)

// Worker is the exclusive owner of one connected character's state (§5).
// Every field here is touched only from the goroutine driving this
// session's dispatch loop — no locking, by construction rather than by
// mutex.
type Worker struct {
	World   *World
	Session *net.Session
	Log     *zap.Logger

	Player *model.Player
	MapID  int32

	Handle int32      // this worker's bridge.Registry client handle
	ops    *playerOps // the ClientOps instance registered under Handle

	interaction *interaction // the in-flight script call, if any
	npcID       int32        // speaker for the current NPC interaction's Say() calls
}

// interaction tracks one suspended script coroutine a worker is mid-way
// through running — an NPC conversation, a portal script, or a reactor
// trigger waiting on ask() to resume it.
type interaction struct {
	kind string // one of the Scripts* manager names, for logging only
	inst *script.Instance
}

// NewWorker wires a fresh session to the shared world and registers it
// with the bridge so scripts can address it as a "client" handle.
func NewWorker(w *World, sess *net.Session) *Worker {
	wk := &Worker{
		World:   w,
		Session: sess,
		Log:     w.Log.With(zap.Uint64("session", sess.ID)),
	}
	ops := newPlayerOps("")
	ops.worker = wk
	wk.ops = ops
	wk.Handle = w.Bridge.RegisterClient(ops)
	w.Register(wk)
	return wk
}

// Send encodes nothing itself — callers build the frame via a packet
// encoder into a wire.Writer and pass the finished bytes here.
func (wk *Worker) Send(data []byte) {
	wk.Session.Send(data)
}

// Close detaches the worker from the bridge and from whatever map it
// occupied. Persistence is the caller's responsibility (it needs a
// context, which this type deliberately does not carry).
func (wk *Worker) Close() {
	wk.World.Bridge.ForgetClient(wk.Handle)
	wk.World.Unregister(wk)
	if wk.interaction != nil {
		wk.interaction.inst.Free()
		wk.interaction = nil
	}
}

func (wk *Worker) setState(st dispatch.SessionState) {
	wk.Session.SetState(st)
}

// sendMapEntry re-encodes and sends the full character snapshot, used on
// initial enter-world and on every warp/change-map.
func (wk *Worker) sendMapEntry() {
	w := wire.NewWriter(packet.MapEntryMaxLen)
	packet.MapEntry(w, wk.Player, time.Now())
	wk.Send(w.Bytes())
}

// flushEffects writes the effect-log batch a script call accumulated and
// clears it, called once after every Instance.Run — batched per
// interaction step rather than per bridge call (internal/persist/wal.go).
func (wk *Worker) flushEffects(ctx context.Context, ops *playerOps) {
	if len(ops.pending) == 0 {
		return
	}
	if wk.World.Effects != nil {
		if err := wk.World.Effects.WriteBatch(ctx, ops.pending); err != nil {
			wk.Log.Warn("effect log write failed", zap.Error(err))
		}
	}
	ops.pending = ops.pending[:0]
}
