package session

import (
	"context"

	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"

	"github.com/mapleforge/channeld/internal/bridge"
	"github.com/mapleforge/channeld/internal/model"
	dispatch "github.com/mapleforge/channeld/internal/net/packet"
	"github.com/mapleforge/channeld/internal/packet"
	"github.com/mapleforge/channeld/internal/persist"
	"github.com/mapleforge/channeld/internal/script"
	"github.com/mapleforge/channeld/internal/wire"
)

// newCharacter returns a fresh beginner-level character for a
// first-time character-select id. Account/character creation otherwise
// belongs to the login-server flow this core treats as an external
// collaborator (§1); this is the minimal bootstrap needed to exercise the
// rest of the path without one.
func newCharacter(characterID int32, accountName string) *model.Player {
	p := model.NewPlayer()
	p.CharacterID = characterID
	p.Name = accountName
	p.Job = model.JobBeginner
	p.Level = 1
	p.Str, p.Dex, p.Int, p.Luk = 4, 4, 4, 4
	p.HP, p.MaxHP = 50, 50
	p.MP, p.MaxMP = 5, 5
	p.MapID = 0
	return p
}

// asWorker recovers the Worker a dispatch.HandlerFunc receives as sess —
// every opcode in this package is only ever registered against a *Worker,
// never a bare *net.Session.
func asWorker(sess any) *Worker {
	wk, ok := sess.(*Worker)
	if !ok {
		panic("session: handler invoked with non-Worker sess")
	}
	return wk
}

func handleLoginRequest(sess any, r *wire.Reader) {
	wk := asWorker(sess)
	name, err := r.SizedString()
	if err != nil {
		wk.Log.Debug("malformed login request", zap.Error(err))
		return
	}
	password, err := r.SizedString()
	if err != nil {
		wk.Log.Debug("malformed login request", zap.Error(err))
		return
	}

	ctx := context.Background()
	row, err := wk.World.Accounts.Load(ctx, name)
	if err != nil {
		wk.Log.Error("account lookup failed", zap.Error(err))
		return
	}
	if row == nil || row.Banned || !wk.World.Accounts.ValidatePassword(row.PasswordHash, password) {
		w := wire.NewWriter(packet.LoginFailureMaxLen)
		packet.LoginFailure(w, packet.StatusDisabled)
		wk.Send(w.Bytes())
		return
	}

	wk.Session.AccountName = name
	wk.setState(dispatch.StateAuthenticated)
	_ = wk.World.Accounts.UpdateLastActive(ctx, name, wk.Session.IP)
	_ = wk.World.Accounts.SetOnline(ctx, name, true)

	w := wire.NewWriter(packet.LoginSuccessMaxLen)
	packet.LoginSuccess(w, 0, 0, name, 0)
	wk.Send(w.Bytes())
}

func handleSelectCharacter(sess any, r *wire.Reader) {
	wk := asWorker(sess)
	charID, err := r.I32()
	if err != nil {
		wk.Log.Debug("malformed character select", zap.Error(err))
		return
	}

	ctx := context.Background()
	snap, err := wk.World.Snapshots.Load(ctx, charID)
	if err != nil {
		wk.Log.Error("snapshot load failed", zap.Int32("character_id", charID), zap.Error(err))
		return
	}
	var player *model.Player
	if snap == nil {
		player = newCharacter(wk.World.NextCharacterID(), wk.Session.AccountName)
	} else {
		player, err = persist.FromSnapshot(snap)
		if err != nil {
			wk.Log.Error("snapshot hydrate failed", zap.Int32("character_id", charID), zap.Error(err))
			return
		}
	}

	wk.Player = player
	wk.Session.CharacterID = wk.Player.CharacterID
	wk.setState(dispatch.StateInWorld)
	wk.World.JoinMap(wk, wk.Player.MapID)
	wk.sendMapEntry()
}

func handleMovePlayer(sess any, r *wire.Reader) {
	wk := asWorker(sess)
	path := r.Rest()
	for _, ob := range wk.World.Observers(wk) {
		w := wire.NewWriter(packet.MovePlayerMaxLen)
		packet.MovePlayer(w, wk.Player.CharacterID, path)
		ob.Send(w.Bytes())
	}
}

func handleChat(sess any, r *wire.Reader) {
	wk := asWorker(sess)
	message, err := r.SizedString()
	if err != nil {
		return
	}
	w := wire.NewWriter(packet.ChatMaxLen)
	packet.Chat(w, wk.Player.CharacterID, false, message)
	data := w.Bytes()
	wk.Send(data)
	for _, ob := range wk.World.Observers(wk) {
		ob.Send(data)
	}
}

// startInteraction allocates a script instance, tags the worker's bridge
// handle with the script currently attributed to it, runs the first step,
// and interprets the result.
func startInteraction(wk *Worker, kind, scriptName string, entry int, extra ...lua.LValue) {
	mgr := wk.World.scriptManager(kind)
	if mgr == nil {
		wk.Log.Warn("no script manager configured", zap.String("kind", kind))
		return
	}
	inst, err := mgr.Alloc(scriptName, entry)
	if err != nil {
		wk.Log.Warn("script alloc failed", zap.String("kind", kind), zap.Error(err))
		return
	}
	wk.ops.scriptName = scriptName
	args := append([]lua.LValue{bridge.NewClientHandle(inst.VM(), wk.Handle)}, extra...)
	res := inst.Run(args...)
	wk.flushEffects(context.Background(), wk.ops)
	handleScriptResult(wk, kind, inst, res)
}

func handleScriptResult(wk *Worker, kind string, inst *script.Instance, res script.Result) {
	switch res.Kind {
	case script.ResultNext:
		wk.interaction = &interaction{kind: kind, inst: inst}
	case script.ResultKick:
		inst.Free()
		wk.interaction = nil
		wk.Session.Close()
	case script.ResultWarp:
		inst.Free()
		wk.interaction = nil
		wk.Player.MapID = res.WarpMapID
		wk.World.JoinMap(wk, res.WarpMapID)
		wk.sendMapEntry()
	case script.ResultFailure:
		inst.Free()
		wk.interaction = nil
		wk.Log.Warn("script runtime error", zap.String("kind", kind), zap.Error(res.Err))
	default: // ResultValue
		inst.Free()
		wk.interaction = nil
	}
}

func handleNPCTalk(sess any, r *wire.Reader) {
	wk := asWorker(sess)
	npcID, err := r.I32()
	if err != nil {
		return
	}
	scriptName, err := r.SizedString()
	if err != nil {
		return
	}
	wk.npcID = npcID
	startInteraction(wk, ScriptsNPC, scriptName, EntryTalk)
}

func handleDialogueAnswer(sess any, r *wire.Reader) {
	wk := asWorker(sess)
	answer, err := r.I32()
	if err != nil || wk.interaction == nil {
		return
	}
	in := wk.interaction
	wk.interaction = nil
	res := in.inst.Run(lua.LNumber(answer))
	wk.flushEffects(context.Background(), wk.ops)
	handleScriptResult(wk, in.kind, in.inst, res)
}

func handlePortalEnter(sess any, r *wire.Reader) {
	wk := asWorker(sess)
	scriptName, err := r.SizedString()
	if err != nil {
		return
	}
	startInteraction(wk, ScriptsPortal, scriptName, EntryEnter)
}

func handleReactorHit(sess any, r *wire.Reader) {
	wk := asWorker(sess)
	objectID, err := r.I32()
	if err != nil {
		return
	}
	state, err := r.U8()
	if err != nil {
		return
	}

	mgr := wk.World.scriptManager(ScriptsReactor)
	if mgr == nil {
		wk.Log.Warn("no reactor script manager configured")
		return
	}
	inst, err := mgr.Alloc("", EntryTrigger)
	if err != nil {
		wk.Log.Warn("reactor script alloc failed", zap.Error(err))
		return
	}
	rp := &reactorProxy{wk: wk, objectID: objectID}
	handle := wk.World.Bridge.RegisterReactor(rp)
	defer wk.World.Bridge.ForgetReactor(handle)

	res := inst.Run(bridge.NewReactorHandle(inst.VM(), handle), lua.LNumber(state))
	wk.flushEffects(context.Background(), wk.ops)
	handleScriptResult(wk, ScriptsReactor, inst, res)
}

func handleQuit(sess any, r *wire.Reader) {
	wk := asWorker(sess)
	if wk.Player != nil {
		wk.World.PersistOnDisconnect(context.Background(), wk)
		_ = wk.World.Accounts.SetOnline(context.Background(), wk.Session.AccountName, false)
	}
	wk.Session.Close()
}
