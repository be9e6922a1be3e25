package script

import (
	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"
)

// Instance is one running (or not-yet-started) interaction: a coroutine
// thread over its owning script's VM, plus the entry point it will call
// or resume.
type Instance struct {
	co      *lua.LState
	owner   *script
	entry   *EntryPoint
	started bool
	log     *zap.Logger
}

// VM returns the Lua state args should be constructed against (e.g. via
// bridge.NewClientHandle) before calling Run — userdata must be built on
// the same state whose metatables it is bound to.
func (in *Instance) VM() *lua.LState {
	return in.owner.L
}

// Run drives the instance one step. The first call looks up the entry
// point's global function and resumes with args as its initial
// arguments; every subsequent call resumes the already-suspended
// coroutine with args as the values the last yield produced.
//
// args must be pre-tagged userdata/bool/int LValues for userdata/
// boolean/integer parameters respectively — the bridge registry that
// built them owns metatable lookup, not this package.
func (in *Instance) Run(args ...lua.LValue) Result {
	in.owner.mu.Lock()
	defer in.owner.mu.Unlock()

	var fn lua.LValue
	if !in.started {
		in.started = true
		fn = in.owner.L.GetGlobal(in.entry.Symbol)
	} else {
		fn = lua.LNil
	}

	st, err, values := in.owner.L.Resume(in.co, fn, args...)
	return in.interpret(st, err, values)
}

func (in *Instance) interpret(st lua.ResumeState, err error, values []lua.LValue) Result {
	switch st {
	case lua.ResumeOK:
		r := Result{Kind: ResultValue}
		if len(values) > 0 {
			switch in.entry.Result {
			case ValueBoolean:
				r.Bool = values[0] == lua.LTrue
			case ValueInteger:
				r.Int = int64(lua.LVAsNumber(values[0]))
			}
		}
		return r
	case lua.ResumeYield:
		switch len(values) {
		case 2:
			return Result{
				Kind:         ResultWarp,
				WarpMapID:    int32(lua.LVAsNumber(values[0])),
				WarpPortalID: int32(lua.LVAsNumber(values[1])),
			}
		case 1:
			return Result{Kind: ResultKick}
		default:
			return Result{Kind: ResultNext}
		}
	default:
		if in.log != nil {
			in.log.Warn("script runtime error", zap.Error(err), zap.String("entry", in.entry.Symbol))
		}
		return Result{Kind: ResultFailure, Err: err}
	}
}

// Free detaches the instance's coroutine from its owning script. Go's
// garbage collector reclaims the thread once unreferenced — unlike the
// original implementation, no explicit scan-and-remove over the parent
// VM's stack is needed; the per-script mutex is still taken here so a
// concurrent Alloc/Run against the same file never races with detach
// bookkeeping added in the future.
func (in *Instance) Free() {
	in.owner.mu.Lock()
	defer in.owner.mu.Unlock()
	in.co = nil
}
