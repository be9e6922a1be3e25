package bridge

import lua "github.com/yuin/gopher-lua"

// ReactorOps is the set of effects a script can have on a reactor.
type ReactorOps interface {
	Spawn(templateID, x, y int32)
	Despawn()
	Trigger(state uint8)
}

const reactorMetatableName = "reactor"

// OpenReactor installs the "reactor" metatable on L.
func OpenReactor(L *lua.LState, reg *Registry) {
	mt := L.NewTypeMetatable(reactorMetatableName)
	L.SetField(mt, "__index", L.SetFuncs(L.NewTable(), reactorMethods(reg)))
}

func reactorHandle(L *lua.LState) int32 {
	ud := L.CheckUserData(1)
	h, ok := ud.Value.(int32)
	if !ok {
		L.RaiseError("reactor: invalid handle")
	}
	return h
}

func reactorMethods(reg *Registry) map[string]lua.LGFunction {
	resolve := func(L *lua.LState) ReactorOps {
		h := reactorHandle(L)
		ro, ok := reg.reactor(h)
		if !ok {
			L.RaiseError("reactor: handle %d no longer valid", h)
		}
		return ro
	}

	return map[string]lua.LGFunction{
		"spawn": func(L *lua.LState) int {
			resolve(L).Spawn(int32(L.CheckNumber(2)), int32(L.CheckNumber(3)), int32(L.CheckNumber(4)))
			return 0
		},
		"despawn": func(L *lua.LState) int {
			resolve(L).Despawn()
			return 0
		},
		"trigger": func(L *lua.LState) int {
			resolve(L).Trigger(uint8(L.CheckNumber(2)))
			return 0
		},
	}
}

// NewReactorHandle wraps a registry handle as userdata bound to the
// "reactor" metatable.
func NewReactorHandle(L *lua.LState, handle int32) *lua.LUserData {
	ud := L.NewUserData()
	ud.Value = handle
	L.SetMetatable(ud, L.GetTypeMetatable(reactorMetatableName))
	return ud
}
