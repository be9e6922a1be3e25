package bridge

import (
	lua "github.com/yuin/gopher-lua"
)

// ClientOps is the set of effects a script can have on a bound player.
// Implemented by the dispatcher's session type; the bridge itself holds
// no game state, only handles. Methods that compose an observable packet
// (grant, warp, job change, exp) are synchronous from Lua's perspective —
// the effect is applied and its confirmation packet queued before the
// call returns. Say shows a dialogue line without suspending; Ask is the
// one call in this namespace that requires a round-trip to the client,
// implemented by yielding the calling coroutine (§8 worked example).
type ClientOps interface {
	GrantMeso(amount int32)
	GrantItem(itemID int32, quantity int16)
	Level() uint8
	Job() int32
	StartQuest(questID int32)
	CompleteQuest(questID int32)
	Warp(mapID, portalID int32)
	ChangeJob(job int32)
	AwardExp(amount int32)
	ChangeMap(mapID int32)
	Say(message string)
}

const clientMetatableName = "client"

// OpenClient installs the "client" metatable on L. Every userdata tagged
// with this metatable carries a Registry handle (an int32), resolved
// back to a ClientOps on each call.
func OpenClient(L *lua.LState, reg *Registry) {
	mt := L.NewTypeMetatable(clientMetatableName)
	L.SetField(mt, "__index", L.SetFuncs(L.NewTable(), clientMethods(reg)))
}

func clientHandle(L *lua.LState) int32 {
	ud := L.CheckUserData(1)
	h, ok := ud.Value.(int32)
	if !ok {
		L.RaiseError("client: invalid handle")
	}
	return h
}

func clientMethods(reg *Registry) map[string]lua.LGFunction {
	resolve := func(L *lua.LState) ClientOps {
		h := clientHandle(L)
		c, ok := reg.client(h)
		if !ok {
			L.RaiseError("client: handle %d no longer valid", h)
		}
		return c
	}

	return map[string]lua.LGFunction{
		"mesos": func(L *lua.LState) int {
			resolve(L).GrantMeso(int32(L.CheckNumber(2)))
			return 0
		},
		"item": func(L *lua.LState) int {
			resolve(L).GrantItem(int32(L.CheckNumber(2)), int16(L.CheckNumber(3)))
			return 0
		},
		"level": func(L *lua.LState) int {
			L.Push(lua.LNumber(resolve(L).Level()))
			return 1
		},
		"job": func(L *lua.LState) int {
			L.Push(lua.LNumber(resolve(L).Job()))
			return 1
		},
		"startQuest": func(L *lua.LState) int {
			resolve(L).StartQuest(int32(L.CheckNumber(2)))
			return 0
		},
		"completeQuest": func(L *lua.LState) int {
			resolve(L).CompleteQuest(int32(L.CheckNumber(2)))
			return 0
		},
		"warp": func(L *lua.LState) int {
			resolve(L).Warp(int32(L.CheckNumber(2)), int32(L.CheckNumber(3)))
			return 0
		},
		"changeJob": func(L *lua.LState) int {
			resolve(L).ChangeJob(int32(L.CheckNumber(2)))
			return 0
		},
		"exp": func(L *lua.LState) int {
			resolve(L).AwardExp(int32(L.CheckNumber(2)))
			return 0
		},
		"changeMap": func(L *lua.LState) int {
			resolve(L).ChangeMap(int32(L.CheckNumber(2)))
			return 0
		},
		"say": func(L *lua.LState) int {
			resolve(L).Say(L.CheckString(2))
			return 0
		},
		"ask": func(L *lua.LState) int {
			// The one suspension point in this namespace: the script's
			// coroutine yields here with no values (a Next result) and
			// is resumed later with the player's chosen value, which
			// gopher-lua delivers back as ask()'s own return value.
			return L.Yield()
		},
	}
}

// NewClientHandle wraps a registry handle as userdata bound to the
// "client" metatable, ready to push as a script entry-point argument.
func NewClientHandle(L *lua.LState, handle int32) *lua.LUserData {
	ud := L.NewUserData()
	ud.Value = handle
	L.SetMetatable(ud, L.GetTypeMetatable(clientMetatableName))
	return ud
}
