// Package script hosts the embedded scripting runtime: one gopher-lua VM
// per loaded file, script instances allocated as Lua coroutines, and a
// result type the interaction bridge maps onto packet-catalog calls.
package script

// ValueType names the wire shape of an entry-point argument or result.
type ValueType int

const (
	ValueBoolean ValueType = iota
	ValueInteger
	ValueUserdata
)

// Arg describes one entry-point parameter. Tag is only meaningful when
// Type is ValueUserdata — it names the Lua metatable the pushed userdata
// is bound to (e.g. "client", "reactor").
type Arg struct {
	Type ValueType
	Tag  string
}

// EntryPoint is one callable a script manager exposes to its callers,
// supplied externally at construction — the host stores these by index,
// never by name, mirroring the original implementation's
// (symbol, arg-type-vector, result-type) registration.
type EntryPoint struct {
	Symbol string
	Args   []Arg
	Result ValueType
}

// ResultKind discriminates Result's variants.
type ResultKind int

const (
	// ResultValue is a terminal return: the entry point's function
	// returned normally with a value of the declared result type.
	ResultValue ResultKind = iota
	// ResultNext is a yield with no values: the interaction continues,
	// awaiting another round-trip with no information to report.
	ResultNext
	// ResultKick is a yield with exactly one value: drop the player.
	ResultKick
	// ResultWarp is a yield with exactly two values: a map id and a
	// portal id to warp the player to.
	ResultWarp
	// ResultFailure is a script runtime error. The interaction is
	// aborted; the player stays connected.
	ResultFailure
)

// Result is what Run returns after one resume.
type Result struct {
	Kind ResultKind

	Bool bool
	Int  int64

	WarpMapID    int32
	WarpPortalID int32

	Err error
}
