// Package bridge exposes the native callables scripts use to mutate game
// state: Client, Reactor, and Job namespaces bound as gopher-lua
// metatables. Handles passed into Lua are small tagged integers resolved
// through a Registry, never raw Go pointers — so a script holding a
// userdata after its bound entity is gone fails a lookup instead of
// dereferencing freed memory.
package bridge

import "sync"

// Registry maps small integer handles to the live entities a script may
// address. One Registry is shared by every script manager in a process.
type Registry struct {
	mu   sync.Mutex
	next int32

	clients  map[int32]ClientOps
	reactors map[int32]ReactorOps
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		clients:  make(map[int32]ClientOps),
		reactors: make(map[int32]ReactorOps),
	}
}

func (r *Registry) allocHandle() int32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.next++
	return r.next
}

// RegisterClient issues a handle for c, valid until Forget is called.
func (r *Registry) RegisterClient(c ClientOps) int32 {
	h := r.allocHandle()
	r.mu.Lock()
	r.clients[h] = c
	r.mu.Unlock()
	return h
}

// ForgetClient invalidates a client handle (on disconnect or map exit).
func (r *Registry) ForgetClient(h int32) {
	r.mu.Lock()
	delete(r.clients, h)
	r.mu.Unlock()
}

func (r *Registry) client(h int32) (ClientOps, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.clients[h]
	return c, ok
}

// RegisterReactor issues a handle for a reactor.
func (r *Registry) RegisterReactor(ro ReactorOps) int32 {
	h := r.allocHandle()
	r.mu.Lock()
	r.reactors[h] = ro
	r.mu.Unlock()
	return h
}

// ForgetReactor invalidates a reactor handle.
func (r *Registry) ForgetReactor(h int32) {
	r.mu.Lock()
	delete(r.reactors, h)
	r.mu.Unlock()
}

func (r *Registry) reactor(h int32) (ReactorOps, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ro, ok := r.reactors[h]
	return ro, ok
}
