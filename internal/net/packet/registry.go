// Package packet provides the session-facing opcode dispatch table: the
// state machine that decides which session states accept which incoming
// opcode, and the registry that routes a decoded frame to its handler.
// Packet encoding itself lives in internal/wire and internal/packet — this
// package only reads the fixed uint16 opcode header (§4.3) and hands the
// remaining bytes to a handler as an internal/wire.Reader.
package packet

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/mapleforge/channeld/internal/wire"
)

// SessionState represents the session's current protocol phase.
type SessionState int

const (
	StateHandshake         SessionState = iota
	StateVersionOK                      // received version, awaiting login
	StateAuthenticated                  // logged in, at channel select
	StateInWorld                        // playing
	StateReturningToSelect              // returning to channel select from map
	StateDisconnecting
)

func (s SessionState) String() string {
	switch s {
	case StateHandshake:
		return "Handshake"
	case StateVersionOK:
		return "VersionOK"
	case StateAuthenticated:
		return "Authenticated"
	case StateInWorld:
		return "InWorld"
	case StateReturningToSelect:
		return "ReturningToSelect"
	case StateDisconnecting:
		return "Disconnecting"
	default:
		return fmt.Sprintf("Unknown(%d)", int(s))
	}
}

// HandlerFunc is the callback signature for packet handlers. The session
// pointer is passed as an opaque interface to avoid an import cycle between
// this package and the session type.
type HandlerFunc func(sess any, r *wire.Reader)

type handlerEntry struct {
	fn            HandlerFunc
	allowedStates map[SessionState]bool
}

// Registry maps opcodes to handlers with state-based access control.
type Registry struct {
	handlers map[uint16]*handlerEntry
	log      *zap.Logger
}

func NewRegistry(log *zap.Logger) *Registry {
	return &Registry{
		handlers: make(map[uint16]*handlerEntry),
		log:      log,
	}
}

// Register maps an opcode to a handler, restricted to the given session
// states.
func (reg *Registry) Register(opcode uint16, states []SessionState, fn HandlerFunc) {
	allowed := make(map[SessionState]bool, len(states))
	for _, s := range states {
		allowed[s] = true
	}
	reg.handlers[opcode] = &handlerEntry{
		fn:            fn,
		allowedStates: allowed,
	}
}

// Dispatch reads the opcode header from data, validates the session state,
// and calls the matching handler with a Reader positioned just past it.
func (reg *Registry) Dispatch(sess any, state SessionState, data []byte) error {
	if len(data) < 2 {
		return fmt.Errorf("packet: frame too short for an opcode header")
	}
	r := wire.NewReader(data)
	opcode, err := r.U16()
	if err != nil {
		return fmt.Errorf("packet: read opcode: %w", err)
	}

	reg.log.Debug("received packet",
		zap.Uint16("opcode", opcode),
		zap.Int("size", len(data)),
		zap.String("state", state.String()),
	)

	entry, ok := reg.handlers[opcode]
	if !ok {
		reg.log.Debug("unknown opcode", zap.Uint16("opcode", opcode), zap.String("state", state.String()))
		return nil // silently ignore unknown opcodes
	}

	if !entry.allowedStates[state] {
		reg.log.Warn("opcode not allowed in this state",
			zap.Uint16("opcode", opcode),
			zap.String("state", state.String()),
		)
		return fmt.Errorf("opcode %#04x not allowed in state %s", opcode, state)
	}

	return reg.safeCall(entry.fn, sess, r, opcode)
}

// safeCall executes a handler with panic recovery so a single malformed or
// adversarial packet can't crash the whole server.
func (reg *Registry) safeCall(fn HandlerFunc, sess any, r *wire.Reader, opcode uint16) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			reg.log.Error("handler panic recovered",
				zap.Uint16("opcode", opcode),
				zap.Any("panic", rec),
			)
			err = fmt.Errorf("handler panic for opcode %#04x: %v", opcode, rec)
		}
	}()
	fn(sess, r)
	return nil
}
