package session

import (
	dispatch "github.com/mapleforge/channeld/internal/net/packet"
)

// RegisterHandlers wires every inbound opcode this core understands into
// reg, each gated to the session states it is valid in (§5's state
// machine: handshake -> authenticated -> in-world).
func RegisterHandlers(reg *dispatch.Registry) {
	reg.Register(InLoginRequest, []dispatch.SessionState{dispatch.StateHandshake}, handleLoginRequest)
	reg.Register(InSelectCharacter, []dispatch.SessionState{dispatch.StateAuthenticated}, handleSelectCharacter)

	inWorld := []dispatch.SessionState{dispatch.StateInWorld}
	reg.Register(InMovePlayer, inWorld, handleMovePlayer)
	reg.Register(InChat, inWorld, handleChat)
	reg.Register(InNPCTalk, inWorld, handleNPCTalk)
	reg.Register(InDialogueAnswer, inWorld, handleDialogueAnswer)
	reg.Register(InPortalEnter, inWorld, handlePortalEnter)
	reg.Register(InReactorHit, inWorld, handleReactorHit)

	reg.Register(InQuit, []dispatch.SessionState{
		dispatch.StateHandshake, dispatch.StateAuthenticated, dispatch.StateInWorld,
	}, handleQuit)
}
