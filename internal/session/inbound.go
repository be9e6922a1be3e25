package session

// Inbound opcodes: the client-to-server half of the wire protocol. The
// packet catalog (internal/packet) only encodes the server-to-client
// direction (§4.3); this core's own inbound surface is small enough to
// keep alongside the handlers that decode it rather than promoting it to
// its own catalog package.
const (
	InLoginRequest     uint16 = 0x0001
	InSelectCharacter  uint16 = 0x0002
	InMovePlayer       uint16 = 0x0003
	InChat             uint16 = 0x0004
	InNPCTalk          uint16 = 0x0005
	InDialogueAnswer   uint16 = 0x0006
	InPortalEnter      uint16 = 0x0007
	InReactorHit       uint16 = 0x0008
	InQuit             uint16 = 0x0009
)
