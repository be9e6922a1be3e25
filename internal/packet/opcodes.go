// Package packet is the packet catalog: one pure encoder function per
// protocol message. Every encoder writes into a pre-allocated wire.Writer
// sized to its declared maximum and either returns the produced length
// (variable-length packets) or nothing (fixed-length packets). Every
// packet begins with its 2-byte little-endian opcode.
package packet

// Opcodes, all u16 little-endian (§6).
const (
	OpLoginSuccess        = 0x0000
	OpServerStatus        = 0x0003
	OpPin                 = 0x0006
	OpLoginError          = 0x0009
	OpServerList          = 0x000A
	OpCharacterList       = 0x000B
	OpChannelIP           = 0x000C
	OpNameCheck           = 0x000D
	OpCreateCharacter     = 0x000E
	OpInventoryModify     = 0x001D
	OpStatChange          = 0x001F
	OpUpdateSkill         = 0x0024
	OpQuestInfoMultiplexer = 0x0027
	OpGender              = 0x003A
	OpPopup               = 0x0044
	OpAddCard             = 0x0053
	OpMapEntry            = 0x007D
	OpAddPlayer           = 0x00A0
	OpRemovePlayer        = 0x00A1
	OpChat                = 0x00A2
	OpMovePlayer          = 0x00B9
	OpCloseRangeAttack    = 0x00BA
	OpRangedAttack        = 0x00BB
	OpDamagePlayer        = 0x00C0
	OpEmote               = 0x00C1
	OpForeignEffect       = 0x00C6
	OpSelfEffect          = 0x00CE
	OpQuestFlow           = 0x00D3
	OpSpawnMob            = 0x00EC
	OpKillMob             = 0x00ED
	OpSpawnMobController  = 0x00EE
	OpMoveMob             = 0x00EF
	OpMoveMobResponse     = 0x00F0
	OpMobHP               = 0x00FA
	OpSpawnNPC            = 0x0101
	OpSpawnNPCController  = 0x0103
	OpNPCActionRelay      = 0x0104
	OpDropSpawn           = 0x010C
	OpDropRemovalPickup   = 0x010D
	OpChangeReactor       = 0x0115
	OpSpawnReactor        = 0x0117
	OpDestroyReactor      = 0x0118
	OpNPCDialogue         = 0x0130
	OpOpenShop            = 0x0131
	OpShopActionResponse  = 0x0132
	OpKeymap              = 0x014F
)
