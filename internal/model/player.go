package model

// Appearance is the visible-shape portion of a character: everything the
// appearance block (§4.2) and the map-entry "add player" packet need.
// Pure data, zero methods — all mutations happen in system/bridge
// functions.
type Appearance struct {
	Gender uint8
	Skin   uint8
	Face   uint32
	Hair   uint32

	// Equipped carries one Equipment per occupied compact slot; a nil
	// entry or an Equipment with IsEmpty set means unoccupied. Always
	// length EquipSlotCount.
	Equipped [EquipSlotCount]*Equipment

	GachaExp   int32
	SpawnPoint uint8
}

// Player is the mutable view of a connected character in a map. Pure data,
// zero methods — all mutations happen in system functions, mirroring the
// reference server's component convention.
type Player struct {
	AccountID   int32
	CharacterID int32
	Name        string // <= 12 bytes

	Appearance Appearance
	Job        Job
	Level      uint8

	MapID    int32
	X, Y     int32
	Foothold int16
	Stance   uint8
	Chair    int32

	Str, Dex, Int, Luk int16
	HP, MaxHP          int16
	MP, MaxMP          int16
	AP, SP             int16
	Exp                int32
	Fame               int16

	Meso int32

	Equip     *Inventory // equipment inventory
	Use       *Inventory
	SetupItem *Inventory
	Etc       *Inventory
	Cash      *Inventory

	Quests  *QuestState
	Skills  *SkillMap
	Book    *MonsterBook
}

// NewPlayer returns a Player with empty inventories and quest/skill/book
// state, ready for a fresh character or a loaded snapshot to populate.
func NewPlayer() *Player {
	return &Player{
		Equip:     NewInventory(24),
		Use:       NewInventory(96),
		SetupItem: NewInventory(96),
		Etc:       NewInventory(96),
		Cash:      NewInventory(96),
		Quests:    NewQuestState(),
		Skills:    NewSkillMap(),
		Book:      NewMonsterBook(),
	}
}
