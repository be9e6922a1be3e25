package codec

import (
	"testing"

	"github.com/mapleforge/channeld/internal/model"
	"github.com/mapleforge/channeld/internal/wire"
	"github.com/stretchr/testify/require"
)

func newTestPlayer(name string) *model.Player {
	p := model.NewPlayer()
	p.CharacterID = 123
	p.Name = name
	p.Appearance.Gender = 0
	p.Appearance.Skin = 2
	p.Appearance.Face = 20000
	p.Appearance.Hair = 30000
	p.Appearance.GachaExp = 0
	p.Appearance.SpawnPoint = 0
	p.Job = model.JobSwordsman
	p.Level = 30
	p.Str, p.Dex, p.Int, p.Luk = 20, 18, 4, 4
	p.HP, p.MaxHP = 200, 200
	p.MP, p.MaxMP = 50, 50
	p.AP, p.SP = 0, 1
	p.Exp = 12345
	p.Fame = 0
	p.MapID = 100000000
	return p
}

func TestStatsEncodeDecodeIsIdentity(t *testing.T) {
	p := newTestPlayer("Hero")

	w := wire.NewWriter(StatsMaxLen)
	Stats(w, p)
	require.LessOrEqual(t, w.Len(), w.Cap())

	r := wire.NewReader(w.Bytes())
	d, err := DecodeStats(r)
	require.NoError(t, err)

	require.Equal(t, p.CharacterID, d.CharacterID)
	require.Equal(t, p.Name, d.Name)
	require.Equal(t, p.Appearance.Gender, d.Gender)
	require.Equal(t, p.Appearance.Skin, d.Skin)
	require.Equal(t, p.Appearance.Face, d.Face)
	require.Equal(t, p.Appearance.Hair, d.Hair)
	require.Equal(t, p.Level, d.Level)
	require.Equal(t, p.Job, d.Job)
	require.Equal(t, p.Str, d.Str)
	require.Equal(t, p.Dex, d.Dex)
	require.Equal(t, p.Int, d.Int)
	require.Equal(t, p.Luk, d.Luk)
	require.Equal(t, p.HP, d.HP)
	require.Equal(t, p.MaxHP, d.MaxHP)
	require.Equal(t, p.MP, d.MP)
	require.Equal(t, p.MaxMP, d.MaxMP)
	require.Equal(t, p.AP, d.AP)
	require.Equal(t, p.SP, d.SP)
	require.Equal(t, p.Exp, d.Exp)
	require.Equal(t, p.Fame, d.Fame)
	require.Equal(t, p.Appearance.GachaExp, d.GachaExp)
	require.Equal(t, p.MapID, d.MapID)
	require.Equal(t, p.Appearance.SpawnPoint, d.SpawnPoint)
}

func TestStatsNameOfMaxLengthOccupiesFullFieldWithSingleTrailingNUL(t *testing.T) {
	p := newTestPlayer("TwelveCharNm") // exactly 12 bytes
	require.Len(t, p.Name, 12)

	w := wire.NewWriter(StatsMaxLen)
	Stats(w, p)

	// id(4) skipped; name field starts at offset 4, width 13.
	nameField := w.Bytes()[4 : 4+13]
	require.Equal(t, []byte(p.Name), nameField[:12])
	require.Equal(t, byte(0), nameField[12])
}

func TestStatsEmptyNameIsPrecondition(t *testing.T) {
	p := newTestPlayer("")
	w := wire.NewWriter(StatsMaxLen)
	require.Panics(t, func() {
		Stats(w, p)
	})
}

func TestAppearanceTerminatorsAndCosmeticWeapon(t *testing.T) {
	a := &model.Appearance{Gender: 0, Skin: 0, Face: 1, Hair: 1}
	capSlot := &model.Equipment{ItemID: 1002140}
	a.Equipped[0] = capSlot // compact slot 0 = cap, expand -> 1
	cosmeticWeapon := &model.Equipment{ItemID: 1702000}
	a.Equipped[model.SlotWeaponCosmetic] = cosmeticWeapon

	w := wire.NewWriter(AppearanceMaxLen)
	Appearance(w, a, false)

	b := w.Bytes()
	require.Equal(t, uint8(0), b[0]) // gender
	require.Equal(t, uint8(0), b[1]) // skin
	require.Equal(t, uint8(1), b[6]) // mega=false -> mode byte 1

	// cap is the first equipped entry: slot byte then u32 id.
	require.Equal(t, uint8(1), b[11])

	// cosmetic weapon appears twice: once in-loop (compact index 23, with
	// its slot-byte prefix) and once more as a bare trailing u32 after
	// both terminators.
	trailingWeaponID := b[len(b)-12-4 : len(b)-12]
	require.Equal(t, uint32(1702000), uint32(trailingWeaponID[0])|uint32(trailingWeaponID[1])<<8|uint32(trailingWeaponID[2])<<16|uint32(trailingWeaponID[3])<<24)
}

func TestAppearanceWithNoEquipmentIsJustTerminatorsAndZeros(t *testing.T) {
	a := &model.Appearance{Gender: 1, Skin: 3, Face: 20000, Hair: 30000}

	w := wire.NewWriter(AppearanceMaxLen)
	Appearance(w, a, true)
	b := w.Bytes()

	// gender, skin, face(4), mega-mode(1)=0, hair(4) = 11 bytes header
	require.Equal(t, uint8(1), b[0])
	require.Equal(t, uint8(3), b[1])
	require.Equal(t, uint8(0), b[6]) // mega=true -> mode byte 0

	// No equipped items: two terminators back-to-back at byte 11 and 12.
	require.Equal(t, byte(0xFF), b[11])
	require.Equal(t, byte(0xFF), b[12])

	// cosmetic weapon empty -> u32 zero, then three u32 pet zeros.
	require.Equal(t, 13+4+12, len(b))
}
