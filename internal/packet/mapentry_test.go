package packet

import (
	"testing"
	"time"

	"github.com/mapleforge/channeld/internal/model"
	"github.com/mapleforge/channeld/internal/wire"
	"github.com/stretchr/testify/require"
)

func TestMapEntryEmptyPlayerStaysWithinDeclaredMax(t *testing.T) {
	p := model.NewPlayer()
	p.CharacterID = 1
	p.Name = "Bob"
	p.MapID = 100000000

	w := wire.NewWriter(MapEntryMaxLen)
	n := MapEntry(w, p, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	require.Greater(t, n, 0)
	require.LessOrEqual(t, n, MapEntryMaxLen)
}

func TestMapEntryWithEquippedItemsAndQuestsDoesNotPanic(t *testing.T) {
	p := model.NewPlayer()
	p.CharacterID = 2
	p.Name = "Alice"
	p.MapID = 100000000

	capSlot, ok := model.Compact(1)
	require.True(t, ok)
	p.Appearance.Equipped[capSlot] = &model.Equipment{ItemID: 1302000, Owner: "Alice"}

	p.Equip.Set(1, model.Cell{Equipment: &model.Equipment{ItemID: 1302001, Owner: "Alice"}})
	p.Use.Set(1, model.Cell{Item: &model.InventoryItem{ItemID: 2000000, Quantity: 5}})

	p.Quests.Start(2702, []int32{100100})
	p.Quests.InfoSlots[2702] = "1"
	p.Book.RecordKill(100100)

	w := wire.NewWriter(MapEntryMaxLen)
	n := MapEntry(w, p, time.Now())
	require.Greater(t, n, 0)
}
