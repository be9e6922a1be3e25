package packet

import (
	"testing"

	"github.com/mapleforge/channeld/internal/model"
	"github.com/mapleforge/channeld/internal/wire"
	"github.com/stretchr/testify/require"
)

func TestInventoryModifyMoveNegativeSlotWritesDirectionByte(t *testing.T) {
	ops := []InventoryOp{
		{Op: InvOpMove, Kind: KindEquip, FromSlot: -1, ToSlot: 3},
	}
	w := wire.NewWriter(InventoryModifyMaxLen(1))
	InventoryModify(w, 1, ops)
	b := w.Bytes()
	// opcode(2)+count(1)+op(1)+kind(1)+from(2)+to(2) = 9, then direction byte.
	require.Equal(t, uint8(1), b[9])
}

func TestInventoryModifyMoveWithinTabOmitsDirectionByte(t *testing.T) {
	ops := []InventoryOp{
		{Op: InvOpMove, Kind: KindEtc, FromSlot: 2, ToSlot: 3},
	}
	w := wire.NewWriter(InventoryModifyMaxLen(1))
	n := InventoryModify(w, 1, ops)
	require.Equal(t, 2+1+1+1+2+2+4, n)
}

func TestInventoryModifyRemoveNegativeSlotWritesDirectionByte(t *testing.T) {
	ops := []InventoryOp{
		{Op: InvOpRemove, Kind: KindEquip, FromSlot: -5},
	}
	w := wire.NewWriter(InventoryModifyMaxLen(1))
	n := InventoryModify(w, 1, ops)
	require.Equal(t, 2+1+1+1+2+1+4, n)
}

func TestInventoryModifyAddReservesEquipmentSubRecord(t *testing.T) {
	ops := []InventoryOp{
		{Op: InvOpAdd, Kind: KindEquip, ToSlot: 1, Equipment: &model.Equipment{ItemID: 1302000, Owner: ""}},
	}
	w := wire.NewWriter(InventoryModifyMaxLen(1))
	n := InventoryModify(w, 1, ops)
	require.Greater(t, n, 2+1+1+1+1+EquipmentSubRecordMaxLen/2)
}
