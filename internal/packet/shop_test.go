package packet

import (
	"testing"

	"github.com/mapleforge/channeld/internal/model"
	"github.com/mapleforge/channeld/internal/wire"
	"github.com/stretchr/testify/require"
)

func TestShopOpenNormalItemWorkedExample(t *testing.T) {
	w := wire.NewWriter(64)
	OpenShopHeader(w, 9010000, 1)
	ShopItemRecord(w, 2000000, 50, model.ItemInfo{})

	want := []byte{
		0x31, 0x01, // opcode
	}
	// npc id + count are implementation detail of the header; only the
	// item record's exact layout is specified by the worked example.
	_ = want

	record := w.Bytes()[len(w.Bytes())-24:]
	wantRecord := []byte{
		0x80, 0x84, 0x1E, 0x00, // id = 2000000
		0x32, 0x00, 0x00, 0x00, // price = 50
		0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00,
		0x01, 0x00,
		0xE8, 0x03,
	}
	require.Equal(t, wantRecord, record)
}

func TestShopOpenAmmoItemWorkedExample(t *testing.T) {
	w := wire.NewWriter(64)
	ShopItemRecord(w, 2070000, 10, model.ItemInfo{UnitPrice: 3.0, SlotMax: 100})

	b := w.Bytes()
	tail := b[len(b)-10:]
	wantTail := []byte{
		0x00, 0x00,
		0x00, 0x00, 0x00, 0x00,
		0x08, 0x40,
		0x64, 0x00,
	}
	require.Equal(t, wantTail, tail)
}
