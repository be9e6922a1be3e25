package packet

import (
	"github.com/mapleforge/channeld/internal/model"
	"github.com/mapleforge/channeld/internal/wire"
)

// isAmmoOrRecipe reports whether itemID falls in one of the two item-id
// ranges (207xxxx, 233xxxx) whose shop record uses the packed-unit-price tail instead of
// the (quantity, unit-count) tail.
func isAmmoOrRecipe(itemID int32) bool {
	return (itemID >= 2070000 && itemID < 2080000) || (itemID >= 2330000 && itemID < 2340000)
}

// ShopItemRecordMaxLen bounds one shop-open item record.
const ShopItemRecordMaxLen = 4 + 4 + 4 + 4 + 4 + 2 + 4 + 2 + 2

// ShopItemRecord writes one shop item: id, price, three u32 zeros, then
// either the normal-stackable tail (u16 1, u16 1000) or, for ammo/recipe
// items, the packed-unit-price tail (u16 0, u32 0, u16 packedUnitPrice,
// u16 slotMax). The packed price is the high 16 bits of the unit price's
// IEEE-754 bit pattern — bit-exact with the original protocol.
func ShopItemRecord(w *wire.Writer, itemID int32, price int32, info model.ItemInfo) {
	w.I32(itemID)
	w.I32(price)
	w.U32(0)
	w.U32(0)
	w.U32(0)

	if isAmmoOrRecipe(itemID) {
		w.U16(0)
		w.U32(0)
		w.U16(info.PackedUnitPrice())
		w.U16(info.SlotMax)
	} else {
		w.U16(1)
		w.U16(1000)
	}
}

// OpenShopHeaderMaxLen bounds OpenShopHeader.
const OpenShopHeaderMaxLen = 2 + 4 + 2

// OpenShopHeader writes the shop-open packet's header: opcode, npc id, and
// item count. Callers follow with one ShopItemRecord per item.
func OpenShopHeader(w *wire.Writer, npcID int32, itemCount uint16) int {
	w.Opcode(OpOpenShop)
	w.I32(npcID)
	w.U16(itemCount)
	return w.Len()
}

// ShopActionResponseMaxLen bounds ShopActionResponse.
const ShopActionResponseMaxLen = 2 + 1 + 1

// Shop action outcomes.
const (
	ShopActionOK       = 0
	ShopActionNoRoom   = 1
	ShopActionNoMoney  = 2
	ShopActionNotFound = 3
)

// ShopActionResponse reports the outcome of a buy/sell request.
func ShopActionResponse(w *wire.Writer, kind uint8, outcome uint8) int {
	w.Opcode(OpShopActionResponse)
	w.U8(kind)
	w.U8(outcome)
	return w.Len()
}
