package inspect

import "github.com/0xAozora/cs2-inspect-link/types"

// Economy is the read-only item catalog the codec resolves ids and decoded
// blocks against. It must not change while a call is in progress.
type Economy interface {
	// Get looks up an item by its catalog id.
	Get(id uint32) (*types.CatalogItem, bool)
	// Find looks up the item with the given definition index, paint or
	// sticker index and tint. A nil index or tint only matches items
	// without one.
	Find(def uint32, index, tint *uint32) (*types.CatalogItem, bool)
	// FindByIndex looks up a music kit, keychain, sticker or patch by its
	// index.
	FindByIndex(t types.ItemType, index uint32) (*types.CatalogItem, bool)
	// TypeOf returns the item type of a definition index.
	TypeOf(def uint32) (types.ItemType, bool)
}
