package types

import (
	"maps"
	"slices"
)

// Item is an owned item: a catalog entry plus its per-instance customization.
// Attachment maps are keyed by slot.
type Item struct {
	ID        uint32             `msg:"i" json:"i" yaml:"i" cbor:"i"`
	NameTag   *string            `msg:"n,omitempty" json:"n,omitempty" yaml:"n,omitempty" cbor:"n,omitempty"`
	Seed      *uint32            `msg:"e,omitempty" json:"e,omitempty" yaml:"e,omitempty" cbor:"e,omitempty"`
	Wear      *float32           `msg:"f,omitempty" json:"f,omitempty" yaml:"f,omitempty" cbor:"f,omitempty"`
	StatTrak  *uint32            `msg:"c,omitempty" json:"c,omitempty" yaml:"c,omitempty" cbor:"c,omitempty"`
	Stickers  map[uint8]Sticker  `msg:"t,omitempty" json:"t,omitempty" yaml:"t,omitempty" cbor:"t,omitempty"`
	Patches   map[uint8]uint32   `msg:"p,omitempty" json:"p,omitempty" yaml:"p,omitempty" cbor:"p,omitempty"`
	Keychains map[uint8]Keychain `msg:"k,omitempty" json:"k,omitempty" yaml:"k,omitempty" cbor:"k,omitempty"`
}

// Normalize returns a copy of the item with every value that cannot survive
// an inspect link cleared: seeds and wears at their catalog minimum, seeds
// and wears on items that carry none, and empty attachment maps.
func (i Item) Normalize(c *CatalogItem) Item {
	n := i

	if !c.HasSeed() || (n.Seed != nil && *n.Seed == MinSeed) {
		n.Seed = nil
	}
	if !c.HasWear() || (n.Wear != nil && *n.Wear == c.MinimumWear()) {
		n.Wear = nil
	}

	if len(n.Stickers) == 0 {
		n.Stickers = nil
	} else {
		stickers := make(map[uint8]Sticker, len(n.Stickers))
		for slot, sticker := range n.Stickers {
			if sticker.Wear != nil && *sticker.Wear == MinStickerWear {
				sticker.Wear = nil
			}
			stickers[slot] = sticker
		}
		n.Stickers = stickers
	}
	if len(n.Patches) == 0 {
		n.Patches = nil
	}
	if len(n.Keychains) == 0 {
		n.Keychains = nil
	}

	return n
}

func sortedSlots[V any](m map[uint8]V) []uint8 {
	return slices.Sorted(maps.Keys(m))
}
