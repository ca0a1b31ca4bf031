package inspect

import (
	"fmt"
	"math"

	"github.com/0xAozora/cs2-inspect-link/protocol"
	"github.com/0xAozora/cs2-inspect-link/types"
)

func slotOf(s *protocol.Sticker) (uint8, error) {
	slot := s.GetSlot()
	if slot > math.MaxUint8 {
		return 0, fmt.Errorf("%w: slot %d out of range", ErrMalformedFormat, slot)
	}
	return uint8(slot), nil
}

// attachment resolves the index of a decoded sticker, patch or keychain back
// to its catalog entry.
func (c *Codec) attachment(t types.ItemType, s *protocol.Sticker) (*types.CatalogItem, error) {
	if s.StickerId == nil {
		return nil, fmt.Errorf("%w: %s without id", ErrUnknownItem, t)
	}
	entry, ok := c.economy.FindByIndex(t, *s.StickerId)
	if !ok {
		return nil, fmt.Errorf("%w: %s index %d", ErrUnknownItem, t, *s.StickerId)
	}
	return entry, nil
}

// Resolve maps a decoded preview block back to an owned item. The selector
// is chosen in a fixed order: musicindex, a single keychain on a keychain
// definition, a single sticker on a graffiti, patch or sticker definition,
// and finally defindex with paintindex.
//
// Seeds and wears at their catalog minimum are left unset, the block cannot
// tell them apart from an item that never had one.
func (c *Codec) Resolve(block *protocol.PreviewDataBlock) (*types.Item, error) {

	def := block.GetDefindex()

	if block.Musicindex != nil {
		entry, ok := c.economy.FindByIndex(types.TypeMusicKit, *block.Musicindex)
		if !ok {
			return nil, fmt.Errorf("%w: music kit index %d", ErrUnknownItem, *block.Musicindex)
		}
		c.logBranch(def, KindMusicKit, entry)
		return &types.Item{
			ID:       entry.ID,
			StatTrak: clone(block.Killeatervalue),
		}, nil
	}

	defType, known := c.economy.TypeOf(def)

	if len(block.Keychains) == 1 && known && defType == types.TypeKeychain {
		entry, err := c.attachment(types.TypeKeychain, block.Keychains[0])
		if err != nil {
			return nil, err
		}
		c.logBranch(def, KindKeychain, entry)
		return &types.Item{ID: entry.ID}, nil
	}

	if len(block.Stickers) == 1 && known && isStickerBearing(defType) {
		s := block.Stickers[0]
		entry, ok := c.economy.Find(def, s.StickerId, s.TintId)
		if !ok {
			return nil, fmt.Errorf("%w: defindex %d, index %d", ErrUnknownItem, def, s.GetStickerId())
		}
		c.logBranch(def, KindStickerBearing, entry)
		return &types.Item{ID: entry.ID}, nil
	}

	entry, ok := c.economy.Find(def, block.Paintindex, nil)
	if !ok {
		return nil, fmt.Errorf("%w: defindex %d, paintindex %d", ErrUnknownItem, def, block.GetPaintindex())
	}
	c.logBranch(def, Classify(entry), entry)

	item := &types.Item{
		ID:       entry.ID,
		NameTag:  clone(block.Customname),
		StatTrak: clone(block.Killeatervalue),
	}

	if seed := block.Paintseed; seed != nil && *seed != types.MinSeed {
		item.Seed = clone(seed)
	}
	if block.Paintwear != nil {
		if wear := BitsToFloat(*block.Paintwear); wear != entry.MinimumWear() {
			item.Wear = &wear
		}
	}

	if len(block.Stickers) != 0 {
		if entry.IsAgent() {
			item.Patches = make(map[uint8]uint32, len(block.Stickers))
		} else {
			item.Stickers = make(map[uint8]types.Sticker, len(block.Stickers))
		}
	}
	for _, s := range block.Stickers {
		slot, err := slotOf(s)
		if err != nil {
			return nil, err
		}

		if entry.IsAgent() {
			patch, err := c.attachment(types.TypePatch, s)
			if err != nil {
				return nil, err
			}
			item.Patches[slot] = patch.ID
			continue
		}

		sticker, err := c.attachment(types.TypeSticker, s)
		if err != nil {
			return nil, err
		}
		applied := types.Sticker{
			ID: sticker.ID,
			X:  clone(s.OffsetX),
			Y:  clone(s.OffsetY),
			R:  clone(s.Rotation),
		}
		if s.Wear != nil && *s.Wear != types.MinStickerWear {
			applied.Wear = clone(s.Wear)
		}
		item.Stickers[slot] = applied
	}

	if len(block.Keychains) != 0 {
		item.Keychains = make(map[uint8]types.Keychain, len(block.Keychains))
	}
	for _, k := range block.Keychains {
		slot, err := slotOf(k)
		if err != nil {
			return nil, err
		}
		keychain, err := c.attachment(types.TypeKeychain, k)
		if err != nil {
			return nil, err
		}
		item.Keychains[slot] = types.Keychain{
			ID:      keychain.ID,
			Pattern: clone(k.Pattern),
			X:       clone(k.OffsetX),
			Y:       clone(k.OffsetY),
		}
	}

	return item, nil
}

func (c *Codec) logBranch(def uint32, kind Kind, entry *types.CatalogItem) {
	c.log.Debug().
		Uint32("defindex", def).
		Str("branch", kind.String()).
		Uint32("id", entry.ID).
		Msg("Resolved preview block")
}
