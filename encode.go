package inspect

import (
	"fmt"

	"github.com/0xAozora/cs2-inspect-link/protocol"
	"github.com/0xAozora/cs2-inspect-link/types"
	"google.golang.org/protobuf/proto"
)

// selector is the single slot 0 entry that identifies graffiti, patches,
// stickers, music kits and keychains.
func selector(item *types.CatalogItem) *protocol.Sticker {
	return &protocol.Sticker{
		Slot:      proto.Uint32(0),
		StickerId: clone(item.Index),
		TintId:    clone(item.Tint),
	}
}

// CatalogBlock builds the preview block of an uncustomized catalog item.
// Seed and wear are set to their minimums when the item has them.
func CatalogBlock(item *types.CatalogItem) *protocol.PreviewDataBlock {
	block := &protocol.PreviewDataBlock{
		Defindex: proto.Uint32(item.Def),
		Rarity:   proto.Uint32(item.Rarity.Tier()),
	}

	switch Classify(item) {
	case KindPaint, KindAgent:
		block.Paintindex = clone(item.Index)
	case KindStickerBearing:
		block.Stickers = []*protocol.Sticker{selector(item)}
	case KindMusicKit:
		// The game also sends the tint entry for music kits.
		block.Musicindex = clone(item.Index)
		block.Stickers = []*protocol.Sticker{selector(item)}
	case KindKeychain:
		block.Keychains = []*protocol.Sticker{{
			Slot:      proto.Uint32(0),
			StickerId: clone(item.Index),
		}}
	}

	if item.HasSeed() {
		block.Paintseed = proto.Uint32(types.MinSeed)
	}
	if item.HasWear() {
		block.Paintwear = proto.Uint32(FloatToBits(item.MinimumWear()))
	}

	return block
}

// attachmentIndex resolves the catalog id of a sticker, patch or keychain to
// the index written to the preview block.
func (c *Codec) attachmentIndex(id uint32, t types.ItemType) (uint32, error) {
	entry, ok := c.economy.Get(id)
	if !ok {
		return 0, fmt.Errorf("%w: %s id %d", ErrUnknownItem, t, id)
	}
	if entry.Type != t {
		return 0, fmt.Errorf("%w: id %d is a %s, not a %s", ErrUnknownItem, id, entry.Type, t)
	}
	if entry.Index == nil {
		return 0, fmt.Errorf("%w: %s id %d has no index", ErrUnknownItem, t, id)
	}
	return *entry.Index, nil
}

// canCarry rejects attachments the decoder could not read back: stickers
// belong on paintable items, patches on agents, keychains on either. An
// attachment on a selector-identified item would replace its selector.
func canCarry(entry *types.CatalogItem, item *types.Item) error {
	kind := Classify(entry)
	switch {
	case len(item.Stickers) > 0 && len(item.Patches) > 0:
		return fmt.Errorf("%w: id %d has both stickers and patches", ErrInvalidAttachment, item.ID)
	case len(item.Stickers) > 0 && kind != KindPaint:
		return fmt.Errorf("%w: %s id %d cannot carry stickers", ErrInvalidAttachment, entry.Type, item.ID)
	case len(item.Patches) > 0 && kind != KindAgent:
		return fmt.Errorf("%w: %s id %d cannot carry patches", ErrInvalidAttachment, entry.Type, item.ID)
	case len(item.Keychains) > 0 && kind != KindPaint && kind != KindAgent:
		return fmt.Errorf("%w: %s id %d cannot carry keychains", ErrInvalidAttachment, entry.Type, item.ID)
	}
	return nil
}

// Block builds the preview block of an owned item. It fails with
// ErrUnknownItem if the item or one of its attachments is not in the
// economy, and with ErrInvalidAttachment if the item cannot carry its
// attachments.
func (c *Codec) Block(item *types.Item) (*protocol.PreviewDataBlock, error) {
	entry, ok := c.economy.Get(item.ID)
	if !ok {
		return nil, fmt.Errorf("%w: id %d", ErrUnknownItem, item.ID)
	}

	block := CatalogBlock(entry)
	block.Customname = clone(item.NameTag)

	if item.StatTrak != nil {
		block.Killeaterscoretype = proto.Uint32(0)
		block.Killeatervalue = proto.Uint32(*item.StatTrak)
	}

	if entry.HasSeed() {
		seed := types.MinSeed
		if item.Seed != nil {
			seed = *item.Seed
		}
		block.Paintseed = proto.Uint32(seed)
	}
	if entry.HasWear() {
		wear := entry.MinimumWear()
		if item.Wear != nil {
			wear = *item.Wear
		}
		block.Paintwear = proto.Uint32(FloatToBits(wear))
	}

	if err := canCarry(entry, item); err != nil {
		return nil, err
	}

	var err error
	switch {
	case len(item.Stickers) > 0:
		block.Stickers = make([]*protocol.Sticker, 0, len(item.Stickers))
		err = bySlot(item.Stickers, func(slot uint8, s types.Sticker) error {
			index, err := c.attachmentIndex(s.ID, types.TypeSticker)
			if err != nil {
				return err
			}
			wear := types.MinStickerWear
			if s.Wear != nil {
				wear = *s.Wear
			}
			block.Stickers = append(block.Stickers, &protocol.Sticker{
				Slot:      proto.Uint32(uint32(slot)),
				StickerId: proto.Uint32(index),
				Wear:      proto.Float32(wear),
				Rotation:  clone(s.R),
				OffsetX:   clone(s.X),
				OffsetY:   clone(s.Y),
			})
			return nil
		})
	case len(item.Patches) > 0:
		block.Stickers = make([]*protocol.Sticker, 0, len(item.Patches))
		err = bySlot(item.Patches, func(slot uint8, id uint32) error {
			index, err := c.attachmentIndex(id, types.TypePatch)
			if err != nil {
				return err
			}
			block.Stickers = append(block.Stickers, &protocol.Sticker{
				Slot:      proto.Uint32(uint32(slot)),
				StickerId: proto.Uint32(index),
			})
			return nil
		})
	}
	if err != nil {
		return nil, err
	}

	if len(item.Keychains) > 0 {
		block.Keychains = make([]*protocol.Sticker, 0, len(item.Keychains))
		err = bySlot(item.Keychains, func(slot uint8, k types.Keychain) error {
			index, err := c.attachmentIndex(k.ID, types.TypeKeychain)
			if err != nil {
				return err
			}
			block.Keychains = append(block.Keychains, &protocol.Sticker{
				Slot:      proto.Uint32(uint32(slot)),
				StickerId: proto.Uint32(index),
				OffsetX:   clone(k.X),
				OffsetY:   clone(k.Y),
				Pattern:   clone(k.Pattern),
			})
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	return block, nil
}
