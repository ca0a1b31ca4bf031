package inspect

import "github.com/0xAozora/cs2-inspect-link/types"

// Kind selects which preview block fields identify an item.
type Kind uint8

const (
	// KindPaint items are identified by paintindex and carry stickers.
	KindPaint Kind = iota
	// KindStickerBearing items (graffiti, patches, stickers) are identified
	// by a single sticker entry.
	KindStickerBearing
	// KindMusicKit items are identified by musicindex.
	KindMusicKit
	// KindKeychain items are identified by a single keychain entry.
	KindKeychain
	// KindAgent items are identified by paintindex and carry patches.
	KindAgent
)

func (k Kind) String() string {
	switch k {
	case KindPaint:
		return "paint"
	case KindStickerBearing:
		return "sticker"
	case KindMusicKit:
		return "musickit"
	case KindKeychain:
		return "keychain"
	case KindAgent:
		return "agent"
	}
	return "unknown"
}

func Classify(item *types.CatalogItem) Kind {
	switch item.Type {
	case types.TypeGraffiti, types.TypePatch, types.TypeSticker:
		return KindStickerBearing
	case types.TypeMusicKit:
		return KindMusicKit
	case types.TypeKeychain:
		return KindKeychain
	case types.TypeAgent:
		return KindAgent
	}
	return KindPaint
}

func isStickerBearing(t types.ItemType) bool {
	return t == types.TypeGraffiti || t == types.TypePatch || t == types.TypeSticker
}
