// Package protocol holds the CS2 CEconItemPreviewDataBlock message, the
// attribute block carried by inspect links and returned by the game
// coordinator for preview requests.
//
// Only this one message shape is supported. Fields are encoded in field
// number order, unknown fields are skipped on decode.
package protocol

import (
	"errors"
	"fmt"
	"math"

	"google.golang.org/protobuf/encoding/protowire"
)

// Field numbers of CEconItemPreviewDataBlock.
const (
	fieldAccountID          protowire.Number = 1
	fieldItemID             protowire.Number = 2
	fieldDefindex           protowire.Number = 3
	fieldPaintindex         protowire.Number = 4
	fieldRarity             protowire.Number = 5
	fieldQuality            protowire.Number = 6
	fieldPaintwear          protowire.Number = 7
	fieldPaintseed          protowire.Number = 8
	fieldKilleaterscoretype protowire.Number = 9
	fieldKilleatervalue     protowire.Number = 10
	fieldCustomname         protowire.Number = 11
	fieldStickers           protowire.Number = 12
	fieldInventory          protowire.Number = 13
	fieldOrigin             protowire.Number = 14
	fieldQuestID            protowire.Number = 15
	fieldDropreason         protowire.Number = 16
	fieldMusicindex         protowire.Number = 17
	fieldEntindex           protowire.Number = 18
	fieldPetindex           protowire.Number = 19
	fieldKeychains          protowire.Number = 20
	fieldStyle              protowire.Number = 21
	fieldVariations         protowire.Number = 22
	fieldUpgradeLevel       protowire.Number = 23
)

// Field numbers of CEconItemPreviewDataBlock.Sticker.
const (
	fieldStickerSlot          protowire.Number = 1
	fieldStickerID            protowire.Number = 2
	fieldStickerWear          protowire.Number = 3
	fieldStickerScale         protowire.Number = 4
	fieldStickerRotation      protowire.Number = 5
	fieldStickerTintID        protowire.Number = 6
	fieldStickerOffsetX       protowire.Number = 7
	fieldStickerOffsetY       protowire.Number = 8
	fieldStickerOffsetZ       protowire.Number = 9
	fieldStickerPattern       protowire.Number = 10
	fieldStickerHighlightReel protowire.Number = 11
)

// ErrTruncated is returned when a field runs past the end of the buffer or
// its encoding is invalid.
var ErrTruncated = errors.New("truncated or invalid field encoding")

// PreviewDataBlock is CEconItemPreviewDataBlock. A nil pointer is an absent
// field.
type PreviewDataBlock struct {
	Accountid          *uint32    `json:"accountid,omitempty" yaml:"accountid,omitempty"`
	Itemid             *uint64    `json:"itemid,omitempty" yaml:"itemid,omitempty"`
	Defindex           *uint32    `json:"defindex,omitempty" yaml:"defindex,omitempty"`
	Paintindex         *uint32    `json:"paintindex,omitempty" yaml:"paintindex,omitempty"`
	Rarity             *uint32    `json:"rarity,omitempty" yaml:"rarity,omitempty"`
	Quality            *uint32    `json:"quality,omitempty" yaml:"quality,omitempty"`
	Paintwear          *uint32    `json:"paintwear,omitempty" yaml:"paintwear,omitempty"`
	Paintseed          *uint32    `json:"paintseed,omitempty" yaml:"paintseed,omitempty"`
	Killeaterscoretype *uint32    `json:"killeaterscoretype,omitempty" yaml:"killeaterscoretype,omitempty"`
	Killeatervalue     *uint32    `json:"killeatervalue,omitempty" yaml:"killeatervalue,omitempty"`
	Customname         *string    `json:"customname,omitempty" yaml:"customname,omitempty"`
	Stickers           []*Sticker `json:"stickers,omitempty" yaml:"stickers,omitempty"`
	Inventory          *uint32    `json:"inventory,omitempty" yaml:"inventory,omitempty"`
	Origin             *uint32    `json:"origin,omitempty" yaml:"origin,omitempty"`
	Questid            *uint32    `json:"questid,omitempty" yaml:"questid,omitempty"`
	Dropreason         *uint32    `json:"dropreason,omitempty" yaml:"dropreason,omitempty"`
	Musicindex         *uint32    `json:"musicindex,omitempty" yaml:"musicindex,omitempty"`
	Entindex           *int32     `json:"entindex,omitempty" yaml:"entindex,omitempty"`
	Petindex           *uint32    `json:"petindex,omitempty" yaml:"petindex,omitempty"`
	Keychains          []*Sticker `json:"keychains,omitempty" yaml:"keychains,omitempty"`
	Style              *uint32    `json:"style,omitempty" yaml:"style,omitempty"`
	Variations         []*Sticker `json:"variations,omitempty" yaml:"variations,omitempty"`
	UpgradeLevel       *uint32    `json:"upgrade_level,omitempty" yaml:"upgrade_level,omitempty"`
}

// Sticker is CEconItemPreviewDataBlock.Sticker, shared by stickers, patches,
// keychains and variations.
type Sticker struct {
	Slot          *uint32  `json:"slot,omitempty" yaml:"slot,omitempty"`
	StickerId     *uint32  `json:"sticker_id,omitempty" yaml:"sticker_id,omitempty"`
	Wear          *float32 `json:"wear,omitempty" yaml:"wear,omitempty"`
	Scale         *float32 `json:"scale,omitempty" yaml:"scale,omitempty"`
	Rotation      *float32 `json:"rotation,omitempty" yaml:"rotation,omitempty"`
	TintId        *uint32  `json:"tint_id,omitempty" yaml:"tint_id,omitempty"`
	OffsetX       *float32 `json:"offset_x,omitempty" yaml:"offset_x,omitempty"`
	OffsetY       *float32 `json:"offset_y,omitempty" yaml:"offset_y,omitempty"`
	OffsetZ       *float32 `json:"offset_z,omitempty" yaml:"offset_z,omitempty"`
	Pattern       *uint32  `json:"pattern,omitempty" yaml:"pattern,omitempty"`
	HighlightReel *uint32  `json:"highlight_reel,omitempty" yaml:"highlight_reel,omitempty"`
}

func (x *PreviewDataBlock) GetDefindex() uint32 {
	if x != nil && x.Defindex != nil {
		return *x.Defindex
	}
	return 0
}

func (x *PreviewDataBlock) GetPaintindex() uint32 {
	if x != nil && x.Paintindex != nil {
		return *x.Paintindex
	}
	return 0
}

func (x *PreviewDataBlock) GetRarity() uint32 {
	if x != nil && x.Rarity != nil {
		return *x.Rarity
	}
	return 0
}

func (x *PreviewDataBlock) GetPaintwear() uint32 {
	if x != nil && x.Paintwear != nil {
		return *x.Paintwear
	}
	return 0
}

func (x *PreviewDataBlock) GetPaintseed() uint32 {
	if x != nil && x.Paintseed != nil {
		return *x.Paintseed
	}
	return 0
}

func (x *PreviewDataBlock) GetCustomname() string {
	if x != nil && x.Customname != nil {
		return *x.Customname
	}
	return ""
}

func (x *PreviewDataBlock) GetMusicindex() uint32 {
	if x != nil && x.Musicindex != nil {
		return *x.Musicindex
	}
	return 0
}

func (x *Sticker) GetSlot() uint32 {
	if x != nil && x.Slot != nil {
		return *x.Slot
	}
	return 0
}

func (x *Sticker) GetStickerId() uint32 {
	if x != nil && x.StickerId != nil {
		return *x.StickerId
	}
	return 0
}

func appendUint32(b []byte, num protowire.Number, v *uint32) []byte {
	if v == nil {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, uint64(*v))
}

func appendUint64(b []byte, num protowire.Number, v *uint64) []byte {
	if v == nil {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, *v)
}

// int32 fields are sign extended to 64 bits on the wire.
func appendInt32(b []byte, num protowire.Number, v *int32) []byte {
	if v == nil {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, uint64(int64(*v)))
}

func appendFloat(b []byte, num protowire.Number, v *float32) []byte {
	if v == nil {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.Fixed32Type)
	return protowire.AppendFixed32(b, math.Float32bits(*v))
}

func appendString(b []byte, num protowire.Number, v *string) []byte {
	if v == nil {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendString(b, *v)
}

func appendStickers(b []byte, num protowire.Number, stickers []*Sticker) []byte {
	for _, s := range stickers {
		b = protowire.AppendTag(b, num, protowire.BytesType)
		b = protowire.AppendBytes(b, s.Marshal())
	}
	return b
}

// Marshal encodes the block.
func (x *PreviewDataBlock) Marshal() []byte {
	var b []byte
	b = appendUint32(b, fieldAccountID, x.Accountid)
	b = appendUint64(b, fieldItemID, x.Itemid)
	b = appendUint32(b, fieldDefindex, x.Defindex)
	b = appendUint32(b, fieldPaintindex, x.Paintindex)
	b = appendUint32(b, fieldRarity, x.Rarity)
	b = appendUint32(b, fieldQuality, x.Quality)
	b = appendUint32(b, fieldPaintwear, x.Paintwear)
	b = appendUint32(b, fieldPaintseed, x.Paintseed)
	b = appendUint32(b, fieldKilleaterscoretype, x.Killeaterscoretype)
	b = appendUint32(b, fieldKilleatervalue, x.Killeatervalue)
	b = appendString(b, fieldCustomname, x.Customname)
	b = appendStickers(b, fieldStickers, x.Stickers)
	b = appendUint32(b, fieldInventory, x.Inventory)
	b = appendUint32(b, fieldOrigin, x.Origin)
	b = appendUint32(b, fieldQuestID, x.Questid)
	b = appendUint32(b, fieldDropreason, x.Dropreason)
	b = appendUint32(b, fieldMusicindex, x.Musicindex)
	b = appendInt32(b, fieldEntindex, x.Entindex)
	b = appendUint32(b, fieldPetindex, x.Petindex)
	b = appendStickers(b, fieldKeychains, x.Keychains)
	b = appendUint32(b, fieldStyle, x.Style)
	b = appendStickers(b, fieldVariations, x.Variations)
	b = appendUint32(b, fieldUpgradeLevel, x.UpgradeLevel)
	return b
}

// Marshal encodes the sticker message without its enclosing tag.
func (x *Sticker) Marshal() []byte {
	var b []byte
	b = appendUint32(b, fieldStickerSlot, x.Slot)
	b = appendUint32(b, fieldStickerID, x.StickerId)
	b = appendFloat(b, fieldStickerWear, x.Wear)
	b = appendFloat(b, fieldStickerScale, x.Scale)
	b = appendFloat(b, fieldStickerRotation, x.Rotation)
	b = appendUint32(b, fieldStickerTintID, x.TintId)
	b = appendFloat(b, fieldStickerOffsetX, x.OffsetX)
	b = appendFloat(b, fieldStickerOffsetY, x.OffsetY)
	b = appendFloat(b, fieldStickerOffsetZ, x.OffsetZ)
	b = appendUint32(b, fieldStickerPattern, x.Pattern)
	b = appendUint32(b, fieldStickerHighlightReel, x.HighlightReel)
	return b
}

// walk walks the tag/value pairs of b, calling fn for each. fn returns
// the number of value bytes it consumed, or 0 to have the value skipped.
func walk(b []byte, fn func(num protowire.Number, typ protowire.Type, v []byte) (int, error)) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return fmt.Errorf("%w: %v", ErrTruncated, protowire.ParseError(n))
		}
		b = b[n:]

		m, err := fn(num, typ, b)
		if err != nil {
			return err
		}
		if m == 0 {
			m = protowire.ConsumeFieldValue(num, typ, b)
			if m < 0 {
				return fmt.Errorf("%w: field %d: %v", ErrTruncated, num, protowire.ParseError(m))
			}
		}
		b = b[m:]
	}
	return nil
}

func consumeUint32(num protowire.Number, typ protowire.Type, b []byte, dst **uint32) (int, error) {
	if typ != protowire.VarintType {
		return 0, fmt.Errorf("%w: field %d: wire type %d, expected varint", ErrTruncated, num, typ)
	}
	v, n := protowire.ConsumeVarint(b)
	if n < 0 {
		return 0, fmt.Errorf("%w: field %d: %v", ErrTruncated, num, protowire.ParseError(n))
	}
	u := uint32(v)
	*dst = &u
	return n, nil
}

func consumeUint64(num protowire.Number, typ protowire.Type, b []byte, dst **uint64) (int, error) {
	if typ != protowire.VarintType {
		return 0, fmt.Errorf("%w: field %d: wire type %d, expected varint", ErrTruncated, num, typ)
	}
	v, n := protowire.ConsumeVarint(b)
	if n < 0 {
		return 0, fmt.Errorf("%w: field %d: %v", ErrTruncated, num, protowire.ParseError(n))
	}
	*dst = &v
	return n, nil
}

func consumeInt32(num protowire.Number, typ protowire.Type, b []byte, dst **int32) (int, error) {
	var u *uint64
	n, err := consumeUint64(num, typ, b, &u)
	if err != nil {
		return 0, err
	}
	v := int32(*u)
	*dst = &v
	return n, nil
}

func consumeFloat(num protowire.Number, typ protowire.Type, b []byte, dst **float32) (int, error) {
	if typ != protowire.Fixed32Type {
		return 0, fmt.Errorf("%w: field %d: wire type %d, expected fixed32", ErrTruncated, num, typ)
	}
	v, n := protowire.ConsumeFixed32(b)
	if n < 0 {
		return 0, fmt.Errorf("%w: field %d: %v", ErrTruncated, num, protowire.ParseError(n))
	}
	f := math.Float32frombits(v)
	*dst = &f
	return n, nil
}

func consumeString(num protowire.Number, typ protowire.Type, b []byte, dst **string) (int, error) {
	if typ != protowire.BytesType {
		return 0, fmt.Errorf("%w: field %d: wire type %d, expected bytes", ErrTruncated, num, typ)
	}
	v, n := protowire.ConsumeString(b)
	if n < 0 {
		return 0, fmt.Errorf("%w: field %d: %v", ErrTruncated, num, protowire.ParseError(n))
	}
	*dst = &v
	return n, nil
}

func consumeSticker(num protowire.Number, typ protowire.Type, b []byte, dst *[]*Sticker) (int, error) {
	if typ != protowire.BytesType {
		return 0, fmt.Errorf("%w: field %d: wire type %d, expected bytes", ErrTruncated, num, typ)
	}
	v, n := protowire.ConsumeBytes(b)
	if n < 0 {
		return 0, fmt.Errorf("%w: field %d: %v", ErrTruncated, num, protowire.ParseError(n))
	}
	s := new(Sticker)
	if err := s.Unmarshal(v); err != nil {
		return 0, fmt.Errorf("field %d: %w", num, err)
	}
	*dst = append(*dst, s)
	return n, nil
}

// Unmarshal decodes b into x, replacing its contents. Repeated fields keep
// their encounter order; a singular field seen twice keeps the last value.
func (x *PreviewDataBlock) Unmarshal(b []byte) error {
	*x = PreviewDataBlock{}
	return walk(b, func(num protowire.Number, typ protowire.Type, v []byte) (int, error) {
		switch num {
		case fieldAccountID:
			return consumeUint32(num, typ, v, &x.Accountid)
		case fieldItemID:
			return consumeUint64(num, typ, v, &x.Itemid)
		case fieldDefindex:
			return consumeUint32(num, typ, v, &x.Defindex)
		case fieldPaintindex:
			return consumeUint32(num, typ, v, &x.Paintindex)
		case fieldRarity:
			return consumeUint32(num, typ, v, &x.Rarity)
		case fieldQuality:
			return consumeUint32(num, typ, v, &x.Quality)
		case fieldPaintwear:
			return consumeUint32(num, typ, v, &x.Paintwear)
		case fieldPaintseed:
			return consumeUint32(num, typ, v, &x.Paintseed)
		case fieldKilleaterscoretype:
			return consumeUint32(num, typ, v, &x.Killeaterscoretype)
		case fieldKilleatervalue:
			return consumeUint32(num, typ, v, &x.Killeatervalue)
		case fieldCustomname:
			return consumeString(num, typ, v, &x.Customname)
		case fieldStickers:
			return consumeSticker(num, typ, v, &x.Stickers)
		case fieldInventory:
			return consumeUint32(num, typ, v, &x.Inventory)
		case fieldOrigin:
			return consumeUint32(num, typ, v, &x.Origin)
		case fieldQuestID:
			return consumeUint32(num, typ, v, &x.Questid)
		case fieldDropreason:
			return consumeUint32(num, typ, v, &x.Dropreason)
		case fieldMusicindex:
			return consumeUint32(num, typ, v, &x.Musicindex)
		case fieldEntindex:
			return consumeInt32(num, typ, v, &x.Entindex)
		case fieldPetindex:
			return consumeUint32(num, typ, v, &x.Petindex)
		case fieldKeychains:
			return consumeSticker(num, typ, v, &x.Keychains)
		case fieldStyle:
			return consumeUint32(num, typ, v, &x.Style)
		case fieldVariations:
			return consumeSticker(num, typ, v, &x.Variations)
		case fieldUpgradeLevel:
			return consumeUint32(num, typ, v, &x.UpgradeLevel)
		}
		return 0, nil
	})
}

// Unmarshal decodes a sticker message body into x.
func (x *Sticker) Unmarshal(b []byte) error {
	*x = Sticker{}
	return walk(b, func(num protowire.Number, typ protowire.Type, v []byte) (int, error) {
		switch num {
		case fieldStickerSlot:
			return consumeUint32(num, typ, v, &x.Slot)
		case fieldStickerID:
			return consumeUint32(num, typ, v, &x.StickerId)
		case fieldStickerWear:
			return consumeFloat(num, typ, v, &x.Wear)
		case fieldStickerScale:
			return consumeFloat(num, typ, v, &x.Scale)
		case fieldStickerRotation:
			return consumeFloat(num, typ, v, &x.Rotation)
		case fieldStickerTintID:
			return consumeUint32(num, typ, v, &x.TintId)
		case fieldStickerOffsetX:
			return consumeFloat(num, typ, v, &x.OffsetX)
		case fieldStickerOffsetY:
			return consumeFloat(num, typ, v, &x.OffsetY)
		case fieldStickerOffsetZ:
			return consumeFloat(num, typ, v, &x.OffsetZ)
		case fieldStickerPattern:
			return consumeUint32(num, typ, v, &x.Pattern)
		case fieldStickerHighlightReel:
			return consumeUint32(num, typ, v, &x.HighlightReel)
		}
		return 0, nil
	})
}
