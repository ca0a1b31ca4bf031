package types

import (
	"github.com/tinylib/msgp/msgp"
)

// Optional fields are written only when present so that absence survives a
// round trip. Attachment maps are keyed by their slot as a msgpack integer
// and written in slot order.

func appendOptUint32(o []byte, key string, v *uint32) []byte {
	if v == nil {
		return o
	}
	o = msgp.AppendString(o, key)
	return msgp.AppendUint32(o, *v)
}

func appendOptFloat32(o []byte, key string, v *float32) []byte {
	if v == nil {
		return o
	}
	o = msgp.AppendString(o, key)
	return msgp.AppendFloat32(o, *v)
}

func readOptUint32(bts []byte) (*uint32, []byte, error) {
	if msgp.IsNil(bts) {
		bts, err := msgp.ReadNilBytes(bts)
		return nil, bts, err
	}
	v, bts, err := msgp.ReadUint32Bytes(bts)
	if err != nil {
		return nil, bts, err
	}
	return &v, bts, nil
}

func readOptFloat32(bts []byte) (*float32, []byte, error) {
	if msgp.IsNil(bts) {
		bts, err := msgp.ReadNilBytes(bts)
		return nil, bts, err
	}
	v, bts, err := msgp.ReadFloat32Bytes(bts)
	if err != nil {
		return nil, bts, err
	}
	return &v, bts, nil
}

func countPresent(ptrs ...bool) uint32 {
	var n uint32
	for _, p := range ptrs {
		if p {
			n++
		}
	}
	return n
}

// MarshalMsg implements msgp.Marshaler
func (z *Sticker) MarshalMsg(b []byte) (o []byte, err error) {
	o = msgp.Require(b, z.Msgsize())
	o = msgp.AppendMapHeader(o, 1+countPresent(z.Wear != nil, z.X != nil, z.Y != nil, z.R != nil))
	o = msgp.AppendString(o, "i")
	o = msgp.AppendUint32(o, z.ID)
	o = appendOptFloat32(o, "f", z.Wear)
	o = appendOptFloat32(o, "x", z.X)
	o = appendOptFloat32(o, "y", z.Y)
	o = appendOptFloat32(o, "r", z.R)
	return
}

// UnmarshalMsg implements msgp.Unmarshaler
func (z *Sticker) UnmarshalMsg(bts []byte) (o []byte, err error) {
	var field []byte
	var n uint32
	n, bts, err = msgp.ReadMapHeaderBytes(bts)
	if err != nil {
		err = msgp.WrapError(err)
		return
	}
	*z = Sticker{}
	for ; n > 0; n-- {
		field, bts, err = msgp.ReadMapKeyZC(bts)
		if err != nil {
			err = msgp.WrapError(err)
			return
		}
		switch msgp.UnsafeString(field) {
		case "i":
			z.ID, bts, err = msgp.ReadUint32Bytes(bts)
		case "f":
			z.Wear, bts, err = readOptFloat32(bts)
		case "x":
			z.X, bts, err = readOptFloat32(bts)
		case "y":
			z.Y, bts, err = readOptFloat32(bts)
		case "r":
			z.R, bts, err = readOptFloat32(bts)
		default:
			bts, err = msgp.Skip(bts)
		}
		if err != nil {
			err = msgp.WrapError(err, string(field))
			return
		}
	}
	o = bts
	return
}

// Msgsize returns an upper bound estimate of the number of bytes occupied by the serialized message
func (z *Sticker) Msgsize() int {
	return msgp.MapHeaderSize + 5*(msgp.StringPrefixSize+1) + msgp.Uint32Size + 4*msgp.Float32Size
}

// MarshalMsg implements msgp.Marshaler
func (z *Keychain) MarshalMsg(b []byte) (o []byte, err error) {
	o = msgp.Require(b, z.Msgsize())
	o = msgp.AppendMapHeader(o, 1+countPresent(z.Pattern != nil, z.X != nil, z.Y != nil))
	o = msgp.AppendString(o, "i")
	o = msgp.AppendUint32(o, z.ID)
	o = appendOptUint32(o, "p", z.Pattern)
	o = appendOptFloat32(o, "x", z.X)
	o = appendOptFloat32(o, "y", z.Y)
	return
}

// UnmarshalMsg implements msgp.Unmarshaler
func (z *Keychain) UnmarshalMsg(bts []byte) (o []byte, err error) {
	var field []byte
	var n uint32
	n, bts, err = msgp.ReadMapHeaderBytes(bts)
	if err != nil {
		err = msgp.WrapError(err)
		return
	}
	*z = Keychain{}
	for ; n > 0; n-- {
		field, bts, err = msgp.ReadMapKeyZC(bts)
		if err != nil {
			err = msgp.WrapError(err)
			return
		}
		switch msgp.UnsafeString(field) {
		case "i":
			z.ID, bts, err = msgp.ReadUint32Bytes(bts)
		case "p":
			z.Pattern, bts, err = readOptUint32(bts)
		case "x":
			z.X, bts, err = readOptFloat32(bts)
		case "y":
			z.Y, bts, err = readOptFloat32(bts)
		default:
			bts, err = msgp.Skip(bts)
		}
		if err != nil {
			err = msgp.WrapError(err, string(field))
			return
		}
	}
	o = bts
	return
}

// Msgsize returns an upper bound estimate of the number of bytes occupied by the serialized message
func (z *Keychain) Msgsize() int {
	return msgp.MapHeaderSize + 4*(msgp.StringPrefixSize+1) + 2*msgp.Uint32Size + 2*msgp.Float32Size
}

// MarshalMsg implements msgp.Marshaler
func (z *Item) MarshalMsg(b []byte) (o []byte, err error) {
	o = msgp.Require(b, z.Msgsize())
	o = msgp.AppendMapHeader(o, 1+countPresent(
		z.NameTag != nil, z.Seed != nil, z.Wear != nil, z.StatTrak != nil,
		z.Stickers != nil, z.Patches != nil, z.Keychains != nil,
	))
	o = msgp.AppendString(o, "i")
	o = msgp.AppendUint32(o, z.ID)
	if z.NameTag != nil {
		o = msgp.AppendString(o, "n")
		o = msgp.AppendString(o, *z.NameTag)
	}
	o = appendOptUint32(o, "e", z.Seed)
	o = appendOptFloat32(o, "f", z.Wear)
	o = appendOptUint32(o, "c", z.StatTrak)

	if z.Stickers != nil {
		o = msgp.AppendString(o, "t")
		o = msgp.AppendMapHeader(o, uint32(len(z.Stickers)))
		for _, slot := range sortedSlots(z.Stickers) {
			sticker := z.Stickers[slot]
			o = msgp.AppendUint8(o, slot)
			o, err = sticker.MarshalMsg(o)
			if err != nil {
				err = msgp.WrapError(err, "Stickers", slot)
				return
			}
		}
	}
	if z.Patches != nil {
		o = msgp.AppendString(o, "p")
		o = msgp.AppendMapHeader(o, uint32(len(z.Patches)))
		for _, slot := range sortedSlots(z.Patches) {
			o = msgp.AppendUint8(o, slot)
			o = msgp.AppendUint32(o, z.Patches[slot])
		}
	}
	if z.Keychains != nil {
		o = msgp.AppendString(o, "k")
		o = msgp.AppendMapHeader(o, uint32(len(z.Keychains)))
		for _, slot := range sortedSlots(z.Keychains) {
			keychain := z.Keychains[slot]
			o = msgp.AppendUint8(o, slot)
			o, err = keychain.MarshalMsg(o)
			if err != nil {
				err = msgp.WrapError(err, "Keychains", slot)
				return
			}
		}
	}
	return
}

// UnmarshalMsg implements msgp.Unmarshaler
func (z *Item) UnmarshalMsg(bts []byte) (o []byte, err error) {
	var field []byte
	var n, sz uint32
	n, bts, err = msgp.ReadMapHeaderBytes(bts)
	if err != nil {
		err = msgp.WrapError(err)
		return
	}
	*z = Item{}
	for ; n > 0; n-- {
		field, bts, err = msgp.ReadMapKeyZC(bts)
		if err != nil {
			err = msgp.WrapError(err)
			return
		}
		switch msgp.UnsafeString(field) {
		case "i":
			z.ID, bts, err = msgp.ReadUint32Bytes(bts)
		case "n":
			if msgp.IsNil(bts) {
				bts, err = msgp.ReadNilBytes(bts)
				break
			}
			var s string
			s, bts, err = msgp.ReadStringBytes(bts)
			z.NameTag = &s
		case "e":
			z.Seed, bts, err = readOptUint32(bts)
		case "f":
			z.Wear, bts, err = readOptFloat32(bts)
		case "c":
			z.StatTrak, bts, err = readOptUint32(bts)
		case "t":
			sz, bts, err = msgp.ReadMapHeaderBytes(bts)
			if err != nil {
				break
			}
			z.Stickers = make(map[uint8]Sticker, sz)
			for ; sz > 0 && err == nil; sz-- {
				var slot uint8
				var sticker Sticker
				slot, bts, err = msgp.ReadUint8Bytes(bts)
				if err != nil {
					break
				}
				bts, err = sticker.UnmarshalMsg(bts)
				z.Stickers[slot] = sticker
			}
		case "p":
			sz, bts, err = msgp.ReadMapHeaderBytes(bts)
			if err != nil {
				break
			}
			z.Patches = make(map[uint8]uint32, sz)
			for ; sz > 0 && err == nil; sz-- {
				var slot uint8
				var patch uint32
				slot, bts, err = msgp.ReadUint8Bytes(bts)
				if err != nil {
					break
				}
				patch, bts, err = msgp.ReadUint32Bytes(bts)
				z.Patches[slot] = patch
			}
		case "k":
			sz, bts, err = msgp.ReadMapHeaderBytes(bts)
			if err != nil {
				break
			}
			z.Keychains = make(map[uint8]Keychain, sz)
			for ; sz > 0 && err == nil; sz-- {
				var slot uint8
				var keychain Keychain
				slot, bts, err = msgp.ReadUint8Bytes(bts)
				if err != nil {
					break
				}
				bts, err = keychain.UnmarshalMsg(bts)
				z.Keychains[slot] = keychain
			}
		default:
			bts, err = msgp.Skip(bts)
		}
		if err != nil {
			err = msgp.WrapError(err, string(field))
			return
		}
	}
	o = bts
	return
}

// Msgsize returns an upper bound estimate of the number of bytes occupied by the serialized message
func (z *Item) Msgsize() int {
	s := msgp.MapHeaderSize + 8*(msgp.StringPrefixSize+1) + 3*msgp.Uint32Size + msgp.Float32Size
	if z.NameTag != nil {
		s += msgp.StringPrefixSize + len(*z.NameTag)
	}
	s += 3 * msgp.MapHeaderSize
	for _, sticker := range z.Stickers {
		s += msgp.Uint8Size + sticker.Msgsize()
	}
	s += len(z.Patches) * (msgp.Uint8Size + msgp.Uint32Size)
	for _, keychain := range z.Keychains {
		s += msgp.Uint8Size + keychain.Msgsize()
	}
	return s
}
