package types

// Sticker is a sticker applied to an item. ID is the catalog id of the sticker.
type Sticker struct {
	ID   uint32   `msg:"i" json:"i" yaml:"i" cbor:"i"`
	Wear *float32 `msg:"f,omitempty" json:"f,omitempty" yaml:"f,omitempty" cbor:"f,omitempty"`
	X    *float32 `msg:"x,omitempty" json:"x,omitempty" yaml:"x,omitempty" cbor:"x,omitempty"`
	Y    *float32 `msg:"y,omitempty" json:"y,omitempty" yaml:"y,omitempty" cbor:"y,omitempty"`
	R    *float32 `msg:"r,omitempty" json:"r,omitempty" yaml:"r,omitempty" cbor:"r,omitempty"`
}

// Keychain is a charm attached to an item. ID is the catalog id of the charm.
type Keychain struct {
	ID      uint32   `msg:"i" json:"i" yaml:"i" cbor:"i"`
	Pattern *uint32  `msg:"p,omitempty" json:"p,omitempty" yaml:"p,omitempty" cbor:"p,omitempty"`
	X       *float32 `msg:"x,omitempty" json:"x,omitempty" yaml:"x,omitempty" cbor:"x,omitempty"`
	Y       *float32 `msg:"y,omitempty" json:"y,omitempty" yaml:"y,omitempty" cbor:"y,omitempty"`
}
