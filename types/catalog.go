package types

import (
	"fmt"
	"strings"
)

const (
	MinSeed        uint32  = 1
	MaxSeed        uint32  = 1000
	MinWear        float32 = 0
	MaxWear        float32 = 1
	MinStickerWear float32 = 0
)

type ItemType uint8

const (
	TypeAgent ItemType = iota
	TypeCollectible
	TypeContainer
	TypeGloves
	TypeGraffiti
	TypeKey
	TypeKeychain
	TypeMelee
	TypeMusicKit
	TypePatch
	TypeSticker
	TypeTool
	TypeWeapon

	itemTypeCount
)

var itemTypeNames = [itemTypeCount]string{
	TypeAgent:       "agent",
	TypeCollectible: "collectible",
	TypeContainer:   "container",
	TypeGloves:      "gloves",
	TypeGraffiti:    "graffiti",
	TypeKey:         "key",
	TypeKeychain:    "keychain",
	TypeMelee:       "melee",
	TypeMusicKit:    "musickit",
	TypePatch:       "patch",
	TypeSticker:     "sticker",
	TypeTool:        "tool",
	TypeWeapon:      "weapon",
}

func (t ItemType) String() string {
	if t >= itemTypeCount {
		return fmt.Sprintf("ItemType(%d)", uint8(t))
	}
	return itemTypeNames[t]
}

func (t ItemType) MarshalText() ([]byte, error) {
	if t >= itemTypeCount {
		return nil, fmt.Errorf("unknown item type %d", uint8(t))
	}
	return []byte(itemTypeNames[t]), nil
}

func (t *ItemType) UnmarshalText(text []byte) error {
	s := strings.ToLower(strings.TrimSpace(string(text)))
	for i, name := range itemTypeNames {
		if name == s {
			*t = ItemType(i)
			return nil
		}
	}
	return fmt.Errorf("unknown item type %q", string(text))
}

// Rarity values are the preview protocol's rarity tiers.
type Rarity uint8

const (
	RarityDefault Rarity = iota
	RarityCommon
	RarityUncommon
	RarityRare
	RarityMythical
	RarityLegendary
	RarityAncient
	RarityImmortal

	rarityCount
)

var rarities = [rarityCount]struct {
	name  string
	color string
}{
	RarityDefault:   {"default", "#ded6cc"},
	RarityCommon:    {"common", "#b0c3d9"},
	RarityUncommon:  {"uncommon", "#5e98d9"},
	RarityRare:      {"rare", "#4b69ff"},
	RarityMythical:  {"mythical", "#8847ff"},
	RarityLegendary: {"legendary", "#d32ce6"},
	RarityAncient:   {"ancient", "#eb4b4b"},
	RarityImmortal:  {"immortal", "#e4ae39"},
}

// Tier is the value written to the preview block, 0 for anything unknown.
func (r Rarity) Tier() uint32 {
	if r >= rarityCount {
		return 0
	}
	return uint32(r)
}

func (r Rarity) Color() string {
	if r >= rarityCount {
		return ""
	}
	return rarities[r].color
}

func (r Rarity) String() string {
	if r >= rarityCount {
		return fmt.Sprintf("Rarity(%d)", uint8(r))
	}
	return rarities[r].name
}

func (r Rarity) MarshalText() ([]byte, error) {
	if r >= rarityCount {
		return nil, fmt.Errorf("unknown rarity %d", uint8(r))
	}
	return []byte(rarities[r].name), nil
}

// UnmarshalText accepts either the rarity name or its item colour.
func (r *Rarity) UnmarshalText(text []byte) error {
	s := strings.ToLower(strings.TrimSpace(string(text)))
	for i, rarity := range rarities {
		if rarity.name == s || rarity.color == s {
			*r = Rarity(i)
			return nil
		}
	}
	return fmt.Errorf("unknown rarity %q", string(text))
}

// CatalogItem is one entry of the economy catalog.
type CatalogItem struct {
	ID      uint32   `json:"id" yaml:"id" toml:"id"`
	Name    string   `json:"name,omitempty" yaml:"name,omitempty" toml:"name,omitempty"`
	Type    ItemType `json:"type" yaml:"type" toml:"type"`
	Def     uint32   `json:"def" yaml:"def" toml:"def"`
	Index   *uint32  `json:"index,omitempty" yaml:"index,omitempty" toml:"index,omitempty"`
	Tint    *uint32  `json:"tint,omitempty" yaml:"tint,omitempty" toml:"tint,omitempty"`
	Rarity  Rarity   `json:"rarity" yaml:"rarity" toml:"rarity"`
	WearMin *float32 `json:"wearMin,omitempty" yaml:"wearMin,omitempty" toml:"wearMin,omitempty"`
	WearMax *float32 `json:"wearMax,omitempty" yaml:"wearMax,omitempty" toml:"wearMax,omitempty"`
	Free    bool     `json:"free,omitempty" yaml:"free,omitempty" toml:"free,omitempty"`
}

func (i *CatalogItem) IsAgent() bool       { return i.Type == TypeAgent }
func (i *CatalogItem) IsGraffiti() bool    { return i.Type == TypeGraffiti }
func (i *CatalogItem) IsKeychain() bool    { return i.Type == TypeKeychain }
func (i *CatalogItem) IsMusicKit() bool    { return i.Type == TypeMusicKit }
func (i *CatalogItem) IsPatch() bool       { return i.Type == TypePatch }
func (i *CatalogItem) IsSticker() bool     { return i.Type == TypeSticker }
func (i *CatalogItem) IsCollectible() bool { return i.Type == TypeCollectible }

// IsPaintable reports weapons, knives and gloves.
func (i *CatalogItem) IsPaintable() bool {
	return i.Type == TypeWeapon || i.Type == TypeMelee || i.Type == TypeGloves
}

// IsVanilla reports a paintable item without a finish.
func (i *CatalogItem) IsVanilla() bool {
	return i.IsPaintable() && (i.Index == nil || *i.Index == 0)
}

func (i *CatalogItem) HasWear() bool {
	return i.IsPaintable() && !i.Free && !i.IsVanilla()
}

func (i *CatalogItem) HasSeed() bool {
	return i.IsPaintable() && !i.Free && !i.IsVanilla()
}

func (i *CatalogItem) MinimumWear() float32 {
	if i.WearMin != nil {
		return *i.WearMin
	}
	return MinWear
}

func (i *CatalogItem) MaximumWear() float32 {
	if i.WearMax != nil {
		return *i.WearMax
	}
	return MaxWear
}

// IsInspectable reports whether the game can preview the item.
func (i *CatalogItem) IsInspectable() bool {
	switch i.Type {
	case TypeAgent, TypeContainer, TypeCollectible, TypeGloves, TypeGraffiti, TypeKeychain,
		TypeMelee, TypeMusicKit, TypePatch, TypeSticker, TypeWeapon:
		return true
	}
	return false
}
