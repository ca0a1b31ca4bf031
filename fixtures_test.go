package inspect

import (
	"testing"
	"time"

	"github.com/0xAozora/cs2-inspect-link/economy"
	"github.com/0xAozora/cs2-inspect-link/types"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/proto"
)

const (
	idAquamarine = 1
	idAK47       = 2
	idHowl       = 3
	idCrown      = 10
	idTitan      = 11
	idPhoenix    = 20
	idBravo      = 21
	idGraffiti1  = 30
	idGraffiti2  = 31
	idMusicKit1  = 40
	idMusicKit2  = 41
	idCharm1     = 50
	idCharm2     = 51
	idAgent      = 60
	idMedal      = 70
	idFade       = 80
	idKarambit   = 81
	idKey        = 90
)

var testItems = []types.CatalogItem{
	{ID: idAquamarine, Name: "AK-47 | Aquamarine Revenge", Type: types.TypeWeapon, Def: 7, Index: proto.Uint32(474), Rarity: types.RarityAncient},
	{ID: idAK47, Name: "AK-47", Type: types.TypeWeapon, Def: 7, Rarity: types.RarityDefault},
	{ID: idHowl, Name: "M4A4 | Howl", Type: types.TypeWeapon, Def: 16, Index: proto.Uint32(309), Rarity: types.RarityImmortal, WearMin: proto.Float32(0.05), WearMax: proto.Float32(0.8)},
	{ID: idCrown, Name: "Sticker | Crown (Foil)", Type: types.TypeSticker, Def: 1209, Index: proto.Uint32(76), Rarity: types.RarityLegendary},
	{ID: idTitan, Name: "Sticker | Titan (Holo) | Katowice 2014", Type: types.TypeSticker, Def: 1209, Index: proto.Uint32(1), Rarity: types.RarityMythical},
	{ID: idPhoenix, Name: "Patch | Phoenix", Type: types.TypePatch, Def: 4609, Index: proto.Uint32(4550), Rarity: types.RarityRare},
	{ID: idBravo, Name: "Patch | Bravo", Type: types.TypePatch, Def: 4609, Index: proto.Uint32(4551), Rarity: types.RarityRare},
	{ID: idGraffiti1, Name: "Sealed Graffiti | Recoil (Brick Red)", Type: types.TypeGraffiti, Def: 1348, Index: proto.Uint32(1), Tint: proto.Uint32(1), Rarity: types.RarityCommon},
	{ID: idGraffiti2, Name: "Sealed Graffiti | Recoil (Frog Green)", Type: types.TypeGraffiti, Def: 1348, Index: proto.Uint32(1), Tint: proto.Uint32(2), Rarity: types.RarityCommon},
	{ID: idMusicKit1, Name: "Music Kit | Daniel Sadowski, Crimson Assault", Type: types.TypeMusicKit, Def: 1314, Index: proto.Uint32(3), Rarity: types.RarityRare},
	{ID: idMusicKit2, Name: "Music Kit | Noisia, Sharpened", Type: types.TypeMusicKit, Def: 1314, Index: proto.Uint32(4), Rarity: types.RarityRare},
	{ID: idCharm1, Name: "Charm | Lil' Squirt", Type: types.TypeKeychain, Def: 1355, Index: proto.Uint32(1), Rarity: types.RarityRare},
	{ID: idCharm2, Name: "Charm | Lil' Whiskers", Type: types.TypeKeychain, Def: 1355, Index: proto.Uint32(2), Rarity: types.RarityRare},
	{ID: idAgent, Name: "Sir Bloody Miami Darryl | The Professionals", Type: types.TypeAgent, Def: 4726, Rarity: types.RarityImmortal},
	{ID: idMedal, Name: "5 Year Veteran Coin", Type: types.TypeCollectible, Def: 874, Rarity: types.RarityAncient},
	{ID: idFade, Name: "Karambit | Fade", Type: types.TypeMelee, Def: 507, Index: proto.Uint32(38), Rarity: types.RarityAncient, WearMax: proto.Float32(0.08)},
	{ID: idKarambit, Name: "Karambit", Type: types.TypeMelee, Def: 507, Rarity: types.RarityAncient},
	{ID: idKey, Name: "CS:GO Case Key", Type: types.TypeKey, Def: 1203, Rarity: types.RarityCommon},
}

type recordingMetrics struct {
	ops  []string
	errs []bool
}

func (m *recordingMetrics) LogOperation(op string, _ time.Duration, _ *time.Time, err bool) {
	m.ops = append(m.ops, op)
	m.errs = append(m.errs, err)
}

func newTestCatalog(t *testing.T) *economy.Catalog {
	t.Helper()
	catalog, err := economy.New(testItems)
	require.NoError(t, err)
	return catalog
}

func newTestCodec(t *testing.T) (*Codec, *economy.Catalog) {
	t.Helper()
	catalog := newTestCatalog(t)
	logger := zerolog.Nop()
	codec, err := NewCodec(catalog, &logger, nil)
	require.NoError(t, err)
	return codec, catalog
}

func entry(t *testing.T, catalog *economy.Catalog, id uint32) *types.CatalogItem {
	t.Helper()
	item, ok := catalog.Get(id)
	require.True(t, ok, "catalog id %d", id)
	return item
}

var _ Economy = (*economy.Catalog)(nil)
