package inspect

import (
	"encoding/binary"
	"encoding/hex"
	"strings"
	"testing"

	"github.com/0xAozora/cs2-inspect-link/protocol"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/proto"
)

const exampleHex = "00180720DA03280638AAF488F90340B202C9E301CE"

func exampleBlock() *protocol.PreviewDataBlock {
	return &protocol.PreviewDataBlock{
		Defindex:   proto.Uint32(7),
		Paintindex: proto.Uint32(474),
		Paintseed:  proto.Uint32(306),
		Paintwear:  proto.Uint32(FloatToBits(0.6337)),
		Rarity:     proto.Uint32(6),
	}
}

// wireHex builds a link payload around raw block bytes with a given sentinel
// and a checksum that matches it.
func wireHex(sentinel byte, block []byte) string {
	wire := append([]byte{sentinel}, block...)
	wire = binary.BigEndian.AppendUint32(wire, Checksum(wire, len(block)))
	return strings.ToUpper(hex.EncodeToString(wire))
}

func TestEncodeHexExample(t *testing.T) {
	assert.Equal(t, exampleHex, EncodeHex(exampleBlock()))
}

func TestFormatLinkLengthCeiling(t *testing.T) {
	fits := strings.Repeat("A", MaxURLLength-len(PreviewURL))
	assert.Equal(t, PreviewURL+fits, FormatLink(fits))
	assert.False(t, IsCommand(FormatLink(fits)))

	over := fits + "B"
	assert.Equal(t, PreviewCommand+" "+over, FormatLink(over))
	assert.True(t, IsCommand(FormatLink(over)))
}

func TestDecodeHexForms(t *testing.T) {
	links := []string{
		PreviewURL + exampleHex,
		PreviewURL + strings.ToLower(exampleHex),
		PreviewCommand + " " + exampleHex,
		PreviewCommand + "%20" + exampleHex,
		"steam://rungame/730/76561202255233023/+csgo_econ_action_preview " + exampleHex,
		"  " + PreviewCommand + " " + exampleHex + "\n",
	}

	for _, link := range links {
		block, err := DecodeHex(link)
		require.NoError(t, err, link)
		assert.Equal(t, exampleBlock(), block, link)
	}
}

func TestDecodeHexMalformedLink(t *testing.T) {
	links := []string{
		"",
		exampleHex,
		"steam://rungame/730/76561202255233023/+" + exampleHex,
		PreviewCommand + exampleHex,
		PreviewURL + exampleHex[1:],
		PreviewURL + "0G" + exampleHex[2:],
		"https://example.com/" + exampleHex,
	}

	for _, link := range links {
		_, err := DecodeHex(link)
		assert.ErrorIs(t, err, ErrMalformedLink, link)
	}
}

func TestDecodeHexTooShort(t *testing.T) {
	for _, h := range []string{"", "00", "00C9E301"} {
		_, err := DecodeHex(PreviewURL + h)
		assert.ErrorIs(t, err, ErrMalformedFormat, h)
	}
}

func TestDecodeHexSentinel(t *testing.T) {
	block := exampleBlock().Marshal()

	for _, s := range []byte{0x01, 0x7F, 0x80, 0xFF} {
		// The checksum matches the altered payload, the sentinel still fails.
		_, err := DecodeHex(PreviewURL + wireHex(s, block))
		assert.ErrorIs(t, err, ErrMalformedFormat)
		assert.NotErrorIs(t, err, ErrChecksumMismatch)
	}
}

func TestDecodeHexChecksumBitFlips(t *testing.T) {
	wire, err := hex.DecodeString(exampleHex)
	require.NoError(t, err)

	for i := 1; i < len(wire); i++ {
		for bit := 0; bit < 8; bit++ {
			flipped := append([]byte(nil), wire...)
			flipped[i] ^= 1 << bit

			_, err := DecodeHex(PreviewURL + strings.ToUpper(hex.EncodeToString(flipped)))
			assert.ErrorIs(t, err, ErrChecksumMismatch, "byte %d bit %d", i, bit)
		}
	}
}

func TestDecodeHexInvalidBlock(t *testing.T) {
	// Valid sentinel and checksum around a truncated varint.
	_, err := DecodeHex(PreviewURL + wireHex(0x00, []byte{0x18}))
	assert.ErrorIs(t, err, ErrMalformedFormat)
	assert.ErrorIs(t, err, protocol.ErrTruncated)
}
