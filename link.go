package inspect

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/0xAozora/cs2-inspect-link/protocol"
)

const (
	PreviewURL     = "steam://rungame/730/76561202255233023/+csgo_econ_action_preview%20"
	PreviewCommand = "csgo_econ_action_preview"

	// MaxURLLength is the longest steam:// URL the launcher accepts.
	MaxURLLength = 300

	rungamePrefix = "steam://rungame/730/76561202255233023/+"

	sentinel     byte = 0x00
	checksumSize      = 4
)

// FormatLink wraps the hex payload in the URL form, or in the command form if
// the URL would be longer than MaxURLLength.
func FormatLink(hex string) string {
	if len(PreviewURL)+len(hex) > MaxURLLength {
		return PreviewCommand + " " + hex
	}
	return PreviewURL + hex
}

// IsCommand reports whether link is in the console command form.
func IsCommand(link string) bool {
	return strings.HasPrefix(link, PreviewCommand)
}

// EncodeHex serializes block into the uppercase hex payload of a link:
// sentinel byte, encoded block, big endian checksum.
func EncodeHex(block *protocol.PreviewDataBlock) string {
	b := block.Marshal()

	wire := make([]byte, 0, 1+len(b)+checksumSize)
	wire = append(wire, sentinel)
	wire = append(wire, b...)
	wire = binary.BigEndian.AppendUint32(wire, Checksum(wire, len(b)))

	return strings.ToUpper(hex.EncodeToString(wire))
}

// trimPrefix strips the URL or command prefix and returns the hex payload.
// Both " " and "%20" are accepted after the command.
func trimPrefix(link string) (string, error) {
	s := strings.TrimSpace(link)
	s = strings.TrimPrefix(s, rungamePrefix)

	rest, ok := strings.CutPrefix(s, PreviewCommand)
	if !ok {
		return "", fmt.Errorf("%w: unrecognized prefix", ErrMalformedLink)
	}

	switch {
	case strings.HasPrefix(rest, "%20"):
		return rest[len("%20"):], nil
	case strings.HasPrefix(rest, " "):
		return strings.TrimLeft(rest, " "), nil
	}
	return "", fmt.Errorf("%w: missing separator after command", ErrMalformedLink)
}

// DecodeHex parses a link in either form and returns its preview block after
// checking the sentinel byte and the checksum.
func DecodeHex(link string) (*protocol.PreviewDataBlock, error) {
	s, err := trimPrefix(link)
	if err != nil {
		return nil, err
	}

	wire, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedLink, err)
	}
	if len(wire) < 1+checksumSize {
		return nil, fmt.Errorf("%w: %d bytes is too short", ErrMalformedFormat, len(wire))
	}

	payload := wire[:len(wire)-checksumSize]
	provided := binary.BigEndian.Uint32(wire[len(wire)-checksumSize:])

	if payload[0] != sentinel {
		return nil, fmt.Errorf("%w: sentinel byte %#02x", ErrMalformedFormat, payload[0])
	}

	if code := Checksum(payload, len(payload)-1); code != provided {
		return nil, fmt.Errorf("%w: got %08X, computed %08X", ErrChecksumMismatch, provided, code)
	}

	var block protocol.PreviewDataBlock
	if err := block.Unmarshal(payload[1:]); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedFormat, err)
	}
	return &block, nil
}
