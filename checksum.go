package inspect

import "hash/crc32"

// Checksum computes the integrity code of an inspect link payload. payload is
// the sentinel byte followed by the encoded block, blockLen the length of the
// encoded block alone.
//
// The CRC-32 is mixed with the block length the way the game does it, so this
// is not a plain CRC of the payload.
func Checksum(payload []byte, blockLen int) uint32 {
	crc := crc32.ChecksumIEEE(payload)
	return (crc & 0xFFFF) ^ (uint32(blockLen) * crc)
}
