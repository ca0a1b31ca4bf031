package inspect

import "math"

// FloatToBits reinterprets f as its IEEE-754 bit pattern. paintwear travels
// as these bits in a varint field rather than as a float.
func FloatToBits(f float32) uint32 {
	return math.Float32bits(f)
}

// BitsToFloat is the inverse of FloatToBits. NaN payloads and subnormals are
// preserved.
func BitsToFloat(u uint32) float32 {
	return math.Float32frombits(u)
}
