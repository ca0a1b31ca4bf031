package inspect

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFloatBitsExact(t *testing.T) {
	tests := []struct {
		name string
		bits uint32
	}{
		{"zero", 0x00000000},
		{"negative zero", 0x80000000},
		{"one", 0x3F800000},
		{"smallest subnormal", 0x00000001},
		{"largest subnormal", 0x007FFFFF},
		{"all mantissa bits", 0x3FFFFFFF},
		{"wear 0.6337", 0x3F223A2A},
		{"quiet nan with payload", 0x7FC00123},
		{"infinity", 0x7F800000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := BitsToFloat(tt.bits)
			assert.Equal(t, tt.bits, FloatToBits(f))
			assert.Equal(t, math.Float32bits(f), FloatToBits(f))
		})
	}
}

func TestFloatToBitsValues(t *testing.T) {
	assert.Equal(t, uint32(0), FloatToBits(0))
	assert.Equal(t, uint32(0x3F800000), FloatToBits(1))
	assert.Equal(t, uint32(1), FloatToBits(math.SmallestNonzeroFloat32))
	assert.Equal(t, uint32(0x3F223A2A), FloatToBits(0.6337))

	for _, v := range []float32{0, 1, math.SmallestNonzeroFloat32, math.MaxFloat32, 0.6337, 0.07} {
		assert.Equal(t, v, BitsToFloat(FloatToBits(v)))
	}
}
