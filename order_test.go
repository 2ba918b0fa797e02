package bitmac

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBitOrderString(t *testing.T) {
	assert.Equal(t, "LSB", LSB.String())
	assert.Equal(t, "MSB", MSB.String())
	assert.Equal(t, "BitOrder(7)", BitOrder(7).String())
}

func TestSetBitLSB(t *testing.T) {
	var w uint8

	w = SetBit(LSB, w, 0, true)
	assert.Equal(t, uint8(0b0000_0001), w)

	w = SetBit(LSB, w, 7, true)
	assert.Equal(t, uint8(0b1000_0001), w)

	w = SetBit(LSB, w, 0, false)
	assert.Equal(t, uint8(0b1000_0000), w)
}

func TestSetBitMSB(t *testing.T) {
	var w uint8

	w = SetBit(MSB, w, 0, true)
	assert.Equal(t, uint8(0b1000_0000), w)

	w = SetBit(MSB, w, 7, true)
	assert.Equal(t, uint8(0b1000_0001), w)

	w = SetBit(MSB, w, 0, false)
	assert.Equal(t, uint8(0b0000_0001), w)
}

func TestGetBit(t *testing.T) {
	w := uint8(0b1000_0001)

	assert.True(t, GetBit(LSB, w, 0))
	assert.True(t, GetBit(LSB, w, 7))
	assert.False(t, GetBit(LSB, w, 3))

	assert.True(t, GetBit(MSB, w, 0))
	assert.True(t, GetBit(MSB, w, 7))
	assert.False(t, GetBit(MSB, w, 3))
}

func TestBitOrderMirror(t *testing.T) {
	// Index i under MSB addresses the same physical bit as index width-1-i
	// under LSB, for every byte value.
	for b := 0; b < 256; b++ {
		w := uint8(b)
		for i := 0; i < 8; i++ {
			require.Equal(t, GetBit(LSB, w, 7-i), GetBit(MSB, w, i), "byte %#08b index %d", b, i)
		}
	}
}

func TestSetBitWiderWords(t *testing.T) {
	assert.Equal(t, uint16(0b1000_0000_0000_0000), SetBit(MSB, uint16(0), 0, true))
	assert.Equal(t, uint32(1)<<31, SetBit(MSB, uint32(0), 0, true))
	assert.Equal(t, uint64(1)<<63, SetBit(MSB, uint64(0), 0, true))

	assert.Equal(t, uint16(1), SetBit(LSB, uint16(0), 0, true))
	assert.Equal(t, uint32(1)<<31, SetBit(LSB, uint32(0), 31, true))
	assert.Equal(t, uint64(1)<<63, SetBit(LSB, uint64(0), 63, true))
}

func TestSetBitIdempotent(t *testing.T) {
	w := SetBit(LSB, uint8(0), 3, true)
	assert.Equal(t, w, SetBit(LSB, w, 3, true))

	w = SetBit(LSB, w, 3, false)
	assert.Equal(t, w, SetBit(LSB, w, 3, false))
}

func TestOrderMaskPanicsOutOfRange(t *testing.T) {
	assert.Panics(t, func() { SetBit(LSB, uint8(0), 8, true) })
	assert.Panics(t, func() { SetBit(MSB, uint8(0), -1, true) })
	assert.Panics(t, func() { GetBit(LSB, uint16(0), 16) })
}
