package bitmac

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFixedContainer(t *testing.T) {
	f := NewFixed[uint8](2)
	require.Equal(t, 2, f.Words())
	require.Equal(t, 16, f.Bits())

	f.SetWord(1, 0b0000_0011)
	assert.Equal(t, uint8(0b0000_0011), f.WordAt(1))
	assert.Equal(t, []uint8{0, 0b0000_0011}, f.Raw())
}

func TestFixedFromShares(t *testing.T) {
	buf := []uint8{0, 0}
	f := FixedFrom(buf)

	require.NoError(t, TrySet(f, LSB, 0, true))

	assert.Equal(t, uint8(0b0000_0001), buf[0])
}

func TestFixedAllocator(t *testing.T) {
	alloc := FixedAllocator[uint8](2)

	f, err := alloc(2)
	require.NoError(t, err)
	assert.Equal(t, 2, f.Words())

	_, err = alloc(3)
	var mismatch *ErrCapacityMismatch
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, 3, mismatch.Requested)
	assert.Equal(t, 2, mismatch.Capacity)
}

func TestSliceResize(t *testing.T) {
	s := NewSlice[uint8](1)
	s.SetWord(0, 0xFF)

	s.Resize(3, 0)
	require.Equal(t, 3, s.Words())
	assert.Equal(t, uint8(0xFF), s.WordAt(0))
	assert.Equal(t, uint8(0), s.WordAt(1))
	assert.Equal(t, uint8(0), s.WordAt(2))

	s.Resize(1, 0)
	require.Equal(t, 1, s.Words())
	assert.Equal(t, uint8(0xFF), s.WordAt(0))

	// Regrowing within capacity must re-zero the words dropped by the shrink.
	s.Resize(3, 0)
	assert.Equal(t, uint8(0), s.WordAt(1))
	assert.Equal(t, uint8(0), s.WordAt(2))
}

func TestSliceResizeFill(t *testing.T) {
	s := NewSlice[uint8](1)
	s.Resize(3, 0xAA)

	assert.Equal(t, uint8(0), s.WordAt(0))
	assert.Equal(t, uint8(0xAA), s.WordAt(1))
	assert.Equal(t, uint8(0xAA), s.WordAt(2))
}

func TestScalarContainer(t *testing.T) {
	s := ScalarOf(uint16(0b1000_0000_0000_0001))

	require.Equal(t, 1, s.Words())
	require.Equal(t, 16, s.Bits())
	assert.Equal(t, uint16(0b1000_0000_0000_0001), s.Value())

	assert.True(t, Get[uint16](s, LSB, 0))
	assert.True(t, Get[uint16](s, LSB, 15))
	assert.False(t, Get[uint16](s, LSB, 1))

	assert.Panics(t, func() { s.WordAt(1) })
	assert.Panics(t, func() { s.SetWord(1, 0) })
}

func TestScalarAllocator(t *testing.T) {
	alloc := ScalarAllocator[uint8]()

	s, err := alloc(1)
	require.NoError(t, err)
	assert.Equal(t, uint8(0), s.Value())

	_, err = alloc(2)
	var mismatch *ErrCapacityMismatch
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, 1, mismatch.Capacity)
}

func TestViewReadOnly(t *testing.T) {
	v := ViewOf([]uint8{0b0000_0101})

	assert.Equal(t, 1, v.Words())
	assert.Equal(t, 8, v.Bits())
	assert.True(t, Get[uint8](v, LSB, 0))
	assert.True(t, Get[uint8](v, LSB, 2))
	assert.False(t, Get[uint8](v, LSB, 1))
	assert.Equal(t, 2, CountOnes[uint8](v))
}

func TestBufferContainer(t *testing.T) {
	b := BufferFrom([]byte{0b0000_0001})
	defer b.Release()

	require.Equal(t, 1, b.Words())
	require.Equal(t, 8, b.Bits())
	assert.True(t, Get[uint8](b, LSB, 0))

	b.Resize(3, 0)
	require.Equal(t, 3, b.Words())
	assert.Equal(t, uint8(0b0000_0001), b.WordAt(0))
	assert.Equal(t, uint8(0), b.WordAt(2))

	b.SetWord(2, 0xFF)
	assert.Equal(t, []byte{0b0000_0001, 0, 0xFF}, b.Bytes())
}

func TestBufferFromCopies(t *testing.T) {
	src := []byte{1, 2, 3}
	b := BufferFrom(src)
	defer b.Release()

	b.SetWord(0, 9)

	assert.Equal(t, uint8(1), src[0])
}

func TestBufferAllocator(t *testing.T) {
	b, err := BufferAllocator()(4)
	require.NoError(t, err)
	defer b.Release()

	require.Equal(t, 4, b.Words())
	for i := 0; i < 4; i++ {
		assert.Equal(t, uint8(0), b.WordAt(i))
	}
}

func TestBufferReleaseTwice(t *testing.T) {
	b := NewBuffer()
	b.Release()
	assert.NotPanics(t, b.Release)
}

func TestCountOnesZeros(t *testing.T) {
	s := SliceFrom([]uint8{0b1111_0000, 0b0000_0001})

	assert.Equal(t, 5, CountOnes[uint8](s))
	assert.Equal(t, 11, CountZeros[uint8](s))
}

func TestGetPastBound(t *testing.T) {
	s := SliceFrom([]uint8{0xFF})

	assert.True(t, Get[uint8](s, LSB, 7))
	assert.False(t, Get[uint8](s, LSB, 8))
	assert.False(t, Get[uint8](s, LSB, 1000))
	assert.False(t, Get[uint8](s, LSB, -1))
}

func TestTrySetOutOfBounds(t *testing.T) {
	s := SliceFrom([]uint8{0})

	err := TrySet(s, LSB, 8, true)
	var oob *ErrOutOfBounds
	require.ErrorAs(t, err, &oob)
	assert.Equal(t, 8, oob.Index)
	assert.Equal(t, 8, oob.Bits)
	assert.EqualError(t, err, "bit index 8 out of bounds [0, 8)")
}

func TestContainerString(t *testing.T) {
	assert.Equal(t, "[0b0000_0001, 0b1000_0000]", SliceFrom([]uint8{0b0000_0001, 0b1000_0000}).String())
	assert.Equal(t, "[]", NewSlice[uint8](0).String())
	assert.Equal(t, "[0b0000_0001_1000_0000]", ScalarOf(uint16(0x0180)).String())
}
