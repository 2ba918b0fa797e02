package bitmac

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotRoundTrip(t *testing.T) {
	for _, comp := range []CompressionType{CompressionNone, CompressionLZ4, CompressionZSTD} {
		src := SliceFrom([]uint8{0b1000_0001, 0, 0b0011_0000})

		var buf bytes.Buffer
		written, err := WriteSnapshot[uint8](&buf, src, MSB, comp)
		require.NoError(t, err)
		assert.Equal(t, int64(buf.Len()), written)

		got, order, err := ReadSnapshot[uint8](&buf)
		require.NoError(t, err)
		assert.Equal(t, MSB, order)
		assert.Equal(t, src.Raw(), got.Raw())
	}
}

func TestSnapshotRoundTripWideWords(t *testing.T) {
	src := SliceFrom([]uint64{1, 1 << 63, 0xDEAD_BEEF})

	var buf bytes.Buffer
	_, err := WriteSnapshot[uint64](&buf, src, LSB, CompressionZSTD)
	require.NoError(t, err)

	got, order, err := ReadSnapshot[uint64](&buf)
	require.NoError(t, err)
	assert.Equal(t, LSB, order)
	assert.Equal(t, src.Raw(), got.Raw())
}

func TestSnapshotCompressesRepetitivePayload(t *testing.T) {
	words := make([]uint8, 4096)
	for i := range words {
		words[i] = 0b1010_1010
	}
	src := SliceFrom(words)

	var plain, packed bytes.Buffer
	_, err := WriteSnapshot[uint8](&plain, src, LSB, CompressionNone)
	require.NoError(t, err)
	_, err = WriteSnapshot[uint8](&packed, src, LSB, CompressionZSTD)
	require.NoError(t, err)

	assert.Less(t, packed.Len(), plain.Len())
}

func TestSnapshotEmpty(t *testing.T) {
	var buf bytes.Buffer
	_, err := WriteSnapshot[uint8](&buf, NewSlice[uint8](0), LSB, CompressionNone)
	require.NoError(t, err)

	got, order, err := ReadSnapshot[uint8](&buf)
	require.NoError(t, err)
	assert.Equal(t, LSB, order)
	assert.Equal(t, 0, got.Words())
}

func TestSnapshotRejectsBadMagic(t *testing.T) {
	_, _, err := ReadSnapshot[uint8](bytes.NewReader(make([]byte, snapshotHeaderSize+blockHeaderSize)))
	require.ErrorContains(t, err, "bad snapshot magic")
}

func TestSnapshotRejectsWidthMismatch(t *testing.T) {
	var buf bytes.Buffer
	_, err := WriteSnapshot[uint8](&buf, SliceFrom([]uint8{1}), LSB, CompressionNone)
	require.NoError(t, err)

	_, _, err = ReadSnapshot[uint32](&buf)
	require.ErrorContains(t, err, "word width")
}

func TestSnapshotTruncatedPayload(t *testing.T) {
	var buf bytes.Buffer
	_, err := WriteSnapshot[uint8](&buf, SliceFrom([]uint8{1, 2, 3}), LSB, CompressionNone)
	require.NoError(t, err)

	_, _, err = ReadSnapshot[uint8](bytes.NewReader(buf.Bytes()[:buf.Len()-1]))
	require.Error(t, err)
}
